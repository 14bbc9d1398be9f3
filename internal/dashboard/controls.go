package dashboard

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/s41205/hangarctl/internal/i18n"
	"github.com/s41205/hangarctl/internal/model"
)

const (
	actionStart   = "start"
	actionStop    = "stop"
	actionRestart = "restart"
)

// controlState tracks the lifecycle controls. Only one control action runs
// at a time; further presses are ignored until the active one resolves.
type controlState struct {
	inFlight bool
	banner   string
}

// runControl dispatches a lifecycle action if the caller may operate the
// workload and nothing else is in flight.
func (d *Dashboard) runControl(action string, caps model.Capabilities) (tea.Model, tea.Cmd) {
	if !caps.Weak || d.controls.inFlight || d.details == nil {
		return d, nil
	}
	d.controls.inFlight = true
	d.controls.banner = ""

	client := d.client
	id := d.workloadID
	return d, func() tea.Msg {
		ctx := context.Background()
		var err error
		var banner string
		switch action {
		case actionStart:
			err = client.Start(ctx, id)
			banner = i18n.T("controls.start_success")
		case actionStop:
			err = client.Stop(ctx, id)
			banner = i18n.T("controls.stop_success")
		case actionRestart:
			err = client.Restart(ctx, id)
			banner = i18n.T("controls.restart_success")
		}
		return controlDoneMsg{action: action, banner: banner, err: err}
	}
}

func (d *Dashboard) handleControlDone(msg controlDoneMsg) (tea.Model, tea.Cmd) {
	d.controls.inFlight = false
	if msg.err != nil {
		// Control failures are logged, not surfaced; the next status poll
		// shows whether the action took effect.
		d.logger.Error("control action failed",
			"action", msg.action, "workload", d.workloadID, "err", msg.err)
		return d, nil
	}
	d.controls.banner = msg.banner
	return d, d.scheduleReload()
}
