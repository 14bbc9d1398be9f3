package dashboard

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/s41205/hangarctl/internal/i18n"
	"github.com/s41205/hangarctl/internal/model"
)

// logsState distinguishes "never fetched", "fetched but empty" and
// "fetched with lines". Logs are fetched on demand, not polled.
type logsState struct {
	loading bool
	fetched bool
	lines   []model.LogLine
	errText string
}

func (d *Dashboard) fetchLogs() (tea.Model, tea.Cmd) {
	if d.logs.loading {
		return d, nil
	}
	d.logs.loading = true
	d.logs.errText = ""

	client := d.client
	id := d.workloadID
	return d, func() tea.Msg {
		text, err := client.Logs(context.Background(), id)
		return logsMsg{text: text, err: err}
	}
}

func (d *Dashboard) handleLogsMsg(msg logsMsg) (tea.Model, tea.Cmd) {
	d.logs.loading = false
	if msg.err != nil {
		d.logs.fetched = false
		d.logs.lines = nil
		d.logs.errText = i18n.Replace("logs.error", "error", msg.err.Error())
		return d, nil
	}
	d.logs.fetched = true
	d.logs.lines = model.ParseLogs(msg.text)
	d.logs.errText = ""
	return d, nil
}
