package dashboard

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/s41205/hangarctl/internal/api"
	"github.com/s41205/hangarctl/internal/model"
)

// envState backs the environment editor. The buffer is plain KEY=VALUE
// text seeded from the aggregate; nothing is sent until the user saves.
type envState struct {
	buffer   string
	inFlight bool
	saved    bool
	apiErr   *api.Error
}

func (d *Dashboard) enterEnvMode() {
	d.env = envState{buffer: model.FormatEnvText(d.details.Workload.EnvVars)}
	d.mode = modeEnv
}

func (d *Dashboard) handleEnvKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		// Unsaved edits are discarded.
		d.mode = modeMain
		return d, nil
	case tea.KeyCtrlS:
		return d.saveEnv()
	case tea.KeyEnter:
		d.editEnvBuffer(d.env.buffer + "\n")
		return d, nil
	case tea.KeyBackspace:
		d.editEnvBuffer(trimLastRune(d.env.buffer))
		return d, nil
	case tea.KeySpace:
		d.editEnvBuffer(d.env.buffer + " ")
		return d, nil
	case tea.KeyRunes:
		d.editEnvBuffer(d.env.buffer + string(msg.Runes))
		return d, nil
	}
	return d, nil
}

// editEnvBuffer applies an edit and clears the result of the previous save,
// since the buffer no longer matches what was submitted.
func (d *Dashboard) editEnvBuffer(next string) {
	d.env.buffer = next
	d.env.saved = false
	d.env.apiErr = nil
}

func (d *Dashboard) saveEnv() (tea.Model, tea.Cmd) {
	if d.env.inFlight {
		return d, nil
	}
	vars := model.ParseEnvText(d.env.buffer)
	d.env.inFlight = true
	d.env.saved = false
	d.env.apiErr = nil

	client := d.client
	id := d.workloadID
	return d, func() tea.Msg {
		return envSavedMsg{err: client.UpdateEnv(context.Background(), id, vars)}
	}
}

func (d *Dashboard) handleEnvSaved(msg envSavedMsg) (tea.Model, tea.Cmd) {
	d.env.inFlight = false
	if msg.err != nil {
		d.env.apiErr = api.AsError(msg.err)
		return d, nil
	}
	d.env.saved = true
	return d, reloadNow
}
