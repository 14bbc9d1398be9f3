package dashboard

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/s41205/hangarctl/internal/i18n"
	"github.com/s41205/hangarctl/internal/model"
)

type dangerState struct {
	inFlight bool
	errText  string
}

// confirmPurge raises the workload deletion prompt. When a database is
// linked the prompt warns that it goes down with the workload.
func (d *Dashboard) confirmPurge() (tea.Model, tea.Cmd) {
	if d.danger.inFlight {
		return d, nil
	}
	prompt := i18n.Replace("danger.confirm_delete", "name", d.details.Workload.Name)
	if d.linkState() == model.LinkLinked {
		prompt += "\n\n" + i18n.T("danger.delete_db_warning")
	}

	client := d.client
	id := d.workloadID
	action := func() tea.Msg {
		return purgeDoneMsg{err: client.Purge(context.Background(), id)}
	}
	d.askConfirm(prompt, action, modeMain)
	d.confirm.accepted = func() {
		d.danger.inFlight = true
		d.danger.errText = ""
	}
	return d, nil
}

func (d *Dashboard) handlePurgeDone(msg purgeDoneMsg) (tea.Model, tea.Cmd) {
	d.danger.inFlight = false
	if msg.err != nil {
		d.danger.errText = i18n.ErrorMessage("DELETE_FAILED")
		return d, nil
	}
	d.quitNotice = i18n.T("danger.deleted")
	return d, tea.Quit
}
