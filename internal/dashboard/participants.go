package dashboard

import (
	"context"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/s41205/hangarctl/internal/api"
	"github.com/s41205/hangarctl/internal/i18n"
)

// participantState backs the participant manager overlay. apiErr keeps the
// last add failure so its code can be rendered with a translated message.
type participantState struct {
	input    string
	inFlight bool
	apiErr   *api.Error
}

func (d *Dashboard) enterParticipantsMode() {
	d.participants = participantState{}
	d.mode = modeParticipants
}

func (d *Dashboard) handleParticipantsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		d.mode = modeMain
		return d, nil
	case tea.KeyBackspace:
		d.participants.input = trimLastRune(d.participants.input)
		return d, nil
	case tea.KeyEnter:
		return d.addParticipant()
	case tea.KeyRunes:
		r := string(msg.Runes)
		// Single digits select a participant to remove; anything else is
		// typed into the login field.
		if len(msg.Runes) == 1 && r >= "1" && r <= "9" && d.participants.input == "" {
			idx, _ := strconv.Atoi(r)
			return d.confirmRemoveParticipant(idx - 1)
		}
		d.participants.input += r
		return d, nil
	case tea.KeySpace:
		d.participants.input += " "
		return d, nil
	}
	return d, nil
}

func (d *Dashboard) addParticipant() (tea.Model, tea.Cmd) {
	login := strings.TrimSpace(d.participants.input)
	if login == "" || d.participants.inFlight {
		return d, nil
	}
	d.participants.inFlight = true
	d.participants.apiErr = nil

	client := d.client
	id := d.workloadID
	return d, func() tea.Msg {
		err := client.AddParticipant(context.Background(), id, login)
		return participantAddedMsg{login: login, err: err}
	}
}

func (d *Dashboard) confirmRemoveParticipant(idx int) (tea.Model, tea.Cmd) {
	if d.details == nil || idx < 0 || idx >= len(d.details.Participants) {
		return d, nil
	}
	login := d.details.Participants[idx]
	client := d.client
	id := d.workloadID
	action := func() tea.Msg {
		err := client.RemoveParticipant(context.Background(), id, login)
		return participantRemovedMsg{login: login, err: err}
	}
	d.askConfirm(i18n.Replace("participants.confirm_remove", "name", login), action, modeParticipants)
	return d, nil
}

func (d *Dashboard) handleParticipantAdded(msg participantAddedMsg) (tea.Model, tea.Cmd) {
	d.participants.inFlight = false
	if msg.err != nil {
		d.participants.apiErr = api.AsError(msg.err)
		return d, nil
	}
	d.participants.input = ""
	d.participants.apiErr = nil
	return d, reloadNow
}

func (d *Dashboard) handleParticipantRemoved(msg participantRemovedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// Removal failures are logged only; the list simply stays as is
		// after the reload.
		d.logger.Error("participant removal failed",
			"workload", d.workloadID, "login", msg.login, "err", msg.err)
		return d, nil
	}
	return d, reloadNow
}
