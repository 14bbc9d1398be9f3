package dashboard

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/s41205/hangarctl/internal/api"
	"github.com/s41205/hangarctl/internal/i18n"
	"github.com/s41205/hangarctl/internal/model"
)

// imageState backs the deployment source overlay. For repository-sourced
// workloads it offers a rebuild; for image-sourced ones a URL update.
type imageState struct {
	input    string
	inFlight bool
	apiErr   *api.Error
}

func (d *Dashboard) enterImageMode() {
	d.image = imageState{}
	d.mode = modeImage
}

func (d *Dashboard) handleImageKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fromRepo := d.details != nil && d.details.Workload.Source == model.SourceGitHub

	switch msg.Type {
	case tea.KeyEsc:
		d.mode = modeMain
		return d, nil
	case tea.KeyEnter:
		if d.image.inFlight {
			return d, nil
		}
		if fromRepo {
			return d.confirmRebuild()
		}
		return d.confirmImageUpdate()
	case tea.KeyBackspace:
		if !fromRepo {
			d.image.input = trimLastRune(d.image.input)
		}
		return d, nil
	case tea.KeyRunes:
		if !fromRepo {
			d.image.input += string(msg.Runes)
		}
		return d, nil
	}
	return d, nil
}

func (d *Dashboard) confirmRebuild() (tea.Model, tea.Cmd) {
	name := d.details.Workload.Name
	client := d.client
	id := d.workloadID
	action := func() tea.Msg {
		return imageDoneMsg{err: client.Rebuild(context.Background(), id)}
	}
	d.askConfirm(i18n.Replace("image.confirm_rebuild", "name", name), action, modeImage)
	d.confirm.accepted = func() { d.image.inFlight = true }
	return d, nil
}

func (d *Dashboard) confirmImageUpdate() (tea.Model, tea.Cmd) {
	url := strings.TrimSpace(d.image.input)
	if url == "" {
		return d, nil
	}
	name := d.details.Workload.Name
	client := d.client
	id := d.workloadID
	action := func() tea.Msg {
		return imageDoneMsg{err: client.UpdateImage(context.Background(), id, url)}
	}
	d.askConfirm(i18n.Replace("image.confirm_update", "name", name), action, modeImage)
	d.confirm.accepted = func() { d.image.inFlight = true }
	return d, nil
}

func (d *Dashboard) handleImageDone(msg imageDoneMsg) (tea.Model, tea.Cmd) {
	d.image.inFlight = false
	if msg.err != nil {
		d.image.apiErr = api.AsError(msg.err)
		return d, nil
	}
	d.image = imageState{}
	d.mode = modeMain
	d.message = i18n.T("image.update_success")
	return d, reloadNow
}

// imageErrorHint returns a remediation line for source-update failures that
// the user can fix outside the dashboard.
func imageErrorHint(code string) string {
	switch code {
	case "GITHUB_ACCOUNT_NOT_LINKED":
		return i18n.T("image.link_github_hint")
	case "GITHUB_REPO_NOT_ACCESSIBLE":
		return i18n.T("image.installation_hint")
	}
	return ""
}
