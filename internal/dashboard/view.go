package dashboard

import (
	"fmt"
	"strings"

	"github.com/s41205/hangarctl/internal/i18n"
	"github.com/s41205/hangarctl/internal/model"
)

const gaugeWidth = 22

// View implements tea.Model.
func (d *Dashboard) View() string {
	if d.loadErr != "" {
		body := d.styles.ErrorMsg.Render(i18n.Replace("dashboard.load_error", "error", d.loadErr)) +
			"\n\n" + d.styles.Muted.Render(i18n.T("common.back_to_home"))
		return d.styles.Overlay.Render(body)
	}
	if d.details == nil || !d.personal.loaded {
		return d.styles.Muted.Render(i18n.T("common.loading"))
	}

	switch d.mode {
	case modeConfirm:
		return d.viewConfirm()
	case modeParticipants:
		return d.viewParticipants()
	case modeImage:
		return d.viewImage()
	case modeEnv:
		return d.viewEnv()
	case modeDatabase:
		return d.viewDatabase()
	case modeHelp:
		return d.viewHelp()
	default:
		return d.viewMain()
	}
}

func (d *Dashboard) contentWidth() int {
	w := d.width - 4
	if w < 20 {
		w = 76
	}
	return w
}

func (d *Dashboard) viewMain() string {
	w := d.details.Workload
	width := d.contentWidth()
	var b strings.Builder

	badge := d.styles.StyleStatus(string(model.ClassifyStatus(d.status.raw)), d.statusLabel())
	b.WriteString(d.styles.TitleBox.Render(w.Name) + "  " + badge + "\n\n")

	b.WriteString(d.renderInfoCard(width) + "\n")
	b.WriteString(d.renderMetricsCard(width) + "\n")
	b.WriteString(d.renderDatabaseCard(width) + "\n")
	b.WriteString(d.renderLogsCard(width) + "\n")

	if d.controls.banner != "" {
		b.WriteString(d.styles.Banner.Render(d.controls.banner) + "\n")
	}
	if d.message != "" {
		b.WriteString(d.styles.Banner.Render(d.message) + "\n")
	}
	if d.danger.errText != "" {
		b.WriteString(d.styles.ErrorMsg.Render(d.danger.errText) + "\n")
	}

	caps := d.capabilities()
	b.WriteString("\n" + d.styles.HelpBar.Render(truncate(d.keymap.HelpLine(caps.Strong, caps.Weak), width)))
	return b.String()
}

func (d *Dashboard) renderInfoCard(width int) string {
	w := d.details.Workload
	inner := width - 4
	var lines []string

	lines = append(lines, d.styles.Header.Render("Workload"))
	lines = append(lines, wrapLabelValue("URL:      ", i18n.Replace("dashboard.public_url", "name", w.Name), inner)...)
	lines = append(lines, wrapLabelValue("Owner:    ", w.Owner, inner)...)
	if len(d.details.Participants) > 0 {
		lines = append(lines, wrapLabelValue("Members:  ", strings.Join(d.details.Participants, ", "), inner)...)
	}
	switch w.Source {
	case model.SourceGitHub:
		lines = append(lines, wrapLabelValue("Repo:     ", w.SourceURL, inner)...)
		if w.SourceBranch != "" {
			lines = append(lines, "Branch:   "+w.SourceBranch)
		}
		if w.SourceRootDir != "" {
			lines = append(lines, "Root dir: "+w.SourceRootDir)
		}
	default:
		lines = append(lines, wrapLabelValue("Image:    ", w.SourceURL, inner)...)
	}
	if w.DeployedImageTag != "" {
		lines = append(lines, wrapLabelValue("Deployed: ", w.DeployedImageTag, inner)...)
	}
	if w.PersistentVolumePath != "" {
		lines = append(lines, wrapLabelValue("Volume:   ", w.PersistentVolumePath, inner)...)
	}
	if created := w.CreatedDate(); created != "" {
		lines = append(lines, "Created:  "+created)
	}
	return d.styles.Card.Width(width).Render(strings.Join(lines, "\n"))
}

func (d *Dashboard) renderMetricsCard(width int) string {
	var lines []string
	lines = append(lines, d.styles.Header.Render("Metrics"))
	if d.metrics == nil {
		lines = append(lines, d.styles.Muted.Render(i18n.T("common.loading")))
	} else {
		lines = append(lines, cpuGaugeLine(d.metrics.CPUUsage, gaugeWidth))
		lines = append(lines, memoryGaugeLine(d.metrics.MemoryUsage, d.metrics.MemoryLimit, gaugeWidth))
	}
	return d.styles.Card.Width(width).Render(strings.Join(lines, "\n"))
}

// renderDatabaseCard is the read-only summary on the main view. The full
// manager with its actions lives behind the database key and is gated to
// strong access.
func (d *Dashboard) renderDatabaseCard(width int) string {
	var lines []string
	lines = append(lines, d.styles.Header.Render("Database"))

	switch d.linkState() {
	case model.LinkLinked:
		db := d.details.Database
		lines = append(lines, d.databaseDetailLines(db, width-4)...)
	case model.LinkPersonalUnlinked:
		if d.capabilities().Strong {
			lines = append(lines, i18n.Replace("database.unlinked_found", "name", d.personal.db.DatabaseName))
		} else {
			lines = append(lines, d.styles.Muted.Render(i18n.T("database.none_linked")))
		}
	default:
		lines = append(lines, d.styles.Muted.Render(i18n.T("database.none_linked")))
	}
	return d.styles.Card.Width(width).Render(strings.Join(lines, "\n"))
}

func (d *Dashboard) databaseDetailLines(db *model.Database, width int) []string {
	password := db.Password
	if d.settings.MaskPassword {
		password = strings.Repeat("*", 8)
	}
	var lines []string
	lines = append(lines, fmt.Sprintf("Host:     %s:%d", db.Host, db.Port))
	lines = append(lines, "Name:     "+db.DatabaseName)
	lines = append(lines, "User:     "+db.Username)
	lines = append(lines, "Password: "+password)
	lines = append(lines, wrapLabelValue("Console:  ", i18n.T("database.admin_console"), width)...)
	return lines
}

func (d *Dashboard) renderLogsCard(width int) string {
	var lines []string
	lines = append(lines, d.styles.Header.Render("Logs"))

	switch {
	case d.logs.errText != "":
		lines = append(lines, d.styles.ErrorMsg.Render(d.logs.errText))
	case d.logs.loading:
		lines = append(lines, d.styles.Muted.Render(i18n.T("common.loading")))
	case !d.logs.fetched:
		lines = append(lines, d.styles.Muted.Render(i18n.T("logs.placeholder")))
	case len(d.logs.lines) == 0:
		lines = append(lines, d.styles.Muted.Render(i18n.T("logs.empty")))
	default:
		tail := d.logs.lines
		if max := d.logsViewportHeight(); len(tail) > max {
			tail = tail[len(tail)-max:]
		}
		for _, line := range tail {
			text := line.Message
			if line.Timestamp != "" {
				text = d.styles.Muted.Render(line.Timestamp) + " " + text
			}
			lines = append(lines, d.styles.StyleLogLine(string(line.Level), truncate(text, width-4)))
		}
	}
	return d.styles.Card.Width(width).Render(strings.Join(lines, "\n"))
}

func (d *Dashboard) logsViewportHeight() int {
	h := d.height - 24
	if h < 5 {
		h = 10
	}
	return h
}

func (d *Dashboard) viewConfirm() string {
	body := d.confirm.prompt + "\n\n" +
		d.styles.Muted.Render("[y] confirm  [n] cancel")
	return d.styles.Overlay.Render(body)
}

func (d *Dashboard) viewParticipants() string {
	var b strings.Builder
	b.WriteString(d.styles.Title.Render("Participants") + "\n\n")

	if len(d.details.Participants) == 0 {
		b.WriteString(d.styles.Muted.Render(i18n.T("participants.empty")) + "\n")
	} else {
		for i, login := range d.details.Participants {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, login))
		}
	}

	b.WriteString("\n" + "Add login: " + d.participants.input + "█\n")
	if d.participants.inFlight {
		b.WriteString(d.styles.Muted.Render(i18n.T("common.loading")) + "\n")
	}
	if d.participants.apiErr != nil {
		b.WriteString(d.styles.ErrorMsg.Render(i18n.ErrorMessage(d.participants.apiErr.Code)) + "\n")
	}

	b.WriteString("\n" + d.styles.HelpBar.Render("[enter] add  [1-9] remove  [esc] back"))
	return d.styles.Overlay.Render(b.String())
}

func (d *Dashboard) viewImage() string {
	w := d.details.Workload
	var b strings.Builder
	b.WriteString(d.styles.Title.Render("Deployment source") + "\n\n")

	if w.Source == model.SourceGitHub {
		b.WriteString(i18n.T("image.rebuild_description") + "\n\n")
		for _, line := range wrapLabelValue("Repo:   ", w.SourceURL, d.contentWidth()-6) {
			b.WriteString(line + "\n")
		}
		if w.SourceBranch != "" {
			b.WriteString("Branch: " + w.SourceBranch + "\n")
		}
		b.WriteString("\n" + d.styles.HelpBar.Render("[enter] rebuild  [esc] back"))
	} else {
		b.WriteString(i18n.T("image.update_description") + "\n\n")
		b.WriteString("Image URL: " + d.image.input + "█\n")
		b.WriteString("\n" + d.styles.HelpBar.Render("[enter] update  [esc] back"))
	}

	if d.image.inFlight {
		b.WriteString("\n" + d.styles.Muted.Render(i18n.T("common.loading")))
	}
	if d.image.apiErr != nil {
		b.WriteString("\n" + d.styles.ErrorMsg.Render(i18n.ErrorMessage(d.image.apiErr.Code)))
		// A failed vulnerability scan ships its report in the details.
		if d.image.apiErr.Code == "IMAGE_SCAN_FAILED" && d.image.apiErr.Details != "" {
			b.WriteString("\n" + d.styles.Muted.Render(d.image.apiErr.Details))
		}
		if hint := imageErrorHint(d.image.apiErr.Code); hint != "" {
			b.WriteString("\n" + d.styles.Muted.Render(hint))
		}
	}
	return d.styles.Overlay.Render(b.String())
}

func (d *Dashboard) viewEnv() string {
	var b strings.Builder
	b.WriteString(d.styles.Title.Render("Environment variables") + "\n\n")
	b.WriteString(d.env.buffer + "█\n")

	if d.env.inFlight {
		b.WriteString("\n" + d.styles.Muted.Render(i18n.T("common.loading")))
	}
	if d.env.saved {
		b.WriteString("\n" + d.styles.Banner.Render(i18n.T("env.save_success")))
	}
	if d.env.apiErr != nil {
		b.WriteString("\n" + d.styles.ErrorMsg.Render(i18n.ErrorMessage(d.env.apiErr.Code)))
	}

	b.WriteString("\n\n" + d.styles.HelpBar.Render("[ctrl+s] save  [esc] discard"))
	return d.styles.Overlay.Render(b.String())
}

func (d *Dashboard) viewDatabase() string {
	var b strings.Builder
	b.WriteString(d.styles.Title.Render("Database") + "\n\n")

	var help string
	switch d.linkState() {
	case model.LinkLinked:
		for _, line := range d.databaseDetailLines(d.details.Database, d.contentWidth()-6) {
			b.WriteString(line + "\n")
		}
		help = fmt.Sprintf("[%s] unlink  [%s] delete  [esc] back", d.keymap.DBUnlink, d.keymap.DBDelete)
	case model.LinkPersonalUnlinked:
		b.WriteString(i18n.Replace("database.unlinked_found", "name", d.personal.db.DatabaseName) + "\n")
		help = fmt.Sprintf("[%s] link  [%s] delete  [esc] back", d.keymap.DBLink, d.keymap.DBDelete)
	default:
		b.WriteString(d.styles.Muted.Render(i18n.T("database.none_linked")) + "\n")
		help = fmt.Sprintf("[%s] create and link  [esc] back", d.keymap.DBCreate)
	}

	if d.database.inFlight {
		b.WriteString("\n" + d.styles.Muted.Render(i18n.T("common.loading")))
	}
	if d.database.apiErr != nil {
		b.WriteString("\n" + d.styles.ErrorMsg.Render(i18n.ErrorMessage(d.database.apiErr.Code)))
	}

	b.WriteString("\n\n" + d.styles.HelpBar.Render(help))
	return d.styles.Overlay.Render(b.String())
}

func (d *Dashboard) viewHelp() string {
	caps := d.capabilities()
	var b strings.Builder
	b.WriteString(d.styles.Title.Render("Keys") + "\n\n")
	b.WriteString(fmt.Sprintf("  %s       reload workload details\n", d.keymap.Reload))
	b.WriteString(fmt.Sprintf("  %s       fetch logs\n", d.keymap.Logs))
	if caps.Weak {
		b.WriteString(fmt.Sprintf("  %s       start\n", d.keymap.Start))
		b.WriteString(fmt.Sprintf("  %s       stop\n", d.keymap.Stop))
		b.WriteString(fmt.Sprintf("  %s       restart\n", d.keymap.Restart))
		b.WriteString(fmt.Sprintf("  %s       update deployment source\n", d.keymap.Image))
		b.WriteString(fmt.Sprintf("  %s       edit environment variables\n", d.keymap.Env))
	}
	if caps.Strong {
		b.WriteString(fmt.Sprintf("  %s       manage participants\n", d.keymap.Participants))
		b.WriteString(fmt.Sprintf("  %s       manage database\n", d.keymap.Database))
		b.WriteString(fmt.Sprintf("  %s       delete workload\n", d.keymap.Delete))
	}
	b.WriteString(fmt.Sprintf("  %s       toggle password mask\n", d.keymap.MaskPassword))
	b.WriteString(fmt.Sprintf("  %s       quit\n", d.keymap.Quit))
	b.WriteString("\n" + d.styles.HelpBar.Render("press any key to go back"))
	return d.styles.Overlay.Render(b.String())
}
