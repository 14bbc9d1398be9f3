package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"
)

// confirmState holds a pending destructive action. The action command is
// built when the prompt is raised so that confirmation only has to fire it.
// accepted, if set, runs on the model right before the action is fired,
// typically to flip an in-flight flag.
type confirmState struct {
	prompt   string
	action   tea.Cmd
	accepted func()
	ret      mode
}

// askConfirm switches to the confirmation overlay. ret is the mode restored
// when the prompt is answered either way.
func (d *Dashboard) askConfirm(prompt string, action tea.Cmd, ret mode) {
	d.confirm = confirmState{prompt: prompt, action: action, ret: ret}
	d.mode = modeConfirm
}

func (d *Dashboard) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		action := d.confirm.action
		if d.confirm.accepted != nil {
			d.confirm.accepted()
		}
		d.mode = d.confirm.ret
		d.confirm = confirmState{}
		return d, action
	case "n", "esc":
		d.mode = d.confirm.ret
		d.confirm = confirmState{}
		return d, nil
	}
	return d, nil
}
