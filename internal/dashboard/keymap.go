package dashboard

import "fmt"

// KeyMap defines the keyboard shortcuts displayed in the footer.
type KeyMap struct {
	Start        string
	Stop         string
	Restart      string
	Logs         string
	Participants string
	Image        string
	Env          string
	Database     string
	Delete       string
	MaskPassword string
	Reload       string
	Quit         string
	Help         string

	DBCreate string
	DBLink   string
	DBUnlink string
	DBDelete string
}

// DefaultKeyMap returns the default shortcut mapping.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start:        "s",
		Stop:         "x",
		Restart:      "t",
		Logs:         "L",
		Participants: "p",
		Image:        "u",
		Env:          "e",
		Database:     "b",
		Delete:       "D",
		MaskPassword: "m",
		Reload:       "r",
		Quit:         "q",
		Help:         "?",

		DBCreate: "c",
		DBLink:   "l",
		DBUnlink: "u",
		DBDelete: "x",
	}
}

// HelpLine renders the footer help text for the main view. Entries the
// caller cannot use are filtered out by the view before rendering.
func (k KeyMap) HelpLine(strong, weak bool) string {
	line := fmt.Sprintf("[%s] reload  [%s] logs", k.Reload, k.Logs)
	if weak {
		line += fmt.Sprintf("  [%s] start  [%s] stop  [%s] restart  [%s] image  [%s] env",
			k.Start, k.Stop, k.Restart, k.Image, k.Env)
	}
	if strong {
		line += fmt.Sprintf("  [%s] participants  [%s] database  [%s] delete",
			k.Participants, k.Database, k.Delete)
	}
	line += fmt.Sprintf("  [%s] mask  [%s] quit  [%s] help", k.MaskPassword, k.Quit, k.Help)
	return line
}
