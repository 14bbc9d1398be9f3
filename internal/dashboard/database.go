package dashboard

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/s41205/hangarctl/internal/api"
	"github.com/s41205/hangarctl/internal/i18n"
	"github.com/s41205/hangarctl/internal/model"
)

// databaseState backs the database manager overlay. Which actions are
// offered is derived on every render from the linkage state, never stored.
type databaseState struct {
	inFlight bool
	apiErr   *api.Error
}

func (d *Dashboard) enterDatabaseMode() {
	d.database = databaseState{}
	d.mode = modeDatabase
}

// linkState evaluates the current linkage from the aggregate slots.
func (d *Dashboard) linkState() model.LinkState {
	return model.EvalLinkState(d.details, d.personal.db)
}

func (d *Dashboard) handleDatabaseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		d.mode = modeMain
		return d, nil
	}
	if d.database.inFlight {
		return d, nil
	}

	switch d.linkState() {
	case model.LinkLinked:
		switch msg.String() {
		case d.keymap.DBUnlink:
			return d.runDBAction(func(ctx context.Context, c *api.Client) error {
				return c.UnlinkDatabase(ctx, d.workloadID)
			})
		case d.keymap.DBDelete:
			return d.confirmDeleteLinkedDB()
		}
	case model.LinkPersonalUnlinked:
		switch msg.String() {
		case d.keymap.DBLink:
			dbID := d.personal.db.ID
			return d.runDBAction(func(ctx context.Context, c *api.Client) error {
				return c.LinkDatabase(ctx, d.workloadID, dbID)
			})
		case d.keymap.DBDelete:
			return d.confirmDeletePersonalDB()
		}
	case model.LinkNone:
		if msg.String() == d.keymap.DBCreate {
			return d.createAndLink()
		}
	}
	return d, nil
}

func (d *Dashboard) runDBAction(call func(context.Context, *api.Client) error) (tea.Model, tea.Cmd) {
	d.database.inFlight = true
	d.database.apiErr = nil
	client := d.client
	return d, func() tea.Msg {
		return dbActionDoneMsg{err: call(context.Background(), client)}
	}
}

// createAndLink provisions a personal database and immediately links it. If
// the link step fails the database still exists unlinked, and the next
// reload offers it for linking.
func (d *Dashboard) createAndLink() (tea.Model, tea.Cmd) {
	d.database.inFlight = true
	d.database.apiErr = nil
	client := d.client
	id := d.workloadID
	return d, func() tea.Msg {
		ctx := context.Background()
		db, err := client.CreateDatabase(ctx)
		if err != nil {
			return dbActionDoneMsg{err: err}
		}
		if err := client.LinkDatabase(ctx, id, db.ID); err != nil {
			return dbActionDoneMsg{err: &api.Error{Code: "LINK_FAILED"}}
		}
		return dbActionDoneMsg{}
	}
}

func (d *Dashboard) confirmDeleteLinkedDB() (tea.Model, tea.Cmd) {
	client := d.client
	id := d.workloadID
	action := func() tea.Msg {
		return dbActionDoneMsg{err: client.DeleteLinkedDatabase(context.Background(), id)}
	}
	d.askConfirm(i18n.T("database.confirm_delete"), action, modeDatabase)
	d.confirm.accepted = func() {
		d.database.inFlight = true
		d.database.apiErr = nil
	}
	return d, nil
}

// confirmDeletePersonalDB drops the caller's unlinked database. The linked
// case goes through DeleteLinkedDatabase instead, keyed by workload.
func (d *Dashboard) confirmDeletePersonalDB() (tea.Model, tea.Cmd) {
	dbID := d.personal.db.ID
	client := d.client
	action := func() tea.Msg {
		return dbActionDoneMsg{err: client.DeleteDatabase(context.Background(), dbID)}
	}
	d.askConfirm(i18n.T("database.confirm_delete"), action, modeDatabase)
	d.confirm.accepted = func() {
		d.database.inFlight = true
		d.database.apiErr = nil
	}
	return d, nil
}

func (d *Dashboard) handleDBActionDone(msg dbActionDoneMsg) (tea.Model, tea.Cmd) {
	d.database.inFlight = false
	if msg.err != nil {
		d.database.apiErr = api.AsError(msg.err)
		return d, reloadNow
	}
	d.database.apiErr = nil
	d.mode = modeMain
	return d, reloadNow
}
