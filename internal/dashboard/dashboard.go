// Package dashboard implements the live terminal dashboard for a single
// deployed workload: run-state and metrics polling, log viewing, and
// role-gated controls for deployment, participants, environment variables
// and database linkage.
package dashboard

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/s41205/hangarctl/internal/api"
	"github.com/s41205/hangarctl/internal/i18n"
	"github.com/s41205/hangarctl/internal/identity"
	"github.com/s41205/hangarctl/internal/model"
	"github.com/s41205/hangarctl/internal/poll"
)

const (
	statusPollInterval  = 5000 * time.Millisecond
	metricsPollInterval = 3000 * time.Millisecond
	// Mutating control actions give the backend a moment to settle before
	// the full aggregate is refetched.
	defaultReloadDelay = 1500 * time.Millisecond
)

type mode int

const (
	modeMain mode = iota
	modeParticipants
	modeImage
	modeEnv
	modeDatabase
	modeConfirm
	modeHelp
)

// personalSlot distinguishes "not yet loaded" from "loaded, none found".
type personalSlot struct {
	loaded bool
	db     *model.Database
}

type statusState struct {
	raw      string
	received bool
}

// Dashboard is the bubbletea model composing the workload view. Each state
// slot has a single writer: the aggregate slots are written only by reload
// fetches, the status and metrics slots only by their pollers.
type Dashboard struct {
	client     *api.Client
	user       identity.User
	logger     *slog.Logger
	workloadID int

	width  int
	height int
	keymap KeyMap
	styles Styles

	settings     *UISettings
	settingsPath string

	details  *model.WorkloadDetails
	personal personalSlot
	loadErr  string
	// reloadSeq only serves change detection; overlapping reloads race and
	// the last response to arrive wins on each slot.
	reloadSeq int

	status  statusState
	metrics *model.Metrics

	logs         logsState
	controls     controlState
	participants participantState
	image        imageState
	env          envState
	database     databaseState
	danger       dangerState

	mode    mode
	confirm confirmState
	message string

	// quitNotice is printed by the caller after the screen is restored.
	quitNotice string

	reloadDelay time.Duration
}

// New creates a dashboard model for the given workload.
func New(client *api.Client, user identity.User, workloadID int, logger *slog.Logger) *Dashboard {
	if logger == nil {
		logger = slog.Default()
	}
	settingsPath := settingsFilePath()
	return &Dashboard{
		client:       client,
		user:         user,
		logger:       logger,
		workloadID:   workloadID,
		keymap:       DefaultKeyMap(),
		styles:       DefaultStyles(),
		settings:     LoadUISettings(settingsPath),
		settingsPath: settingsPath,
		mode:         modeMain,
		reloadDelay:  defaultReloadDelay,
	}
}

// Run opens the dashboard and blocks until it exits. The returned notice,
// if any, should be printed once the terminal is restored.
func Run(client *api.Client, user identity.User, workloadID int, logger *slog.Logger) (string, error) {
	d := New(client, user, workloadID, logger)
	program := tea.NewProgram(d, tea.WithAltScreen())

	// The pollers are owned by this view: they start with it, are keyed to
	// its workload id, and are stopped synchronously when it is torn down.
	statusPoller := poll.New(statusPollInterval, func(ctx context.Context) {
		raw, err := client.WorkloadStatus(ctx, workloadID)
		program.Send(statusMsg{workloadID: workloadID, raw: raw, err: err})
	})
	metricsPoller := poll.New(metricsPollInterval, func(ctx context.Context) {
		m, err := client.Metrics(ctx, workloadID)
		program.Send(metricsMsg{workloadID: workloadID, metrics: m, err: err})
	})
	statusPoller.Start()
	metricsPoller.Start()
	defer metricsPoller.Stop()
	defer statusPoller.Stop()

	final, err := program.Run()
	if err != nil {
		return "", err
	}
	if fd, ok := final.(*Dashboard); ok {
		return fd.quitNotice, nil
	}
	return "", nil
}

type detailsMsg struct {
	details *model.WorkloadDetails
	err     error
}

type personalDBMsg struct {
	db  *model.Database
	err error
}

type statusMsg struct {
	workloadID int
	raw        string
	err        error
}

type metricsMsg struct {
	workloadID int
	metrics    *model.Metrics
	err        error
}

type logsMsg struct {
	text string
	err  error
}

// reloadMsg asks the orchestrator to refetch the aggregate. Children never
// touch the aggregate slots directly; they emit this instead.
type reloadMsg struct{}

type controlDoneMsg struct {
	action string
	banner string
	err    error
}

type participantAddedMsg struct {
	login string
	err   error
}

type participantRemovedMsg struct {
	login string
	err   error
}

type imageDoneMsg struct {
	err error
}

type envSavedMsg struct {
	err error
}

type dbActionDoneMsg struct {
	err error
}

type purgeDoneMsg struct {
	err error
}

// Init implements tea.Model.
func (d *Dashboard) Init() tea.Cmd {
	return tea.Batch(d.detailsCmd(), d.personalDBCmd())
}

// Update implements tea.Model.
func (d *Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width = msg.Width
		d.height = msg.Height
		return d, nil

	case detailsMsg:
		if msg.err != nil {
			d.loadErr = msg.err.Error()
			return d, nil
		}
		d.details = msg.details
		d.loadErr = ""
		return d, nil

	case personalDBMsg:
		// Absence of a personal database is not an error; failures load
		// the slot as "none found".
		d.personal = personalSlot{loaded: true}
		if msg.err == nil {
			d.personal.db = msg.db
		}
		return d, nil

	case statusMsg:
		if msg.workloadID != d.workloadID {
			return d, nil
		}
		if msg.err != nil {
			// Keep showing the last known state; the badge falls back to
			// "unknown" only before the first successful sample.
			d.logger.Debug("status poll failed", "workload", msg.workloadID, "err", msg.err)
			return d, nil
		}
		d.status = statusState{raw: msg.raw, received: true}
		return d, nil

	case metricsMsg:
		if msg.workloadID != d.workloadID {
			return d, nil
		}
		if msg.err != nil {
			// No stale-metrics fallback: the gauges go back to loading.
			d.metrics = nil
			return d, nil
		}
		d.metrics = msg.metrics
		return d, nil

	case logsMsg:
		return d.handleLogsMsg(msg)

	case reloadMsg:
		d.reloadSeq++
		return d, tea.Batch(d.detailsCmd(), d.personalDBCmd())

	case controlDoneMsg:
		return d.handleControlDone(msg)

	case participantAddedMsg:
		return d.handleParticipantAdded(msg)

	case participantRemovedMsg:
		return d.handleParticipantRemoved(msg)

	case imageDoneMsg:
		return d.handleImageDone(msg)

	case envSavedMsg:
		return d.handleEnvSaved(msg)

	case dbActionDoneMsg:
		return d.handleDBActionDone(msg)

	case purgeDoneMsg:
		return d.handlePurgeDone(msg)

	case tea.KeyMsg:
		return d.handleKey(msg)

	default:
		return d, nil
	}
}

func (d *Dashboard) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return d, tea.Quit
	}

	switch d.mode {
	case modeMain:
		return d.handleMainKey(msg)
	case modeParticipants:
		return d.handleParticipantsKey(msg)
	case modeImage:
		return d.handleImageKey(msg)
	case modeEnv:
		return d.handleEnvKey(msg)
	case modeDatabase:
		return d.handleDatabaseKey(msg)
	case modeConfirm:
		return d.handleConfirmKey(msg)
	case modeHelp:
		d.mode = modeMain
		return d, nil
	default:
		return d, nil
	}
}

func (d *Dashboard) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	caps := d.capabilities()
	// Transient banners live until the next interaction.
	d.message = ""

	switch msg.String() {
	case d.keymap.Quit:
		return d, tea.Quit
	case d.keymap.Help:
		d.mode = modeHelp
		return d, nil
	case d.keymap.Reload:
		return d, reloadNow
	case d.keymap.Logs:
		return d.fetchLogs()
	case d.keymap.Start:
		return d.runControl(actionStart, caps)
	case d.keymap.Stop:
		return d.runControl(actionStop, caps)
	case d.keymap.Restart:
		return d.runControl(actionRestart, caps)
	case d.keymap.Participants:
		if caps.Strong && d.details != nil {
			d.enterParticipantsMode()
		}
		return d, nil
	case d.keymap.Env:
		if caps.Weak && d.details != nil {
			d.enterEnvMode()
		}
		return d, nil
	case d.keymap.Image:
		if caps.Weak && d.details != nil {
			d.enterImageMode()
		}
		return d, nil
	case d.keymap.Database:
		if caps.Strong && d.details != nil && d.personal.loaded {
			d.enterDatabaseMode()
		}
		return d, nil
	case d.keymap.Delete:
		if caps.Strong && d.details != nil {
			return d.confirmPurge()
		}
		return d, nil
	case d.keymap.MaskPassword:
		d.settings.MaskPassword = !d.settings.MaskPassword
		d.settings.Save(d.settingsPath)
		return d, nil
	}
	return d, nil
}

// reloadNow emits a reload tick immediately. Mutations that do not need the
// backend-settle delay use this.
func reloadNow() tea.Msg {
	return reloadMsg{}
}

// scheduleReload emits a reload tick after the configured delay.
func (d *Dashboard) scheduleReload() tea.Cmd {
	if d.reloadDelay <= 0 {
		return reloadNow
	}
	return tea.Tick(d.reloadDelay, func(time.Time) tea.Msg {
		return reloadMsg{}
	})
}

func (d *Dashboard) detailsCmd() tea.Cmd {
	client := d.client
	id := d.workloadID
	return func() tea.Msg {
		details, err := client.WorkloadDetails(context.Background(), id)
		return detailsMsg{details: details, err: err}
	}
}

func (d *Dashboard) personalDBCmd() tea.Cmd {
	client := d.client
	return func() tea.Msg {
		db, err := client.MyDatabase(context.Background())
		return personalDBMsg{db: db, err: err}
	}
}

// capabilities derives the caller's capability set from the current
// aggregate. It is recomputed on every use and never cached.
func (d *Dashboard) capabilities() model.Capabilities {
	if d.details == nil {
		return model.Capabilities{}
	}
	return model.ComputeCapabilities(
		d.user.Login,
		d.user.Admin,
		d.details.Workload.Owner,
		d.details.Participants,
	)
}

// statusLabel renders the current run-state badge text.
func (d *Dashboard) statusLabel() string {
	if !d.status.received {
		return i18n.Status("")
	}
	return i18n.Status(d.status.raw)
}
