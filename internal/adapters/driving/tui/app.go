package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cadence-labs/cadence-cli/internal/adapters/driving/tui/keymap"
	"github.com/cadence-labs/cadence-cli/internal/adapters/driving/tui/messages"
	"github.com/cadence-labs/cadence-cli/internal/adapters/driving/tui/styles"
	"github.com/cadence-labs/cadence-cli/internal/core/domain"
	"github.com/cadence-labs/cadence-cli/internal/core/ports/driving"
)

// timedEventLayout renders timed event boundaries in the meeting list.
const timedEventLayout = "Mon 02 Jan 15:04"

// App is the dashboard TUI following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keys holds the keybindings.
	keys *keymap.KeyMap

	// changes carries coordinator state snapshots into the event loop.
	changes chan driving.CalendarState

	// state is the last observed calendar state.
	state driving.CalendarState

	// selected is the highlighted meeting index.
	selected int

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	a := &App{
		ports:   ports,
		ctx:     context.Background(),
		styles:  styles.DefaultStyles(),
		keys:    keymap.DefaultKeyMap(),
		changes: make(chan driving.CalendarState, 32),
		state:   ports.Calendar.Snapshot(),
	}

	ports.Calendar.SetOnChange(a.publish)

	return a, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// publish hands a state snapshot to the event loop. When the buffer is
// full the oldest snapshot is dropped; only the latest matters.
func (a *App) publish(state driving.CalendarState) {
	for {
		select {
		case a.changes <- state:
			return
		default:
			select {
			case <-a.changes:
			default:
			}
		}
	}
}

// Init implements tea.Model.
// It starts the session and subscribes to coordinator state changes.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("cadence - Google Calendar"),
		a.startSession(),
		a.waitForChange(),
	)
}

// startSession returns a command that drives initialisation and restore.
func (a *App) startSession() tea.Cmd {
	return func() tea.Msg {
		a.ports.Calendar.Start(a.ctx)
		return messages.SessionSettled{}
	}
}

// waitForChange returns a command that delivers the next state snapshot.
// The handler re-arms it after every delivery.
func (a *App) waitForChange() tea.Cmd {
	return func() tea.Msg {
		return messages.StateChanged{State: <-a.changes}
	}
}

// signIn returns a command that runs the interactive consent flow.
func (a *App) signIn() tea.Cmd {
	return func() tea.Msg {
		return messages.SignInCompleted{Err: a.ports.Calendar.SignIn(a.ctx)}
	}
}

// signOut returns a command that signs out and clears the local session.
func (a *App) signOut() tea.Cmd {
	return func() tea.Msg {
		a.ports.Calendar.SignOut(a.ctx)
		return messages.SignOutCompleted{}
	}
}

// fetchMeetings returns a command that re-fetches the default window.
func (a *App) fetchMeetings() tea.Cmd {
	return func() tea.Msg {
		return messages.MeetingsFetched{Err: a.ports.Calendar.FetchMeetings(a.ctx, nil)}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.StateChanged:
		a.state = msg.State
		if a.selected >= len(a.state.Meetings) {
			a.selected = 0
		}
		return a, a.waitForChange()

	case messages.SessionSettled:
		// The settled state arrives through the change channel.
		return a, nil

	case messages.SignInCompleted, messages.SignOutCompleted, messages.MeetingsFetched:
		// Outcomes are reflected in the published state.
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

// handleKey dispatches key presses against the keymap.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Connect):
		return a, a.signIn()

	case key.Matches(msg, a.keys.Disconnect):
		return a, a.signOut()

	case key.Matches(msg, a.keys.Refresh):
		if !a.state.Authenticated {
			return a, nil
		}
		return a, a.fetchMeetings()

	case key.Matches(msg, a.keys.Up):
		if a.selected > 0 {
			a.selected--
		}
		return a, nil

	case key.Matches(msg, a.keys.Down):
		if a.selected < len(a.state.Meetings)-1 {
			a.selected++
		}
		return a, nil
	}

	return a, nil
}

// View implements tea.Model.
// It renders the dashboard as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Cadence"))
	b.WriteString(a.styles.Muted.Render("  Google Calendar"))
	b.WriteString("\n\n")

	b.WriteString(a.viewStatus())
	b.WriteString("\n\n")

	b.WriteString(a.viewMeetings())
	b.WriteString("\n")

	b.WriteString(a.viewHelp())

	return b.String()
}

// viewStatus renders the connection status line.
func (a *App) viewStatus() string {
	switch {
	case a.state.Err != "":
		return a.styles.Error.Render("Error: " + a.state.Err)
	case a.state.Loading:
		return a.styles.Warning.Render("Connecting...")
	case a.state.Authenticated:
		return a.styles.Success.Render("Connected")
	default:
		return a.styles.Muted.Render("Not connected. Press c to connect.")
	}
}

// viewMeetings renders the meeting list for the current window.
func (a *App) viewMeetings() string {
	if !a.state.Authenticated {
		return ""
	}
	if a.state.LoadingMeetings {
		return a.styles.Muted.Render("Loading meetings...")
	}
	if len(a.state.Meetings) == 0 {
		return a.styles.Muted.Render("No meetings in this window.")
	}

	var b strings.Builder
	b.WriteString(a.styles.Subtitle.Render(fmt.Sprintf("Meetings (%d)", len(a.state.Meetings))))
	b.WriteString("\n")

	for i := range a.state.Meetings {
		line := formatMeetingLine(a.state.Meetings[i])
		if i == a.selected {
			b.WriteString(a.styles.Selected.Render("> " + line))
		} else {
			b.WriteString(a.styles.Normal.Render("  " + line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// viewHelp renders the keybinding hints.
func (a *App) viewHelp() string {
	hints := make([]string, 0, 4)
	for _, binding := range a.keys.ShortHelp() {
		hints = append(hints, binding.Help().Key+" "+binding.Help().Desc)
	}
	return a.styles.Help.Render(strings.Join(hints, "  "))
}

// formatMeetingLine renders one meeting for the list. All-day events keep
// their calendar date; timed events render in the local time zone.
func formatMeetingLine(event domain.MeetingEvent) string {
	summary := event.Summary
	if summary == "" {
		summary = "(no title)"
	}

	if event.IsAllDay() {
		return fmt.Sprintf("%s  all day  %s", event.Start.Date, summary)
	}

	start := event.Start.Instant.Local().Format(timedEventLayout)
	if event.Location != "" {
		return fmt.Sprintf("%s  %s (%s)", start, summary, event.Location)
	}
	return fmt.Sprintf("%s  %s", start, summary)
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// State returns the last observed calendar state.
func (a *App) State() driving.CalendarState {
	return a.state
}

// SelectedIndex returns the highlighted meeting index.
func (a *App) SelectedIndex() int {
	return a.selected
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
}
