package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/herissonneves/quantio/internal/adapters/driving/tui/components/status"
	"github.com/herissonneves/quantio/internal/adapters/driving/tui/keymap"
	"github.com/herissonneves/quantio/internal/adapters/driving/tui/messages"
	"github.com/herissonneves/quantio/internal/adapters/driving/tui/styles"
	"github.com/herissonneves/quantio/internal/adapters/driving/tui/views/calculator"
	"github.com/herissonneves/quantio/internal/adapters/driving/tui/views/converter"
	"github.com/herissonneves/quantio/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles for the active theme.
	styles *styles.Styles

	// keymap holds the global keybindings.
	keymap *keymap.KeyMap

	// prefs are the loaded display preferences.
	prefs domain.Preferences

	// calculatorView is the calculator panel.
	calculatorView *calculator.View

	// converterView is the unit converter panel.
	converterView *converter.View

	// statusBar renders state and key hints at the bottom.
	statusBar *status.Bar

	// activeTab tracks which panel is shown.
	activeTab domain.Tab

	// prefChanges signals external rewrites of the preference file.
	prefChanges <-chan struct{}

	// err holds the last error that occurred.
	err error

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

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:          ports,
		ctx:            context.Background(),
		styles:         s,
		keymap:         km,
		prefs:          domain.DefaultPreferences(),
		calculatorView: calculator.NewView(s, ports.Calculator),
		converterView:  converter.NewView(s, ports.Converter),
		statusBar:      status.NewBar(s, km),
		activeTab:      domain.TabCalculator,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// WithPreferenceChanges attaches a channel that signals external
// preference file rewrites, enabling live theme reload.
func (a *App) WithPreferenceChanges(ch <-chan struct{}) *App {
	a.prefChanges = ch
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("quantio"),
		a.loadPreferences(),
		a.listenPreferenceChanges(),
		a.converterView.Init(),
	)
}

// loadPreferences returns a command that loads persisted preferences.
func (a *App) loadPreferences() tea.Cmd {
	return func() tea.Msg {
		prefs, err := a.ports.Preferences.Get()
		return messages.PreferencesLoaded{Prefs: prefs, Err: err}
	}
}

// listenPreferenceChanges returns a command that blocks until the
// preference file is rewritten externally. Nil when no watcher is
// attached.
func (a *App) listenPreferenceChanges() tea.Cmd {
	if a.prefChanges == nil {
		return nil
	}
	ch := a.prefChanges
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return messages.PreferenceFileChanged{}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.calculatorView.SetDimensions(msg.Width, msg.Height)
		a.converterView.SetDimensions(msg.Width, msg.Height)
		a.statusBar.SetWidth(msg.Width)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case messages.PreferencesLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			a.statusBar.SetMessage(msg.Err.Error())
			return a, nil
		}
		a.prefs = msg.Prefs
		a.activeTab = msg.Prefs.ActiveTab
		a.converterView.SetCategory(msg.Prefs.LastCategory)
		a.applyStyles()
		return a, nil

	case messages.PreferenceFileChanged:
		// Reload, then re-arm the listener for the next rewrite.
		return a, tea.Batch(a.loadPreferences(), a.listenPreferenceChanges())

	case messages.CategoryChanged:
		return a, a.savePreference(func() error {
			return a.ports.Preferences.SetLastCategory(msg.Category)
		})

	case messages.PreferencesSaved:
		if msg.Err != nil {
			a.err = msg.Err
			a.statusBar.SetMessage(msg.Err.Error())
		}
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.statusBar.SetMessage(msg.Err.Error())
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to the active view.
	switch a.activeTab {
	case domain.TabConverter:
		a.converterView, cmd = a.converterView.Update(msg)
	default:
		a.calculatorView, cmd = a.calculatorView.Update(msg)
	}

	return a, cmd
}

// handleKeyMsg handles global keys, forwarding the rest to the active
// panel.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	key := msg.String()

	switch {
	case key == "ctrl+c":
		return a, tea.Quit

	case key == "q" && a.activeTab == domain.TabCalculator:
		// On the converter panel q belongs to the value input.
		return a, tea.Quit

	case keymap.Matches(key, a.keymap.SwitchTab):
		return a, a.switchTab()

	case keymap.Matches(key, a.keymap.ToggleTheme):
		a.prefs.Theme = a.prefs.Theme.Toggled()
		a.applyStyles()
		theme := a.prefs.Theme
		return a, a.savePreference(func() error {
			return a.ports.Preferences.SetTheme(theme)
		})

	case keymap.Matches(key, a.keymap.ToggleContrast):
		a.prefs.HighContrast = !a.prefs.HighContrast
		a.applyStyles()
		enabled := a.prefs.HighContrast
		return a, a.savePreference(func() error {
			return a.ports.Preferences.SetHighContrast(enabled)
		})
	}

	switch a.activeTab {
	case domain.TabConverter:
		a.converterView, cmd = a.converterView.Update(msg)
	default:
		a.calculatorView, cmd = a.calculatorView.Update(msg)
	}

	return a, cmd
}

// switchTab toggles the active panel and persists the selection.
func (a *App) switchTab() tea.Cmd {
	if a.activeTab == domain.TabCalculator {
		a.activeTab = domain.TabConverter
	} else {
		a.activeTab = domain.TabCalculator
	}
	a.prefs.ActiveTab = a.activeTab
	a.statusBar.SetTab(a.activeTab)

	tab := a.activeTab
	return a.savePreference(func() error {
		return a.ports.Preferences.SetActiveTab(tab)
	})
}

// savePreference wraps a preference write into a command.
func (a *App) savePreference(write func() error) tea.Cmd {
	return func() tea.Msg {
		return messages.PreferencesSaved{Err: write()}
	}
}

// applyStyles rebuilds the style set from the current preferences and
// propagates it to every component.
func (a *App) applyStyles() {
	a.styles = styles.StylesFor(a.prefs.Theme, a.prefs.HighContrast)
	a.calculatorView.SetStyles(a.styles)
	a.converterView.SetStyles(a.styles)
	a.statusBar.SetStyles(a.styles)
	a.statusBar.SetTheme(a.prefs.Theme)
	a.statusBar.SetTab(a.activeTab)
}

// View implements tea.Model.
// It renders the tab header, the active panel and the status bar.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var panel string
	switch a.activeTab {
	case domain.TabConverter:
		panel = a.converterView.View()
	default:
		panel = a.calculatorView.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		a.renderTabs(),
		"",
		panel,
		"",
		a.statusBar.View(),
	)
}

// renderTabs renders the panel header.
func (a *App) renderTabs() string {
	calcLabel := "Calculator"
	convLabel := "Converter"

	if a.activeTab == domain.TabConverter {
		return a.styles.TabInactive.Render(calcLabel) + "  " + a.styles.TabActive.Render(convLabel)
	}
	return a.styles.TabActive.Render(calcLabel) + "  " + a.styles.TabInactive.Render(convLabel)
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// ActiveTab returns the active panel.
func (a *App) ActiveTab() domain.Tab {
	return a.activeTab
}

// Preferences returns the loaded preferences.
func (a *App) Preferences() domain.Preferences {
	return a.prefs
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
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
	a.calculatorView.SetDimensions(width, height)
	a.converterView.SetDimensions(width, height)
	a.statusBar.SetWidth(width)
}
