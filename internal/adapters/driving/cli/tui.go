package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/herissonneves/quantio/internal/adapters/driven/config/file"
	"github.com/herissonneves/quantio/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command. The root command runs the same
// interface when invoked without a subcommand.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for Quantio.

The TUI provides a calculator and a unit converter in two tabs.

Controls:
  tab          - Switch between calculator and converter
  0-9 . + - * / - Enter digits and operators
  Enter / =    - Evaluate
  Esc / c      - Clear
  ctrl+t       - Toggle theme
  ctrl+g       - Toggle high contrast
  q / ctrl+c   - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("the interactive interface requires a terminal; see 'quantio --help' for one-shot commands")
	}

	ports := &tui.Ports{
		Calculator:  calculatorService,
		Converter:   converterService,
		Preferences: preferencesService,
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	// Reload the theme live when the settings commands rewrite the
	// preference file from another process.
	if configStore != nil {
		watcher, err := file.NewWatcher(configStore)
		if err == nil && watcher.Start() == nil {
			app.WithPreferenceChanges(watcher.Changes())
			defer func() { _ = watcher.Stop() }()
		}
	}

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
