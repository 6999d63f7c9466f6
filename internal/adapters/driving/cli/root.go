// Package cli provides the command-line interface adapter for quantio.
// It is a driving adapter in the hexagonal architecture: commands parse
// user input and call into the core services through the driving ports.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/herissonneves/quantio/internal/adapters/driven/config/file"
	"github.com/herissonneves/quantio/internal/core/ports/driving"
	"github.com/herissonneves/quantio/internal/core/services"
	"github.com/herissonneves/quantio/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services the commands call into. Wired in initServices, replaceable
// in tests.
var (
	calculatorService  driving.CalculatorService
	converterService   driving.ConverterService
	preferencesService driving.PreferencesService
)

// configStore is kept so the tui command can attach a file watcher.
var configStore *file.ConfigStore

// verbose mirrors the --verbose persistent flag.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "quantio",
	Short: "Calculator and unit converter",
	Long: `Quantio is a calculator and unit converter for the terminal.

Run without arguments to launch the interactive interface, or use the
one-shot commands for scripting:

  quantio calc 5 + 3
  quantio convert 2.5 km m
  quantio units length`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

// initServices wires the core services behind the driving ports. The
// calculator and converter are pure; only preferences need storage.
func initServices() error {
	calculatorService = services.NewCalculatorService()
	converterService = services.NewConverterService()

	store, err := file.NewConfigStore(os.Getenv("QUANTIO_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("initialise config store: %w", err)
	}
	configStore = store
	preferencesService = services.NewPreferencesService(store)

	return nil
}

// Execute wires the services and runs the root command. It is the
// entry point called from main.
func Execute() {
	if err := initServices(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
