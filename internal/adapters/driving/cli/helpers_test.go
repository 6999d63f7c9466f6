package cli

import (
	"bytes"

	"github.com/herissonneves/quantio/internal/adapters/driven/storage/memory"
	"github.com/herissonneves/quantio/internal/core/services"
)

// setupTestServices wires real services backed by an in-memory config
// store and returns a cleanup that restores the previous wiring.
func setupTestServices() func() {
	oldCalculator := calculatorService
	oldConverter := converterService
	oldPreferences := preferencesService

	calculatorService = services.NewCalculatorService()
	converterService = services.NewConverterService()
	preferencesService = services.NewPreferencesService(memory.NewConfigStore())

	return func() {
		calculatorService = oldCalculator
		converterService = oldConverter
		preferencesService = oldPreferences
	}
}

// execute runs the root command with args and captures combined output.
func execute(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
