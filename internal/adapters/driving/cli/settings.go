package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/herissonneves/quantio/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage display preferences",
	Long: `View and configure display preferences.

Preferences persist across runs; a running interactive session picks
up changes live.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current preferences",
	RunE:  runSettingsShow,
}

var settingsThemeCmd = &cobra.Command{
	Use:   "theme [dark|light]",
	Short: "Set the colour theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsTheme,
}

var settingsContrastCmd = &cobra.Command{
	Use:   "contrast [on|off]",
	Short: "Toggle high-contrast mode",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsContrast,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsThemeCmd)
	settingsCmd.AddCommand(settingsContrastCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if preferencesService == nil {
		return errors.New("preferences service not configured")
	}

	prefs, err := preferencesService.Get()
	if err != nil {
		return fmt.Errorf("failed to get preferences: %w", err)
	}

	cmd.Println("Current Preferences")
	cmd.Println("===================")
	cmd.Println()

	cmd.Println("[Appearance]")
	cmd.Printf("  Theme: %s\n", prefs.Theme.Description())
	contrast := "off"
	if prefs.HighContrast {
		contrast = "on"
	}
	cmd.Printf("  High contrast: %s\n", contrast)
	cmd.Println()

	cmd.Println("[Session]")
	cmd.Printf("  Last category: %s\n", prefs.LastCategory.Description())
	cmd.Printf("  Active tab: %s\n", prefs.ActiveTab)

	return nil
}

func runSettingsTheme(cmd *cobra.Command, args []string) error {
	if preferencesService == nil {
		return errors.New("preferences service not configured")
	}

	theme := domain.Theme(args[0])
	if err := preferencesService.SetTheme(theme); err != nil {
		return fmt.Errorf("failed to set theme: %w", err)
	}

	cmd.Printf("Theme set to: %s\n", theme.Description())
	return nil
}

func runSettingsContrast(cmd *cobra.Command, args []string) error {
	if preferencesService == nil {
		return errors.New("preferences service not configured")
	}

	var enabled bool
	switch args[0] {
	case "on":
		enabled = true
	case "off":
		enabled = false
	default:
		return fmt.Errorf("invalid contrast value %q: use on or off", args[0])
	}

	if err := preferencesService.SetHighContrast(enabled); err != nil {
		return fmt.Errorf("failed to set high contrast: %w", err)
	}

	cmd.Printf("High contrast: %s\n", args[0])
	return nil
}
