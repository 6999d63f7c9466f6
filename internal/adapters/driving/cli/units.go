package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/herissonneves/quantio/internal/core/domain"
)

var unitsCmd = &cobra.Command{
	Use:   "units [category]",
	Short: "List conversion categories and units",
	Long: `Lists available unit categories, or the units within one category.

Examples:
  quantio units
  quantio units length`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUnits,
}

func init() {
	rootCmd.AddCommand(unitsCmd)
}

func runUnits(cmd *cobra.Command, args []string) error {
	if converterService == nil {
		return errors.New("converter service not configured")
	}

	if len(args) == 0 {
		cmd.Println("Categories:")
		for _, c := range converterService.Categories() {
			cmd.Printf("  %-12s %s\n", c, c.Description())
		}
		return nil
	}

	category := domain.Category(args[0])
	if !category.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownCategory, args[0])
	}

	cmd.Printf("Units in %s:\n", category.Description())
	for _, u := range converterService.Units(category) {
		cmd.Printf("  %-6s %s\n", u.Abbrev, u.Name)
	}
	return nil
}
