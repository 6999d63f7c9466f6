package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/herissonneves/quantio/internal/core/domain"
	"github.com/herissonneves/quantio/internal/logger"
)

var convertCategory string

var convertCmd = &cobra.Command{
	Use:   "convert [value] [from] [to]",
	Short: "Convert a value between units",
	Long: `Converts a value from one unit to another.

Units are given by abbreviation (m, kg, °F) or full name (metres,
kilograms, fahrenheit). The category is inferred from the units; use
--category to disambiguate when an abbreviation appears in more than
one category.

Examples:
  quantio convert 2.5 km m
  quantio convert 100 °C °F
  quantio convert 1 gal l --category volume`,
	Args: cobra.ExactArgs(3),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertCategory, "category", "c", "", "unit category (length, mass, temperature, volume, time)")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	if converterService == nil {
		return errors.New("converter service not configured")
	}

	if _, err := strconv.ParseFloat(args[0], 64); err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidNumber, args[0])
	}

	category, fromIdx, toIdx, err := resolveUnits(args[1], args[2])
	if err != nil {
		return err
	}

	logger.Debug("converting %s %s to %s in category %s", args[0], args[1], args[2], category)

	result := converterService.ConvertText(args[0], fromIdx, toIdx, category)
	units := converterService.Units(category)
	cmd.Printf("%s %s = %s %s\n", args[0], units[fromIdx].Abbrev, result, units[toIdx].Abbrev)
	return nil
}

// resolveUnits finds the category containing both units. With
// --category set only that category is searched.
func resolveUnits(from, to string) (domain.Category, int, int, error) {
	categories := converterService.Categories()
	if convertCategory != "" {
		c := domain.Category(convertCategory)
		if !c.IsValid() {
			return "", 0, 0, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, convertCategory)
		}
		categories = []domain.Category{c}
	}

	for _, c := range categories {
		fromIdx, okFrom := domain.FindUnit(c, from)
		toIdx, okTo := domain.FindUnit(c, to)
		if okFrom && okTo {
			return c, fromIdx, toIdx, nil
		}
	}

	return "", 0, 0, fmt.Errorf("%w: no category contains both %q and %q", domain.ErrUnknownUnit, from, to)
}
