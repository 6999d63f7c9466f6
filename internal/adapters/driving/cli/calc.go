package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/herissonneves/quantio/internal/core/domain"
	"github.com/herissonneves/quantio/internal/logger"
)

var calcCmd = &cobra.Command{
	Use:   "calc [a] [operator] [b]",
	Short: "Evaluate a single binary operation",
	Long: `Evaluates one binary arithmetic operation and prints the result.

The operator may be written as +, -, *, x or / (quote * in most shells).
Division by zero prints "Error". Results are rounded to nine decimal
places to suppress floating-point noise.

Examples:
  quantio calc 5 + 3
  quantio calc 0.1 + 0.2
  quantio calc 10 / 4`,
	Args: cobra.ExactArgs(3),
	RunE: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)
}

func runCalc(cmd *cobra.Command, args []string) error {
	if calculatorService == nil {
		return errors.New("calculator service not configured")
	}

	a, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidNumber, args[0])
	}

	b, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("%w: %q", domain.ErrInvalidNumber, args[2])
	}

	op, err := parseOperator(args[1])
	if err != nil {
		return err
	}

	logger.Debug("evaluating %v %s %v", a, op, b)

	cmd.Println(calculatorService.EvaluateBinary(a, op, b))
	return nil
}

// parseOperator maps an operator argument through the key-token table,
// so the CLI accepts the same spellings the interactive interface does.
func parseOperator(arg string) (domain.Operator, error) {
	tok, ok := domain.MapKey(arg)
	if !ok || tok.Kind != domain.TokenOperator {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidOperator, arg)
	}
	return tok.Op, nil
}
