package domain

import (
	"math"
	"strconv"
)

// DisplayError is the literal marker shown after division by zero.
// It replaces the current input as-is and is never parsed back into
// a meaningful number.
const DisplayError = "Error"

// DisplayZero is the calculator's fallback operand text.
const DisplayZero = "0"

// Operator is one of the calculator's four binary operator symbols.
type Operator string

// The fixed operator set.
const (
	// OpAdd is addition.
	OpAdd Operator = "+"

	// OpSubtract is subtraction.
	OpSubtract Operator = "-"

	// OpMultiply is multiplication.
	OpMultiply Operator = "×"

	// OpDivide is division.
	OpDivide Operator = "÷"
)

// IsValid returns true if the operator is recognised.
func (o Operator) IsValid() bool {
	switch o {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return true
	default:
		return false
	}
}

// String returns the display symbol.
func (o Operator) String() string {
	return string(o)
}

// AllOperators returns the fixed operator set.
func AllOperators() []Operator {
	return []Operator{OpAdd, OpSubtract, OpMultiply, OpDivide}
}

// EvalResult is a tagged binary-operation outcome: either a numeric value
// or a division-by-zero marker. An unknown operator yields Numeric(NaN),
// which signals a programming error rather than a user-facing one.
type EvalResult struct {
	value     float64
	divByZero bool
}

// Numeric wraps a numeric evaluation outcome.
func Numeric(v float64) EvalResult {
	return EvalResult{value: v}
}

// DivisionByZero marks an evaluation that divided by zero.
func DivisionByZero() EvalResult {
	return EvalResult{divByZero: true}
}

// IsDivisionByZero returns true if the evaluation divided by zero.
func (r EvalResult) IsDivisionByZero() bool {
	return r.divByZero
}

// Value returns the numeric outcome. Only meaningful when
// IsDivisionByZero is false.
func (r EvalResult) Value() float64 {
	return r.value
}

// Evaluate applies a single binary operation. Division by zero yields the
// tagged DivisionByZero result for any dividend, including zero.
func Evaluate(a float64, op Operator, b float64) EvalResult {
	switch op {
	case OpAdd:
		return Numeric(a + b)
	case OpSubtract:
		return Numeric(a - b)
	case OpMultiply:
		return Numeric(a * b)
	case OpDivide:
		if b == 0 {
			return DivisionByZero()
		}
		return Numeric(a / b)
	default:
		return Numeric(math.NaN())
	}
}

// RoundResult rounds to 9 decimal places to suppress floating-point noise
// in displayed results.
func RoundResult(x float64) float64 {
	return math.Round(x*1e9) / 1e9
}

// FormatNumber renders the canonical decimal string for a value: the
// shortest decimal text that parses back to the same number. Exponent
// forms never come out of this function; those are the byte-budget
// formatter's business.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseNumber parses operand text as an IEEE-754 double. Text that does
// not parse (including DisplayError) degrades to NaN rather than an error.
func ParseNumber(text string) float64 {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// Session holds one calculator's editing state. It is exclusively owned
// and mutated by whichever adapter drives it; there is no concurrent access.
type Session struct {
	// ID identifies the session.
	ID string

	// Input is the operand currently being edited or just computed.
	// Always a numeric literal, DisplayZero, or DisplayError.
	Input string

	// Expression is empty, or "<firstOperand> <operator>" pending a
	// second operand.
	Expression string

	// ShouldReset marks that the next digit entry starts a fresh operand
	// rather than extending the current one. Set after an operator or
	// equals is applied.
	ShouldReset bool
}

// NewSession returns a session in its initial state.
func NewSession(id string) *Session {
	return &Session{
		ID:    id,
		Input: DisplayZero,
	}
}

// Reset returns the session to its initial state, keeping its identity.
func (s *Session) Reset() {
	s.Input = DisplayZero
	s.Expression = ""
	s.ShouldReset = false
}
