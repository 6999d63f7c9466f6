package services

import (
	"strings"

	"github.com/google/uuid"

	"github.com/herissonneves/quantio/internal/core/domain"
	"github.com/herissonneves/quantio/internal/core/ports/driving"
)

// Ensure CalculatorService implements the interface.
var _ driving.CalculatorService = (*CalculatorService)(nil)

// CalculatorService wraps one calculator session with the state-machine
// operations. The session moves between three implicit states: idle (no
// expression), pending operator (expression set, reset flag up) and
// accumulating (expression set, second operand being typed).
type CalculatorService struct {
	session *domain.Session
}

// NewCalculatorService creates a calculator service with a fresh session.
func NewCalculatorService() *CalculatorService {
	return &CalculatorService{
		session: domain.NewSession(uuid.New().String()),
	}
}

// ID returns the session identifier.
func (s *CalculatorService) ID() string {
	return s.session.ID
}

// Input returns the operand text currently displayed.
func (s *CalculatorService) Input() string {
	return s.session.Input
}

// Expression returns the pending expression text, or empty.
func (s *CalculatorService) Expression() string {
	return s.session.Expression
}

// Press maps a key identifier through the static token table and applies
// the resulting token. Unmapped keys return false and change nothing.
func (s *CalculatorService) Press(key string) bool {
	tok, ok := domain.MapKey(key)
	if !ok {
		return false
	}
	s.Apply(tok)
	return true
}

// Apply dispatches a single calculator token.
func (s *CalculatorService) Apply(tok domain.Token) {
	switch tok.Kind {
	case domain.TokenDigit:
		s.inputText(tok.Digit)
	case domain.TokenDecimal:
		s.inputText(".")
	case domain.TokenOperator:
		s.InputOperator(tok.Op)
	case domain.TokenEquals:
		s.Equals()
	case domain.TokenClear:
		s.Clear()
	case domain.TokenBackspace:
		s.Backspace()
	case domain.TokenPercent:
		s.Percent()
	case domain.TokenToggleSign:
		s.ToggleSign()
	}
}

// inputText handles digit and decimal entry. The engine imposes no length
// limit; display capacity is the caller's concern.
func (s *CalculatorService) inputText(text string) {
	sess := s.session
	switch {
	case sess.ShouldReset:
		sess.Input = text
		sess.ShouldReset = false
	case sess.Input == domain.DisplayZero && text != ".":
		sess.Input = text
	case text == "." && strings.Contains(sess.Input, "."):
		// Duplicate decimal separator is rejected.
	default:
		sess.Input += text
	}
}

// InputOperator records a pending operator. If a second operand has
// already been entered for a previous operator, the pending expression is
// evaluated first, re-basing the chain on its result (left-to-right,
// no precedence).
func (s *CalculatorService) InputOperator(op domain.Operator) {
	sess := s.session
	if sess.Expression != "" && !sess.ShouldReset {
		s.Equals()
	}
	sess.Expression = sess.Input + " " + op.String()
	sess.ShouldReset = true
}

// Equals evaluates the pending expression. Division by zero surfaces the
// error marker as the new input; other anomalies degrade to NaN. Either
// way the expression clears and the reset flag is set.
func (s *CalculatorService) Equals() {
	sess := s.session
	if sess.Expression == "" {
		return
	}

	first, op := splitExpression(sess.Expression)
	a := domain.ParseNumber(first)
	b := domain.ParseNumber(sess.Input)

	result := domain.Evaluate(a, op, b)
	if result.IsDivisionByZero() {
		sess.Input = domain.DisplayError
	} else {
		sess.Input = domain.FormatNumber(domain.RoundResult(result.Value()))
	}

	sess.Expression = ""
	sess.ShouldReset = true
}

// EvaluateBinary computes one binary operation outside the session.
func (s *CalculatorService) EvaluateBinary(a float64, op domain.Operator, b float64) string {
	result := domain.Evaluate(a, op, b)
	if result.IsDivisionByZero() {
		return domain.DisplayError
	}
	return domain.FormatNumber(domain.RoundResult(result.Value()))
}

// Clear resets the session to its initial state.
func (s *CalculatorService) Clear() {
	s.session.Reset()
}

// ToggleSign flips the sign of the current input. Zero stays zero.
func (s *CalculatorService) ToggleSign() {
	sess := s.session
	if sess.Input == domain.DisplayZero {
		return
	}
	if strings.HasPrefix(sess.Input, "-") {
		sess.Input = strings.TrimPrefix(sess.Input, "-")
	} else {
		sess.Input = "-" + sess.Input
	}
}

// Percent replaces the current input with its value divided by 100.
// Unlike Equals, no noise rounding or byte budget applies here; the
// behaviour is pinned by tests.
func (s *CalculatorService) Percent() {
	sess := s.session
	v := domain.ParseNumber(sess.Input)
	sess.Input = domain.FormatNumber(v / 100)
}

// Backspace removes the last input character, falling back to zero when
// the input empties.
func (s *CalculatorService) Backspace() {
	sess := s.session
	if len(sess.Input) <= 1 {
		sess.Input = domain.DisplayZero
		return
	}
	sess.Input = sess.Input[:len(sess.Input)-1]
	if sess.Input == "" {
		sess.Input = domain.DisplayZero
	}
}

// splitExpression separates "<firstOperand> <operator>" at the last space.
func splitExpression(expr string) (string, domain.Operator) {
	i := strings.LastIndex(expr, " ")
	if i < 0 {
		return expr, domain.Operator("")
	}
	return expr[:i], domain.Operator(expr[i+1:])
}
