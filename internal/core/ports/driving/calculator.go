package driving

import "github.com/herissonneves/quantio/internal/core/domain"

// CalculatorService drives one calculator session. All operations run to
// completion synchronously; the session is exclusively owned by the
// adapter that created the service.
type CalculatorService interface {
	// ID returns the session identifier.
	ID() string

	// Input returns the operand text currently displayed.
	Input() string

	// Expression returns the pending expression text, or empty.
	Expression() string

	// Press maps a key identifier through the static token table and
	// applies it. Returns false for unmapped keys, which are ignored.
	Press(key string) bool

	// Apply applies a single calculator token.
	Apply(tok domain.Token)

	// EvaluateBinary computes a single binary operation outside the
	// session, returning the rounded canonical result text or the
	// error marker for division by zero.
	EvaluateBinary(a float64, op domain.Operator, b float64) string

	// Clear resets the session to its initial state.
	Clear()
}
