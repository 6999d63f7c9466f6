// Package domain defines the core computation types for quantio.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Session: A calculator's editing state (operand, pending expression, reset flag)
//   - EvalResult: A tagged binary-operation outcome (numeric or division by zero)
//   - Token: A calculator input token from the static key mapping
//   - UnitDefinition: One unit within a conversion category
//   - Preferences: Persisted display preferences (theme, contrast, last selections)
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
