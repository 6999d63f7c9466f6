package driving

import "github.com/herissonneves/quantio/internal/core/domain"

// ConverterService performs unit conversions and byte-budget formatting.
// It is stateless; every call is a pure computation.
type ConverterService interface {
	// Convert computes the raw converted value. Precondition failures
	// yield 0, silently.
	Convert(value float64, fromIdx, toIdx int, category domain.Category) float64

	// ConvertText parses input text, converts, applies the 9-decimal
	// noise rounding and formats within the byte budget.
	ConvertText(raw string, fromIdx, toIdx int, category domain.Category) string

	// ClampInput applies the byte budget to the input field's own text,
	// letting transient text ("", "-", ".") pass through.
	ClampInput(raw string) string

	// Categories returns the conversion categories in display order.
	Categories() []domain.Category

	// Units returns the ordered unit list for a category.
	Units(category domain.Category) []domain.UnitDefinition
}
