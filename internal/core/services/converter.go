package services

import (
	"github.com/herissonneves/quantio/internal/core/domain"
	"github.com/herissonneves/quantio/internal/core/ports/driving"
)

// Ensure ConverterService implements the interface.
var _ driving.ConverterService = (*ConverterService)(nil)

// ConverterService performs unit conversions and byte-budget formatting.
// It carries no state beyond the configured budget.
type ConverterService struct {
	budget int
}

// NewConverterService creates a converter service with the default
// 8-byte output budget.
func NewConverterService() *ConverterService {
	return &ConverterService{budget: domain.DefaultByteBudget}
}

// Convert computes the raw converted value. NaN values and out-of-range
// indices yield 0; conversion failures are silent.
func (s *ConverterService) Convert(value float64, fromIdx, toIdx int, category domain.Category) float64 {
	return domain.Convert(value, fromIdx, toIdx, category)
}

// ConvertText parses input text, converts, rounds to 9 decimal places to
// suppress floating-point noise (mirroring the calculator's policy) and
// formats within the byte budget.
func (s *ConverterService) ConvertText(raw string, fromIdx, toIdx int, category domain.Category) string {
	value := domain.ParseNumber(raw)
	converted := domain.Convert(value, fromIdx, toIdx, category)
	return domain.FormatWithBudget(domain.RoundResult(converted), s.budget)
}

// ClampInput applies the byte budget to the input field's own text.
func (s *ConverterService) ClampInput(raw string) string {
	return domain.ClampNumericText(raw, s.budget)
}

// Categories returns the conversion categories in display order.
func (s *ConverterService) Categories() []domain.Category {
	return domain.AllCategories()
}

// Units returns the ordered unit list for a category.
func (s *ConverterService) Units(category domain.Category) []domain.UnitDefinition {
	return domain.UnitsFor(category)
}
