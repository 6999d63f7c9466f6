package domain

import (
	"math"
	"strings"
)

// Category names a unit-conversion category.
type Category string

// The conversion categories.
const (
	// CategoryLength converts through the metre.
	CategoryLength Category = "length"

	// CategoryMass converts through the gram.
	CategoryMass Category = "mass"

	// CategoryTemperature converts through Celsius with affine formulas.
	CategoryTemperature Category = "temperature"

	// CategoryVolume converts through the litre.
	CategoryVolume Category = "volume"

	// CategoryTime converts through the second.
	CategoryTime Category = "time"
)

// IsValid returns true if the category is recognised.
func (c Category) IsValid() bool {
	switch c {
	case CategoryLength, CategoryMass, CategoryTemperature, CategoryVolume, CategoryTime:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c Category) String() string {
	return string(c)
}

// Description returns a human-readable description of the category.
func (c Category) Description() string {
	switch c {
	case CategoryLength:
		return "Length (base: metre)"
	case CategoryMass:
		return "Mass (base: gram)"
	case CategoryTemperature:
		return "Temperature (Celsius pivot)"
	case CategoryVolume:
		return "Volume (base: litre)"
	case CategoryTime:
		return "Time (base: second)"
	default:
		return "Unknown"
	}
}

// AllCategories returns every conversion category in display order.
func AllCategories() []Category {
	return []Category{
		CategoryLength,
		CategoryMass,
		CategoryTemperature,
		CategoryVolume,
		CategoryTime,
	}
}

// UnitDefinition is one unit within a category. Factor is the
// multiplicative ratio to the category's base unit and is positive and
// nonzero for every non-temperature unit. Temperature units carry no
// factor; they convert through the affine Celsius formulas instead.
type UnitDefinition struct {
	Name   string
	Abbrev string
	Factor float64
}

// Temperature unit abbreviations, in catalog order.
const (
	abbrevCelsius    = "°C"
	abbrevFahrenheit = "°F"
	abbrevKelvin     = "K"
)

// catalog is the process-wide static unit configuration. Ordering matters
// only in that indices reference positions for selection.
var catalog = map[Category][]UnitDefinition{
	CategoryLength: {
		{Name: "Metre", Abbrev: "m", Factor: 1},
		{Name: "Kilometre", Abbrev: "km", Factor: 1000},
		{Name: "Centimetre", Abbrev: "cm", Factor: 0.01},
		{Name: "Millimetre", Abbrev: "mm", Factor: 0.001},
		{Name: "Mile", Abbrev: "mi", Factor: 1609.344},
		{Name: "Yard", Abbrev: "yd", Factor: 0.9144},
		{Name: "Foot", Abbrev: "ft", Factor: 0.3048},
		{Name: "Inch", Abbrev: "in", Factor: 0.0254},
	},
	CategoryMass: {
		{Name: "Gram", Abbrev: "g", Factor: 1},
		{Name: "Kilogram", Abbrev: "kg", Factor: 1000},
		{Name: "Milligram", Abbrev: "mg", Factor: 0.001},
		{Name: "Tonne", Abbrev: "t", Factor: 1e6},
		{Name: "Pound", Abbrev: "lb", Factor: 453.59237},
		{Name: "Ounce", Abbrev: "oz", Factor: 28.349523125},
	},
	CategoryTemperature: {
		{Name: "Celsius", Abbrev: abbrevCelsius},
		{Name: "Fahrenheit", Abbrev: abbrevFahrenheit},
		{Name: "Kelvin", Abbrev: abbrevKelvin},
	},
	CategoryVolume: {
		{Name: "Litre", Abbrev: "l", Factor: 1},
		{Name: "Millilitre", Abbrev: "ml", Factor: 0.001},
		{Name: "Cubic metre", Abbrev: "m³", Factor: 1000},
		{Name: "Gallon (US)", Abbrev: "gal", Factor: 3.785411784},
		{Name: "Quart (US)", Abbrev: "qt", Factor: 0.946352946},
		{Name: "Pint (US)", Abbrev: "pt", Factor: 0.473176473},
		{Name: "Fluid ounce (US)", Abbrev: "floz", Factor: 0.0295735295625},
	},
	CategoryTime: {
		{Name: "Second", Abbrev: "s", Factor: 1},
		{Name: "Millisecond", Abbrev: "ms", Factor: 0.001},
		{Name: "Minute", Abbrev: "min", Factor: 60},
		{Name: "Hour", Abbrev: "h", Factor: 3600},
		{Name: "Day", Abbrev: "d", Factor: 86400},
		{Name: "Week", Abbrev: "wk", Factor: 604800},
	},
}

// UnitsFor returns the ordered unit list for a category, or nil for an
// unknown category. Callers must treat the slice as read-only.
func UnitsFor(c Category) []UnitDefinition {
	return catalog[c]
}

// FindUnit resolves a unit name or abbreviation to its index within a
// category. Abbreviations match exactly; names match case-insensitively.
func FindUnit(c Category, key string) (int, bool) {
	units := catalog[c]
	for i, u := range units {
		if u.Abbrev == key || strings.EqualFold(u.Name, key) {
			return i, true
		}
	}
	return 0, false
}

// Convert computes the target-unit value for a source-unit value within
// one category. Precondition failures (NaN value, out-of-range index)
// yield 0, not an error; conversion failures are silent. The result is
// not rounded here; callers apply the 9-decimal noise suppression before
// formatting.
func Convert(value float64, fromIdx, toIdx int, c Category) float64 {
	if math.IsNaN(value) {
		return 0
	}
	units := catalog[c]
	if fromIdx < 0 || fromIdx >= len(units) || toIdx < 0 || toIdx >= len(units) {
		return 0
	}

	if c == CategoryTemperature {
		celsius := toCelsius(value, units[fromIdx].Abbrev)
		return fromCelsius(celsius, units[toIdx].Abbrev)
	}

	return value * units[fromIdx].Factor / units[toIdx].Factor
}

// toCelsius normalises an inbound temperature to the Celsius pivot.
func toCelsius(v float64, abbrev string) float64 {
	switch abbrev {
	case abbrevFahrenheit:
		return (v - 32) * 5 / 9
	case abbrevKelvin:
		return v - 273.15
	default:
		return v
	}
}

// fromCelsius projects a Celsius value to the target temperature unit.
func fromCelsius(c float64, abbrev string) float64 {
	switch abbrev {
	case abbrevFahrenheit:
		return c*9/5 + 32
	case abbrevKelvin:
		return c + 273.15
	default:
		return c
	}
}
