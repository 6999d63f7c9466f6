// Package tui provides an interactive terminal user interface for quantio.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/herissonneves/quantio/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Calculator drives the calculator session.
	Calculator driving.CalculatorService

	// Converter performs unit conversions.
	Converter driving.ConverterService

	// Preferences manages persisted display preferences.
	Preferences driving.PreferencesService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	calculator driving.CalculatorService,
	converter driving.ConverterService,
	preferences driving.PreferencesService,
) *Ports {
	return &Ports{
		Calculator:  calculator,
		Converter:   converter,
		Preferences: preferences,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Calculator == nil {
		return ErrMissingCalculatorService
	}
	if p.Converter == nil {
		return ErrMissingConverterService
	}
	if p.Preferences == nil {
		return ErrMissingPreferencesService
	}
	return nil
}
