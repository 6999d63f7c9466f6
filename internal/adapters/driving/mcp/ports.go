package mcp

import (
	"github.com/herissonneves/quantio/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Calculator evaluates binary arithmetic operations.
	Calculator driving.CalculatorService

	// Converter performs unit conversions.
	Converter driving.ConverterService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Calculator == nil {
		return ErrMissingCalculatorService
	}
	if p.Converter == nil {
		return ErrMissingConverterService
	}
	return nil
}
