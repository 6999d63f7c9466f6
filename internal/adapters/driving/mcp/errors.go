// Package mcp provides an MCP (Model Context Protocol) server adapter
// for quantio. It exposes the calculator and unit converter as tools
// that AI assistants can call.
package mcp

import "errors"

// ErrMissingCalculatorService is returned when the calculator service is not provided.
var ErrMissingCalculatorService = errors.New("mcp: calculator service is required")

// ErrMissingConverterService is returned when the converter service is not provided.
var ErrMissingConverterService = errors.New("mcp: converter service is required")
