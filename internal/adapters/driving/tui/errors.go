package tui

import "errors"

// ErrMissingCalculatorService is returned when the calculator service is not provided.
var ErrMissingCalculatorService = errors.New("tui: calculator service is required")

// ErrMissingConverterService is returned when the converter service is not provided.
var ErrMissingConverterService = errors.New("tui: converter service is required")

// ErrMissingPreferencesService is returned when the preferences service is not provided.
var ErrMissingPreferencesService = errors.New("tui: preferences service is required")
