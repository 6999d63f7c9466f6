// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/herissonneves/quantio/internal/core/domain"
)

// TabChanged is sent when switching between the calculator and
// converter panels.
type TabChanged struct {
	Tab domain.Tab
}

// PreferencesLoaded carries the persisted preferences into the model.
type PreferencesLoaded struct {
	Prefs domain.Preferences
	Err   error
}

// PreferencesSaved signals a preference write completed.
type PreferencesSaved struct {
	Err error
}

// PreferenceFileChanged signals that another process rewrote the
// preference file and the model should reload.
type PreferenceFileChanged struct{}

// CategoryChanged is sent when the converter's category selection moves.
type CategoryChanged struct {
	Category domain.Category
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
