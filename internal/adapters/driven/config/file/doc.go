// Package file provides TOML-backed preference persistence.
//
// Preferences live in a single config.toml under the quantio config
// directory (default ~/.quantio). Nested tables are flattened into
// dot-notation keys, so "appearance.theme" addresses
//
//	[appearance]
//	theme = "dark"
//
// The package also provides a Watcher that signals when another process
// (typically the CLI's settings commands) rewrites the file, so a
// running TUI can reload its theme live.
package file
