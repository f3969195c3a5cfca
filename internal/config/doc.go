// Package config loads typy's configuration file.
//
// # Overview
//
// typy reads an optional TOML file with up to five tables. Every table and
// every key is optional, and an unset value stays nil all the way to the
// caller: this package never substitutes defaults. Consumers (the ui and
// modes packages) apply their own fallbacks at the point of use.
//
// # Configuration Discovery
//
// Load probes these candidates in order and uses the first one it can read:
//
//  1. ./config.toml (relative to the working directory)
//  2. ~/.config/typy/config.toml (skipped when no home directory resolves)
//
// When nothing is readable the content is empty and every table is unset.
//
// # TOML Format
//
//	[theme]
//	fg = "#a6e3a1"
//	missing = "#585b70"
//	error = "#f38ba8"
//	accent = "#cba6f7"
//
//	[graph]
//	data = "#89b4fa"
//	title = "#cdd6f4"
//	axis = "#6c7086"
//
//	[cursor]
//	style = "steady-bar"
//
//	[modes]
//	default_mode = "normal"
//	uppercase_chance = "0.25"
//	punctuation_chance = "0.1"
//
//	[language]
//	lang = "english"
//
// Unknown keys and tables are ignored. A recognized key holding anything
// other than a string fails the whole file.
//
// # Error Handling
//
// Load has no error return. Missing files, unreadable files and decode
// failures all produce a Config with every table unset. LoadFrom also
// returns a Report so that the caller can log a warning; see
// Report.Warnings.
//
// # Global Access
//
// Global returns a process-wide Store, built on first call with sync.Once.
// Store guards the Config with a sync.RWMutex and hands out deep copies.
// Prefer passing a *Store (or a Config) explicitly; Global exists for code
// that has no natural injection point.
package config
