// Package app is the composition root for typy.
//
// # Overview
//
// Run obtains the configuration store, resolves it into UI settings and
// starts the TUI:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Global()       One-time load of config.toml
//	       ├─────> Resolve()             Theme, cursor, modes, language
//	       │        └─> logger.Warn()    Unreadable or invalid config
//	       └─────> ui.Run()              Start TUI (blocks)
//
// # Error Handling
//
// Configuration problems are never fatal. The config package reports them in
// a config.Report; Resolve logs each one as a warning and continues with
// defaults. Only a failure of the TUI itself is returned from Run.
//
// # Dependency Injection
//
// Options.Store lets callers and tests supply a config.Store built with
// config.NewStore instead of the process-wide one.
package app
