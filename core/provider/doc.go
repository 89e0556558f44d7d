// Package provider describes a database engine adapter: its ORM dialect, its static
// metadata (connection parameters and ordered script lists) and the optional
// engine-specific function runner.
//
// Engines live under feature/ and are selected once at startup; the selected Provider
// value is passed explicitly to whatever needs it instead of being installed in a
// process-wide slot.
package provider
