// Package server holds the maintenance HTTP server configuration.
//
// The cmd start command builds the Fiber app from this Config; the package itself only
// defines the settings and their validation.
package server
