// Package logger builds the application's zap logger.
//
// Level "debug" selects zap's development preset; anything else the production preset.
// Format "console" switches to the colored console encoder.
//
// WithRayID attaches the request's RayID (set by the rayid middleware) so every log line
// of a request can be correlated:
//
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
