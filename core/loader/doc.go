// Package loader mounts HTTP features onto the Fiber app.
//
// Each feature implements Feature:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps them in registration order and LoadAll mounts the enabled ones.
package loader
