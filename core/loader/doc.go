// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface and mounts its routes when
// loaded:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps features in registration order. LoadAll skips disabled
// features and stops at the first one that fails to load.
package loader
