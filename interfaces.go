package injector

import "reflect"

// ServiceProvider resolves fully constructed services by type.
type ServiceProvider interface {
	// GetService returns the singleton instance for t, building its
	// dependency graph on first use.
	GetService(t reflect.Type) (any, error)
}

// Registrar accepts service registrations during application setup.
type Registrar interface {
	// Register validates reg and stores its descriptor.
	Register(reg Registration) error
}

// Option configures a Container.
type Option func(c *Container)
