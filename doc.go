// Package injector provides a minimal constructor-injection container.
//
// Types are registered with at most one constructor function. The
// constructor's parameters are the type's dependencies; the container
// resolves them depth-first, builds each type exactly once and hands the
// same instance to every later request.
//
//	c := injector.New()
//	_ = injector.Provide[*Config](c)
//	_ = injector.Provide[*Repo](c, NewRepo)       // func NewRepo(cfg *Config) *Repo
//	_ = injector.Provide[Handler](c, NewHandler)  // func NewHandler(r *Repo) (*HTTPHandler, error)
//
//	h, err := injector.Resolve[Handler](c)
//
// Registration and resolution are separate phases. Once the first service
// has been resolved further registrations fail with ErrRegistrationClosed.
package injector
