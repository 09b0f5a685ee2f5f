package injector

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Container registers types and resolves them into singleton instances.
// It is safe for concurrent use; resolutions are serialized so a singleton
// is never constructed twice.
type Container struct {
	registry *registry
	logger   *zap.Logger

	// mu guards instances and serializes top-level resolutions.
	// owner is the ID of the goroutine holding mu, 0 when free.
	mu        sync.Mutex
	owner     atomic.Int64
	instances map[reflect.Type]reflect.Value
}

// New creates an empty container.
func New(opts ...Option) *Container {
	c := &Container{
		registry:  newRegistry(),
		logger:    zap.NewNop(),
		instances: make(map[reflect.Type]reflect.Value, 16),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewWithServices creates a container and registers regs in order.
// It fails on the first registration error.
func NewWithServices(regs []Registration, opts ...Option) (*Container, error) {
	c := New(opts...)
	if err := c.RegisterMany(regs...); err != nil {
		return nil, err
	}
	return c, nil
}

// WithLogger sets the logger used for registration and resolution events.
// A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Container) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Register validates reg and stores its descriptor.
// Returns AmbiguousConstructorError if reg carries more than one constructor,
// InvalidConstructorError if the constructor cannot build the type,
// DuplicateRegistrationError if the type is already registered and
// ErrRegistrationClosed once resolution has started.
func (c *Container) Register(reg Registration) error {
	d, err := newDescriptor(reg)
	if err != nil {
		return errors.Wrapf(err, "register %s", reg.typeName())
	}
	if err := c.registry.add(d); err != nil {
		return errors.Wrapf(err, "register %s", reg.typeName())
	}

	c.logger.Debug("service registered",
		zap.Stringer("type", d.Type),
		zap.Int("params", len(d.Params)),
	)
	return nil
}

// RegisterMany registers regs in order, stopping at the first error.
// Registrations that succeeded before the error are kept.
func (c *Container) RegisterMany(regs ...Registration) error {
	for _, reg := range regs {
		if err := c.Register(reg); err != nil {
			return err
		}
	}
	return nil
}

// Provide registers T on r with at most one constructor.
func Provide[T any](r Registrar, ctors ...any) error {
	return r.Register(Service[T](ctors...))
}

// Descriptor returns a copy of the descriptor registered for t.
func (c *Container) Descriptor(t reflect.Type) (ServiceDescriptor, bool) {
	d, ok := c.registry.lookup(t)
	if !ok {
		return ServiceDescriptor{}, false
	}
	return d.clone(), true
}

// Registered reports whether t has been registered.
func (c *Container) Registered(t reflect.Type) bool {
	return c.registry.has(t)
}

// Types returns all registered types ordered by name.
func (c *Container) Types() []reflect.Type {
	return c.registry.types()
}

// Resolved reports whether an instance of t has been cached.
func (c *Container) Resolved(t reflect.Type) bool {
	release, _ := c.acquire()
	defer release()
	_, ok := c.instances[t]
	return ok
}

// GetService returns the singleton instance for t.
// Returns UnregisteredTypeError if t or one of its dependencies was never
// registered, CircularDependencyError if the graph rooted at t is cyclic and
// ConstructionError if a constructor failed.
//
// Constructors receive their dependencies as parameters and must not call
// back into the container. Such a call, made on the resolving goroutine,
// fails with ReentrantResolutionError. A constructor that waits on another
// goroutine resolving from the same container blocks forever.
func (c *Container) GetService(t reflect.Type) (any, error) {
	if t == nil {
		return nil, &UnregisteredTypeError{Type: "<nil>"}
	}

	c.registry.seal()

	release, held := c.acquire()
	if held {
		err := &ReentrantResolutionError{Type: t.String()}
		c.logger.Warn("service resolution failed", zap.Stringer("type", t), zap.Error(err))
		return nil, err
	}
	defer release()

	v, err := c.resolve(t, nil)
	if err != nil {
		c.logger.Warn("service resolution failed", zap.Stringer("type", t), zap.Error(err))
		return nil, err
	}
	return v.Interface(), nil
}

// Resolve returns the singleton instance of T from p.
func Resolve[T any](p ServiceProvider) (T, error) {
	var zero T
	t := reflect.TypeOf((*T)(nil)).Elem()

	instance, err := p.GetService(t)
	if err != nil {
		return zero, err
	}
	if instance == nil {
		return zero, nil
	}

	typed, ok := instance.(T)
	if !ok {
		return zero, fmt.Errorf("resolve %s: got %T", t, instance)
	}
	return typed, nil
}

// MustResolve is like Resolve but panics on error. Intended for bootstrap code paths.
func MustResolve[T any](p ServiceProvider) T {
	typed, err := Resolve[T](p)
	if err != nil {
		panic(err)
	}
	return typed
}

// Sealed reports whether the registration phase has ended.
func (c *Container) Sealed() bool {
	return c.registry.isSealed()
}
