package injector

import (
	"reflect"
	"sort"
	"sync"
)

// registry stores one descriptor per registered type.
type registry struct {
	mu          sync.RWMutex
	descriptors map[reflect.Type]*ServiceDescriptor
	sealed      bool
}

func newRegistry() *registry {
	return &registry{
		descriptors: make(map[reflect.Type]*ServiceDescriptor, 16),
	}
}

func (r *registry) add(d *ServiceDescriptor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return ErrRegistrationClosed
	}
	if _, exists := r.descriptors[d.Type]; exists {
		return &DuplicateRegistrationError{Type: d.Type.String()}
	}
	r.descriptors[d.Type] = d
	return nil
}

func (r *registry) lookup(t reflect.Type) (*ServiceDescriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.descriptors[t]
	return d, ok
}

// seal ends the registration phase.
func (r *registry) seal() {
	r.mu.Lock()
	r.sealed = true
	r.mu.Unlock()
}

func (r *registry) isSealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}

// types returns the registered types ordered by name.
func (r *registry) types() []reflect.Type {
	r.mu.RLock()
	out := make([]reflect.Type, 0, len(r.descriptors))
	for t := range r.descriptors {
		out = append(out, t)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		si, sj := out[i].String(), out[j].String()
		if si != sj {
			return si < sj
		}
		return typeID(out[i]) < typeID(out[j])
	})
	return out
}

func (r *registry) has(t reflect.Type) bool {
	_, ok := r.lookup(t)
	return ok
}
