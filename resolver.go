package injector

import (
	"fmt"
	"reflect"
	"slices"

	"go.uber.org/zap"
)

// resolve builds or returns the cached instance of t. path is the chain of
// types under construction from the root request down to t's parent; it is
// never mutated, each branch extends its own copy. Must hold c.mu.
func (c *Container) resolve(t reflect.Type, path []reflect.Type) (reflect.Value, error) {
	// A cached type can never be mid-construction.
	if v, ok := c.instances[t]; ok {
		c.logger.Debug("service cache hit", zap.Stringer("type", t))
		return v, nil
	}

	d, ok := c.registry.lookup(t)
	if !ok {
		return reflect.Value{}, &UnregisteredTypeError{Type: t.String()}
	}

	if slices.Contains(path, t) {
		return reflect.Value{}, newCircularDependencyError(t, path)
	}

	branch := make([]reflect.Type, len(path)+1)
	copy(branch, path)
	branch[len(path)] = t

	args, err := c.resolveParams(t, d.Params, branch)
	if err != nil {
		return reflect.Value{}, err
	}

	v, err := d.build(args)
	if err != nil {
		return reflect.Value{}, &ConstructionError{Type: t.String(), Err: err}
	}

	if existing, ok := c.instances[t]; ok {
		return existing, nil
	}
	c.instances[t] = v

	c.logger.Debug("service constructed",
		zap.Stringer("type", t),
		zap.Int("depth", len(path)),
	)
	return v, nil
}

// resolveParams resolves each distinct parameter type once, in declaration
// order, then fills every slot whose type matches. Two slots of the same type
// receive the same instance.
func (c *Container) resolveParams(owner reflect.Type, params []reflect.Type, path []reflect.Type) ([]reflect.Value, error) {
	if len(params) == 0 {
		return nil, nil
	}

	produced := make(map[reflect.Type]reflect.Value, len(params))
	for _, p := range params {
		if _, ok := produced[p]; ok {
			continue
		}
		v, err := c.resolve(p, path)
		if err != nil {
			return nil, fmt.Errorf("resolve dependency %s of %s: %w", p, owner, err)
		}
		produced[p] = v
	}

	args := make([]reflect.Value, len(params))
	for i, p := range params {
		args[i] = produced[p]
	}
	return args, nil
}

func newCircularDependencyError(t reflect.Type, path []reflect.Type) *CircularDependencyError {
	chain := make([]string, 0, len(path)+1)
	for _, p := range path {
		chain = append(chain, p.String())
	}
	chain = append(chain, t.String())
	return &CircularDependencyError{Type: t.String(), Path: chain}
}
