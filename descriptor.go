package injector

import (
	"fmt"
	"reflect"
	"slices"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

type buildFunc func(args []reflect.Value) (reflect.Value, error)

// ServiceDescriptor is the declared shape of a registered type: the type
// itself and the ordered parameter types of its single constructor.
type ServiceDescriptor struct {
	Type   reflect.Type
	Params []reflect.Type
	build  buildFunc
}

// Registration is a type paired with its candidate constructors. It is
// validated when handed to Container.Register.
type Registration struct {
	typ   reflect.Type
	ctors []any
}

// Service describes T as a registrable type.
//
// With no constructor T is built parameterless: pointer types receive a newly
// allocated zero element, other types their zero value. With one constructor
// the constructor must be a function returning T (or a type assignable to T),
// optionally followed by an error. More than one constructor is rejected at
// registration time. A constructor must take what it needs as parameters;
// calling the container from inside it fails with ReentrantResolutionError.
func Service[T any](ctors ...any) Registration {
	return Registration{typ: reflect.TypeOf((*T)(nil)).Elem(), ctors: ctors}
}

// ServiceOf is Service for a type known only at runtime.
func ServiceOf(t reflect.Type, ctors ...any) Registration {
	return Registration{typ: t, ctors: ctors}
}

// Type returns the type the registration describes.
func (r Registration) Type() reflect.Type { return r.typ }

func (r Registration) typeName() string {
	if r.typ == nil {
		return "<nil>"
	}
	return r.typ.String()
}

func newDescriptor(r Registration) (*ServiceDescriptor, error) {
	if r.typ == nil {
		return nil, &InvalidConstructorError{Type: r.typeName(), Reason: "service type is nil"}
	}

	switch len(r.ctors) {
	case 0:
		return zeroDescriptor(r.typ)
	case 1:
		return funcDescriptor(r.typ, r.ctors[0])
	default:
		return nil, &AmbiguousConstructorError{Type: r.typ.String(), Count: len(r.ctors)}
	}
}

func zeroDescriptor(t reflect.Type) (*ServiceDescriptor, error) {
	if t.Kind() == reflect.Interface {
		return nil, &InvalidConstructorError{Type: t.String(), Reason: "interface types need a constructor"}
	}

	return &ServiceDescriptor{
		Type: t,
		build: func([]reflect.Value) (reflect.Value, error) {
			if t.Kind() == reflect.Pointer {
				return reflect.New(t.Elem()), nil
			}
			return reflect.New(t).Elem(), nil
		},
	}, nil
}

func funcDescriptor(t reflect.Type, ctor any) (*ServiceDescriptor, error) {
	fn := reflect.ValueOf(ctor)
	if fn.Kind() != reflect.Func {
		return nil, &InvalidConstructorError{Type: t.String(), Reason: fmt.Sprintf("constructor must be a function, got %T", ctor)}
	}
	if fn.IsNil() {
		return nil, &InvalidConstructorError{Type: t.String(), Reason: "constructor is nil"}
	}

	ft := fn.Type()
	if ft.IsVariadic() {
		return nil, &InvalidConstructorError{Type: t.String(), Reason: "variadic constructors are not supported"}
	}

	switch ft.NumOut() {
	case 1:
	case 2:
		if ft.Out(1) != errorType {
			return nil, &InvalidConstructorError{Type: t.String(), Reason: fmt.Sprintf("second result must be error, got %s", ft.Out(1))}
		}
	default:
		return nil, &InvalidConstructorError{Type: t.String(), Reason: fmt.Sprintf("constructor must return %s or (%s, error), got %d results", t, t, ft.NumOut())}
	}

	if out := ft.Out(0); !out.AssignableTo(t) {
		return nil, &InvalidConstructorError{Type: t.String(), Reason: fmt.Sprintf("result %s is not assignable to %s", out, t)}
	}

	params := make([]reflect.Type, ft.NumIn())
	for i := range params {
		params[i] = ft.In(i)
	}

	withErr := ft.NumOut() == 2
	return &ServiceDescriptor{
		Type:   t,
		Params: params,
		build: func(args []reflect.Value) (reflect.Value, error) {
			results := fn.Call(args)
			if withErr {
				if err, _ := results[1].Interface().(error); err != nil {
					return reflect.Value{}, err
				}
			}

			v := results[0]
			if v.Type() != t {
				// Store under the registered type so cached values match parameter slots.
				converted := reflect.New(t).Elem()
				converted.Set(v)
				v = converted
			}
			return v, nil
		},
	}, nil
}

func (d *ServiceDescriptor) clone() ServiceDescriptor {
	return ServiceDescriptor{
		Type:   d.Type,
		Params: slices.Clone(d.Params),
		build:  d.build,
	}
}
