package adapter

import (
	"fmt"
	"reflect"

	"wrapscope"
)

var (
	wrapperType        = reflect.TypeOf((*wrapscope.Wrapper)(nil)).Elem()
	wrapperAdapterType = reflect.TypeOf((*wrapscope.WrapperAdapter)(nil)).Elem()
	attachableType     = reflect.TypeOf((*wrapscope.Attachable)(nil)).Elem()
)

// caps is the capability value bound into every composite. It holds only the
// two borrowed references and has no other state, so a composite is safe for
// whatever concurrent use its adaptee and underlying support.
type caps struct {
	underlying any
	adaptee    any
}

func (c *caps) Unwrap() any  { return c.underlying }
func (c *caps) Adaptee() any { return c.adaptee }

// Synthesize binds dst, a pointer to a composite struct, into a wrapper
// adapter over adaptee that reports underlying as the wrapped instance. The
// composite must embed the business interface and wrapscope.WrapperAdapter;
// see the package documentation for the full field rules.
//
// The synthesized composite exposes no attachment capability. Use
// SynthesizeAttachable to add one.
func Synthesize(dst, underlying, adaptee any) error {
	return synthesize(dst, underlying, adaptee, nil, false)
}

// SynthesizeAttachable is Synthesize plus the attachment capability: the
// composite must additionally embed wrapscope.Attachable, and its get/set
// operations are forwarded to store.
func SynthesizeAttachable(dst, underlying, adaptee any, store wrapscope.Attachable) error {
	return synthesize(dst, underlying, adaptee, store, true)
}

// New allocates a composite of type C and synthesizes it via Synthesize.
func New[C any](underlying, adaptee any) (*C, error) {
	c := new(C)
	if err := Synthesize(c, underlying, adaptee); err != nil {
		return nil, err
	}
	return c, nil
}

// NewAttachable allocates a composite of type C and synthesizes it via
// SynthesizeAttachable.
func NewAttachable[C any](underlying, adaptee any, store wrapscope.Attachable) (*C, error) {
	c := new(C)
	if err := SynthesizeAttachable(c, underlying, adaptee, store); err != nil {
		return nil, err
	}
	return c, nil
}

func synthesize(dst, underlying, adaptee any, store wrapscope.Attachable, withStore bool) error {
	// Validate every reference before binding anything.
	switch {
	case isNil(dst):
		return fmt.Errorf("dst is nil: %w", wrapscope.ErrInvalidArgument)
	case isNil(underlying):
		return fmt.Errorf("underlying is nil: %w", wrapscope.ErrInvalidArgument)
	case isNil(adaptee):
		return fmt.Errorf("adaptee is nil: %w", wrapscope.ErrInvalidArgument)
	case withStore && isNil(store):
		return fmt.Errorf("attachment store is nil: %w", wrapscope.ErrInvalidArgument)
	}

	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("dst must be a pointer to a composite struct, got %T: %w",
			dst, wrapscope.ErrInvalidArgument)
	}

	var (
		elem       = rv.Elem()
		t          = elem.Type()
		capsVal    = reflect.ValueOf(&caps{underlying: underlying, adaptee: adaptee})
		adapteeVal = reflect.ValueOf(adaptee)

		boundBiz   bool
		boundCaps  bool
		boundStore bool
	)

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Type.Kind() != reflect.Interface {
			// Caller-owned state, not part of the synthesis.
			continue
		}
		if !f.IsExported() {
			return fmt.Errorf("cannot bind unexported field %s.%s: %w",
				t.Name(), f.Name, wrapscope.ErrInvalidArgument)
		}

		// Classification is structural, by field type, capability contracts
		// before business forwarding.
		switch {
		case f.Type == wrapperType:
			return fmt.Errorf("%s embeds wrapscope.Wrapper; embed wrapscope.WrapperAdapter, which covers it: %w",
				t.Name(), wrapscope.ErrInvalidArgument)

		case f.Type == wrapperAdapterType:
			if boundCaps {
				return fmt.Errorf("%s embeds wrapscope.WrapperAdapter more than once: %w",
					t.Name(), wrapscope.ErrInvalidArgument)
			}
			elem.Field(i).Set(capsVal)
			boundCaps = true

		case f.Type == attachableType:
			if !withStore {
				return fmt.Errorf("%s declares the attachment capability but no store was supplied: %w",
					t.Name(), wrapscope.ErrInvalidArgument)
			}
			if boundStore {
				return fmt.Errorf("%s embeds wrapscope.Attachable more than once: %w",
					t.Name(), wrapscope.ErrInvalidArgument)
			}
			elem.Field(i).Set(reflect.ValueOf(store))
			boundStore = true

		case adapteeVal.Type().AssignableTo(f.Type):
			elem.Field(i).Set(adapteeVal)
			boundBiz = true

		default:
			return fmt.Errorf("adaptee %T does not satisfy %s field %s: %w",
				adaptee, t.Name(), f.Name, wrapscope.ErrInvalidArgument)
		}
	}

	switch {
	case !boundBiz:
		return fmt.Errorf("%s has no business interface field the adaptee satisfies: %w",
			t.Name(), wrapscope.ErrInvalidArgument)
	case !boundCaps:
		return fmt.Errorf("%s must embed wrapscope.WrapperAdapter: %w",
			t.Name(), wrapscope.ErrInvalidArgument)
	case withStore && !boundStore:
		return fmt.Errorf("a store was supplied but %s has no wrapscope.Attachable field: %w",
			t.Name(), wrapscope.ErrInvalidArgument)
	}
	return nil
}

// isNil reports whether v is nil, including typed nils inside non-nil
// interface values.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
