package wrapscope

import (
	"fmt"
	"reflect"
)

// Travel walks the wrapper chain from head toward the underlying instance,
// calling visit for every node, including the terminal non-Wrapper instance.
// Traversal stops early when visit returns true; the first result reports
// whether that happened.
//
// A nil head is an ErrInvalidArgument; a chain that loops back on itself is
// an ErrCyclicChain.
func Travel(head any, visit func(node any) bool) (bool, error) {
	if head == nil {
		return false, fmt.Errorf("travel head is nil: %w", ErrInvalidArgument)
	}

	seen := make(map[any]struct{})
	for node := head; node != nil; {
		if isComparable(node) {
			if _, dup := seen[node]; dup {
				return false, fmt.Errorf("%T revisited: %w", node, ErrCyclicChain)
			}
			seen[node] = struct{}{}
		}

		if visit(node) {
			return true, nil
		}

		w, ok := node.(Wrapper)
		if !ok {
			break
		}
		node = w.Unwrap()
	}
	return false, nil
}

// UnwrapFully resolves head to the bottom-most instance of its chain,
// repeatedly unwrapping until the current node no longer implements Wrapper.
// A cycle resolves to the last node reached before the repeat.
func UnwrapFully(head any) any {
	last := head
	Travel(head, func(node any) bool {
		last = node
		return false
	})
	return last
}

// Contains reports whether instance appears on the wrapper chain headed by
// head, compared by identity.
func Contains(head, instance any) (bool, error) {
	if instance == nil {
		return false, fmt.Errorf("instance is nil: %w", ErrInvalidArgument)
	}
	return Travel(head, func(node any) bool {
		return identical(node, instance)
	})
}

// ContainsType reports whether any node on the chain headed by head satisfies
// type T.
func ContainsType[T any](head any) (bool, error) {
	return Travel(head, func(node any) bool {
		_, ok := node.(T)
		return ok
	})
}

// FirstAttachment returns the attachment for key from the first Attachable
// node on the chain that holds it. The boolean result reports presence; no
// node holding the key yields (nil, false, nil).
func FirstAttachment(head, key any) (any, bool, error) {
	var (
		value any
		found bool
	)
	_, err := Travel(head, func(node any) bool {
		a, ok := node.(Attachable)
		if !ok {
			return false
		}
		value, found = a.Attachment(key)
		return found
	})
	if err != nil {
		return nil, false, err
	}
	return value, found, nil
}

// Verify checks the structural contracts of the chain headed by head: every
// Unwrap and Adaptee must be non-nil, and no adaptee may itself implement
// Wrapper (an adaptee already has an adapter speaking for it on the chain).
// The first violation is returned as an ErrChainContract; a looping chain is
// an ErrCyclicChain.
func Verify(head any) error {
	var violation error
	_, err := Travel(head, func(node any) bool {
		if w, ok := node.(Wrapper); ok && w.Unwrap() == nil {
			violation = fmt.Errorf("%T.Unwrap returned nil: %w", node, ErrChainContract)
			return true
		}
		wa, ok := node.(WrapperAdapter)
		if !ok {
			return false
		}
		adaptee := wa.Adaptee()
		if adaptee == nil {
			violation = fmt.Errorf("%T.Adaptee returned nil: %w", node, ErrChainContract)
			return true
		}
		if _, isWrapper := adaptee.(Wrapper); isWrapper {
			violation = fmt.Errorf("adaptee %T of %T must not implement Wrapper: %w",
				adaptee, node, ErrChainContract)
			return true
		}
		return false
	})
	if err != nil {
		return err
	}
	return violation
}

// isComparable reports whether v can be used as a map key without panicking.
func isComparable(v any) bool {
	return reflect.TypeOf(v).Comparable()
}

// identical reports whether a and b are the same value by identity, without
// panicking on uncomparable dynamic types.
func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
