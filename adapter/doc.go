// Package adapter synthesizes wrapscope.WrapperAdapter values for arbitrary
// business interfaces without per-interface delegation boilerplate.
//
// # The Composite Pattern
//
// Go cannot implement an interface at runtime, so the factory works through a
// composite struct the caller declares once per business-interface shape:
//
//	type inspectableGreeter struct {
//	    Greeter                  // business calls forward to the adaptee
//	    wrapscope.WrapperAdapter // reports the underlying and the adaptee
//	}
//
//	g, err := adapter.New[inspectableGreeter](realService, loggingWrapper)
//
// Synthesize classifies each embedded interface field structurally, by its
// type, and binds it:
//
//   - a wrapscope.WrapperAdapter field receives a capability value that
//     returns the exact underlying and adaptee references
//   - a wrapscope.Attachable field receives the supplied attachment store
//     (SynthesizeAttachable only)
//   - every other exported interface field the adaptee satisfies receives the
//     adaptee itself
//
// Method promotion through the embedded fields then yields a single value
// implementing exactly the business interface plus the declared capabilities.
// Business calls are direct calls on the adaptee, so results and failures
// pass through unchanged.
//
// # Capability Invariants
//
// The composite must embed wrapscope.WrapperAdapter: an adapter always
// reports what it wraps and what it adapts. Embedding wrapscope.Wrapper
// directly is rejected, because a second promoted Unwrap would be ambiguous
// and the composite would stop satisfying either interface. The attachment
// capability is present if and only if a store was supplied: declaring an
// Attachable field without a store, or supplying a store without the field,
// is an invalid-argument error.
//
// # Validation
//
// All arguments are checked before any field is bound. A nil destination,
// underlying, adaptee, or store (including typed nils) fails with
// wrapscope.ErrInvalidArgument.
package adapter
