package wrapscope

// Wrapper is implemented by wrappers that can report the instance they wrap.
//
// Unwrap returns the instance directly beneath this node on the wrapper
// chain. It must never return nil; Verify reports a chain that does.
type Wrapper interface {
	Unwrap() any
}

// WrapperAdapter is implemented by adapter nodes that bridge a pre-existing
// wrapper into the inspectable protocol.
//
// The adaptee is the existing wrapper instance real calls are forwarded to;
// the underlying (via Unwrap) is the instance the adaptee ultimately wraps.
// An adaptee must not itself implement Wrapper: it already has an adapter
// speaking for it on the chain, and a second voice would corrupt traversal.
// Verify reports that case as a contract violation.
type WrapperAdapter interface {
	Wrapper

	// Adaptee returns the adapted/pre-existing wrapper instance. It must
	// never return nil.
	Adaptee() any
}
