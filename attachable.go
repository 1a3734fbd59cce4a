package wrapscope

// Attachable carries out-of-band key/value attachments on a chain node.
//
// Attachments are independent of the node's business interface: a caller can
// tag a wrapper with metadata (a name, a build version, a feature flag)
// without the wrapped type knowing. Keys must be comparable, with the same
// rules as map keys.
type Attachable interface {
	// Attachment returns the value stored under key. The second result
	// reports whether the key was present; a missing key yields (nil, false),
	// never a sentinel value.
	Attachment(key any) (value any, ok bool)

	// SetAttachment stores value under key, replacing any previous value.
	SetAttachment(key, value any)
}
