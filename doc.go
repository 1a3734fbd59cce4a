// Package wrapscope makes chains of wrapper objects inspectable.
//
// Go code composes behavior by wrapping: a logging driver around a database
// driver, a retrying client around an HTTP client, a metrics layer around a
// cache. Once composed, the chain is opaque — nothing reports what sits
// beneath a given layer. wrapscope defines the small capability contracts
// that make a chain walkable, and utilities that walk it.
//
// # Capability Contracts
//
// Wrapper is implemented by any node that can report the instance directly
// beneath it on the chain.
//
// WrapperAdapter is implemented by adapter nodes: bridges that bring a
// pre-existing wrapper (one that predates these contracts) into the
// inspectable protocol. An adapter reports both the underlying instance it
// stands in for and the adaptee it forwards real calls to.
//
// Attachable carries out-of-band key/value attachments on a chain node,
// independent of the node's business interface. The attach subpackage
// provides a ready-made store.
//
// # Chain Inspection
//
// Travel walks a chain from its head, visiting every node. UnwrapFully
// resolves a chain to its bottom-most instance. Contains and ContainsType
// answer membership questions, FirstAttachment finds the first attachment
// for a key anywhere on the chain, and Verify checks the chain's structural
// contracts (non-nil links, adaptees that do not themselves claim chain
// membership, no cycles).
//
// # Adapter Synthesis
//
// The adapter subpackage builds WrapperAdapter values for arbitrary business
// interfaces without per-interface boilerplate: the caller declares one small
// composite struct per interface shape and the factory binds it. See that
// package for details; the sqlchain subpackage shows the pattern applied to
// database/sql driver chains.
package wrapscope
