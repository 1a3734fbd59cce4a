package wrapscope

import "errors"

var (
	// ErrInvalidArgument reports a nil or unusable argument, detected before
	// any work is done on its behalf.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrChainContract reports a wrapper chain that violates the capability
	// contracts: a nil Unwrap or Adaptee, or an adaptee that itself claims
	// to be a Wrapper.
	ErrChainContract = errors.New("wrapper chain contract violation")

	// ErrCyclicChain reports a wrapper chain that loops back on itself.
	ErrCyclicChain = errors.New("cyclic wrapper chain")
)
