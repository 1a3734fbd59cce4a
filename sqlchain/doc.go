// Package sqlchain applies inspectable wrapper chains to database/sql
// drivers.
//
// Driver wrapping is the canonical wrapper-chain use case in Go: logging,
// metrics, and retry layers all decorate driver.Driver. This package provides
// a native inspectable wrapper (LoggingDriver), a stand-in for the many
// pre-existing wrappers that predate the protocol (CountingDriver), and
// AdaptDriver, which bridges such a wrapper into the inspectable protocol via
// the adapter factory.
//
// # Chains
//
// A typical adapted chain, as seen by wrapscope.Travel:
//
//	*sqlchain.InspectableDriver   (adapter: forwards to the counting wrapper)
//	*sqlite.Driver                (the underlying driver)
//
// The adapted composite still satisfies driver.Driver, so it registers with
// database/sql like any other driver; the tests run real queries through an
// adapted chain against in-memory SQLite databases.
package sqlchain
