package sqlchain

import (
	"database/sql/driver"
	"log"
	"sync/atomic"

	"wrapscope"
	"wrapscope/adapter"
)

// LoggingDriver is a native inspectable wrapper: it logs every Open and
// reports the driver beneath it.
type LoggingDriver struct {
	next   driver.Driver
	logger *log.Logger
}

// NewLoggingDriver wraps next. A nil logger falls back to the default logger.
func NewLoggingDriver(next driver.Driver, logger *log.Logger) *LoggingDriver {
	if logger == nil {
		logger = log.Default()
	}
	return &LoggingDriver{next: next, logger: logger}
}

// Open opens a connection on the wrapped driver, logging the outcome.
func (d *LoggingDriver) Open(name string) (driver.Conn, error) {
	conn, err := d.next.Open(name)
	if err != nil {
		d.logger.Printf("open %q failed: %v", name, err)
		return nil, err
	}
	d.logger.Printf("opened %q", name)
	return conn, nil
}

// Unwrap returns the wrapped driver.
func (d *LoggingDriver) Unwrap() any { return d.next }

// CountingDriver counts opens. It deliberately implements only
// driver.Driver — it stands in for the pre-existing wrappers in the wild
// that know nothing about the inspectable protocol and need adapting.
type CountingDriver struct {
	next  driver.Driver
	opens atomic.Int64
}

// NewCountingDriver wraps next.
func NewCountingDriver(next driver.Driver) *CountingDriver {
	return &CountingDriver{next: next}
}

// Open opens a connection on the wrapped driver.
func (d *CountingDriver) Open(name string) (driver.Conn, error) {
	d.opens.Add(1)
	return d.next.Open(name)
}

// Opens returns the number of Open calls seen so far.
func (d *CountingDriver) Opens() int64 { return d.opens.Load() }

// InspectableDriver is the composite shape for adapted driver chains.
type InspectableDriver struct {
	driver.Driver
	wrapscope.WrapperAdapter
}

// AttachableDriver additionally carries the attachment capability.
type AttachableDriver struct {
	driver.Driver
	wrapscope.WrapperAdapter
	wrapscope.Attachable
}

// AdaptDriver bridges adaptee, an existing driver wrapper around underlying,
// into the inspectable protocol. The result satisfies driver.Driver and can
// be registered with database/sql.
func AdaptDriver(underlying, adaptee driver.Driver) (*InspectableDriver, error) {
	return adapter.New[InspectableDriver](underlying, adaptee)
}

// AdaptDriverAttachable is AdaptDriver plus an attachment store.
func AdaptDriverAttachable(underlying, adaptee driver.Driver, store wrapscope.Attachable) (*AttachableDriver, error) {
	return adapter.NewAttachable[AttachableDriver](underlying, adaptee, store)
}
