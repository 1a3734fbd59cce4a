package sqlchain

import (
	"bytes"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"testing"

	_ "modernc.org/sqlite"

	"wrapscope"
	"wrapscope/attach"
)

// ============================================================================
// Test Helpers
// ============================================================================

var registerSeq atomic.Int64

// baseDriver returns the registered SQLite driver instance.
func baseDriver(t *testing.T) driver.Driver {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	defer db.Close()
	return db.Driver()
}

// register registers d under a unique name and returns the name.
func register(t *testing.T, d driver.Driver) string {
	t.Helper()
	name := fmt.Sprintf("sqlchain-test-%d", registerSeq.Add(1))
	sql.Register(name, d)
	return name
}

// openDB opens an in-memory database on the named driver.
func openDB(t *testing.T, driverName string) *sql.DB {
	t.Helper()
	db, err := sql.Open(driverName, ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})
	return db
}

// queryOne runs a single-value query and fails the test on error.
func queryOne(t *testing.T, db *sql.DB, query string) int {
	t.Helper()
	var n int
	if err := db.QueryRow(query).Scan(&n); err != nil {
		t.Fatalf("query %q failed: %v", query, err)
	}
	return n
}

// ============================================================================
// Native Wrapper
// ============================================================================

func TestLoggingDriver(t *testing.T) {
	t.Run("queries pass through and opens are logged", func(t *testing.T) {
		var buf bytes.Buffer
		base := baseDriver(t)
		logging := NewLoggingDriver(base, log.New(&buf, "", 0))

		db := openDB(t, register(t, logging))
		if got := queryOne(t, db, "select 21*2"); got != 42 {
			t.Errorf("expected 42, got %d", got)
		}
		if !bytes.Contains(buf.Bytes(), []byte("opened")) {
			t.Errorf("expected an open log line, got %q", buf.String())
		}
	})

	t.Run("unwrap reports the wrapped driver", func(t *testing.T) {
		base := baseDriver(t)
		logging := NewLoggingDriver(base, nil)

		if logging.Unwrap() != any(base) {
			t.Error("expected the base driver")
		}
		if got := wrapscope.UnwrapFully(logging); got != any(base) {
			t.Errorf("expected UnwrapFully to reach the base driver, got %T", got)
		}
	})
}

// ============================================================================
// Adapted Chains
// ============================================================================

func TestAdaptDriver(t *testing.T) {
	t.Run("adapted chain serves real queries", func(t *testing.T) {
		base := baseDriver(t)
		counting := NewCountingDriver(base)

		chain, err := AdaptDriver(base, counting)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		db := openDB(t, register(t, chain))
		if err := db.Ping(); err != nil {
			t.Fatalf("ping failed: %v", err)
		}
		if got := queryOne(t, db, "select count(*) from sqlite_master"); got != 0 {
			t.Errorf("expected an empty schema, got %d objects", got)
		}
		if counting.Opens() == 0 {
			t.Error("expected opens to flow through the adaptee")
		}
	})

	t.Run("chain is inspectable", func(t *testing.T) {
		base := baseDriver(t)
		counting := NewCountingDriver(base)

		chain, err := AdaptDriver(base, counting)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if chain.Unwrap() != any(base) {
			t.Error("expected Unwrap to report the base driver")
		}
		if chain.Adaptee() != any(counting) {
			t.Error("expected Adaptee to report the counting wrapper")
		}
		if ok, err := wrapscope.Contains(chain, base); err != nil || !ok {
			t.Errorf("expected the base driver on the chain, got ok=%v err=%v", ok, err)
		}
		if err := wrapscope.Verify(chain); err != nil {
			t.Errorf("expected a contract-clean chain, got %v", err)
		}
	})

	t.Run("nil drivers are rejected", func(t *testing.T) {
		base := baseDriver(t)

		if _, err := AdaptDriver(nil, NewCountingDriver(base)); !errors.Is(err, wrapscope.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
		if _, err := AdaptDriver(base, nil); !errors.Is(err, wrapscope.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestAdaptDriverAttachable(t *testing.T) {
	t.Run("attachments forward to the store", func(t *testing.T) {
		base := baseDriver(t)
		counting := NewCountingDriver(base)
		store := attach.NewStore()

		chain, err := AdaptDriverAttachable(base, counting, store)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		chain.SetAttachment("pool", "primary")
		if v, ok := store.Attachment("pool"); !ok || v != "primary" {
			t.Errorf("expected the store to hold the value, got (%v, %v)", v, ok)
		}
	})

	t.Run("attachments are visible from the chain head", func(t *testing.T) {
		base := baseDriver(t)
		counting := NewCountingDriver(base)
		store := attach.NewStore()

		chain, err := AdaptDriverAttachable(base, counting, store)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		head := NewLoggingDriver(chain, log.New(&bytes.Buffer{}, "", 0))

		chain.SetAttachment("pool", "primary")
		v, ok, err := wrapscope.FirstAttachment(head, "pool")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok || v != "primary" {
			t.Errorf("expected (primary, true), got (%v, %v)", v, ok)
		}

		if got := wrapscope.UnwrapFully(head); got != any(base) {
			t.Errorf("expected the base driver at the bottom, got %T", got)
		}
	})

	t.Run("nil store is rejected", func(t *testing.T) {
		base := baseDriver(t)

		_, err := AdaptDriverAttachable(base, NewCountingDriver(base), nil)
		if !errors.Is(err, wrapscope.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}
