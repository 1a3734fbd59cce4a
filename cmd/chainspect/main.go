// Command chainspect builds a demonstration inspectable driver chain over
// SQLite, runs a probe query through it, and prints the chain report as YAML.
package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"time"

	_ "modernc.org/sqlite"

	"wrapscope"
	"wrapscope/attach"
	"wrapscope/report"
	"wrapscope/sqlchain"
)

func main() {
	// Command line flags
	dsn := flag.String("dsn", ":memory:", "SQLite data source name")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Building inspectable driver chain...")

	// Grab the registered SQLite driver as the underlying instance.
	probe, err := sql.Open("sqlite", *dsn)
	if err != nil {
		log.Fatalf("Failed to open sqlite: %v", err)
	}
	base := probe.Driver()
	probe.Close()

	// A pre-existing wrapper that predates the inspectable protocol...
	counting := sqlchain.NewCountingDriver(base)

	// ...bridged into the protocol with an attachment store...
	store := attach.NewStore()
	adapted, err := sqlchain.AdaptDriverAttachable(base, counting, store)
	if err != nil {
		log.Fatalf("Failed to adapt driver: %v", err)
	}
	adapted.SetAttachment("adapted_at", time.Now().Format(time.RFC3339))

	// ...under a native inspectable logging wrapper at the head.
	head := sqlchain.NewLoggingDriver(adapted, nil)

	if err := wrapscope.Verify(head); err != nil {
		log.Fatalf("Chain contract violation: %v", err)
	}

	// Run a probe query through the whole chain.
	sql.Register("chainspect", head)
	db, err := sql.Open("chainspect", *dsn)
	if err != nil {
		log.Fatalf("Failed to open database through chain: %v", err)
	}
	defer db.Close()

	var objects int
	if err := db.QueryRow("select count(*) from sqlite_master").Scan(&objects); err != nil {
		log.Fatalf("Probe query failed: %v", err)
	}
	log.Printf("Probe query OK: %d schema objects, %d opens through the adaptee",
		objects, counting.Opens())

	if v, ok, _ := wrapscope.FirstAttachment(head, "adapted_at"); ok {
		log.Printf("Chain attachment adapted_at=%v", v)
	}

	r, err := report.Build(head)
	if err != nil {
		log.Fatalf("Failed to build chain report: %v", err)
	}
	if err := r.WriteYAML(os.Stdout); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}
}
