// Package litedb is a minimal convenience layer over an embedded SQLite
// database.
//
// This package manages:
//   - Opening (or creating) a single file-backed database
//   - Table creation from an ordered column specification
//   - Parameterised statement execution with positional ? placeholders
//   - Row fetching with full in-memory materialisation
//   - Schema migrations from an embedded filesystem
//
// All durability, transaction, indexing, and SQL-parsing guarantees are
// delegated to the SQLite engine. litedb builds statements, binds
// parameters, and surfaces engine errors — nothing more.
//
// Supported scalar kinds for column specifications and bind parameters are
// text, integer, real, and boolean. SQLite has no native boolean, so
// boolean parameters are coerced to integer 0/1 before binding and boolean
// columns are declared with numeric affinity.
//
// Security Considerations:
//   - Statement parameters always travel through the engine's bind API
//   - Table and column names are quoted when statements are assembled
//   - The database file is created with 0600 permissions
//
// Usage:
//
//	db, err := litedb.OpenPath("./data/app.sqlite")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
//	err = db.CreateTable(ctx, "users", []litedb.Column{
//	    {Name: "name", Kind: litedb.KindText},
//	    {Name: "age", Kind: litedb.KindInteger},
//	    {Name: "is_underage", Kind: litedb.KindBoolean},
//	})
//
//	_, err = db.Execute(ctx,
//	    "INSERT INTO users (name, age, is_underage) VALUES (?, ?, ?)",
//	    litedb.Text("rayan"), litedb.Int(27), litedb.Bool(false))
//
// Driver Selection:
//
// The default build uses the pure-Go modernc.org/sqlite driver and needs no
// cgo. Build with -tags cgo_sqlite to use github.com/mattn/go-sqlite3
// instead. Behaviour is identical from the caller's point of view.
//
// Concurrency:
//
// Every operation blocks the caller until the engine completes it. The
// connection pool is capped at a single connection, so one handle is one
// serialised line to the database — the same model SQLite itself enforces
// for writers at the file level.
package litedb
