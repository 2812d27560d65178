//go:build !cgo_sqlite

// Pure-Go SQLite driver using modernc.org/sqlite.
// This is the default; no cgo toolchain required.
//
// Build with -tags cgo_sqlite to use github.com/mattn/go-sqlite3 instead.
package litedb

import (
	"strconv"

	_ "modernc.org/sqlite" // register pure-Go SQLite driver
)

const driverName = "sqlite"

// buildDSN constructs the driver connection string. modernc.org/sqlite
// takes pragmas as repeated _pragma query parameters.
func buildDSN(path string, walMode bool, busyTimeoutMS int) string {
	dsn := "file:" + path +
		"?_pragma=busy_timeout(" + strconv.Itoa(busyTimeoutMS) + ")" +
		"&_pragma=foreign_keys(1)"
	if walMode {
		dsn += "&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	}
	return dsn
}
