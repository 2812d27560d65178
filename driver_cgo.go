//go:build cgo_sqlite

// CGO SQLite driver using mattn/go-sqlite3.
// This is used when the cgo_sqlite build tag is set.
//
// Build with: go build -tags cgo_sqlite
// Requires: CGO_ENABLED=1
package litedb

import (
	"strconv"

	_ "github.com/mattn/go-sqlite3" // CGO SQLite driver
)

const driverName = "sqlite3"

// buildDSN constructs the driver connection string. mattn/go-sqlite3 takes
// pragmas as underscore-prefixed query parameters.
// See: https://github.com/mattn/go-sqlite3#connection-string
func buildDSN(path string, walMode bool, busyTimeoutMS int) string {
	dsn := "file:" + path +
		"?_busy_timeout=" + strconv.Itoa(busyTimeoutMS) +
		"&_foreign_keys=on"
	if walMode {
		dsn += "&_journal_mode=WAL&_synchronous=NORMAL"
	}
	return dsn
}
