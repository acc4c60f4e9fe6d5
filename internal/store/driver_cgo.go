//go:build sqlite_cgo && cgo

package store

import (
	_ "github.com/mattn/go-sqlite3"
)

// cgo build links the C SQLite library. Faster on large ingests.
const driverName = "sqlite3"
