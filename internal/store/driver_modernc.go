//go:build !sqlite_cgo

package store

import (
	_ "modernc.org/sqlite"
)

// Default build uses the pure-Go driver so the binary cross-compiles
// without a C toolchain.
const driverName = "sqlite"
