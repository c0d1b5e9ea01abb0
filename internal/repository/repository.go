// Package repository defines the collection-scoped persistence contract
// shared by the MySQL, file-backed and in-memory stores, and provides
// the GORM-backed implementations.
package repository

import "errors"

// ErrNotFound is returned by every backend when a record id is absent.
var ErrNotFound = errors.New("record not found")
