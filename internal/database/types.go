package database

import (
	"errors"
	"time"
)

var (
	// ErrNoColumns is returned when a table without columns is imported.
	ErrNoColumns = errors.New("table has no columns")

	// ErrReservedName is returned when an import would overwrite the catalogue.
	ErrReservedName = errors.New("table name is reserved")
)

const catalogueTable = "resource_imports"

// Import describes a resource copied into the database.
type Import struct {
	Name       string
	Path       string
	RowCount   int
	ImportedAt time.Time
}

const timeLayout = "2006-01-02 15:04:05"
