// Package resource loads the CSV files bundled with scrapekit.
package resource

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"

	"scrapekit/assets"
)

// Root is the directory inside the bundle that every resource path is relative to.
const Root = "resources"

// Loader reads tables from a resource bundle.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a loader over fsys. fsys must contain the Root directory.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

var defaultLoader = NewLoader(assets.FS)

// Default returns the loader over the files embedded in the binary.
func Default() *Loader {
	return defaultLoader
}

// Load reads resources/<name> from the default bundle.
func Load(name string) (*Table, error) {
	return defaultLoader.Load(name)
}

// Load reads Root/<name> and parses it as CSV with a header row.
func (l *Loader) Load(name string) (*Table, error) {
	resourcePath := path.Join(Root, name)

	data, err := fs.ReadFile(l.fsys, resourcePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, resourcePath)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, resourcePath, err)
	}

	table, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrEmpty, resourcePath, err)
	}
	if table.Len() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, resourcePath)
	}

	return table, nil
}

var utf8BOM = []byte("\xef\xbb\xbf")

func parse(data []byte) (*Table, error) {
	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))

	header, err := reader.Read()
	if err == io.EOF {
		return &Table{}, nil
	}
	if err != nil {
		return nil, err
	}

	header = uniqueColumns(header)
	table := &Table{Columns: header}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		row := make(Row, len(header))
		for i, column := range header {
			row[column] = record[i]
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// uniqueColumns renames repeated header names to name.1, name.2, ... so no
// column is lost when rows are keyed by name.
func uniqueColumns(header []string) []string {
	used := make(map[string]bool, len(header))
	for _, c := range header {
		used[c] = true
	}

	columns := make([]string, len(header))
	counts := make(map[string]int, len(header))
	for i, c := range header {
		if counts[c] == 0 {
			counts[c] = 1
			columns[i] = c
			continue
		}

		name := c
		for used[name] {
			name = fmt.Sprintf("%s.%d", c, counts[c])
			counts[c]++
		}
		used[name] = true
		columns[i] = name
	}
	return columns
}
