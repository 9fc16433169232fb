package database

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	. "github.com/go-jet/jet/v2/sqlite"

	"scrapekit/pkg/resource"
)

var (
	importName       = StringColumn("name")
	importPath       = StringColumn("path")
	importRowCount   = IntegerColumn("row_count")
	importImportedAt = StringColumn("imported_at")

	resourceImports = NewTable("", catalogueTable, "",
		importName, importPath, importRowCount, importImportedAt)
)

// Service handles database operations for imported resources
type Service struct {
	db *DB
}

// NewService creates a new database service
func NewService(db *DB) *Service {
	return &Service{db: db}
}

// TableName derives a table name from a resource path,
// e.g. "data/countries.csv" becomes "data_countries".
func TableName(resourcePath string) string {
	return sanitizeIdentifier(strings.TrimSuffix(resourcePath, path.Ext(resourcePath)))
}

// ImportTable replaces the table called name with the rows of t and records
// the import in the catalogue. It returns the number of rows written.
func (s *Service) ImportTable(ctx context.Context, name, resourcePath string, t *resource.Table) (int, error) {
	if len(t.Columns) == 0 {
		return 0, fmt.Errorf("failed to import %s: %w", resourcePath, ErrNoColumns)
	}

	tableName := sanitizeIdentifier(name)
	if tableName == catalogueTable {
		return 0, fmt.Errorf("failed to import %s: %w: %s", resourcePath, ErrReservedName, tableName)
	}

	columnNames := columnIdentifiers(t.Columns)
	columns := make(ColumnList, len(columnNames))
	for i, c := range columnNames {
		columns[i] = StringColumn(c)
	}
	target := NewTable("", tableName, "", columns...)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DROP TABLE IF EXISTS %q`, tableName)); err != nil {
		return 0, fmt.Errorf("failed to drop table %s: %w", tableName, err)
	}

	defs := make([]string, len(columnNames))
	for i, c := range columnNames {
		defs[i] = fmt.Sprintf("%q TEXT", c)
	}
	create := fmt.Sprintf(`CREATE TABLE %q (%s)`, tableName, strings.Join(defs, ", "))
	if _, err := tx.ExecContext(ctx, create); err != nil {
		return 0, fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	for _, row := range t.Rows {
		values := make([]interface{}, len(t.Columns))
		for i, c := range t.Columns {
			values[i] = row[c]
		}

		stmt := target.INSERT(columns).VALUES(values[0], values[1:]...)
		if _, err := stmt.ExecContext(ctx, tx); err != nil {
			return 0, fmt.Errorf("failed to insert into %s: %w", tableName, err)
		}
	}

	now := time.Now().UTC().Format(timeLayout)
	upsert := resourceImports.INSERT(
		importName,
		importPath,
		importRowCount,
		importImportedAt,
	).VALUES(
		tableName,
		resourcePath,
		len(t.Rows),
		now,
	).ON_CONFLICT(importName).DO_UPDATE(SET(
		importPath.SET(String(resourcePath)),
		importRowCount.SET(Int(int64(len(t.Rows)))),
		importImportedAt.SET(String(now)),
	))
	if _, err := upsert.ExecContext(ctx, tx); err != nil {
		return 0, fmt.Errorf("failed to record import: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit import: %w", err)
	}

	return len(t.Rows), nil
}

// ListImports returns the catalogue ordered by name
func (s *Service) ListImports(ctx context.Context) ([]Import, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, path, row_count, imported_at
		FROM resource_imports
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list imports: %w", err)
	}
	defer rows.Close()

	var imports []Import
	for rows.Next() {
		var (
			imp        Import
			importedAt string
		)
		if err := rows.Scan(&imp.Name, &imp.Path, &imp.RowCount, &importedAt); err != nil {
			return nil, fmt.Errorf("failed to scan import: %w", err)
		}
		imp.ImportedAt, err = time.Parse(timeLayout, importedAt)
		if err != nil {
			return nil, fmt.Errorf("invalid import time %q: %w", importedAt, err)
		}
		imports = append(imports, imp)
	}

	return imports, rows.Err()
}

// CountRows returns the number of rows stored in an imported table
func (s *Service) CountRows(ctx context.Context, name string) (int, error) {
	var count int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %q`, sanitizeIdentifier(name))
	if err := s.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", name, err)
	}
	return count, nil
}

// columnIdentifiers sanitizes every column name and numbers repeats
// (a, a_1, a_2) without colliding with names already in the header.
func columnIdentifiers(header []string) []string {
	sanitized := make([]string, len(header))
	inHeader := make(map[string]bool, len(header))
	for i, c := range header {
		sanitized[i] = sanitizeIdentifier(c)
		inHeader[sanitized[i]] = true
	}

	names := make([]string, len(header))
	taken := make(map[string]bool, len(header))
	for i, c := range sanitized {
		name := c
		for n := 1; taken[name] || (name != c && inHeader[name]); n++ {
			name = fmt.Sprintf("%s_%d", c, n)
		}
		taken[name] = true
		names[i] = name
	}
	return names
}

// sanitizeIdentifier lowercases s and replaces anything outside [a-z0-9_].
func sanitizeIdentifier(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	id := b.String()
	if id == "" || (id[0] >= '0' && id[0] <= '9') {
		id = "c_" + id
	}
	return id
}
