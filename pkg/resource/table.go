package resource

// Row maps a column name to its raw cell value.
type Row map[string]string

// Table is a CSV file loaded into memory, in file order.
type Table struct {
	Columns []string
	Rows    []Row
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Column returns every value of the named column.
func (t *Table) Column(name string) ([]string, bool) {
	if !t.hasColumn(name) {
		return nil, false
	}

	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		values = append(values, row[name])
	}
	return values, true
}

// Filter returns a new table with the rows whose column equals value.
// An unknown column yields an empty table with the same columns.
func (t *Table) Filter(column, value string) *Table {
	out := &Table{Columns: append([]string(nil), t.Columns...)}
	if !t.hasColumn(column) {
		return out
	}

	for _, row := range t.Rows {
		if row[column] == value {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

func (t *Table) hasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}
