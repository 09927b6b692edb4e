// Package tabular provides the row-oriented table boundary between
// uploaded file bytes and the ingestion pipeline: an ordered column
// list plus rows addressable by column name.
package tabular

import "strings"

// Table is an in-memory row-oriented view of an uploaded dataset.
type Table struct {
	Columns []string
	rows    []map[string]string
}

// NewTable builds a table from ordered columns and per-row cell maps.
func NewTable(columns []string, rows []map[string]string) *Table {
	return &Table{Columns: columns, rows: rows}
}

// Len is the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// Row returns the cell map for one row.
func (t *Table) Row(i int) map[string]string { return t.rows[i] }

// Cell returns the value at (row, column); missing columns yield "".
func (t *Table) Cell(i int, column string) string {
	return t.rows[i][column]
}

// RenameColumns replaces the column names and rekeys every row. Used
// after header cleaning so cells stay addressable by the cleaned name.
func (t *Table) RenameColumns(cleaned []string) {
	if len(cleaned) != len(t.Columns) {
		return
	}
	for i, row := range t.rows {
		rekeyed := make(map[string]string, len(row))
		for j, old := range t.Columns {
			rekeyed[cleaned[j]] = row[old]
		}
		t.rows[i] = rekeyed
	}
	t.Columns = cleaned
}

// hasCSVExtension reports whether the filename looks like a CSV
// upload.
func hasCSVExtension(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".csv")
}
