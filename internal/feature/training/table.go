// Package training fits the price model from the synthesized dataset and
// persists the model artifact.
package training

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Table is a loaded CSV file with column access by header name.
type Table struct {
	Header  []string
	Records [][]string
	index   map[string]int
}

// LoadCSV reads the whole dataset into memory.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	all, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %q: %w", path, err)
	}
	if len(all) < 2 {
		return nil, fmt.Errorf("dataset %q has no data rows", path)
	}

	header := all[0]
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[h] = i
	}
	return &Table{Header: header, Records: all[1:], index: index}, nil
}

// HasColumn reports whether the table contains the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Value returns the cell in the named column of record row.
func (t *Table) Value(row int, name string) string {
	return t.Records[row][t.index[name]]
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Records)
}
