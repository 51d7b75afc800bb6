package core

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// utf8BOM is stripped from the first header cell when present; the
// scraper exports with a byte-order mark.
const utf8BOM = "\uFEFF"

// RawTable is a decoded upload: the source header row plus every data
// row as unparsed text. Rows may be ragged; missing trailing cells read
// as absent.
type RawTable struct {
	Header []string
	Rows   [][]string

	// index maps lowercased header names to their position.
	index map[string]int
}

// ErrEmptyFile is returned when the upload has no header row.
var ErrEmptyFile = errors.New("uploaded file is empty")

// DecodeCSV reads a ;-delimited UTF-8 CSV into a RawTable. All cells are
// kept as text; fully empty rows are dropped.
func DecodeCSV(r io.Reader) (*RawTable, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	t := &RawTable{
		Header: header,
		index:  make(map[string]int, len(header)),
	}
	for i, h := range header {
		t.index[strings.ToLower(h)] = i
	}

	for _, row := range records[1:] {
		if rowEmpty(row) {
			continue
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// ColumnIndex reports the position of a source column, matched
// case-insensitively. ok=false when the column is absent.
func (t *RawTable) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[strings.ToLower(name)]
	return i, ok
}

// Cell returns the raw value at (row, col), or "" when the row is too
// short. Empty cells are treated as absent by every normalizer.
func Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

func rowEmpty(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
