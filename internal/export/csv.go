// Package export serializes a canonical table to bytes. Encoders never
// mutate the table, so a failed or retried export needs no
// recomputation.
package export

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lmtech-pe/ofertas-loader/internal/schema"
)

// Format identifies an export encoding.
type Format string

const (
	FormatCSV     Format = "csv"
	FormatParquet Format = "parquet"
)

// NormalizeFormat coerces a raw format value to a known Format,
// defaulting to CSV.
func NormalizeFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(FormatCSV):
		return FormatCSV, nil
	case string(FormatParquet):
		return FormatParquet, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", s)
	}
}

// ContentType returns the MIME type for a format.
func (f Format) ContentType() string {
	if f == FormatParquet {
		return "application/vnd.apache.parquet"
	}
	return "text/csv; charset=utf-8"
}

// Encode serializes the table in the given format. naToken is the text
// written for unknown cells in CSV output (Parquet uses real nulls).
func Encode(t *schema.Table, format Format, naToken string) ([]byte, error) {
	if format == FormatParquet {
		return EncodeParquet(t)
	}
	return EncodeCSV(t, naToken)
}

var whitespaceRunRe = regexp.MustCompile(`\s+`)

// EncodeCSV writes the table as comma-separated UTF-8 with a byte-order
// mark. Every field is quoted, matching what the downstream loader
// expects. Unknown cells are written as naToken; long free-text columns
// have line breaks and whitespace runs collapsed to single spaces.
func EncodeCSV(t *schema.Table, naToken string) ([]byte, error) {
	var b strings.Builder
	b.WriteString("\uFEFF")

	for i, col := range t.Columns {
		if i > 0 {
			b.WriteByte(',')
		}
		writeQuoted(&b, col.Name)
	}
	b.WriteByte('\n')

	for _, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return nil, fmt.Errorf("encode csv: row has %d cells, want %d", len(row), len(t.Columns))
		}
		for i, cell := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			writeQuoted(&b, cellText(t.Columns[i], cell, naToken))
		}
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

// cellText renders one cell for CSV output.
func cellText(col schema.Column, cell schema.Cell, naToken string) string {
	if !cell.Valid {
		return naToken
	}
	if col.Type == schema.TypeInt {
		return strconv.FormatInt(cell.Int, 10)
	}
	if col.LongText {
		return CollapseWhitespace(cell.Text)
	}
	return cell.Text
}

// writeQuoted writes a force-quoted CSV field, doubling embedded quotes.
// encoding/csv only quotes when required, so this is done by hand.
func writeQuoted(b *strings.Builder, s string) {
	b.WriteByte('"')
	b.WriteString(strings.ReplaceAll(s, `"`, `""`))
	b.WriteByte('"')
}

// CollapseWhitespace flattens line breaks and whitespace runs to single
// spaces and trims the result. Applied to long description fields so a
// record never spans multiple physical lines.
func CollapseWhitespace(s string) string {
	s = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
	return strings.TrimSpace(whitespaceRunRe.ReplaceAllString(s, " "))
}
