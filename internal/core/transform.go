package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/lmtech-pe/ofertas-loader/internal/normalize"
	"github.com/lmtech-pe/ofertas-loader/internal/schema"
)

// Plan is the canonical field plan resolved against one upload's actual
// header. Resolution happens once per batch; every row is then processed
// through the same resolved plan with no per-row existence checks.
type Plan struct {
	fields   []resolvedField
	warnings []string
}

type resolvedField struct {
	field schema.Field
	// cols holds one source-column index per normalizer input, -1 when
	// the column is missing from the upload.
	cols []int
}

// BuildPlan resolves each canonical field to a source column, trying the
// field's acceptable headers in order. Every missing expected column
// yields exactly one warning, regardless of row count.
func BuildPlan(raw *RawTable) *Plan {
	p := &Plan{}
	for _, f := range schema.Fields() {
		rf := resolvedField{field: f, cols: make([]int, len(f.Sources))}
		for i, candidates := range f.Sources {
			rf.cols[i] = -1
			for _, name := range candidates {
				if idx, ok := raw.ColumnIndex(name); ok {
					rf.cols[i] = idx
					break
				}
			}
			if rf.cols[i] == -1 {
				p.warnings = append(p.warnings, fmt.Sprintf(
					"expected column %q not found; output column %s will be empty",
					candidates[0], f.Columns[min(i, len(f.Columns)-1)].Name))
			}
		}
		p.fields = append(p.fields, rf)
	}
	return p
}

// Warnings returns the column-resolution warnings, one per missing
// expected source column.
func (p *Plan) Warnings() []string { return p.warnings }

// Transform applies the resolved plan to every row and assembles the
// canonical table. Rows are independent: a malformed value degrades that
// cell to unknown and never aborts the batch. now is the batch timestamp
// used for relative-date resolution.
//
// If the plan cannot produce the full canonical column set, Transform
// returns an explicitly empty table and an error rather than a
// partially-correct one.
func (p *Plan) Transform(raw *RawTable, now time.Time) (*schema.Table, error) {
	cols := schema.Columns()
	planned := 0
	for _, rf := range p.fields {
		planned += len(rf.field.Columns)
	}
	if planned != len(cols) {
		return &schema.Table{Columns: cols}, fmt.Errorf(
			"canonical schema assembly: plan yields %d columns, want %d", planned, len(cols))
	}

	out := &schema.Table{
		Columns: cols,
		Rows:    make([][]schema.Cell, 0, len(raw.Rows)),
	}
	for _, row := range raw.Rows {
		cells := make([]schema.Cell, 0, len(cols))
		for _, rf := range p.fields {
			cells = append(cells, applyField(rf, row, now)...)
		}
		out.Rows = append(out.Rows, cells)
	}
	return out, nil
}

// applyField normalizes one plan entry for one row.
func applyField(rf resolvedField, row []string, now time.Time) []schema.Cell {
	if rf.field.Kind == schema.KindSalary {
		s := normalize.ParseSalary(
			Cell(row, rf.cols[0]),
			Cell(row, rf.cols[1]),
			Cell(row, rf.cols[2]),
		)
		cells := make([]schema.Cell, 3)
		if s.AmountValid {
			cells[0] = schema.IntCell(s.Amount)
		}
		if s.CurrencyValid {
			cells[1] = schema.TextCell(s.Currency)
		}
		if s.FrequencyValid {
			cells[2] = schema.TextCell(s.Frequency)
		}
		return cells
	}

	raw := Cell(row, rf.cols[0])
	switch rf.field.Kind {
	case schema.KindPassthrough:
		if v := strings.TrimSpace(raw); v != "" {
			return []schema.Cell{schema.TextCell(v)}
		}
	case schema.KindText:
		if v, ok := normalize.Capitalize(raw); ok {
			return []schema.Cell{schema.TextCell(v)}
		}
	case schema.KindLongText:
		if !normalize.NotSpecified(raw) {
			return []schema.Cell{schema.TextCell(raw)}
		}
	case schema.KindDate:
		if v, ok := normalize.Date(raw, now); ok {
			return []schema.Cell{schema.TextCell(v)}
		}
	case schema.KindList:
		if v, ok := normalize.List(raw, ","); ok {
			return []schema.Cell{schema.TextCell(v)}
		}
	case schema.KindAge:
		if v, ok := normalize.Age(raw); ok {
			return []schema.Cell{schema.IntCell(v)}
		}
	case schema.KindYears:
		if v, ok := normalize.Years(raw); ok {
			return []schema.Cell{schema.IntCell(v)}
		}
	}
	return []schema.Cell{schema.Null}
}
