package core

import (
	"strings"
	"testing"
	"time"

	"github.com/lmtech-pe/ofertas-loader/internal/schema"
)

var batchTime = time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)

func decode(t *testing.T, data string) *RawTable {
	t.Helper()
	raw, err := DecodeCSV(strings.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeCSV: %v", err)
	}
	return raw
}

func columnIndex(t *testing.T, table *schema.Table, name string) int {
	t.Helper()
	for i, c := range table.Columns {
		if c.Name == name {
			return i
		}
	}
	t.Fatalf("canonical column %s not found", name)
	return -1
}

// The output column set and order never depend on which source columns
// the upload carried.
func TestTransform_FixedColumnSet(t *testing.T) {
	full := decode(t, "ID_Oferta;Título;Fecha_Publicacion;Edad_minima\nof-1;dev;hoy;25\n")
	sparse := decode(t, "ID_Oferta\nof-2\n")

	want := schema.Columns()
	for _, raw := range []*RawTable{full, sparse} {
		table, err := BuildPlan(raw).Transform(raw, batchTime)
		if err != nil {
			t.Fatalf("Transform: %v", err)
		}
		if len(table.Columns) != len(want) {
			t.Fatalf("got %d columns, want %d", len(table.Columns), len(want))
		}
		for i := range want {
			if table.Columns[i].Name != want[i].Name {
				t.Errorf("column %d = %s, want %s", i, table.Columns[i].Name, want[i].Name)
			}
		}
		for _, row := range table.Rows {
			if len(row) != len(want) {
				t.Fatalf("row has %d cells, want %d", len(row), len(want))
			}
		}
	}
}

// A missing source column produces exactly one warning for the batch and
// unknown cells for every row, never a row-level failure.
func TestTransform_MissingColumnWarnsOnce(t *testing.T) {
	raw := decode(t, "ID_Oferta;Título\nof-1;dev\nof-2;qa\nof-3;pm\n")
	plan := BuildPlan(raw)

	var ageWarnings int
	for _, w := range plan.Warnings() {
		if strings.Contains(w, "Edad_minima") {
			ageWarnings++
		}
	}
	if ageWarnings != 1 {
		t.Errorf("got %d warnings for Edad_minima, want exactly 1", ageWarnings)
	}

	table, err := plan.Transform(raw, batchTime)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	idx := columnIndex(t, table, "Edad_Minima")
	for i, row := range table.Rows {
		if row[idx].Valid {
			t.Errorf("row %d: Edad_Minima should be unknown when the source column is absent", i)
		}
	}
}

func TestTransform_RowIndependence(t *testing.T) {
	raw := decode(t, "ID_Oferta;Fecha_Publicacion\n"+
		"of-1;basura total\n"+
		"of-2;hace 3 días\n")

	table, err := BuildPlan(raw).Transform(raw, batchTime)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	idx := columnIndex(t, table, "Fecha_Publicacion")
	if table.Rows[0][idx].Valid {
		t.Error("malformed date should degrade to unknown")
	}
	if got := table.Rows[1][idx]; !got.Valid || got.Text != "2024-06-07" {
		t.Errorf("row 2 date = %+v, want 2024-06-07", got)
	}
}

func TestTransform_SalaryTriple(t *testing.T) {
	raw := decode(t, "ID_Oferta;Salario_Monto;Salario_Moneda;Salario_Tipo_Pago\n"+
		"of-1;S/. 3,500;;\n"+
		"of-2;A convenir;;\n")

	table, err := BuildPlan(raw).Transform(raw, batchTime)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	monto := columnIndex(t, table, "Salario_Monto")
	moneda := columnIndex(t, table, "Salario_Moneda")
	pago := columnIndex(t, table, "Salario_Tipo_Pago")

	r0 := table.Rows[0]
	if !r0[monto].Valid || r0[monto].Int != 3500 {
		t.Errorf("Salario_Monto = %+v, want 3500", r0[monto])
	}
	if !r0[moneda].Valid || r0[moneda].Text != "PEN" {
		t.Errorf("Salario_Moneda = %+v, want PEN", r0[moneda])
	}
	if !r0[pago].Valid || r0[pago].Text != "Mensual" {
		t.Errorf("Salario_Tipo_Pago = %+v, want Mensual", r0[pago])
	}

	for _, cell := range []schema.Cell{table.Rows[1][monto], table.Rows[1][moneda], table.Rows[1][pago]} {
		if cell.Valid {
			t.Errorf("a convenir should leave the whole salary triple unknown, got %+v", cell)
		}
	}
}

func TestTransform_CategoricalAndLists(t *testing.T) {
	raw := decode(t, "ID_Oferta;Modalidad_Trabajo;Lenguajes\n"+
		"of-1;REMOTO;Python, python , SQL,,\n")

	table, err := BuildPlan(raw).Transform(raw, batchTime)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	if got := table.Rows[0][columnIndex(t, table, "Modalidad_Trabajo")]; got.Text != "Remoto" {
		t.Errorf("Modalidad_Trabajo = %+v, want Remoto", got)
	}
	if got := table.Rows[0][columnIndex(t, table, "Lenguajes_Lista")]; got.Text != "Python,Python,Sql" {
		t.Errorf("Lenguajes_Lista = %+v, want Python,Python,Sql", got)
	}
}
