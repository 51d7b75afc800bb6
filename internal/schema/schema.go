// Package schema defines the canonical job-offer table: the fixed output
// columns, their types, and the declarative plan that maps each canonical
// column to its acceptable source headers and cleaning rule.
//
// The column set and order are invariant. Whatever subset of source
// columns an uploaded batch carries, the output table always has exactly
// these columns in exactly this order; missing inputs surface as unknown
// cells, never as a narrower table.
package schema

// CellType is the storage type of a canonical column.
type CellType int

const (
	TypeText CellType = iota
	TypeInt
)

// Cell is one canonical value. Valid=false is the explicit "unknown"
// marker; it is distinct from empty string and from zero so that
// legitimate zero values survive export.
type Cell struct {
	Text  string
	Int   int64
	Valid bool
}

// TextCell wraps a known text value.
func TextCell(s string) Cell { return Cell{Text: s, Valid: true} }

// IntCell wraps a known integer value.
func IntCell(n int64) Cell { return Cell{Int: n, Valid: true} }

// Null is the unknown cell.
var Null = Cell{}

// Column describes one canonical output column.
type Column struct {
	Name     string
	Type     CellType
	LongText bool // free text whose line breaks are collapsed on export
}

// Table is an ordered canonical table. Rows are parallel to Columns.
type Table struct {
	Columns []Column
	Rows    [][]Cell
}

// Kind selects the normalizer applied to a field's raw input(s).
type Kind int

const (
	// KindPassthrough copies the trimmed raw value, unknown when empty.
	KindPassthrough Kind = iota
	// KindText capitalizes categorical text.
	KindText
	// KindLongText passes free text through untouched (export handles
	// whitespace collapsing).
	KindLongText
	// KindDate resolves publication dates to ISO YYYY-MM-DD.
	KindDate
	// KindList cleans a comma-delimited token list.
	KindList
	// KindAge parses a non-negative integer age.
	KindAge
	// KindYears parses years of experience.
	KindYears
	// KindSalary jointly normalizes the amount/currency/frequency
	// triple into three canonical columns.
	KindSalary
)

// Field maps one plan entry to its canonical columns and source headers.
// Columns has one entry except for KindSalary, which emits three.
// Sources is parallel to the normalizer's inputs: each inner slice lists
// acceptable source headers in preference order (accented scraper
// spelling first, plain-ASCII fallback second).
type Field struct {
	Kind    Kind
	Columns []Column
	Sources [][]string
}

// Fields returns the canonical plan in output-column order.
func Fields() []Field {
	return []Field{
		{Kind: KindPassthrough,
			Columns: []Column{{Name: "ID_Oferta"}},
			Sources: [][]string{{"ID_Oferta"}}},
		{Kind: KindText,
			Columns: []Column{{Name: "Titulo_Oferta"}},
			Sources: [][]string{{"Título", "Titulo"}}},
		{Kind: KindText,
			Columns: []Column{{Name: "Region_Departamento"}},
			Sources: [][]string{{"Region_Departamento"}}},
		{Kind: KindDate,
			Columns: []Column{{Name: "Fecha_Publicacion"}},
			Sources: [][]string{{"Fecha_Publicacion"}}},
		{Kind: KindText,
			Columns: []Column{{Name: "Tipo_Contrato"}},
			Sources: [][]string{{"Tipo_Contrato"}}},
		{Kind: KindText,
			Columns: []Column{{Name: "Tipo_Jornada"}},
			Sources: [][]string{{"Tipo_Jornada"}}},
		{Kind: KindText,
			Columns: []Column{{Name: "Modalidad_Trabajo"}},
			Sources: [][]string{{"Modalidad_Trabajo"}}},
		{Kind: KindSalary,
			Columns: []Column{
				{Name: "Salario_Monto", Type: TypeInt},
				{Name: "Salario_Moneda"},
				{Name: "Salario_Tipo_Pago"},
			},
			Sources: [][]string{
				{"Salario_Monto"},
				{"Salario_Moneda"},
				{"Salario_Tipo_Pago"},
			}},
		{Kind: KindList,
			Columns: []Column{{Name: "Lenguajes_Lista"}},
			Sources: [][]string{{"Lenguajes"}}},
		{Kind: KindList,
			Columns: []Column{{Name: "Frameworks_Lista"}},
			Sources: [][]string{{"Frameworks"}}},
		{Kind: KindList,
			Columns: []Column{{Name: "Bases_Datos_Lista"}},
			Sources: [][]string{{"gestores_db"}}},
		{Kind: KindList,
			Columns: []Column{{Name: "Herramientas_Lista"}},
			Sources: [][]string{{"Herramientas"}}},
		{Kind: KindText,
			Columns: []Column{{Name: "Nivel_Ingles"}},
			Sources: [][]string{{"nivel_ingles"}}},
		{Kind: KindText,
			Columns: []Column{{Name: "Nivel_Educacion"}},
			Sources: [][]string{{"nivel_educacion"}}},
		{Kind: KindYears,
			Columns: []Column{{Name: "Anos_Experiencia", Type: TypeInt}},
			Sources: [][]string{{"Anos_Experiencia"}}},
		{Kind: KindList,
			Columns: []Column{{Name: "Conocimientos_Adicionales_Lista"}},
			Sources: [][]string{{"Conocimientos_Adicionales"}}},
		{Kind: KindAge,
			Columns: []Column{{Name: "Edad_Minima", Type: TypeInt}},
			Sources: [][]string{{"Edad_minima"}}},
		{Kind: KindAge,
			Columns: []Column{{Name: "Edad_Maxima", Type: TypeInt}},
			Sources: [][]string{{"Edad_maxima"}}},
		{Kind: KindText,
			Columns: []Column{{Name: "Categoria_Puesto"}},
			Sources: [][]string{{"Categoría", "Categoria"}}},
		{Kind: KindText,
			Columns: []Column{{Name: "Nombre_Empresa"}},
			Sources: [][]string{{"NombreEmpresa"}}},
		{Kind: KindLongText,
			Columns: []Column{{Name: "Contenido_Descripcion_Empresa", LongText: true}},
			Sources: [][]string{{"DescripciónEmpresa", "DescripcionEmpresa"}}},
		{Kind: KindPassthrough,
			Columns: []Column{{Name: "Enlace_Oferta"}},
			Sources: [][]string{{"Enlace_Oferta"}}},
		{Kind: KindLongText,
			Columns: []Column{{Name: "Contenido_Descripcion_Oferta", LongText: true}},
			Sources: [][]string{{"Descripcion_Oferta_Raw"}}},
	}
}

// Columns returns the fixed canonical column set in order.
func Columns() []Column {
	fields := Fields()
	cols := make([]Column, 0, 25)
	for _, f := range fields {
		cols = append(cols, f.Columns...)
	}
	return cols
}
