package export

import (
	"bytes"
	"fmt"

	"github.com/parquet-go/parquet-go"

	"github.com/lmtech-pe/ofertas-loader/internal/schema"
)

// ofertaRow is the Parquet shape of one canonical record. Every field is
// optional so unknown cells become real nulls; the numeric columns keep
// their integer type instead of degrading to strings.
type ofertaRow struct {
	IDOferta                      *string `parquet:"ID_Oferta,optional"`
	TituloOferta                  *string `parquet:"Titulo_Oferta,optional"`
	RegionDepartamento            *string `parquet:"Region_Departamento,optional"`
	FechaPublicacion              *string `parquet:"Fecha_Publicacion,optional"`
	TipoContrato                  *string `parquet:"Tipo_Contrato,optional"`
	TipoJornada                   *string `parquet:"Tipo_Jornada,optional"`
	ModalidadTrabajo              *string `parquet:"Modalidad_Trabajo,optional"`
	SalarioMonto                  *int64  `parquet:"Salario_Monto,optional"`
	SalarioMoneda                 *string `parquet:"Salario_Moneda,optional"`
	SalarioTipoPago               *string `parquet:"Salario_Tipo_Pago,optional"`
	LenguajesLista                *string `parquet:"Lenguajes_Lista,optional"`
	FrameworksLista               *string `parquet:"Frameworks_Lista,optional"`
	BasesDatosLista               *string `parquet:"Bases_Datos_Lista,optional"`
	HerramientasLista             *string `parquet:"Herramientas_Lista,optional"`
	NivelIngles                   *string `parquet:"Nivel_Ingles,optional"`
	NivelEducacion                *string `parquet:"Nivel_Educacion,optional"`
	AnosExperiencia               *int64  `parquet:"Anos_Experiencia,optional"`
	ConocimientosAdicionalesLista *string `parquet:"Conocimientos_Adicionales_Lista,optional"`
	EdadMinima                    *int64  `parquet:"Edad_Minima,optional"`
	EdadMaxima                    *int64  `parquet:"Edad_Maxima,optional"`
	CategoriaPuesto               *string `parquet:"Categoria_Puesto,optional"`
	NombreEmpresa                 *string `parquet:"Nombre_Empresa,optional"`
	ContenidoDescripcionEmpresa   *string `parquet:"Contenido_Descripcion_Empresa,optional"`
	EnlaceOferta                  *string `parquet:"Enlace_Oferta,optional"`
	ContenidoDescripcionOferta    *string `parquet:"Contenido_Descripcion_Oferta,optional"`
}

// EncodeParquet writes the table as a Parquet file with the fixed
// canonical schema.
func EncodeParquet(t *schema.Table) ([]byte, error) {
	rows := make([]ofertaRow, 0, len(t.Rows))
	for _, cells := range t.Rows {
		if len(cells) != len(t.Columns) {
			return nil, fmt.Errorf("encode parquet: row has %d cells, want %d", len(cells), len(t.Columns))
		}
		row, err := buildParquetRow(t.Columns, cells)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	var buf bytes.Buffer
	w := parquet.NewGenericWriter[ofertaRow](&buf)
	if len(rows) > 0 {
		if _, err := w.Write(rows); err != nil {
			return nil, fmt.Errorf("encode parquet: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("encode parquet: %w", err)
	}
	return buf.Bytes(), nil
}

// buildParquetRow assigns cells to struct fields by canonical column name.
func buildParquetRow(cols []schema.Column, cells []schema.Cell) (ofertaRow, error) {
	var r ofertaRow
	targets := map[string]any{
		"ID_Oferta":                       &r.IDOferta,
		"Titulo_Oferta":                   &r.TituloOferta,
		"Region_Departamento":             &r.RegionDepartamento,
		"Fecha_Publicacion":               &r.FechaPublicacion,
		"Tipo_Contrato":                   &r.TipoContrato,
		"Tipo_Jornada":                    &r.TipoJornada,
		"Modalidad_Trabajo":               &r.ModalidadTrabajo,
		"Salario_Monto":                   &r.SalarioMonto,
		"Salario_Moneda":                  &r.SalarioMoneda,
		"Salario_Tipo_Pago":               &r.SalarioTipoPago,
		"Lenguajes_Lista":                 &r.LenguajesLista,
		"Frameworks_Lista":                &r.FrameworksLista,
		"Bases_Datos_Lista":               &r.BasesDatosLista,
		"Herramientas_Lista":              &r.HerramientasLista,
		"Nivel_Ingles":                    &r.NivelIngles,
		"Nivel_Educacion":                 &r.NivelEducacion,
		"Anos_Experiencia":                &r.AnosExperiencia,
		"Conocimientos_Adicionales_Lista": &r.ConocimientosAdicionalesLista,
		"Edad_Minima":                     &r.EdadMinima,
		"Edad_Maxima":                     &r.EdadMaxima,
		"Categoria_Puesto":                &r.CategoriaPuesto,
		"Nombre_Empresa":                  &r.NombreEmpresa,
		"Contenido_Descripcion_Empresa":   &r.ContenidoDescripcionEmpresa,
		"Enlace_Oferta":                   &r.EnlaceOferta,
		"Contenido_Descripcion_Oferta":    &r.ContenidoDescripcionOferta,
	}

	for i, col := range cols {
		cell := cells[i]
		if !cell.Valid {
			continue
		}
		target, ok := targets[col.Name]
		if !ok {
			return r, fmt.Errorf("encode parquet: unknown column %q", col.Name)
		}
		switch ptr := target.(type) {
		case **int64:
			v := cell.Int
			*ptr = &v
		case **string:
			v := cell.Text
			*ptr = &v
		}
	}
	return r, nil
}
