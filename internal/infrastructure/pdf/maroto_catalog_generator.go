// Package pdf implementa el export de catálogo de productos en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la empresa │ "Catálogo de productos"     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PRODUCTO: Nombre + SKU + estado                            │
//	│    campos estándar (tipo, categoría, familia, completitud)  │
//	│    atributo: valor                                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PRODUCTO: ...  (paginación automática de maroto)           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Catalogo-api/internal/application/pim"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Ensure MarotoCatalogGenerator implements pim.ProductPDFGenerator.
var _ pim.ProductPDFGenerator = (*MarotoCatalogGenerator)(nil)

// MarotoCatalogGenerator implementa pim.ProductPDFGenerator usando Maroto v2.
type MarotoCatalogGenerator struct{}

// NewMarotoCatalogGenerator construye el generador.
func NewMarotoCatalogGenerator() *MarotoCatalogGenerator { return &MarotoCatalogGenerator{} }

// Generate genera el catálogo PDF: un bloque por producto, con salto de página
// automático cuando se agota el espacio vertical.
func (g *MarotoCatalogGenerator) Generate(companyName string, products []pim.ProductExport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Catálogo de productos", true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(companyName, len(products)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, p := range products {
		for _, r := range productRows(p) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.2}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar catálogo: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la empresa (izq) y título + conteo (der).
func headerRow(companyName string, total int) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(nonEmpty(companyName, "Catálogo"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("CATÁLOGO DE PRODUCTOS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%d productos", total), props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

// productRows: un bloque por producto con campos estándar y luego una línea
// por valor de atributo.
func productRows(p pim.ProductExport) []core.Row {
	rows := []core.Row{
		row.New(8).Add(
			col.New(8).Add(
				text.New(p.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 1}),
			),
			col.New(4).Add(
				text.New(p.Status, props.Text{Size: 8, Align: align.Right, Top: 2, Color: colorGray}),
			),
		),
		row.New(5).Add(col.New(12).Add(
			text.New(fmt.Sprintf("SKU: %s   |   Tipo: %s   |   Categoría: %s   |   Familia: %s   |   Completitud: %d%%",
				nonEmpty(p.SKU, "—"),
				p.Type,
				nonEmpty(p.Category, "—"),
				nonEmpty(p.Family, "—"),
				p.Completeness,
			), props.Text{Size: 7.5, Color: colorGray, Top: 0.5}),
		)),
	}
	if p.Description != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(p.Description, props.Text{Size: 8, Top: 0.5}),
		)))
	}
	for _, a := range p.Attributes {
		rows = append(rows, row.New(4).Add(
			col.New(4).Add(text.New(a.Name+":", props.Text{
				Style: fontstyle.Bold, Size: 7.5, Top: 0.5, Left: 2,
			})),
			col.New(8).Add(text.New(a.Value, props.Text{Size: 7.5, Top: 0.5})),
		))
	}
	return rows
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
