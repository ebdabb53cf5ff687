package pim_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/pim"
	"github.com/jhoicas/Catalogo-api/internal/domain/attribute"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// capturePDF guarda los argumentos del render para inspección.
type capturePDF struct {
	companyName string
	products    []pim.ProductExport
}

func (c *capturePDF) Generate(companyName string, products []pim.ProductExport) ([]byte, error) {
	c.companyName = companyName
	c.products = products
	return []byte("%PDF-fake"), nil
}

func newExportUC(f *fixture, pdf pim.ProductPDFGenerator) *pim.ExportUseCase {
	return pim.NewExportUseCase(f.products, f.values, f.categories, f.families, f.companies, pdf)
}

func seedCatalog(t *testing.T, f *fixture) {
	t.Helper()
	now := time.Now()
	require.NoError(t, f.categories.Create(&entity.Category{
		ID: "c1", CompanyID: testCompany, Code: "shoes", Name: "Calzado", Level: 1, CreatedAt: now, UpdatedAt: now,
	}))
	f.families.add(entity.Family{ID: "fam1", CompanyID: testCompany, Code: "boots", Name: "Botas", CreatedAt: now, UpdatedAt: now})
	seedAttribute(f, "a1", "color", attribute.TypeText)
	seedAttribute(f, "a2", "waterproof", attribute.TypeBoolean)

	require.NoError(t, f.products.Create(&entity.Product{
		ID: "p1", CompanyID: testCompany, SKU: "SKU-1", Name: "Bota alta",
		Type: entity.ProductTypePhysical, Status: entity.ProductStatusActive,
		CategoryID: "c1", FamilyID: "fam1", CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, f.values.Create(&entity.AttributeValue{
		ID: "v1", ProductID: "p1", AttributeID: "a1", Value: []byte(`"rojo"`), CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, f.values.Create(&entity.AttributeValue{
		ID: "v2", ProductID: "p1", AttributeID: "a2", Value: []byte(`true`), CreatedAt: now, UpdatedAt: now,
	}))
}

func TestExportCSV_HeaderDerivadoDeLosDatos(t *testing.T) {
	f := newFixture()
	seedCatalog(t, f)
	uc := newExportUC(f, &capturePDF{})

	var buf bytes.Buffer
	require.NoError(t, uc.ExportCSV(testCompany, dto.ExportFilter{}, &buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	header := rows[0]
	assert.Equal(t, []string{"id", "name", "sku", "type", "status", "category", "family", "description", "attr_color", "attr_waterproof"}, header,
		"columnas estándar más una attr_<code> por atributo presente en los datos")

	row := rows[1]
	assert.Equal(t, "Bota alta", row[1])
	assert.Equal(t, "SKU-1", row[2])
	assert.Equal(t, "Calzado", row[5], "la categoría sale por nombre, no por id")
	assert.Equal(t, "Botas", row[6])
	assert.Equal(t, "rojo", row[8], "los strings JSON salen sin comillas")
	assert.Equal(t, "true", row[9])
}

func TestExportCSV_SinValoresSoloColumnasEstandar(t *testing.T) {
	f := newFixture()
	now := time.Now()
	require.NoError(t, f.products.Create(&entity.Product{
		ID: "p1", CompanyID: testCompany, Name: "Simple",
		Type: entity.ProductTypePhysical, Status: entity.ProductStatusActive,
		CreatedAt: now, UpdatedAt: now,
	}))
	uc := newExportUC(f, &capturePDF{})

	var buf bytes.Buffer
	require.NoError(t, uc.ExportCSV(testCompany, dto.ExportFilter{}, &buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows[0], 8, "sin valores de atributo el header queda en las 8 estándar")
}

func TestExportCSV_RoundTripConImport(t *testing.T) {
	f := newFixture()
	seedCatalog(t, f)
	uc := newExportUC(f, &capturePDF{})

	var buf bytes.Buffer
	require.NoError(t, uc.ExportCSV(testCompany, dto.ExportFilter{}, &buf))

	// renombrar el SKU de la línea de datos para forzar un create en vez de upsert
	out := strings.Replace(buf.String(), "SKU-1", "SKU-2", 1)
	importUC := newImportUC(f)
	result, err := importUC.Import(context.Background(), testCompany, strings.NewReader(out))
	require.NoError(t, err)
	assert.True(t, result.Success, "el CSV exportado debe re-importar sin errores: %v", result.Errors)

	clone, err := f.products.GetByCompanyAndSKU(testCompany, "SKU-2")
	require.NoError(t, err)
	require.NotNil(t, clone)
	values, _ := f.values.ListByProduct(clone.ID)
	assert.Len(t, values, 2, "los valores de atributo sobreviven el round trip")
}

func TestExportCSV_FiltroPorCategoria(t *testing.T) {
	f := newFixture()
	seedCatalog(t, f)
	now := time.Now()
	require.NoError(t, f.products.Create(&entity.Product{
		ID: "p2", CompanyID: testCompany, Name: "Sin categoría",
		Type: entity.ProductTypePhysical, Status: entity.ProductStatusActive,
		CreatedAt: now, UpdatedAt: now,
	}))
	uc := newExportUC(f, &capturePDF{})

	var buf bytes.Buffer
	require.NoError(t, uc.ExportCSV(testCompany, dto.ExportFilter{CategoryID: "c1"}, &buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 2, "solo la fila de la categoría filtrada")
}

func TestExportPDF_DelegaEnElGenerador(t *testing.T) {
	f := newFixture()
	seedCatalog(t, f)
	f.companies.add(entity.Company{ID: testCompany, Name: "Acme SA"})
	pdf := &capturePDF{}
	uc := newExportUC(f, pdf)

	out, err := uc.ExportPDF(testCompany, dto.ExportFilter{})
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	assert.Equal(t, "Acme SA", pdf.companyName)
	require.Len(t, pdf.products, 1)
	assert.Equal(t, "Bota alta", pdf.products[0].Name)
	assert.Equal(t, "Calzado", pdf.products[0].Category)
	require.Len(t, pdf.products[0].Attributes, 2)
}

func TestRenderValueViaExport(t *testing.T) {
	// El render de valores se observa por el CSV: strings sin comillas,
	// booleanos y números como literales, arrays como JSON crudo.
	f := newFixture()
	now := time.Now()
	seedAttribute(f, "a1", "tags", attribute.TypeMultiselect)
	seedAttribute(f, "a2", "weight", attribute.TypeNumber)
	require.NoError(t, f.products.Create(&entity.Product{
		ID: "p1", CompanyID: testCompany, Name: "Bota",
		Type: entity.ProductTypePhysical, Status: entity.ProductStatusActive,
		CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, f.values.Create(&entity.AttributeValue{
		ID: "v1", ProductID: "p1", AttributeID: "a1", Value: []byte(`["rojo","azul"]`), CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, f.values.Create(&entity.AttributeValue{
		ID: "v2", ProductID: "p1", AttributeID: "a2", Value: []byte(`12.5`), CreatedAt: now, UpdatedAt: now,
	}))
	uc := newExportUC(f, &capturePDF{})

	var buf bytes.Buffer
	require.NoError(t, uc.ExportCSV(testCompany, dto.ExportFilter{}, &buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	row := rows[1]
	assert.Equal(t, `["rojo","azul"]`, row[8], "MULTISELECT sale como JSON literal")
	assert.Equal(t, "12.5", row[9])
}
