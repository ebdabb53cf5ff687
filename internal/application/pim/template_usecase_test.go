package pim_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/pim"
	"github.com/jhoicas/Catalogo-api/internal/domain/attribute"
)

func TestTemplate_ColumnasEstandarMasAtributos(t *testing.T) {
	f := newFixture()
	seedAttribute(f, "a1", "color", attribute.TypeText)
	seedAttribute(f, "a2", "waterproof", attribute.TypeBoolean)
	uc := pim.NewTemplateUseCase(f.attributes)

	var buf bytes.Buffer
	require.NoError(t, uc.Generate(testCompany, &buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2, "header más una única fila de muestra")

	header := rows[0]
	assert.Equal(t, []string{"name", "sku", "description", "type", "status", "category", "family", "price", "attr_color", "attr_waterproof"}, header)

	sample := rows[1]
	require.Len(t, sample, len(header), "la fila de muestra cubre todas las columnas")
	assert.Equal(t, "Producto de ejemplo", sample[0])
	assert.Equal(t, "true", sample[9], "el valor de muestra depende del tipo del atributo")
}

func TestTemplate_SinAtributos(t *testing.T) {
	f := newFixture()
	uc := pim.NewTemplateUseCase(f.attributes)

	var buf bytes.Buffer
	require.NoError(t, uc.Generate(testCompany, &buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows[0], 8)
}

func TestTemplate_MuestraPorTipo(t *testing.T) {
	f := newFixture()
	seedAttribute(f, "a1", "tags", attribute.TypeMultiselect)
	uc := pim.NewTemplateUseCase(f.attributes)

	var buf bytes.Buffer
	require.NoError(t, uc.Generate(testCompany, &buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, `["Option 1","Option 2"]`, rows[1][8], "MULTISELECT muestra un array JSON")
}
