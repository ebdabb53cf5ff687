package pim

import (
	"encoding/csv"
	"io"

	"github.com/jhoicas/Catalogo-api/internal/domain/attribute"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// Valor de ejemplo por tipo: documenta la forma exacta que la importación
// espera en cada celda.
var templateSamples = map[attribute.Type]string{
	attribute.TypeText:        "Texto de ejemplo",
	attribute.TypeTextarea:    "Descripción larga de ejemplo",
	attribute.TypeNumber:      "123.45",
	attribute.TypePrice:       "99.99",
	attribute.TypeMetric:      "12.5",
	attribute.TypeBoolean:     "true",
	attribute.TypeDate:        "2024-01-15",
	attribute.TypeDatetime:    "2024-01-15 10:30:00",
	attribute.TypeSelect:      "Option 1",
	attribute.TypeMultiselect: `["Option 1","Option 2"]`,
	attribute.TypeTable:       `[{"value":"fila 1"},{"value":"fila 2"}]`,
}

// TemplateUseCase genera el CSV de plantilla de importación de la empresa.
type TemplateUseCase struct {
	attributes repository.AttributeRepository
}

// NewTemplateUseCase construye el caso de uso.
func NewTemplateUseCase(attributes repository.AttributeRepository) *TemplateUseCase {
	return &TemplateUseCase{attributes: attributes}
}

// Generate escribe un CSV con las columnas estándar más una attr_<code> por
// atributo del registro, y una única fila de muestra con un valor
// representativo por tipo.
func (uc *TemplateUseCase) Generate(companyID string, w io.Writer) error {
	attrs, err := uc.attributes.ListByCompany(companyID, repository.AttributeFilter{})
	if err != nil {
		return err
	}

	header := []string{"name", "sku", "description", "type", "status", "category", "family", "price"}
	row := []string{"Producto de ejemplo", "SKU-001", "Descripción del producto", "PHYSICAL", "Active", "Categoría ejemplo", "", "49.90"}
	for _, a := range attrs {
		header = append(header, attrColumnPrefix+a.Code)
		sample, ok := templateSamples[attribute.Type(a.Type)]
		if !ok {
			sample = "valor"
		}
		row = append(row, sample)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return err
	}
	if err := writer.Write(row); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}
