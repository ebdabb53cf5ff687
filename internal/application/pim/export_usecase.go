package pim

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// Tamaño de lote del export: nunca se bufferiza el set completo en memoria.
const exportBatchSize = 200

// Columnas estándar del CSV de productos; las attr_<code> van después.
var exportStandardColumns = []string{"id", "name", "sku", "type", "status", "category", "family", "description"}

// ExportUseCase exporta productos a CSV (streaming) o PDF (catálogo paginado).
type ExportUseCase struct {
	products   repository.ProductRepository
	values     repository.AttributeValueRepository
	categories repository.CategoryRepository
	families   repository.FamilyRepository
	companies  repository.CompanyRepository
	pdf        ProductPDFGenerator
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	products repository.ProductRepository,
	values repository.AttributeValueRepository,
	categories repository.CategoryRepository,
	families repository.FamilyRepository,
	companies repository.CompanyRepository,
	pdf ProductPDFGenerator,
) *ExportUseCase {
	return &ExportUseCase{
		products:   products,
		values:     values,
		categories: categories,
		families:   families,
		companies:  companies,
		pdf:        pdf,
	}
}

// ExportCSV escribe el CSV sobre w en lotes. El header lleva las columnas
// estándar más una attr_<code> por atributo presente entre los productos
// exportados (esquema derivado de los datos, no del registro completo). Un
// error de escritura (cliente desconectado) corta la generación.
func (uc *ExportUseCase) ExportCSV(companyID string, f dto.ExportFilter, w io.Writer) error {
	filter := exportFilter(f)
	codes, err := uc.values.ListDistinctAttributeCodes(companyID, filter)
	if err != nil {
		return err
	}
	categoryNames, familyNames, err := uc.nameIndexes(companyID)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	header := append(append([]string{}, exportStandardColumns...), prefixCodes(codes)...)
	if err := writer.Write(header); err != nil {
		return err
	}

	for offset := 0; ; offset += exportBatchSize {
		filter.Limit = exportBatchSize
		filter.Offset = offset
		batch, err := uc.products.ListByCompany(companyID, filter)
		if err != nil {
			return err
		}
		if len(batch) == 0 {
			break
		}
		valuesByProduct, err := uc.valuesByProduct(batch)
		if err != nil {
			return err
		}
		for _, p := range batch {
			row := make([]string, 0, len(header))
			row = append(row,
				p.ID, p.Name, p.SKU, p.Type, p.Status,
				categoryNames[p.CategoryID], familyNames[p.FamilyID], p.Description,
			)
			byCode := make(map[string]string, len(valuesByProduct[p.ID]))
			for _, d := range valuesByProduct[p.ID] {
				byCode[d.Code] = renderValue(d.Value)
			}
			for _, code := range codes {
				row = append(row, byCode[code])
			}
			if err := writer.Write(row); err != nil {
				return err
			}
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			return err
		}
		if len(batch) < exportBatchSize {
			break
		}
	}
	writer.Flush()
	return writer.Error()
}

// ExportPDF arma el modelo de lectura completo y delega el render en el puerto.
func (uc *ExportUseCase) ExportPDF(companyID string, f dto.ExportFilter) ([]byte, error) {
	filter := exportFilter(f)
	categoryNames, familyNames, err := uc.nameIndexes(companyID)
	if err != nil {
		return nil, err
	}
	companyName := ""
	if company, err := uc.companies.GetByID(companyID); err != nil {
		return nil, err
	} else if company != nil {
		companyName = company.Name
	}

	var exports []ProductExport
	for offset := 0; ; offset += exportBatchSize {
		filter.Limit = exportBatchSize
		filter.Offset = offset
		batch, err := uc.products.ListByCompany(companyID, filter)
		if err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			break
		}
		valuesByProduct, err := uc.valuesByProduct(batch)
		if err != nil {
			return nil, err
		}
		for _, p := range batch {
			exp := ProductExport{
				ID:           p.ID,
				SKU:          p.SKU,
				Name:         p.Name,
				Description:  p.Description,
				Type:         p.Type,
				Status:       p.Status,
				Category:     categoryNames[p.CategoryID],
				Family:       familyNames[p.FamilyID],
				Completeness: p.Completeness,
			}
			for _, d := range valuesByProduct[p.ID] {
				exp.Attributes = append(exp.Attributes, AttributeLine{Name: d.Name, Value: renderValue(d.Value)})
			}
			exports = append(exports, exp)
		}
		if len(batch) < exportBatchSize {
			break
		}
	}
	return uc.pdf.Generate(companyName, exports)
}

func (uc *ExportUseCase) nameIndexes(companyID string) (categoryNames, familyNames map[string]string, err error) {
	categories, err := uc.categories.ListByCompany(companyID)
	if err != nil {
		return nil, nil, err
	}
	categoryNames = make(map[string]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}
	families, err := uc.families.ListByCompany(companyID)
	if err != nil {
		return nil, nil, err
	}
	familyNames = make(map[string]string, len(families))
	for _, f := range families {
		familyNames[f.ID] = f.Name
	}
	return categoryNames, familyNames, nil
}

func (uc *ExportUseCase) valuesByProduct(batch []*entity.Product) (map[string][]*repository.AttributeValueDetail, error) {
	ids := make([]string, 0, len(batch))
	for _, p := range batch {
		ids = append(ids, p.ID)
	}
	details, err := uc.values.ListDetailsByProducts(ids)
	if err != nil {
		return nil, err
	}
	byProduct := make(map[string][]*repository.AttributeValueDetail)
	for _, d := range details {
		byProduct[d.ProductID] = append(byProduct[d.ProductID], d)
	}
	return byProduct, nil
}

func exportFilter(f dto.ExportFilter) repository.ProductFilter {
	return repository.ProductFilter{
		CategoryID: f.CategoryID,
		FamilyID:   f.FamilyID,
		SortBy:     "created_at",
		SortOrder:  "asc",
	}
}

func prefixCodes(codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		out = append(out, attrColumnPrefix+c)
	}
	return out
}

// renderValue convierte el JSONB almacenado a texto de celda: strings JSON
// salen sin comillas (y re-importan vía coerción), el resto sale como JSON
// literal (arrays de MULTISELECT sobreviven el round trip).
func renderValue(v json.RawMessage) string {
	if len(v) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	var b bool
	if err := json.Unmarshal(v, &b); err == nil {
		return fmt.Sprintf("%t", b)
	}
	var n json.Number
	if err := json.Unmarshal(v, &n); err == nil {
		return n.String()
	}
	return string(v)
}
