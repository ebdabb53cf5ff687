package pim

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/ports"
	"github.com/jhoicas/Catalogo-api/internal/domain/attribute"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// Prefijo de las columnas de atributo en el CSV de productos.
const attrColumnPrefix = "attr_"

// ImportUseCase importación de productos desde CSV. Las filas se procesan
// estrictamente en orden de archivo: una fila puede referenciar la categoría
// que otra anterior acaba de auto-crear.
type ImportUseCase struct {
	categories repository.CategoryRepository
	attributes repository.AttributeRepository
	families   repository.FamilyRepository
	products   repository.ProductRepository
	tx         ports.TxRunner
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(
	categories repository.CategoryRepository,
	attributes repository.AttributeRepository,
	families repository.FamilyRepository,
	products repository.ProductRepository,
	tx ports.TxRunner,
) *ImportUseCase {
	return &ImportUseCase{
		categories: categories,
		attributes: attributes,
		families:   families,
		products:   products,
		tx:         tx,
	}
}

// parsedValue valor de atributo ya resuelto y coercionado de una celda.
type parsedValue struct {
	attributeID string
	value       []byte
}

// attrColumn posición de una columna attr_<code> en el header.
type attrColumn struct {
	code  string
	index int
}

// Import procesa el CSV fila a fila. Un error en una fila se aísla: se anota
// con su índice 1-based (sin contar el header) y el resto del lote continúa.
func (uc *ImportUseCase) Import(ctx context.Context, companyID string, r io.Reader) (*dto.ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // filas cortas se rellenan, largas se ignoran por índice
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return &dto.ImportResult{Success: true}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leyendo header del CSV: %w", err)
	}
	columns := make(map[string]int, len(header))
	var attrColumns []attrColumn // en orden de header, para crear valores en orden estable
	for i, h := range header {
		name := strings.TrimSpace(h)
		columns[name] = i
		if strings.HasPrefix(name, attrColumnPrefix) {
			attrColumns = append(attrColumns, attrColumn{code: strings.TrimPrefix(name, attrColumnPrefix), index: i})
		}
	}

	// Cache de atributos por código, incluidos los que no existen (nil).
	attrCache := make(map[string]*entity.Attribute)

	result := &dto.ImportResult{}
	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		result.Processed++
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, dto.ImportRowError{Row: row, Error: err.Error()})
			continue
		}
		if err := uc.importRow(ctx, companyID, columns, attrColumns, record, attrCache); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, dto.ImportRowError{Row: row, Error: err.Error()})
			continue
		}
		result.Succeeded++
	}
	result.Success = result.Failed == 0
	return result, nil
}

func (uc *ImportUseCase) importRow(ctx context.Context, companyID string, columns map[string]int, attrColumns []attrColumn, record []string, attrCache map[string]*entity.Attribute) error {
	cell := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	name := cell("name")
	if name == "" {
		return fmt.Errorf("Name is required")
	}

	categoryID, err := uc.resolveCategory(companyID, cell("category"))
	if err != nil {
		return err
	}
	familyID, err := uc.resolveFamily(companyID, cell("family"))
	if err != nil {
		return err
	}

	values, err := uc.parseAttributeCells(companyID, attrColumns, record, attrCache)
	if err != nil {
		return err
	}

	price := decimal.Zero
	if raw := cell("price"); raw != "" {
		price, err = decimal.NewFromString(raw)
		if err != nil {
			return fmt.Errorf("precio inválido %q", raw)
		}
	}

	sku := cell("sku")
	var existing *entity.Product
	if sku != "" {
		existing, err = uc.products.GetByCompanyAndSKU(companyID, sku)
		if err != nil {
			return err
		}
	}

	now := time.Now()
	return uc.tx.Run(ctx, func(r ports.TxRepos) error {
		if existing != nil {
			existing.Name = name
			existing.Description = cell("description")
			existing.Type = normalizeType(cell("type"), existing.Type)
			existing.Status = defaultString(cell("status"), existing.Status)
			if cell("price") != "" {
				existing.Price = price
			}
			existing.CategoryID = categoryID
			existing.FamilyID = familyID
			existing.UpdatedAt = now
			if err := r.Products.Update(existing); err != nil {
				return err
			}
			// Reemplazo atómico del set de valores, nunca unión con los viejos.
			if err := r.Values.DeleteByProduct(existing.ID); err != nil {
				return err
			}
			return createParsedValues(r.Values, existing.ID, values, now)
		}
		product := &entity.Product{
			ID:          uuid.New().String(),
			CompanyID:   companyID,
			SKU:         sku,
			Name:        name,
			Description: cell("description"),
			Type:        normalizeType(cell("type"), entity.ProductTypePhysical),
			Status:      defaultString(cell("status"), entity.ProductStatusActive),
			Price:       price,
			CategoryID:  categoryID,
			FamilyID:    familyID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := r.Products.Create(product); err != nil {
			return err
		}
		return createParsedValues(r.Values, product.ID, values, now)
	})
}

// resolveCategory busca por nombre exacto; si no existe la auto-crea en nivel 1
// con código slugificado. La importación nunca crea jerarquías anidadas.
func (uc *ImportUseCase) resolveCategory(companyID, name string) (string, error) {
	if name == "" {
		return "", nil
	}
	category, err := uc.categories.GetByCompanyAndName(companyID, name)
	if err != nil {
		return "", err
	}
	if category != nil {
		return category.ID, nil
	}
	now := time.Now()
	category = &entity.Category{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Code:      Slugify(name),
		Name:      name,
		Level:     1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.categories.Create(category); err != nil {
		return "", err
	}
	return category.ID, nil
}

// resolveFamily solo resuelve por nombre exacto; sin auto-create, la ausencia
// deja el producto sin familia.
func (uc *ImportUseCase) resolveFamily(companyID, name string) (string, error) {
	if name == "" {
		return "", nil
	}
	family, err := uc.families.GetByCompanyAndName(companyID, name)
	if err != nil {
		return "", err
	}
	if family == nil {
		return "", nil
	}
	return family.ID, nil
}

func (uc *ImportUseCase) parseAttributeCells(companyID string, attrColumns []attrColumn, record []string, attrCache map[string]*entity.Attribute) ([]parsedValue, error) {
	var values []parsedValue
	for _, col := range attrColumns {
		if col.index >= len(record) {
			continue
		}
		raw := strings.TrimSpace(record[col.index])
		if raw == "" {
			continue
		}
		attr, cached := attrCache[col.code]
		if !cached {
			var err error
			attr, err = uc.attributes.GetByCompanyAndCode(companyID, col.code)
			if err != nil {
				return nil, err
			}
			attrCache[col.code] = attr
		}
		if attr == nil {
			// Columna de un atributo que no existe en el registro: se ignora.
			continue
		}
		coerced, err := attribute.CoerceValue(attribute.Type(attr.Type), raw)
		if err != nil {
			return nil, err
		}
		values = append(values, parsedValue{attributeID: attr.ID, value: coerced})
	}
	return values, nil
}

func createParsedValues(values repository.AttributeValueRepository, productID string, parsed []parsedValue, now time.Time) error {
	for _, pv := range parsed {
		value := &entity.AttributeValue{
			ID:          uuid.New().String(),
			ProductID:   productID,
			AttributeID: pv.attributeID,
			Value:       pv.value,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := values.Create(value); err != nil {
			return err
		}
	}
	return nil
}

func normalizeType(s, def string) string {
	switch strings.ToUpper(s) {
	case entity.ProductTypePhysical:
		return entity.ProductTypePhysical
	case entity.ProductTypeDigital:
		return entity.ProductTypeDigital
	case entity.ProductTypeService:
		return entity.ProductTypeService
	}
	return def
}

func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
