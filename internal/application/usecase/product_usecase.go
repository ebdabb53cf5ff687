package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/ports"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/completeness"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// Columnas de orden permitidas en listados de productos (lista blanca: el
// sortBy del cliente nunca llega crudo al SQL).
var productSortColumns = map[string]string{
	"name":         "name",
	"sku":          "sku",
	"status":       "status",
	"completeness": "completeness",
	"createdAt":    "created_at",
	"updatedAt":    "updated_at",
}

// ProductUseCase casos de uso CRUD de productos, incluido el recálculo de
// completitud con write-back-on-read.
type ProductUseCase struct {
	products repository.ProductRepository
	values   repository.AttributeValueRepository
	families repository.FamilyRepository
	tx       ports.TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	products repository.ProductRepository,
	values repository.AttributeValueRepository,
	families repository.FamilyRepository,
	tx ports.TxRunner,
) *ProductUseCase {
	return &ProductUseCase{products: products, values: values, families: families, tx: tx}
}

// List retorna productos paginados con sus valores de atributo resueltos.
func (uc *ProductUseCase) List(companyID string, q dto.ProductListQuery) (*dto.ProductListResponse, error) {
	filter, page := buildProductFilter(q)
	total, err := uc.products.CountByCompany(companyID, filter)
	if err != nil {
		return nil, err
	}
	list, err := uc.products.ListByCompany(companyID, filter)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(list))
	for _, p := range list {
		ids = append(ids, p.ID)
	}
	valuesByProduct, err := uc.valueDetails(ids)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p, valuesByProduct[p.ID]))
	}
	return &dto.ProductListResponse{
		Products:   items,
		Pagination: dto.NewPagination(total, page, filter.Limit),
	}, nil
}

// Get retorna el producto con sus valores. Si tiene familia, recalcula la
// completitud contra los requeridos y persiste solo cuando difiere del valor
// cacheado (write-back-on-read).
func (uc *ProductUseCase) Get(companyID, id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.CompanyID != companyID {
		return nil, nil
	}
	details, err := uc.values.ListDetailsByProducts([]string{id})
	if err != nil {
		return nil, err
	}

	if product.FamilyID != "" {
		current, err := uc.computeCompleteness(product.FamilyID, details)
		if err != nil {
			return nil, err
		}
		if current != product.Completeness {
			if err := uc.products.UpdateCompleteness(id, current); err != nil {
				return nil, err
			}
			product.Completeness = current
		}
	}
	resp := toProductResponse(product, details)
	return &resp, nil
}

// Create crea el producto con sus valores de atributo en una transacción.
func (uc *ProductUseCase) Create(ctx context.Context, companyID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU != "" {
		existing, err := uc.products.GetByCompanyAndSKU(companyID, in.SKU)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, &domain.UniquenessError{Entity: "product", Field: "sku", Value: in.SKU}
		}
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		SKU:         in.SKU,
		Name:        in.Name,
		Description: in.Description,
		Type:        defaultString(in.Type, entity.ProductTypePhysical),
		Status:      defaultString(in.Status, entity.ProductStatusActive),
		Price:       in.Price,
		CategoryID:  in.CategoryID,
		FamilyID:    in.FamilyID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := uc.tx.Run(ctx, func(r ports.TxRepos) error {
		if err := r.Products.Create(product); err != nil {
			return err
		}
		return createValues(r.Values, product.ID, in.AttributeValues, now)
	})
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(product, nil)
	return &resp, nil
}

// Update actualiza campos estándar y, si AttributeValues viene en el patch,
// reemplaza el set completo de valores de forma atómica; la completitud se
// recalcula dentro de la misma transacción.
func (uc *ProductUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	if in.SKU != nil && *in.SKU != product.SKU {
		if *in.SKU != "" {
			dup, err := uc.products.GetByCompanyAndSKU(companyID, *in.SKU)
			if err != nil {
				return nil, err
			}
			if dup != nil && dup.ID != id {
				return nil, &domain.UniquenessError{Entity: "product", Field: "sku", Value: *in.SKU}
			}
		}
		product.SKU = *in.SKU
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Type != nil {
		product.Type = *in.Type
	}
	if in.Status != nil {
		product.Status = *in.Status
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.FamilyID != nil {
		product.FamilyID = *in.FamilyID
	}
	now := time.Now()
	product.UpdatedAt = now

	err = uc.tx.Run(ctx, func(r ports.TxRepos) error {
		if in.AttributeValues != nil {
			if err := r.Values.DeleteByProduct(id); err != nil {
				return err
			}
			if err := createValues(r.Values, id, *in.AttributeValues, now); err != nil {
				return err
			}
			if product.FamilyID != "" {
				details, err := r.Values.ListDetailsByProducts([]string{id})
				if err != nil {
					return err
				}
				current, err := computeCompletenessWith(r.Families, product.FamilyID, details)
				if err != nil {
					return err
				}
				product.Completeness = current
			}
		}
		return r.Products.Update(product)
	})
	if err != nil {
		return nil, err
	}
	details, err := uc.values.ListDetailsByProducts([]string{id})
	if err != nil {
		return nil, err
	}
	resp := toProductResponse(product, details)
	return &resp, nil
}

// Delete elimina el producto (sus valores caen por cascada de FK).
func (uc *ProductUseCase) Delete(companyID, id string) error {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil || product.CompanyID != companyID {
		return domain.ErrNotFound
	}
	return uc.products.Delete(id)
}

// BulkEdit aplica el mismo patch a una lista de ids de la empresa.
func (uc *ProductUseCase) BulkEdit(companyID string, in dto.BulkEditRequest) (int, error) {
	if len(in.IDs) == 0 {
		return 0, domain.ErrInvalidInput
	}
	patch := repository.ProductBulkPatch{
		Status:     in.Data.Status,
		CategoryID: in.Data.CategoryID,
		FamilyID:   in.Data.FamilyID,
	}
	if patch.Status == nil && patch.CategoryID == nil && patch.FamilyID == nil {
		return 0, domain.ErrInvalidInput
	}
	return uc.products.BulkUpdate(companyID, in.IDs, patch)
}

// BulkDelete elimina una lista de ids scopeada a la empresa.
func (uc *ProductUseCase) BulkDelete(companyID string, in dto.BulkDeleteRequest) (int, error) {
	if len(in.IDs) == 0 {
		return 0, domain.ErrInvalidInput
	}
	return uc.products.BulkDelete(companyID, in.IDs)
}

func (uc *ProductUseCase) computeCompleteness(familyID string, details []*repository.AttributeValueDetail) (int, error) {
	return computeCompletenessWith(uc.families, familyID, details)
}

func computeCompletenessWith(families repository.FamilyRepository, familyID string, details []*repository.AttributeValueDetail) (int, error) {
	requirements, err := families.ListFamilyAttributesByFamily(familyID)
	if err != nil {
		return 0, err
	}
	required := make([]string, 0, len(requirements))
	for _, fa := range requirements {
		required = append(required, fa.AttributeID)
	}
	values := make(map[string]json.RawMessage, len(details))
	for _, d := range details {
		values[d.AttributeID] = d.Value
	}
	return completeness.Compute(required, values), nil
}

func (uc *ProductUseCase) valueDetails(productIDs []string) (map[string][]*repository.AttributeValueDetail, error) {
	if len(productIDs) == 0 {
		return map[string][]*repository.AttributeValueDetail{}, nil
	}
	details, err := uc.values.ListDetailsByProducts(productIDs)
	if err != nil {
		return nil, err
	}
	byProduct := make(map[string][]*repository.AttributeValueDetail)
	for _, d := range details {
		byProduct[d.ProductID] = append(byProduct[d.ProductID], d)
	}
	return byProduct, nil
}

func createValues(values repository.AttributeValueRepository, productID string, inputs []dto.AttributeValueInput, now time.Time) error {
	for _, in := range inputs {
		value := &entity.AttributeValue{
			ID:          uuid.New().String(),
			ProductID:   productID,
			AttributeID: in.AttributeID,
			Value:       in.Value,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := values.Create(value); err != nil {
			return err
		}
	}
	return nil
}

// buildProductFilter normaliza page/limit y valida sortBy contra la lista blanca.
func buildProductFilter(q dto.ProductListQuery) (repository.ProductFilter, int) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	sortBy, ok := productSortColumns[q.SortBy]
	if !ok {
		sortBy = "updated_at"
	}
	sortOrder := "desc"
	if q.SortOrder == "asc" {
		sortOrder = "asc"
	}
	return repository.ProductFilter{
		Search:     q.Search,
		CategoryID: q.CategoryID,
		FamilyID:   q.FamilyID,
		Status:     q.Status,
		SortBy:     sortBy,
		SortOrder:  sortOrder,
		Limit:      limit,
		Offset:     (page - 1) * limit,
	}, page
}

func toProductResponse(p *entity.Product, details []*repository.AttributeValueDetail) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:           p.ID,
		CompanyID:    p.CompanyID,
		SKU:          p.SKU,
		Name:         p.Name,
		Description:  p.Description,
		Type:         p.Type,
		Status:       p.Status,
		Price:        p.Price,
		CategoryID:   p.CategoryID,
		FamilyID:     p.FamilyID,
		Completeness: p.Completeness,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	for _, d := range details {
		resp.AttributeValues = append(resp.AttributeValues, dto.AttributeValueResponse{
			AttributeID: d.AttributeID,
			Code:        d.Code,
			Name:        d.Name,
			Type:        d.Type,
			Value:       d.Value,
		})
	}
	return resp
}

func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
