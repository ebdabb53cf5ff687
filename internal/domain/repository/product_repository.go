package repository

import "github.com/jhoicas/Catalogo-api/internal/domain/entity"

// ProductFilter filtros, orden y paginación del listado de productos.
// SortBy se valida contra una lista blanca en el usecase antes de llegar aquí.
type ProductFilter struct {
	Search     string
	CategoryID string
	FamilyID   string
	Status     string
	SortBy     string
	SortOrder  string // asc | desc
	Limit      int
	Offset     int
}

// ProductBulkPatch campos editables en lote (nil = sin cambio).
type ProductBulkPatch struct {
	Status     *string
	CategoryID *string
	FamilyID   *string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateCompleteness reescribe solo el porcentaje cacheado (write-back-on-read).
	UpdateCompleteness(productID string, completeness int) error
	ListByCompany(companyID string, f ProductFilter) ([]*entity.Product, error)
	CountByCompany(companyID string, f ProductFilter) (int, error)
	CountByCategory(categoryID string) (int, error)
	CountByFamily(familyID string) (int, error)
	BulkUpdate(companyID string, ids []string, patch ProductBulkPatch) (int, error)
	BulkDelete(companyID string, ids []string) (int, error)
	Delete(id string) error
}
