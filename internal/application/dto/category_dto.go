package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Code     string `json:"code" validate:"required,min=1,max=100"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	ParentID string `json:"parentId"`
}

// UpdateCategoryRequest entrada para actualizar una categoría.
// ParentID distingue "no tocar" (campo ausente) de "volver raíz" (null/vacío).
type UpdateCategoryRequest struct {
	Code     *string `json:"code"`
	Name     *string `json:"name"`
	ParentID *string `json:"parentId"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"companyId"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	ParentID  string    `json:"parentId,omitempty"`
	Level     int       `json:"level"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategoryNode nodo del árbol de categorías.
type CategoryNode struct {
	CategoryResponse
	Children []*CategoryNode `json:"children"`
}

// CategoryListResponse lista plana + árbol (el shape que consume la UI).
type CategoryListResponse struct {
	Categories   []CategoryResponse `json:"categories"`
	CategoryTree []*CategoryNode    `json:"categoryTree"`
}

// CategoryDetailResponse categoría con conteos de uso.
type CategoryDetailResponse struct {
	CategoryResponse
	ProductsCount      int `json:"productsCount"`
	SubcategoriesCount int `json:"subcategoriesCount"`
}
