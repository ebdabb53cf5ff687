package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// AttributeValueInput valor de atributo en create/update de producto.
type AttributeValueInput struct {
	AttributeID string          `json:"attributeId" validate:"required"`
	Value       json.RawMessage `json:"value"`
}

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	SKU             string                `json:"sku"`
	Name            string                `json:"name" validate:"required,min=1,max=200"`
	Description     string                `json:"description"`
	Type            string                `json:"type"`
	Status          string                `json:"status"`
	Price           decimal.Decimal       `json:"price"`
	CategoryID      string                `json:"categoryId"`
	FamilyID        string                `json:"familyId"`
	AttributeValues []AttributeValueInput `json:"attributeValues"`
}

// UpdateProductRequest entrada para actualizar un producto.
// AttributeValues nil = no tocar; presente = reemplazo total del set.
type UpdateProductRequest struct {
	SKU             *string                `json:"sku"`
	Name            *string                `json:"name"`
	Description     *string                `json:"description"`
	Type            *string                `json:"type"`
	Status          *string                `json:"status"`
	Price           *decimal.Decimal       `json:"price"`
	CategoryID      *string                `json:"categoryId"`
	FamilyID        *string                `json:"familyId"`
	AttributeValues *[]AttributeValueInput `json:"attributeValues"`
}

// ProductListQuery filtros del listado de productos.
type ProductListQuery struct {
	Page       int    `query:"page"`
	Limit      int    `query:"limit"`
	Search     string `query:"search"`
	CategoryID string `query:"categoryId"`
	FamilyID   string `query:"familyId"`
	Status     string `query:"status"`
	SortBy     string `query:"sortBy"`
	SortOrder  string `query:"sortOrder"`
}

// AttributeValueResponse valor con su atributo resuelto.
type AttributeValueResponse struct {
	AttributeID string          `json:"attributeId"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Value       json.RawMessage `json:"value"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID              string                   `json:"id"`
	CompanyID       string                   `json:"companyId"`
	SKU             string                   `json:"sku,omitempty"`
	Name            string                   `json:"name"`
	Description     string                   `json:"description,omitempty"`
	Type            string                   `json:"type"`
	Status          string                   `json:"status"`
	Price           decimal.Decimal          `json:"price"`
	CategoryID      string                   `json:"categoryId,omitempty"`
	FamilyID        string                   `json:"familyId,omitempty"`
	Completeness    int                      `json:"completeness"`
	AttributeValues []AttributeValueResponse `json:"attributeValues,omitempty"`
	CreatedAt       time.Time                `json:"createdAt"`
	UpdatedAt       time.Time                `json:"updatedAt"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Products   []ProductResponse `json:"products"`
	Pagination Pagination        `json:"pagination"`
}

// BulkEditRequest edición en lote por lista de ids.
type BulkEditRequest struct {
	IDs  []string `json:"ids" validate:"required,min=1"`
	Data struct {
		Status     *string `json:"status"`
		CategoryID *string `json:"categoryId"`
		FamilyID   *string `json:"familyId"`
	} `json:"data"`
}

// BulkDeleteRequest borrado en lote por lista de ids.
type BulkDeleteRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}
