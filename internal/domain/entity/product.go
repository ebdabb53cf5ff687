package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos y estados estándar de producto (los que el pipeline CSV ida/vuelta).
const (
	ProductTypePhysical = "PHYSICAL"
	ProductTypeDigital  = "DIGITAL"
	ProductTypeService  = "SERVICE"

	ProductStatusActive   = "Active"
	ProductStatusInactive = "Inactive"
	ProductStatusDraft    = "Draft"
)

// Product representa un producto del catálogo PIM.
// Completeness es derivado (0-100) desde los atributos requeridos de su familia
// y se cachea; se reescribe en lectura solo cuando cambia.
type Product struct {
	ID           string
	CompanyID    string
	SKU          string // único por empresa cuando no es vacío
	Name         string
	Description  string
	Type         string
	Status       string
	Price        decimal.Decimal
	CategoryID   string // vacío si no tiene categoría
	FamilyID     string // vacío si no tiene familia
	Completeness int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
