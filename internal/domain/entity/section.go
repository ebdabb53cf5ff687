package entity

import "time"

// Valores de DisplayIn para una sección de atributos.
const (
	SectionDisplayProducts = "products"
	SectionDisplayFamilies = "families"
	SectionDisplayBoth     = "both"
)

// Section agrupa atributos para presentación (fichas de producto o familia).
// Code es único por empresa; Order define la posición en la UI.
type Section struct {
	ID          string
	CompanyID   string
	Code        string
	Name        string
	Description string
	DisplayIn   string
	Order       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
