package entity

import "time"

// Company representa una organización/tenant del sistema. Todo el catálogo PIM
// (categorías, atributos, familias, productos) está scopeado por CompanyID.
type Company struct {
	ID        string
	Name      string
	TaxID     string
	Address   string
	Phone     string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
