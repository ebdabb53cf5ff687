package repository

import "github.com/jhoicas/Catalogo-api/internal/domain/entity"

// AttributeFilter filtros del listado de atributos.
type AttributeFilter struct {
	Type      string
	SectionID string
}

// AttributeRepository define el puerto de persistencia para Attribute (DIP).
type AttributeRepository interface {
	Create(attr *entity.Attribute) error
	GetByID(id string) (*entity.Attribute, error)
	GetByCompanyAndCode(companyID, code string) (*entity.Attribute, error)
	Update(attr *entity.Attribute) error
	ListByCompany(companyID string, f AttributeFilter) ([]*entity.Attribute, error)
	CountBySection(sectionID string) (int, error)
	Delete(id string) error
}
