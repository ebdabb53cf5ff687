package repository

import "github.com/jhoicas/Catalogo-api/internal/domain/entity"

// SectionRepository define el puerto de persistencia para Section (DIP).
type SectionRepository interface {
	Create(section *entity.Section) error
	GetByID(id string) (*entity.Section, error)
	GetByCompanyAndCode(companyID, code string) (*entity.Section, error)
	Update(section *entity.Section) error
	UpdateOrder(id string, order int) error
	ListByCompany(companyID string) ([]*entity.Section, error)
	MaxOrder(companyID string) (int, error)
	Delete(id string) error
}
