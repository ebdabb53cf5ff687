package repository

import "github.com/jhoicas/Catalogo-api/internal/domain/entity"

// FamilyRepository define el puerto de persistencia para Family y sus
// agregados propios (AttributeGroup, FamilyAttribute). El reemplazo de grupos
// y requeridos es delete-all-then-recreate dentro de una transacción.
type FamilyRepository interface {
	Create(family *entity.Family) error
	GetByID(id string) (*entity.Family, error)
	GetByCompanyAndCode(companyID, code string) (*entity.Family, error)
	GetByCompanyAndName(companyID, name string) (*entity.Family, error)
	Update(family *entity.Family) error
	ListByCompany(companyID string) ([]*entity.Family, error)
	Delete(id string) error

	CreateGroup(group *entity.AttributeGroup) error
	DeleteGroupsByFamily(familyID string) error
	ListGroupsByFamily(familyID string) ([]*entity.AttributeGroup, error)

	CreateFamilyAttribute(fa *entity.FamilyAttribute) error
	DeleteFamilyAttributesByFamily(familyID string) error
	ListFamilyAttributesByFamily(familyID string) ([]*entity.FamilyAttribute, error)
	CountFamilyAttributesByAttribute(attributeID string) (int, error)
	CountFamilyAttributes(familyID string) (int, error)
}
