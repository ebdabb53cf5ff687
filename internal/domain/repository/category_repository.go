package repository

import "github.com/jhoicas/Catalogo-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByCompanyAndCode(companyID, code string) (*entity.Category, error)
	GetByCompanyAndName(companyID, name string) (*entity.Category, error)
	Update(category *entity.Category) error
	// UpdateLevel reescribe solo el nivel (usado por la cascada del move).
	UpdateLevel(id string, level int) error
	// ListByCompany retorna todas las categorías de la empresa ordenadas por
	// (level, name); el árbol se arma en memoria.
	ListByCompany(companyID string) ([]*entity.Category, error)
	ListByParent(parentID string) ([]*entity.Category, error)
	CountByParent(parentID string) (int, error)
	Delete(id string) error
}
