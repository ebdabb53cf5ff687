package ports

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// TxRepos agrupa los repositorios atados a una misma transacción.
type TxRepos struct {
	Categories repository.CategoryRepository
	Attributes repository.AttributeRepository
	Families   repository.FamilyRepository
	Products   repository.ProductRepository
	Values     repository.AttributeValueRepository
	Sections   repository.SectionRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que las mutaciones multi-entidad
// (reemplazo de grupos/requeridos, cascada de niveles, upsert de import) son
// todo-o-nada: una aplicación parcial nunca es observable.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}
