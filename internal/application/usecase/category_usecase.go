package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/ports"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// CategoryUseCase mantiene el árbol de categorías: niveles derivados,
// prevención de ciclos y cascada de niveles sobre descendientes.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	tx         ports.TxRunner
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categories repository.CategoryRepository, products repository.ProductRepository, tx ports.TxRunner) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, products: products, tx: tx}
}

// List retorna la lista plana más el árbol armado en memoria (dos pasadas:
// mapa por id, luego enganche de hijos).
func (uc *CategoryUseCase) List(companyID string) (*dto.CategoryListResponse, error) {
	categories, err := uc.categories.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	flat := make([]dto.CategoryResponse, 0, len(categories))
	nodes := make(map[string]*dto.CategoryNode, len(categories))
	for _, c := range categories {
		resp := toCategoryResponse(c)
		flat = append(flat, resp)
		nodes[c.ID] = &dto.CategoryNode{CategoryResponse: resp, Children: []*dto.CategoryNode{}}
	}
	roots := make([]*dto.CategoryNode, 0)
	for _, c := range categories {
		node := nodes[c.ID]
		if c.ParentID == "" {
			roots = append(roots, node)
			continue
		}
		if parent, ok := nodes[c.ParentID]; ok {
			parent.Children = append(parent.Children, node)
		}
	}
	return &dto.CategoryListResponse{Categories: flat, CategoryTree: roots}, nil
}

// Get retorna la categoría con conteos de productos y subcategorías.
func (uc *CategoryUseCase) Get(companyID, id string) (*dto.CategoryDetailResponse, error) {
	category, err := uc.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil || category.CompanyID != companyID {
		return nil, nil
	}
	productsCount, err := uc.products.CountByCategory(id)
	if err != nil {
		return nil, err
	}
	subcategoriesCount, err := uc.categories.CountByParent(id)
	if err != nil {
		return nil, err
	}
	return &dto.CategoryDetailResponse{
		CategoryResponse:   toCategoryResponse(category),
		ProductsCount:      productsCount,
		SubcategoriesCount: subcategoriesCount,
	}, nil
}

// Create crea una categoría. Level deriva del padre: 1 si es raíz, si no
// parent.Level + 1. Code debe ser único por empresa.
func (uc *CategoryUseCase) Create(companyID string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := uc.categories.GetByCompanyAndCode(companyID, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.UniquenessError{Entity: "category", Field: "code", Value: in.Code}
	}

	level := 1
	if in.ParentID != "" {
		parent, err := uc.categories.GetByID(in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.CompanyID != companyID {
			return nil, domain.ErrNotFound
		}
		level = parent.Level + 1
	}

	now := time.Now()
	category := &entity.Category{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		ParentID:  in.ParentID,
		Code:      in.Code,
		Name:      in.Name,
		Level:     level,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.categories.Create(category); err != nil {
		return nil, err
	}
	resp := toCategoryResponse(category)
	return &resp, nil
}

// Update actualiza code/name y, si ParentID viene en el patch, mueve la
// categoría: rechaza ciclos y recalcula niveles de todo el subtree en una
// transacción. ParentID vacío siempre es válido ("volver raíz", nivel 1).
func (uc *CategoryUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil || category.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	if in.Code != nil && *in.Code != category.Code {
		dup, err := uc.categories.GetByCompanyAndCode(companyID, *in.Code)
		if err != nil {
			return nil, err
		}
		if dup != nil && dup.ID != id {
			return nil, &domain.UniquenessError{Entity: "category", Field: "code", Value: *in.Code}
		}
		category.Code = *in.Code
	}
	if in.Name != nil {
		category.Name = *in.Name
	}

	newLevel := category.Level
	moved := false
	if in.ParentID != nil && *in.ParentID != category.ParentID {
		newParentID := *in.ParentID
		if newParentID == id {
			return nil, &domain.CycleError{CategoryID: id, ParentID: newParentID}
		}
		if newParentID == "" {
			newLevel = 1
		} else {
			// caminar la cadena de ancestros del nuevo padre hacia la raíz:
			// si id aparece, el move colgaría la categoría bajo un descendiente
			cursor := newParentID
			var newParent *entity.Category
			for cursor != "" {
				ancestor, err := uc.categories.GetByID(cursor)
				if err != nil {
					return nil, err
				}
				if ancestor == nil || ancestor.CompanyID != companyID {
					return nil, domain.ErrNotFound
				}
				if newParent == nil {
					newParent = ancestor
				}
				if ancestor.ParentID == id {
					return nil, &domain.CycleError{CategoryID: id, ParentID: newParentID}
				}
				cursor = ancestor.ParentID
			}
			newLevel = newParent.Level + 1
		}
		category.ParentID = newParentID
		moved = true
	}

	levelChanged := newLevel != category.Level
	category.Level = newLevel
	category.UpdatedAt = time.Now()

	if !moved && !levelChanged {
		if err := uc.categories.Update(category); err != nil {
			return nil, err
		}
		resp := toCategoryResponse(category)
		return &resp, nil
	}

	// move: actualizar y recascadear niveles del subtree en una sola transacción
	err = uc.tx.Run(ctx, func(r ports.TxRepos) error {
		if err := r.Categories.Update(category); err != nil {
			return err
		}
		if levelChanged {
			return cascadeLevels(r.Categories, id, newLevel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	resp := toCategoryResponse(category)
	return &resp, nil
}

// cascadeLevels recorre el subtree con una worklist explícita (BFS iterativo)
// y reescribe level = nivel del padre + 1 en cada descendiente. Un solo
// recorrido, O(tamaño del subtree), sin recursión.
func cascadeLevels(categories repository.CategoryRepository, rootID string, rootLevel int) error {
	type item struct {
		id    string
		level int
	}
	queue := []item{{id: rootID, level: rootLevel}}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		children, err := categories.ListByParent(current.id)
		if err != nil {
			return err
		}
		for _, child := range children {
			childLevel := current.level + 1
			if err := categories.UpdateLevel(child.ID, childLevel); err != nil {
				return err
			}
			queue = append(queue, item{id: child.ID, level: childLevel})
		}
	}
	return nil
}

// Delete elimina la categoría si no tiene hijos ni productos asociados.
func (uc *CategoryUseCase) Delete(companyID, id string) error {
	category, err := uc.categories.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil || category.CompanyID != companyID {
		return domain.ErrNotFound
	}
	childrenCount, err := uc.categories.CountByParent(id)
	if err != nil {
		return err
	}
	productsCount, err := uc.products.CountByCategory(id)
	if err != nil {
		return err
	}
	if childrenCount > 0 || productsCount > 0 {
		counts := map[string]int{}
		if childrenCount > 0 {
			counts["children"] = childrenCount
		}
		if productsCount > 0 {
			counts["products"] = productsCount
		}
		return &domain.DependencyError{Entity: "category", Counts: counts}
	}
	return uc.categories.Delete(id)
}

func toCategoryResponse(c *entity.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Code:      c.Code,
		Name:      c.Name,
		ParentID:  c.ParentID,
		Level:     c.Level,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
