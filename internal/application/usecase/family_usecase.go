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

// FamilyUseCase compone familias: grupos de atributos ordenados más la lista
// de atributos requeridos. El reemplazo de ambos sets es siempre total y
// atómico (delete-all-then-recreate en una transacción).
type FamilyUseCase struct {
	families   repository.FamilyRepository
	attributes repository.AttributeRepository
	products   repository.ProductRepository
	values     repository.AttributeValueRepository
	tx         ports.TxRunner
}

// NewFamilyUseCase construye el caso de uso.
func NewFamilyUseCase(
	families repository.FamilyRepository,
	attributes repository.AttributeRepository,
	products repository.ProductRepository,
	values repository.AttributeValueRepository,
	tx ports.TxRunner,
) *FamilyUseCase {
	return &FamilyUseCase{families: families, attributes: attributes, products: products, values: values, tx: tx}
}

// List retorna las familias con conteos de productos y requeridos.
func (uc *FamilyUseCase) List(companyID string) ([]dto.FamilyResponse, error) {
	families, err := uc.families.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FamilyResponse, 0, len(families))
	for _, f := range families {
		resp, err := uc.toFamilyResponse(f)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// Get retorna la familia con grupos y requeridos ordenados y sus atributos resueltos.
func (uc *FamilyUseCase) Get(companyID, id string) (*dto.FamilyDetailResponse, error) {
	family, err := uc.families.GetByID(id)
	if err != nil {
		return nil, err
	}
	if family == nil || family.CompanyID != companyID {
		return nil, nil
	}
	base, err := uc.toFamilyResponse(family)
	if err != nil {
		return nil, err
	}
	groups, err := uc.families.ListGroupsByFamily(id)
	if err != nil {
		return nil, err
	}
	requirements, err := uc.families.ListFamilyAttributesByFamily(id)
	if err != nil {
		return nil, err
	}

	detail := &dto.FamilyDetailResponse{
		FamilyResponse:  *base,
		AttributeGroups: make([]dto.AttributeGroupResponse, 0, len(groups)),
		Requirements:    make([]dto.FamilyAttributeResponse, 0, len(requirements)),
	}
	for _, g := range groups {
		detail.AttributeGroups = append(detail.AttributeGroups, dto.AttributeGroupResponse{
			ID: g.ID, Name: g.Name, Order: g.Order,
		})
	}
	for _, fa := range requirements {
		item := dto.FamilyAttributeResponse{
			ID:          fa.ID,
			AttributeID: fa.AttributeID,
			GroupID:     fa.GroupID,
			IsRequired:  fa.IsRequired,
			Order:       fa.Order,
		}
		attr, err := uc.attributes.GetByID(fa.AttributeID)
		if err != nil {
			return nil, err
		}
		if attr != nil {
			resp := toAttributeResponse(attr)
			item.Attribute = &resp
		}
		detail.Requirements = append(detail.Requirements, item)
	}
	return detail, nil
}

// Create crea la familia con sus grupos y requeridos en una transacción.
// Order ausente (cero) toma la posición 1-based en la entrada.
func (uc *FamilyUseCase) Create(ctx context.Context, companyID string, in dto.CreateFamilyRequest) (*dto.FamilyResponse, error) {
	existing, err := uc.families.GetByCompanyAndCode(companyID, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.UniquenessError{Entity: "family", Field: "code", Value: in.Code}
	}

	now := time.Now()
	family := &entity.Family{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Code:      in.Code,
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = uc.tx.Run(ctx, func(r ports.TxRepos) error {
		if err := r.Families.Create(family); err != nil {
			return err
		}
		if err := createGroups(r.Families, family.ID, in.AttributeGroups, now); err != nil {
			return err
		}
		return createFamilyAttributes(r.Families, family.ID, in.RequiredAttributes, now)
	})
	if err != nil {
		return nil, err
	}
	return uc.toFamilyResponse(family)
}

// Update actualiza los datos base y, cuando grupos o requeridos vienen en el
// patch, reemplaza el set completo: o todo el reemplazo commitea o nada.
// La identidad de grupos/requeridos previos no se preserva entre ediciones.
func (uc *FamilyUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateFamilyRequest) (*dto.FamilyResponse, error) {
	family, err := uc.families.GetByID(id)
	if err != nil {
		return nil, err
	}
	if family == nil || family.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	if in.Code != nil && *in.Code != family.Code {
		dup, err := uc.families.GetByCompanyAndCode(companyID, *in.Code)
		if err != nil {
			return nil, err
		}
		if dup != nil && dup.ID != id {
			return nil, &domain.UniquenessError{Entity: "family", Field: "code", Value: *in.Code}
		}
		family.Code = *in.Code
	}
	if in.Name != nil {
		family.Name = *in.Name
	}
	now := time.Now()
	family.UpdatedAt = now

	err = uc.tx.Run(ctx, func(r ports.TxRepos) error {
		if err := r.Families.Update(family); err != nil {
			return err
		}
		if in.AttributeGroups != nil {
			if err := r.Families.DeleteGroupsByFamily(id); err != nil {
				return err
			}
			if err := createGroups(r.Families, id, *in.AttributeGroups, now); err != nil {
				return err
			}
		}
		if in.RequiredAttributes != nil {
			if err := r.Families.DeleteFamilyAttributesByFamily(id); err != nil {
				return err
			}
			if err := createFamilyAttributes(r.Families, id, *in.RequiredAttributes, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.toFamilyResponse(family)
}

// Delete elimina la familia junto con sus grupos y requeridos en la misma
// transacción, salvo que haya productos que la referencien.
func (uc *FamilyUseCase) Delete(ctx context.Context, companyID, id string) error {
	family, err := uc.families.GetByID(id)
	if err != nil {
		return err
	}
	if family == nil || family.CompanyID != companyID {
		return domain.ErrNotFound
	}
	productsCount, err := uc.products.CountByFamily(id)
	if err != nil {
		return err
	}
	if productsCount > 0 {
		return &domain.DependencyError{Entity: "family", Counts: map[string]int{"products": productsCount}}
	}
	return uc.tx.Run(ctx, func(r ports.TxRepos) error {
		if err := r.Families.DeleteGroupsByFamily(id); err != nil {
			return err
		}
		if err := r.Families.DeleteFamilyAttributesByFamily(id); err != nil {
			return err
		}
		return r.Families.Delete(id)
	})
}

// Products retorna el listado paginado de productos de la familia.
func (uc *FamilyUseCase) Products(companyID, familyID string, q dto.ProductListQuery) (*dto.ProductListResponse, error) {
	family, err := uc.families.GetByID(familyID)
	if err != nil {
		return nil, err
	}
	if family == nil || family.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	q.FamilyID = familyID
	filter, page := buildProductFilter(q)
	total, err := uc.products.CountByCompany(companyID, filter)
	if err != nil {
		return nil, err
	}
	list, err := uc.products.ListByCompany(companyID, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p, nil))
	}
	return &dto.ProductListResponse{
		Products:   items,
		Pagination: dto.NewPagination(total, page, filter.Limit),
	}, nil
}

func createGroups(families repository.FamilyRepository, familyID string, groups []dto.AttributeGroupInput, now time.Time) error {
	for i, g := range groups {
		order := g.Order
		if order == 0 {
			order = i + 1
		}
		group := &entity.AttributeGroup{
			ID:        uuid.New().String(),
			FamilyID:  familyID,
			Name:      g.Name,
			Order:     order,
			CreatedAt: now,
		}
		if err := families.CreateGroup(group); err != nil {
			return err
		}
	}
	return nil
}

func createFamilyAttributes(families repository.FamilyRepository, familyID string, attrs []dto.FamilyAttributeInput, now time.Time) error {
	for i, a := range attrs {
		order := a.Order
		if order == 0 {
			order = i + 1
		}
		isRequired := true
		if a.IsRequired != nil {
			isRequired = *a.IsRequired
		}
		fa := &entity.FamilyAttribute{
			ID:          uuid.New().String(),
			FamilyID:    familyID,
			AttributeID: a.AttributeID,
			GroupID:     a.GroupID,
			IsRequired:  isRequired,
			Order:       order,
			CreatedAt:   now,
		}
		if err := families.CreateFamilyAttribute(fa); err != nil {
			return err
		}
	}
	return nil
}

func (uc *FamilyUseCase) toFamilyResponse(f *entity.Family) (*dto.FamilyResponse, error) {
	productsCount, err := uc.products.CountByFamily(f.ID)
	if err != nil {
		return nil, err
	}
	requiredCount, err := uc.families.CountFamilyAttributes(f.ID)
	if err != nil {
		return nil, err
	}
	return &dto.FamilyResponse{
		ID:                 f.ID,
		CompanyID:          f.CompanyID,
		Code:               f.Code,
		Name:               f.Name,
		ProductsCount:      productsCount,
		RequiredAttributes: requiredCount,
		CreatedAt:          f.CreatedAt,
		UpdatedAt:          f.UpdatedAt,
	}, nil
}
