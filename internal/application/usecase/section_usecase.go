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

// SectionUseCase casos de uso de secciones de atributos.
type SectionUseCase struct {
	sections   repository.SectionRepository
	attributes repository.AttributeRepository
	tx         ports.TxRunner
}

// NewSectionUseCase construye el caso de uso.
func NewSectionUseCase(sections repository.SectionRepository, attributes repository.AttributeRepository, tx ports.TxRunner) *SectionUseCase {
	return &SectionUseCase{sections: sections, attributes: attributes, tx: tx}
}

// List retorna las secciones de la empresa ordenadas por Order.
func (uc *SectionUseCase) List(companyID string) ([]dto.SectionResponse, error) {
	list, err := uc.sections.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SectionResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSectionResponse(s))
	}
	return out, nil
}

// Get retorna una sección por id (nil si no existe o es de otra empresa).
func (uc *SectionUseCase) Get(companyID, id string) (*dto.SectionResponse, error) {
	section, err := uc.sections.GetByID(id)
	if err != nil {
		return nil, err
	}
	if section == nil || section.CompanyID != companyID {
		return nil, nil
	}
	resp := toSectionResponse(section)
	return &resp, nil
}

// Create crea una sección; sin Order explícito toma max(order)+1.
func (uc *SectionUseCase) Create(companyID string, in dto.CreateSectionRequest) (*dto.SectionResponse, error) {
	existing, err := uc.sections.GetByCompanyAndCode(companyID, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.UniquenessError{Entity: "section", Field: "code", Value: in.Code}
	}
	order := in.Order
	if order <= 0 {
		max, err := uc.sections.MaxOrder(companyID)
		if err != nil {
			return nil, err
		}
		order = max + 1
	}
	now := time.Now()
	section := &entity.Section{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Code:        in.Code,
		Name:        in.Name,
		Description: in.Description,
		DisplayIn:   defaultString(in.DisplayIn, entity.SectionDisplayBoth),
		Order:       order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.sections.Create(section); err != nil {
		return nil, err
	}
	resp := toSectionResponse(section)
	return &resp, nil
}

// Update actualiza campos presentes en el patch.
func (uc *SectionUseCase) Update(companyID, id string, in dto.UpdateSectionRequest) (*dto.SectionResponse, error) {
	section, err := uc.sections.GetByID(id)
	if err != nil {
		return nil, err
	}
	if section == nil || section.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if in.Code != nil && *in.Code != section.Code {
		dup, err := uc.sections.GetByCompanyAndCode(companyID, *in.Code)
		if err != nil {
			return nil, err
		}
		if dup != nil && dup.ID != id {
			return nil, &domain.UniquenessError{Entity: "section", Field: "code", Value: *in.Code}
		}
		section.Code = *in.Code
	}
	if in.Name != nil {
		section.Name = *in.Name
	}
	if in.Description != nil {
		section.Description = *in.Description
	}
	if in.DisplayIn != nil {
		section.DisplayIn = *in.DisplayIn
	}
	if in.Order != nil {
		section.Order = *in.Order
	}
	section.UpdatedAt = time.Now()
	if err := uc.sections.Update(section); err != nil {
		return nil, err
	}
	resp := toSectionResponse(section)
	return &resp, nil
}

// Reorder reescribe Order según la posición de cada id en la lista (1-based),
// todo dentro de una transacción.
func (uc *SectionUseCase) Reorder(ctx context.Context, companyID string, in dto.ReorderSectionsRequest) error {
	if len(in.IDs) == 0 {
		return domain.ErrInvalidInput
	}
	return uc.tx.Run(ctx, func(r ports.TxRepos) error {
		for i, id := range in.IDs {
			section, err := r.Sections.GetByID(id)
			if err != nil {
				return err
			}
			if section == nil || section.CompanyID != companyID {
				return domain.ErrNotFound
			}
			if err := r.Sections.UpdateOrder(id, i+1); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete elimina la sección; bloqueado si aún tiene atributos asignados.
func (uc *SectionUseCase) Delete(companyID, id string) error {
	section, err := uc.sections.GetByID(id)
	if err != nil {
		return err
	}
	if section == nil || section.CompanyID != companyID {
		return domain.ErrNotFound
	}
	count, err := uc.attributes.CountBySection(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &domain.DependencyError{Entity: "section", Counts: map[string]int{"attributes": count}}
	}
	return uc.sections.Delete(id)
}

func toSectionResponse(s *entity.Section) dto.SectionResponse {
	return dto.SectionResponse{
		ID:          s.ID,
		CompanyID:   s.CompanyID,
		Code:        s.Code,
		Name:        s.Name,
		Description: s.Description,
		DisplayIn:   s.DisplayIn,
		Order:       s.Order,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
