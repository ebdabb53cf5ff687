package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/attribute"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// AttributeUseCase administra el registro de atributos tipados con reglas de
// validación por tipo.
type AttributeUseCase struct {
	attributes repository.AttributeRepository
	values     repository.AttributeValueRepository
	families   repository.FamilyRepository
}

// NewAttributeUseCase construye el caso de uso.
func NewAttributeUseCase(
	attributes repository.AttributeRepository,
	values repository.AttributeValueRepository,
	families repository.FamilyRepository,
) *AttributeUseCase {
	return &AttributeUseCase{attributes: attributes, values: values, families: families}
}

// List retorna los atributos de la empresa (filtrables por tipo y sección)
// con sus conteos de uso.
func (uc *AttributeUseCase) List(companyID string, f repository.AttributeFilter) ([]dto.AttributeResponse, error) {
	if f.Type != "" {
		if _, err := attribute.Parse(f.Type); err != nil {
			return nil, err
		}
	}
	list, err := uc.attributes.ListByCompany(companyID, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AttributeResponse, 0, len(list))
	for _, a := range list {
		usage, err := uc.usage(a.ID)
		if err != nil {
			return nil, err
		}
		resp := toAttributeResponse(a)
		resp.Usage = usage
		out = append(out, resp)
	}
	return out, nil
}

// Get retorna un atributo con sus conteos de uso.
func (uc *AttributeUseCase) Get(companyID, id string) (*dto.AttributeResponse, error) {
	attr, err := uc.attributes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if attr == nil || attr.CompanyID != companyID {
		return nil, nil
	}
	usage, err := uc.usage(id)
	if err != nil {
		return nil, err
	}
	resp := toAttributeResponse(attr)
	resp.Usage = usage
	return &resp, nil
}

// Create valida estructura por tipo y persiste. Un atributo TABLE sin
// tableConfig recibe el default de una sola columna.
func (uc *AttributeUseCase) Create(companyID string, in dto.CreateAttributeRequest) (*dto.AttributeResponse, error) {
	existing, err := uc.attributes.GetByCompanyAndCode(companyID, in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.UniquenessError{Entity: "attribute", Field: "code", Value: in.Code}
	}

	typ, err := attribute.Parse(in.Type)
	if err != nil {
		return nil, err
	}
	tableConfig := in.TableConfig
	if typ == attribute.TypeTable && len(tableConfig) == 0 {
		tableConfig = attribute.DefaultTableConfig()
	}
	if err := attribute.ValidateDefinition(typ, in.Options, in.ValidationRules, tableConfig); err != nil {
		return nil, err
	}

	now := time.Now()
	attr := &entity.Attribute{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		SectionID:       in.SectionID,
		Code:            in.Code,
		Name:            in.Name,
		Type:            string(typ),
		Options:         in.Options,
		ValidationRules: in.ValidationRules,
		TableConfig:     tableConfig,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.attributes.Create(attr); err != nil {
		return nil, err
	}
	resp := toAttributeResponse(attr)
	return &resp, nil
}

// Update aplica el patch. El cambio de tipo está bloqueado mientras existan
// AttributeValues que referencien el atributo (InUseError con el conteo).
func (uc *AttributeUseCase) Update(companyID, id string, in dto.UpdateAttributeRequest) (*dto.AttributeResponse, error) {
	attr, err := uc.attributes.GetByID(id)
	if err != nil {
		return nil, err
	}
	if attr == nil || attr.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}

	if in.Code != nil && *in.Code != attr.Code {
		dup, err := uc.attributes.GetByCompanyAndCode(companyID, *in.Code)
		if err != nil {
			return nil, err
		}
		if dup != nil && dup.ID != id {
			return nil, &domain.UniquenessError{Entity: "attribute", Field: "code", Value: *in.Code}
		}
		attr.Code = *in.Code
	}
	if in.Name != nil {
		attr.Name = *in.Name
	}
	if in.SectionID != nil {
		attr.SectionID = *in.SectionID
	}

	if in.Type != nil && *in.Type != attr.Type {
		typ, err := attribute.Parse(*in.Type)
		if err != nil {
			return nil, err
		}
		valueCount, err := uc.values.CountByAttribute(id)
		if err != nil {
			return nil, err
		}
		if valueCount > 0 {
			return nil, &domain.InUseError{Entity: "attribute", Count: valueCount}
		}
		attr.Type = string(typ)
	}
	if in.Options != nil {
		attr.Options = in.Options
	}
	if len(in.ValidationRules) > 0 {
		attr.ValidationRules = in.ValidationRules
	}
	if len(in.TableConfig) > 0 {
		attr.TableConfig = in.TableConfig
	}

	typ, err := attribute.Parse(attr.Type)
	if err != nil {
		return nil, err
	}
	if typ == attribute.TypeTable && len(attr.TableConfig) == 0 {
		attr.TableConfig = attribute.DefaultTableConfig()
	}
	if err := attribute.ValidateDefinition(typ, attr.Options, attr.ValidationRules, attr.TableConfig); err != nil {
		return nil, err
	}

	attr.UpdatedAt = time.Now()
	if err := uc.attributes.Update(attr); err != nil {
		return nil, err
	}
	resp := toAttributeResponse(attr)
	return &resp, nil
}

// Delete elimina el atributo si ningún AttributeValue ni requerido de familia
// lo referencia; si no, DependencyError con ambos conteos.
func (uc *AttributeUseCase) Delete(companyID, id string) error {
	attr, err := uc.attributes.GetByID(id)
	if err != nil {
		return err
	}
	if attr == nil || attr.CompanyID != companyID {
		return domain.ErrNotFound
	}
	valueCount, err := uc.values.CountByAttribute(id)
	if err != nil {
		return err
	}
	familyCount, err := uc.families.CountFamilyAttributesByAttribute(id)
	if err != nil {
		return err
	}
	if valueCount > 0 || familyCount > 0 {
		counts := map[string]int{}
		if valueCount > 0 {
			counts["products"] = valueCount
		}
		if familyCount > 0 {
			counts["families"] = familyCount
		}
		return &domain.DependencyError{Entity: "attribute", Counts: counts}
	}
	return uc.attributes.Delete(id)
}

func (uc *AttributeUseCase) usage(attributeID string) (*dto.AttributeUsage, error) {
	productCount, err := uc.values.CountByAttribute(attributeID)
	if err != nil {
		return nil, err
	}
	familyCount, err := uc.families.CountFamilyAttributesByAttribute(attributeID)
	if err != nil {
		return nil, err
	}
	return &dto.AttributeUsage{ProductCount: productCount, FamilyCount: familyCount}, nil
}

func toAttributeResponse(a *entity.Attribute) dto.AttributeResponse {
	return dto.AttributeResponse{
		ID:              a.ID,
		CompanyID:       a.CompanyID,
		SectionID:       a.SectionID,
		Code:            a.Code,
		Name:            a.Name,
		Type:            a.Type,
		Options:         a.Options,
		ValidationRules: a.ValidationRules,
		TableConfig:     a.TableConfig,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
