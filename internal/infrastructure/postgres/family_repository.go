package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.FamilyRepository = (*FamilyRepo)(nil)

// FamilyRepo implementación del puerto FamilyRepository sobre PostgreSQL (usable con pool o tx).
// Cubre la familia y sus agregados propios: attribute_groups y family_attributes.
type FamilyRepo struct {
	q Querier
}

// NewFamilyRepository construye el adaptador de persistencia para familias. Pasar pool o tx (Querier).
func NewFamilyRepository(q Querier) *FamilyRepo {
	return &FamilyRepo{q: q}
}

// Create persiste una nueva familia.
func (r *FamilyRepo) Create(family *entity.Family) error {
	query := `
		INSERT INTO families (id, company_id, code, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		family.ID, family.CompanyID, family.Code, family.Name, family.CreatedAt, family.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert family: %w", err)
	}
	return nil
}

// GetByID obtiene una familia por ID.
func (r *FamilyRepo) GetByID(id string) (*entity.Family, error) {
	query := `SELECT id, company_id, code, name, created_at, updated_at FROM families WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get family")
}

// GetByCompanyAndCode obtiene una familia por empresa y código.
func (r *FamilyRepo) GetByCompanyAndCode(companyID, code string) (*entity.Family, error) {
	query := `SELECT id, company_id, code, name, created_at, updated_at FROM families WHERE company_id = $1 AND code = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, companyID, code), "get family by code")
}

// GetByCompanyAndName obtiene una familia por empresa y nombre exacto (importación).
func (r *FamilyRepo) GetByCompanyAndName(companyID, name string) (*entity.Family, error) {
	query := `SELECT id, company_id, code, name, created_at, updated_at FROM families WHERE company_id = $1 AND name = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, companyID, name), "get family by name")
}

// Update actualiza código y nombre.
func (r *FamilyRepo) Update(family *entity.Family) error {
	query := `UPDATE families SET code = $2, name = $3, updated_at = $4 WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, family.ID, family.Code, family.Name, family.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update family: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany lista las familias de la empresa.
func (r *FamilyRepo) ListByCompany(companyID string) ([]*entity.Family, error) {
	query := `SELECT id, company_id, code, name, created_at, updated_at FROM families WHERE company_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list families: %w", err)
	}
	defer rows.Close()

	var list []*entity.Family
	for rows.Next() {
		var f entity.Family
		if err := rows.Scan(&f.ID, &f.CompanyID, &f.Code, &f.Name, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan family: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Delete elimina una familia por ID.
func (r *FamilyRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM families WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete family: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateGroup persiste un grupo de atributos de la familia.
func (r *FamilyRepo) CreateGroup(group *entity.AttributeGroup) error {
	query := `
		INSERT INTO attribute_groups (id, family_id, name, "order", created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		group.ID, group.FamilyID, group.Name, group.Order, group.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert attribute group: %w", err)
	}
	return nil
}

// DeleteGroupsByFamily elimina todos los grupos de la familia (reemplazo total).
func (r *FamilyRepo) DeleteGroupsByFamily(familyID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM attribute_groups WHERE family_id = $1`, familyID)
	if err != nil {
		return fmt.Errorf("delete attribute groups: %w", err)
	}
	return nil
}

// ListGroupsByFamily lista los grupos de una familia en orden.
func (r *FamilyRepo) ListGroupsByFamily(familyID string) ([]*entity.AttributeGroup, error) {
	query := `SELECT id, family_id, name, "order", created_at FROM attribute_groups WHERE family_id = $1 ORDER BY "order"`
	rows, err := r.q.Query(context.Background(), query, familyID)
	if err != nil {
		return nil, fmt.Errorf("list attribute groups: %w", err)
	}
	defer rows.Close()

	var list []*entity.AttributeGroup
	for rows.Next() {
		var g entity.AttributeGroup
		if err := rows.Scan(&g.ID, &g.FamilyID, &g.Name, &g.Order, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan attribute group: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// CreateFamilyAttribute persiste un vínculo familia-atributo.
func (r *FamilyRepo) CreateFamilyAttribute(fa *entity.FamilyAttribute) error {
	query := `
		INSERT INTO family_attributes (id, family_id, attribute_id, group_id, is_required, "order", created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		fa.ID, fa.FamilyID, fa.AttributeID, nullIfEmpty(fa.GroupID), fa.IsRequired, fa.Order, fa.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert family attribute: %w", err)
	}
	return nil
}

// DeleteFamilyAttributesByFamily elimina todos los vínculos de la familia (reemplazo total).
func (r *FamilyRepo) DeleteFamilyAttributesByFamily(familyID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM family_attributes WHERE family_id = $1`, familyID)
	if err != nil {
		return fmt.Errorf("delete family attributes: %w", err)
	}
	return nil
}

// ListFamilyAttributesByFamily lista los vínculos de una familia en orden.
func (r *FamilyRepo) ListFamilyAttributesByFamily(familyID string) ([]*entity.FamilyAttribute, error) {
	query := `
		SELECT id, family_id, attribute_id, COALESCE(group_id, ''), is_required, "order", created_at
		FROM family_attributes WHERE family_id = $1 ORDER BY "order"`
	rows, err := r.q.Query(context.Background(), query, familyID)
	if err != nil {
		return nil, fmt.Errorf("list family attributes: %w", err)
	}
	defer rows.Close()

	var list []*entity.FamilyAttribute
	for rows.Next() {
		var fa entity.FamilyAttribute
		if err := rows.Scan(&fa.ID, &fa.FamilyID, &fa.AttributeID, &fa.GroupID, &fa.IsRequired, &fa.Order, &fa.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan family attribute: %w", err)
		}
		list = append(list, &fa)
	}
	return list, rows.Err()
}

// CountFamilyAttributesByAttribute cuenta en cuántas familias participa un atributo.
func (r *FamilyRepo) CountFamilyAttributesByAttribute(attributeID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM family_attributes WHERE attribute_id = $1`, attributeID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count family attributes by attribute: %w", err)
	}
	return count, nil
}

// CountFamilyAttributes cuenta los vínculos de una familia.
func (r *FamilyRepo) CountFamilyAttributes(familyID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM family_attributes WHERE family_id = $1`, familyID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count family attributes: %w", err)
	}
	return count, nil
}

func (r *FamilyRepo) scanOne(row pgx.Row, op string) (*entity.Family, error) {
	var f entity.Family
	err := row.Scan(&f.ID, &f.CompanyID, &f.Code, &f.Name, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &f, nil
}
