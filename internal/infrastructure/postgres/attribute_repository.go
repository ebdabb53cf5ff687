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

var _ repository.AttributeRepository = (*AttributeRepo)(nil)

const attributeColumns = `id, company_id, COALESCE(section_id, ''), code, name, type, COALESCE(options, '{}'::text[]), validation_rules, table_config, created_at, updated_at`

// AttributeRepo implementación del puerto AttributeRepository sobre PostgreSQL (usable con pool o tx).
// Options va como TEXT[]; validation_rules y table_config como JSONB.
type AttributeRepo struct {
	q Querier
}

// NewAttributeRepository construye el adaptador de persistencia para atributos. Pasar pool o tx (Querier).
func NewAttributeRepository(q Querier) *AttributeRepo {
	return &AttributeRepo{q: q}
}

// Create persiste una nueva definición de atributo.
func (r *AttributeRepo) Create(attr *entity.Attribute) error {
	query := `
		INSERT INTO attributes (id, company_id, section_id, code, name, type, options, validation_rules, table_config, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		attr.ID, attr.CompanyID, nullIfEmpty(attr.SectionID), attr.Code, attr.Name, attr.Type,
		attr.Options, nullIfEmptyJSON(attr.ValidationRules), nullIfEmptyJSON(attr.TableConfig),
		attr.CreatedAt, attr.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert attribute: %w", err)
	}
	return nil
}

// GetByID obtiene un atributo por ID.
func (r *AttributeRepo) GetByID(id string) (*entity.Attribute, error) {
	query := `SELECT ` + attributeColumns + ` FROM attributes WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get attribute")
}

// GetByCompanyAndCode obtiene un atributo por empresa y código.
func (r *AttributeRepo) GetByCompanyAndCode(companyID, code string) (*entity.Attribute, error) {
	query := `SELECT ` + attributeColumns + ` FROM attributes WHERE company_id = $1 AND code = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, companyID, code), "get attribute by code")
}

// Update actualiza una definición existente.
func (r *AttributeRepo) Update(attr *entity.Attribute) error {
	query := `
		UPDATE attributes SET section_id = $2, code = $3, name = $4, type = $5, options = $6, validation_rules = $7, table_config = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		attr.ID, nullIfEmpty(attr.SectionID), attr.Code, attr.Name, attr.Type,
		attr.Options, nullIfEmptyJSON(attr.ValidationRules), nullIfEmptyJSON(attr.TableConfig),
		attr.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update attribute: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany lista atributos con filtros opcionales de tipo y sección.
func (r *AttributeRepo) ListByCompany(companyID string, f repository.AttributeFilter) ([]*entity.Attribute, error) {
	query := `SELECT ` + attributeColumns + ` FROM attributes WHERE company_id = $1`
	args := []any{companyID}
	if f.Type != "" {
		args = append(args, f.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if f.SectionID != "" {
		args = append(args, f.SectionID)
		query += fmt.Sprintf(" AND section_id = $%d", len(args))
	}
	query += " ORDER BY code"
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list attributes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Attribute
	for rows.Next() {
		var a entity.Attribute
		if err := rows.Scan(&a.ID, &a.CompanyID, &a.SectionID, &a.Code, &a.Name, &a.Type,
			&a.Options, &a.ValidationRules, &a.TableConfig, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan attribute: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// CountBySection cuenta los atributos asignados a una sección (bloqueo de delete).
func (r *AttributeRepo) CountBySection(sectionID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM attributes WHERE section_id = $1`, sectionID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count attributes by section: %w", err)
	}
	return count, nil
}

// Delete elimina un atributo por ID.
func (r *AttributeRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM attributes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete attribute: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AttributeRepo) scanOne(row pgx.Row, op string) (*entity.Attribute, error) {
	var a entity.Attribute
	err := row.Scan(&a.ID, &a.CompanyID, &a.SectionID, &a.Code, &a.Name, &a.Type,
		&a.Options, &a.ValidationRules, &a.TableConfig, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &a, nil
}

// nullIfEmptyJSON mapea un RawMessage vacío a NULL (columnas JSONB opcionales).
func nullIfEmptyJSON(v []byte) any {
	if len(v) == 0 {
		return nil
	}
	return v
}
