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

var _ repository.SectionRepository = (*SectionRepo)(nil)

const sectionColumns = `id, company_id, code, name, description, display_in, "order", created_at, updated_at`

// SectionRepo implementación del puerto SectionRepository sobre PostgreSQL (usable con pool o tx).
type SectionRepo struct {
	q Querier
}

// NewSectionRepository construye el adaptador de persistencia para secciones. Pasar pool o tx (Querier).
func NewSectionRepository(q Querier) *SectionRepo {
	return &SectionRepo{q: q}
}

// Create persiste una nueva sección.
func (r *SectionRepo) Create(section *entity.Section) error {
	query := `
		INSERT INTO sections (id, company_id, code, name, description, display_in, "order", created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		section.ID, section.CompanyID, section.Code, section.Name, section.Description,
		section.DisplayIn, section.Order, section.CreatedAt, section.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert section: %w", err)
	}
	return nil
}

// GetByID obtiene una sección por ID.
func (r *SectionRepo) GetByID(id string) (*entity.Section, error) {
	query := `SELECT ` + sectionColumns + ` FROM sections WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get section")
}

// GetByCompanyAndCode obtiene una sección por empresa y código.
func (r *SectionRepo) GetByCompanyAndCode(companyID, code string) (*entity.Section, error) {
	query := `SELECT ` + sectionColumns + ` FROM sections WHERE company_id = $1 AND code = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, companyID, code), "get section by code")
}

// Update actualiza una sección existente.
func (r *SectionRepo) Update(section *entity.Section) error {
	query := `
		UPDATE sections SET code = $2, name = $3, description = $4, display_in = $5, "order" = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		section.ID, section.Code, section.Name, section.Description, section.DisplayIn,
		section.Order, section.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update section: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateOrder reescribe solo la posición (reorder masivo).
func (r *SectionRepo) UpdateOrder(id string, order int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sections SET "order" = $2, updated_at = now() WHERE id = $1`,
		id, order,
	)
	if err != nil {
		return fmt.Errorf("update section order: %w", err)
	}
	return nil
}

// ListByCompany lista las secciones de la empresa ordenadas por posición.
func (r *SectionRepo) ListByCompany(companyID string) ([]*entity.Section, error) {
	query := `SELECT ` + sectionColumns + ` FROM sections WHERE company_id = $1 ORDER BY "order"`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	defer rows.Close()

	var list []*entity.Section
	for rows.Next() {
		var s entity.Section
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.Code, &s.Name, &s.Description, &s.DisplayIn,
			&s.Order, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// MaxOrder retorna la mayor posición usada (0 si no hay secciones).
func (r *SectionRepo) MaxOrder(companyID string) (int, error) {
	var max int
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(MAX("order"), 0) FROM sections WHERE company_id = $1`, companyID,
	).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("max section order: %w", err)
	}
	return max, nil
}

// Delete elimina una sección por ID.
func (r *SectionRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM sections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete section: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SectionRepo) scanOne(row pgx.Row, op string) (*entity.Section, error) {
	var s entity.Section
	err := row.Scan(&s.ID, &s.CompanyID, &s.Code, &s.Name, &s.Description, &s.DisplayIn,
		&s.Order, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}
