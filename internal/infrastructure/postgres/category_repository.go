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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

const categoryColumns = `id, company_id, COALESCE(parent_id, ''), code, name, level, created_at, updated_at`

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría. ParentID vacío se guarda como NULL.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (id, company_id, parent_id, code, name, level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.CompanyID, nullIfEmpty(category.ParentID),
		category.Code, category.Name, category.Level, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get category")
}

// GetByCompanyAndCode obtiene una categoría por empresa y código.
func (r *CategoryRepo) GetByCompanyAndCode(companyID, code string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE company_id = $1 AND code = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, companyID, code), "get category by code")
}

// GetByCompanyAndName obtiene una categoría por empresa y nombre exacto (importación).
func (r *CategoryRepo) GetByCompanyAndName(companyID, name string) (*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE company_id = $1 AND name = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, companyID, name), "get category by name")
}

// Update actualiza código, nombre, padre y nivel.
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `
		UPDATE categories SET parent_id = $2, code = $3, name = $4, level = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		category.ID, nullIfEmpty(category.ParentID), category.Code, category.Name,
		category.Level, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateLevel reescribe solo el nivel (cascada del move).
func (r *CategoryRepo) UpdateLevel(id string, level int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE categories SET level = $2, updated_at = now() WHERE id = $1`,
		id, level,
	)
	if err != nil {
		return fmt.Errorf("update category level: %w", err)
	}
	return nil
}

// ListByCompany lista todas las categorías de la empresa; el árbol se arma en memoria.
func (r *CategoryRepo) ListByCompany(companyID string) ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE company_id = $1 ORDER BY level, name`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// ListByParent lista las hijas directas de una categoría.
func (r *CategoryRepo) ListByParent(parentID string) ([]*entity.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE parent_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, parentID)
	if err != nil {
		return nil, fmt.Errorf("list categories by parent: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// CountByParent cuenta las hijas directas (bloqueo de delete).
func (r *CategoryRepo) CountByParent(parentID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM categories WHERE parent_id = $1`, parentID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count categories by parent: %w", err)
	}
	return count, nil
}

// Delete elimina una categoría por ID.
func (r *CategoryRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CategoryRepo) scanOne(row pgx.Row, op string) (*entity.Category, error) {
	var c entity.Category
	err := row.Scan(&c.ID, &c.CompanyID, &c.ParentID, &c.Code, &c.Name, &c.Level, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

func (r *CategoryRepo) scanAll(rows pgx.Rows) ([]*entity.Category, error) {
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.CompanyID, &c.ParentID, &c.Code, &c.Name, &c.Level, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
