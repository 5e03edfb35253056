package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/holawaleh/e-commerce/internal/domain"
	"github.com/holawaleh/e-commerce/internal/domain/entity"
	"github.com/holawaleh/e-commerce/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación de CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una categoría. Nombre único por (negocio, padre).
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	query := `
		INSERT INTO categories (id, business_id, name, description, parent_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.BusinessID, c.Name, c.Description, c.ParentID, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría del negocio.
func (r *CategoryRepo) GetByID(ctx context.Context, businessID, id string) (*entity.Category, error) {
	query := `
		SELECT id, business_id, name, description, parent_id, created_at, updated_at
		FROM categories WHERE id = $1 AND business_id = $2`
	var c entity.Category
	err := r.q.QueryRow(ctx, query, id, businessID).Scan(
		&c.ID, &c.BusinessID, &c.Name, &c.Description, &c.ParentID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// Update actualiza una categoría existente.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	query := `
		UPDATE categories SET name = $3, description = $4, parent_id = $5, updated_at = $6
		WHERE id = $1 AND business_id = $2`
	_, err := r.q.Exec(ctx, query, c.ID, c.BusinessID, c.Name, c.Description, c.ParentID, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// ListByBusiness lista categorías; parentOnly devuelve solo las raíz.
func (r *CategoryRepo) ListByBusiness(ctx context.Context, businessID string, parentOnly bool) ([]*entity.Category, error) {
	query := `
		SELECT id, business_id, name, description, parent_id, created_at, updated_at
		FROM categories WHERE business_id = $1`
	if parentOnly {
		query += " AND parent_id IS NULL"
	}
	query += " ORDER BY name"
	rows, err := r.q.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.BusinessID, &c.Name, &c.Description, &c.ParentID,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una categoría del negocio.
func (r *CategoryRepo) Delete(ctx context.Context, businessID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM categories WHERE id = $1 AND business_id = $2`, id, businessID)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
