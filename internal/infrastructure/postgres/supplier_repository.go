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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `id, business_id, name, contact_person, email, phone, address, notes,
		is_active, created_by, created_at, updated_at`

// SupplierRepo implementación de SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor. Nombre único por negocio.
func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, business_id, name, contact_person, email, phone, address, notes,
			is_active, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.BusinessID, s.Name, s.ContactPerson, s.Email, s.Phone, s.Address, s.Notes,
		s.IsActive, nullable(s.CreatedBy), s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor del negocio.
func (r *SupplierRepo) GetByID(ctx context.Context, businessID, id string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1 AND business_id = $2`
	var s entity.Supplier
	var createdBy *string
	err := r.q.QueryRow(ctx, query, id, businessID).Scan(
		&s.ID, &s.BusinessID, &s.Name, &s.ContactPerson, &s.Email, &s.Phone, &s.Address, &s.Notes,
		&s.IsActive, &createdBy, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	if createdBy != nil {
		s.CreatedBy = *createdBy
	}
	return &s, nil
}

// Update actualiza un proveedor existente.
func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	query := `
		UPDATE suppliers SET name = $3, contact_person = $4, email = $5, phone = $6,
			address = $7, notes = $8, is_active = $9, updated_at = $10
		WHERE id = $1 AND business_id = $2`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.BusinessID, s.Name, s.ContactPerson, s.Email, s.Phone,
		s.Address, s.Notes, s.IsActive, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// ListByBusiness lista proveedores del negocio ordenados por nombre.
func (r *SupplierRepo) ListByBusiness(ctx context.Context, businessID string, limit, offset int) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + `
		FROM suppliers WHERE business_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, businessID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		var createdBy *string
		if err := rows.Scan(&s.ID, &s.BusinessID, &s.Name, &s.ContactPerson, &s.Email, &s.Phone,
			&s.Address, &s.Notes, &s.IsActive, &createdBy, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		if createdBy != nil {
			s.CreatedBy = *createdBy
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina un proveedor del negocio.
func (r *SupplierRepo) Delete(ctx context.Context, businessID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM suppliers WHERE id = $1 AND business_id = $2`, id, businessID)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}
