package repository

import (
	"context"

	"github.com/holawaleh/e-commerce/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para proveedores.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, businessID, id string) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	ListByBusiness(ctx context.Context, businessID string, limit, offset int) ([]*entity.Supplier, error)
	Delete(ctx context.Context, businessID, id string) error
}
