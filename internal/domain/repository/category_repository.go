package repository

import (
	"context"

	"github.com/holawaleh/e-commerce/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para categorías.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, businessID, id string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	ListByBusiness(ctx context.Context, businessID string, parentOnly bool) ([]*entity.Category, error)
	Delete(ctx context.Context, businessID, id string) error
}
