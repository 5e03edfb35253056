package repository

import (
	"context"
	"time"

	"github.com/holawaleh/e-commerce/internal/domain/entity"
)

// StockAlertRepository define el puerto de persistencia de alertas de stock.
type StockAlertRepository interface {
	// GetOrCreateUnresolved devuelve la alerta sin resolver del (producto, tipo)
	// o la crea si no existe. Idempotente: una carrera de creación duplicada se
	// absorbe aquí, nunca se propaga como error. El bool indica si se creó.
	GetOrCreateUnresolved(ctx context.Context, businessID, productID, kind string, now time.Time) (*entity.StockAlert, bool, error)
	// ResolveOpen marca como resueltas las alertas sin resolver de los tipos
	// dados. resolvedBy nil = resolución automática del sistema. Devuelve
	// cuántas filas resolvió.
	ResolveOpen(ctx context.Context, businessID, productID string, kinds []string, resolvedBy *string, now time.Time) (int64, error)
	GetByID(ctx context.Context, businessID, id string) (*entity.StockAlert, error)
	// Resolve marca una alerta concreta como resuelta por un actor.
	Resolve(ctx context.Context, id, resolvedBy string, now time.Time) error
	ListByBusiness(ctx context.Context, businessID string, unresolvedOnly bool, limit, offset int) ([]*entity.StockAlert, error)
}
