package repository

import (
	"context"
	"time"

	"github.com/holawaleh/e-commerce/internal/domain/entity"
)

// MovementSummary agrega los movimientos de un tipo en un rango de fechas.
type MovementSummary struct {
	Kind           string
	TotalMovements int64
	TotalQuantity  int64
}

// ExpiringBatch identifica un lote con fecha de vencimiento próxima.
type ExpiringBatch struct {
	ProductID   string
	BatchNumber string
	ExpiryDate  time.Time
}

// StockMovementRepository define el puerto de persistencia del ledger de
// movimientos. El ledger es append-only: no hay Update ni Delete.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	GetByID(ctx context.Context, businessID, id string) (*entity.StockMovement, error)
	// ListByProduct lista el historial de un producto, más reciente primero.
	ListByProduct(ctx context.Context, businessID, productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	// SignedSum replay del ledger completo de un producto: suma entradas,
	// resta salidas. Ledger vacío devuelve 0.
	SignedSum(ctx context.Context, businessID, productID string) (int64, error)
	SummaryByKind(ctx context.Context, businessID string, from, to *time.Time) ([]MovementSummary, error)
	// ListExpiringBatches devuelve lotes con expiry_date no nula y anterior o
	// igual a before.
	ListExpiringBatches(ctx context.Context, businessID string, before time.Time) ([]ExpiringBatch, error)
}
