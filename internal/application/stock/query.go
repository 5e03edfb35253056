package stock

import (
	"context"
	"time"

	"github.com/holawaleh/e-commerce/internal/domain/entity"
	"github.com/holawaleh/e-commerce/internal/domain/repository"
)

// QueryUseCase consultas de solo lectura sobre el ledger para los
// colaboradores de reportes. No abre transacciones: lee sobre el pool.
type QueryUseCase struct {
	movementRepo repository.StockMovementRepository
}

// NewQueryUseCase construye el caso de uso de consulta.
func NewQueryUseCase(movementRepo repository.StockMovementRepository) *QueryUseCase {
	return &QueryUseCase{movementRepo: movementRepo}
}

// ListMovements lista el historial de un producto, más reciente primero.
func (uc *QueryUseCase) ListMovements(ctx context.Context, businessID, productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	return uc.movementRepo.ListByProduct(ctx, businessID, productID, from, to, limit, offset)
}

// Summary agrega número de movimientos y cantidad total por tipo en un rango
// de fechas opcional.
func (uc *QueryUseCase) Summary(ctx context.Context, businessID string, from, to *time.Time) ([]repository.MovementSummary, error) {
	return uc.movementRepo.SummaryByKind(ctx, businessID, from, to)
}
