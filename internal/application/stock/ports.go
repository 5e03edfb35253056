package stock

import (
	"context"

	"github.com/holawaleh/e-commerce/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el ledger: o se
// persisten movimiento, cache de saldo y alertas juntos, o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		alertRepo repository.StockAlertRepository,
	) error) error
}
