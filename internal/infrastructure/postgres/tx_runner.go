package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/holawaleh/e-commerce/internal/application/stock"
	"github.com/holawaleh/e-commerce/internal/domain/repository"
)

var _ stock.TxRunner = (*TxRunner)(nil)

// txTimeout acota la duración de la transacción del append: el bloqueo de
// fila no puede quedar retenido indefinidamente.
const txTimeout = 5 * time.Second

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL con los
// repositorios del ledger atados a esa tx.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción acotada en el tiempo, ejecuta fn con repos
// atados a la tx y hace Commit o Rollback. Los conflictos de bloqueo se
// traducen a domain.ErrConcurrency para que el caller reintente.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	alertRepo repository.StockAlertRepository,
) error) error {
	ctx, cancel := context.WithTimeout(ctx, txTimeout)
	defer cancel()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	movementRepo := NewStockMovementRepository(tx)
	alertRepo := NewStockAlertRepository(tx)

	if err := fn(productRepo, movementRepo, alertRepo); err != nil {
		return mapTxError(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return mapTxError(fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}
