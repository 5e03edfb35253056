package stock

import (
	"context"
	"time"

	"github.com/holawaleh/e-commerce/internal/domain"
	"github.com/holawaleh/e-commerce/internal/domain/repository"
)

// ReconcileResult reporta el resultado de una reconciliación. Una corrección
// no es un error: es deriva detectada y corregida.
type ReconcileResult struct {
	Corrected   bool
	OldQuantity int64
	NewQuantity int64
}

// ReconcileUseCase recalcula el saldo real de un producto repasando su ledger
// completo y corrige el cache current_quantity si hay deriva. Operación de
// mantenimiento idempotente, segura de ejecutar en cualquier momento.
type ReconcileUseCase struct {
	txRunner TxRunner
}

// NewReconcileUseCase construye el caso de uso.
func NewReconcileUseCase(txRunner TxRunner) *ReconcileUseCase {
	return &ReconcileUseCase{txRunner: txRunner}
}

// Reconcile toma el bloqueo de fila del producto para leer un ledger estable
// frente a appends concurrentes, recalcula la suma con signo (ledger vacío =
// 0) y compara con el cache. Si difieren sobreescribe el cache, reevalúa las
// alertas al saldo corregido y reporta ambos valores. Los balance_after
// históricos de los movimientos no se reescriben jamás: son la foto de lo que
// el sistema creía en ese momento.
func (uc *ReconcileUseCase) Reconcile(ctx context.Context, businessID, productID string) (*ReconcileResult, error) {
	var result *ReconcileResult
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		alertRepo repository.StockAlertRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, businessID, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		calculated, err := movementRepo.SignedSum(ctx, businessID, productID)
		if err != nil {
			return err
		}

		if product.CurrentQuantity == calculated {
			result = &ReconcileResult{
				Corrected:   false,
				OldQuantity: product.CurrentQuantity,
				NewQuantity: product.CurrentQuantity,
			}
			return nil
		}

		result = &ReconcileResult{
			Corrected:   true,
			OldQuantity: product.CurrentQuantity,
			NewQuantity: calculated,
		}
		if err := productRepo.UpdateQuantity(ctx, product.ID, calculated); err != nil {
			return err
		}
		return EvaluateStockAlerts(ctx, alertRepo, product, calculated, time.Now())
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
