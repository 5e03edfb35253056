package stock

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/holawaleh/e-commerce/internal/domain"
	"github.com/holawaleh/e-commerce/internal/domain/entity"
	"github.com/holawaleh/e-commerce/internal/domain/repository"
)

const (
	// maxAppendAttempts acota los reintentos ante ErrConcurrency.
	maxAppendAttempts = 3
	retryBackoff      = 50 * time.Millisecond
)

// AppendMovementUseCase registra movimientos en el ledger de forma
// transaccional: bloqueo de fila del producto (SELECT FOR UPDATE), validación
// contra el saldo bloqueado, inserción del movimiento con balance_after,
// actualización del cache current_quantity y evaluación de alertas, todo en
// una sola transacción con Commit/Rollback.
type AppendMovementUseCase struct {
	txRunner TxRunner
}

// NewAppendMovementUseCase construye el caso de uso.
func NewAppendMovementUseCase(txRunner TxRunner) *AppendMovementUseCase {
	return &AppendMovementUseCase{txRunner: txRunner}
}

// Append valida y persiste un movimiento. Los conflictos transitorios de
// bloqueo se reintentan con backoff hasta maxAppendAttempts; agotados los
// reintentos se devuelve domain.ErrConcurrency para que el caller decida.
func (uc *AppendMovementUseCase) Append(ctx context.Context, in MovementInput) (*entity.StockMovement, error) {
	for attempt := 1; ; attempt++ {
		mov, err := uc.tryAppend(ctx, in)
		if err == nil || !errors.Is(err, domain.ErrConcurrency) {
			return mov, err
		}
		if attempt == maxAppendAttempts {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryBackoff * time.Duration(attempt)):
		}
	}
}

func (uc *AppendMovementUseCase) tryAppend(ctx context.Context, in MovementInput) (*entity.StockMovement, error) {
	var mov *entity.StockMovement
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		alertRepo repository.StockAlertRepository,
	) error {
		// Punto de serialización por producto: dos appends concurrentes sobre
		// el mismo producto no pueden leer el mismo saldo previo.
		product, err := productRepo.GetForUpdate(ctx, in.BusinessID, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		if err := ValidateMovement(product, in); err != nil {
			return err
		}

		// La magnitud se normaliza a positiva; el signo lo pone Kind.
		if in.Quantity < 0 {
			in.Quantity = -in.Quantity
		}
		balanceAfter := product.CurrentQuantity + entity.SignedQuantity(in.Kind, in.Quantity)
		now := time.Now()

		mov = &entity.StockMovement{
			ID:           uuid.New().String(),
			ProductID:    product.ID,
			BusinessID:   in.BusinessID,
			Kind:         in.Kind,
			Quantity:     in.Quantity,
			BalanceAfter: balanceAfter,
			SerialNumber: in.SerialNumber,
			BatchNumber:  in.BatchNumber,
			SupplyDate:   in.SupplyDate,
			ExpiryDate:   in.ExpiryDate,
			Reason:       in.Reason,
			Reference:    in.Reference,
			PerformedBy:  in.UserID,
			Timestamp:    now,
		}
		if err := movementRepo.Create(ctx, mov); err != nil {
			return err
		}
		if err := productRepo.UpdateQuantity(ctx, product.ID, balanceAfter); err != nil {
			return err
		}
		// Llamada explícita del proyector al motor de alertas con el saldo
		// nuevo; sin señales globales de "modelo guardado".
		return EvaluateStockAlerts(ctx, alertRepo, product, balanceAfter, now)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}
