package stock

import (
	"context"
	"time"

	"github.com/holawaleh/e-commerce/internal/domain/entity"
	"github.com/holawaleh/e-commerce/internal/domain/repository"
)

// EvaluateStockAlerts reacciona a un cambio de saldo abriendo o resolviendo
// alertas. Las bandas son mutuamente excluyentes y mantienen a lo sumo una
// alerta de nivel de stock sin resolver por producto:
//
//	saldo == 0                                  -> OUT_OF_STOCK abierta, LOW_STOCK resuelta
//	0 < saldo <= reorder_level (reorder > 0)    -> LOW_STOCK abierta, OUT_OF_STOCK resuelta
//	saldo > reorder_level (o reorder == 0)      -> ambas resueltas (actor nil = sistema)
//
// La creación usa get-or-create: mientras exista una alerta abierta del tipo
// no se duplica. Se invoca de forma síncrona dentro de la transacción del
// append o de la reconciliación.
func EvaluateStockAlerts(ctx context.Context, alertRepo repository.StockAlertRepository, product *entity.Product, balance int64, now time.Time) error {
	switch {
	case balance == 0:
		if _, err := alertRepo.ResolveOpen(ctx, product.BusinessID, product.ID,
			[]string{entity.AlertLowStock}, nil, now); err != nil {
			return err
		}
		_, _, err := alertRepo.GetOrCreateUnresolved(ctx, product.BusinessID, product.ID, entity.AlertOutOfStock, now)
		return err

	case balance <= product.ReorderLevel && product.ReorderLevel > 0:
		if _, err := alertRepo.ResolveOpen(ctx, product.BusinessID, product.ID,
			[]string{entity.AlertOutOfStock}, nil, now); err != nil {
			return err
		}
		_, _, err := alertRepo.GetOrCreateUnresolved(ctx, product.BusinessID, product.ID, entity.AlertLowStock, now)
		return err

	default:
		_, err := alertRepo.ResolveOpen(ctx, product.BusinessID, product.ID,
			[]string{entity.AlertLowStock, entity.AlertOutOfStock}, nil, now)
		return err
	}
}
