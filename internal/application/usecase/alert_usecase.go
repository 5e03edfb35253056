package usecase

import (
	"context"
	"time"

	"github.com/holawaleh/e-commerce/internal/domain"
	"github.com/holawaleh/e-commerce/internal/domain/entity"
	"github.com/holawaleh/e-commerce/internal/domain/repository"
)

// AlertUseCase resolución manual y consulta de alertas de stock. Las alertas
// las abre y resuelve automáticamente el motor (stock.EvaluateStockAlerts);
// aquí solo vive lo que dispara un actor humano.
type AlertUseCase struct {
	alertRepo    repository.StockAlertRepository
	movementRepo repository.StockMovementRepository
}

// NewAlertUseCase construye el caso de uso.
func NewAlertUseCase(alertRepo repository.StockAlertRepository, movementRepo repository.StockMovementRepository) *AlertUseCase {
	return &AlertUseCase{alertRepo: alertRepo, movementRepo: movementRepo}
}

// Resolve marca una alerta como resuelta por un actor. Resolver una alerta ya
// resuelta es un no-op que se rechaza con domain.ErrAlertResolved.
func (uc *AlertUseCase) Resolve(ctx context.Context, businessID, alertID, userID string) (*entity.StockAlert, error) {
	alert, err := uc.alertRepo.GetByID(ctx, businessID, alertID)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, domain.ErrNotFound
	}
	if alert.IsResolved {
		return nil, domain.ErrAlertResolved
	}
	now := time.Now()
	if err := uc.alertRepo.Resolve(ctx, alert.ID, userID, now); err != nil {
		return nil, err
	}
	alert.IsResolved = true
	alert.ResolvedBy = &userID
	alert.ResolvedAt = &now
	return alert, nil
}

// List lista alertas del negocio; unresolvedOnly filtra las abiertas.
func (uc *AlertUseCase) List(ctx context.Context, businessID string, unresolvedOnly bool, limit, offset int) ([]*entity.StockAlert, error) {
	return uc.alertRepo.ListByBusiness(ctx, businessID, unresolvedOnly, limit, offset)
}

// ExpiryCheck abre alertas EXPIRING_SOON para productos con lotes cuyo
// expiry_date cae dentro de la ventana dada. Operación de mantenimiento
// explícita (sin scheduler): idempotente vía get-or-create. Devuelve cuántas
// alertas nuevas se abrieron.
func (uc *AlertUseCase) ExpiryCheck(ctx context.Context, businessID string, windowDays int) (int, error) {
	before := time.Now().AddDate(0, 0, windowDays)
	batches, err := uc.movementRepo.ListExpiringBatches(ctx, businessID, before)
	if err != nil {
		return 0, err
	}
	now := time.Now()
	opened := 0
	seen := make(map[string]bool, len(batches))
	for _, b := range batches {
		if seen[b.ProductID] {
			continue
		}
		seen[b.ProductID] = true
		_, created, err := uc.alertRepo.GetOrCreateUnresolved(ctx, businessID, b.ProductID, entity.AlertExpiringSoon, now)
		if err != nil {
			return opened, err
		}
		if created {
			opened++
		}
	}
	return opened, nil
}
