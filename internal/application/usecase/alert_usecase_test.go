package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holawaleh/e-commerce/internal/domain"
	"github.com/holawaleh/e-commerce/internal/domain/entity"
	"github.com/holawaleh/e-commerce/internal/domain/repository"
)

const (
	testBusinessID = "biz-1"
	testUserID     = "user-1"
)

type stubAlertRepo struct {
	alerts []*entity.StockAlert
}

func (r *stubAlertRepo) GetOrCreateUnresolved(ctx context.Context, businessID, productID, kind string, now time.Time) (*entity.StockAlert, bool, error) {
	for _, a := range r.alerts {
		if a.BusinessID == businessID && a.ProductID == productID && a.Kind == kind && !a.IsResolved {
			return a, false, nil
		}
	}
	alert := &entity.StockAlert{
		ID: uuid.New().String(), ProductID: productID, BusinessID: businessID,
		Kind: kind, CreatedAt: now,
	}
	r.alerts = append(r.alerts, alert)
	return alert, true, nil
}

func (r *stubAlertRepo) ResolveOpen(ctx context.Context, businessID, productID string, kinds []string, resolvedBy *string, now time.Time) (int64, error) {
	return 0, nil
}

func (r *stubAlertRepo) GetByID(ctx context.Context, businessID, id string) (*entity.StockAlert, error) {
	for _, a := range r.alerts {
		if a.ID == id && a.BusinessID == businessID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *stubAlertRepo) Resolve(ctx context.Context, id, resolvedBy string, now time.Time) error {
	for _, a := range r.alerts {
		if a.ID == id {
			a.IsResolved = true
			a.ResolvedBy = &resolvedBy
			t := now
			a.ResolvedAt = &t
		}
	}
	return nil
}

func (r *stubAlertRepo) ListByBusiness(ctx context.Context, businessID string, unresolvedOnly bool, limit, offset int) ([]*entity.StockAlert, error) {
	var out []*entity.StockAlert
	for _, a := range r.alerts {
		if a.BusinessID != businessID || (unresolvedOnly && a.IsResolved) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

type stubMovementRepo struct {
	batches []repository.ExpiringBatch
}

func (r *stubMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error { return nil }
func (r *stubMovementRepo) GetByID(ctx context.Context, businessID, id string) (*entity.StockMovement, error) {
	return nil, nil
}
func (r *stubMovementRepo) ListByProduct(ctx context.Context, businessID, productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	return nil, nil
}
func (r *stubMovementRepo) SignedSum(ctx context.Context, businessID, productID string) (int64, error) {
	return 0, nil
}
func (r *stubMovementRepo) SummaryByKind(ctx context.Context, businessID string, from, to *time.Time) ([]repository.MovementSummary, error) {
	return nil, nil
}
func (r *stubMovementRepo) ListExpiringBatches(ctx context.Context, businessID string, before time.Time) ([]repository.ExpiringBatch, error) {
	var out []repository.ExpiringBatch
	for _, b := range r.batches {
		if !b.ExpiryDate.After(before) {
			out = append(out, b)
		}
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_MarcaAlertaComoResuelta(t *testing.T) {
	alertRepo := &stubAlertRepo{}
	alert, _, err := alertRepo.GetOrCreateUnresolved(context.Background(), testBusinessID, "p1", entity.AlertLowStock, time.Now())
	require.NoError(t, err)

	uc := NewAlertUseCase(alertRepo, &stubMovementRepo{})
	resolved, err := uc.Resolve(context.Background(), testBusinessID, alert.ID, testUserID)
	require.NoError(t, err)
	assert.True(t, resolved.IsResolved)
	require.NotNil(t, resolved.ResolvedBy)
	assert.Equal(t, testUserID, *resolved.ResolvedBy)
	assert.NotNil(t, resolved.ResolvedAt)
}

func TestResolve_AlertaYaResuelta_Retorna409(t *testing.T) {
	alertRepo := &stubAlertRepo{}
	alert, _, err := alertRepo.GetOrCreateUnresolved(context.Background(), testBusinessID, "p1", entity.AlertLowStock, time.Now())
	require.NoError(t, err)

	uc := NewAlertUseCase(alertRepo, &stubMovementRepo{})
	_, err = uc.Resolve(context.Background(), testBusinessID, alert.ID, testUserID)
	require.NoError(t, err)

	_, err = uc.Resolve(context.Background(), testBusinessID, alert.ID, testUserID)
	assert.ErrorIs(t, err, domain.ErrAlertResolved, "resolver dos veces debe rechazarse")
}

func TestResolve_AlertaInexistente(t *testing.T) {
	uc := NewAlertUseCase(&stubAlertRepo{}, &stubMovementRepo{})
	_, err := uc.Resolve(context.Background(), testBusinessID, "nope", testUserID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExpiryCheck_AbreAlertasDedupPorProducto(t *testing.T) {
	soon := time.Now().AddDate(0, 0, 5)
	movementRepo := &stubMovementRepo{batches: []repository.ExpiringBatch{
		{ProductID: "p1", BatchNumber: "L-1", ExpiryDate: soon},
		{ProductID: "p1", BatchNumber: "L-2", ExpiryDate: soon}, // mismo producto, otro lote
		{ProductID: "p2", BatchNumber: "L-3", ExpiryDate: soon},
	}}
	alertRepo := &stubAlertRepo{}
	uc := NewAlertUseCase(alertRepo, movementRepo)

	opened, err := uc.ExpiryCheck(context.Background(), testBusinessID, 30)
	require.NoError(t, err)
	assert.Equal(t, 2, opened, "una alerta por producto, no por lote")
}

func TestExpiryCheck_EsIdempotente(t *testing.T) {
	soon := time.Now().AddDate(0, 0, 5)
	movementRepo := &stubMovementRepo{batches: []repository.ExpiringBatch{
		{ProductID: "p1", BatchNumber: "L-1", ExpiryDate: soon},
	}}
	alertRepo := &stubAlertRepo{}
	uc := NewAlertUseCase(alertRepo, movementRepo)

	opened, err := uc.ExpiryCheck(context.Background(), testBusinessID, 30)
	require.NoError(t, err)
	assert.Equal(t, 1, opened)

	opened, err = uc.ExpiryCheck(context.Background(), testBusinessID, 30)
	require.NoError(t, err)
	assert.Equal(t, 0, opened, "la alerta abierta no se duplica en el segundo barrido")
}

func TestExpiryCheck_FueraDeVentanaNoAlerta(t *testing.T) {
	far := time.Now().AddDate(0, 0, 90)
	movementRepo := &stubMovementRepo{batches: []repository.ExpiringBatch{
		{ProductID: "p1", BatchNumber: "L-1", ExpiryDate: far},
	}}
	uc := NewAlertUseCase(&stubAlertRepo{}, movementRepo)

	opened, err := uc.ExpiryCheck(context.Background(), testBusinessID, 30)
	require.NoError(t, err)
	assert.Equal(t, 0, opened)
}
