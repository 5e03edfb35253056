package stock

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/holawaleh/e-commerce/internal/domain"
	"github.com/holawaleh/e-commerce/internal/domain/entity"
	"github.com/holawaleh/e-commerce/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test: repositorios en memoria sobre un store compartido. El
// memTxRunner serializa las "transacciones" con un mutex, igual que el bloqueo
// de fila FOR UPDATE serializa los appends concurrentes en PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu        sync.Mutex
	products  map[string]*entity.Product
	movements []*entity.StockMovement
	alerts    []*entity.StockAlert
}

func newMemStore() *memStore {
	return &memStore{products: make(map[string]*entity.Product)}
}

func (s *memStore) addProduct(p *entity.Product) {
	cp := *p
	s.products[p.ID] = &cp
}

type memTxRunner struct {
	store *memStore
}

func (r *memTxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	alertRepo repository.StockAlertRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return fn(
		&memProductRepo{store: r.store},
		&memMovementRepo{store: r.store},
		&memAlertRepo{store: r.store},
	)
}

// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	store *memStore
}

func (r *memProductRepo) Create(ctx context.Context, p *entity.Product) error {
	if _, ok := r.store.products[p.ID]; ok {
		return domain.ErrDuplicate
	}
	r.store.addProduct(p)
	return nil
}

func (r *memProductRepo) GetByID(ctx context.Context, businessID, id string) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok || p.BusinessID != businessID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetForUpdate(ctx context.Context, businessID, id string) (*entity.Product, error) {
	return r.GetByID(ctx, businessID, id)
}

func (r *memProductRepo) GetBySKU(ctx context.Context, businessID, sku string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.BusinessID == businessID && p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(ctx context.Context, p *entity.Product) error {
	existing, ok := r.store.products[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	qty := existing.CurrentQuantity
	cp := *p
	cp.CurrentQuantity = qty
	r.store.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) UpdateQuantity(ctx context.Context, id string, quantity int64) error {
	p, ok := r.store.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.CurrentQuantity = quantity
	return nil
}

func (r *memProductRepo) ListByBusiness(ctx context.Context, businessID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.store.products {
		if p.BusinessID == businessID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memProductRepo) ListLowStock(ctx context.Context, businessID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.store.products {
		if p.BusinessID == businessID && p.IsActive && p.CurrentQuantity <= p.ReorderLevel {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memProductRepo) InventoryValue(ctx context.Context, businessID string) (*repository.InventoryValue, error) {
	return &repository.InventoryValue{}, nil
}

func (r *memProductRepo) Delete(ctx context.Context, businessID, id string) error {
	delete(r.store.products, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────

type memMovementRepo struct {
	store *memStore
}

func (r *memMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	cp := *m
	r.store.movements = append(r.store.movements, &cp)
	return nil
}

func (r *memMovementRepo) GetByID(ctx context.Context, businessID, id string) (*entity.StockMovement, error) {
	for _, m := range r.store.movements {
		if m.ID == id && m.BusinessID == businessID {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memMovementRepo) ListByProduct(ctx context.Context, businessID, productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.store.movements {
		if m.BusinessID != businessID || m.ProductID != productID {
			continue
		}
		if from != nil && m.Timestamp.Before(*from) {
			continue
		}
		if to != nil && m.Timestamp.After(*to) {
			continue
		}
		cp := *m
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *memMovementRepo) SignedSum(ctx context.Context, businessID, productID string) (int64, error) {
	var sum int64
	for _, m := range r.store.movements {
		if m.BusinessID == businessID && m.ProductID == productID {
			sum += entity.SignedQuantity(m.Kind, m.Quantity)
		}
	}
	return sum, nil
}

func (r *memMovementRepo) SummaryByKind(ctx context.Context, businessID string, from, to *time.Time) ([]repository.MovementSummary, error) {
	agg := make(map[string]*repository.MovementSummary)
	for _, m := range r.store.movements {
		if m.BusinessID != businessID {
			continue
		}
		if from != nil && m.Timestamp.Before(*from) {
			continue
		}
		if to != nil && m.Timestamp.After(*to) {
			continue
		}
		s, ok := agg[m.Kind]
		if !ok {
			s = &repository.MovementSummary{Kind: m.Kind}
			agg[m.Kind] = s
		}
		s.TotalMovements++
		s.TotalQuantity += m.Quantity
	}
	var out []repository.MovementSummary
	for _, s := range agg {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out, nil
}

func (r *memMovementRepo) ListExpiringBatches(ctx context.Context, businessID string, before time.Time) ([]repository.ExpiringBatch, error) {
	seen := make(map[string]bool)
	var out []repository.ExpiringBatch
	for _, m := range r.store.movements {
		if m.BusinessID != businessID || m.ExpiryDate == nil || m.ExpiryDate.After(before) {
			continue
		}
		key := m.ProductID + "|" + m.BatchNumber
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, repository.ExpiringBatch{
			ProductID:   m.ProductID,
			BatchNumber: m.BatchNumber,
			ExpiryDate:  *m.ExpiryDate,
		})
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────

type memAlertRepo struct {
	store *memStore
}

func (r *memAlertRepo) GetOrCreateUnresolved(ctx context.Context, businessID, productID, kind string, now time.Time) (*entity.StockAlert, bool, error) {
	for _, a := range r.store.alerts {
		if a.BusinessID == businessID && a.ProductID == productID && a.Kind == kind && !a.IsResolved {
			cp := *a
			return &cp, false, nil
		}
	}
	alert := &entity.StockAlert{
		ID:         uuid.New().String(),
		ProductID:  productID,
		BusinessID: businessID,
		Kind:       kind,
		CreatedAt:  now,
	}
	r.store.alerts = append(r.store.alerts, alert)
	cp := *alert
	return &cp, true, nil
}

func (r *memAlertRepo) ResolveOpen(ctx context.Context, businessID, productID string, kinds []string, resolvedBy *string, now time.Time) (int64, error) {
	var n int64
	for _, a := range r.store.alerts {
		if a.BusinessID != businessID || a.ProductID != productID || a.IsResolved {
			continue
		}
		for _, k := range kinds {
			if a.Kind == k {
				a.IsResolved = true
				a.ResolvedBy = resolvedBy
				t := now
				a.ResolvedAt = &t
				n++
				break
			}
		}
	}
	return n, nil
}

func (r *memAlertRepo) GetByID(ctx context.Context, businessID, id string) (*entity.StockAlert, error) {
	for _, a := range r.store.alerts {
		if a.ID == id && a.BusinessID == businessID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memAlertRepo) Resolve(ctx context.Context, id, resolvedBy string, now time.Time) error {
	for _, a := range r.store.alerts {
		if a.ID == id && !a.IsResolved {
			a.IsResolved = true
			a.ResolvedBy = &resolvedBy
			t := now
			a.ResolvedAt = &t
		}
	}
	return nil
}

func (r *memAlertRepo) ListByBusiness(ctx context.Context, businessID string, unresolvedOnly bool, limit, offset int) ([]*entity.StockAlert, error) {
	var out []*entity.StockAlert
	for _, a := range r.store.alerts {
		if a.BusinessID != businessID {
			continue
		}
		if unresolvedOnly && a.IsResolved {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testBusinessID = "biz-1"
	testUserID     = "user-1"
)

func newTestProduct(id string, quantity, reorderLevel int64) *entity.Product {
	return &entity.Product{
		ID:              id,
		BusinessID:      testBusinessID,
		Name:            strings.ToUpper(id),
		SKU:             "SKU-" + id,
		TrackingType:    entity.TrackingNone,
		CurrentQuantity: quantity,
		ReorderLevel:    reorderLevel,
		UnitOfMeasure:   "piece",
		IsActive:        true,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
}

func openAlerts(store *memStore, productID string) []*entity.StockAlert {
	var out []*entity.StockAlert
	for _, a := range store.alerts {
		if a.ProductID == productID && !a.IsResolved {
			out = append(out, a)
		}
	}
	return out
}
