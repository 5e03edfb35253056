package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/holawaleh/e-commerce/internal/domain/entity"
	"github.com/holawaleh/e-commerce/internal/domain/repository"
)

var _ repository.StockAlertRepository = (*StockAlertRepo)(nil)

const alertColumns = `id, product_id, business_id, kind, is_resolved, resolved_by, resolved_at, created_at`

// StockAlertRepo implementación de StockAlertRepository sobre PostgreSQL
// (usable con pool o tx). El invariante "a lo sumo una alerta sin resolver
// por (producto, tipo)" lo respalda el índice único parcial
// uq_stock_alerts_open (ver migrations/001_init.sql).
type StockAlertRepo struct {
	q Querier
}

// NewStockAlertRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockAlertRepository(q Querier) *StockAlertRepo {
	return &StockAlertRepo{q: q}
}

// GetOrCreateUnresolved devuelve la alerta abierta del (producto, tipo) o la
// crea. Una carrera de inserción duplicada choca contra el índice único
// parcial y se resuelve releyendo: la idempotencia absorbe el conflicto.
func (r *StockAlertRepo) GetOrCreateUnresolved(ctx context.Context, businessID, productID, kind string, now time.Time) (*entity.StockAlert, bool, error) {
	existing, err := r.getOpen(ctx, businessID, productID, kind)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	alert := &entity.StockAlert{
		ID:         uuid.New().String(),
		ProductID:  productID,
		BusinessID: businessID,
		Kind:       kind,
		IsResolved: false,
		CreatedAt:  now,
	}
	query := `
		INSERT INTO stock_alerts (id, product_id, business_id, kind, is_resolved, created_at)
		VALUES ($1, $2, $3, $4, false, $5)`
	_, err = r.q.Exec(ctx, query, alert.ID, productID, businessID, kind, now)
	if err != nil {
		if isUniqueViolation(err) {
			existing, err := r.getOpen(ctx, businessID, productID, kind)
			if err != nil {
				return nil, false, err
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("create alert: %w", err)
	}
	return alert, true, nil
}

// ResolveOpen resuelve las alertas abiertas de los tipos dados. resolvedBy
// nil deja resolved_by en NULL (resolución automática del sistema).
func (r *StockAlertRepo) ResolveOpen(ctx context.Context, businessID, productID string, kinds []string, resolvedBy *string, now time.Time) (int64, error) {
	query := `
		UPDATE stock_alerts
		SET is_resolved = true, resolved_by = $4, resolved_at = $5
		WHERE business_id = $1 AND product_id = $2 AND kind = ANY($3) AND NOT is_resolved`
	cmd, err := r.q.Exec(ctx, query, businessID, productID, kinds, resolvedBy, now)
	if err != nil {
		return 0, fmt.Errorf("resolve open alerts: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// GetByID obtiene una alerta del negocio.
func (r *StockAlertRepo) GetByID(ctx context.Context, businessID, id string) (*entity.StockAlert, error) {
	query := `SELECT ` + alertColumns + ` FROM stock_alerts WHERE id = $1 AND business_id = $2`
	var a entity.StockAlert
	err := r.q.QueryRow(ctx, query, id, businessID).Scan(
		&a.ID, &a.ProductID, &a.BusinessID, &a.Kind, &a.IsResolved, &a.ResolvedBy, &a.ResolvedAt, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alert: %w", err)
	}
	return &a, nil
}

// Resolve marca una alerta concreta como resuelta por un actor.
func (r *StockAlertRepo) Resolve(ctx context.Context, id, resolvedBy string, now time.Time) error {
	query := `
		UPDATE stock_alerts SET is_resolved = true, resolved_by = $2, resolved_at = $3
		WHERE id = $1 AND NOT is_resolved`
	_, err := r.q.Exec(ctx, query, id, resolvedBy, now)
	if err != nil {
		return fmt.Errorf("resolve alert: %w", err)
	}
	return nil
}

// ListByBusiness lista alertas del negocio, más reciente primero.
func (r *StockAlertRepo) ListByBusiness(ctx context.Context, businessID string, unresolvedOnly bool, limit, offset int) ([]*entity.StockAlert, error) {
	query := `SELECT ` + alertColumns + ` FROM stock_alerts WHERE business_id = $1`
	args := []any{businessID}
	if unresolvedOnly {
		query += " AND NOT is_resolved"
	}
	query += " ORDER BY created_at DESC LIMIT $2 OFFSET $3"
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockAlert
	for rows.Next() {
		var a entity.StockAlert
		if err := rows.Scan(&a.ID, &a.ProductID, &a.BusinessID, &a.Kind, &a.IsResolved,
			&a.ResolvedBy, &a.ResolvedAt, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

func (r *StockAlertRepo) getOpen(ctx context.Context, businessID, productID, kind string) (*entity.StockAlert, error) {
	query := `SELECT ` + alertColumns + `
		FROM stock_alerts
		WHERE business_id = $1 AND product_id = $2 AND kind = $3 AND NOT is_resolved`
	var a entity.StockAlert
	err := r.q.QueryRow(ctx, query, businessID, productID, kind).Scan(
		&a.ID, &a.ProductID, &a.BusinessID, &a.Kind, &a.IsResolved, &a.ResolvedBy, &a.ResolvedAt, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get open alert: %w", err)
	}
	return &a, nil
}
