package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/holawaleh/e-commerce/internal/domain/entity"
	"github.com/holawaleh/e-commerce/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementColumns = `id, product_id, business_id, kind, quantity, balance_after,
		serial_number, batch_number, supply_date, expiry_date, reason, reference,
		performed_by, timestamp`

// StockMovementRepo implementación del ledger sobre PostgreSQL (usable con
// pool o tx). Solo inserta y lee: la tabla stock_movements es append-only.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste una entrada del ledger.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, product_id, business_id, kind, quantity, balance_after,
			serial_number, batch_number, supply_date, expiry_date, reason, reference,
			performed_by, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.ProductID, m.BusinessID, m.Kind, m.Quantity, m.BalanceAfter,
		m.SerialNumber, m.BatchNumber, m.SupplyDate, m.ExpiryDate, m.Reason, m.Reference,
		nullable(m.PerformedBy), m.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada del ledger del negocio.
func (r *StockMovementRepo) GetByID(ctx context.Context, businessID, id string) (*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE id = $1 AND business_id = $2`
	var m entity.StockMovement
	var performedBy *string
	err := r.q.QueryRow(ctx, query, id, businessID).Scan(
		&m.ID, &m.ProductID, &m.BusinessID, &m.Kind, &m.Quantity, &m.BalanceAfter,
		&m.SerialNumber, &m.BatchNumber, &m.SupplyDate, &m.ExpiryDate, &m.Reason, &m.Reference,
		&performedBy, &m.Timestamp,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	if performedBy != nil {
		m.PerformedBy = *performedBy
	}
	return &m, nil
}

// ListByProduct lista el historial de un producto, más reciente primero, con
// rango de fechas opcional.
func (r *StockMovementRepo) ListByProduct(ctx context.Context, businessID, productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + `
		FROM stock_movements WHERE business_id = $1 AND product_id = $2`
	args := []any{businessID, productID}
	pos := 3
	if from != nil {
		query += fmt.Sprintf(" AND timestamp >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND timestamp <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY timestamp DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var performedBy *string
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.BusinessID, &m.Kind, &m.Quantity, &m.BalanceAfter,
			&m.SerialNumber, &m.BatchNumber, &m.SupplyDate, &m.ExpiryDate, &m.Reason, &m.Reference,
			&performedBy, &m.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if performedBy != nil {
			m.PerformedBy = *performedBy
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// SignedSum replay del ledger: entradas suman, salidas restan. Ledger vacío
// devuelve 0 (COALESCE). La suma es independiente del orden, así que se
// delega a la BD en lugar de traer las filas.
func (r *StockMovementRepo) SignedSum(ctx context.Context, businessID, productID string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(
			CASE WHEN kind IN ('STOCK_IN', 'RETURN', 'TRANSFER_IN')
				THEN quantity ELSE -quantity END), 0)
		FROM stock_movements WHERE business_id = $1 AND product_id = $2`
	var sum int64
	if err := r.q.QueryRow(ctx, query, businessID, productID).Scan(&sum); err != nil {
		return 0, fmt.Errorf("signed sum: %w", err)
	}
	return sum, nil
}

// SummaryByKind agrega número de movimientos y cantidad total por tipo en un
// rango de fechas opcional.
func (r *StockMovementRepo) SummaryByKind(ctx context.Context, businessID string, from, to *time.Time) ([]repository.MovementSummary, error) {
	query := `
		SELECT kind, COUNT(*), COALESCE(SUM(quantity), 0)
		FROM stock_movements WHERE business_id = $1`
	args := []any{businessID}
	pos := 2
	if from != nil {
		query += fmt.Sprintf(" AND timestamp >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND timestamp <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += " GROUP BY kind ORDER BY kind"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("movement summary: %w", err)
	}
	defer rows.Close()
	var list []repository.MovementSummary
	for rows.Next() {
		var s repository.MovementSummary
		if err := rows.Scan(&s.Kind, &s.TotalMovements, &s.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// ListExpiringBatches lotes con fecha de vencimiento no nula anterior o igual
// a before, un registro por (producto, lote).
func (r *StockMovementRepo) ListExpiringBatches(ctx context.Context, businessID string, before time.Time) ([]repository.ExpiringBatch, error) {
	query := `
		SELECT DISTINCT product_id, batch_number, expiry_date
		FROM stock_movements
		WHERE business_id = $1 AND expiry_date IS NOT NULL AND expiry_date <= $2
		ORDER BY expiry_date`
	rows, err := r.q.Query(ctx, query, businessID, before)
	if err != nil {
		return nil, fmt.Errorf("list expiring batches: %w", err)
	}
	defer rows.Close()
	var list []repository.ExpiringBatch
	for rows.Next() {
		var b repository.ExpiringBatch
		if err := rows.Scan(&b.ProductID, &b.BatchNumber, &b.ExpiryDate); err != nil {
			return nil, fmt.Errorf("scan expiring batch: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}
