package entity

import "time"

// Tipos de alerta de stock.
const (
	AlertLowStock     = "LOW_STOCK"
	AlertOutOfStock   = "OUT_OF_STOCK"
	AlertExpiringSoon = "EXPIRING_SOON"
)

// StockAlert es estado derivado del saldo, no parte del ledger. Invariante:
// a lo sumo una alerta sin resolver por (producto, tipo); la garantiza el
// get-or-create del repositorio apoyado en un índice único parcial.
// ResolvedBy queda en nil cuando la resuelve el motor de alertas (sistema).
type StockAlert struct {
	ID         string
	ProductID  string
	BusinessID string
	Kind       string
	IsResolved bool
	ResolvedBy *string
	ResolvedAt *time.Time
	CreatedAt  time.Time
}
