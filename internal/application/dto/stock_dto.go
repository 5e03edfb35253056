package dto

import "time"

// AppendMovementRequest body para POST /api/stock/movements.
// quantity es magnitud positiva; el signo lo deriva kind.
type AppendMovementRequest struct {
	ProductID    string     `json:"product_id"`
	Kind         string     `json:"kind"`
	Quantity     int64      `json:"quantity"`
	SerialNumber string     `json:"serial_number,omitempty"`
	BatchNumber  string     `json:"batch_number,omitempty"`
	SupplyDate   *time.Time `json:"supply_date,omitempty"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
	Reason       string     `json:"reason,omitempty"`
	Reference    string     `json:"reference,omitempty"`
}

// MovementResponse entrada del ledger expuesta a la API.
type MovementResponse struct {
	ID           string     `json:"id"`
	ProductID    string     `json:"product_id"`
	Kind         string     `json:"kind"`
	Quantity     int64      `json:"quantity"`
	BalanceAfter int64      `json:"balance_after"`
	SerialNumber string     `json:"serial_number,omitempty"`
	BatchNumber  string     `json:"batch_number,omitempty"`
	SupplyDate   *time.Time `json:"supply_date,omitempty"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
	Reason       string     `json:"reason,omitempty"`
	Reference    string     `json:"reference,omitempty"`
	PerformedBy  string     `json:"performed_by"`
	Timestamp    time.Time  `json:"timestamp"`
}

// ReconcileResponse resultado de POST /api/stock/products/:id/reconcile.
type ReconcileResponse struct {
	Corrected   bool   `json:"corrected"`
	OldQuantity int64  `json:"old_quantity"`
	NewQuantity int64  `json:"new_quantity"`
	Message     string `json:"message"`
}

// MovementSummaryResponse agregado por tipo de movimiento.
type MovementSummaryResponse struct {
	Kind           string `json:"kind"`
	TotalMovements int64  `json:"total_movements"`
	TotalQuantity  int64  `json:"total_quantity"`
}

// AlertResponse alerta de stock expuesta a la API.
type AlertResponse struct {
	ID         string     `json:"id"`
	ProductID  string     `json:"product_id"`
	Kind       string     `json:"kind"`
	IsResolved bool       `json:"is_resolved"`
	ResolvedBy *string    `json:"resolved_by,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ExpiryCheckResponse resultado del barrido de vencimientos.
type ExpiryCheckResponse struct {
	WindowDays   int `json:"window_days"`
	AlertsOpened int `json:"alerts_opened"`
}
