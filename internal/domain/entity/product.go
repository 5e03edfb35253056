package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Modos de seguimiento por producto. Determinan qué identificadores
// (serial y/o lote) son obligatorios en cada movimiento de stock.
const (
	TrackingNone   = "NONE"
	TrackingSerial = "SERIAL"
	TrackingBatch  = "BATCH"
	TrackingBoth   = "BOTH"
)

// Product representa un producto del inventario de un negocio (tenant).
// CurrentQuantity es un cache derivado del ledger de movimientos: solo lo
// escriben el proyector de saldo (append) y la reconciliación.
type Product struct {
	ID              string
	BusinessID      string
	Name            string
	Description     string
	SKU             string // único por negocio
	CategoryID      *string
	SupplierID      *string
	CostPrice       decimal.Decimal // precio de compra al proveedor
	SellingPrice    decimal.Decimal // precio de venta al cliente
	TrackingType    string
	CurrentQuantity int64 // derivado del ledger
	ReorderLevel    int64 // mínimo antes de alertar
	ReorderQuantity int64 // cantidad sugerida de pedido
	UnitOfMeasure   string // pieza, kg, litro, caja...
	Barcode         *string
	IsActive        bool
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RequiresSerial indica si los movimientos del producto exigen número de serie.
func (p *Product) RequiresSerial() bool {
	return p.TrackingType == TrackingSerial || p.TrackingType == TrackingBoth
}

// RequiresBatch indica si los movimientos del producto exigen número de lote.
func (p *Product) RequiresBatch() bool {
	return p.TrackingType == TrackingBatch || p.TrackingType == TrackingBoth
}

// IsLowStock indica si el stock cacheado está en o bajo el punto de reorden.
func (p *Product) IsLowStock() bool {
	return p.CurrentQuantity <= p.ReorderLevel
}

// IsValidTrackingType valida el modo de seguimiento.
func IsValidTrackingType(t string) bool {
	switch t {
	case TrackingNone, TrackingSerial, TrackingBatch, TrackingBoth:
		return true
	}
	return false
}
