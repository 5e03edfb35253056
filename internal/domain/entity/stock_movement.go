package entity

import "time"

// Tipos de movimiento del ledger de stock.
const (
	MovementStockIn     = "STOCK_IN"     // entrada desde proveedor
	MovementSale        = "SALE"         // venta
	MovementReturn      = "RETURN"       // devolución de cliente
	MovementDamage      = "DAMAGE"       // dañado / vencido
	MovementTheft       = "THEFT"        // perdido / robado
	MovementAdjustment  = "ADJUSTMENT"   // ajuste manual
	MovementTransferOut = "TRANSFER_OUT" // traslado saliente
	MovementTransferIn  = "TRANSFER_IN"  // traslado entrante
)

// StockMovement es una entrada inmutable del ledger de stock: una vez creada
// nunca se actualiza ni se borra (pista de auditoría). Quantity es siempre la
// magnitud positiva; el signo lo deriva Kind. BalanceAfter es la foto del
// saldo al momento del append y queda congelada aunque una reconciliación
// posterior corrija el cache del producto.
type StockMovement struct {
	ID           string
	ProductID    string
	BusinessID   string
	Kind         string
	Quantity     int64 // magnitud, siempre > 0
	BalanceAfter int64
	SerialNumber string
	BatchNumber  string
	SupplyDate   *time.Time // fecha de recepción del proveedor
	ExpiryDate   *time.Time // fecha de vencimiento del lote
	Reason       string     // obligatorio para RETURN, DAMAGE, THEFT, ADJUSTMENT
	Reference    string     // factura, orden de compra, traslado...
	PerformedBy  string
	Timestamp    time.Time
}

// IsValidMovementKind valida el tipo de movimiento.
func IsValidMovementKind(kind string) bool {
	switch kind {
	case MovementStockIn, MovementSale, MovementReturn, MovementDamage,
		MovementTheft, MovementAdjustment, MovementTransferOut, MovementTransferIn:
		return true
	}
	return false
}

// IsInboundMovement indica si el tipo suma stock.
func IsInboundMovement(kind string) bool {
	switch kind {
	case MovementStockIn, MovementReturn, MovementTransferIn:
		return true
	}
	return false
}

// MovementRequiresReason indica si el tipo exige un motivo.
func MovementRequiresReason(kind string) bool {
	switch kind {
	case MovementReturn, MovementDamage, MovementTheft, MovementAdjustment:
		return true
	}
	return false
}

// MovementChecksStock indica si el tipo exige saldo suficiente antes del
// append. ADJUSTMENT queda fuera: un ajuste manual puede dejar saldo negativo
// que luego corrige la reconciliación.
func MovementChecksStock(kind string) bool {
	switch kind {
	case MovementSale, MovementDamage, MovementTheft, MovementTransferOut:
		return true
	}
	return false
}

// SignedQuantity devuelve el efecto con signo de un movimiento sobre el saldo.
func SignedQuantity(kind string, quantity int64) int64 {
	if quantity < 0 {
		quantity = -quantity
	}
	if IsInboundMovement(kind) {
		return quantity
	}
	return -quantity
}
