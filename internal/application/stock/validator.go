package stock

import (
	"fmt"
	"strings"
	"time"

	"github.com/holawaleh/e-commerce/internal/domain"
	"github.com/holawaleh/e-commerce/internal/domain/entity"
)

// MovementInput entrada para registrar un movimiento en el ledger.
// Quantity es magnitud: el signo lo deriva Kind, nunca el caller.
type MovementInput struct {
	BusinessID   string
	ProductID    string
	UserID       string
	Kind         string
	Quantity     int64
	SerialNumber string
	BatchNumber  string
	SupplyDate   *time.Time
	ExpiryDate   *time.Time
	Reason       string
	Reference    string
}

// ValidateMovement aplica las reglas de dominio sobre un movimiento candidato
// contra el producto con su saldo proyectado (leído bajo bloqueo de fila).
// Acumula todos los fallos en un *domain.ValidationError en lugar de cortar
// en el primero, para que el caller pueda corregirlos de una vez.
func ValidateMovement(product *entity.Product, in MovementInput) error {
	ve := &domain.ValidationError{}

	if !entity.IsValidMovementKind(in.Kind) {
		ve.Add("kind", domain.CodeInvalid, fmt.Sprintf("tipo de movimiento desconocido: %q", in.Kind))
	}
	if in.Quantity <= 0 {
		ve.Add("quantity", domain.CodeInvalid, "la cantidad debe ser mayor que 0")
	}
	if product.RequiresSerial() && in.SerialNumber == "" {
		ve.Add("serial_number", domain.CodeRequired, "este producto exige número de serie")
	}
	if product.RequiresBatch() && in.BatchNumber == "" {
		ve.Add("batch_number", domain.CodeRequired, "este producto exige número de lote")
	}
	// Con seguimiento BOTH y ambos ausentes se añade además el error combinado.
	if product.TrackingType == entity.TrackingBoth && in.SerialNumber == "" && in.BatchNumber == "" {
		ve.Add("tracking", domain.CodeRequired, "este producto exige número de serie y de lote")
	}
	if entity.MovementRequiresReason(in.Kind) && strings.TrimSpace(in.Reason) == "" {
		ve.Add("reason", domain.CodeRequired, fmt.Sprintf("los movimientos %s exigen un motivo", in.Kind))
	}
	if entity.MovementChecksStock(in.Kind) && in.Quantity > 0 && in.Quantity > product.CurrentQuantity {
		ve.Add("quantity", domain.CodeInsufficientStock,
			fmt.Sprintf("stock insuficiente: disponible %d, solicitado %d", product.CurrentQuantity, in.Quantity))
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}
