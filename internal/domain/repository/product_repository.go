package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/holawaleh/e-commerce/internal/domain/entity"
)

// InventoryValue agrega el valor del inventario activo de un negocio a costo
// y a precio de venta.
type InventoryValue struct {
	TotalProducts     int64
	TotalUnits        int64
	TotalCostValue    decimal.Decimal
	TotalSellingValue decimal.Decimal
}

// PotentialProfit es la diferencia entre valor de venta y valor a costo.
func (v InventoryValue) PotentialProfit() decimal.Decimal {
	return v.TotalSellingValue.Sub(v.TotalCostValue)
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Toda consulta filtra por businessID: el tenant es parámetro obligatorio,
// nunca contexto ambiental.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, businessID, id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE). Es el
	// punto de serialización por producto del camino de append.
	GetForUpdate(ctx context.Context, businessID, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, businessID, sku string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// UpdateQuantity escribe el cache current_quantity. Reservado al proyector
	// de saldo y a la reconciliación.
	UpdateQuantity(ctx context.Context, id string, quantity int64) error
	ListByBusiness(ctx context.Context, businessID string, limit, offset int) ([]*entity.Product, error)
	// ListLowStock devuelve productos activos con current_quantity <= reorder_level.
	ListLowStock(ctx context.Context, businessID string) ([]*entity.Product, error)
	InventoryValue(ctx context.Context, businessID string) (*InventoryValue, error)
	Delete(ctx context.Context, businessID, id string) error
}
