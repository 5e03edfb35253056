package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	SKU             string          `json:"sku"`
	CategoryID      *string         `json:"category_id,omitempty"`
	SupplierID      *string         `json:"supplier_id,omitempty"`
	CostPrice       decimal.Decimal `json:"cost_price"`
	SellingPrice    decimal.Decimal `json:"selling_price"`
	TrackingType    string          `json:"tracking_type,omitempty"`
	ReorderLevel    int64           `json:"reorder_level,omitempty"`
	ReorderQuantity int64           `json:"reorder_quantity,omitempty"`
	UnitOfMeasure   string          `json:"unit_of_measure,omitempty"`
	Barcode         *string         `json:"barcode,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id. Campos en nil no se
// tocan. current_quantity no es actualizable: solo lo mueve el ledger.
type UpdateProductRequest struct {
	Name            *string          `json:"name,omitempty"`
	Description     *string          `json:"description,omitempty"`
	CategoryID      *string          `json:"category_id,omitempty"`
	SupplierID      *string          `json:"supplier_id,omitempty"`
	CostPrice       *decimal.Decimal `json:"cost_price,omitempty"`
	SellingPrice    *decimal.Decimal `json:"selling_price,omitempty"`
	TrackingType    *string          `json:"tracking_type,omitempty"`
	ReorderLevel    *int64           `json:"reorder_level,omitempty"`
	ReorderQuantity *int64           `json:"reorder_quantity,omitempty"`
	UnitOfMeasure   *string          `json:"unit_of_measure,omitempty"`
	Barcode         *string          `json:"barcode,omitempty"`
	IsActive        *bool            `json:"is_active,omitempty"`
}

// ProductResponse producto expuesto a la API.
type ProductResponse struct {
	ID              string          `json:"id"`
	BusinessID      string          `json:"business_id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	SKU             string          `json:"sku"`
	CategoryID      *string         `json:"category_id,omitempty"`
	SupplierID      *string         `json:"supplier_id,omitempty"`
	CostPrice       decimal.Decimal `json:"cost_price"`
	SellingPrice    decimal.Decimal `json:"selling_price"`
	TrackingType    string          `json:"tracking_type"`
	CurrentQuantity int64           `json:"current_quantity"`
	ReorderLevel    int64           `json:"reorder_level"`
	ReorderQuantity int64           `json:"reorder_quantity"`
	IsLowStock      bool            `json:"is_low_stock"`
	UnitOfMeasure   string          `json:"unit_of_measure"`
	Barcode         *string         `json:"barcode,omitempty"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// InventoryValueResponse reporte de valor del inventario.
type InventoryValueResponse struct {
	TotalProducts     int64           `json:"total_products"`
	TotalUnits        int64           `json:"total_units"`
	TotalCostValue    decimal.Decimal `json:"total_cost_value"`
	TotalSellingValue decimal.Decimal `json:"total_selling_value"`
	PotentialProfit   decimal.Decimal `json:"potential_profit"`
}
