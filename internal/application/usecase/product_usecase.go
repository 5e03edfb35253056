package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/holawaleh/e-commerce/internal/application/dto"
	"github.com/holawaleh/e-commerce/internal/domain"
	"github.com/holawaleh/e-commerce/internal/domain/entity"
	"github.com/holawaleh/e-commerce/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. CurrentQuantity nunca se
// toca por aquí: se maneja exclusivamente vía ledger de movimientos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto con stock inicial 0. El stock de apertura entra
// después como movimiento STOCK_IN, para que también quede en el ledger.
func (uc *ProductUseCase) Create(ctx context.Context, businessID, userID string, in dto.CreateProductRequest) (*entity.Product, error) {
	if in.Name == "" || in.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.TrackingType == "" {
		in.TrackingType = entity.TrackingNone
	}
	if !entity.IsValidTrackingType(in.TrackingType) {
		return nil, domain.ErrInvalidInput
	}
	if in.ReorderLevel < 0 || in.ReorderQuantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySKU(ctx, businessID, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.UnitOfMeasure == "" {
		in.UnitOfMeasure = "piece"
	}
	now := time.Now()
	product := &entity.Product{
		ID:              uuid.New().String(),
		BusinessID:      businessID,
		Name:            in.Name,
		Description:     in.Description,
		SKU:             in.SKU,
		CategoryID:      in.CategoryID,
		SupplierID:      in.SupplierID,
		CostPrice:       in.CostPrice,
		SellingPrice:    in.SellingPrice,
		TrackingType:    in.TrackingType,
		CurrentQuantity: 0,
		ReorderLevel:    in.ReorderLevel,
		ReorderQuantity: in.ReorderQuantity,
		UnitOfMeasure:   in.UnitOfMeasure,
		Barcode:         in.Barcode,
		IsActive:        true,
		CreatedBy:       userID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID obtiene un producto del negocio.
func (uc *ProductUseCase) GetByID(ctx context.Context, businessID, id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// Update actualiza datos maestros. No permite tocar CurrentQuantity.
func (uc *ProductUseCase) Update(ctx context.Context, businessID, id string, in dto.UpdateProductRequest) (*entity.Product, error) {
	product, err := uc.repo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CategoryID != nil {
		product.CategoryID = in.CategoryID
	}
	if in.SupplierID != nil {
		product.SupplierID = in.SupplierID
	}
	if in.CostPrice != nil {
		product.CostPrice = *in.CostPrice
	}
	if in.SellingPrice != nil {
		product.SellingPrice = *in.SellingPrice
	}
	if in.TrackingType != nil {
		if !entity.IsValidTrackingType(*in.TrackingType) {
			return nil, domain.ErrInvalidInput
		}
		product.TrackingType = *in.TrackingType
	}
	if in.ReorderLevel != nil {
		if *in.ReorderLevel < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.ReorderLevel = *in.ReorderLevel
	}
	if in.ReorderQuantity != nil {
		if *in.ReorderQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.ReorderQuantity = *in.ReorderQuantity
	}
	if in.UnitOfMeasure != nil {
		product.UnitOfMeasure = *in.UnitOfMeasure
	}
	if in.Barcode != nil {
		product.Barcode = in.Barcode
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// List lista productos del negocio con paginación.
func (uc *ProductUseCase) List(ctx context.Context, businessID string, limit, offset int) ([]*entity.Product, error) {
	return uc.repo.ListByBusiness(ctx, businessID, limit, offset)
}

// ListLowStock reporte de productos activos en o bajo su punto de reorden.
func (uc *ProductUseCase) ListLowStock(ctx context.Context, businessID string) ([]*entity.Product, error) {
	return uc.repo.ListLowStock(ctx, businessID)
}

// InventoryValue valor total del inventario activo a costo y a venta.
func (uc *ProductUseCase) InventoryValue(ctx context.Context, businessID string) (*repository.InventoryValue, error) {
	return uc.repo.InventoryValue(ctx, businessID)
}

// Delete elimina un producto del negocio.
func (uc *ProductUseCase) Delete(ctx context.Context, businessID, id string) error {
	return uc.repo.Delete(ctx, businessID, id)
}
