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

// CatalogUseCase CRUD de datos de referencia del catálogo: proveedores y
// categorías, ambos acotados al negocio.
type CatalogUseCase struct {
	supplierRepo repository.SupplierRepository
	categoryRepo repository.CategoryRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(supplierRepo repository.SupplierRepository, categoryRepo repository.CategoryRepository) *CatalogUseCase {
	return &CatalogUseCase{supplierRepo: supplierRepo, categoryRepo: categoryRepo}
}

// CreateSupplier crea un proveedor. Nombre y teléfono obligatorios.
func (uc *CatalogUseCase) CreateSupplier(ctx context.Context, businessID, userID string, in dto.SupplierRequest) (*entity.Supplier, error) {
	if in.Name == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:            uuid.New().String(),
		BusinessID:    businessID,
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		Notes:         in.Notes,
		IsActive:      true,
		CreatedBy:     userID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// UpdateSupplier actualiza un proveedor existente.
func (uc *CatalogUseCase) UpdateSupplier(ctx context.Context, businessID, id string, in dto.SupplierRequest) (*entity.Supplier, error) {
	supplier, err := uc.supplierRepo.GetByID(ctx, businessID, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		supplier.Name = in.Name
	}
	if in.Phone != "" {
		supplier.Phone = in.Phone
	}
	supplier.ContactPerson = in.ContactPerson
	supplier.Email = in.Email
	supplier.Address = in.Address
	supplier.Notes = in.Notes
	if in.IsActive != nil {
		supplier.IsActive = *in.IsActive
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// ListSuppliers lista proveedores del negocio.
func (uc *CatalogUseCase) ListSuppliers(ctx context.Context, businessID string, limit, offset int) ([]*entity.Supplier, error) {
	return uc.supplierRepo.ListByBusiness(ctx, businessID, limit, offset)
}

// DeleteSupplier elimina un proveedor.
func (uc *CatalogUseCase) DeleteSupplier(ctx context.Context, businessID, id string) error {
	return uc.supplierRepo.Delete(ctx, businessID, id)
}

// CreateCategory crea una categoría; ParentID opcional para subcategorías.
func (uc *CatalogUseCase) CreateCategory(ctx context.Context, businessID string, in dto.CategoryRequest) (*entity.Category, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ParentID != nil {
		parent, err := uc.categoryRepo.GetByID(ctx, businessID, *in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		BusinessID:  businessID,
		Name:        in.Name,
		Description: in.Description,
		ParentID:    in.ParentID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories lista categorías; parentOnly devuelve solo las raíz.
func (uc *CatalogUseCase) ListCategories(ctx context.Context, businessID string, parentOnly bool) ([]*entity.Category, error) {
	return uc.categoryRepo.ListByBusiness(ctx, businessID, parentOnly)
}

// DeleteCategory elimina una categoría.
func (uc *CatalogUseCase) DeleteCategory(ctx context.Context, businessID, id string) error {
	return uc.categoryRepo.Delete(ctx, businessID, id)
}
