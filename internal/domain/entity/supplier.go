package entity

import "time"

// Supplier representa un proveedor del negocio. Nombre único por negocio.
type Supplier struct {
	ID            string
	BusinessID    string
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	Notes         string
	IsActive      bool
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
