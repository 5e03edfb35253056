package entity

import "time"

// Category organiza productos; admite un nivel de jerarquía vía ParentID.
type Category struct {
	ID          string
	BusinessID  string
	Name        string
	Description string
	ParentID    *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
