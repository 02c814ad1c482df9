package entity

import "time"

// Supplier representa un proveedor. Todos los campos de contacto son opcionales.
type Supplier struct {
	ID            string
	Name          string
	ContactPerson *string
	Email         *string
	Phone         *string
	Address       *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
