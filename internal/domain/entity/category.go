package entity

import "time"

// Category representa una categoría de productos.
// No soporta edición: se crea y se elimina, nunca se actualiza en sitio.
type Category struct {
	ID          string
	Name        string // único por convención
	Description *string
	CreatedAt   time.Time
}
