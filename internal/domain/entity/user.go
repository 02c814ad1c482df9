package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// CanManageInventory indica si el rol puede ejecutar mutaciones sobre el
// inventario (crear/editar/eliminar). Solo admin y manager; employee es
// lectura. La política real vive en la DB (row-level security); este check
// es el gate de la capa de aplicación.
func CanManageInventory(role string) bool {
	return role == RoleAdmin || role == RoleManager
}

// User representa un usuario del panel de administración.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, manager, employee
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
