package entity

import "time"

// Tipos de cuenta válidos. Gatean el acceso a las rutas de administración de inventario.
const (
	TypeClient   = "Client"
	TypeEmployee = "Employee"
	TypeAdmin    = "Admin"
)

// Account representa una cuenta del concesionario.
type Account struct {
	ID           int
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string // hash bcrypt, nunca sale de la capa de datos hacia las vistas
	Type         string // Client, Employee, Admin
	CreatedAt    time.Time
}

// CanManageInventory indica si la cuenta puede acceder al área de administración.
func (a *Account) CanManageInventory() bool {
	return a.Type == TypeEmployee || a.Type == TypeAdmin
}
