package entity

import "time"

// Roles de usuario. Solo admin puede mutar el inventario.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
)

// User usuario de la aplicación.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string // admin | operador
	CreatedAt    time.Time
}
