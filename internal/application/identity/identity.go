// Package identity modela la identidad resuelta por el gate de acceso:
// el id del usuario y su rol, ya validados contra el Identity Store.
package identity

import "github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"

// Caller identidad del usuario autenticado para los checks de ownership.
type Caller struct {
	ID   string
	Role string
}

// Is compara contra el creador/asignado de un registro. Una referencia
// vacía (colgante) nunca coincide.
func (c Caller) Is(userID string) bool {
	return userID != "" && c.ID == userID
}

// IsAdmin rol admin exacto (bypass estrecho para operaciones destructivas).
func (c Caller) IsAdmin() bool { return c.Role == entity.RoleAdmin }

// Elevated admin o manager (bypass amplio para lectura/actualización).
func (c Caller) Elevated() bool {
	return c.Role == entity.RoleAdmin || c.Role == entity.RoleManager
}
