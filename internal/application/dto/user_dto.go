package dto

import (
	"time"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"
)

// LoginRequest credenciales de entrada.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token emitido + usuario. El token también viaja en la
// cookie `token`; se incluye en el cuerpo para clientes de API.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RegisterRequest alta de usuario (solo admin).
type RegisterRequest struct {
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Password    string              `json:"password"`
	Phone       string              `json:"phone"`
	AccountType string              `json:"accountType"`
	Permissions *entity.Permissions `json:"permissions"`
}

// UpdateUserRequest actualización de perfil/rol/permisos. Punteros para
// distinguir "no enviado" de "vacío".
type UpdateUserRequest struct {
	Name        *string             `json:"name"`
	Email       *string             `json:"email"`
	Phone       *string             `json:"phone"`
	AccountType *string             `json:"accountType"`
	Permissions *entity.Permissions `json:"permissions"`
}

// UserResponse representación pública de un usuario (nunca incluye el hash).
type UserResponse struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	Phone          string             `json:"phone"`
	AccountType    string             `json:"accountType"`
	Permissions    entity.Permissions `json:"permissions"`
	ProfilePicture string             `json:"profilePicture,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// UserRef referencia mínima embebida en otras respuestas (populate).
// Nula cuando la referencia quedó colgante.
type UserRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
