package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrAlreadyConverted   = errors.New("el lead ya fue convertido a cliente")
	ErrAlreadyCheckedIn   = errors.New("ya existe un check-in para hoy")
	ErrNoActiveCheckIn    = errors.New("no hay un check-in activo para hoy")
	ErrUpstream           = errors.New("fallo de un colaborador externo")
)
