package entity

import "time"

// Client representa un cliente de la empresa. Se crea directo o al convertir un Lead.
// No tiene campo de ownership: cualquier admin/manager lo gestiona.
type Client struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Address     string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
