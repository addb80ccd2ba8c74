package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleEmployee = "employee"
	RoleClient   = "client"
)

// ValidRole indica si el rol es uno de los enumerados.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleEmployee, RoleClient:
		return true
	}
	return false
}

// Permissions banderas granulares por módulo. Todas inician en false.
type Permissions struct {
	Dashboard bool `json:"dashboard"`
	Users     bool `json:"users"`
	Tasks     bool `json:"tasks"`
	Leads     bool `json:"leads"`
	Projects  bool `json:"projects"`
	Clients   bool `json:"clients"`
	Reports   bool `json:"reports"`
}

// User representa un usuario del sistema.
// PasswordHash nunca se serializa ni sale del dominio tras persistir.
type User struct {
	ID             string
	Name           string
	Email          string
	Phone          string
	PasswordHash   string
	AccountType    string // admin, manager, employee, client
	Permissions    Permissions
	ProfilePicture string // URL en el object storage; solo se guarda la referencia
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsAdmin / IsManager atajos para los checks de ownership.
func (u *User) IsAdmin() bool   { return u.AccountType == RoleAdmin }
func (u *User) IsManager() bool { return u.AccountType == RoleManager }
