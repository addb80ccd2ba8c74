package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un proyecto.
const (
	ProjectNotStarted = "Not Started"
	ProjectInProgress = "In Progress"
	ProjectOnHold     = "On Hold"
	ProjectCompleted  = "Completed"
	ProjectCancelled  = "Cancelled"
)

// ValidProjectStatus indica si el estado pertenece al enum.
func ValidProjectStatus(s string) bool {
	switch s {
	case ProjectNotStarted, ProjectInProgress, ProjectOnHold, ProjectCompleted, ProjectCancelled:
		return true
	}
	return false
}

// Prioridades de proyecto.
const (
	PriorityLow      = "Low"
	PriorityMedium   = "Medium"
	PriorityHigh     = "High"
	PriorityCritical = "Critical"
)

// Milestone hito dentro del proyecto (se persiste como JSONB).
type Milestone struct {
	Name          string     `json:"name"`
	DueDate       *time.Time `json:"dueDate,omitempty"`
	Completed     bool       `json:"completed"`
	CompletedDate *time.Time `json:"completedDate,omitempty"`
}

// Project proyecto de un cliente, con manager y equipo referenciados por id.
// Invariante: EndDate > StartDate cuando ambos están presentes.
type Project struct {
	ID             string
	Name           string
	ClientID       string
	StartDate      time.Time
	EndDate        *time.Time
	Description    string
	Status         string
	Priority       string
	ProjectManager string   // referencia débil a User; puede quedar colgante
	TeamMembers    []string // ids de User
	Budget         decimal.Decimal
	Expenses       decimal.Decimal
	Milestones     []Milestone
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DatesValid verifica el invariante EndDate > StartDate.
func (p *Project) DatesValid() bool {
	if p.EndDate == nil {
		return true
	}
	return p.EndDate.After(p.StartDate)
}
