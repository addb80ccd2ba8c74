package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"
)

// CreateProjectRequest alta de proyecto.
type CreateProjectRequest struct {
	Name           string             `json:"name"`
	ClientID       string             `json:"client"`
	StartDate      *time.Time         `json:"startDate"`
	EndDate        *time.Time         `json:"endDate"`
	Description    string             `json:"description"`
	Status         string             `json:"status"`
	Priority       string             `json:"priority"`
	ProjectManager string             `json:"projectManager"`
	TeamMembers    []string           `json:"teamMembers"`
	Budget         decimal.Decimal    `json:"budget"`
	Milestones     []entity.Milestone `json:"milestones"`
}

// UpdateProjectRequest actualización parcial de proyecto.
type UpdateProjectRequest struct {
	Name           *string             `json:"name"`
	StartDate      *time.Time          `json:"startDate"`
	EndDate        *time.Time          `json:"endDate"`
	Description    *string             `json:"description"`
	Status         *string             `json:"status"`
	Priority       *string             `json:"priority"`
	ProjectManager *string             `json:"projectManager"`
	TeamMembers    *[]string           `json:"teamMembers"`
	Budget         *decimal.Decimal    `json:"budget"`
	Expenses       *decimal.Decimal    `json:"expenses"`
	Milestones     *[]entity.Milestone `json:"milestones"`
}

// ProjectResponse representación pública de un proyecto.
type ProjectResponse struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	ClientID       string             `json:"client"`
	StartDate      time.Time          `json:"startDate"`
	EndDate        *time.Time         `json:"endDate,omitempty"`
	Description    string             `json:"description,omitempty"`
	Status         string             `json:"status"`
	Priority       string             `json:"priority"`
	ProjectManager string             `json:"projectManager,omitempty"`
	TeamMembers    []string           `json:"teamMembers"`
	Budget         decimal.Decimal    `json:"budget"`
	Expenses       decimal.Decimal    `json:"expenses"`
	Milestones     []entity.Milestone `json:"milestones"`
	CreatedBy      string             `json:"createdBy"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}
