package dto

import (
	"time"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"
)

// CreateTaskRequest alta de tarea. relatedTo + relatedEntity forman la
// referencia etiquetada obligatoria.
type CreateTaskRequest struct {
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	DueDate       *time.Time `json:"dueDate"`
	Priority      string     `json:"priority"`
	AssignedTo    string     `json:"assignedTo"`
	RelatedTo     string     `json:"relatedTo"`
	RelatedEntity string     `json:"relatedEntity"`
	Reminders     []time.Time `json:"reminders"`
}

// UpdateTaskRequest actualización parcial de tarea.
type UpdateTaskRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Priority    *string    `json:"priority"`
	Status      *string    `json:"status"`
	AssignedTo  *string    `json:"assignedTo"`
}

// UpdateTaskStatusRequest cambio de estado puntual.
type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

// TaskResponse representación pública de una tarea.
type TaskResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	DueDate       *time.Time `json:"dueDate,omitempty"`
	Priority      string     `json:"priority"`
	Status        string     `json:"status"`
	AssignedTo    string     `json:"assignedTo,omitempty"`
	CreatedBy     string     `json:"createdBy"`
	RelatedTo     string     `json:"relatedTo"`
	RelatedEntity string     `json:"relatedEntity"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	IsOverdue     bool       `json:"isOverdue"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// ToTaskResponse mapea la entidad a su representación pública.
func ToTaskResponse(t *entity.Task) *TaskResponse {
	overdue := t.DueDate != nil && t.Status != entity.TaskCompleted && time.Now().After(*t.DueDate)
	return &TaskResponse{
		ID:            t.ID,
		Name:          t.Name,
		Description:   t.Description,
		DueDate:       t.DueDate,
		Priority:      t.Priority,
		Status:        t.Status,
		AssignedTo:    t.AssignedTo,
		CreatedBy:     t.CreatedBy,
		RelatedTo:     string(t.Related.Kind),
		RelatedEntity: t.Related.ID,
		CompletedAt:   t.CompletedAt,
		IsOverdue:     overdue,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}
