package entity

import "time"

// Estados de una tarea.
const (
	TaskNotStarted = "not started"
	TaskInProgress = "in progress"
	TaskCompleted  = "completed"
	TaskDeferred   = "deferred"
	TaskCancelled  = "cancelled"
)

// ValidTaskStatus indica si el estado pertenece al enum.
func ValidTaskStatus(s string) bool {
	switch s {
	case TaskNotStarted, TaskInProgress, TaskCompleted, TaskDeferred, TaskCancelled:
		return true
	}
	return false
}

// RelatedKind etiqueta del tipo de entidad a la que apunta una tarea.
// Es una unión etiquetada: el kind decide contra qué colección se resuelve el id.
type RelatedKind string

const (
	RelatedProject RelatedKind = "Project"
	RelatedLead    RelatedKind = "Lead"
	RelatedClient  RelatedKind = "Client"
	RelatedSale    RelatedKind = "Sale"
	RelatedOther   RelatedKind = "Other"
)

// Valid indica si el kind pertenece al enum.
func (k RelatedKind) Valid() bool {
	switch k {
	case RelatedProject, RelatedLead, RelatedClient, RelatedSale, RelatedOther:
		return true
	}
	return false
}

// RelatedRef referencia polimórfica (kind + id). Para RelatedOther el id es
// texto libre y no se resuelve contra ninguna colección.
type RelatedRef struct {
	Kind RelatedKind
	ID   string
}

// Task tarea asignable, ligada a una entidad relacionada vía RelatedRef.
// CompletedAt solo se setea cuando Status pasa a completed.
type Task struct {
	ID          string
	Name        string
	Description string
	DueDate     *time.Time
	Priority    string // low, medium, high, urgent
	Status      string
	AssignedTo  string
	CreatedBy   string
	Related     RelatedRef
	CompletedAt *time.Time
	Reminders   []time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
