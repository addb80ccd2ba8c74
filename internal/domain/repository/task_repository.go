package repository

import "github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"

// TaskRepository define el puerto de persistencia para Task.
type TaskRepository interface {
	Create(task *entity.Task) error
	GetByID(id string) (*entity.Task, error)
	List(limit, offset int) ([]*entity.Task, error)
	ListByAssignee(userID string) ([]*entity.Task, error)
	// ListByRelated resuelve la referencia etiquetada (kind + id),
	// p. ej. todas las tareas de un proyecto.
	ListByRelated(kind entity.RelatedKind, relatedID string) ([]*entity.Task, error)
	Update(task *entity.Task) error
	Delete(id string) error
}
