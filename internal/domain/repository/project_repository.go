package repository

import "github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"

// ProjectRepository define el puerto de persistencia para Project.
type ProjectRepository interface {
	Create(project *entity.Project) error
	GetByID(id string) (*entity.Project, error)
	List(limit, offset int) ([]*entity.Project, error)
	ListByClient(clientID string) ([]*entity.Project, error)
	Update(project *entity.Project) error
	Delete(id string) error
}
