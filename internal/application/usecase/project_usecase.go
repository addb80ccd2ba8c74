package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/dto"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/repository"
)

// ProjectUseCase CRUD de proyectos.
type ProjectUseCase struct {
	repo       repository.ProjectRepository
	clientRepo repository.ClientRepository
}

// NewProjectUseCase construye el caso de uso.
func NewProjectUseCase(repo repository.ProjectRepository, clientRepo repository.ClientRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, clientRepo: clientRepo}
}

// Create crea un proyecto. El cliente referenciado debe existir y
// endDate > startDate cuando ambas están presentes.
func (uc *ProjectUseCase) Create(callerID string, in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if in.Name == "" || in.ClientID == "" {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	status := in.Status
	if status == "" {
		status = entity.ProjectNotStarted
	}
	if !entity.ValidProjectStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	start := time.Now()
	if in.StartDate != nil {
		start = *in.StartDate
	}
	now := time.Now()
	project := &entity.Project{
		ID:             uuid.New().String(),
		Name:           in.Name,
		ClientID:       in.ClientID,
		StartDate:      start,
		EndDate:        in.EndDate,
		Description:    in.Description,
		Status:         status,
		Priority:       priority,
		ProjectManager: in.ProjectManager,
		TeamMembers:    in.TeamMembers,
		Budget:         in.Budget.Round(2),
		Expenses:       decimal.Zero,
		Milestones:     in.Milestones,
		CreatedBy:      callerID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if !project.DatesValid() {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Create(project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// List lista proyectos con paginación.
func (uc *ProjectUseCase) List(limit, offset int) ([]*dto.ProjectResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	projects, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectResponse(p))
	}
	return out, nil
}

// ListByClient proyectos de un cliente.
func (uc *ProjectUseCase) ListByClient(clientID string) ([]*dto.ProjectResponse, error) {
	projects, err := uc.repo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectResponse(p))
	}
	return out, nil
}

// Get obtiene un proyecto por id.
func (uc *ProjectUseCase) Get(id string) (*dto.ProjectResponse, error) {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	return toProjectResponse(project), nil
}

// Update actualización parcial de un proyecto, preservando el invariante de fechas.
func (uc *ProjectUseCase) Update(id string, in dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		project.Name = *in.Name
	}
	if in.StartDate != nil {
		project.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		project.EndDate = in.EndDate
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.Status != nil {
		if !entity.ValidProjectStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		project.Status = *in.Status
	}
	if in.Priority != nil {
		project.Priority = *in.Priority
	}
	if in.ProjectManager != nil {
		project.ProjectManager = *in.ProjectManager
	}
	if in.TeamMembers != nil {
		project.TeamMembers = *in.TeamMembers
	}
	if in.Budget != nil {
		if in.Budget.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		project.Budget = in.Budget.Round(2)
	}
	if in.Expenses != nil {
		if in.Expenses.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		project.Expenses = in.Expenses.Round(2)
	}
	if in.Milestones != nil {
		project.Milestones = *in.Milestones
	}
	if !project.DatesValid() {
		return nil, domain.ErrInvalidInput
	}
	project.UpdatedAt = time.Now()
	if err := uc.repo.Update(project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// Delete elimina un proyecto por id.
func (uc *ProjectUseCase) Delete(id string) error {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if project == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	return &dto.ProjectResponse{
		ID:             p.ID,
		Name:           p.Name,
		ClientID:       p.ClientID,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		Description:    p.Description,
		Status:         p.Status,
		Priority:       p.Priority,
		ProjectManager: p.ProjectManager,
		TeamMembers:    p.TeamMembers,
		Budget:         p.Budget,
		Expenses:       p.Expenses,
		Milestones:     p.Milestones,
		CreatedBy:      p.CreatedBy,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
