package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/dto"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/identity"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/repository"
)

// TaskUseCase CRUD de tareas con referencia polimórfica y checks de ownership.
type TaskUseCase struct {
	repo      repository.TaskRepository
	userRepo  repository.UserRepository
	relations *RelationRegistry
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(repo repository.TaskRepository, userRepo repository.UserRepository, relations *RelationRegistry) *TaskUseCase {
	return &TaskUseCase{repo: repo, userRepo: userRepo, relations: relations}
}

// Create crea una tarea. La referencia relatedTo/relatedEntity se valida
// contra el registry; la fecha límite no puede estar en el pasado.
func (uc *TaskUseCase) Create(callerID string, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if in.Name == "" || in.RelatedTo == "" || in.RelatedEntity == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.DueDate != nil && in.DueDate.Before(time.Now()) {
		return nil, domain.ErrInvalidInput
	}
	ref := entity.RelatedRef{Kind: entity.RelatedKind(in.RelatedTo), ID: in.RelatedEntity}
	if err := uc.relations.Resolve(ref); err != nil {
		return nil, err
	}
	if in.AssignedTo != "" {
		assignee, err := uc.userRepo.GetByID(in.AssignedTo)
		if err != nil {
			return nil, err
		}
		if assignee == nil {
			return nil, domain.ErrUserNotFound
		}
	}
	priority := in.Priority
	if priority == "" {
		priority = "medium"
	}
	now := time.Now()
	task := &entity.Task{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		DueDate:     in.DueDate,
		Priority:    priority,
		Status:      entity.TaskNotStarted,
		AssignedTo:  in.AssignedTo,
		CreatedBy:   callerID,
		Related:     ref,
		Reminders:   in.Reminders,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(task); err != nil {
		return nil, err
	}
	return dto.ToTaskResponse(task), nil
}

// List lista tareas con paginación (admin/manager).
func (uc *TaskUseCase) List(limit, offset int) ([]*dto.TaskResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	tasks, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toTaskResponses(tasks), nil
}

// ListMine tareas asignadas al caller.
func (uc *TaskUseCase) ListMine(callerID string) ([]*dto.TaskResponse, error) {
	tasks, err := uc.repo.ListByAssignee(callerID)
	if err != nil {
		return nil, err
	}
	return toTaskResponses(tasks), nil
}

// ListByProject tareas relacionadas a un proyecto.
func (uc *TaskUseCase) ListByProject(projectID string) ([]*dto.TaskResponse, error) {
	tasks, err := uc.repo.ListByRelated(entity.RelatedProject, projectID)
	if err != nil {
		return nil, err
	}
	return toTaskResponses(tasks), nil
}

// Get obtiene una tarea; accesible para el asignado, el creador o admin/manager.
func (uc *TaskUseCase) Get(id string, caller identity.Caller) (*dto.TaskResponse, error) {
	task, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	if !caller.Is(task.AssignedTo) && !caller.Is(task.CreatedBy) && !caller.Elevated() {
		return nil, domain.ErrForbidden
	}
	return dto.ToTaskResponse(task), nil
}

// Update actualización parcial; permitida al creador o admin/manager.
// completedAt se setea (o limpia) según la transición de estado.
func (uc *TaskUseCase) Update(id string, caller identity.Caller, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	if !caller.Is(task.CreatedBy) && !caller.Elevated() {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		task.Name = *in.Name
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.DueDate != nil {
		task.DueDate = in.DueDate
	}
	if in.Priority != nil {
		task.Priority = *in.Priority
	}
	if in.AssignedTo != nil {
		task.AssignedTo = *in.AssignedTo
	}
	if in.Status != nil {
		if err := applyTaskStatus(task, *in.Status); err != nil {
			return nil, err
		}
	}
	task.UpdatedAt = time.Now()
	if err := uc.repo.Update(task); err != nil {
		return nil, err
	}
	return dto.ToTaskResponse(task), nil
}

// UpdateStatus cambio de estado puntual; permitido al asignado, el creador
// o admin/manager.
func (uc *TaskUseCase) UpdateStatus(id string, caller identity.Caller, status string) (*dto.TaskResponse, error) {
	task, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	if !caller.Is(task.AssignedTo) && !caller.Is(task.CreatedBy) && !caller.Elevated() {
		return nil, domain.ErrForbidden
	}
	if err := applyTaskStatus(task, status); err != nil {
		return nil, err
	}
	task.UpdatedAt = time.Now()
	if err := uc.repo.Update(task); err != nil {
		return nil, err
	}
	return dto.ToTaskResponse(task), nil
}

// Delete elimina una tarea; el set de roles que puede saltarse el ownership
// es más estrecho que en update: solo admin (o el creador).
func (uc *TaskUseCase) Delete(id string, caller identity.Caller) error {
	task, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if task == nil {
		return domain.ErrNotFound
	}
	if !caller.Is(task.CreatedBy) && !caller.IsAdmin() {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

// applyTaskStatus aplica la transición de estado manteniendo el invariante
// de completedAt: seteado solo cuando status = completed.
func applyTaskStatus(task *entity.Task, status string) error {
	if !entity.ValidTaskStatus(status) {
		return domain.ErrInvalidInput
	}
	task.Status = status
	if status == entity.TaskCompleted {
		if task.CompletedAt == nil {
			now := time.Now()
			task.CompletedAt = &now
		}
	} else {
		task.CompletedAt = nil
	}
	return nil
}

func toTaskResponses(tasks []*entity.Task) []*dto.TaskResponse {
	out := make([]*dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, dto.ToTaskResponse(t))
	}
	return out
}
