package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/dto"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/identity"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/usecase"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para el registry y el caso de uso de tareas
// ──────────────────────────────────────────────────────────────────────────────

type memStore[T any] struct {
	items map[string]*T
}

func newMemStore[T any]() *memStore[T] { return &memStore[T]{items: make(map[string]*T)} }

type fakeProjects struct{ *memStore[entity.Project] }

func (r fakeProjects) Create(p *entity.Project) error                  { r.items[p.ID] = p; return nil }
func (r fakeProjects) GetByID(id string) (*entity.Project, error)      { return r.items[id], nil }
func (r fakeProjects) List(int, int) ([]*entity.Project, error)        { return nil, nil }
func (r fakeProjects) ListByClient(string) ([]*entity.Project, error)  { return nil, nil }
func (r fakeProjects) Update(p *entity.Project) error                  { r.items[p.ID] = p; return nil }
func (r fakeProjects) Delete(id string) error                          { delete(r.items, id); return nil }

type fakeLeads struct{ *memStore[entity.Lead] }

func (r fakeLeads) Create(l *entity.Lead) error                 { r.items[l.ID] = l; return nil }
func (r fakeLeads) GetByID(id string) (*entity.Lead, error)     { return r.items[id], nil }
func (r fakeLeads) List(int, int) ([]*entity.Lead, error)       { return nil, nil }
func (r fakeLeads) ListByAssignee(string) ([]*entity.Lead, error) { return nil, nil }
func (r fakeLeads) ListByStatus(string) ([]*entity.Lead, error) { return nil, nil }
func (r fakeLeads) ListBySource(string) ([]*entity.Lead, error) { return nil, nil }
func (r fakeLeads) ListRecent(int) ([]*entity.Lead, error)      { return nil, nil }
func (r fakeLeads) Stats() (*repository.LeadStats, error)       { return nil, nil }
func (r fakeLeads) Update(l *entity.Lead) error                 { r.items[l.ID] = l; return nil }
func (r fakeLeads) MarkConverted(string, string, string, time.Time) (bool, error) {
	return false, nil
}
func (r fakeLeads) Delete(id string) error { delete(r.items, id); return nil }

type fakeClients struct{ *memStore[entity.Client] }

func (r fakeClients) Create(c *entity.Client) error             { r.items[c.ID] = c; return nil }
func (r fakeClients) GetByID(id string) (*entity.Client, error) { return r.items[id], nil }
func (r fakeClients) List(int, int) ([]*entity.Client, error)   { return nil, nil }
func (r fakeClients) Update(c *entity.Client) error             { r.items[c.ID] = c; return nil }
func (r fakeClients) Delete(id string) error                    { delete(r.items, id); return nil }

type fakeSales struct{ *memStore[entity.Sale] }

func (r fakeSales) Create(s *entity.Sale) error                        { r.items[s.ID] = s; return nil }
func (r fakeSales) GetByID(id string) (*entity.Sale, error)            { return r.items[id], nil }
func (r fakeSales) List(int, int) ([]*entity.Sale, error)              { return nil, nil }
func (r fakeSales) ListBySalesperson(string) ([]*entity.Sale, error)   { return nil, nil }
func (r fakeSales) ListByProject(string) ([]*entity.Sale, error)       { return nil, nil }
func (r fakeSales) ListByClient(string) ([]*entity.Sale, error)        { return nil, nil }
func (r fakeSales) ListByDateRange(time.Time, time.Time) ([]*entity.Sale, error) {
	return nil, nil
}
func (r fakeSales) Stats() (*repository.SaleStats, error) { return nil, nil }
func (r fakeSales) Update(s *entity.Sale) error           { r.items[s.ID] = s; return nil }
func (r fakeSales) Delete(id string) error                { delete(r.items, id); return nil }

type fakeUsers struct{ *memStore[entity.User] }

func (r fakeUsers) Create(u *entity.User) error             { r.items[u.ID] = u; return nil }
func (r fakeUsers) GetByID(id string) (*entity.User, error) { return r.items[id], nil }
func (r fakeUsers) GetByEmail(string) (*entity.User, error) { return nil, nil }
func (r fakeUsers) List(int, int) ([]*entity.User, error)   { return nil, nil }
func (r fakeUsers) Update(u *entity.User) error             { r.items[u.ID] = u; return nil }
func (r fakeUsers) Delete(id string) error                  { delete(r.items, id); return nil }

type fakeTasks struct{ *memStore[entity.Task] }

func (r fakeTasks) Create(t *entity.Task) error             { r.items[t.ID] = t; return nil }
func (r fakeTasks) GetByID(id string) (*entity.Task, error) { return r.items[id], nil }
func (r fakeTasks) List(int, int) ([]*entity.Task, error)   { return nil, nil }
func (r fakeTasks) ListByAssignee(string) ([]*entity.Task, error) { return nil, nil }
func (r fakeTasks) ListByRelated(entity.RelatedKind, string) ([]*entity.Task, error) {
	return nil, nil
}
func (r fakeTasks) Update(t *entity.Task) error { r.items[t.ID] = t; return nil }
func (r fakeTasks) Delete(id string) error      { delete(r.items, id); return nil }

func buildTaskUC() (*usecase.TaskUseCase, *usecase.RelationRegistry, fakeTasks) {
	projects := fakeProjects{newMemStore[entity.Project]()}
	leads := fakeLeads{newMemStore[entity.Lead]()}
	clients := fakeClients{newMemStore[entity.Client]()}
	sales := fakeSales{newMemStore[entity.Sale]()}
	users := fakeUsers{newMemStore[entity.User]()}
	tasks := fakeTasks{newMemStore[entity.Task]()}

	_ = projects.Create(&entity.Project{ID: "project-1", Name: "Sitio web"})
	_ = leads.Create(&entity.Lead{ID: "lead-1", Name: "ACME"})
	_ = users.Create(&entity.User{ID: "user-1", AccountType: entity.RoleEmployee})
	_ = users.Create(&entity.User{ID: "user-2", AccountType: entity.RoleEmployee})

	registry := usecase.NewRelationRegistry(projects, leads, clients, sales)
	return usecase.NewTaskUseCase(tasks, users, registry), registry, tasks
}

func futureDate() *time.Time {
	d := time.Now().Add(48 * time.Hour)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// RelationRegistry
// ──────────────────────────────────────────────────────────────────────────────

// La referencia etiquetada se resuelve contra la colección que indica el
// kind: existente pasa, inexistente es NotFound, kind desconocido es
// validación y Other nunca se resuelve.
func TestRelationRegistry_Resolve(t *testing.T) {
	_, registry, _ := buildTaskUC()

	assert.NoError(t, registry.Resolve(entity.RelatedRef{Kind: entity.RelatedProject, ID: "project-1"}))
	assert.NoError(t, registry.Resolve(entity.RelatedRef{Kind: entity.RelatedLead, ID: "lead-1"}))

	err := registry.Resolve(entity.RelatedRef{Kind: entity.RelatedProject, ID: "project-999"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = registry.Resolve(entity.RelatedRef{Kind: entity.RelatedKind("Invoice"), ID: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.NoError(t, registry.Resolve(entity.RelatedRef{Kind: entity.RelatedOther, ID: "texto libre"}),
		"Other lleva texto libre y no se valida contra ninguna colección")
}

// ──────────────────────────────────────────────────────────────────────────────
// TaskUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateTask_ReferenciaYAsignadoValidos(t *testing.T) {
	uc, _, _ := buildTaskUC()

	task, err := uc.Create("user-1", dto.CreateTaskRequest{
		Name:          "Preparar propuesta",
		DueDate:       futureDate(),
		Priority:      "high",
		AssignedTo:    "user-2",
		RelatedTo:     "Project",
		RelatedEntity: "project-1",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.TaskNotStarted, task.Status, "una tarea nueva nace not started")
	assert.Equal(t, "user-1", task.CreatedBy)
	assert.Equal(t, "Project", task.RelatedTo)
}

func TestCreateTask_Rechazos(t *testing.T) {
	uc, _, _ := buildTaskUC()

	past := time.Now().Add(-time.Hour)
	_, err := uc.Create("user-1", dto.CreateTaskRequest{
		Name: "Tarea vencida", DueDate: &past,
		RelatedTo: "Project", RelatedEntity: "project-1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "dueDate en el pasado")

	_, err = uc.Create("user-1", dto.CreateTaskRequest{
		Name: "Asignado fantasma", DueDate: futureDate(),
		AssignedTo: "user-999",
		RelatedTo:  "Project", RelatedEntity: "project-1",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound, "el asignado debe existir")

	_, err = uc.Create("user-1", dto.CreateTaskRequest{
		Name: "Referencia rota", DueDate: futureDate(),
		RelatedTo: "Lead", RelatedEntity: "lead-999",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "la referencia debe resolver")
}

// completedAt acompaña al estado: se fija al completar y se limpia al
// reabrir la tarea.
func TestUpdateTaskStatus_CompletedAt(t *testing.T) {
	uc, _, _ := buildTaskUC()
	creator := identity.Caller{ID: "user-1", Role: entity.RoleEmployee}

	task, err := uc.Create("user-1", dto.CreateTaskRequest{
		Name: "Cerrar trato", DueDate: futureDate(),
		RelatedTo: "Project", RelatedEntity: "project-1",
	})
	require.NoError(t, err)

	done, err := uc.UpdateStatus(task.ID, creator, entity.TaskCompleted)
	require.NoError(t, err)
	assert.NotNil(t, done.CompletedAt)

	reopened, err := uc.UpdateStatus(task.ID, creator, entity.TaskInProgress)
	require.NoError(t, err)
	assert.Nil(t, reopened.CompletedAt, "reabrir limpia completedAt")

	_, err = uc.UpdateStatus(task.ID, creator, "finished")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "estado fuera del enum")
}

// Delete tiene bypass más estrecho que update: manager puede actualizar
// tareas ajenas pero no borrarlas; solo el creador o admin borran.
func TestDeleteTask_BypassEstrecho(t *testing.T) {
	uc, _, _ := buildTaskUC()

	task, err := uc.Create("user-1", dto.CreateTaskRequest{
		Name: "Auditoría", DueDate: futureDate(),
		RelatedTo: "Project", RelatedEntity: "project-1",
	})
	require.NoError(t, err)

	manager := identity.Caller{ID: "user-9", Role: entity.RoleManager}

	name := "Auditoría interna"
	_, err = uc.Update(task.ID, manager, dto.UpdateTaskRequest{Name: &name})
	assert.NoError(t, err, "manager puede actualizar tareas ajenas")

	err = uc.Delete(task.ID, manager)
	assert.ErrorIs(t, err, domain.ErrForbidden, "manager NO puede borrar tareas ajenas")

	err = uc.Delete(task.ID, identity.Caller{ID: "user-1", Role: entity.RoleEmployee})
	assert.NoError(t, err, "el creador sí puede borrar su tarea")
}
