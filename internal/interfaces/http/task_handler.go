package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/dto"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/usecase"
)

// TaskHandler gestión de tareas. Los checks de ownership (asignado, creador,
// admin/manager) viven en el caso de uso; las rutas solo gatean el rol.
type TaskHandler struct {
	uc *usecase.TaskUseCase
}

// NewTaskHandler construye el handler.
func NewTaskHandler(uc *usecase.TaskUseCase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

// Create crea una tarea. La referencia (relatedTo, relatedEntity) se
// resuelve contra la colección correspondiente antes de persistir.
// POST /api/v1/tasks
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Name == "" {
		return badRequest(c, "name es requerido")
	}
	task, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(task))
}

// List lista todas las tareas (admin/manager).
// GET /api/v1/tasks
func (h *TaskHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "parámetros de paginación inválidos")
	}
	page.DefaultPage()

	tasks, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OKCount(tasks, len(tasks)))
}

// ListMine tareas asignadas al caller.
// GET /api/v1/tasks/my-tasks
func (h *TaskHandler) ListMine(c *fiber.Ctx) error {
	tasks, err := h.uc.ListMine(GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OKCount(tasks, len(tasks)))
}

// ListByProject tareas ligadas a un proyecto.
// GET /api/v1/tasks/project/:projectId
func (h *TaskHandler) ListByProject(c *fiber.Ctx) error {
	tasks, err := h.uc.ListByProject(c.Params("projectId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OKCount(tasks, len(tasks)))
}

// GetByID obtiene una tarea (asignado, creador o admin/manager).
// GET /api/v1/tasks/:id
func (h *TaskHandler) GetByID(c *fiber.Ctx) error {
	task, err := h.uc.Get(c.Params("id"), GetCaller(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(task))
}

// Update actualización parcial (creador o admin/manager).
// PUT /api/v1/tasks/:id
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	task, err := h.uc.Update(c.Params("id"), GetCaller(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(task))
}

// UpdateStatus cambio de estado (asignado, creador o admin/manager).
// PATCH /api/v1/tasks/:id/status
func (h *TaskHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateTaskStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	task, err := h.uc.UpdateStatus(c.Params("id"), GetCaller(c), in.Status)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(task))
}

// Delete elimina una tarea. Bypass más estrecho que update: creador o admin,
// manager no alcanza.
// DELETE /api/v1/tasks/:id
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id"), GetCaller(c)); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.Envelope{Success: true, Message: "tarea eliminada"})
}
