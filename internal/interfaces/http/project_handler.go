package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/dto"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/usecase"
)

// ProjectHandler gestión de proyectos. Crear/actualizar/eliminar exigen
// admin; los listados admiten también manager (gates en la ruta).
type ProjectHandler struct {
	uc *usecase.ProjectUseCase
}

// NewProjectHandler construye el handler.
func NewProjectHandler(uc *usecase.ProjectUseCase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

// Create crea un proyecto. El cliente referenciado debe existir y
// endDate > startDate cuando ambas vienen.
// POST /api/v1/projects
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Name == "" || in.ClientID == "" {
		return badRequest(c, "name y client son requeridos")
	}
	project, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(project))
}

// List lista proyectos paginados; opcionalmente filtrados por cliente.
// GET /api/v1/projects?client=<id>
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	if clientID := c.Query("client"); clientID != "" {
		projects, err := h.uc.ListByClient(clientID)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(dto.OKCount(projects, len(projects)))
	}

	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "parámetros de paginación inválidos")
	}
	page.DefaultPage()

	projects, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OKCount(projects, len(projects)))
}

// GetByID obtiene un proyecto.
// GET /api/v1/projects/:id
func (h *ProjectHandler) GetByID(c *fiber.Ctx) error {
	project, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(project))
}

// Update actualización parcial; revalida el invariante de fechas.
// PUT /api/v1/projects/:id
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	project, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(project))
}

// Delete elimina un proyecto.
// DELETE /api/v1/projects/:id
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.Envelope{Success: true, Message: "proyecto eliminado"})
}
