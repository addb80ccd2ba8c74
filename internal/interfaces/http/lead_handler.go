package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/crm"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/dto"
)

// LeadHandler pipeline de leads: CRUD, asignación, estado, stats y la
// conversión one-way a cliente.
type LeadHandler struct {
	uc        *crm.LeadUseCase
	convertUC *crm.ConvertLeadUseCase
}

// NewLeadHandler construye el handler.
func NewLeadHandler(uc *crm.LeadUseCase, convertUC *crm.ConvertLeadUseCase) *LeadHandler {
	return &LeadHandler{uc: uc, convertUC: convertUC}
}

// Create crea un lead.
// POST /api/v1/leads
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Name == "" {
		return badRequest(c, "name es requerido")
	}
	lead, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(lead))
}

// List lista leads paginados, con filtros opcionales por estado o fuente
// (admin/manager).
// GET /api/v1/leads?status=|source=
func (h *LeadHandler) List(c *fiber.Ctx) error {
	if status := c.Query("status"); status != "" {
		leads, err := h.uc.ListByStatus(status)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(dto.OKCount(leads, len(leads)))
	}
	if source := c.Query("source"); source != "" {
		leads, err := h.uc.ListBySource(source)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(dto.OKCount(leads, len(leads)))
	}

	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "parámetros de paginación inválidos")
	}
	page.DefaultPage()

	leads, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OKCount(leads, len(leads)))
}

// ListMine leads asignados al caller.
// GET /api/v1/leads/my-leads
func (h *LeadHandler) ListMine(c *fiber.Ctx) error {
	leads, err := h.uc.ListMine(GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OKCount(leads, len(leads)))
}

// ListRecent últimos leads creados.
// GET /api/v1/leads/recent?limit=10
func (h *LeadHandler) ListRecent(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	leads, err := h.uc.ListRecent(limit)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OKCount(leads, len(leads)))
}

// Stats agregados del pipeline (admin/manager).
// GET /api/v1/leads/stats
func (h *LeadHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(stats))
}

// GetByID obtiene un lead (asignado, creador o admin/manager).
// GET /api/v1/leads/:id
func (h *LeadHandler) GetByID(c *fiber.Ctx) error {
	lead, err := h.uc.Get(c.Params("id"), GetCaller(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(lead))
}

// Update actualización parcial (creador o admin/manager). El client del
// lead no se toca por esta vía: solo cambia en la conversión.
// PUT /api/v1/leads/:id
func (h *LeadHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	lead, err := h.uc.Update(c.Params("id"), GetCaller(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(lead))
}

// UpdateStatus cambio de estado en el pipeline.
// PATCH /api/v1/leads/:id/status
func (h *LeadHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateLeadStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	lead, err := h.uc.UpdateStatus(c.Params("id"), GetCaller(c), in.Status)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(lead))
}

// Assign reasigna el lead a otro usuario (admin/manager; gate en la ruta).
// PATCH /api/v1/leads/:id/assign
func (h *LeadHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.AssignedTo == "" {
		return badRequest(c, "assignedTo es requerido")
	}
	lead, err := h.uc.Assign(c.Params("id"), in.AssignedTo)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(lead))
}

// Convert convierte el lead en cliente: crea el Client, cierra el lead como
// Closed Won y fija conversionDate, todo en una transacción. Un lead ya
// convertido responde 409.
// POST /api/v1/leads/:id/convert
func (h *LeadHandler) Convert(c *fiber.Ctx) error {
	out, err := h.convertUC.Convert(c.Context(), c.Params("id"), GetCaller(c))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out))
}

// Delete elimina un lead. Bypass más estrecho que update: creador o admin.
// DELETE /api/v1/leads/:id
func (h *LeadHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id"), GetCaller(c)); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.Envelope{Success: true, Message: "lead eliminado"})
}
