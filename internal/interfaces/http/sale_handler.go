package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/crm"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/dto"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/reports"
)

// SaleHandler gestión de ventas y reporte PDF del periodo.
type SaleHandler struct {
	uc       *crm.SaleUseCase
	reportUC *reports.SalesReportUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *crm.SaleUseCase, reportUC *reports.SalesReportUseCase) *SaleHandler {
	return &SaleHandler{uc: uc, reportUC: reportUC}
}

// Create registra una venta; el salesperson es siempre el caller.
// POST /api/v1/sales
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	sale, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(sale))
}

// List lista ventas paginadas, con filtros opcionales por proyecto, cliente
// o rango de fechas (admin/manager).
// GET /api/v1/sales?project=|client=|from=&to=
func (h *SaleHandler) List(c *fiber.Ctx) error {
	if projectID := c.Query("project"); projectID != "" {
		sales, err := h.uc.ListByProject(projectID)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(dto.OKCount(sales, len(sales)))
	}
	if clientID := c.Query("client"); clientID != "" {
		sales, err := h.uc.ListByClient(clientID)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(dto.OKCount(sales, len(sales)))
	}
	if c.Query("from") != "" || c.Query("to") != "" {
		from, to, err := parseDateRange(c)
		if err != nil {
			return badRequest(c, "from/to deben ser fechas YYYY-MM-DD")
		}
		sales, err := h.uc.ListByDateRange(from, to)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(dto.OKCount(sales, len(sales)))
	}

	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "parámetros de paginación inválidos")
	}
	page.DefaultPage()

	sales, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OKCount(sales, len(sales)))
}

// ListMine ventas del caller como salesperson.
// GET /api/v1/sales/my-sales
func (h *SaleHandler) ListMine(c *fiber.Ctx) error {
	sales, err := h.uc.ListMine(GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OKCount(sales, len(sales)))
}

// Stats agregados globales de ventas (admin/manager).
// GET /api/v1/sales/stats
func (h *SaleHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.uc.Stats()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(stats))
}

// Report genera el reporte PDF de ventas del periodo (admin/manager).
// GET /api/v1/sales/report.pdf?from=&to=
func (h *SaleHandler) Report(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return badRequest(c, "from/to deben ser fechas YYYY-MM-DD")
	}
	pdf, err := h.reportUC.Generate(c.Context(), from, to)
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="sales-report.pdf"`)
	return c.Send(pdf)
}

// GetByID obtiene una venta (salesperson o admin/manager).
// GET /api/v1/sales/:id
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	sale, err := h.uc.Get(c.Params("id"), GetCaller(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(sale))
}

// Update actualización parcial (salesperson o admin/manager).
// PUT /api/v1/sales/:id
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	sale, err := h.uc.Update(c.Params("id"), GetCaller(c), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(sale))
}

// Delete elimina una venta (solo admin; gate en la ruta).
// DELETE /api/v1/sales/:id
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.Envelope{Success: true, Message: "venta eliminada"})
}

// parseDateRange lee from/to (YYYY-MM-DD) con defaults: último mes hasta hoy.
// El límite superior es inclusivo: cubre hasta el final del día `to`.
func parseDateRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, -1, 0)
	to := now

	if s := c.Query("from"); s != "" {
		parsed, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}
	if s := c.Query("to"); s != "" {
		parsed, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return from, to, nil
}
