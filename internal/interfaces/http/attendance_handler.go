package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/dto"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/hr"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/entity"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/repository"
)

// AttendanceHandler check-in/check-out del caller y administración de
// asistencia (listados, stats, overrides).
type AttendanceHandler struct {
	uc *hr.AttendanceUseCase
}

// NewAttendanceHandler construye el handler.
func NewAttendanceHandler(uc *hr.AttendanceUseCase) *AttendanceHandler {
	return &AttendanceHandler{uc: uc}
}

// CheckIn marca la entrada del día del caller. Segundo check-in del mismo
// día responde 409.
// POST /api/v1/attendance/check-in
func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	var in dto.CheckInRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	att, err := h.uc.CheckIn(GetUserID(c), hr.CheckInMeta{
		Location:  entity.Geolocation{Latitude: in.Latitude, Longitude: in.Longitude},
		IPAddress: c.IP(),
		Device:    c.Get(fiber.HeaderUserAgent),
	})
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(att))
}

// CheckOut cierra el registro abierto del día del caller.
// POST /api/v1/attendance/check-out
func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	att, err := h.uc.CheckOut(GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(att))
}

// MyAttendance registros del caller; ?year=&month= filtra por mes.
// GET /api/v1/attendance/my-attendance
func (h *AttendanceHandler) MyAttendance(c *fiber.Ctx) error {
	year, _ := strconv.Atoi(c.Query("year"))
	month, _ := strconv.Atoi(c.Query("month"))
	records, err := h.uc.MyAttendance(GetUserID(c), year, time.Month(month))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OKCount(records, len(records)))
}

// List listado administrativo con filtros (admin/manager).
// GET /api/v1/attendance?from=&to=&user=&status=
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	filter := repository.AttendanceFilter{
		UserID: c.Query("user"),
		Status: c.Query("status"),
	}
	if s := c.Query("from"); s != "" {
		from, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return badRequest(c, "from debe ser una fecha YYYY-MM-DD")
		}
		filter.From = &from
	}
	if s := c.Query("to"); s != "" {
		to, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return badRequest(c, "to debe ser una fecha YYYY-MM-DD")
		}
		filter.To = &to
	}

	records, err := h.uc.List(filter)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OKCount(records, len(records)))
}

// Stats conteos por estado en un rango de fechas (admin/manager).
// GET /api/v1/attendance/stats?from=&to=
func (h *AttendanceHandler) Stats(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return badRequest(c, "from/to deben ser fechas YYYY-MM-DD")
	}
	stats, err := h.uc.Stats(from, to)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(stats))
}

// GetByID obtiene un registro: el dueño ve el suyo, admin/manager cualquiera.
// GET /api/v1/attendance/:id
func (h *AttendanceHandler) GetByID(c *fiber.Ctx) error {
	att, err := h.uc.Get(c.Params("id"), GetCaller(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(att))
}

// UpdateStatus override manual de estado/notas (admin). Latchea el registro
// a modo manual: el check-out posterior no recalcula.
// PUT /api/v1/attendance/:id/status
func (h *AttendanceHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateAttendanceStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	att, err := h.uc.OverrideStatus(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(att))
}

// BulkStatus override masivo para un día y un conjunto de usuarios (admin).
// POST /api/v1/attendance/bulk-status
func (h *AttendanceHandler) BulkStatus(c *fiber.Ctx) error {
	var in dto.BulkStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	out, err := h.uc.BulkOverride(in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(out))
}

// Delete elimina un registro de asistencia (admin).
// DELETE /api/v1/attendance/:id
func (h *AttendanceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.Envelope{Success: true, Message: "registro eliminado"})
}
