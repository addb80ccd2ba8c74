package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/dto"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/usecase"
)

// UserHandler administración de usuarios (todas las rutas exigen admin).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List lista usuarios paginados.
// GET /api/v1/users
func (h *UserHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "parámetros de paginación inválidos")
	}
	page.DefaultPage()

	users, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OKCount(users, len(users)))
}

// GetByID obtiene un usuario.
// GET /api/v1/users/:id
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	user, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(user))
}

// Update actualiza perfil/rol/permisos. Acepta JSON o multipart con una
// nueva foto de perfil; la anterior se elimina best-effort.
// PUT /api/v1/users/:id
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	picture, err := parseProfilePicture(c)
	if err != nil {
		return badRequest(c, "profilePicture inválida")
	}

	user, err := h.uc.Update(c.Context(), c.Params("id"), in, picture)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(user))
}

// Delete elimina un usuario. No cascada: las referencias en otras entidades
// quedan colgantes y los lectores las toleran.
// DELETE /api/v1/users/:id
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.Envelope{Success: true, Message: "usuario eliminado"})
}
