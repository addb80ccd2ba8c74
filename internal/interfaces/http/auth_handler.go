package http

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/auth"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/dto"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain"
)

// AuthHandler maneja registro (solo admin), login, logout y perfil propio.
type AuthHandler struct {
	uc          *auth.AuthUseCase
	cookieDays  int
	environment string
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, cookieDays int, environment string) *AuthHandler {
	return &AuthHandler{uc: uc, cookieDays: cookieDays, environment: environment}
}

// Register crea un usuario. Acepta JSON o multipart (campo profilePicture).
// POST /api/v1/auth/register — solo admin (gate en la ruta).
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return badRequest(c, "name, email y password son requeridos")
	}
	if len(in.Password) < 8 {
		return badRequest(c, "password debe tener al menos 8 caracteres")
	}

	picture, err := parseProfilePicture(c)
	if err != nil {
		return badRequest(c, "profilePicture inválida")
	}

	user, err := h.uc.Register(c.Context(), in, picture)
	if err != nil {
		if err == domain.ErrEmailAlreadyExists {
			return c.Status(fiber.StatusConflict).JSON(dto.Error("EMAIL_EXISTS", "el email ya está registrado"))
		}
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(user))
}

// Login valida credenciales, emite el JWT y lo deja en la cookie `token`.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if in.Email == "" || in.Password == "" {
		return badRequest(c, "email y password son requeridos")
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if err == domain.ErrUserNotFound || err == domain.ErrUnauthorized {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("UNAUTHORIZED", "credenciales inválidas"))
		}
		return fail(c, err)
	}

	c.Cookie(h.tokenCookie(out.Token, time.Now().AddDate(0, 0, h.cookieDays)))
	return c.JSON(dto.OK(out))
}

// Logout invalida la cookie del cliente.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(h.tokenCookie("", time.Now().Add(-time.Hour)))
	return c.JSON(dto.Envelope{Success: true, Message: "sesión cerrada"})
}

// Me devuelve el perfil del caller autenticado.
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.uc.Me(GetUserID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.OK(user))
}

// tokenCookie cookie httpOnly, SameSite Strict y Secure solo en producción.
func (h *AuthHandler) tokenCookie(value string, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     CookieName,
		Value:    value,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   h.environment == "production",
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/",
	}
}

// parseProfilePicture extrae el archivo multipart `profilePicture` si viene.
func parseProfilePicture(c *fiber.Ctx) (*auth.ProfilePicture, error) {
	fileHeader, err := c.FormFile("profilePicture")
	if err != nil {
		// Sin archivo: no es un error, el campo es opcional.
		return nil, nil
	}
	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &auth.ProfilePicture{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Content:     content,
	}, nil
}
