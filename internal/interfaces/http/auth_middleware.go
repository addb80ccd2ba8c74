package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/dto"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/application/identity"
	"github.com/AniketRabade/Prjoect-Management-CRM/internal/domain/repository"
	"github.com/AniketRabade/Prjoect-Management-CRM/pkg/jwt"
)

// Locals keys para la identidad del caller en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "user_role"
)

// CookieName nombre de la cookie que transporta el JWT.
const CookieName = "token"

// AuthMiddleware resuelve la credencial a una identidad viva: lee el JWT de
// la cookie `token` (o del header Authorization como fallback para clientes
// de API), lo valida y verifica que el usuario siga existiendo. Un token de
// un usuario borrado es 401, no 403.
func AuthMiddleware(jwtSecret string, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(CookieName)
		if tokenString == "" {
			authHeader := c.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenString = strings.TrimSpace(parts[1])
			}
		}
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("MISSING_TOKEN", "credencial requerida (cookie token o Bearer)"))
		}

		userID, _, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("INVALID_TOKEN", "token inválido o expirado"))
		}

		// El rol se lee del store, no del claim: refleja cambios de rol
		// posteriores a la emisión del token.
		user, err := users.GetByID(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("INTERNAL", err.Error()))
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("INVALID_TOKEN", "el usuario del token ya no existe"))
		}

		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalRole, user.AccountType)
		return c.Next()
	}
}

// RequireRole gate de rol: el caller debe tener uno de los roles permitidos.
// El mensaje de 403 incluye el rol actual para diagnóstico.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		for _, r := range roles {
			if role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.Error("FORBIDDEN",
			fmt.Sprintf("rol %q sin permiso para esta operación", role)))
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetCaller arma la identidad del caller para los checks de ownership.
func GetCaller(c *fiber.Ctx) identity.Caller {
	return identity.Caller{ID: GetUserID(c), Role: GetRole(c)}
}
