package auth

import (
	"fmt"
	"strings"

	"orcamento-backend/internal/config"
	"orcamento-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CtxUsernameKey = "username"
	CtxUserRoleKey = "user_role"
)

func JWTMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Header Authorization ausente")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return fiber.NewError(fiber.StatusUnauthorized, "Formato esperado: 'Bearer <token>'")
		}

		tokenStr := parts[1]

		token, err := jwt.ParseWithClaims(tokenStr, &JWTCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("método de assinatura inválido")
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Token inválido ou expirado")
		}

		claims, ok := token.Claims.(*JWTCustomClaims)
		if !ok || claims.Username == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Token não pôde ser decodificado")
		}

		c.Locals(CtxUsernameKey, claims.Username)
		// Papel desconhecido vira vendas
		c.Locals(CtxUserRoleKey, models.NormalizeRole(claims.Role))

		return c.Next()
	}
}

func RequireRole(allowedRoles ...models.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roleVal := c.Locals(CtxUserRoleKey)
		role, ok := roleVal.(models.UserRole)
		if !ok {
			return fiber.NewError(fiber.StatusForbidden, "Não foi possível obter o papel do usuário")
		}

		for _, r := range allowedRoles {
			if r == role {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Sem permissão para esta operação")
	}
}

// Actor: identidade extraída do token, repassada aos serviços.
type Actor struct {
	Username string
	Role     models.UserRole
}

func ActorFromContext(c *fiber.Ctx) (Actor, error) {
	username, okU := c.Locals(CtxUsernameKey).(string)
	role, okR := c.Locals(CtxUserRoleKey).(models.UserRole)
	if !okU || !okR || username == "" {
		return Actor{}, fiber.NewError(fiber.StatusForbidden, "Não foi possível obter o usuário autenticado")
	}
	return Actor{Username: username, Role: role}, nil
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}
