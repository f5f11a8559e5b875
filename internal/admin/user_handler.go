package admin

import (
	"strings"

	"orcamento-backend/internal/audit"
	"orcamento-backend/internal/auth"
	"orcamento-backend/internal/database"
	"orcamento-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type CreateUserRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"` // admin | vendas
}

type UserResponse struct {
	ID       uint            `json:"id"`
	Name     string          `json:"name"`
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
}

// POST /api/admin/users  (somente admin)
func CreateUserHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := auth.ActorFromContext(c)
		if err != nil {
			return err
		}

		var body CreateUserRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		body.Username = strings.TrimSpace(strings.ToLower(body.Username))
		if body.Username == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Usuário e senha são obrigatórios")
		}

		role := models.UserRole(body.Role)
		if role != models.RoleAdmin && role != models.RoleVendas {
			role = models.RoleVendas
		}

		var count int64
		database.DB.Model(&models.User{}).Where("username = ?", body.Username).Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "Usuário já existe")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar o hash da senha")
		}

		user := models.User{
			Name:         body.Name,
			Username:     body.Username,
			PasswordHash: string(hash),
			Role:         role,
		}
		if err := database.DB.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível criar o usuário")
		}

		audit.WriteLog(audit.LogOptions{
			Username:    actor.Username,
			EntityType:  "user",
			EntityID:    user.ID,
			Action:      models.AuditActionCreate,
			Description: "usuário " + user.Username + " criado",
			After:       UserResponse{ID: user.ID, Name: user.Name, Username: user.Username, Role: user.Role},
		})

		return c.Status(fiber.StatusCreated).JSON(UserResponse{
			ID:       user.ID,
			Name:     user.Name,
			Username: user.Username,
			Role:     user.Role,
		})
	}
}

// GET /api/admin/users  (somente admin)
func ListUsersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var users []models.User
		if err := database.DB.Order("username asc").Find(&users).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os usuários")
		}

		resp := make([]UserResponse, 0, len(users))
		for _, u := range users {
			resp = append(resp, UserResponse{ID: u.ID, Name: u.Name, Username: u.Username, Role: u.Role})
		}
		return c.JSON(resp)
	}
}
