package main

import (
	"log"
	"strings"

	"orcamento-backend/internal/admin"
	"orcamento-backend/internal/audit"
	"orcamento-backend/internal/auth"
	"orcamento-backend/internal/budget"
	"orcamento-backend/internal/config"
	"orcamento-backend/internal/database"
	"orcamento-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Erro inesperado:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Erro interno do servidor",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Auth pública
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Rotas autenticadas
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Orçamentos
	protected.Post("/budgets/calculate-simplified", budget.CalculateSimplifiedHandler())
	protected.Post("/budgets/simplified", budget.CreateBudgetHandler())
	protected.Post("/budgets", budget.CreateBudgetHandler())
	protected.Get("/budgets", budget.ListBudgetsHandler())
	protected.Get("/budgets/export-excel", budget.ExportExcelHandler())
	protected.Get("/budgets/:id", budget.GetBudgetHandler())
	protected.Put("/budgets/:id", budget.UpdateBudgetHandler())
	protected.Delete("/budgets/:id", budget.DeleteBudgetHandler())
	protected.Get("/budgets/:id/export-pdf", budget.ExportPDFHandler())

	// Rotas de administrador
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))

	adminRoutes.Post("/users", admin.CreateUserHandler())
	adminRoutes.Get("/users", admin.ListUsersHandler())

	// Auditoria (somente admin)
	protected.Get("/audit-logs", auth.RequireRole(models.RoleAdmin), audit.ListAuditLogsHandler())

	log.Println("Servidor rodando na porta:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
