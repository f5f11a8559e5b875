package audit

import (
	"strconv"

	"orcamento-backend/internal/database"
	"orcamento-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/audit-logs?entity_type=&entity_id=&page=&page_size=  (somente admin)
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Model(&models.AuditLog{})

		if et := c.Query("entity_type"); et != "" {
			q = q.Where("entity_type = ?", et)
		}
		if eid := c.Query("entity_id"); eid != "" {
			id, err := strconv.Atoi(eid)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "entity_id inválido")
			}
			q = q.Where("entity_id = ?", id)
		}

		page, _ := strconv.Atoi(c.Query("page", "1"))
		if page < 1 {
			page = 1
		}
		pageSize, _ := strconv.Atoi(c.Query("page_size", "50"))
		if pageSize < 1 || pageSize > 200 {
			pageSize = 50
		}

		var total int64
		if err := q.Count(&total).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os logs")
		}

		var logs []models.AuditLog
		if err := q.Order("created_at desc").
			Offset((page - 1) * pageSize).
			Limit(pageSize).
			Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os logs")
		}

		return c.JSON(fiber.Map{
			"items":     logs,
			"total":     total,
			"page":      page,
			"page_size": pageSize,
		})
	}
}
