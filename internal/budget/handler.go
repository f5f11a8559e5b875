package budget

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"orcamento-backend/internal/audit"
	"orcamento-backend/internal/auth"
	"orcamento-backend/internal/calc"
	"orcamento-backend/internal/database"
	"orcamento-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BudgetItemResponse struct {
	ID       uint `json:"id"`
	Position int  `json:"position"`

	Description           string  `json:"description"`
	PurchaseWeight        float64 `json:"purchase_weight"`
	SaleWeight            float64 `json:"sale_weight"`
	PurchaseValueWithICMS float64 `json:"purchase_value_with_icms"`
	SaleValueWithICMS     float64 `json:"sale_value_with_icms"`
	ICMSPurchase          float64 `json:"icms_purchase"`
	ICMSSale              float64 `json:"icms_sale"`
	IPI                   float64 `json:"ipi"`
	OtherExpensesPerKg    float64 `json:"other_expenses_per_kg"`
	DeliveryTime          string  `json:"delivery_time"`

	PurchaseValueWithoutTaxes    float64 `json:"purchase_value_without_taxes"`
	WeightCorrectedPurchaseValue float64 `json:"weight_corrected_purchase_value"`
	SaleValueWithoutTaxes        float64 `json:"sale_value_without_taxes"`
	WeightDifference             float64 `json:"weight_difference"`
	WeightDifferenceDisplay      string  `json:"weight_difference_display"`
	UnitSaleValue                float64 `json:"unit_sale_value"`
	ProfitabilityPercentage      float64 `json:"profitability_percentage"`
	TotalProfitabilityPercentage float64 `json:"total_profitability_percentage"`
	CommissionPercentageActual   float64 `json:"commission_percentage_actual"`
	CommissionValue              float64 `json:"commission_value"`
	TotalPurchase                float64 `json:"total_purchase"`
	TotalSale                    float64 `json:"total_sale"`
	TotalSaleWithICMS            float64 `json:"total_sale_with_icms"`
	IPIValue                     float64 `json:"ipi_value"`
	TotalWithIPI                 float64 `json:"total_with_ipi"`
}

type BudgetResponse struct {
	ID               uint       `json:"id"`
	OrderNumber      string     `json:"order_number"`
	CreatedBy        string     `json:"created_by"`
	ClientName       string     `json:"client_name"`
	Status           string     `json:"status"`
	Notes            string     `json:"notes"`
	ExpiresAt        *time.Time `json:"expires_at"`
	Origin           string     `json:"origin"`
	PaymentCondition string     `json:"payment_condition"`
	FreightType      string     `json:"freight_type"`

	FreightValueTotal   float64 `json:"freight_value_total"`
	SharedOtherExpenses float64 `json:"outras_despesas_totais"`

	TotalPurchaseValue              float64 `json:"total_purchase_value"`
	TotalSaleValue                  float64 `json:"total_sale_value"`
	TotalSaleWithICMS               float64 `json:"total_sale_with_icms"`
	TotalCommission                 float64 `json:"total_commission"`
	ProfitabilityPercentage         float64 `json:"profitability_percentage"`
	MarkupPercentage                float64 `json:"markup_percentage"`
	TotalIPIValue                   float64 `json:"total_ipi_value"`
	TotalFinalValue                 float64 `json:"total_final_value"`
	TotalWeightDifferencePercentage float64 `json:"total_weight_difference_percentage"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Items []BudgetItemResponse `json:"items"`
}

func toBudgetResponse(b models.Budget) BudgetResponse {
	resp := BudgetResponse{
		ID:               b.ID,
		OrderNumber:      b.OrderNumber,
		CreatedBy:        b.CreatedBy,
		ClientName:       b.ClientName,
		Status:           string(b.Status),
		Notes:            b.Notes,
		ExpiresAt:        b.ExpiresAt,
		Origin:           b.Origin,
		PaymentCondition: b.PaymentCondition,
		FreightType:      string(b.FreightType),

		FreightValueTotal:   b.FreightValueTotal,
		SharedOtherExpenses: b.SharedOtherExpenses,

		TotalPurchaseValue:              b.TotalPurchaseValue,
		TotalSaleValue:                  b.TotalSaleValue,
		TotalSaleWithICMS:               b.TotalSaleWithICMS,
		TotalCommission:                 b.TotalCommission,
		ProfitabilityPercentage:         calc.RoundPercentDisplay(b.Profitability),
		MarkupPercentage:                calc.RoundPercentDisplay(b.Markup),
		TotalIPIValue:                   b.TotalIPIValue,
		TotalFinalValue:                 b.TotalFinalValue,
		TotalWeightDifferencePercentage: b.TotalWeightDifferencePct,

		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,

		Items: make([]BudgetItemResponse, 0, len(b.Items)),
	}

	for _, it := range b.Items {
		resp.Items = append(resp.Items, BudgetItemResponse{
			ID:       it.ID,
			Position: it.Position,

			Description:           it.Description,
			PurchaseWeight:        it.PurchaseWeight,
			SaleWeight:            it.SaleWeight,
			PurchaseValueWithICMS: it.PurchaseValueWithICMS,
			SaleValueWithICMS:     it.SaleValueWithICMS,
			ICMSPurchase:          it.ICMSPurchase,
			ICMSSale:              it.ICMSSale,
			IPI:                   it.IPI,
			OtherExpensesPerKg:    it.OtherExpensesPerKg,
			DeliveryTime:          it.DeliveryTime,

			PurchaseValueWithoutTaxes:    it.PurchaseValueWithoutTaxes,
			WeightCorrectedPurchaseValue: it.WeightCorrectedPurchaseValue,
			SaleValueWithoutTaxes:        it.SaleValueWithoutTaxes,
			WeightDifference:             it.WeightDifference,
			WeightDifferenceDisplay:      it.WeightDifferenceDisplay,
			UnitSaleValue:                it.UnitSaleValue,
			ProfitabilityPercentage:      calc.RoundPercentDisplay(it.UnitProfitability),
			TotalProfitabilityPercentage: calc.RoundPercentDisplay(it.TotalProfitability),
			CommissionPercentageActual:   calc.RoundPercentDisplay(it.CommissionPercentage),
			CommissionValue:              it.CommissionValue,
			TotalPurchase:                it.TotalPurchase,
			TotalSale:                    it.TotalSale,
			TotalSaleWithICMS:            it.TotalSaleWithICMS,
			IPIValue:                     it.IPIValue,
			TotalWithIPI:                 it.TotalWithIPI,
		})
	}

	return resp
}

// scopedQuery restringe a consulta ao dono, exceto para admin.
func scopedQuery(q *gorm.DB, actor auth.Actor) *gorm.DB {
	if actor.IsAdmin() {
		return q
	}
	return q.Where("created_by = ?", actor.Username)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLikePattern neutraliza os curingas do ILIKE para que o filtro de
// cliente seja sempre busca literal por prefixo.
func escapeLikePattern(s string) string {
	return likeEscaper.Replace(s)
}

func validationFailed(c *fiber.Ctx, msgs []string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": msgs})
}

// findBudgetScoped carrega um orçamento visível para o ator (itens ordenados).
// Invisível e inexistente são indistinguíveis: ambos retornam 404.
func findBudgetScoped(actor auth.Actor, id uint) (models.Budget, error) {
	var b models.Budget
	err := scopedQuery(database.DB, actor).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		First(&b, "id = ?", id).Error
	if err != nil {
		return models.Budget{}, fiber.NewError(fiber.StatusNotFound, "Orçamento não encontrado")
	}
	return b, nil
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "id inválido")
	}
	return uint(id), nil
}

// POST /api/budgets/calculate-simplified: pré-visualização, sem persistência.
func CalculateSimplifiedHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CalculateRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if len(body.Items) == 0 {
			return validationFailed(c, []string{"orçamento precisa de pelo menos um item"})
		}

		resp, _, _, err := Calculate(body.Items, body.FreightValueTotal, body.SharedOtherExpenses)
		if err != nil {
			if ve, ok := err.(*calc.ValidationError); ok {
				return validationFailed(c, ve.Messages)
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Erro no cálculo do orçamento")
		}

		return c.JSON(resp)
	}
}

// POST /api/budgets/ e POST /api/budgets/simplified: criação com persistência.
// O formulário completo pode mandar campos derivados; o servidor recalcula e
// sobrescreve todos eles.
func CreateBudgetHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := auth.ActorFromContext(c)
		if err != nil {
			return err
		}

		var body BudgetRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if msgs := ValidateBudgetInput(body, true); len(msgs) > 0 {
			return validationFailed(c, msgs)
		}

		_, computed, totals, err := Calculate(body.Items, body.FreightValueTotal, body.SharedOtherExpenses)
		if err != nil {
			if ve, ok := err.(*calc.ValidationError); ok {
				return validationFailed(c, ve.Messages)
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Erro no cálculo do orçamento")
		}

		b := PrepareForPersistence(body, computed, totals, actor)

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if b.OrderNumber == "" {
				number, err := NextOrderNumber(tx)
				if err != nil {
					return err
				}
				b.OrderNumber = number
			}
			return tx.Create(&b).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gravar o orçamento")
		}

		audit.WriteLog(audit.LogOptions{
			Username:    actor.Username,
			EntityType:  "budget",
			EntityID:    b.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("orçamento %s criado para %s", b.OrderNumber, b.ClientName),
			After:       toBudgetResponse(b),
		})

		return c.Status(fiber.StatusCreated).JSON(toBudgetResponse(b))
	}
}

// GET /api/budgets?status=&client_name=&order_number=&date_from=&date_to=&page=&page_size=
func ListBudgetsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := auth.ActorFromContext(c)
		if err != nil {
			return err
		}

		q := scopedQuery(database.DB.Model(&models.Budget{}), actor)

		if status := c.Query("status"); status != "" {
			if !models.BudgetStatus(status).Valid() {
				return fiber.NewError(fiber.StatusBadRequest, "status desconhecido: "+status)
			}
			q = q.Where("status = ?", status)
		}
		if client := c.Query("client_name"); client != "" {
			q = q.Where("client_name ILIKE ?", escapeLikePattern(client)+"%")
		}
		if number := c.Query("order_number"); number != "" {
			q = q.Where("order_number = ?", number)
		}
		if from := c.Query("date_from"); from != "" {
			t, err := time.Parse("2006-01-02", from)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "date_from inválido (use YYYY-MM-DD)")
			}
			q = q.Where("created_at >= ?", t)
		}
		if to := c.Query("date_to"); to != "" {
			t, err := time.Parse("2006-01-02", to)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "date_to inválido (use YYYY-MM-DD)")
			}
			// intervalo inclusivo no dia final
			q = q.Where("created_at < ?", t.AddDate(0, 0, 1))
		}

		page, _ := strconv.Atoi(c.Query("page", "1"))
		if page < 1 {
			page = 1
		}
		pageSize, _ := strconv.Atoi(c.Query("page_size", "20"))
		if pageSize < 1 || pageSize > 100 {
			pageSize = 20
		}

		var total int64
		if err := q.Count(&total).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os orçamentos")
		}

		var budgets []models.Budget
		err = q.Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
			Order("created_at desc").
			Offset((page - 1) * pageSize).
			Limit(pageSize).
			Find(&budgets).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os orçamentos")
		}

		items := make([]BudgetResponse, 0, len(budgets))
		for _, b := range budgets {
			items = append(items, toBudgetResponse(b))
		}

		return c.JSON(fiber.Map{
			"items":     items,
			"total":     total,
			"page":      page,
			"page_size": pageSize,
		})
	}
}

// GET /api/budgets/:id
func GetBudgetHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := auth.ActorFromContext(c)
		if err != nil {
			return err
		}
		id, err := parseID(c)
		if err != nil {
			return err
		}

		b, err := findBudgetScoped(actor, id)
		if err != nil {
			return err
		}
		return c.JSON(toBudgetResponse(b))
	}
}

type UpdateBudgetRequest struct {
	ClientName          *string        `json:"client_name"`
	OrderNumber         *string        `json:"order_number"`
	Status              *string        `json:"status"`
	Notes               *string        `json:"notes"`
	ExpiresAt           *time.Time     `json:"expires_at"`
	Origin              *string        `json:"origin"`
	PaymentCondition    *string        `json:"payment_condition"`
	FreightType         *string        `json:"freight_type"`
	FreightValueTotal   *float64       `json:"freight_value_total"`
	SharedOtherExpenses *float64       `json:"outras_despesas_totais"`
	Items               *[]ItemRequest `json:"items"`
}

func itemRequestsFromModel(items []models.BudgetItem) []ItemRequest {
	reqs := make([]ItemRequest, 0, len(items))
	for _, it := range items {
		reqs = append(reqs, ItemRequest{
			Description:           it.Description,
			PurchaseWeight:        it.PurchaseWeight,
			SaleWeight:            it.SaleWeight,
			PurchaseValueWithICMS: it.PurchaseValueWithICMS,
			SaleValueWithICMS:     it.SaleValueWithICMS,
			ICMSPurchase:          it.ICMSPurchase,
			ICMSSale:              it.ICMSSale,
			IPI:                   it.IPI,
			OtherExpensesPerKg:    it.OtherExpensesPerKg,
			DeliveryTime:          it.DeliveryTime,
		})
	}
	return reqs
}

// validateBudgetPatch acumula as mensagens de metadados e de itens num único
// lote, como na criação.
func validateBudgetPatch(patch UpdateBudgetRequest) []string {
	var msgs []string
	if patch.ClientName != nil && strings.TrimSpace(*patch.ClientName) == "" {
		msgs = append(msgs, "nome do cliente é obrigatório")
	}
	if patch.Status != nil && !models.BudgetStatus(*patch.Status).Valid() {
		msgs = append(msgs, fmt.Sprintf("status desconhecido: %q", *patch.Status))
	}
	if patch.FreightType != nil && *patch.FreightType != "" && !models.FreightType(*patch.FreightType).Valid() {
		msgs = append(msgs, fmt.Sprintf("tipo de frete desconhecido: %q (use FOB ou CIF)", *patch.FreightType))
	}
	if patch.Origin != nil && !models.ValidOrigin(*patch.Origin) {
		msgs = append(msgs, fmt.Sprintf("origem desconhecida: %q", *patch.Origin))
	}
	if patch.FreightValueTotal != nil && *patch.FreightValueTotal < 0 {
		msgs = append(msgs, "valor total de frete não pode ser negativo")
	}
	if patch.SharedOtherExpenses != nil && *patch.SharedOtherExpenses < 0 {
		msgs = append(msgs, "outras despesas totais não podem ser negativas")
	}
	if patch.Items != nil {
		if len(*patch.Items) == 0 {
			msgs = append(msgs, "orçamento precisa de pelo menos um item")
		}
		for i, it := range *patch.Items {
			for _, m := range calc.ValidateItem(toItemInput(it)) {
				msgs = append(msgs, fmt.Sprintf("item %d: %s", i+1, m))
			}
		}
	}
	return msgs
}

// applyBudgetPatch copia só os campos presentes no patch. Um patch vazio
// deixa o orçamento intocado e não pede recálculo.
func applyBudgetPatch(b *models.Budget, patch UpdateBudgetRequest) (recompute, replaceItems bool) {
	if patch.ClientName != nil {
		b.ClientName = strings.TrimSpace(*patch.ClientName)
	}
	if patch.OrderNumber != nil {
		b.OrderNumber = strings.TrimSpace(*patch.OrderNumber)
	}
	if patch.Status != nil {
		b.Status = models.BudgetStatus(*patch.Status)
	}
	if patch.Notes != nil {
		b.Notes = *patch.Notes
	}
	if patch.ExpiresAt != nil {
		b.ExpiresAt = patch.ExpiresAt
	}
	if patch.Origin != nil {
		b.Origin = *patch.Origin
	}
	if patch.PaymentCondition != nil {
		b.PaymentCondition = *patch.PaymentCondition
	}
	if patch.FreightType != nil {
		b.FreightType = models.FreightType(*patch.FreightType)
	}
	if patch.FreightValueTotal != nil {
		b.FreightValueTotal = *patch.FreightValueTotal
	}
	if patch.SharedOtherExpenses != nil {
		b.SharedOtherExpenses = *patch.SharedOtherExpenses
	}

	recompute = patch.Items != nil || patch.FreightValueTotal != nil || patch.SharedOtherExpenses != nil
	replaceItems = patch.Items != nil
	return recompute, replaceItems
}

// PUT /api/budgets/:id: patch de metadados e/ou itens. Itens novos (ou frete
// e despesas alterados) disparam recálculo; a troca do conjunto de itens é
// atômica na transação. created_by nunca muda.
func UpdateBudgetHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := auth.ActorFromContext(c)
		if err != nil {
			return err
		}
		id, err := parseID(c)
		if err != nil {
			return err
		}

		b, err := findBudgetScoped(actor, id)
		if err != nil {
			return err
		}
		before := toBudgetResponse(b)

		var patch UpdateBudgetRequest
		if err := c.BodyParser(&patch); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if msgs := validateBudgetPatch(patch); len(msgs) > 0 {
			return validationFailed(c, msgs)
		}

		recompute, replaceItems := applyBudgetPatch(&b, patch)

		var computed []calc.ItemComputed
		if recompute {
			itemReqs := itemRequestsFromModel(b.Items)
			if patch.Items != nil {
				itemReqs = *patch.Items
			}
			var totals calc.Totals
			_, computed, totals, err = Calculate(itemReqs, b.FreightValueTotal, b.SharedOtherExpenses)
			if err != nil {
				if ve, ok := err.(*calc.ValidationError); ok {
					return validationFailed(c, ve.Messages)
				}
				return fiber.NewError(fiber.StatusInternalServerError, "Erro no cálculo do orçamento")
			}

			b.TotalPurchaseValue = totals.TotalPurchaseValue
			b.TotalSaleValue = totals.TotalSaleValue
			b.TotalSaleWithICMS = totals.TotalSaleWithICMS
			b.TotalCommission = totals.TotalCommission
			b.Profitability = totals.Profitability
			b.Markup = totals.Markup
			b.TotalIPIValue = totals.TotalIPIValue
			b.TotalFinalValue = totals.TotalFinalValue
			b.TotalWeightDifferencePct = totals.TotalWeightDifferencePct
		}

		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if replaceItems {
				if err := tx.Where("budget_id = ?", b.ID).Delete(&models.BudgetItem{}).Error; err != nil {
					return err
				}
				newItems := buildItems(computed)
				for i := range newItems {
					newItems[i].BudgetID = b.ID
				}
				if len(newItems) > 0 {
					if err := tx.Create(&newItems).Error; err != nil {
						return err
					}
				}
				b.Items = newItems
			} else if recompute {
				// frete/despesas mudaram sem itens novos: atualiza os
				// derivados das linhas existentes mantendo os ids
				refreshed := buildItems(computed)
				for i := range b.Items {
					id, budgetID, createdAt := b.Items[i].ID, b.Items[i].BudgetID, b.Items[i].CreatedAt
					b.Items[i] = refreshed[i]
					b.Items[i].ID = id
					b.Items[i].BudgetID = budgetID
					b.Items[i].CreatedAt = createdAt
					if err := tx.Save(&b.Items[i]).Error; err != nil {
						return err
					}
				}
			}

			// Omit evita que o GORM regrave associações e o autor
			return tx.Omit("Items", "CreatedBy", "CreatedAt").Save(&b).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível atualizar o orçamento")
		}

		updated, err := findBudgetScoped(actor, b.ID)
		if err != nil {
			return err
		}

		audit.WriteLog(audit.LogOptions{
			Username:    actor.Username,
			EntityType:  "budget",
			EntityID:    b.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("orçamento %s atualizado", b.OrderNumber),
			Before:      before,
			After:       toBudgetResponse(updated),
		})

		return c.JSON(toBudgetResponse(updated))
	}
}

// DELETE /api/budgets/:id: remoção definitiva; itens caem em cascata.
func DeleteBudgetHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := auth.ActorFromContext(c)
		if err != nil {
			return err
		}
		id, err := parseID(c)
		if err != nil {
			return err
		}

		b, err := findBudgetScoped(actor, id)
		if err != nil {
			return err
		}
		before := toBudgetResponse(b)

		if err := database.DB.Delete(&models.Budget{}, b.ID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível excluir o orçamento")
		}

		audit.WriteLog(audit.LogOptions{
			Username:    actor.Username,
			EntityType:  "budget",
			EntityID:    b.ID,
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("orçamento %s excluído", b.OrderNumber),
			Before:      before,
		})

		return c.JSON(fiber.Map{"deleted": b.ID})
	}
}

// GET /api/budgets/:id/export-pdf?simplified=bool
func ExportPDFHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := auth.ActorFromContext(c)
		if err != nil {
			return err
		}
		id, err := parseID(c)
		if err != nil {
			return err
		}

		b, err := findBudgetScoped(actor, id)
		if err != nil {
			return err
		}

		simplified := c.Query("simplified") == "true"

		pdf, err := GeneratePDF(b, simplified)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar o PDF")
		}

		filename := fmt.Sprintf("orcamento-%s.pdf", b.OrderNumber)
		c.Set("Content-Type", "application/pdf")
		c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		return c.Send(pdf)
	}
}

// GET /api/budgets/export-excel: planilha com a listagem visível ao ator.
func ExportExcelHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, err := auth.ActorFromContext(c)
		if err != nil {
			return err
		}

		var budgets []models.Budget
		err = scopedQuery(database.DB, actor).
			Order("created_at desc").
			Find(&budgets).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível listar os orçamentos")
		}

		xlsx, err := GenerateBudgetListExcel(budgets)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Não foi possível gerar a planilha")
		}

		c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set("Content-Disposition", `attachment; filename="orcamentos.xlsx"`)
		return c.Send(xlsx)
	}
}
