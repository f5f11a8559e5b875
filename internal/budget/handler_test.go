package budget

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"orcamento-backend/internal/auth"
	"orcamento-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRunDB abre uma sessão GORM que só monta SQL, sem conectar no banco.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test dbname=test",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("abrir sessão dry run: %v", err)
	}
	return db
}

func sampleStoredBudget() models.Budget {
	expires := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	return models.Budget{
		ID:               7,
		OrderNumber:      "PED-0007",
		CreatedBy:        "joana",
		ClientName:       "Metalúrgica Silva",
		Status:           models.StatusSent,
		Notes:            "entrega parcial ok",
		ExpiresAt:        &expires,
		Origin:           "Email",
		PaymentCondition: "28 dias",
		FreightType:      models.FreightCIF,

		FreightValueTotal:   250,
		SharedOtherExpenses: 80,

		TotalPurchaseValue:       744.15,
		TotalSaleValue:           892.98,
		TotalSaleWithICMS:        1071.58,
		TotalCommission:          8.93,
		Profitability:            0.2,
		Markup:                   0.2,
		TotalIPIValue:            0,
		TotalFinalValue:          1071.58,
		TotalWeightDifferencePct: 0,
		CreatedAt:                time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),

		Items: []models.BudgetItem{
			{
				ID:                    31,
				BudgetID:              7,
				Position:              0,
				Description:           "Chapa A36 3mm",
				PurchaseWeight:        10,
				SaleWeight:            10,
				PurchaseValueWithICMS: 100,
				SaleValueWithICMS:     120,
				ICMSPurchase:          0.18,
				ICMSSale:              0.18,
				DeliveryTime:          "10 dias",
			},
		},
	}
}

func TestScopedQueryFiltersByOwner(t *testing.T) {
	db := dryRunDB(t)

	var out []models.Budget
	vendas := auth.Actor{Username: "joana", Role: models.RoleVendas}
	stmt := scopedQuery(db.Model(&models.Budget{}), vendas).Find(&out).Statement

	sql := stmt.SQL.String()
	if !strings.Contains(sql, "created_by = $1") {
		t.Fatalf("consulta de vendas sem filtro de dono: %q", sql)
	}
	if len(stmt.Vars) == 0 || stmt.Vars[0] != "joana" {
		t.Errorf("filtro de dono com vars %v, esperava primeiro = joana", stmt.Vars)
	}
}

func TestScopedQueryAdminSeesAll(t *testing.T) {
	db := dryRunDB(t)

	var out []models.Budget
	admin := auth.Actor{Username: "chefe", Role: models.RoleAdmin}
	stmt := scopedQuery(db.Model(&models.Budget{}), admin).Find(&out).Statement

	if sql := stmt.SQL.String(); strings.Contains(sql, "created_by") {
		t.Errorf("consulta de admin não deveria filtrar por dono: %q", sql)
	}
}

func TestEmptyPatchLeavesBudgetUntouched(t *testing.T) {
	b := sampleStoredBudget()
	orig := b
	orig.Items = append([]models.BudgetItem(nil), b.Items...)

	recompute, replaceItems := applyBudgetPatch(&b, UpdateBudgetRequest{})

	if recompute || replaceItems {
		t.Fatalf("patch vazio pediu recompute=%v replaceItems=%v", recompute, replaceItems)
	}
	if !reflect.DeepEqual(b, orig) {
		t.Errorf("patch vazio alterou o orçamento:\nantes: %+v\ndepois: %+v", orig, b)
	}
}

func TestMetadataSaveKeepsAuthorAndCreationDate(t *testing.T) {
	db := dryRunDB(t)
	b := sampleStoredBudget()

	stmt := db.Omit("Items", "CreatedBy", "CreatedAt").Save(&b).Statement
	sql := stmt.SQL.String()

	if !strings.Contains(sql, "UPDATE") {
		t.Fatalf("esperava UPDATE, veio %q", sql)
	}
	if strings.Contains(sql, `"created_by"`) {
		t.Errorf("save de metadados regrava o autor: %q", sql)
	}
	if strings.Contains(sql, `"created_at"`) {
		t.Errorf("save de metadados regrava a data de criação: %q", sql)
	}
	if !strings.Contains(sql, `"updated_at"`) {
		t.Errorf("save de metadados deveria tocar updated_at: %q", sql)
	}
}

func TestEscapeLikePattern(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Aço Forte", "Aço Forte"},
		{"100%", `100\%`},
		{"a_b", `a\_b`},
		{`c:\temp`, `c:\\temp`},
		{"%_", `\%\_`},
	}
	for _, c := range cases {
		if got := escapeLikePattern(c.in); got != c.want {
			t.Errorf("escapeLikePattern(%q) = %q, esperava %q", c.in, got, c.want)
		}
	}
}

func TestValidateBudgetPatchCollectsAllMessages(t *testing.T) {
	empty := ""
	badStatus := "expired"
	items := []ItemRequest{
		{Description: "Chapa", PurchaseWeight: 0, SaleValueWithICMS: 120, ICMSPurchase: 18},
	}
	patch := UpdateBudgetRequest{
		ClientName: &empty,
		Status:     &badStatus,
		Items:      &items,
	}

	msgs := validateBudgetPatch(patch)
	if len(msgs) < 4 {
		t.Fatalf("esperava lote com metadados e itens juntos, veio %v", msgs)
	}

	wantFragments := []string{
		"nome do cliente",
		"status desconhecido",
		"item 1: peso de compra deve ser maior que zero",
		"item 1: alíquota icms_compra deve ser fração em [0, 1), ex: 0.18 e não 18",
	}
	for _, frag := range wantFragments {
		found := false
		for _, m := range msgs {
			if strings.Contains(m, frag) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("lote sem a mensagem %q: %v", frag, msgs)
		}
	}
}
