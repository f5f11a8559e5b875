package budget

import (
	"strings"
	"testing"

	"orcamento-backend/internal/auth"
	"orcamento-backend/internal/calc"
	"orcamento-backend/internal/models"
)

func validItem() ItemRequest {
	return ItemRequest{
		Description:           "Chapa A36 3mm",
		PurchaseWeight:        10,
		SaleWeight:            10,
		PurchaseValueWithICMS: 100,
		SaleValueWithICMS:     120,
		ICMSPurchase:          0.18,
		ICMSSale:              0.18,
	}
}

func validRequest() BudgetRequest {
	return BudgetRequest{
		ClientName:  "Metalúrgica Silva",
		FreightType: "CIF",
		Items:       []ItemRequest{validItem()},
	}
}

func TestValidateBudgetInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*BudgetRequest)
		want    string
		wantLen int
	}{
		{"válido", func(r *BudgetRequest) {}, "", 0},
		{"sem cliente", func(r *BudgetRequest) { r.ClientName = "  " }, "nome do cliente", 1},
		{"sem itens", func(r *BudgetRequest) { r.Items = nil }, "pelo menos um item", 1},
		{"status desconhecido", func(r *BudgetRequest) { r.Status = "cancelado" }, "status desconhecido", 1},
		{"frete desconhecido", func(r *BudgetRequest) { r.FreightType = "EXW" }, "tipo de frete", 1},
		{"origem desconhecida", func(r *BudgetRequest) { r.Origin = "Fax" }, "origem desconhecida", 1},
		{"frete negativo", func(r *BudgetRequest) { r.FreightValueTotal = -10 }, "frete não pode ser negativo", 1},
		{"despesas negativas", func(r *BudgetRequest) { r.SharedOtherExpenses = -1 }, "despesas totais", 1},
		{"status legado rejeitado na entrada", func(r *BudgetRequest) { r.Status = "expired" }, "status desconhecido", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			msgs := ValidateBudgetInput(req, true)
			if len(msgs) != tt.wantLen {
				t.Fatalf("esperava %d mensagens, veio %d: %v", tt.wantLen, len(msgs), msgs)
			}
			if tt.want != "" && !strings.Contains(strings.Join(msgs, "; "), tt.want) {
				t.Errorf("mensagem %q ausente em: %v", tt.want, msgs)
			}
		})
	}
}

func TestValidateBudgetInputBatchesItemErrors(t *testing.T) {
	req := validRequest()
	bad := validItem()
	bad.PurchaseWeight = 0
	bad.ICMSSale = 18
	req.ClientName = ""
	req.Items = append(req.Items, bad)

	msgs := ValidateBudgetInput(req, true)
	joined := strings.Join(msgs, "; ")

	// erros de cabeçalho e de item saem juntos, sem curto-circuito
	for _, want := range []string{"nome do cliente", "item 2: peso de compra", "item 2: alíquota icms_venda"} {
		if !strings.Contains(joined, want) {
			t.Errorf("mensagem %q ausente em: %v", want, msgs)
		}
	}
}

func TestValidateBudgetInputItemsOptionalOnUpdate(t *testing.T) {
	req := validRequest()
	req.Items = nil
	if msgs := ValidateBudgetInput(req, false); len(msgs) != 0 {
		t.Errorf("patch sem itens deveria passar: %v", msgs)
	}
}

func TestCalculateShapesDisplayPercentages(t *testing.T) {
	resp, _, _, err := Calculate([]ItemRequest{validItem()}, 0, 0)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(resp.ItemsCalculations) != 1 {
		t.Fatalf("esperava 1 item, veio %d", len(resp.ItemsCalculations))
	}
	it := resp.ItemsCalculations[0]

	// fração 0.20 → 20.00 na borda de exibição
	if resp.ProfitabilityPercentage != 20 {
		t.Errorf("ProfitabilityPercentage = %v, want 20", resp.ProfitabilityPercentage)
	}
	if resp.MarkupPercentage != 20 {
		t.Errorf("MarkupPercentage = %v, want 20", resp.MarkupPercentage)
	}
	if it.CommissionPercentageActual != 1 {
		t.Errorf("CommissionPercentageActual = %v, want 1", it.CommissionPercentageActual)
	}
	if it.ProfitabilityPercentage != 20 {
		t.Errorf("ProfitabilityPercentage do item = %v, want 20", it.ProfitabilityPercentage)
	}
	if resp.TotalSaleValue != 892.98 {
		t.Errorf("TotalSaleValue = %v, want 892.98", resp.TotalSaleValue)
	}
	if resp.TotalSaleWithICMS != 1200 {
		t.Errorf("TotalSaleWithICMS = %v, want 1200", resp.TotalSaleWithICMS)
	}
}

func TestCalculateRejectsInvalidItems(t *testing.T) {
	bad := validItem()
	bad.ICMSPurchase = 1.5

	_, _, _, err := Calculate([]ItemRequest{bad}, 0, 0)
	if err == nil {
		t.Fatal("esperava erro de validação")
	}
	if _, ok := err.(*calc.ValidationError); !ok {
		t.Fatalf("esperava *calc.ValidationError, veio %T", err)
	}
}

func TestPrepareForPersistence(t *testing.T) {
	actor := auth.Actor{Username: "joao", Role: models.RoleVendas}
	req := validRequest()
	req.Notes = "entrega parcial ok"
	req.PaymentCondition = "28/35/42"

	_, computed, totals, err := Calculate(req.Items, req.FreightValueTotal, req.SharedOtherExpenses)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	b := PrepareForPersistence(req, computed, totals, actor)

	if b.CreatedBy != "joao" {
		t.Errorf("CreatedBy = %q, want joao", b.CreatedBy)
	}
	if b.Status != models.StatusDraft {
		t.Errorf("status padrão = %q, want draft", b.Status)
	}
	if b.OrderNumber != "" {
		t.Errorf("OrderNumber deveria ficar vazio até a transação de criação, veio %q", b.OrderNumber)
	}
	if b.ClientName != "Metalúrgica Silva" {
		t.Errorf("ClientName = %q", b.ClientName)
	}
	if len(b.Items) != 1 {
		t.Fatalf("esperava 1 item, veio %d", len(b.Items))
	}
	if b.Items[0].Position != 0 {
		t.Errorf("Position = %d, want 0", b.Items[0].Position)
	}
	if b.Items[0].UnitProfitability == 0 {
		t.Error("derivados do item não foram preenchidos")
	}
	if b.TotalSaleValue != totals.TotalSaleValue {
		t.Errorf("TotalSaleValue = %v, want %v", b.TotalSaleValue, totals.TotalSaleValue)
	}
}

func TestPrepareForPersistenceKeepsExplicitFields(t *testing.T) {
	actor := auth.Actor{Username: "maria", Role: models.RoleAdmin}
	req := validRequest()
	req.Status = "pending"
	req.OrderNumber = " PED-0042 "

	_, computed, totals, err := Calculate(req.Items, 0, 0)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	b := PrepareForPersistence(req, computed, totals, actor)
	if b.Status != models.StatusPending {
		t.Errorf("Status = %q, want pending", b.Status)
	}
	if b.OrderNumber != "PED-0042" {
		t.Errorf("OrderNumber = %q, want PED-0042", b.OrderNumber)
	}
}

func TestPrepareForPersistencePreservesItemOrder(t *testing.T) {
	req := validRequest()
	second := validItem()
	second.Description = "Tubo 2\" sch40"
	third := validItem()
	third.Description = "Cantoneira 1/4"
	req.Items = append(req.Items, second, third)

	_, computed, totals, err := Calculate(req.Items, 0, 0)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	b := PrepareForPersistence(req, computed, totals, auth.Actor{Username: "joao", Role: models.RoleVendas})

	wantOrder := []string{"Chapa A36 3mm", "Tubo 2\" sch40", "Cantoneira 1/4"}
	for i, it := range b.Items {
		if it.Position != i {
			t.Errorf("item %d: Position = %d", i, it.Position)
		}
		if it.Description != wantOrder[i] {
			t.Errorf("item %d: Description = %q, want %q", i, it.Description, wantOrder[i])
		}
	}
}
