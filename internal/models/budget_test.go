package models

import "testing"

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		in     BudgetStatus
		expect BudgetStatus
	}{
		{"expired", StatusSent},
		{"rejected", StatusLost},
		{StatusDraft, StatusDraft},
		{StatusPending, StatusPending},
		{StatusApproved, StatusApproved},
		{StatusLost, StatusLost},
		{StatusSent, StatusSent},
	}

	for _, tt := range tests {
		if got := NormalizeStatus(tt.in); got != tt.expect {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", tt.in, got, tt.expect)
		}
	}
}

func TestBudgetStatusValid(t *testing.T) {
	for _, s := range []BudgetStatus{StatusDraft, StatusPending, StatusApproved, StatusLost, StatusSent} {
		if !s.Valid() {
			t.Errorf("%q deveria ser válido", s)
		}
	}
	// legados são migrados na leitura, nunca aceitos na escrita
	for _, s := range []BudgetStatus{"expired", "rejected", "cancelado", ""} {
		if s.Valid() {
			t.Errorf("%q não deveria ser válido", s)
		}
	}
}

func TestAfterFindNormalizesLegacyStatus(t *testing.T) {
	b := Budget{Status: "expired"}
	if err := b.AfterFind(nil); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if b.Status != StatusSent {
		t.Errorf("Status = %q, want sent", b.Status)
	}
}

func TestFreightTypeValid(t *testing.T) {
	if !FreightFOB.Valid() || !FreightCIF.Valid() {
		t.Error("FOB e CIF deveriam ser válidos")
	}
	if FreightType("EXW").Valid() || FreightType("").Valid() {
		t.Error("tipo de frete desconhecido aceito")
	}
}

func TestValidOrigin(t *testing.T) {
	for _, o := range []string{"", "Orpen", "Email", "Google", "Telefone"} {
		if !ValidOrigin(o) {
			t.Errorf("origem %q deveria ser válida", o)
		}
	}
	if ValidOrigin("Fax") {
		t.Error("origem desconhecida aceita")
	}
}

func TestNormalizeRole(t *testing.T) {
	if NormalizeRole(RoleAdmin) != RoleAdmin {
		t.Error("admin deveria se manter")
	}
	for _, r := range []UserRole{RoleVendas, "gerente", ""} {
		if NormalizeRole(r) != RoleVendas {
			t.Errorf("papel %q deveria cair para vendas", r)
		}
	}
}
