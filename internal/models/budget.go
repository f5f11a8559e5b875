package models

import (
	"time"

	"gorm.io/gorm"
)

type BudgetStatus string

const (
	StatusDraft    BudgetStatus = "draft"
	StatusPending  BudgetStatus = "pending"
	StatusApproved BudgetStatus = "approved"
	StatusLost     BudgetStatus = "lost"
	StatusSent     BudgetStatus = "sent"
)

// Valores antigos que ainda podem existir no banco; mapeamento de leitura
// definido em NormalizeStatus (one-way).
const (
	legacyStatusExpired  BudgetStatus = "expired"
	legacyStatusRejected BudgetStatus = "rejected"
)

// NormalizeStatus converte estados legados para a taxonomia atual.
// expired → sent, rejected → lost. Valores atuais passam direto.
func NormalizeStatus(s BudgetStatus) BudgetStatus {
	switch s {
	case legacyStatusExpired:
		return StatusSent
	case legacyStatusRejected:
		return StatusLost
	default:
		return s
	}
}

func (s BudgetStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusApproved, StatusLost, StatusSent:
		return true
	}
	return false
}

type FreightType string

const (
	FreightFOB FreightType = "FOB"
	FreightCIF FreightType = "CIF"
)

func (f FreightType) Valid() bool {
	return f == FreightFOB || f == FreightCIF
}

// Origem do pedido (tag comercial, opcional).
var ValidOrigins = []string{"Orpen", "Email", "Google", "Telefone"}

func ValidOrigin(o string) bool {
	if o == "" {
		return true
	}
	for _, v := range ValidOrigins {
		if o == v {
			return true
		}
	}
	return false
}

// Budget: orçamento de venda (pedido) com seus itens.
// Os campos agregados são sempre recalculados a partir dos itens.
type Budget struct {
	ID          uint   `gorm:"primaryKey"`
	OrderNumber string `gorm:"size:20;index"` // PED-NNNN
	CreatedBy   string `gorm:"size:100;index;not null"`
	ClientName  string `gorm:"size:255;not null"`

	Status BudgetStatus `gorm:"size:20;not null;default:draft"`

	Notes            string `gorm:"type:text"`
	ExpiresAt        *time.Time
	Origin           string      `gorm:"size:20"`
	PaymentCondition string      `gorm:"size:50"` // ex: "28/35/42"
	FreightType      FreightType `gorm:"size:10"`

	FreightValueTotal   float64 `gorm:"not null;default:0"`
	SharedOtherExpenses float64 `gorm:"not null;default:0"`

	// Agregados derivados dos itens
	TotalPurchaseValue       float64 `gorm:"not null;default:0"`
	TotalSaleValue           float64 `gorm:"not null;default:0"` // sem impostos
	TotalSaleWithICMS        float64 `gorm:"not null;default:0"`
	TotalCommission          float64 `gorm:"not null;default:0"`
	Profitability            float64 `gorm:"not null;default:0"` // fração
	Markup                   float64 `gorm:"not null;default:0"` // fração
	TotalIPIValue            float64 `gorm:"not null;default:0"`
	TotalFinalValue          float64 `gorm:"not null;default:0"` // com IPI
	TotalWeightDifferencePct float64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Items []BudgetItem `gorm:"foreignKey:BudgetID;constraint:OnDelete:CASCADE"`
}

// AfterFind cobre linhas legadas gravadas por trás da migração de startup.
func (b *Budget) AfterFind(_ *gorm.DB) error {
	b.Status = NormalizeStatus(b.Status)
	return nil
}

// BudgetItem: linha do orçamento. Entradas do vendedor + valores derivados
// preenchidos exclusivamente pelo kernel de cálculo.
type BudgetItem struct {
	ID       uint `gorm:"primaryKey"`
	BudgetID uint `gorm:"index;not null"`
	Position int  `gorm:"not null;default:0"` // preserva a ordem de inserção

	Description string `gorm:"size:255"`

	// Entradas
	PurchaseWeight        float64 `gorm:"not null"`
	SaleWeight            float64 `gorm:"not null"` // 0 → assume PurchaseWeight
	PurchaseValueWithICMS float64 `gorm:"not null"` // R$/kg, com ICMS
	SaleValueWithICMS     float64 `gorm:"not null"` // R$/kg, com ICMS
	ICMSPurchase          float64 `gorm:"not null"` // fração [0,1)
	ICMSSale              float64 `gorm:"not null"`
	IPI                   float64 `gorm:"not null"`
	OtherExpensesPerKg    float64 `gorm:"not null;default:0"`
	DeliveryTime          string  `gorm:"size:100"`

	// Derivados
	PurchaseValueWithoutTaxes    float64 `gorm:"not null;default:0"`
	WeightCorrectedPurchaseValue float64 `gorm:"not null;default:0"`
	SaleValueWithoutTaxes        float64 `gorm:"not null;default:0"`
	WeightDifference             float64 `gorm:"not null;default:0"`
	WeightDifferenceDisplay      string  `gorm:"size:100"`
	UnitSaleValue                float64 `gorm:"not null;default:0"`
	UnitProfitability            float64 `gorm:"not null;default:0"`
	TotalProfitability           float64 `gorm:"not null;default:0"`
	CommissionPercentage         float64 `gorm:"not null;default:0"` // fração
	CommissionValue              float64 `gorm:"not null;default:0"`
	TotalPurchase                float64 `gorm:"not null;default:0"`
	TotalSale                    float64 `gorm:"not null;default:0"`
	TotalSaleWithICMS            float64 `gorm:"not null;default:0"`
	IPIValue                     float64 `gorm:"not null;default:0"`
	TotalWithIPI                 float64 `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
