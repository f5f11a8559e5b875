package budget

import (
	"fmt"

	"orcamento-backend/internal/models"

	"gorm.io/gorm"
)

const orderNumberPrefix = "PED-"

// NextOrderNumber gera o próximo número de pedido (PED-0001, PED-0002, ...).
// Consulta o maior número existente e incrementa; unicidade não é garantida
// por constraint, então colisão é tolerada (e improvável dentro da transação).
func NextOrderNumber(tx *gorm.DB) (string, error) {
	var existing []string
	err := tx.Model(&models.Budget{}).
		Where("order_number LIKE ?", orderNumberPrefix+"%").
		Pluck("order_number", &existing).Error
	if err != nil {
		return "", fmt.Errorf("consultar números de pedido: %w", err)
	}

	return fmt.Sprintf("%s%04d", orderNumberPrefix, maxSequence(existing)+1), nil
}

func maxSequence(numbers []string) int {
	max := 0
	for _, n := range numbers {
		var seq int
		if _, err := fmt.Sscanf(n, orderNumberPrefix+"%d", &seq); err == nil && seq > max {
			max = seq
		}
	}
	return max
}
