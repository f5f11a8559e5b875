package database

import (
	"log"

	"orcamento-backend/internal/config"
	"orcamento-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Não foi possível conectar ao banco: %v", err)
	}

	// Migração manual de status legados (ANTES do AutoMigrate).
	// A taxonomia mudou ao longo do tempo: expired → sent, rejected → lost.
	// O hook AfterFind cobre qualquer linha gravada depois por caminho antigo.
	if DB.Migrator().HasTable(&models.Budget{}) {
		var legacyCount int64
		DB.Raw("SELECT COUNT(*) FROM budgets WHERE status IN ('expired', 'rejected')").Scan(&legacyCount)
		if legacyCount > 0 {
			log.Printf("Migrando %d orçamentos com status legado...", legacyCount)
			if err := DB.Exec("UPDATE budgets SET status = 'sent' WHERE status = 'expired'").Error; err != nil {
				log.Printf("Erro migrando status expired: %v", err)
			}
			if err := DB.Exec("UPDATE budgets SET status = 'lost' WHERE status = 'rejected'").Error; err != nil {
				log.Printf("Erro migrando status rejected: %v", err)
			}
			log.Println("Migração de status concluída")
		}
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Budget{},
		&models.BudgetItem{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("Erro no AutoMigrate: %v", err)
	}

	// Índice para a listagem filtrada (status + dono é o filtro mais comum)
	DB.Exec("CREATE INDEX IF NOT EXISTS idx_budgets_created_by_status ON budgets(created_by, status)")

	log.Println("Conexão com o banco OK. Migração concluída.")
}
