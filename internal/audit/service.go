package audit

import (
	"encoding/json"
	"log"

	"orcamento-backend/internal/database"
	"orcamento-backend/internal/models"
)

type LogOptions struct {
	Username    string
	EntityType  string
	EntityID    uint
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

// WriteLog grava uma entrada de auditoria. Falha aqui nunca derruba a
// requisição que originou o evento: o erro é logado e engolido.
func WriteLog(opts LogOptions) {
	// jsonb não aceita string vazia; usamos o literal "null"
	beforeStr := "null"
	afterStr := "null"

	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			beforeStr = string(b)
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	entry := models.AuditLog{
		Username:    opts.Username,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  beforeStr,
		AfterData:   afterStr,
	}

	if err := database.DB.Create(&entry).Error; err != nil {
		log.Printf("Falha ao gravar audit log (%s %s #%d): %v",
			opts.Action, opts.EntityType, opts.EntityID, err)
	}
}
