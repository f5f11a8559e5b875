package models

import "time"

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleVendas UserRole = "vendas"
)

// NormalizeRole: papéis desconhecidos caem para vendas (menor privilégio).
func NormalizeRole(r UserRole) UserRole {
	if r == RoleAdmin {
		return RoleAdmin
	}
	return RoleVendas
}

type User struct {
	ID           uint     `gorm:"primaryKey"`
	Username     string   `gorm:"size:100;uniqueIndex;not null"`
	Name         string   `gorm:"size:100"`
	PasswordHash string   `gorm:"size:255;not null"`
	Role         UserRole `gorm:"size:20;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
