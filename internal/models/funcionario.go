package models

import "time"

// Papéis de acesso.
const (
	RoleSecretaria = "secretaria"
	RoleTecnico    = "tecnico"
)

type Funcionario struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Usuario      string `gorm:"size:50;uniqueIndex;not null" json:"usuario"`
	Email        string `gorm:"size:100" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'tecnico'" json:"role"`

	Ativo bool `gorm:"default:true" json:"ativo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
