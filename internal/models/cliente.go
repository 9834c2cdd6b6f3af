package models

import "time"

// Cliente é entidade de referência (somente leitura nesta API).
type Cliente struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome string `gorm:"size:150;not null" json:"nome"`
	Cpf  string `gorm:"size:14" json:"cpf"`
	Cnpj string `gorm:"size:18" json:"cnpj"`
	Fone string `gorm:"size:20" json:"fone"`

	Endereco            string `gorm:"size:255" json:"endereco"`
	EnderecoNumero      string `gorm:"size:10" json:"enderecoNumero"`
	EnderecoComplemento string `gorm:"size:50" json:"enderecoComplemento"`
	Bairro              string `gorm:"size:80" json:"bairro"`
	Cidade              string `gorm:"size:80" json:"cidade"`
	Cep                 string `gorm:"size:10" json:"cep"`

	Empresa  *uint `json:"empresa"`
	CodGrupo *uint `json:"codGrupo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
