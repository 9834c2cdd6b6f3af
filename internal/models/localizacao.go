package models

import "time"

// Tipos de checkpoint de localização.
const (
	LocSaida       = "SAIDA"
	LocChegada     = "CHEGADA"
	LocFinalizacao = "FINALIZACAO"
)

type AgendamentoLocalizacao struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AgendamentoChave uint `gorm:"index" json:"agendamentoChave"`

	Tipo     string   `gorm:"size:15;not null" json:"tipo"`
	Lat      float64  `json:"lat"`
	Lng      float64  `json:"lng"`
	Precisao *float64 `json:"precisao"`
	Origem   string   `gorm:"size:30" json:"origem"`

	DataHora time.Time `json:"dataHora"`
}
