package models

import "time"

// Agendamento é uma visita técnica agendada. Os dados do cliente são
// copiados no momento da criação/edição (snapshot, não sincronizado).
type Agendamento struct {
	Chave uint `gorm:"primaryKey" json:"chave"`

	CodigoCliente   uint    `json:"codigoCliente"`
	Cliente         Cliente `gorm:"foreignKey:CodigoCliente;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"cliente"`
	NomeCliente     string  `gorm:"size:150" json:"nomeCliente"`
	FoneCliente     string  `gorm:"size:20" json:"foneCliente"`
	EnderecoCliente string  `gorm:"size:255" json:"enderecoCliente"`

	CodigoResponsavel *uint        `json:"codigoResponsavel"`
	Tecnico           *Funcionario `gorm:"foreignKey:CodigoResponsavel;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"tecnico,omitempty"`

	SecretariaUsuarioID *uint `json:"secretariaUsuarioId"`

	Titulo     string `gorm:"size:100" json:"titulo"`
	Prioridade string `gorm:"size:10" json:"prioridade"`
	CodLoja    uint   `json:"codLoja"`
	CodGrupo   uint   `json:"codigoGrupo"`
	Inativo    string `gorm:"size:1;default:'N'" json:"inativo"`

	// Código de status de duas letras (AB/EM/AN/CO/CA).
	StatusAg string `gorm:"size:2;default:'AB'" json:"statusAg"`

	AgendaAbertura string `gorm:"type:text" json:"agendaAbertura"`
	AgendaRetorno  string `gorm:"type:text" json:"agendaRetorno"`

	MotivoCancelamento string `gorm:"size:255" json:"motivoCancelamento"`
	AssinaturaURL      string `gorm:"size:255" json:"assinaturaUrl"`

	DataHoraAbertura time.Time  `json:"dataHoraAbertura"`
	DataHoraInicial  time.Time  `json:"dataHoraInicial"`
	DataHoraSaida    *time.Time `json:"dataHoraSaida"`
	DataHoraChegada  *time.Time `json:"dataHoraChegada"`
	DataHoraFinal    *time.Time `json:"dataHoraFinal"`

	// Derivados dos timestamps acima; nunca editados diretamente.
	TempoDeslocamentoMin *int `json:"tempoDeslocamentoMin"`
	TempoAtendimentoMin  *int `json:"tempoAtendimentoMin"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
