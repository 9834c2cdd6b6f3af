package models

import "time"

// Encaixe é uma solicitação avulsa/urgente, mais leve que um
// agendamento, que pode ser promovida a um via conversão.
type Encaixe struct {
	Chave uint `gorm:"primaryKey" json:"chave"`

	// Preenchido uma única vez na conversão; nunca reatribuído.
	ChaveAgendamento *uint `json:"chaveAgendamento"`

	CodigoCliente *uint  `json:"codigoCliente"`
	NomeCliente   string `gorm:"size:150" json:"nomeCliente"`
	FoneCliente   string `gorm:"size:20" json:"foneCliente"`

	CodigoResponsavel *uint `json:"codigoResponsavel"`

	TipoSolicitacao string `gorm:"size:1" json:"tipoSolicitacao"`
	TipoUrgencia    string `gorm:"size:1;default:'M'" json:"tipoUrgencia"`
	Observacao      string `gorm:"type:text" json:"observacao"`

	// A (aberto) / P (aguardando) / C (convertido) / E (excluído).
	Status string `gorm:"size:1;default:'A'" json:"status"`

	UsuarioAbertura *uint `json:"usuarioAbertura"`
	UsuarioExclusao *uint `json:"usuarioExclusao"`

	DataHoraAbertura time.Time  `json:"dataHoraAbertura"`
	DataHoraFinal    *time.Time `json:"dataHoraFinal"`
	DataHoraExclusao *time.Time `json:"dataHoraExclusao"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
