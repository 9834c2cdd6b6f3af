package dto

import (
	"time"

	domain "github.com/syndata/field-scheduler/internal/domain/agendamento"
	"github.com/syndata/field-scheduler/internal/models"
)

// AgendamentoListDTO é a forma canônica exposta nas listagens. Toda a
// variação de nomes do legado fica na borda (ver normalize.go); daqui
// para dentro só existe este shape.
type AgendamentoListDTO struct {
	Chave uint `json:"chave"`

	CodigoCliente   uint   `json:"codigoCliente"`
	NomeCliente     string `json:"nomeCliente"`
	FoneCliente     string `json:"foneCliente"`
	EnderecoCliente string `json:"enderecoCliente"`

	CodigoResponsavel *uint  `json:"codigoResponsavel"`
	Titulo            string `json:"titulo"`
	Prioridade        string `json:"prioridade"`

	StatusAg string `json:"statusAg"`
	Status   string `json:"status"`

	DataHoraInicial time.Time  `json:"dataHoraInicial"`
	DataHoraSaida   *time.Time `json:"dataHoraSaida"`
	DataHoraChegada *time.Time `json:"dataHoraChegada"`
	DataHoraFinal   *time.Time `json:"dataHoraFinal"`

	TempoDeslocamentoMin *int `json:"tempoDeslocamentoMin"`
	TempoAtendimentoMin  *int `json:"tempoAtendimentoMin"`

	AgendaRetorno string `json:"agendaRetorno"`

	SlotID *int `json:"slotId"`
}

func FromAgendamento(ap *models.Agendamento) AgendamentoListDTO {
	d := AgendamentoListDTO{
		Chave: ap.Chave,

		CodigoCliente:   ap.CodigoCliente,
		NomeCliente:     ap.NomeCliente,
		FoneCliente:     ap.FoneCliente,
		EnderecoCliente: ap.EnderecoCliente,

		CodigoResponsavel: ap.CodigoResponsavel,
		Titulo:            ap.Titulo,
		Prioridade:        ap.Prioridade,

		StatusAg: domain.StatusOf(ap).Code(),
		Status:   string(domain.StatusOf(ap)),

		DataHoraInicial: ap.DataHoraInicial,
		DataHoraSaida:   ap.DataHoraSaida,
		DataHoraChegada: ap.DataHoraChegada,
		DataHoraFinal:   ap.DataHoraFinal,

		TempoDeslocamentoMin: ap.TempoDeslocamentoMin,
		TempoAtendimentoMin:  ap.TempoAtendimentoMin,

		AgendaRetorno: ap.AgendaRetorno,
	}

	if slot, ok := domain.SlotFor(ap.DataHoraInicial); ok {
		d.SlotID = &slot
	}

	return d
}

// ======================================================
// DETALHE
// ======================================================

type AgendamentoDetalheDTO struct {
	AgendamentoListDTO

	AgendaAbertura     string `json:"agendaAbertura"`
	MotivoCancelamento string `json:"motivoCancelamento"`
	AssinaturaURL      string `json:"assinaturaUrl"`

	SecretariaUsuarioID *uint  `json:"secretariaUsuarioId"`
	TecnicoNome         string `json:"tecnicoNome,omitempty"`

	DataHoraAbertura time.Time `json:"dataHoraAbertura"`
}

func DetalheFromAgendamento(ap *models.Agendamento) AgendamentoDetalheDTO {
	d := AgendamentoDetalheDTO{
		AgendamentoListDTO: FromAgendamento(ap),

		AgendaAbertura:     ap.AgendaAbertura,
		MotivoCancelamento: ap.MotivoCancelamento,
		AssinaturaURL:      ap.AssinaturaURL,

		SecretariaUsuarioID: ap.SecretariaUsuarioID,
		DataHoraAbertura:    ap.DataHoraAbertura,
	}

	if ap.Tecnico != nil {
		d.TecnicoNome = ap.Tecnico.Name
	}

	return d
}

// ======================================================
// GRADE
// ======================================================

type GradeCelulaDTO struct {
	TecnicoID   uint               `json:"tecnicoId"`
	SlotID      int                `json:"slotId"`
	Agendamento AgendamentoListDTO `json:"agendamento"`
}

type GradeDTO struct {
	Data    string           `json:"data"`
	Slots   []domain.Slot    `json:"slots"`
	Celulas []GradeCelulaDTO `json:"celulas"`
}
