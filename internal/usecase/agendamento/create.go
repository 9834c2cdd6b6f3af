package agendamento

import (
	"context"
	"time"

	"github.com/syndata/field-scheduler/internal/audit"
	domain "github.com/syndata/field-scheduler/internal/domain/agendamento"
	"github.com/syndata/field-scheduler/internal/httperr"
	"github.com/syndata/field-scheduler/internal/models"
	"github.com/syndata/field-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAgendamentoInput struct {
	CodigoCliente     uint
	CodigoResponsavel *uint

	SecretariaUsuarioID uint

	Titulo     string
	Prioridade string
	CodLoja    uint
	CodGrupo   uint

	AgendaAbertura string

	Data string // "2006-01-02"
	Hora string // "15:04"
}

// ======================================================
// USE CASE
// ======================================================

type CreateAgendamento struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAgendamento(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAgendamento {
	return &CreateAgendamento{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAgendamento) Execute(
	ctx context.Context,
	in CreateAgendamentoInput,
) (*models.Agendamento, error) {

	// --------------------------------------------------
	// Data / hora local (parede, sem normalização)
	// --------------------------------------------------
	inicio, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Data+" "+in.Hora,
		timezone.Location(""),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// Snapshot do cliente
	// --------------------------------------------------
	cliente, err := uc.repo.GetCliente(ctx, in.CodigoCliente)
	if err != nil {
		return nil, httperr.ErrBusiness("cliente_not_found")
	}

	now := timezone.Now()

	ap := &models.Agendamento{
		CodigoCliente:   cliente.ID,
		NomeCliente:     cliente.Nome,
		FoneCliente:     cliente.Fone,
		EnderecoCliente: enderecoCompleto(cliente),

		CodigoResponsavel:   in.CodigoResponsavel,
		SecretariaUsuarioID: &in.SecretariaUsuarioID,

		Titulo:     in.Titulo,
		Prioridade: in.Prioridade,
		CodLoja:    in.CodLoja,
		CodGrupo:   in.CodGrupo,
		Inativo:    "N",

		StatusAg:       domain.InitialStatus().Code(),
		AgendaAbertura: in.AgendaAbertura,

		DataHoraAbertura: now,
		DataHoraInicial:  inicio,
	}

	if err := uc.repo.CreateAgendamento(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.SecretariaUsuarioID,
		Action:   "agendamento_criado",
		Entity:   "agendamento",
		EntityID: &ap.Chave,
	})

	return ap, nil
}

func enderecoCompleto(c *models.Cliente) string {
	endereco := c.Endereco
	if c.EnderecoNumero != "" {
		endereco += ", " + c.EnderecoNumero
	}
	if c.Bairro != "" {
		endereco += " - " + c.Bairro
	}
	if c.Cidade != "" {
		endereco += " - " + c.Cidade
	}
	return endereco
}
