package agendamento

import (
	"context"

	"github.com/syndata/field-scheduler/internal/audit"
	domain "github.com/syndata/field-scheduler/internal/domain/agendamento"
	"github.com/syndata/field-scheduler/internal/httperr"
	"github.com/syndata/field-scheduler/internal/models"
	"github.com/syndata/field-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

// AtualizarAgendamentoInput é a edição da secretaria. Campos nil não
// são tocados. Mudança de data/hora passa pelo guard de remarcação
// (motivo obrigatório quando a data/hora realmente muda).
type AtualizarAgendamentoInput struct {
	Chave     uint
	UsuarioID uint

	DataHoraInicial *string // "2006-01-02T15:04:05"
	Motivo          string

	CodigoResponsavel *uint
	Titulo            *string
	Prioridade        *string
	AgendaRetorno     *string
	AssinaturaBase64  string
}

// ======================================================
// USE CASE
// ======================================================

type AtualizarAgendamento struct {
	repo       domain.Repository
	assinatura SignatureStore
	audit      *audit.Dispatcher
}

func NewAtualizarAgendamento(
	repo domain.Repository,
	assinatura SignatureStore,
	audit *audit.Dispatcher,
) *AtualizarAgendamento {
	return &AtualizarAgendamento{
		repo:       repo,
		assinatura: assinatura,
		audit:      audit,
	}
}

func (uc *AtualizarAgendamento) Execute(
	ctx context.Context,
	in AtualizarAgendamentoInput,
) (*models.Agendamento, error) {

	ap, err := uc.repo.GetAgendamento(ctx, in.Chave)
	if err != nil {
		return nil, httperr.ErrBusiness("agendamento_not_found")
	}

	// --------------------------------------------------
	// Remarcação (quando veio data/hora)
	// --------------------------------------------------
	if in.DataHoraInicial != nil {
		inicio, err := timezone.ParseDateTime(*in.DataHoraInicial)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date_or_time")
		}

		if err := domain.Remarcar(ap, inicio, in.Motivo); err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// Reatribuição / campos editáveis
	// --------------------------------------------------
	if in.CodigoResponsavel != nil {
		ap.CodigoResponsavel = in.CodigoResponsavel
	}
	if in.Titulo != nil {
		ap.Titulo = *in.Titulo
	}
	if in.Prioridade != nil {
		ap.Prioridade = *in.Prioridade
	}
	if in.AgendaRetorno != nil {
		ap.AgendaRetorno = *in.AgendaRetorno
	}

	if in.AssinaturaBase64 != "" && uc.assinatura != nil {
		if url, err := uc.assinatura.Store(ctx, ap.Chave, in.AssinaturaBase64); err == nil {
			ap.AssinaturaURL = url
		}
	}

	if err := uc.repo.UpdateAgendamento(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UsuarioID,
		Action:   "agendamento_atualizado",
		Entity:   "agendamento",
		EntityID: &ap.Chave,
	})

	return ap, nil
}
