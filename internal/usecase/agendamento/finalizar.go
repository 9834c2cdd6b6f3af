package agendamento

import (
	"context"
	"strings"

	"github.com/syndata/field-scheduler/internal/audit"
	domain "github.com/syndata/field-scheduler/internal/domain/agendamento"
	"github.com/syndata/field-scheduler/internal/httperr"
	"github.com/syndata/field-scheduler/internal/models"
	"github.com/syndata/field-scheduler/internal/timezone"
)

// SignatureStore guarda a assinatura capturada no encerramento e
// devolve a URL pública do objeto.
type SignatureStore interface {
	Store(ctx context.Context, chave uint, base64PNG string) (string, error)
}

// ======================================================
// INPUT
// ======================================================

type FinalizarInput struct {
	Chave     uint
	TecnicoID uint

	Retorno          string
	AssinaturaBase64 string
	Coords           *Coords
}

// ======================================================
// USE CASE
// ======================================================

type FinalizarAgendamento struct {
	repo       domain.Repository
	assinatura SignatureStore
	audit      *audit.Dispatcher
}

func NewFinalizarAgendamento(
	repo domain.Repository,
	assinatura SignatureStore,
	audit *audit.Dispatcher,
) *FinalizarAgendamento {
	return &FinalizarAgendamento{
		repo:       repo,
		assinatura: assinatura,
		audit:      audit,
	}
}

func (uc *FinalizarAgendamento) Execute(
	ctx context.Context,
	in FinalizarInput,
) (*models.Agendamento, error) {

	// Nota de retorno vazia é barrada antes de qualquer acesso.
	if strings.TrimSpace(in.Retorno) == "" {
		return nil, httperr.ErrBusiness("missing_return_note")
	}

	ap, err := uc.repo.GetAgendamentoDoTecnico(ctx, in.Chave, in.TecnicoID)
	if err != nil {
		return nil, httperr.ErrBusiness("agendamento_not_found")
	}

	now := timezone.Now()
	if err := domain.Finalizar(ap, now, in.Retorno); err != nil {
		return nil, err
	}

	// Assinatura é melhor esforço: a conclusão não volta atrás se o
	// armazenamento do arquivo falhar.
	if in.AssinaturaBase64 != "" && uc.assinatura != nil {
		if url, err := uc.assinatura.Store(ctx, ap.Chave, in.AssinaturaBase64); err == nil {
			ap.AssinaturaURL = url
		}
	}

	if err := uc.repo.UpdateAgendamento(ctx, ap); err != nil {
		return nil, err
	}

	registrarLocalizacao(ctx, uc.repo, ap.Chave, models.LocFinalizacao, now, in.Coords)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.TecnicoID,
		Action:   "agendamento_finalizado",
		Entity:   "agendamento",
		EntityID: &ap.Chave,
	})

	return ap, nil
}
