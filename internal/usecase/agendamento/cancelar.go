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

type CancelarAgendamento struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelarAgendamento(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelarAgendamento {
	return &CancelarAgendamento{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelarAgendamento) Execute(
	ctx context.Context,
	usuarioID uint,
	chave uint,
	motivo string,
) (*models.Agendamento, error) {

	// Motivo vazio é barrado antes de qualquer acesso ao banco.
	if strings.TrimSpace(motivo) == "" {
		return nil, httperr.ErrBusiness("missing_cancel_reason")
	}

	ap, err := uc.repo.GetAgendamento(ctx, chave)
	if err != nil {
		return nil, httperr.ErrBusiness("agendamento_not_found")
	}

	if err := domain.Cancelar(ap, timezone.Now(), motivo); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAgendamento(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &usuarioID,
		Action:   "agendamento_cancelado",
		Entity:   "agendamento",
		EntityID: &ap.Chave,
	})

	return ap, nil
}
