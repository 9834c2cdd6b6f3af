package agendamento

import (
	"context"

	"github.com/syndata/field-scheduler/internal/audit"
	domain "github.com/syndata/field-scheduler/internal/domain/agendamento"
	"github.com/syndata/field-scheduler/internal/httperr"
	"github.com/syndata/field-scheduler/internal/models"
	"github.com/syndata/field-scheduler/internal/timezone"
)

type RemarcarAgendamento struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRemarcarAgendamento(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RemarcarAgendamento {
	return &RemarcarAgendamento{
		repo:  repo,
		audit: audit,
	}
}

// Execute remarca a visita. Se a data/hora não mudou, nenhum motivo é
// exigido e nada entra na trilha de retorno.
func (uc *RemarcarAgendamento) Execute(
	ctx context.Context,
	usuarioID uint,
	chave uint,
	novaDataHora string, // "2006-01-02T15:04:05" (local, sem Z)
	motivo string,
) (*models.Agendamento, error) {

	inicio, err := timezone.ParseDateTime(novaDataHora)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	ap, err := uc.repo.GetAgendamento(ctx, chave)
	if err != nil {
		return nil, httperr.ErrBusiness("agendamento_not_found")
	}

	mudou := !inicio.Equal(ap.DataHoraInicial)

	if err := domain.Remarcar(ap, inicio, motivo); err != nil {
		return nil, err
	}

	if !mudou {
		return ap, nil
	}

	if err := uc.repo.UpdateAgendamento(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &usuarioID,
		Action:   "agendamento_remarcado",
		Entity:   "agendamento",
		EntityID: &ap.Chave,
	})

	return ap, nil
}
