package agendamento

import (
	"context"

	"github.com/syndata/field-scheduler/internal/audit"
	domain "github.com/syndata/field-scheduler/internal/domain/agendamento"
	"github.com/syndata/field-scheduler/internal/httperr"
	"github.com/syndata/field-scheduler/internal/models"
	"github.com/syndata/field-scheduler/internal/timezone"
)

type RegistrarChegada struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRegistrarChegada(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RegistrarChegada {
	return &RegistrarChegada{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RegistrarChegada) Execute(
	ctx context.Context,
	chave uint,
	tecnicoID uint,
	coords *Coords,
) (*models.Agendamento, error) {

	ap, err := uc.repo.GetAgendamentoDoTecnico(ctx, chave, tecnicoID)
	if err != nil {
		return nil, httperr.ErrBusiness("agendamento_not_found")
	}

	now := timezone.Now()
	if err := domain.Chegar(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAgendamento(ctx, ap); err != nil {
		return nil, err
	}

	registrarLocalizacao(ctx, uc.repo, ap.Chave, models.LocChegada, now, coords)

	uc.audit.Dispatch(audit.Event{
		UserID:   &tecnicoID,
		Action:   "agendamento_chegada",
		Entity:   "agendamento",
		EntityID: &ap.Chave,
	})

	return ap, nil
}
