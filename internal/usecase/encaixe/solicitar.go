package encaixe

import (
	"context"

	"github.com/syndata/field-scheduler/internal/audit"
	domain "github.com/syndata/field-scheduler/internal/domain/encaixe"
	"github.com/syndata/field-scheduler/internal/httperr"
	"github.com/syndata/field-scheduler/internal/models"
)

type SolicitarEncaixe struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSolicitarEncaixe(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SolicitarEncaixe {
	return &SolicitarEncaixe{
		repo:  repo,
		audit: audit,
	}
}

// Execute é o técnico pedindo um encaixe aberto (A → P). O pedido
// atribui o técnico quando não havia responsável.
func (uc *SolicitarEncaixe) Execute(
	ctx context.Context,
	chave uint,
	tecnicoID uint,
) (*models.Encaixe, error) {

	e, err := uc.repo.GetEncaixe(ctx, chave)
	if err != nil {
		return nil, httperr.ErrBusiness("encaixe_not_found")
	}

	if err := domain.Solicitar(e, tecnicoID); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateEncaixe(ctx, e); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &tecnicoID,
		Action:   "encaixe_solicitado",
		Entity:   "encaixe",
		EntityID: &e.Chave,
	})

	return e, nil
}
