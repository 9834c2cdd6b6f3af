package encaixe

import (
	"context"

	"github.com/syndata/field-scheduler/internal/audit"
	domain "github.com/syndata/field-scheduler/internal/domain/encaixe"
	"github.com/syndata/field-scheduler/internal/httperr"
	"github.com/syndata/field-scheduler/internal/models"
)

type AtribuirTecnico struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAtribuirTecnico(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AtribuirTecnico {
	return &AtribuirTecnico{
		repo:  repo,
		audit: audit,
	}
}

func (uc *AtribuirTecnico) Execute(
	ctx context.Context,
	usuarioID uint,
	chave uint,
	tecnicoID uint,
) (*models.Encaixe, error) {

	e, err := uc.repo.GetEncaixe(ctx, chave)
	if err != nil {
		return nil, httperr.ErrBusiness("encaixe_not_found")
	}

	if err := domain.Atribuir(e, tecnicoID); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateEncaixe(ctx, e); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &usuarioID,
		Action:   "encaixe_atribuido",
		Entity:   "encaixe",
		EntityID: &e.Chave,
	})

	return e, nil
}
