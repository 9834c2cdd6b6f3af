package encaixe

import (
	"context"

	"github.com/syndata/field-scheduler/internal/audit"
	domain "github.com/syndata/field-scheduler/internal/domain/encaixe"
	"github.com/syndata/field-scheduler/internal/httperr"
	"github.com/syndata/field-scheduler/internal/models"
	"github.com/syndata/field-scheduler/internal/timezone"
)

type ExcluirEncaixe struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewExcluirEncaixe(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ExcluirEncaixe {
	return &ExcluirEncaixe{
		repo:  repo,
		audit: audit,
	}
}

// Execute marca o encaixe como excluído (soft delete). O registro não
// é removido; some das listagens padrão.
func (uc *ExcluirEncaixe) Execute(
	ctx context.Context,
	usuarioID uint,
	chave uint,
) (*models.Encaixe, error) {

	e, err := uc.repo.GetEncaixe(ctx, chave)
	if err != nil {
		return nil, httperr.ErrBusiness("encaixe_not_found")
	}

	if err := domain.Excluir(e, usuarioID, timezone.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateEncaixe(ctx, e); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &usuarioID,
		Action:   "encaixe_excluido",
		Entity:   "encaixe",
		EntityID: &e.Chave,
	})

	return e, nil
}
