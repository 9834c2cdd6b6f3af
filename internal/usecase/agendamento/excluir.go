package agendamento

import (
	"context"

	"github.com/syndata/field-scheduler/internal/audit"
	domain "github.com/syndata/field-scheduler/internal/domain/agendamento"
	"github.com/syndata/field-scheduler/internal/httperr"
)

// ExcluirAgendamento é a exclusão física disponível só para a
// secretaria; o fluxo do técnico nunca remove registros (cancelamento
// é status).
type ExcluirAgendamento struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewExcluirAgendamento(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ExcluirAgendamento {
	return &ExcluirAgendamento{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ExcluirAgendamento) Execute(
	ctx context.Context,
	usuarioID uint,
	chave uint,
) error {

	if _, err := uc.repo.GetAgendamento(ctx, chave); err != nil {
		return httperr.ErrBusiness("agendamento_not_found")
	}

	if err := uc.repo.DeleteAgendamento(ctx, chave); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &usuarioID,
		Action:   "agendamento_excluido",
		Entity:   "agendamento",
		EntityID: &chave,
	})

	return nil
}
