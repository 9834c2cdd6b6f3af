package agendamento

import (
	"context"

	domain "github.com/syndata/field-scheduler/internal/domain/agendamento"
	"github.com/syndata/field-scheduler/internal/dto"
	"github.com/syndata/field-scheduler/internal/httperr"
)

type DetalheAgendamento struct {
	repo domain.Repository
}

func NewDetalheAgendamento(repo domain.Repository) *DetalheAgendamento {
	return &DetalheAgendamento{repo: repo}
}

func (uc *DetalheAgendamento) Execute(
	ctx context.Context,
	chave uint,
) (*dto.AgendamentoDetalheDTO, error) {

	ap, err := uc.repo.GetAgendamento(ctx, chave)
	if err != nil {
		return nil, httperr.ErrBusiness("agendamento_not_found")
	}

	d := dto.DetalheFromAgendamento(ap)
	return &d, nil
}
