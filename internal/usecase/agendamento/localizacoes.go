package agendamento

import (
	"context"

	domain "github.com/syndata/field-scheduler/internal/domain/agendamento"
	"github.com/syndata/field-scheduler/internal/httperr"
	"github.com/syndata/field-scheduler/internal/models"
)

type ListarLocalizacoes struct {
	repo domain.Repository
}

func NewListarLocalizacoes(repo domain.Repository) *ListarLocalizacoes {
	return &ListarLocalizacoes{repo: repo}
}

func (uc *ListarLocalizacoes) Execute(
	ctx context.Context,
	chave uint,
) ([]models.AgendamentoLocalizacao, error) {

	if _, err := uc.repo.GetAgendamento(ctx, chave); err != nil {
		return nil, httperr.ErrBusiness("agendamento_not_found")
	}

	return uc.repo.ListLocalizacoes(ctx, chave)
}
