package agendamento

import (
	"context"

	domain "github.com/syndata/field-scheduler/internal/domain/agendamento"
)

// ProximoNumero antecipa a próxima chave para exibição no formulário.
// É uma prévia: a chave definitiva continua sendo atribuída na criação.
type ProximoNumero struct {
	repo domain.Repository
}

func NewProximoNumero(repo domain.Repository) *ProximoNumero {
	return &ProximoNumero{repo: repo}
}

func (uc *ProximoNumero) Execute(ctx context.Context) (uint, error) {
	return uc.repo.NextChave(ctx)
}
