package agendamento

import (
	"context"
	"time"

	domain "github.com/syndata/field-scheduler/internal/domain/agendamento"
	"github.com/syndata/field-scheduler/internal/dto"
	"github.com/syndata/field-scheduler/internal/timezone"
)

type ListarAgendamentosDoTecnico struct {
	repo domain.Repository
}

func NewListarAgendamentosDoTecnico(
	repo domain.Repository,
) *ListarAgendamentosDoTecnico {
	return &ListarAgendamentosDoTecnico{
		repo: repo,
	}
}

// Execute devolve a janela do técnico; sem filtros, de ontem a amanhã
// (a janela que o painel do técnico consome).
func (uc *ListarAgendamentosDoTecnico) Execute(
	ctx context.Context,
	tecnicoID uint,
	iniStr string,
	fimStr string,
) ([]dto.AgendamentoListDTO, error) {

	loc := timezone.Location("")
	now := timezone.Now()

	ini := time.Date(now.Year(), now.Month(), now.Day()-1, 0, 0, 0, 0, loc)
	fim := time.Date(now.Year(), now.Month(), now.Day()+2, 0, 0, 0, 0, loc)

	if iniStr != "" {
		if parsed, err := timezone.ParseDate(iniStr); err == nil {
			ini = parsed
		}
	}
	if fimStr != "" {
		if parsed, err := timezone.ParseDate(fimStr); err == nil {
			fim = parsed.Add(24 * time.Hour)
		}
	}

	aps, err := uc.repo.ListAgendamentosDoTecnico(ctx, tecnicoID, ini, fim)
	if err != nil {
		return nil, err
	}

	return toListDTOs(aps), nil
}
