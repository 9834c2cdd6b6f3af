package agendamento

import (
	"context"
	"time"

	domain "github.com/syndata/field-scheduler/internal/domain/agendamento"
	"github.com/syndata/field-scheduler/internal/dto"
	"github.com/syndata/field-scheduler/internal/models"
	"github.com/syndata/field-scheduler/internal/timezone"
)

type ListarAgendamentos struct {
	repo domain.Repository
}

func NewListarAgendamentos(
	repo domain.Repository,
) *ListarAgendamentos {
	return &ListarAgendamentos{
		repo: repo,
	}
}

// Execute lista o período [ini, fim]; datas no formato "2006-01-02".
// Sem filtros, devolve o dia corrente.
func (uc *ListarAgendamentos) Execute(
	ctx context.Context,
	iniStr string,
	fimStr string,
) ([]dto.AgendamentoListDTO, error) {

	loc := timezone.Location("")
	now := timezone.Now()

	ini := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	if iniStr != "" {
		if parsed, err := timezone.ParseDate(iniStr); err == nil {
			ini = parsed
		}
	}

	fim := ini.Add(24 * time.Hour)
	if fimStr != "" {
		if parsed, err := timezone.ParseDate(fimStr); err == nil {
			fim = parsed.Add(24 * time.Hour)
		}
	}

	aps, err := uc.repo.ListAgendamentosPeriodo(ctx, ini, fim)
	if err != nil {
		return nil, err
	}

	return toListDTOs(aps), nil
}

func toListDTOs(aps []models.Agendamento) []dto.AgendamentoListDTO {
	out := make([]dto.AgendamentoListDTO, 0, len(aps))
	for i := range aps {
		out = append(out, dto.FromAgendamento(&aps[i]))
	}
	return out
}
