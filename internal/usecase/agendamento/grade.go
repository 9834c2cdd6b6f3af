package agendamento

import (
	"context"
	"time"

	domain "github.com/syndata/field-scheduler/internal/domain/agendamento"
	"github.com/syndata/field-scheduler/internal/dto"
	"github.com/syndata/field-scheduler/internal/httperr"
	"github.com/syndata/field-scheduler/internal/timezone"
)

type MontarGrade struct {
	repo domain.Repository
}

func NewMontarGrade(repo domain.Repository) *MontarGrade {
	return &MontarGrade{repo: repo}
}

// Execute projeta os agendamentos de um único dia na grade fixa de
// quatro slots. Projeção pura sobre a listagem do dia: nenhuma escrita.
func (uc *MontarGrade) Execute(
	ctx context.Context,
	dataStr string,
	tecnicoID *uint,
	filtro string,
) (*dto.GradeDTO, error) {

	dia, err := timezone.ParseDate(dataStr)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	loc := timezone.Location("")
	ini := time.Date(dia.Year(), dia.Month(), dia.Day(), 0, 0, 0, 0, loc)
	fim := ini.Add(24 * time.Hour)

	aps, err := uc.repo.ListAgendamentosPeriodo(ctx, ini, fim)
	if err != nil {
		return nil, err
	}

	grid := domain.BuildGrid(aps, filtro)

	out := &dto.GradeDTO{
		Data:  dataStr,
		Slots: domain.Slots,
	}

	for cell, ap := range grid {
		if tecnicoID != nil && cell.TecnicoID != *tecnicoID {
			continue
		}
		out.Celulas = append(out.Celulas, dto.GradeCelulaDTO{
			TecnicoID:   cell.TecnicoID,
			SlotID:      cell.SlotID,
			Agendamento: dto.FromAgendamento(ap),
		})
	}

	return out, nil
}
