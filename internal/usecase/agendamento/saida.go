package agendamento

import (
	"context"
	"time"

	"github.com/syndata/field-scheduler/internal/audit"
	domain "github.com/syndata/field-scheduler/internal/domain/agendamento"
	"github.com/syndata/field-scheduler/internal/httperr"
	"github.com/syndata/field-scheduler/internal/models"
	"github.com/syndata/field-scheduler/internal/timezone"
)

// Coords é a posição opcional enviada pelo app do técnico junto com
// cada transição.
type Coords struct {
	Lat      float64
	Lng      float64
	Precisao *float64
	Origem   string
}

type RegistrarSaida struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRegistrarSaida(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RegistrarSaida {
	return &RegistrarSaida{
		repo:  repo,
		audit: audit,
	}
}

func (uc *RegistrarSaida) Execute(
	ctx context.Context,
	chave uint,
	tecnicoID uint,
	coords *Coords,
) (*models.Agendamento, error) {

	// Só o técnico responsável avança o próprio agendamento.
	ap, err := uc.repo.GetAgendamentoDoTecnico(ctx, chave, tecnicoID)
	if err != nil {
		return nil, httperr.ErrBusiness("agendamento_not_found")
	}

	now := timezone.Now()
	if err := domain.Sair(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAgendamento(ctx, ap); err != nil {
		return nil, err
	}

	registrarLocalizacao(ctx, uc.repo, ap.Chave, models.LocSaida, now, coords)

	uc.audit.Dispatch(audit.Event{
		UserID:   &tecnicoID,
		Action:   "agendamento_saida",
		Entity:   "agendamento",
		EntityID: &ap.Chave,
	})

	return ap, nil
}

// registrarLocalizacao grava o checkpoint quando houver coordenadas.
// Falha aqui não derruba a transição já persistida.
func registrarLocalizacao(
	ctx context.Context,
	repo domain.Repository,
	chave uint,
	tipo string,
	now time.Time,
	coords *Coords,
) {
	if coords == nil {
		return
	}

	_ = repo.AddLocalizacao(ctx, &models.AgendamentoLocalizacao{
		AgendamentoChave: chave,
		Tipo:             tipo,
		Lat:              coords.Lat,
		Lng:              coords.Lng,
		Precisao:         coords.Precisao,
		Origem:           coords.Origem,
		DataHora:         now,
	})
}
