package agendamento

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syndata/field-scheduler/internal/httperr"
)

func TestRemarcarMesmaDataNaoPersisteNada(t *testing.T) {
	repo := newFakeRepo()
	repo.agendamentos[1] = agendamentoAberto(1, 10)

	uc := NewRemarcarAgendamento(repo, nil)

	ap, err := uc.Execute(context.Background(), 5, 1, "2026-03-10T14:00:00", "")
	require.NoError(t, err)
	require.Zero(t, repo.updates)
	require.Empty(t, ap.AgendaRetorno)
}

// A comparação de mudança é por instante, não por representação: o
// mesmo horário de parede da central continua sendo "sem mudança"
// ainda que o registro esteja gravado em outro fuso.
func TestRemarcarMesmoInstanteEmOutroFuso(t *testing.T) {
	repo := newFakeRepo()
	ap := agendamentoAberto(1, 10)
	ap.DataHoraInicial = ap.DataHoraInicial.UTC()
	repo.agendamentos[1] = ap

	uc := NewRemarcarAgendamento(repo, nil)

	_, err := uc.Execute(context.Background(), 5, 1, "2026-03-10T14:00:00", "")
	require.NoError(t, err)
	require.Zero(t, repo.updates)
}

func TestRemarcarComMotivoPersiste(t *testing.T) {
	repo := newFakeRepo()
	repo.agendamentos[1] = agendamentoAberto(1, 10)

	uc := NewRemarcarAgendamento(repo, nil)

	ap, err := uc.Execute(context.Background(), 5, 1, "2026-03-11T16:00:00", "técnico indisponível")
	require.NoError(t, err)

	require.Equal(t, 1, repo.updates)
	require.Equal(t, 16, ap.DataHoraInicial.Hour())
	require.Equal(t, "técnico indisponível", ap.AgendaRetorno)
}

func TestRemarcarSemMotivoQuandoMuda(t *testing.T) {
	repo := newFakeRepo()
	repo.agendamentos[1] = agendamentoAberto(1, 10)

	uc := NewRemarcarAgendamento(repo, nil)

	_, err := uc.Execute(context.Background(), 5, 1, "2026-03-11T16:00:00", "")
	require.True(t, httperr.IsBusiness(err, "missing_reschedule_reason"))
	require.Zero(t, repo.updates)
}

func TestRemarcarFormatoInvalido(t *testing.T) {
	uc := NewRemarcarAgendamento(newFakeRepo(), nil)

	_, err := uc.Execute(context.Background(), 5, 1, "11/03/2026 16:00", "motivo")
	require.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}
