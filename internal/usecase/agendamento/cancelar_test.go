package agendamento

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/syndata/field-scheduler/internal/domain/agendamento"
	"github.com/syndata/field-scheduler/internal/httperr"
	"github.com/syndata/field-scheduler/internal/models"
)

func agendamentoAberto(chave uint, tecnico uint) *models.Agendamento {
	t := tecnico
	return &models.Agendamento{
		Chave:             chave,
		CodigoResponsavel: &t,
		StatusAg:          domain.CodeAgendado,
		DataHoraInicial:   ts(14, 0),
		Inativo:           "N",
	}
}

func TestCancelarSemMotivoNaoTocaOBanco(t *testing.T) {
	repo := newFakeRepo()
	repo.agendamentos[1] = agendamentoAberto(1, 10)

	uc := NewCancelarAgendamento(repo, nil)

	_, err := uc.Execute(context.Background(), 5, 1, "   ")
	require.True(t, httperr.IsBusiness(err, "missing_cancel_reason"))

	// Nenhuma leitura nem escrita aconteceu.
	require.Zero(t, repo.gets)
	require.Zero(t, repo.updates)
	require.Equal(t, domain.CodeAgendado, repo.agendamentos[1].StatusAg)
}

func TestCancelarComMotivo(t *testing.T) {
	repo := newFakeRepo()
	repo.agendamentos[1] = agendamentoAberto(1, 10)

	uc := NewCancelarAgendamento(repo, nil)

	ap, err := uc.Execute(context.Background(), 5, 1, "cliente remarcou por telefone")
	require.NoError(t, err)

	require.Equal(t, domain.CodeCancelado, ap.StatusAg)
	require.Equal(t, "cliente remarcou por telefone", ap.MotivoCancelamento)
	require.Equal(t, 1, repo.updates)
}

func TestCancelarDepoisDaSaidaFalha(t *testing.T) {
	repo := newFakeRepo()
	ap := agendamentoAberto(1, 10)
	ap.StatusAg = domain.CodeEmDeslocamento
	repo.agendamentos[1] = ap

	uc := NewCancelarAgendamento(repo, nil)

	_, err := uc.Execute(context.Background(), 5, 1, "cliente desistiu")
	require.True(t, httperr.IsBusiness(err, "invalid_state"))
	require.Zero(t, repo.updates)
}

func TestCancelarInexistente(t *testing.T) {
	uc := NewCancelarAgendamento(newFakeRepo(), nil)

	_, err := uc.Execute(context.Background(), 5, 999, "motivo qualquer")
	require.True(t, httperr.IsBusiness(err, "agendamento_not_found"))
}
