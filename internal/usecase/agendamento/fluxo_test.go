package agendamento

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/syndata/field-scheduler/internal/domain/agendamento"
	"github.com/syndata/field-scheduler/internal/httperr"
	"github.com/syndata/field-scheduler/internal/models"
)

func TestSaidaSoDoTecnicoResponsavel(t *testing.T) {
	repo := newFakeRepo()
	repo.agendamentos[1] = agendamentoAberto(1, 10)

	uc := NewRegistrarSaida(repo, nil)

	// Outro técnico não enxerga o agendamento.
	_, err := uc.Execute(context.Background(), 1, 20, nil)
	require.True(t, httperr.IsBusiness(err, "agendamento_not_found"))

	ap, err := uc.Execute(context.Background(), 1, 10, nil)
	require.NoError(t, err)
	require.Equal(t, domain.CodeEmDeslocamento, ap.StatusAg)
	require.NotNil(t, ap.DataHoraSaida)
}

func TestSaidaRegistraCheckpoint(t *testing.T) {
	repo := newFakeRepo()
	repo.agendamentos[1] = agendamentoAberto(1, 10)

	uc := NewRegistrarSaida(repo, nil)

	_, err := uc.Execute(context.Background(), 1, 10, &Coords{
		Lat:    -26.91,
		Lng:    -49.07,
		Origem: "gps",
	})
	require.NoError(t, err)

	require.Len(t, repo.locs, 1)
	require.Equal(t, models.LocSaida, repo.locs[0].Tipo)
	require.Equal(t, uint(1), repo.locs[0].AgendamentoChave)
}

func TestChegadaDerivaDeslocamento(t *testing.T) {
	repo := newFakeRepo()
	repo.agendamentos[1] = agendamentoAberto(1, 10)

	saida := NewRegistrarSaida(repo, nil)
	chegada := NewRegistrarChegada(repo, nil)

	_, err := saida.Execute(context.Background(), 1, 10, nil)
	require.NoError(t, err)

	ap, err := chegada.Execute(context.Background(), 1, 10, nil)
	require.NoError(t, err)

	require.Equal(t, domain.CodeEmAndamento, ap.StatusAg)
	require.NotNil(t, ap.DataHoraChegada)
	require.NotNil(t, ap.TempoDeslocamentoMin)
}

func TestFinalizarSemRetornoNaoTocaOBanco(t *testing.T) {
	repo := newFakeRepo()
	repo.agendamentos[1] = agendamentoAberto(1, 10)

	uc := NewFinalizarAgendamento(repo, nil, nil)

	_, err := uc.Execute(context.Background(), FinalizarInput{
		Chave:     1,
		TecnicoID: 10,
		Retorno:   "  ",
	})
	require.True(t, httperr.IsBusiness(err, "missing_return_note"))
	require.Zero(t, repo.gets)
}

func TestFinalizarComAssinatura(t *testing.T) {
	repo := newFakeRepo()
	ap := agendamentoAberto(1, 10)
	ap.StatusAg = domain.CodeEmAndamento
	chegada := ts(14, 40)
	ap.DataHoraChegada = &chegada
	repo.agendamentos[1] = ap

	store := &fakeSignatureStore{url: "https://cdn.example.com/assinaturas/1/abc.webp"}
	uc := NewFinalizarAgendamento(repo, store, nil)

	out, err := uc.Execute(context.Background(), FinalizarInput{
		Chave:            1,
		TecnicoID:        10,
		Retorno:          "Troca de placa concluída",
		AssinaturaBase64: "data:image/png;base64,AAAA",
	})
	require.NoError(t, err)

	require.Equal(t, domain.CodeFinalizado, out.StatusAg)
	require.Equal(t, 1, store.calls)
	require.Equal(t, store.url, out.AssinaturaURL)
}

func TestFinalizarNaoVoltaAtrasSeAssinaturaFalha(t *testing.T) {
	repo := newFakeRepo()
	ap := agendamentoAberto(1, 10)
	ap.StatusAg = domain.CodeEmAndamento
	chegada := ts(14, 40)
	ap.DataHoraChegada = &chegada
	repo.agendamentos[1] = ap

	store := &fakeSignatureStore{err: errors.New("bucket offline")}
	uc := NewFinalizarAgendamento(repo, store, nil)

	out, err := uc.Execute(context.Background(), FinalizarInput{
		Chave:     1,
		TecnicoID: 10,
		Retorno:   "Atendimento concluído",
	})
	require.NoError(t, err)

	// Sem assinatura no payload a store nem é chamada.
	require.Zero(t, store.calls)
	require.Equal(t, domain.CodeFinalizado, out.StatusAg)
	require.Empty(t, out.AssinaturaURL)
}

func TestFinalizarAssinaturaFalhandoMantemConclusao(t *testing.T) {
	repo := newFakeRepo()
	ap := agendamentoAberto(1, 10)
	ap.StatusAg = domain.CodeEmAndamento
	chegada := ts(14, 40)
	ap.DataHoraChegada = &chegada
	repo.agendamentos[1] = ap

	store := &fakeSignatureStore{err: errors.New("bucket offline")}
	uc := NewFinalizarAgendamento(repo, store, nil)

	out, err := uc.Execute(context.Background(), FinalizarInput{
		Chave:            1,
		TecnicoID:        10,
		Retorno:          "Atendimento concluído",
		AssinaturaBase64: "data:image/png;base64,AAAA",
	})
	require.NoError(t, err)

	require.Equal(t, 1, store.calls)
	require.Equal(t, domain.CodeFinalizado, out.StatusAg)
	require.Empty(t, out.AssinaturaURL)
}
