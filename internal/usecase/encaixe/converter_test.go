package encaixe

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	agdomain "github.com/syndata/field-scheduler/internal/domain/agendamento"
	"github.com/syndata/field-scheduler/internal/httperr"
	"github.com/syndata/field-scheduler/internal/models"
	ucag "github.com/syndata/field-scheduler/internal/usecase/agendamento"
)

func encaixeAguardando(chave uint) *models.Encaixe {
	cliente := uint(77)
	tecnico := uint(10)
	return &models.Encaixe{
		Chave:             chave,
		CodigoCliente:     &cliente,
		NomeCliente:       "Padaria Central",
		CodigoResponsavel: &tecnico,
		TipoSolicitacao:   "M",
		TipoUrgencia:      "A",
		Observacao:        "equipamento parado desde cedo",
		Status:            "P",
		DataHoraAbertura:  time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local),
	}
}

func converterFixture(repo *fakeRepo) (*ConverterEncaixe, *fakeAgRepo) {
	agRepo := newFakeAgRepo()
	agRepo.clientes[77] = &models.Cliente{
		ID:   77,
		Nome: "Padaria Central",
		Fone: "47 99999-0000",
	}

	criarAg := ucag.NewCreateAgendamento(agRepo, nil)
	return NewConverterEncaixe(repo, criarAg, nil), agRepo
}

func TestConverterCriaAgendamentoEAmarra(t *testing.T) {
	repo := newFakeRepo()
	repo.encaixes[1] = encaixeAguardando(1)

	uc, agRepo := converterFixture(repo)

	e, ap, err := uc.Execute(context.Background(), ConverterEncaixeInput{
		Chave:     1,
		UsuarioID: 5,
		Data:      "2026-03-11",
		HoraIni:   "10:00",
	})
	require.NoError(t, err)

	// Agendamento herdou cliente, técnico, urgência e observação.
	require.Equal(t, uint(77), ap.CodigoCliente)
	require.Equal(t, uint(10), *ap.CodigoResponsavel)
	require.Equal(t, "Manutenção", ap.Titulo)
	require.Equal(t, "A", ap.Prioridade)
	require.Equal(t, "equipamento parado desde cedo", ap.AgendaAbertura)
	require.Equal(t, agdomain.CodeAgendado, ap.StatusAg)
	require.Contains(t, agRepo.agendamentos, ap.Chave)

	// Encaixe amarrado e convertido; urgência e abertura intactas.
	require.Equal(t, "C", e.Status)
	require.Equal(t, ap.Chave, *e.ChaveAgendamento)
	require.Equal(t, "A", e.TipoUrgencia)
	require.Equal(t, 1, repo.updates)
}

func TestConverterForaDeAguardando(t *testing.T) {
	repo := newFakeRepo()
	aberto := encaixeAguardando(1)
	aberto.Status = "A"
	repo.encaixes[1] = aberto

	uc, agRepo := converterFixture(repo)

	_, _, err := uc.Execute(context.Background(), ConverterEncaixeInput{
		Chave:     1,
		UsuarioID: 5,
		Data:      "2026-03-11",
		HoraIni:   "10:00",
	})
	require.True(t, httperr.IsBusiness(err, "invalid_state"))
	require.Empty(t, agRepo.agendamentos)
}

func TestConverterCompensaComPatch(t *testing.T) {
	repo := newFakeRepo()
	repo.encaixes[1] = encaixeAguardando(1)
	repo.updateErr = errors.New("deadlock")

	uc, _ := converterFixture(repo)

	e, ap, err := uc.Execute(context.Background(), ConverterEncaixeInput{
		Chave:     1,
		UsuarioID: 5,
		Data:      "2026-03-11",
		HoraIni:   "10:00",
	})
	require.NoError(t, err)
	require.NotNil(t, ap)

	require.Equal(t, 1, repo.patches)
	require.Equal(t, "C", e.Status)
}

func TestConverterFalhaDupla(t *testing.T) {
	repo := newFakeRepo()
	repo.encaixes[1] = encaixeAguardando(1)
	repo.updateErr = errors.New("deadlock")
	repo.patchErr = errors.New("still down")

	uc, agRepo := converterFixture(repo)

	_, ap, err := uc.Execute(context.Background(), ConverterEncaixeInput{
		Chave:     1,
		UsuarioID: 5,
		Data:      "2026-03-11",
		HoraIni:   "10:00",
	})
	require.True(t, httperr.IsBusiness(err, "conversion_link_failed"))

	// O agendamento órfão é devolvido para triagem manual.
	require.NotNil(t, ap)
	require.Contains(t, agRepo.agendamentos, ap.Chave)
}

func TestConverterSemTecnico(t *testing.T) {
	repo := newFakeRepo()
	e := encaixeAguardando(1)
	e.CodigoResponsavel = nil
	repo.encaixes[1] = e

	uc, _ := converterFixture(repo)

	_, _, err := uc.Execute(context.Background(), ConverterEncaixeInput{
		Chave:     1,
		UsuarioID: 5,
		Data:      "2026-03-11",
		HoraIni:   "10:00",
	})
	require.True(t, httperr.IsBusiness(err, "missing_technician"))
}

func TestConverterComJanelaDeTermino(t *testing.T) {
	repo := newFakeRepo()
	repo.encaixes[1] = encaixeAguardando(1)

	uc, _ := converterFixture(repo)

	_, ap, err := uc.Execute(context.Background(), ConverterEncaixeInput{
		Chave:     1,
		UsuarioID: 5,
		Data:      "2026-03-11",
		HoraIni:   "10:00",
		HoraFim:   "12:00",
	})
	require.NoError(t, err)
	require.Equal(t, 10, ap.DataHoraInicial.Hour())
}

func TestConverterJanelaInvertida(t *testing.T) {
	repo := newFakeRepo()
	repo.encaixes[1] = encaixeAguardando(1)

	uc, agRepo := converterFixture(repo)

	_, _, err := uc.Execute(context.Background(), ConverterEncaixeInput{
		Chave:     1,
		UsuarioID: 5,
		Data:      "2026-03-11",
		HoraIni:   "10:00",
		HoraFim:   "09:00",
	})
	require.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))

	// Nada foi criado nem amarrado.
	require.Empty(t, agRepo.agendamentos)
	require.Equal(t, "P", repo.encaixes[1].Status)
}
