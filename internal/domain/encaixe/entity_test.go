package encaixe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/syndata/field-scheduler/internal/httperr"
	"github.com/syndata/field-scheduler/internal/models"
)

func novoEncaixe() *models.Encaixe {
	cliente := uint(77)
	return &models.Encaixe{
		Chave:            1,
		CodigoCliente:    &cliente,
		NomeCliente:      "Mercado São José",
		TipoUrgencia:     UrgenciaAlta,
		Status:           string(StatusAberto),
		DataHoraAbertura: time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local),
	}
}

func TestSolicitarAtribuiTecnico(t *testing.T) {
	e := novoEncaixe()

	require.NoError(t, Solicitar(e, 10))
	require.Equal(t, string(StatusAguardando), e.Status)
	require.NotNil(t, e.CodigoResponsavel)
	require.Equal(t, uint(10), *e.CodigoResponsavel)
}

func TestSolicitarEncaixeDeOutroTecnico(t *testing.T) {
	e := novoEncaixe()
	outro := uint(20)
	e.CodigoResponsavel = &outro

	err := Solicitar(e, 10)
	require.True(t, httperr.IsBusiness(err, "encaixe_assigned_to_other"))
	require.Equal(t, string(StatusAberto), e.Status)
}

func TestSolicitarForaDeAberto(t *testing.T) {
	e := novoEncaixe()
	e.Status = string(StatusAguardando)

	err := Solicitar(e, 10)
	require.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestAtribuirTrocaResponsavel(t *testing.T) {
	e := novoEncaixe()
	require.NoError(t, Solicitar(e, 10))

	require.NoError(t, Atribuir(e, 20))
	require.Equal(t, uint(20), *e.CodigoResponsavel)
	// Atribuição não mexe no status.
	require.Equal(t, string(StatusAguardando), e.Status)
}

func TestAtribuirConvertidoFalha(t *testing.T) {
	e := novoEncaixe()
	e.Status = string(StatusConvertido)

	err := Atribuir(e, 20)
	require.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestConverterPreservaCampos(t *testing.T) {
	e := novoEncaixe()
	require.NoError(t, Solicitar(e, 10))

	now := time.Date(2026, 3, 11, 10, 0, 0, 0, time.Local)
	require.NoError(t, Converter(e, 555, now))

	require.Equal(t, string(StatusConvertido), e.Status)
	require.NotNil(t, e.ChaveAgendamento)
	require.Equal(t, uint(555), *e.ChaveAgendamento)

	// Urgência, cliente e abertura ficam intactos.
	require.Equal(t, UrgenciaAlta, e.TipoUrgencia)
	require.Equal(t, uint(77), *e.CodigoCliente)
	require.Equal(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local), e.DataHoraAbertura)
}

func TestConverterExigeAguardando(t *testing.T) {
	e := novoEncaixe()

	err := Converter(e, 555, time.Now())
	require.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestConverterExigeClienteETecnico(t *testing.T) {
	e := novoEncaixe()
	require.NoError(t, Solicitar(e, 10))
	e.CodigoCliente = nil

	err := Converter(e, 555, time.Now())
	require.True(t, httperr.IsBusiness(err, "missing_client"))

	cliente := uint(77)
	e.CodigoCliente = &cliente
	e.CodigoResponsavel = nil

	err = Converter(e, 555, time.Now())
	require.True(t, httperr.IsBusiness(err, "missing_technician"))
}

func TestExcluirSoftDelete(t *testing.T) {
	e := novoEncaixe()

	now := time.Date(2026, 3, 12, 8, 0, 0, 0, time.Local)
	require.NoError(t, Excluir(e, 99, now))

	require.Equal(t, string(StatusExcluido), e.Status)
	require.Equal(t, uint(99), *e.UsuarioExclusao)
	require.Equal(t, now, *e.DataHoraExclusao)
}

func TestExcluirConvertidoFalha(t *testing.T) {
	e := novoEncaixe()
	e.Status = string(StatusConvertido)

	err := Excluir(e, 99, time.Now())
	require.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestUrgenciaPeso(t *testing.T) {
	require.Greater(t, UrgenciaPeso(UrgenciaAlta), UrgenciaPeso(UrgenciaMedia))
	require.Greater(t, UrgenciaPeso(UrgenciaMedia), UrgenciaPeso(UrgenciaBaixa))

	// Urgência desconhecida cai no peso da média.
	require.Equal(t, UrgenciaPeso(UrgenciaMedia), UrgenciaPeso("X"))
}
