package agendamento

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/syndata/field-scheduler/internal/models"
)

func TestSlotForLimites(t *testing.T) {
	cases := []struct {
		hora   string
		slotID int
		ok     bool
	}{
		{"08:00", 1, true},
		{"09:59", 1, true},
		{"10:00", 2, true},
		{"11:30", 2, true},
		{"12:00", 0, false}, // intervalo de almoço
		{"12:59", 0, false},
		{"13:00", 3, true},
		{"14:00", 3, true},
		{"15:00", 4, true},
		{"16:59", 4, true},
		{"17:00", 0, false},
		{"07:59", 0, false},
		{"22:00", 0, false},
	}

	for _, tc := range cases {
		parsed, err := time.Parse("15:04", tc.hora)
		require.NoError(t, err)

		at := time.Date(2026, 3, 10, parsed.Hour(), parsed.Minute(), 0, 0, time.Local)
		slotID, ok := SlotFor(at)
		require.Equal(t, tc.ok, ok, "hora %s", tc.hora)
		require.Equal(t, tc.slotID, slotID, "hora %s", tc.hora)
	}
}

func agendamentoGrade(chave uint, tecnico uint, hora int, min int) models.Agendamento {
	t := tecnico
	return models.Agendamento{
		Chave:             chave,
		CodigoResponsavel: &t,
		StatusAg:          CodeAgendado,
		DataHoraInicial:   time.Date(2026, 3, 10, hora, min, 0, 0, time.Local),
		NomeCliente:       "Padaria Central",
		Titulo:            "Manutenção",
	}
}

func TestBuildGridProjecao(t *testing.T) {
	aps := []models.Agendamento{
		agendamentoGrade(1, 10, 8, 30),  // técnico 10, slot 1
		agendamentoGrade(2, 10, 14, 0),  // técnico 10, slot 3
		agendamentoGrade(3, 20, 14, 30), // técnico 20, slot 3
	}

	grid := BuildGrid(aps, "")
	require.Len(t, grid, 3)

	require.Equal(t, uint(1), grid[Cell{TecnicoID: 10, SlotID: 1}].Chave)
	require.Equal(t, uint(2), grid[Cell{TecnicoID: 10, SlotID: 3}].Chave)
	require.Equal(t, uint(3), grid[Cell{TecnicoID: 20, SlotID: 3}].Chave)
}

func TestBuildGridIgnoraCanceladosESemTecnico(t *testing.T) {
	cancelado := agendamentoGrade(1, 10, 8, 30)
	cancelado.StatusAg = CodeCancelado

	semTecnico := agendamentoGrade(2, 10, 10, 30)
	semTecnico.CodigoResponsavel = nil

	foraDaGrade := agendamentoGrade(3, 10, 12, 15)

	grid := BuildGrid([]models.Agendamento{cancelado, semTecnico, foraDaGrade}, "")
	require.Empty(t, grid)
}

func TestBuildGridPrimeiroOcupanteFica(t *testing.T) {
	primeiro := agendamentoGrade(1, 10, 13, 0)
	segundo := agendamentoGrade(2, 10, 14, 30)

	grid := BuildGrid([]models.Agendamento{primeiro, segundo}, "")
	require.Len(t, grid, 1)
	require.Equal(t, uint(1), grid[Cell{TecnicoID: 10, SlotID: 3}].Chave)
}

func TestBuildGridFiltro(t *testing.T) {
	a := agendamentoGrade(1, 10, 8, 30)
	a.NomeCliente = "Mercado São José"

	b := agendamentoGrade(2, 20, 8, 30)
	b.NomeCliente = "Padaria Central"

	grid := BuildGrid([]models.Agendamento{a, b}, "padaria")
	require.Len(t, grid, 1)
	require.Equal(t, uint(2), grid[Cell{TecnicoID: 20, SlotID: 1}].Chave)
}

func TestBuildGridDeterministico(t *testing.T) {
	aps := []models.Agendamento{
		agendamentoGrade(1, 10, 8, 30),
		agendamentoGrade(2, 20, 14, 0),
	}

	first := BuildGrid(aps, "")
	for i := 0; i < 10; i++ {
		require.Equal(t, first, BuildGrid(aps, ""))
	}
}
