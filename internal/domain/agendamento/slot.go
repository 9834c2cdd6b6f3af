package agendamento

import (
	"strings"
	"time"

	"github.com/syndata/field-scheduler/internal/models"
)

// ===============================
// Grade de horários (slots fixos)
// ===============================

type Slot struct {
	ID     int    `json:"id"`
	Inicio string `json:"inicio"`
	Fim    string `json:"fim"`
	Rotulo string `json:"rotulo"`
}

// Slots é a partição fixa do dia. Visitas fora de 08:00–17:00 ficam
// sem slot e só aparecem nas listagens planas.
var Slots = []Slot{
	{ID: 1, Inicio: "08:00", Fim: "10:00", Rotulo: "1º horário"},
	{ID: 2, Inicio: "10:00", Fim: "12:00", Rotulo: "2º horário"},
	{ID: 3, Inicio: "13:00", Fim: "15:00", Rotulo: "3º horário"},
	{ID: 4, Inicio: "15:00", Fim: "17:00", Rotulo: "4º horário"},
}

// SlotFor resolve o slot do horário de início, usando intervalos
// semiabertos [inicio, fim). Determinístico por construção.
func SlotFor(t time.Time) (int, bool) {
	hm := t.Format("15:04")
	for _, s := range Slots {
		if hm >= s.Inicio && hm < s.Fim {
			return s.ID, true
		}
	}
	return 0, false
}

// ===============================
// Projeção (técnico × slot)
// ===============================

// Cell é uma célula ocupada da grade.
type Cell struct {
	TecnicoID uint
	SlotID    int
}

// Grid mapeia (técnico, slot) → agendamento. Projeção pura: nenhuma
// escrita, recomputada a cada consulta.
type Grid map[Cell]*models.Agendamento

// BuildGrid projeta os agendamentos do dia na grade. Cancelados e
// horários fora da grade são ignorados; com mais de um agendamento na
// mesma célula, o primeiro por ordem de chegada permanece (o backend é
// quem arbitra conflitos reais).
func BuildGrid(aps []models.Agendamento, filtro string) Grid {
	filtro = strings.ToLower(strings.TrimSpace(filtro))

	grid := make(Grid)
	for i := range aps {
		ap := &aps[i]

		if StatusOf(ap) == StatusCancelado {
			continue
		}
		if ap.CodigoResponsavel == nil {
			continue
		}
		if filtro != "" && !matchesFiltro(ap, filtro) {
			continue
		}

		slotID, ok := SlotFor(ap.DataHoraInicial)
		if !ok {
			continue
		}

		cell := Cell{TecnicoID: *ap.CodigoResponsavel, SlotID: slotID}
		if _, occupied := grid[cell]; occupied {
			continue
		}
		grid[cell] = ap
	}
	return grid
}

func matchesFiltro(ap *models.Agendamento, filtro string) bool {
	return strings.Contains(strings.ToLower(ap.NomeCliente), filtro) ||
		strings.Contains(strings.ToLower(ap.Titulo), filtro) ||
		strings.Contains(strings.ToLower(ap.EnderecoCliente), filtro)
}
