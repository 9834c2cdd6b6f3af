package agendamento

import (
	"strings"
	"time"

	"github.com/syndata/field-scheduler/internal/httperr"
	"github.com/syndata/field-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// StatusOf traduz o código gravado no registro; código desconhecido
// é tratado como agendado, espelhando o comportamento de leitura.
func StatusOf(ap *models.Agendamento) Status {
	s, err := FromCode(ap.StatusAg)
	if err != nil {
		return StatusAgendado
	}
	return s
}

// Sair registra a saída do técnico (agendado → em deslocamento).
func Sair(ap *models.Agendamento, now time.Time) error {
	if err := CanSair(StatusOf(ap)); err != nil {
		return err
	}

	ap.StatusAg = StatusEmDeslocamento.Code()
	ap.DataHoraSaida = &now
	return nil
}

// Chegar registra a chegada ao local (em deslocamento → em andamento)
// e deriva o tempo de deslocamento.
func Chegar(ap *models.Agendamento, now time.Time) error {
	if err := CanChegar(StatusOf(ap)); err != nil {
		return err
	}
	if ap.DataHoraSaida == nil {
		return httperr.ErrBusiness("missing_departure")
	}

	ap.StatusAg = StatusEmAndamento.Code()
	ap.DataHoraChegada = &now

	m := wholeMinutes(*ap.DataHoraSaida, now)
	ap.TempoDeslocamentoMin = &m
	return nil
}

// Finalizar encerra o atendimento (em andamento → finalizado). A nota
// de retorno é obrigatória; o tempo de atendimento é derivado.
func Finalizar(ap *models.Agendamento, now time.Time, retorno string) error {
	if strings.TrimSpace(retorno) == "" {
		return httperr.ErrBusiness("missing_return_note")
	}
	if err := CanFinalizar(StatusOf(ap)); err != nil {
		return err
	}
	if ap.DataHoraChegada == nil {
		return httperr.ErrBusiness("missing_arrival")
	}

	ap.StatusAg = StatusFinalizado.Code()
	ap.DataHoraFinal = &now
	ap.AgendaRetorno = appendRetorno(ap.AgendaRetorno, retorno)

	m := wholeMinutes(*ap.DataHoraChegada, now)
	ap.TempoAtendimentoMin = &m
	return nil
}

// Cancelar exige motivo e só é válido enquanto agendado.
func Cancelar(ap *models.Agendamento, now time.Time, motivo string) error {
	if strings.TrimSpace(motivo) == "" {
		return httperr.ErrBusiness("missing_cancel_reason")
	}
	if err := CanCancelar(StatusOf(ap)); err != nil {
		return err
	}

	ap.StatusAg = StatusCancelado.Code()
	ap.MotivoCancelamento = motivo
	ap.DataHoraFinal = &now
	return nil
}

// Remarcar altera data/hora da visita. Se a data/hora realmente mudou,
// o motivo é obrigatório e entra na trilha de retorno; se não mudou,
// nada é exigido nem gravado.
func Remarcar(ap *models.Agendamento, novaDataHora time.Time, motivo string) error {
	if err := CanRemarcar(StatusOf(ap)); err != nil {
		return err
	}

	if novaDataHora.Equal(ap.DataHoraInicial) {
		return nil
	}

	if strings.TrimSpace(motivo) == "" {
		return httperr.ErrBusiness("missing_reschedule_reason")
	}

	ap.DataHoraInicial = novaDataHora
	ap.AgendaRetorno = appendRetorno(ap.AgendaRetorno, motivo)
	return nil
}

// ===============================
// Helpers
// ===============================

// wholeMinutes calcula a duração em minutos inteiros entre dois
// timestamps de parede, como registrados (sem normalizar timezone).
func wholeMinutes(start, end time.Time) int {
	return int(end.Sub(start).Minutes())
}

func appendRetorno(trail, nota string) string {
	nota = strings.TrimSpace(nota)
	if nota == "" {
		return trail
	}
	if trail == "" {
		return nota
	}
	return trail + "\n" + nota
}
