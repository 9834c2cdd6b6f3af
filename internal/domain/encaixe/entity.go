package encaixe

import (
	"time"

	"github.com/syndata/field-scheduler/internal/httperr"
	"github.com/syndata/field-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func StatusOf(e *models.Encaixe) Status {
	if e.Status == "" {
		return StatusAberto
	}
	return Status(e.Status)
}

// Solicitar é o técnico reivindicando um encaixe aberto. A solicitação
// atribui o técnico quando o encaixe ainda não tinha responsável.
func Solicitar(e *models.Encaixe, tecnicoID uint) error {
	if err := CanSolicitar(StatusOf(e)); err != nil {
		return err
	}
	if e.CodigoResponsavel != nil && *e.CodigoResponsavel != tecnicoID {
		return httperr.ErrBusiness("encaixe_assigned_to_other")
	}

	e.Status = string(StatusAguardando)
	e.CodigoResponsavel = &tecnicoID
	return nil
}

// Atribuir troca/define o responsável enquanto o encaixe não foi
// convertido nem excluído.
func Atribuir(e *models.Encaixe, tecnicoID uint) error {
	switch StatusOf(e) {
	case StatusConvertido, StatusExcluido:
		return httperr.ErrBusiness("invalid_state")
	}

	e.CodigoResponsavel = &tecnicoID
	return nil
}

// Converter amarra o encaixe ao agendamento criado. Só status e a
// chave de ligação mudam; urgência, cliente e abertura ficam intactos.
func Converter(e *models.Encaixe, chaveAgendamento uint, now time.Time) error {
	if err := CanConverter(StatusOf(e)); err != nil {
		return err
	}
	if e.CodigoCliente == nil {
		return httperr.ErrBusiness("missing_client")
	}
	if e.CodigoResponsavel == nil {
		return httperr.ErrBusiness("missing_technician")
	}

	e.Status = string(StatusConvertido)
	e.ChaveAgendamento = &chaveAgendamento
	e.DataHoraFinal = &now
	return nil
}

// Excluir é o soft delete da secretaria; o registro permanece,
// filtrado das listagens padrão.
func Excluir(e *models.Encaixe, usuarioID uint, now time.Time) error {
	if err := CanExcluir(StatusOf(e)); err != nil {
		return err
	}

	e.Status = string(StatusExcluido)
	e.UsuarioExclusao = &usuarioID
	e.DataHoraExclusao = &now
	return nil
}
