package agendamento

import "github.com/syndata/field-scheduler/internal/httperr"

// ===============================
// Status do Agendamento
// ===============================

// Status é o estado canônico do ciclo de vida de uma visita.
type Status string

const (
	StatusAgendado       Status = "agendado"
	StatusEmDeslocamento Status = "em_deslocamento"
	StatusEmAndamento    Status = "em_andamento"
	StatusFinalizado     Status = "finalizado"
	StatusCancelado      Status = "cancelado"
)

// Códigos de duas letras usados na persistência e no payload.
const (
	CodeAgendado       = "AB"
	CodeEmDeslocamento = "EM"
	CodeEmAndamento    = "AN"
	CodeFinalizado     = "CO"
	CodeCancelado      = "CA"
)

// Tabela única de tradução código → status. Códigos legados (PE, NA,
// CN) são aceitos na leitura mas nunca gravados de volta.
var codeToStatus = map[string]Status{
	"AB": StatusAgendado,
	"PE": StatusAgendado,
	"NA": StatusAgendado,
	"EM": StatusEmDeslocamento,
	"AN": StatusEmAndamento,
	"CO": StatusFinalizado,
	"CA": StatusCancelado,
	"CN": StatusCancelado,
}

var statusToCode = map[Status]string{
	StatusAgendado:       CodeAgendado,
	StatusEmDeslocamento: CodeEmDeslocamento,
	StatusEmAndamento:    CodeEmAndamento,
	StatusFinalizado:     CodeFinalizado,
	StatusCancelado:      CodeCancelado,
}

// FromCode traduz um código de duas letras do banco.
func FromCode(code string) (Status, error) {
	if s, ok := codeToStatus[code]; ok {
		return s, nil
	}
	return "", httperr.ErrBusiness("unknown_status_code")
}

// Code devolve o código canônico de gravação.
func (s Status) Code() string {
	if c, ok := statusToCode[s]; ok {
		return c
	}
	return CodeAgendado
}

func InitialStatus() Status {
	return StatusAgendado
}

// ===============================
// Validações de transição
// ===============================

// CanSair define se o técnico pode registrar saída
func CanSair(current Status) error {
	if current != StatusAgendado {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanChegar define se o técnico pode registrar chegada
func CanChegar(current Status) error {
	if current != StatusEmDeslocamento {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanFinalizar define se o atendimento pode ser encerrado
func CanFinalizar(current Status) error {
	if current != StatusEmAndamento {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancelar: depois que o técnico saiu, a visita deve ser
// finalizada, não cancelada.
func CanCancelar(current Status) error {
	if current != StatusAgendado {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanRemarcar: remarcação só é permitida enquanto agendado.
func CanRemarcar(current Status) error {
	if current != StatusAgendado {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
