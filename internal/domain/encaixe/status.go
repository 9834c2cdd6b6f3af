package encaixe

import "github.com/syndata/field-scheduler/internal/httperr"

// ===============================
// Status do Encaixe
// ===============================

type Status string

const (
	StatusAberto     Status = "A"
	StatusAguardando Status = "P"
	StatusConvertido Status = "C"
	StatusExcluido   Status = "E"
)

// ===============================
// Urgência (só ordenação)
// ===============================

const (
	UrgenciaBaixa = "B"
	UrgenciaMedia = "M"
	UrgenciaAlta  = "A"
)

var urgenciaPeso = map[string]int{
	UrgenciaBaixa: 1,
	UrgenciaMedia: 2,
	UrgenciaAlta:  3,
}

// UrgenciaPeso devolve o peso de ordenação; desconhecida conta como
// média, igual ao default de exibição.
func UrgenciaPeso(u string) int {
	if p, ok := urgenciaPeso[u]; ok {
		return p
	}
	return urgenciaPeso[UrgenciaMedia]
}

// ===============================
// Validações
// ===============================

// CanSolicitar define se um técnico pode pedir o encaixe
func CanSolicitar(current Status) error {
	if current != StatusAberto {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanConverter: conversão só a partir de aguardando confirmação
func CanConverter(current Status) error {
	if current != StatusAguardando {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanExcluir: soft delete vale para qualquer estado não convertido
func CanExcluir(current Status) error {
	if current == StatusConvertido {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusAberto
}
