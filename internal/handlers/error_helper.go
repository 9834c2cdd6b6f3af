package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/syndata/field-scheduler/internal/httperr"
)

// Mensagens exibidas no painel para cada código de negócio.
var businessMessages = map[string]string{
	"agendamento_not_found":     "Agendamento não encontrado.",
	"encaixe_not_found":         "Encaixe não encontrado.",
	"cliente_not_found":         "Cliente não encontrado.",
	"invalid_state":             "Operação não permitida no status atual.",
	"missing_return_note":       "Informe o retorno do atendimento.",
	"missing_cancel_reason":     "Informe o motivo do cancelamento.",
	"missing_reschedule_reason": "Informe o motivo da remarcação.",
	"missing_client_name":       "Informe o nome do cliente.",
	"encaixe_assigned_to_other": "Encaixe já atribuído a outro técnico.",
	"conversion_link_failed":    "Agendamento criado, mas o encaixe não foi amarrado.",
	"invalid_signature_image":   "Assinatura inválida.",
}

var notFoundCodes = map[string]struct{}{
	"agendamento_not_found": {},
	"encaixe_not_found":     {},
	"cliente_not_found":     {},
}

// respondUsecaseError traduz erros de negócio para HTTP; qualquer
// outro erro vira 500 genérico.
func respondUsecaseError(c *gin.Context, err error) {
	if be, ok := httperr.AsBusiness(err); ok {
		msg := businessMessages[be.Code]
		if msg == "" {
			msg = "Operação inválida."
		}

		if _, ok := notFoundCodes[be.Code]; ok {
			httperr.NotFound(c, be.Code, msg)
			return
		}
		httperr.BadRequest(c, be.Code, msg)
		return
	}

	httperr.Internal(c, "internal_error", "Erro interno.")
}
