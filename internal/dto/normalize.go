package dto

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Borda única de normalização: os clientes legados enviam o mesmo
// campo sob vários nomes/caixas (statusAg vs STATUS_AG, retorno vs
// AGENDA_RETORNO). Tudo é resolvido aqui, no unmarshal; nenhum código
// interno conhece as variantes.

type legacyBody map[string]json.RawMessage

func parseLegacy(data []byte) (legacyBody, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return legacyBody(raw), nil
}

// pick devolve o primeiro alias presente e não nulo.
func (b legacyBody) pick(keys ...string) (json.RawMessage, bool) {
	for _, k := range keys {
		if v, ok := b[k]; ok && string(v) != "null" {
			return v, true
		}
	}
	return nil, false
}

func (b legacyBody) str(keys ...string) *string {
	v, ok := b.pick(keys...)
	if !ok {
		return nil
	}

	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return nil
	}
	return &s
}

// uintVal aceita número ou string numérica, como o legado manda.
func (b legacyBody) uintVal(keys ...string) *uint {
	v, ok := b.pick(keys...)
	if !ok {
		return nil
	}

	var n uint
	if err := json.Unmarshal(v, &n); err == nil {
		return &n
	}

	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		if parsed, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32); err == nil {
			n = uint(parsed)
			return &n
		}
	}
	return nil
}

// ======================================================
// PUT /agendamentos/{id}
// ======================================================

type AtualizarAgendamentoRequest struct {
	DataHoraInicial *string
	Motivo          string

	CodigoResponsavel *uint
	Titulo            *string
	Prioridade        *string
	AgendaRetorno     *string
	AssinaturaBase64  string
}

func (r *AtualizarAgendamentoRequest) UnmarshalJSON(data []byte) error {
	body, err := parseLegacy(data)
	if err != nil {
		return err
	}

	r.DataHoraInicial = body.str("dataHoraInicial", "DATA_HORA_INICIAL")
	r.CodigoResponsavel = body.uintVal("codigoResponsavel", "CODIGO_RESPONSAVEL", "tecnicoCodigo")
	r.Titulo = body.str("titulo", "TITULO")
	r.Prioridade = body.str("prioridade", "PRIORIDADE")
	r.AgendaRetorno = body.str("agendaRetorno", "AGENDA_RETORNO")

	if motivo := body.str("motivo", "MOTIVO", "retorno", "RETORNO"); motivo != nil {
		r.Motivo = *motivo
	}
	if assinatura := body.str("assinaturaCliente", "ASSINATURA_CLIENTE", "assinaturaBase64"); assinatura != nil {
		r.AssinaturaBase64 = *assinatura
	}

	return nil
}

// ======================================================
// PUT /encaixes/{id}
// ======================================================

type AtualizarEncaixeRequest struct {
	NomeCliente   *string
	FoneCliente   *string
	CodigoCliente *uint

	TipoSolicitacao *string
	TipoUrgencia    *string
	Observacao      *string
}

func (r *AtualizarEncaixeRequest) UnmarshalJSON(data []byte) error {
	body, err := parseLegacy(data)
	if err != nil {
		return err
	}

	r.NomeCliente = body.str("nomeCliente", "NOME_CLIENTE", "cliente", "CLIENTE")
	r.FoneCliente = body.str("foneCliente", "FONE_CLIENTE", "FONE", "telefone")
	r.CodigoCliente = body.uintVal("codigoCliente", "CODIGO_CLIENTE", "codCliente", "COD_CLIENTE")
	r.TipoSolicitacao = body.str("tipoSolicitacao", "TIPO_SOLICITACAO", "tipo", "TIPO")
	r.TipoUrgencia = body.str("tipoUrgencia", "TIPO_URGENCIA", "urgencia", "URGENCIA")
	r.Observacao = body.str("observacao", "OBSERVACAO", "descricao")

	return nil
}
