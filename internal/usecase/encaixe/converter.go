package encaixe

import (
	"context"
	"time"

	"github.com/syndata/field-scheduler/internal/audit"
	agdomain "github.com/syndata/field-scheduler/internal/domain/agendamento"
	domain "github.com/syndata/field-scheduler/internal/domain/encaixe"
	"github.com/syndata/field-scheduler/internal/httperr"
	"github.com/syndata/field-scheduler/internal/models"
	ucag "github.com/syndata/field-scheduler/internal/usecase/agendamento"
)

// ======================================================
// INPUT
// ======================================================

type ConverterEncaixeInput struct {
	Chave     uint
	UsuarioID uint

	Data    string // "2006-01-02"
	HoraIni string // "15:04"
	HoraFim string // "15:04", opcional
}

// Títulos derivados do tipo de solicitação.
var tituloPorTipo = map[string]string{
	"T": "Troca de equipamento",
	"C": "Chamado técnico",
	"V": "Visita técnica",
	"M": "Manutenção",
	"I": "Instalação",
	"S": "Suporte",
}

// ======================================================
// USE CASE
// ======================================================

type ConverterEncaixe struct {
	repo    domain.Repository
	criarAg *ucag.CreateAgendamento
	audit   *audit.Dispatcher
}

func NewConverterEncaixe(
	repo domain.Repository,
	criarAg *ucag.CreateAgendamento,
	audit *audit.Dispatcher,
) *ConverterEncaixe {
	return &ConverterEncaixe{
		repo:    repo,
		criarAg: criarAg,
		audit:   audit,
	}
}

// Execute promove um encaixe aguardando confirmação a agendamento
// (P → C). Cria o agendamento primeiro e depois amarra o encaixe; se a
// amarração falhar, tenta uma única compensação via patch direto.
// Compensação é melhor esforço, não transação: falhando as duas, o
// agendamento criado fica órfão e o erro sobe para o chamador.
func (uc *ConverterEncaixe) Execute(
	ctx context.Context,
	in ConverterEncaixeInput,
) (*models.Encaixe, *models.Agendamento, error) {

	e, err := uc.repo.GetEncaixe(ctx, in.Chave)
	if err != nil {
		return nil, nil, httperr.ErrBusiness("encaixe_not_found")
	}

	if err := domain.CanConverter(domain.StatusOf(e)); err != nil {
		return nil, nil, err
	}
	if e.CodigoCliente == nil {
		return nil, nil, httperr.ErrBusiness("missing_client")
	}
	if e.CodigoResponsavel == nil {
		return nil, nil, httperr.ErrBusiness("missing_technician")
	}

	// Hora de término é opcional e só delimita a janela; o fim real
	// continua vindo do atendimento em campo.
	if in.HoraFim != "" {
		ini, errIni := time.Parse("15:04", in.HoraIni)
		fim, errFim := time.Parse("15:04", in.HoraFim)
		if errIni != nil || errFim != nil || !fim.After(ini) {
			return nil, nil, httperr.ErrBusiness("invalid_date_or_time")
		}
	}

	titulo := tituloPorTipo[e.TipoSolicitacao]
	if titulo == "" {
		titulo = "Encaixe"
	}

	// --------------------------------------------------
	// 1. Agendamento carregando cliente, técnico e título
	// --------------------------------------------------
	ap, err := uc.criarAg.Execute(ctx, ucag.CreateAgendamentoInput{
		CodigoCliente:       *e.CodigoCliente,
		CodigoResponsavel:   e.CodigoResponsavel,
		SecretariaUsuarioID: in.UsuarioID,
		Titulo:              titulo,
		Prioridade:          e.TipoUrgencia,
		AgendaAbertura:      e.Observacao,
		Data:                in.Data,
		Hora:                in.HoraIni,
	})
	if err != nil {
		return nil, nil, err
	}

	// --------------------------------------------------
	// 2. Amarração encaixe → agendamento (status C)
	// --------------------------------------------------
	now := ap.DataHoraAbertura
	if err := domain.Converter(e, ap.Chave, now); err != nil {
		return nil, nil, err
	}

	if err := uc.repo.UpdateEncaixe(ctx, e); err != nil {
		// Compensação: patch direto de status + chave, para não
		// deixar o encaixe preso em P com agendamento órfão.
		if perr := uc.repo.PatchConvertido(ctx, e.Chave, ap.Chave); perr != nil {
			return nil, ap, httperr.ErrBusiness("conversion_link_failed")
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UsuarioID,
		Action:   "encaixe_convertido",
		Entity:   "encaixe",
		EntityID: &e.Chave,
		Metadata: map[string]any{
			"chave_agendamento":  ap.Chave,
			"status_agendamento": agdomain.StatusOf(ap),
		},
	})

	return e, ap, nil
}
