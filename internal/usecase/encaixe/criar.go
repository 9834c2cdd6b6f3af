package encaixe

import (
	"context"

	"github.com/syndata/field-scheduler/internal/audit"
	domain "github.com/syndata/field-scheduler/internal/domain/encaixe"
	"github.com/syndata/field-scheduler/internal/httperr"
	"github.com/syndata/field-scheduler/internal/models"
	"github.com/syndata/field-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CriarEncaixeInput struct {
	UsuarioID uint

	CodigoCliente *uint
	NomeCliente   string
	FoneCliente   string

	// Técnico é opcional: o encaixe pode nascer sem responsável.
	CodigoResponsavel *uint

	TipoSolicitacao string
	TipoUrgencia    string
	Observacao      string
}

// ======================================================
// USE CASE
// ======================================================

type CriarEncaixe struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCriarEncaixe(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CriarEncaixe {
	return &CriarEncaixe{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CriarEncaixe) Execute(
	ctx context.Context,
	in CriarEncaixeInput,
) (*models.Encaixe, error) {

	if in.NomeCliente == "" {
		return nil, httperr.ErrBusiness("missing_client_name")
	}

	urgencia := in.TipoUrgencia
	if urgencia == "" {
		urgencia = domain.UrgenciaMedia
	}

	e := &models.Encaixe{
		CodigoCliente:     in.CodigoCliente,
		NomeCliente:       in.NomeCliente,
		FoneCliente:       in.FoneCliente,
		CodigoResponsavel: in.CodigoResponsavel,

		TipoSolicitacao: in.TipoSolicitacao,
		TipoUrgencia:    urgencia,
		Observacao:      in.Observacao,

		Status:           string(domain.InitialStatus()),
		UsuarioAbertura:  &in.UsuarioID,
		DataHoraAbertura: timezone.Now(),
	}

	if err := uc.repo.CreateEncaixe(ctx, e); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UsuarioID,
		Action:   "encaixe_criado",
		Entity:   "encaixe",
		EntityID: &e.Chave,
	})

	return e, nil
}
