package encaixe

import (
	"context"

	"github.com/syndata/field-scheduler/internal/audit"
	domain "github.com/syndata/field-scheduler/internal/domain/encaixe"
	"github.com/syndata/field-scheduler/internal/httperr"
	"github.com/syndata/field-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type AtualizarEncaixeInput struct {
	Chave     uint
	UsuarioID uint

	NomeCliente   *string
	FoneCliente   *string
	CodigoCliente *uint

	TipoSolicitacao *string
	TipoUrgencia    *string
	Observacao      *string
}

// ======================================================
// USE CASE
// ======================================================

type AtualizarEncaixe struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAtualizarEncaixe(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AtualizarEncaixe {
	return &AtualizarEncaixe{
		repo:  repo,
		audit: audit,
	}
}

func (uc *AtualizarEncaixe) Execute(
	ctx context.Context,
	in AtualizarEncaixeInput,
) (*models.Encaixe, error) {

	e, err := uc.repo.GetEncaixe(ctx, in.Chave)
	if err != nil {
		return nil, httperr.ErrBusiness("encaixe_not_found")
	}

	// Convertidos e excluídos são imutáveis.
	switch domain.StatusOf(e) {
	case domain.StatusConvertido, domain.StatusExcluido:
		return nil, httperr.ErrBusiness("invalid_state")
	}

	if in.NomeCliente != nil {
		e.NomeCliente = *in.NomeCliente
	}
	if in.FoneCliente != nil {
		e.FoneCliente = *in.FoneCliente
	}
	if in.CodigoCliente != nil {
		e.CodigoCliente = in.CodigoCliente
	}
	if in.TipoSolicitacao != nil {
		e.TipoSolicitacao = *in.TipoSolicitacao
	}
	if in.TipoUrgencia != nil {
		e.TipoUrgencia = *in.TipoUrgencia
	}
	if in.Observacao != nil {
		e.Observacao = *in.Observacao
	}

	if err := uc.repo.UpdateEncaixe(ctx, e); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UsuarioID,
		Action:   "encaixe_atualizado",
		Entity:   "encaixe",
		EntityID: &e.Chave,
	})

	return e, nil
}
