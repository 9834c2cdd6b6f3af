package encaixe

import (
	"context"

	"github.com/syndata/field-scheduler/internal/models"
)

type Repository interface {
	CreateEncaixe(
		ctx context.Context,
		e *models.Encaixe,
	) error

	GetEncaixe(
		ctx context.Context,
		chave uint,
	) (*models.Encaixe, error)

	UpdateEncaixe(
		ctx context.Context,
		e *models.Encaixe,
	) error

	// ListEncaixes filtra por status quando informado; excluídos só
	// entram quando pedidos explicitamente.
	ListEncaixes(
		ctx context.Context,
		status string,
	) ([]models.Encaixe, error)

	ListAguardando(
		ctx context.Context,
		tecnicoID *uint,
	) ([]models.Encaixe, error)

	// PatchConvertido é a compensação da conversão: grava status C +
	// chave do agendamento direto nas colunas, sem passar pelo Save.
	PatchConvertido(
		ctx context.Context,
		chave uint,
		chaveAgendamento uint,
	) error
}
