package encaixe

import (
	"context"
	"sort"

	domain "github.com/syndata/field-scheduler/internal/domain/encaixe"
	"github.com/syndata/field-scheduler/internal/models"
)

type ListarEncaixes struct {
	repo domain.Repository
}

func NewListarEncaixes(repo domain.Repository) *ListarEncaixes {
	return &ListarEncaixes{repo: repo}
}

// Execute lista encaixes por status (vazio = todos não excluídos),
// ordenados por urgência decrescente e depois pela abertura. A
// urgência só manda na ordenação, nunca em escalonamento automático.
func (uc *ListarEncaixes) Execute(
	ctx context.Context,
	status string,
) ([]models.Encaixe, error) {

	encaixes, err := uc.repo.ListEncaixes(ctx, status)
	if err != nil {
		return nil, err
	}

	ordenarPorUrgencia(encaixes)
	return encaixes, nil
}

// Aguardando devolve os encaixes pendentes de confirmação, opcional-
// mente filtrados pelo técnico solicitante.
func (uc *ListarEncaixes) Aguardando(
	ctx context.Context,
	tecnicoID *uint,
) ([]models.Encaixe, error) {

	encaixes, err := uc.repo.ListAguardando(ctx, tecnicoID)
	if err != nil {
		return nil, err
	}

	ordenarPorUrgencia(encaixes)
	return encaixes, nil
}

func ordenarPorUrgencia(encaixes []models.Encaixe) {
	sort.SliceStable(encaixes, func(i, j int) bool {
		pi := domain.UrgenciaPeso(encaixes[i].TipoUrgencia)
		pj := domain.UrgenciaPeso(encaixes[j].TipoUrgencia)
		if pi != pj {
			return pi > pj
		}
		return encaixes[i].DataHoraAbertura.Before(encaixes[j].DataHoraAbertura)
	})
}
