package encaixe

import (
	"context"
	"errors"
	"time"

	"github.com/syndata/field-scheduler/internal/models"
)

// fakeRepo é o dublê em memória do repositório de encaixes.
type fakeRepo struct {
	encaixes map[uint]*models.Encaixe

	updates int
	patches int

	updateErr error
	patchErr  error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{encaixes: make(map[uint]*models.Encaixe)}
}

func (f *fakeRepo) CreateEncaixe(_ context.Context, e *models.Encaixe) error {
	if e.Chave == 0 {
		e.Chave = uint(len(f.encaixes) + 1)
	}
	f.encaixes[e.Chave] = e
	return nil
}

func (f *fakeRepo) GetEncaixe(_ context.Context, chave uint) (*models.Encaixe, error) {
	e, ok := f.encaixes[chave]
	if !ok {
		return nil, errors.New("record not found")
	}
	return e, nil
}

func (f *fakeRepo) UpdateEncaixe(_ context.Context, e *models.Encaixe) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates++
	f.encaixes[e.Chave] = e
	return nil
}

func (f *fakeRepo) ListEncaixes(_ context.Context, status string) ([]models.Encaixe, error) {
	var out []models.Encaixe
	for _, e := range f.encaixes {
		if status != "" && e.Status != status {
			continue
		}
		if status == "" && e.Status == "E" {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeRepo) ListAguardando(_ context.Context, tecnicoID *uint) ([]models.Encaixe, error) {
	var out []models.Encaixe
	for _, e := range f.encaixes {
		if e.Status != "P" {
			continue
		}
		if tecnicoID != nil && (e.CodigoResponsavel == nil || *e.CodigoResponsavel != *tecnicoID) {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeRepo) PatchConvertido(_ context.Context, chave uint, chaveAgendamento uint) error {
	if f.patchErr != nil {
		return f.patchErr
	}
	f.patches++
	if e, ok := f.encaixes[chave]; ok {
		e.Status = "C"
		e.ChaveAgendamento = &chaveAgendamento
	}
	return nil
}

// fakeAgRepo cobre só o que a conversão usa do repositório de
// agendamentos: snapshot de cliente e criação.
type fakeAgRepo struct {
	clientes     map[uint]*models.Cliente
	agendamentos map[uint]*models.Agendamento
}

func newFakeAgRepo() *fakeAgRepo {
	return &fakeAgRepo{
		clientes:     make(map[uint]*models.Cliente),
		agendamentos: make(map[uint]*models.Agendamento),
	}
}

func (f *fakeAgRepo) GetCliente(_ context.Context, id uint) (*models.Cliente, error) {
	c, ok := f.clientes[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return c, nil
}

func (f *fakeAgRepo) CreateAgendamento(_ context.Context, ap *models.Agendamento) error {
	if ap.Chave == 0 {
		ap.Chave = uint(len(f.agendamentos) + 1)
	}
	f.agendamentos[ap.Chave] = ap
	return nil
}

func (f *fakeAgRepo) GetAgendamento(_ context.Context, chave uint) (*models.Agendamento, error) {
	ap, ok := f.agendamentos[chave]
	if !ok {
		return nil, errors.New("record not found")
	}
	return ap, nil
}

func (f *fakeAgRepo) GetAgendamentoDoTecnico(
	_ context.Context,
	chave uint,
	tecnicoID uint,
) (*models.Agendamento, error) {
	return f.GetAgendamento(nil, chave)
}

func (f *fakeAgRepo) UpdateAgendamento(_ context.Context, ap *models.Agendamento) error {
	f.agendamentos[ap.Chave] = ap
	return nil
}

func (f *fakeAgRepo) DeleteAgendamento(_ context.Context, chave uint) error {
	delete(f.agendamentos, chave)
	return nil
}

func (f *fakeAgRepo) NextChave(_ context.Context) (uint, error) {
	return uint(len(f.agendamentos) + 1), nil
}

func (f *fakeAgRepo) ListAgendamentosPeriodo(
	_ context.Context,
	_ time.Time,
	_ time.Time,
) ([]models.Agendamento, error) {
	return nil, nil
}

func (f *fakeAgRepo) ListAgendamentosDoTecnico(
	_ context.Context,
	_ uint,
	_ time.Time,
	_ time.Time,
) ([]models.Agendamento, error) {
	return nil, nil
}

func (f *fakeAgRepo) AddLocalizacao(_ context.Context, _ *models.AgendamentoLocalizacao) error {
	return nil
}

func (f *fakeAgRepo) ListLocalizacoes(
	_ context.Context,
	_ uint,
) ([]models.AgendamentoLocalizacao, error) {
	return nil, nil
}
