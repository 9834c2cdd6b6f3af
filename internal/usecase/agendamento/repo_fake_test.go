package agendamento

import (
	"context"
	"errors"
	"time"

	"github.com/syndata/field-scheduler/internal/models"
	"github.com/syndata/field-scheduler/internal/timezone"
)

// ts monta horários no fuso da central, o mesmo em que os use cases
// interpretam datas vindas da API.
func ts(hour, min int) time.Time {
	return time.Date(2026, 3, 10, hour, min, 0, 0, timezone.Location(""))
}

// fakeRepo é o dublê em memória usado nos testes do pacote.
type fakeRepo struct {
	clientes     map[uint]*models.Cliente
	agendamentos map[uint]*models.Agendamento
	locs         []models.AgendamentoLocalizacao

	gets    int
	updates int

	updateErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		clientes:     make(map[uint]*models.Cliente),
		agendamentos: make(map[uint]*models.Agendamento),
	}
}

func (f *fakeRepo) GetCliente(_ context.Context, id uint) (*models.Cliente, error) {
	c, ok := f.clientes[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return c, nil
}

func (f *fakeRepo) CreateAgendamento(_ context.Context, ap *models.Agendamento) error {
	if ap.Chave == 0 {
		ap.Chave = uint(len(f.agendamentos) + 1)
	}
	f.agendamentos[ap.Chave] = ap
	return nil
}

func (f *fakeRepo) GetAgendamento(_ context.Context, chave uint) (*models.Agendamento, error) {
	f.gets++
	ap, ok := f.agendamentos[chave]
	if !ok {
		return nil, errors.New("record not found")
	}
	return ap, nil
}

func (f *fakeRepo) GetAgendamentoDoTecnico(
	_ context.Context,
	chave uint,
	tecnicoID uint,
) (*models.Agendamento, error) {
	f.gets++
	ap, ok := f.agendamentos[chave]
	if !ok || ap.CodigoResponsavel == nil || *ap.CodigoResponsavel != tecnicoID {
		return nil, errors.New("record not found")
	}
	return ap, nil
}

func (f *fakeRepo) UpdateAgendamento(_ context.Context, ap *models.Agendamento) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates++
	f.agendamentos[ap.Chave] = ap
	return nil
}

func (f *fakeRepo) DeleteAgendamento(_ context.Context, chave uint) error {
	if _, ok := f.agendamentos[chave]; !ok {
		return errors.New("record not found")
	}
	delete(f.agendamentos, chave)
	return nil
}

func (f *fakeRepo) NextChave(_ context.Context) (uint, error) {
	max := uint(0)
	for chave := range f.agendamentos {
		if chave > max {
			max = chave
		}
	}
	return max + 1, nil
}

func (f *fakeRepo) ListAgendamentosPeriodo(
	_ context.Context,
	ini time.Time,
	fim time.Time,
) ([]models.Agendamento, error) {
	var out []models.Agendamento
	for _, ap := range f.agendamentos {
		if !ap.DataHoraInicial.Before(ini) && ap.DataHoraInicial.Before(fim) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAgendamentosDoTecnico(
	_ context.Context,
	tecnicoID uint,
	ini time.Time,
	fim time.Time,
) ([]models.Agendamento, error) {
	var out []models.Agendamento
	for _, ap := range f.agendamentos {
		if ap.CodigoResponsavel == nil || *ap.CodigoResponsavel != tecnicoID {
			continue
		}
		if !ap.DataHoraInicial.Before(ini) && ap.DataHoraInicial.Before(fim) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) AddLocalizacao(_ context.Context, loc *models.AgendamentoLocalizacao) error {
	f.locs = append(f.locs, *loc)
	return nil
}

func (f *fakeRepo) ListLocalizacoes(
	_ context.Context,
	chave uint,
) ([]models.AgendamentoLocalizacao, error) {
	var out []models.AgendamentoLocalizacao
	for _, loc := range f.locs {
		if loc.AgendamentoChave == chave {
			out = append(out, loc)
		}
	}
	return out, nil
}

// fakeSignatureStore simula o armazenamento da assinatura.
type fakeSignatureStore struct {
	url   string
	err   error
	calls int
}

func (s *fakeSignatureStore) Store(_ context.Context, _ uint, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}
