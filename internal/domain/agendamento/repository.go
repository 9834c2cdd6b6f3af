package agendamento

import (
	"context"
	"time"

	"github.com/syndata/field-scheduler/internal/models"
)

type Repository interface {
	// -------- Cliente (snapshot na criação) --------
	GetCliente(
		ctx context.Context,
		id uint,
	) (*models.Cliente, error)

	// -------- Agendamento (CRUD) --------
	CreateAgendamento(
		ctx context.Context,
		ap *models.Agendamento,
	) error

	GetAgendamento(
		ctx context.Context,
		chave uint,
	) (*models.Agendamento, error)

	GetAgendamentoDoTecnico(
		ctx context.Context,
		chave uint,
		tecnicoID uint,
	) (*models.Agendamento, error)

	UpdateAgendamento(
		ctx context.Context,
		ap *models.Agendamento,
	) error

	DeleteAgendamento(
		ctx context.Context,
		chave uint,
	) error

	NextChave(
		ctx context.Context,
	) (uint, error)

	// -------- Listagens --------
	ListAgendamentosPeriodo(
		ctx context.Context,
		ini time.Time,
		fim time.Time,
	) ([]models.Agendamento, error)

	ListAgendamentosDoTecnico(
		ctx context.Context,
		tecnicoID uint,
		ini time.Time,
		fim time.Time,
	) ([]models.Agendamento, error)

	// -------- Localizações (checkpoints) --------
	AddLocalizacao(
		ctx context.Context,
		loc *models.AgendamentoLocalizacao,
	) error

	ListLocalizacoes(
		ctx context.Context,
		chave uint,
	) ([]models.AgendamentoLocalizacao, error)
}
