package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/syndata/field-scheduler/internal/domain/agendamento"
	"github.com/syndata/field-scheduler/internal/models"
)

type AgendamentoGormRepository struct {
	db *gorm.DB
}

func NewAgendamentoGormRepository(db *gorm.DB) *AgendamentoGormRepository {
	return &AgendamentoGormRepository{db: db}
}

// --------------------------------------------------
// Cliente
// --------------------------------------------------

func (r *AgendamentoGormRepository) GetCliente(
	ctx context.Context,
	id uint,
) (*models.Cliente, error) {

	var cliente models.Cliente
	if err := r.db.WithContext(ctx).First(&cliente, id).Error; err != nil {
		return nil, err
	}
	return &cliente, nil
}

// --------------------------------------------------
// Agendamento (CRUD)
// --------------------------------------------------

func (r *AgendamentoGormRepository) CreateAgendamento(
	ctx context.Context,
	ap *models.Agendamento,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AgendamentoGormRepository) GetAgendamento(
	ctx context.Context,
	chave uint,
) (*models.Agendamento, error) {

	var ap models.Agendamento
	if err := r.db.WithContext(ctx).
		Preload("Tecnico").
		First(&ap, chave).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AgendamentoGormRepository) GetAgendamentoDoTecnico(
	ctx context.Context,
	chave uint,
	tecnicoID uint,
) (*models.Agendamento, error) {

	var ap models.Agendamento
	if err := r.db.WithContext(ctx).
		Where("chave = ? AND codigo_responsavel = ?", chave, tecnicoID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AgendamentoGormRepository) UpdateAgendamento(
	ctx context.Context,
	ap *models.Agendamento,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AgendamentoGormRepository) DeleteAgendamento(
	ctx context.Context,
	chave uint,
) error {
	return r.db.WithContext(ctx).
		Delete(&models.Agendamento{}, chave).Error
}

func (r *AgendamentoGormRepository) NextChave(
	ctx context.Context,
) (uint, error) {

	var max *uint
	if err := r.db.WithContext(ctx).
		Model(&models.Agendamento{}).
		Select("MAX(chave)").
		Scan(&max).Error; err != nil {
		return 0, err
	}

	if max == nil {
		return 1, nil
	}
	return *max + 1, nil
}

// --------------------------------------------------
// Listagens
// --------------------------------------------------

func (r *AgendamentoGormRepository) ListAgendamentosPeriodo(
	ctx context.Context,
	ini time.Time,
	fim time.Time,
) ([]models.Agendamento, error) {

	var aps []models.Agendamento
	if err := r.db.WithContext(ctx).
		Where(
			"inativo = 'N' AND data_hora_inicial >= ? AND data_hora_inicial < ?",
			ini, fim,
		).
		Order("data_hora_inicial ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AgendamentoGormRepository) ListAgendamentosDoTecnico(
	ctx context.Context,
	tecnicoID uint,
	ini time.Time,
	fim time.Time,
) ([]models.Agendamento, error) {

	var aps []models.Agendamento
	if err := r.db.WithContext(ctx).
		Where(
			"codigo_responsavel = ? AND inativo = 'N' AND data_hora_inicial >= ? AND data_hora_inicial < ?",
			tecnicoID, ini, fim,
		).
		Order("data_hora_inicial ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// --------------------------------------------------
// Localizações
// --------------------------------------------------

func (r *AgendamentoGormRepository) AddLocalizacao(
	ctx context.Context,
	loc *models.AgendamentoLocalizacao,
) error {
	return r.db.WithContext(ctx).Create(loc).Error
}

func (r *AgendamentoGormRepository) ListLocalizacoes(
	ctx context.Context,
	chave uint,
) ([]models.AgendamentoLocalizacao, error) {

	var locs []models.AgendamentoLocalizacao
	if err := r.db.WithContext(ctx).
		Where("agendamento_chave = ?", chave).
		Order("data_hora ASC").
		Find(&locs).Error; err != nil {
		return nil, err
	}

	return locs, nil
}

// Compile-time check
var _ domain.Repository = (*AgendamentoGormRepository)(nil)
