package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/syndata/field-scheduler/internal/domain/encaixe"
	"github.com/syndata/field-scheduler/internal/models"
)

type EncaixeGormRepository struct {
	db *gorm.DB
}

func NewEncaixeGormRepository(db *gorm.DB) *EncaixeGormRepository {
	return &EncaixeGormRepository{db: db}
}

func (r *EncaixeGormRepository) CreateEncaixe(
	ctx context.Context,
	e *models.Encaixe,
) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EncaixeGormRepository) GetEncaixe(
	ctx context.Context,
	chave uint,
) (*models.Encaixe, error) {

	var e models.Encaixe
	if err := r.db.WithContext(ctx).First(&e, chave).Error; err != nil {
		return nil, err
	}

	return &e, nil
}

func (r *EncaixeGormRepository) UpdateEncaixe(
	ctx context.Context,
	e *models.Encaixe,
) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *EncaixeGormRepository) ListEncaixes(
	ctx context.Context,
	status string,
) ([]models.Encaixe, error) {

	q := r.db.WithContext(ctx)

	if status != "" {
		q = q.Where("status = ?", status)
	} else {
		// Excluídos só aparecem quando pedidos explicitamente.
		q = q.Where("status <> ?", string(domain.StatusExcluido))
	}

	var encaixes []models.Encaixe
	if err := q.
		Order("data_hora_abertura ASC").
		Find(&encaixes).Error; err != nil {
		return nil, err
	}

	return encaixes, nil
}

func (r *EncaixeGormRepository) ListAguardando(
	ctx context.Context,
	tecnicoID *uint,
) ([]models.Encaixe, error) {

	q := r.db.WithContext(ctx).
		Where("status = ?", string(domain.StatusAguardando))

	if tecnicoID != nil {
		q = q.Where("codigo_responsavel = ?", *tecnicoID)
	}

	var encaixes []models.Encaixe
	if err := q.
		Order("data_hora_abertura ASC").
		Find(&encaixes).Error; err != nil {
		return nil, err
	}

	return encaixes, nil
}

func (r *EncaixeGormRepository) PatchConvertido(
	ctx context.Context,
	chave uint,
	chaveAgendamento uint,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Encaixe{}).
		Where("chave = ?", chave).
		Updates(map[string]any{
			"status":            string(domain.StatusConvertido),
			"chave_agendamento": chaveAgendamento,
		}).Error
}

// Compile-time check
var _ domain.Repository = (*EncaixeGormRepository)(nil)
