package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fabriciolima31/webserviceSenapp/internal/domain/entities"
	"github.com/fabriciolima31/webserviceSenapp/internal/domain/repositories"
)

// ConsultaRepository implementa repositories.ConsultaRepository
type ConsultaRepository struct {
	db *gorm.DB
}

// NewConsultaRepository cria um novo ConsultaRepository
func NewConsultaRepository(db *gorm.DB) repositories.ConsultaRepository {
	return &ConsultaRepository{db: db}
}

func (r *ConsultaRepository) ListActive(ctx context.Context) ([]*entities.Consulta, error) {
	var models []*ConsultaModel

	db := r.getDB(ctx)
	err := db.WithContext(ctx).
		Where("status = ?", entities.ConsultaActive).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	consultas := make([]*entities.Consulta, len(models))
	for i, model := range models {
		consultas[i] = r.toEntity(model)
	}
	return consultas, nil
}

func (r *ConsultaRepository) FindActiveByID(ctx context.Context, id uint) (*entities.Consulta, error) {
	return r.findOne(ctx, "id = ? AND status = ?", id, entities.ConsultaActive)
}

func (r *ConsultaRepository) FindActiveByNome(ctx context.Context, nome string) (*entities.Consulta, error) {
	return r.findOne(ctx, "nome = ? AND status = ?", nome, entities.ConsultaActive)
}

func (r *ConsultaRepository) findOne(ctx context.Context, query string, args ...interface{}) (*entities.Consulta, error) {
	var model ConsultaModel

	db := r.getDB(ctx)
	if err := db.WithContext(ctx).Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *ConsultaRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

func (r *ConsultaRepository) toEntity(model *ConsultaModel) *entities.Consulta {
	return &entities.Consulta{
		ID:               model.ID,
		Nome:             model.Nome,
		Autor:            model.Autor,
		Ementa:           model.Ementa,
		ExplicacaoEmenta: model.ExplicacaoEmenta,
		Status:           model.Status,
	}
}
