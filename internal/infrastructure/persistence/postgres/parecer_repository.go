package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fabriciolima31/webserviceSenapp/internal/domain/entities"
	domainerrors "github.com/fabriciolima31/webserviceSenapp/internal/domain/errors"
	"github.com/fabriciolima31/webserviceSenapp/internal/domain/repositories"
)

// ParecerRepository implementa repositories.ParecerRepository
type ParecerRepository struct {
	db *gorm.DB
}

// NewParecerRepository cria um novo ParecerRepository
func NewParecerRepository(db *gorm.DB) repositories.ParecerRepository {
	return &ParecerRepository{db: db}
}

func (r *ParecerRepository) Create(ctx context.Context, parecer *entities.Parecer) error {
	model := r.toModel(parecer)

	db := r.getDB(ctx)
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		// Índice único (id_usuario, id_consulta): dois submits
		// concorrentes do mesmo usuário terminam aqui
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrParecerJaExiste
		}
		return err
	}

	parecer.ID = model.ID
	return nil
}

func (r *ParecerRepository) Exists(ctx context.Context, usuarioID, consultaID uint) (bool, error) {
	var count int64

	db := r.getDB(ctx)
	err := db.WithContext(ctx).
		Model(&ParecerModel{}).
		Where("id_usuario = ? AND id_consulta = ?", usuarioID, consultaID).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *ParecerRepository) FindByUsuarioAndConsulta(ctx context.Context, usuarioID, consultaID uint) (*entities.Parecer, error) {
	var model ParecerModel

	db := r.getDB(ctx)
	err := db.WithContext(ctx).
		Where("id_usuario = ? AND id_consulta = ?", usuarioID, consultaID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model), nil
}

func (r *ParecerRepository) ListByConsulta(ctx context.Context, consultaID uint) ([]*entities.Parecer, error) {
	var models []*ParecerModel

	db := r.getDB(ctx)
	// Ordem de inserção: id é atribuído sequencialmente pelo banco
	err := db.WithContext(ctx).
		Where("id_consulta = ?", consultaID).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	pareceres := make([]*entities.Parecer, len(models))
	for i, model := range models {
		pareceres[i] = r.toEntity(model)
	}
	return pareceres, nil
}

// getDB extrai DB do contexto (para suportar transações)
func (r *ParecerRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

// Conversores
func (r *ParecerRepository) toModel(parecer *entities.Parecer) *ParecerModel {
	return &ParecerModel{
		ID:         parecer.ID,
		UsuarioID:  parecer.UsuarioID,
		ConsultaID: parecer.ConsultaID,
		Estrelas:   parecer.Estrelas,
		Voto:       parecer.Voto,
		Comentario: parecer.Comentario,
	}
}

func (r *ParecerRepository) toEntity(model *ParecerModel) *entities.Parecer {
	return &entities.Parecer{
		ID:         model.ID,
		UsuarioID:  model.UsuarioID,
		ConsultaID: model.ConsultaID,
		Estrelas:   model.Estrelas,
		Voto:       model.Voto,
		Comentario: model.Comentario,
	}
}
