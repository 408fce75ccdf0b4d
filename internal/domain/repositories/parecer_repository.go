package repositories

import (
	"context"

	"github.com/fabriciolima31/webserviceSenapp/internal/domain/entities"
)

// ParecerRepository define a interface para persistência de pareceres
type ParecerRepository interface {
	// Create persiste um novo parecer. Violação do índice único
	// (usuario, consulta) retorna errors.ErrParecerJaExiste.
	Create(ctx context.Context, parecer *entities.Parecer) error

	// Exists verifica se o usuário já registrou parecer para a consulta
	Exists(ctx context.Context, usuarioID, consultaID uint) (bool, error)

	// FindByUsuarioAndConsulta retorna o parecer do usuário para a
	// consulta, ou (nil, nil) se ele ainda não avaliou
	FindByUsuarioAndConsulta(ctx context.Context, usuarioID, consultaID uint) (*entities.Parecer, error)

	// ListByConsulta retorna todos os pareceres da consulta em ordem de
	// inserção, de todos os usuários
	ListByConsulta(ctx context.Context, consultaID uint) ([]*entities.Parecer, error)
}
