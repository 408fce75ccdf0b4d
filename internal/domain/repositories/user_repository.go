package repositories

import (
	"context"

	"github.com/fabriciolima31/webserviceSenapp/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários.
// Os métodos Find* retornam (nil, nil) quando o registro não existe;
// erro não-nil indica falha de infraestrutura, nunca "não encontrado".
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id uint) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByAPIKey(ctx context.Context, apiKey string) (*entities.User, error)
}
