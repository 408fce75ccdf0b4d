package services

import (
	"context"
	"time"

	"github.com/fabriciolima31/webserviceSenapp/internal/domain/entities"
	"github.com/fabriciolima31/webserviceSenapp/internal/domain/errors"
	"github.com/fabriciolima31/webserviceSenapp/internal/domain/ports"
	"github.com/fabriciolima31/webserviceSenapp/internal/domain/repositories"
	"github.com/fabriciolima31/webserviceSenapp/internal/domain/valueobjects"
)

// UserService contém a lógica de negócio para registro e login de usuários
type UserService struct {
	userRepo repositories.UserRepository
	apiKeys  *APIKeyService
	hasher   ports.PasswordHasher
	uow      ports.UnitOfWork
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	apiKeys *APIKeyService,
	hasher ports.PasswordHasher,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		apiKeys:  apiKeys,
		hasher:   hasher,
		uow:      uow,
		logger:   logger,
	}
}

// RegisterInput representa os dados para registrar um usuário
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	UF       string
}

// Register cria um novo usuário: gera o hash da senha, emite a chave de
// API e persiste o registro. A verificação de e-mail duplicado roda
// dentro da mesma transação do insert; o índice único em users.email
// cobre a janela entre a verificação e o insert, e a violação também
// retorna errors.ErrEmailAlreadyExists.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*entities.User, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}

	s.logger.Info("registering user", "email", email.String())

	digest, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	apiKey, err := s.apiKeys.Issue()
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Name:         input.Name,
		Email:        email,
		PasswordHash: digest,
		APIKey:       apiKey,
		Status:       entities.UserActive,
		UF:           input.UF,
		CreatedAt:    time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.userRepo.FindByEmail(txCtx, email.String())
		if err != nil {
			return err
		}
		if existing != nil {
			return errors.ErrEmailAlreadyExists
		}

		return s.userRepo.Create(txCtx, user)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Login verifica e-mail e senha e retorna o usuário dono das credenciais.
// Usuário inexistente e senha incorreta retornam o mesmo
// errors.ErrInvalidCredentials, sem revelar qual dos dois falhou.
func (s *UserService) Login(ctx context.Context, email, password string) (*entities.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrInvalidCredentials
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		s.logger.Warn("login failed", "email", email)
		return nil, errors.ErrInvalidCredentials
	}

	return user, nil
}
