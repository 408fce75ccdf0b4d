package entities

import (
	"errors"
	"time"

	"github.com/fabriciolima31/webserviceSenapp/internal/domain/valueobjects"
)

// Status da conta de um usuário
const (
	UserInactive = 0
	UserActive   = 1
)

// User representa um usuário do sistema
type User struct {
	ID           uint
	Name         string
	Email        valueobjects.Email
	PasswordHash string
	APIKey       string
	Status       int
	UF           string
	CreatedAt    time.Time
}

// IsActive verifica se a conta do usuário está ativa
func (u *User) IsActive() bool {
	return u.Status == UserActive
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.Name == "" {
		return errors.New("name is required")
	}

	if len(u.Name) < 2 {
		return errors.New("name must be at least 2 characters")
	}

	if u.PasswordHash == "" {
		return errors.New("password hash is required")
	}

	if u.APIKey == "" {
		return errors.New("api key is required")
	}

	return nil
}
