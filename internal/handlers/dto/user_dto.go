package dto

import (
	"time"

	"github.com/fabriciolima31/webserviceSenapp/internal/domain/entities"
)

// RegisterRequest representa a requisição para registrar um usuário
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	UF       string `json:"uf" binding:"omitempty,len=2"`
}

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse representa a resposta de um login bem-sucedido. A chave
// de API retornada aqui é a credencial para as rotas autenticadas.
type LoginResponse struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	APIKey    string    `json:"api_key"`
	CreatedAt time.Time `json:"created_at"`
}

// ToLoginResponse converte uma entidade User para LoginResponse
func ToLoginResponse(user *entities.User) LoginResponse {
	return LoginResponse{
		Name:      user.Name,
		Email:     user.Email.String(),
		APIKey:    user.APIKey,
		CreatedAt: user.CreatedAt,
	}
}
