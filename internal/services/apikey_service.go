package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fabriciolima31/webserviceSenapp/internal/domain/errors"
	"github.com/fabriciolima31/webserviceSenapp/internal/domain/repositories"
)

// APIKeyService emite e valida as chaves de API que identificam usuários.
// Uma chave é emitida uma única vez no registro e vale pela vida da conta;
// não há rotação nem expiração.
type APIKeyService struct {
	userRepo repositories.UserRepository
}

// NewAPIKeyService cria um novo APIKeyService
func NewAPIKeyService(userRepo repositories.UserRepository) *APIKeyService {
	return &APIKeyService{userRepo: userRepo}
}

// Issue gera uma nova chave opaca de tamanho fixo (64 caracteres hex).
// A chave é o digest SHA-256 de 32 bytes de origem criptográfica, um UUID
// e o relógio em nanossegundos, então a probabilidade de colisão é
// desprezível.
func (s *APIKeyService) Issue() (string, error) {
	seed := make([]byte, 32)
	if _, err := rand.Read(seed); err != nil {
		return "", fmt.Errorf("failed to read random seed: %w", err)
	}

	id := uuid.New()

	var now [8]byte
	binary.BigEndian.PutUint64(now[:], uint64(time.Now().UnixNano()))

	h := sha256.New()
	h.Write(seed)
	h.Write(id[:])
	h.Write(now[:])

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Validate verifica se algum usuário possui a chave. Falha de acesso ao
// banco retorna erro; chave desconhecida retorna (false, nil).
func (s *APIKeyService) Validate(ctx context.Context, apiKey string) (bool, error) {
	user, err := s.userRepo.FindByAPIKey(ctx, apiKey)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

// ResolveUserID mapeia a chave para o id do usuário que a possui.
// Chave desconhecida retorna errors.ErrInvalidAPIKey; falha do banco
// propaga como erro de infraestrutura, distinto de chave inválida.
func (s *APIKeyService) ResolveUserID(ctx context.Context, apiKey string) (uint, error) {
	user, err := s.userRepo.FindByAPIKey(ctx, apiKey)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, errors.ErrInvalidAPIKey
	}
	return user.ID, nil
}
