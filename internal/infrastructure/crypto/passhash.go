// Package crypto implementa o hashing de senhas com bcrypt.
package crypto

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/fabriciolima31/webserviceSenapp/internal/domain/ports"
)

// BcryptHasher implementa ports.PasswordHasher usando bcrypt
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher cria um hasher com o custo padrão do bcrypt
func NewBcryptHasher() ports.PasswordHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash gera o digest bcrypt da senha. O salt fica embutido no digest,
// então o digest é gerado uma única vez no registro e nunca recalculado.
func (h *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify compara a senha com o digest armazenado
func (h *BcryptHasher) Verify(digest, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
