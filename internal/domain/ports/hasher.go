package ports

// PasswordHasher define a interface para hashing opaco de senhas.
// O digest nunca é interpretado pelo domínio.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(digest, password string) bool
}
