package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrEmailAlreadyExists = errors.New("error.email_already_exists")
	ErrInvalidCredentials = errors.New("error.invalid_credentials")
	ErrInvalidAPIKey      = errors.New("error.invalid_api_key")
	ErrConsultaNotFound   = errors.New("error.consulta_not_found")
	ErrParecerJaExiste    = errors.New("error.parecer_ja_existe")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeBadRequest   = "/problems/bad-request"
	ProblemTypeInternal     = "/problems/internal-error"
)
