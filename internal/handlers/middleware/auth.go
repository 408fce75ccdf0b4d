package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	domainerrors "github.com/fabriciolima31/webserviceSenapp/internal/domain/errors"
	"github.com/fabriciolima31/webserviceSenapp/internal/domain/ports"
	"github.com/fabriciolima31/webserviceSenapp/internal/infrastructure/i18n"
	"github.com/fabriciolima31/webserviceSenapp/internal/services"
)

// UserIDContextKey é a chave usada para armazenar o id do usuário
// autenticado no contexto do Gin. O id vive só no contexto da requisição,
// nunca em estado compartilhado do processo.
const UserIDContextKey = "auth_user_id"

// APIKeyAuth autentica requisições pela chave de API no header
// Authorization
type APIKeyAuth struct {
	apiKeys     *services.APIKeyService
	i18nService *i18n.Service
	logger      ports.Logger
}

// NewAPIKeyAuth cria um novo middleware de autenticação
func NewAPIKeyAuth(apiKeys *services.APIKeyService, i18nService *i18n.Service, logger ports.Logger) *APIKeyAuth {
	return &APIKeyAuth{
		apiKeys:     apiKeys,
		i18nService: i18nService,
		logger:      logger,
	}
}

// Authenticate valida a chave de API e vincula o id do usuário ao
// contexto da requisição. Header ausente responde 400; chave desconhecida
// responde 401; falha do banco responde 500 — chave inválida e banco
// indisponível são falhas de classes diferentes.
func (m *APIKeyAuth) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("Authorization")
		if apiKey == "" {
			m.abortWithProblem(c, http.StatusBadRequest,
				domainerrors.ProblemTypeBadRequest,
				"error.bad_request.title", "error.missing_api_key")
			return
		}

		userID, err := m.apiKeys.ResolveUserID(c.Request.Context(), apiKey)
		if err != nil {
			if errors.Is(err, domainerrors.ErrInvalidAPIKey) {
				m.abortWithProblem(c, http.StatusUnauthorized,
					domainerrors.ProblemTypeUnauthorized,
					"error.unauthorized.title", "error.invalid_api_key")
				return
			}

			m.logger.Error("api key lookup failed", "error", err)
			m.abortWithProblem(c, http.StatusInternalServerError,
				domainerrors.ProblemTypeInternal,
				"error.internal.title", "error.internal.detail")
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Next()
	}
}

func (m *APIKeyAuth) abortWithProblem(c *gin.Context, status int, problemType, titleKey, detailKey string) {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	lang := c.GetString(LanguageContextKey)
	if lang == "" {
		lang = m.i18nService.GetDefaultLanguage()
	}

	c.AbortWithStatusJSON(status, problems.DefaultProblem{
		Type:     baseURL + problemType,
		Title:    m.i18nService.T(lang, titleKey),
		Status:   status,
		Detail:   m.i18nService.T(lang, detailKey),
		Instance: c.Request.URL.Path,
	})
}

// UserID retorna o id do usuário autenticado vinculado pelo gate. O
// segundo retorno é false em rotas que não passaram pelo Authenticate.
func UserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(UserIDContextKey)
	if !exists {
		return 0, false
	}

	userID, ok := value.(uint)
	return userID, ok
}
