package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fabriciolima31/webserviceSenapp/internal/domain/errors"
	"github.com/fabriciolima31/webserviceSenapp/internal/handlers/dto"
	"github.com/fabriciolima31/webserviceSenapp/internal/services"
)

// UserHandler lida com requisições HTTP de registro e login
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Register registra um novo usuário
//
//	@Summary	Registra um novo usuário
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.RegisterRequest	true	"Dados do usuário"
//	@Success	201		{object}	dto.MessageResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	409		{object}	dto.ErrorResponse
//	@Router		/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, err))
		return
	}

	_, err := h.userService.Register(c.Request.Context(), services.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		UF:       req.UF,
	})
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrEmailAlreadyExists):
			c.JSON(http.StatusConflict, dto.ConflictErrorResponseI18n(c, "error.email_already_exists"))
		default:
			c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		}
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{
		Message: dto.T(c, "register.success"),
	})
}

// Login autentica por e-mail e senha e devolve a chave de API do usuário
//
//	@Summary	Autentica um usuário
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.LoginRequest	true	"Credenciais"
//	@Success	200		{object}	dto.LoginResponse
//	@Failure	401		{object}	dto.ErrorResponse
//	@Router		/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, err))
		return
	}

	user, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errs.Is(err, errors.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, "error.invalid_credentials"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToLoginResponse(user))
}
