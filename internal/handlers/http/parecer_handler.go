package http

import (
	errs "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fabriciolima31/webserviceSenapp/internal/domain/errors"
	"github.com/fabriciolima31/webserviceSenapp/internal/handlers/dto"
	"github.com/fabriciolima31/webserviceSenapp/internal/handlers/middleware"
	"github.com/fabriciolima31/webserviceSenapp/internal/services"
)

// ParecerHandler lida com requisições HTTP de pareceres
type ParecerHandler struct {
	parecerService *services.ParecerService
}

// NewParecerHandler cria um novo ParecerHandler
func NewParecerHandler(parecerService *services.ParecerService) *ParecerHandler {
	return &ParecerHandler{
		parecerService: parecerService,
	}
}

// Submit registra o parecer do usuário autenticado para uma consulta
//
//	@Summary	Registra um parecer
//	@Tags		pareceres
//	@Accept		json
//	@Produce	json
//	@Param		Authorization	header		string						true	"Chave de API"
//	@Param		request			body		dto.SubmitParecerRequest	true	"Parecer"
//	@Success	201				{object}	dto.MessageResponse
//	@Failure	400				{object}	dto.ErrorResponse
//	@Failure	404				{object}	dto.ErrorResponse
//	@Failure	409				{object}	dto.ErrorResponse
//	@Router		/pareceres [post]
func (h *ParecerHandler) Submit(c *gin.Context) {
	var req dto.SubmitParecerRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, err))
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, "error.invalid_api_key"))
		return
	}

	_, err := h.parecerService.Submit(c.Request.Context(), services.SubmitInput{
		UsuarioID:  userID,
		ConsultaID: req.ConsultaID,
		Estrelas:   req.Estrelas,
		Voto:       *req.Voto,
		Comentario: req.Comentario,
	})
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrParecerJaExiste):
			c.JSON(http.StatusConflict, dto.ConflictErrorResponseI18n(c, "error.parecer_ja_existe"))
		case errs.Is(err, errors.ErrConsultaNotFound):
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "error.consulta_not_found"))
		default:
			c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		}
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{
		Message: dto.T(c, "parecer.success"),
	})
}

// Status indica se o usuário autenticado já avaliou a consulta
//
//	@Summary	Status do parecer do usuário para uma consulta
//	@Tags		pareceres
//	@Produce	json
//	@Param		Authorization	header		string	true	"Chave de API"
//	@Param		id				path		int		true	"ID da consulta"
//	@Success	200				{object}	dto.ParecerStatusResponse
//	@Router		/consultas/{id}/parecer/status [get]
func (h *ParecerHandler) Status(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.invalid_id"))
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, "error.invalid_api_key"))
		return
	}

	avaliada, err := h.parecerService.HasRated(c.Request.Context(), userID, uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ParecerStatusResponse{Avaliada: avaliada})
}
