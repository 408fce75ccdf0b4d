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

// ConsultaHandler lida com requisições HTTP de consultas e estatísticas
type ConsultaHandler struct {
	consultaService *services.ConsultaService
}

// NewConsultaHandler cria um novo ConsultaHandler
func NewConsultaHandler(consultaService *services.ConsultaService) *ConsultaHandler {
	return &ConsultaHandler{
		consultaService: consultaService,
	}
}

// List lista os nomes das consultas ativas
//
//	@Summary	Lista os nomes das consultas ativas
//	@Tags		consultas
//	@Produce	json
//	@Param		Authorization	header		string	true	"Chave de API"
//	@Success	200				{object}	dto.ConsultaListResponse
//	@Router		/consultas [get]
func (h *ConsultaHandler) List(c *gin.Context) {
	nomes, err := h.consultaService.ListarNomes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ConsultaListResponse{Consultas: nomes})
}

// Estatisticas retorna a consulta com a agregação de todos os pareceres
//
//	@Summary	Estatísticas de uma consulta
//	@Tags		consultas
//	@Produce	json
//	@Param		Authorization	header		string	true	"Chave de API"
//	@Param		id				path		int		true	"ID da consulta"
//	@Success	200				{object}	dto.EstatisticaResponse
//	@Failure	404				{object}	dto.ErrorResponse
//	@Router		/consultas/{id}/estatisticas [get]
func (h *ConsultaHandler) Estatisticas(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.invalid_id"))
		return
	}

	resultado, err := h.consultaService.Estatisticas(c.Request.Context(), uint(id))
	if err != nil {
		if errs.Is(err, errors.ErrConsultaNotFound) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "error.consulta_not_found"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToEstatisticaResponse(resultado))
}

// BuscarPorNome retorna os metadados de uma consulta pelo nome
//
//	@Summary	Busca uma consulta pelo nome
//	@Tags		consultas
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.BuscaConsultaRequest	true	"Nome da consulta"
//	@Success	200		{object}	dto.ConsultaResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/consultas/busca [post]
func (h *ConsultaHandler) BuscarPorNome(c *gin.Context) {
	var req dto.BuscaConsultaRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, err))
		return
	}

	consulta, err := h.consultaService.BuscarPorNome(c.Request.Context(), req.NomeConsulta)
	if err != nil {
		if errs.Is(err, errors.ErrConsultaNotFound) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "error.consulta_not_found"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToConsultaResponse(consulta))
}

// ParecerDoUsuario retorna a consulta pelo nome com o parecer do próprio
// usuário autenticado
//
//	@Summary	Consulta com o parecer do usuário autenticado
//	@Tags		pareceres
//	@Accept		json
//	@Produce	json
//	@Param		Authorization	header		string						true	"Chave de API"
//	@Param		request			body		dto.BuscaConsultaRequest	true	"Nome da consulta"
//	@Success	200				{object}	dto.ConsultaComParecerResponse
//	@Failure	404				{object}	dto.ErrorResponse
//	@Router		/pareceres/busca [post]
func (h *ConsultaHandler) ParecerDoUsuario(c *gin.Context) {
	var req dto.BuscaConsultaRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, err))
		return
	}

	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c, "error.invalid_api_key"))
		return
	}

	resultado, err := h.consultaService.ParecerDoUsuario(c.Request.Context(), userID, req.NomeConsulta)
	if err != nil {
		if errs.Is(err, errors.ErrConsultaNotFound) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, "error.consulta_not_found"))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToConsultaComParecerResponse(resultado))
}
