package handlers

import (
	"errors"
	"net/http"
	request "ouvidoria/internal/adapter/http/dto/request"
	response "ouvidoria/internal/adapter/http/dto/response"
	"ouvidoria/internal/domain/entities"
	"ouvidoria/internal/logging"
	"ouvidoria/internal/usecase"
	"ouvidoria/internal/usecase/interfaces"
	"ouvidoria/pkg"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidPayload    = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Corpo da requisição inválido", http.StatusBadRequest)
	errValidationFailed  = pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Verifique os campos destacados", http.StatusBadRequest)
	errInvalidQuery      = pkg.NewDomainErrorSimple("INVALID_QUERY", "Parâmetros de consulta inválidos", http.StatusBadRequest)
	errInvalidRequest    = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Requisição inválida", http.StatusBadRequest)
	errNotFound          = pkg.NewDomainErrorSimple("MANIFESTACAO_NOT_FOUND", "Protocolo não encontrado", http.StatusNotFound)
	errProtocoloConflict = pkg.NewDomainErrorSimple("PROTOCOLO_CONFLICT", "Não foi possível gerar um protocolo, tente novamente", http.StatusConflict)
)

// ManifestacaoHandler serves the citizen and staff endpoints.
type ManifestacaoHandler struct {
	usecase usecase.IManifestacaoUseCase
	loc     *time.Location
}

// NewManifestacaoHandler builds the handler. Bare dates in list filters are read in loc
// (time.Local when nil).
func NewManifestacaoHandler(uc usecase.IManifestacaoUseCase, loc *time.Location) *ManifestacaoHandler {
	if loc == nil {
		loc = time.Local
	}
	return &ManifestacaoHandler{usecase: uc, loc: loc}
}

// Criar godoc
// @Summary Registra uma manifestação
// @Description Valida o formulário, gera o protocolo e grava a manifestação com status ABERTA
// @Tags manifestacoes
// @Accept json
// @Produce json
// @Param manifestacao body request.ManifestacaoRequest true "Dados da manifestação"
// @Success 201 {object} response.CriarManifestacaoResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /api/manifestacoes [post]
func (h *ManifestacaoHandler) Criar(c *gin.Context) {
	var payload request.ManifestacaoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	if fields := payload.Validate(); fields != nil {
		appErr := errValidationFailed.WithFields(fields)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	nova, err := payload.ToEntity()
	if err != nil {
		appErr := mapManifestacaoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	m, err := h.usecase.Criar(c.Request.Context(), nova)
	if err != nil {
		appErr := mapManifestacaoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCriada(m))
}

// BuscarPorProtocolo godoc
// @Summary Consulta uma manifestação pelo protocolo
// @Description Aceita o protocolo com ou sem formatação (2024-000001 ou 2024000001)
// @Tags manifestacoes
// @Produce json
// @Param id path string true "Protocolo"
// @Success 200 {object} response.ManifestacaoResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /api/manifestacoes/{id} [get]
// @Router /api/manifestacoes/protocolo/{id} [get]
func (h *ManifestacaoHandler) BuscarPorProtocolo(c *gin.Context) {
	protocolo := c.Param("protocolo")
	if protocolo == "" {
		// GET /manifestacoes/:id shares its wildcard with the status route.
		protocolo = c.Param("id")
	}

	m, err := h.usecase.BuscarPorProtocolo(c.Request.Context(), protocolo)
	if err != nil {
		appErr := mapManifestacaoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromManifestacao(m))
}

// Listar godoc
// @Summary Lista manifestações
// @Description Filtros opcionais; ordenado por data de criação decrescente. limit=0 retorna tudo.
// @Tags manifestacoes
// @Produce json
// @Param status query string false "Status"
// @Param tipo query string false "Tipo"
// @Param email query string false "E-mail (sem diferenciar maiúsculas)"
// @Param protocolo query string false "Trecho do protocolo"
// @Param dataInicio query string false "Data inicial (YYYY-MM-DD ou RFC3339)"
// @Param dataFim query string false "Data final (YYYY-MM-DD ou RFC3339)"
// @Param page query int false "Página" default(1)
// @Param limit query int false "Itens por página" default(10)
// @Success 200 {object} response.ListManifestacoesResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /api/manifestacoes [get]
func (h *ManifestacaoHandler) Listar(c *gin.Context) {
	var q request.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
		return
	}
	filtros, err := q.ToFiltros(h.loc)
	if err != nil {
		appErr := errInvalidQuery.WithFields(map[string]string{"query": err.Error()})
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.usecase.Listar(c.Request.Context(), filtros)
	if err != nil {
		appErr := mapManifestacaoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromListResult(res))
}

// AtualizarStatus godoc
// @Summary Altera o status de uma manifestação
// @Tags manifestacoes
// @Accept json
// @Produce json
// @Param id path string true "ID da manifestação"
// @Param status body request.AtualizarStatusRequest true "Novo status"
// @Success 200 {object} response.ManifestacaoResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /api/manifestacoes/{id}/status [patch]
// @Router /api/manifestacoes/{id}/status [put]
func (h *ManifestacaoHandler) AtualizarStatus(c *gin.Context) {
	var payload request.AtualizarStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	if fields := payload.Validate(); fields != nil {
		appErr := errValidationFailed.WithFields(fields)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	upd, err := payload.ToEntity()
	if err != nil {
		appErr := mapManifestacaoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	m, err := h.usecase.AtualizarStatus(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		appErr := mapManifestacaoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromManifestacao(m))
}

// Indicadores godoc
// @Summary Indicadores agregados
// @Description Totais por status e por tipo, e manifestações registradas hoje
// @Tags manifestacoes
// @Produce json
// @Success 200 {object} entities.Indicadores
// @Failure 500 {object} pkg.HTTPError
// @Router /api/manifestacoes/indicadores [get]
func (h *ManifestacaoHandler) Indicadores(c *gin.Context) {
	ind, err := h.usecase.Indicadores(c.Request.Context())
	if err != nil {
		appErr := mapManifestacaoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, ind)
}

func mapManifestacaoError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidManifestacao),
		errors.Is(err, usecase.ErrInvalidManifestacaoID),
		errors.Is(err, usecase.ErrInvalidProtocolo),
		errors.Is(err, entities.ErrInvalidTipo),
		errors.Is(err, entities.ErrInvalidStatus),
		errors.Is(err, entities.ErrInvalidDate):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrManifestacaoNotFound):
		return errNotFound
	case errors.Is(err, usecase.ErrProtocoloExhausted),
		errors.Is(err, interfaces.ErrDuplicateManifestacao):
		return errProtocoloConflict
	default:
		logging.L().Error("[manifestacao][handler] unexpected error", zap.Error(err))
		return pkg.NewDomainError("INTERNAL_ERROR", "Ocorreu um erro interno", err, http.StatusInternalServerError)
	}
}
