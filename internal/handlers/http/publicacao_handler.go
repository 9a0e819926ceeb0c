package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voujunto/voujunto-backend/internal/domain/errors"
	"github.com/voujunto/voujunto-backend/internal/handlers/dto"
	"github.com/voujunto/voujunto-backend/internal/handlers/middleware"
	"github.com/voujunto/voujunto-backend/internal/services"
)

// PublicacaoHandler lida com a criação e leitura das publicações
// (eventos, trilhas, caronas e buscas por parceiros de viagem)
type PublicacaoHandler struct {
	publicacaoService *services.PublicacaoService
	aventuraService   *services.AventuraService
}

// NewPublicacaoHandler cria um novo PublicacaoHandler
func NewPublicacaoHandler(
	publicacaoService *services.PublicacaoService,
	aventuraService *services.AventuraService,
) *PublicacaoHandler {
	return &PublicacaoHandler{
		publicacaoService: publicacaoService,
		aventuraService:   aventuraService,
	}
}

// CriarEvento publica um novo evento
//
//	@Summary		Publicar evento
//	@Tags			eventos
//	@Accept			json
//	@Produce		json
//	@Param			evento	body		dto.CriarEventoRequest	true	"Dados do evento"
//	@Success		201		{object}	dto.EventoResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		401		{object}	dto.ErrorResponse
//	@Security		BearerAuth
//	@Router			/eventos [post]
func (h *PublicacaoHandler) CriarEvento(c *gin.Context) {
	var req dto.CriarEventoRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Problema(c, dto.ValidationErrorResponseI18n(c, dto.FromValidationErrors(err)))
		return
	}

	input, err := req.Input()
	if err != nil {
		dto.Problema(c, dto.BadRequestErrorResponseI18n(c, err.Error()))
		return
	}

	evento, err := h.publicacaoService.CriarEvento(c.Request.Context(), middleware.CurrentUserID(c), input)
	if err != nil {
		h.responderErro(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromEvento(evento))
}

// ListarEventos lista os eventos, opcionalmente filtrados por usuário
//
//	@Summary		Listar eventos
//	@Tags			eventos
//	@Produce		json
//	@Param			usuario	query		string	false	"Filtrar por ID de usuário"
//	@Success		200		{array}		dto.EventoResponse
//	@Router			/eventos [get]
func (h *PublicacaoHandler) ListarEventos(c *gin.Context) {
	if usuario := c.Query("usuario"); usuario != "" {
		eventos := h.aventuraService.ListarEventosDoUsuario(c.Request.Context(), usuario)
		c.JSON(http.StatusOK, dto.FromEventos(eventos))
		return
	}

	eventos := h.aventuraService.ListarEventos(c.Request.Context())
	c.JSON(http.StatusOK, dto.FromEventos(eventos))
}

// BuscarEvento busca um evento por ID
//
//	@Summary		Buscar evento
//	@Tags			eventos
//	@Produce		json
//	@Param			id	path		string	true	"ID do evento"
//	@Success		200	{object}	dto.EventoResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/eventos/{id} [get]
func (h *PublicacaoHandler) BuscarEvento(c *gin.Context) {
	evento, err := h.aventuraService.BuscarEventoPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.Problema(c, dto.NotFoundErrorResponseI18n(c, "Evento"))
		return
	}

	c.JSON(http.StatusOK, dto.FromEvento(evento))
}

// CriarTrilha publica uma nova trilha
//
//	@Summary		Publicar trilha
//	@Tags			trilhas
//	@Accept			json
//	@Produce		json
//	@Param			trilha	body		dto.CriarTrilhaRequest	true	"Dados da trilha"
//	@Success		201		{object}	dto.TrilhaResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		401		{object}	dto.ErrorResponse
//	@Security		BearerAuth
//	@Router			/trilhas [post]
func (h *PublicacaoHandler) CriarTrilha(c *gin.Context) {
	var req dto.CriarTrilhaRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Problema(c, dto.ValidationErrorResponseI18n(c, dto.FromValidationErrors(err)))
		return
	}

	input, err := req.Input()
	if err != nil {
		dto.Problema(c, dto.BadRequestErrorResponseI18n(c, err.Error()))
		return
	}

	trilha, err := h.publicacaoService.CriarTrilha(c.Request.Context(), middleware.CurrentUserID(c), input)
	if err != nil {
		h.responderErro(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromTrilha(trilha))
}

// ListarTrilhas lista as trilhas, opcionalmente filtradas por usuário
//
//	@Summary		Listar trilhas
//	@Tags			trilhas
//	@Produce		json
//	@Param			usuario	query		string	false	"Filtrar por ID de usuário"
//	@Success		200		{array}		dto.TrilhaResponse
//	@Router			/trilhas [get]
func (h *PublicacaoHandler) ListarTrilhas(c *gin.Context) {
	if usuario := c.Query("usuario"); usuario != "" {
		trilhas := h.aventuraService.ListarTrilhasDoUsuario(c.Request.Context(), usuario)
		c.JSON(http.StatusOK, dto.FromTrilhas(trilhas))
		return
	}

	trilhas := h.aventuraService.ListarTrilhas(c.Request.Context())
	c.JSON(http.StatusOK, dto.FromTrilhas(trilhas))
}

// BuscarTrilha busca uma trilha por ID
//
//	@Summary		Buscar trilha
//	@Tags			trilhas
//	@Produce		json
//	@Param			id	path		string	true	"ID da trilha"
//	@Success		200	{object}	dto.TrilhaResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/trilhas/{id} [get]
func (h *PublicacaoHandler) BuscarTrilha(c *gin.Context) {
	trilha, err := h.aventuraService.BuscarTrilhaPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.Problema(c, dto.NotFoundErrorResponseI18n(c, "Trilha"))
		return
	}

	c.JSON(http.StatusOK, dto.FromTrilha(trilha))
}

// CriarCarona publica uma nova oferta de carona
//
//	@Summary		Oferecer carona
//	@Tags			caronas
//	@Accept			json
//	@Produce		json
//	@Param			carona	body		dto.CriarCaronaRequest	true	"Dados da carona"
//	@Success		201		{object}	dto.CaronaResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		401		{object}	dto.ErrorResponse
//	@Security		BearerAuth
//	@Router			/caronas [post]
func (h *PublicacaoHandler) CriarCarona(c *gin.Context) {
	var req dto.CriarCaronaRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Problema(c, dto.ValidationErrorResponseI18n(c, dto.FromValidationErrors(err)))
		return
	}

	input, err := req.Input()
	if err != nil {
		dto.Problema(c, dto.BadRequestErrorResponseI18n(c, err.Error()))
		return
	}

	carona, err := h.publicacaoService.CriarCarona(c.Request.Context(), middleware.CurrentUserID(c), input)
	if err != nil {
		h.responderErro(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromCarona(carona))
}

// ListarCaronas lista as caronas, opcionalmente filtradas por usuário
//
//	@Summary		Listar caronas
//	@Tags			caronas
//	@Produce		json
//	@Param			usuario	query		string	false	"Filtrar por ID de usuário"
//	@Success		200		{array}		dto.CaronaResponse
//	@Router			/caronas [get]
func (h *PublicacaoHandler) ListarCaronas(c *gin.Context) {
	if usuario := c.Query("usuario"); usuario != "" {
		caronas := h.aventuraService.ListarCaronasDoUsuario(c.Request.Context(), usuario)
		c.JSON(http.StatusOK, dto.FromCaronas(caronas))
		return
	}

	caronas := h.aventuraService.ListarCaronas(c.Request.Context())
	c.JSON(http.StatusOK, dto.FromCaronas(caronas))
}

// BuscarCarona busca uma carona por ID
//
//	@Summary		Buscar carona
//	@Tags			caronas
//	@Produce		json
//	@Param			id	path		string	true	"ID da carona"
//	@Success		200	{object}	dto.CaronaResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/caronas/{id} [get]
func (h *PublicacaoHandler) BuscarCarona(c *gin.Context) {
	carona, err := h.aventuraService.BuscarCaronaPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.Problema(c, dto.NotFoundErrorResponseI18n(c, "Carona"))
		return
	}

	c.JSON(http.StatusOK, dto.FromCarona(carona))
}

// CriarViagem publica uma nova busca por parceiros de viagem
//
//	@Summary		Buscar parceiros de viagem
//	@Tags			viagens
//	@Accept			json
//	@Produce		json
//	@Param			viagem	body		dto.CriarViagemRequest	true	"Dados da viagem"
//	@Success		201		{object}	dto.ViagemResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		401		{object}	dto.ErrorResponse
//	@Security		BearerAuth
//	@Router			/viagens [post]
func (h *PublicacaoHandler) CriarViagem(c *gin.Context) {
	var req dto.CriarViagemRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Problema(c, dto.ValidationErrorResponseI18n(c, dto.FromValidationErrors(err)))
		return
	}

	input, err := req.Input()
	if err != nil {
		dto.Problema(c, dto.BadRequestErrorResponseI18n(c, err.Error()))
		return
	}

	viagem, err := h.publicacaoService.CriarViagem(c.Request.Context(), middleware.CurrentUserID(c), input)
	if err != nil {
		h.responderErro(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromViagem(viagem))
}

// ListarViagens lista as buscas por parceiros, opcionalmente filtradas
// por usuário
//
//	@Summary		Listar viagens
//	@Tags			viagens
//	@Produce		json
//	@Param			usuario	query		string	false	"Filtrar por ID de usuário"
//	@Success		200		{array}		dto.ViagemResponse
//	@Router			/viagens [get]
func (h *PublicacaoHandler) ListarViagens(c *gin.Context) {
	if usuario := c.Query("usuario"); usuario != "" {
		viagens := h.aventuraService.ListarViagensDoUsuario(c.Request.Context(), usuario)
		c.JSON(http.StatusOK, dto.FromViagens(viagens))
		return
	}

	viagens := h.aventuraService.ListarViagens(c.Request.Context())
	c.JSON(http.StatusOK, dto.FromViagens(viagens))
}

// BuscarViagem busca uma busca por parceiros por ID
//
//	@Summary		Buscar viagem
//	@Tags			viagens
//	@Produce		json
//	@Param			id	path		string	true	"ID da viagem"
//	@Success		200	{object}	dto.ViagemResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/viagens/{id} [get]
func (h *PublicacaoHandler) BuscarViagem(c *gin.Context) {
	viagem, err := h.aventuraService.BuscarViagemPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		dto.Problema(c, dto.NotFoundErrorResponseI18n(c, "Viagem"))
		return
	}

	c.JSON(http.StatusOK, dto.FromViagem(viagem))
}

// responderErro traduz erros das operações de criação em problems
func (h *PublicacaoHandler) responderErro(c *gin.Context, err error) {
	var domainErr *errors.DomainError

	switch {
	case errs.Is(err, errors.ErrNaoAutenticado):
		dto.Problema(c, dto.UnauthorizedErrorResponseI18n(c))
	case errs.As(err, &domainErr) && domainErr.Type == errors.ProblemTypeValidation:
		detalhe := domainErr.Message
		if domainErr.Err != nil {
			detalhe = domainErr.Err.Error()
		}
		dto.Problema(c, dto.BadRequestErrorResponseI18n(c, detalhe))
	default:
		dto.Problema(c, dto.InternalErrorResponseI18n(c))
	}
}
