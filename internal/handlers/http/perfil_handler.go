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

// PerfilHandler lida com o cache local de perfis
type PerfilHandler struct {
	perfilService *services.PerfilService
}

// NewPerfilHandler cria um novo PerfilHandler
func NewPerfilHandler(perfilService *services.PerfilService) *PerfilHandler {
	return &PerfilHandler{
		perfilService: perfilService,
	}
}

// BuscarPerfil retorna o perfil do usuário autenticado
//
//	@Summary		Buscar perfil
//	@Tags			perfil
//	@Produce		json
//	@Success		200	{object}	dto.PerfilResponse
//	@Failure		401	{object}	dto.ErrorResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Security		BearerAuth
//	@Router			/perfil [get]
func (h *PerfilHandler) BuscarPerfil(c *gin.Context) {
	perfil, err := h.perfilService.BuscarPerfil(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		if errs.Is(err, errors.ErrPerfilNaoEncontrado) {
			dto.Problema(c, dto.NotFoundErrorResponseI18n(c, "Perfil"))
			return
		}
		dto.Problema(c, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.FromPerfil(perfil))
}

// AtualizarPerfil insere ou atualiza o perfil do usuário autenticado
//
//	@Summary		Atualizar perfil
//	@Tags			perfil
//	@Accept			json
//	@Produce		json
//	@Param			perfil	body		dto.AtualizarPerfilRequest	true	"Dados do perfil"
//	@Success		200		{object}	dto.PerfilResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		401		{object}	dto.ErrorResponse
//	@Security		BearerAuth
//	@Router			/perfil [put]
func (h *PerfilHandler) AtualizarPerfil(c *gin.Context) {
	var req dto.AtualizarPerfilRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Problema(c, dto.ValidationErrorResponseI18n(c, dto.FromValidationErrors(err)))
		return
	}

	perfil, err := h.perfilService.AtualizarPerfil(c.Request.Context(), middleware.CurrentUserID(c), req.Input())
	if err != nil {
		var domainErr *errors.DomainError
		if errs.As(err, &domainErr) && domainErr.Type == errors.ProblemTypeValidation {
			dto.Problema(c, dto.BadRequestErrorResponseI18n(c, domainErr.Error()))
			return
		}
		dto.Problema(c, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.FromPerfil(perfil))
}
