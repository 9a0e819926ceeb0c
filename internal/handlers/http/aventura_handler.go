package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/voujunto/voujunto-backend/internal/handlers/dto"
	"github.com/voujunto/voujunto-backend/internal/handlers/middleware"
	"github.com/voujunto/voujunto-backend/internal/services"
)

// AventuraHandler lida com o feed unificado e a busca paginada por
// localização
type AventuraHandler struct {
	aventuraService *services.AventuraService
	buscaService    *services.BuscaService
}

// NewAventuraHandler cria um novo AventuraHandler
func NewAventuraHandler(
	aventuraService *services.AventuraService,
	buscaService *services.BuscaService,
) *AventuraHandler {
	return &AventuraHandler{
		aventuraService: aventuraService,
		buscaService:    buscaService,
	}
}

// ListarAventuras retorna o feed unificado em ordem cronológica
//
//	@Summary		Feed unificado de aventuras
//	@Tags			aventuras
//	@Produce		json
//	@Param			tipo	query		string	false	"Restringir a um tipo"	Enums(eventos, trilhas, caronas, viagens)
//	@Success		200		{array}		dto.AventuraResponse
//	@Router			/aventuras [get]
func (h *AventuraHandler) ListarAventuras(c *gin.Context) {
	aventuras := h.aventuraService.ListarAventuras(c.Request.Context(), c.Query("tipo"))
	c.JSON(http.StatusOK, dto.FromAventuras(aventuras))
}

// BuscarAventuras retorna uma página da listagem com filtro por
// localização. Cidade e estado usam o CEP do perfil do usuário
// autenticado; sem CEP o filtro cai para "todas" com aviso.
//
//	@Summary		Busca paginada de aventuras
//	@Tags			aventuras
//	@Produce		json
//	@Param			filtro	query		string	false	"Filtro de localização"	Enums(cidade, estado, todas)
//	@Param			pagina	query		int		false	"Página (a partir de 1)"
//	@Success		200		{object}	dto.BuscaResponse
//	@Failure		500		{object}	dto.ErrorResponse
//	@Security		BearerAuth
//	@Router			/aventuras/busca [get]
func (h *AventuraHandler) BuscarAventuras(c *gin.Context) {
	pagina, err := strconv.Atoi(c.DefaultQuery("pagina", "1"))
	if err != nil || pagina < 1 {
		pagina = 1
	}

	filtro := services.FiltroLocalizacao(c.DefaultQuery("filtro", string(services.FiltroTodas)))

	resultado, err := h.buscaService.BuscarAventuras(
		c.Request.Context(),
		middleware.CurrentUserID(c),
		filtro,
		pagina,
	)
	if err != nil {
		dto.Problema(c, dto.InternalErrorResponseI18n(c))
		return
	}

	aviso := ""
	if resultado.Aviso != "" {
		aviso = dto.T(c, resultado.Aviso)
	}

	c.JSON(http.StatusOK, dto.FromResultadoBusca(resultado, aviso))
}
