package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/voujunto/voujunto-backend/internal/infrastructure/auth"
	"github.com/voujunto/voujunto-backend/internal/infrastructure/i18n"
)

const (
	// UserIDContextKey é a chave do ID do usuário autenticado no contexto do Gin
	UserIDContextKey = "user_id"
	// UserEmailContextKey é a chave do e-mail do usuário autenticado
	UserEmailContextKey = "user_email"
)

// AuthMiddleware verifica o token Bearer emitido pelo colaborador
// externo de autenticação e expõe a identidade no contexto
type AuthMiddleware struct {
	tokens *auth.Service
}

// NewAuthMiddleware cria um novo middleware de autenticação
func NewAuthMiddleware(tokens *auth.Service) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth exige um token válido; sem ele a requisição para em 401
// com um problem RFC 7807
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := m.identidade(c)
		if !ok {
			problem := problems.NewDetailedProblem(401, traduzir(c, "error.unauthorized.detail"))
			problem.Type = c.GetString("base_url") + "/problems/unauthorized"
			problem.Title = traduzir(c, "error.unauthorized.title")
			problem.Instance = c.Request.URL.Path

			c.Header("Content-Type", problems.ProblemMediaType)
			c.AbortWithStatusJSON(problem.Status, problem)
			return
		}

		c.Set(UserIDContextKey, identity.ID)
		c.Set(UserEmailContextKey, identity.Email)
		c.Next()
	}
}

// OptionalAuth expõe a identidade quando há token válido, mas deixa a
// requisição seguir anônima quando não há
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if identity, ok := m.identidade(c); ok {
			c.Set(UserIDContextKey, identity.ID)
			c.Set(UserEmailContextKey, identity.Email)
		}
		c.Next()
	}
}

func (m *AuthMiddleware) identidade(c *gin.Context) (*auth.Identity, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, false
	}

	identity, err := m.tokens.Verify(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, false
	}

	return identity, true
}

// CurrentUserID retorna o ID do usuário autenticado, ou vazio quando a
// requisição é anônima
func CurrentUserID(c *gin.Context) string {
	return c.GetString(UserIDContextKey)
}

// traduzir traduz uma chave usando o serviço i18n do contexto; sem o
// serviço, devolve a própria chave
func traduzir(c *gin.Context, key string) string {
	value, exists := c.Get(I18nServiceContextKey)
	if !exists {
		return key
	}

	service, ok := value.(*i18n.Service)
	if !ok {
		return key
	}

	return service.T(c.GetString(LanguageContextKey), key)
}
