package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalido = errors.New("token inválido ou expirado")
)

// Identity é a identidade do usuário autenticado, extraída de um token
// emitido pelo colaborador externo de autenticação
type Identity struct {
	ID    string
	Email string
}

// Claims são as claims esperadas no token de acesso
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Service verifica tokens de acesso (HS256). A emissão pertence ao
// colaborador de autenticação; Sign existe para testes e integrações
// internas.
type Service struct {
	secret []byte
}

// NewService cria um novo serviço de verificação de tokens
func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Verify valida o token e retorna a identidade do portador
func (s *Service) Verify(tokenString string) (*Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalido
	}

	if claims.Subject == "" {
		return nil, ErrTokenInvalido
	}

	return &Identity{
		ID:    claims.Subject,
		Email: claims.Email,
	}, nil
}

// Sign emite um token de acesso para a identidade dada
func (s *Service) Sign(id, email string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()

	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
