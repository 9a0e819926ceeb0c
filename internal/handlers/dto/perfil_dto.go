package dto

import (
	"time"

	"github.com/voujunto/voujunto-backend/internal/domain/entities"
	"github.com/voujunto/voujunto-backend/internal/services"
)

// AtualizarPerfilRequest representa a requisição de atualização de
// perfil. Campos omitidos mantêm o valor atual.
type AtualizarPerfilRequest struct {
	Nome     string `json:"nome" binding:"omitempty,min=2,max=255"`
	Telefone string `json:"telefone" binding:"omitempty,min=8,max=20"`
	CEP      string `json:"cep" binding:"omitempty,cep"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// Input converte a requisição no input do serviço
func (r *AtualizarPerfilRequest) Input() services.AtualizarPerfilInput {
	return services.AtualizarPerfilInput{
		Nome:     r.Nome,
		Telefone: r.Telefone,
		CEP:      r.CEP,
		Email:    r.Email,
	}
}

// PerfilResponse representa o perfil na API
type PerfilResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Telefone  string    `json:"telefone"`
	CEP       string    `json:"cep"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromPerfil converte a entidade Perfil na resposta da API
func FromPerfil(p *entities.Perfil) PerfilResponse {
	return PerfilResponse{
		ID:        p.ID,
		Nome:      p.Nome,
		Telefone:  p.Telefone,
		CEP:       p.CEP,
		Email:     p.Email,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
