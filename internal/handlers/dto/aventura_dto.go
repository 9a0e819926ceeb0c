package dto

import (
	"time"

	"github.com/voujunto/voujunto-backend/internal/domain/entities"
	"github.com/voujunto/voujunto-backend/internal/services"
)

// AventuraResponse é um item do feed unificado
type AventuraResponse struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	Titulo        string     `json:"titulo"`
	Tipo          string     `json:"tipo"`
	Data          time.Time  `json:"data"`
	DataFim       *time.Time `json:"data_fim,omitempty"`
	Periodo       string     `json:"periodo"`
	Local         string     `json:"local"`
	Imagem        *string    `json:"imagem,omitempty"`
	Descricao     string     `json:"descricao"`
	Vagas         int        `json:"vagas"`
	VagasExibicao string     `json:"vagas_exibicao"`
	Telefone      string     `json:"telefone"`
	Contato       string     `json:"contato"`
	CEP           string     `json:"cep,omitempty"`
	CriadaEm      time.Time  `json:"criada_em"`
}

// FromAventura converte a entidade unificada na resposta da API. O
// campo vagas usa -1 para vagas ilimitadas; vagas_exibicao nunca mostra
// número negativo.
func FromAventura(a *entities.Aventura) AventuraResponse {
	return AventuraResponse{
		ID:            a.ID,
		UserID:        a.UserID,
		Titulo:        a.Titulo,
		Tipo:          a.Tipo,
		Data:          a.Data,
		DataFim:       a.DataFim,
		Periodo:       a.Periodo(),
		Local:         a.Local,
		Imagem:        a.Imagem,
		Descricao:     a.Descricao,
		Vagas:         a.Vagas.Sentinela(),
		VagasExibicao: a.Vagas.String(),
		Telefone:      a.Telefone,
		Contato:       a.Contato,
		CEP:           a.CEP.String(),
		CriadaEm:      a.CriadaEm,
	}
}

// FromAventuras converte uma coleção de aventuras
func FromAventuras(aventuras []*entities.Aventura) []AventuraResponse {
	result := make([]AventuraResponse, 0, len(aventuras))
	for _, aventura := range aventuras {
		result = append(result, FromAventura(aventura))
	}
	return result
}

// BuscaResponse é uma página da listagem com filtro por localização
type BuscaResponse struct {
	Aventuras    []AventuraResponse `json:"aventuras"`
	Pagina       int                `json:"pagina"`
	TotalPaginas int                `json:"total_paginas"`
	Filtro       string             `json:"filtro"`
	Aviso        string             `json:"aviso,omitempty"`
}

// FromResultadoBusca converte o resultado da busca, traduzindo o aviso
// quando presente
func FromResultadoBusca(r *services.ResultadoBusca, aviso string) BuscaResponse {
	return BuscaResponse{
		Aventuras:    FromAventuras(r.Aventuras),
		Pagina:       r.Pagina,
		TotalPaginas: r.TotalPaginas,
		Filtro:       string(r.Filtro),
		Aviso:        aviso,
	}
}
