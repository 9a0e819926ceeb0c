package dto

import (
	"time"

	"github.com/voujunto/voujunto-backend/internal/domain/entities"
)

// EventoResponse representa um evento na API
type EventoResponse struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	NomeEvento    string          `json:"nome_evento"`
	Descricao     string          `json:"descricao"`
	DataIda       time.Time       `json:"data_ida"`
	HoraIda       string          `json:"hora_ida"`
	DataVolta     *time.Time      `json:"data_volta,omitempty"`
	HoraVolta     *string         `json:"hora_volta,omitempty"`
	PontoEncontro string          `json:"ponto_encontro"`
	LocalEvento   string          `json:"local_evento"`
	Vagas         int             `json:"vagas"`
	VagasExibicao string          `json:"vagas_exibicao"`
	ImagemURL     *string         `json:"imagem_url,omitempty"`
	Contato       ContatoResponse `json:"contato"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ContatoResponse é o snapshot de contato gravado na publicação
type ContatoResponse struct {
	Nome     string `json:"nome"`
	Telefone string `json:"telefone"`
	CEP      string `json:"cep"`
}

func fromContato(c entities.Contato) ContatoResponse {
	return ContatoResponse{
		Nome:     c.Nome,
		Telefone: c.Telefone,
		CEP:      c.CEP.Formatado(),
	}
}

// FromEvento converte a entidade Evento na resposta da API
func FromEvento(e *entities.Evento) EventoResponse {
	return EventoResponse{
		ID:            e.ID,
		UserID:        e.UserID,
		NomeEvento:    e.NomeEvento,
		Descricao:     e.Descricao,
		DataIda:       e.DataIda,
		HoraIda:       e.HoraIda,
		DataVolta:     e.DataVolta,
		HoraVolta:     e.HoraVolta,
		PontoEncontro: e.PontoEncontro,
		LocalEvento:   e.LocalEvento,
		Vagas:         e.Vagas.Sentinela(),
		VagasExibicao: e.Vagas.String(),
		ImagemURL:     e.ImagemURL,
		Contato:       fromContato(e.Contato),
		CreatedAt:     e.CreatedAt,
	}
}

// FromEventos converte uma coleção de eventos
func FromEventos(eventos []*entities.Evento) []EventoResponse {
	result := make([]EventoResponse, 0, len(eventos))
	for _, evento := range eventos {
		result = append(result, FromEvento(evento))
	}
	return result
}

// TrilhaResponse representa uma trilha na API
type TrilhaResponse struct {
	ID               string          `json:"id"`
	UserID           string          `json:"user_id"`
	TipoVeiculo      string          `json:"tipo_veiculo"`
	NomeTrilha       string          `json:"nome_trilha"`
	Data             time.Time       `json:"data"`
	Hora             string          `json:"hora"`
	PontoEncontro    string          `json:"ponto_encontro"`
	Vagas            int             `json:"vagas"`
	NivelDificuldade string          `json:"nivel_dificuldade"`
	Observacoes      *string         `json:"observacoes,omitempty"`
	Contato          ContatoResponse `json:"contato"`
	CreatedAt        time.Time       `json:"created_at"`
}

// FromTrilha converte a entidade Trilha na resposta da API
func FromTrilha(t *entities.Trilha) TrilhaResponse {
	return TrilhaResponse{
		ID:               t.ID,
		UserID:           t.UserID,
		TipoVeiculo:      string(t.TipoVeiculo),
		NomeTrilha:       t.NomeTrilha,
		Data:             t.Data,
		Hora:             t.Hora,
		PontoEncontro:    t.PontoEncontro,
		Vagas:            t.Vagas,
		NivelDificuldade: string(t.NivelDificuldade),
		Observacoes:      t.Observacoes,
		Contato:          fromContato(t.Contato),
		CreatedAt:        t.CreatedAt,
	}
}

// FromTrilhas converte uma coleção de trilhas
func FromTrilhas(trilhas []*entities.Trilha) []TrilhaResponse {
	result := make([]TrilhaResponse, 0, len(trilhas))
	for _, trilha := range trilhas {
		result = append(result, FromTrilha(trilha))
	}
	return result
}

// CaronaResponse representa uma oferta de carona na API
type CaronaResponse struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	ModeloCarro   string          `json:"modelo_carro"`
	Vagas         int             `json:"vagas"`
	Data          time.Time       `json:"data"`
	Hora          string          `json:"hora"`
	Destino       string          `json:"destino"`
	PontoEncontro string          `json:"ponto_encontro"`
	Tipo          string          `json:"tipo"`
	Observacoes   *string         `json:"observacoes,omitempty"`
	Contato       ContatoResponse `json:"contato"`
	CreatedAt     time.Time       `json:"created_at"`
}

// FromCarona converte a entidade Carona na resposta da API
func FromCarona(c *entities.Carona) CaronaResponse {
	return CaronaResponse{
		ID:            c.ID,
		UserID:        c.UserID,
		ModeloCarro:   c.ModeloCarro,
		Vagas:         c.Vagas,
		Data:          c.Data,
		Hora:          c.Hora,
		Destino:       c.Destino,
		PontoEncontro: c.PontoEncontro,
		Tipo:          string(c.Tipo),
		Observacoes:   c.Observacoes,
		Contato:       fromContato(c.Contato),
		CreatedAt:     c.CreatedAt,
	}
}

// FromCaronas converte uma coleção de caronas
func FromCaronas(caronas []*entities.Carona) []CaronaResponse {
	result := make([]CaronaResponse, 0, len(caronas))
	for _, carona := range caronas {
		result = append(result, FromCarona(carona))
	}
	return result
}

// ViagemResponse representa uma busca por parceiros de viagem na API
type ViagemResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Cidade      string          `json:"cidade"`
	Estado      string          `json:"estado"`
	DataInicio  time.Time       `json:"data_inicio"`
	DataFim     time.Time       `json:"data_fim"`
	NumPessoas  int             `json:"num_pessoas"`
	Observacoes *string         `json:"observacoes,omitempty"`
	Contato     ContatoResponse `json:"contato"`
	CreatedAt   time.Time       `json:"created_at"`
}

// FromViagem converte a entidade Viagem na resposta da API
func FromViagem(v *entities.Viagem) ViagemResponse {
	return ViagemResponse{
		ID:          v.ID,
		UserID:      v.UserID,
		Cidade:      v.Cidade,
		Estado:      v.Estado,
		DataInicio:  v.DataInicio,
		DataFim:     v.DataFim,
		NumPessoas:  v.NumPessoas,
		Observacoes: v.Observacoes,
		Contato:     fromContato(v.Contato),
		CreatedAt:   v.CreatedAt,
	}
}

// FromViagens converte uma coleção de viagens
func FromViagens(viagens []*entities.Viagem) []ViagemResponse {
	result := make([]ViagemResponse, 0, len(viagens))
	for _, viagem := range viagens {
		result = append(result, FromViagem(viagem))
	}
	return result
}
