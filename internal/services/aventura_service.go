package services

import (
	"context"
	"sort"

	"github.com/voujunto/voujunto-backend/internal/domain/entities"
	apperrors "github.com/voujunto/voujunto-backend/internal/domain/errors"
	"github.com/voujunto/voujunto-backend/internal/domain/ports"
	"github.com/voujunto/voujunto-backend/internal/domain/repositories"
)

// Filtros de tipo do feed unificado
const (
	TipoFiltroEventos = "eventos"
	TipoFiltroTrilhas = "trilhas"
	TipoFiltroCaronas = "caronas"
	TipoFiltroViagens = "viagens"
)

// AventuraService monta o feed unificado a partir dos quatro tipos de
// publicação e expõe as leituras por tipo. Falhas de leitura degradam
// para coleção vazia (lista) ou não-encontrado (registro único); o
// chamador trata vazio como estado vazio, nunca como erro fatal.
type AventuraService struct {
	eventos repositories.EventoRepository
	trilhas repositories.TrilhaRepository
	caronas repositories.CaronaRepository
	viagens repositories.ViagemRepository
	logger  ports.Logger
}

// NewAventuraService cria um novo AventuraService
func NewAventuraService(
	eventos repositories.EventoRepository,
	trilhas repositories.TrilhaRepository,
	caronas repositories.CaronaRepository,
	viagens repositories.ViagemRepository,
	logger ports.Logger,
) *AventuraService {
	return &AventuraService{
		eventos: eventos,
		trilhas: trilhas,
		caronas: caronas,
		viagens: viagens,
		logger:  logger,
	}
}

// ListarAventuras mescla os quatro tipos no formato unificado,
// opcionalmente restrito a um único tipo, ordenado por data crescente.
// Para períodos, só o início conta na ordenação. A ordenação é estável:
// reordenar uma lista já ordenada não muda nada.
func (s *AventuraService) ListarAventuras(ctx context.Context, tipoFiltro string) []*entities.Aventura {
	todas := make([]*entities.Aventura, 0)

	if tipoFiltro == "" || tipoFiltro == TipoFiltroEventos {
		for _, evento := range s.ListarEventos(ctx) {
			todas = append(todas, entities.NovaAventuraDeEvento(evento))
		}
	}

	if tipoFiltro == "" || tipoFiltro == TipoFiltroTrilhas {
		for _, trilha := range s.ListarTrilhas(ctx) {
			todas = append(todas, entities.NovaAventuraDeTrilha(trilha))
		}
	}

	if tipoFiltro == "" || tipoFiltro == TipoFiltroCaronas {
		for _, carona := range s.ListarCaronas(ctx) {
			todas = append(todas, entities.NovaAventuraDeCarona(carona))
		}
	}

	if tipoFiltro == "" || tipoFiltro == TipoFiltroViagens {
		for _, viagem := range s.ListarViagens(ctx) {
			todas = append(todas, entities.NovaAventuraDeViagem(viagem))
		}
	}

	sort.SliceStable(todas, func(i, j int) bool {
		return todas[i].Data.Before(todas[j].Data)
	})

	return todas
}

// ListarEventos lista os eventos, mais recentes primeiro; falha de
// leitura degrada para lista vazia
func (s *AventuraService) ListarEventos(ctx context.Context) []*entities.Evento {
	eventos, err := s.eventos.FindAll(ctx)
	if err != nil {
		s.logger.Error("falha ao buscar eventos", "error", err)
		return nil
	}
	return eventos
}

// ListarTrilhas lista as trilhas, mais recentes primeiro
func (s *AventuraService) ListarTrilhas(ctx context.Context) []*entities.Trilha {
	trilhas, err := s.trilhas.FindAll(ctx)
	if err != nil {
		s.logger.Error("falha ao buscar trilhas", "error", err)
		return nil
	}
	return trilhas
}

// ListarCaronas lista as caronas, mais recentes primeiro
func (s *AventuraService) ListarCaronas(ctx context.Context) []*entities.Carona {
	caronas, err := s.caronas.FindAll(ctx)
	if err != nil {
		s.logger.Error("falha ao buscar caronas", "error", err)
		return nil
	}
	return caronas
}

// ListarViagens lista as buscas por parceiros, mais recentes primeiro
func (s *AventuraService) ListarViagens(ctx context.Context) []*entities.Viagem {
	viagens, err := s.viagens.FindAll(ctx)
	if err != nil {
		s.logger.Error("falha ao buscar viagens", "error", err)
		return nil
	}
	return viagens
}

// ListarEventosDoUsuario lista os eventos de um usuário
func (s *AventuraService) ListarEventosDoUsuario(ctx context.Context, userID string) []*entities.Evento {
	eventos, err := s.eventos.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("falha ao buscar eventos do usuário", "user_id", userID, "error", err)
		return nil
	}
	return eventos
}

// ListarTrilhasDoUsuario lista as trilhas de um usuário
func (s *AventuraService) ListarTrilhasDoUsuario(ctx context.Context, userID string) []*entities.Trilha {
	trilhas, err := s.trilhas.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("falha ao buscar trilhas do usuário", "user_id", userID, "error", err)
		return nil
	}
	return trilhas
}

// ListarCaronasDoUsuario lista as caronas de um usuário
func (s *AventuraService) ListarCaronasDoUsuario(ctx context.Context, userID string) []*entities.Carona {
	caronas, err := s.caronas.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("falha ao buscar caronas do usuário", "user_id", userID, "error", err)
		return nil
	}
	return caronas
}

// ListarViagensDoUsuario lista as buscas por parceiros de um usuário
func (s *AventuraService) ListarViagensDoUsuario(ctx context.Context, userID string) []*entities.Viagem {
	viagens, err := s.viagens.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("falha ao buscar viagens do usuário", "user_id", userID, "error", err)
		return nil
	}
	return viagens
}

// BuscarEventoPorID busca um evento; ausência vira ErrRegistroNaoEncontrado
func (s *AventuraService) BuscarEventoPorID(ctx context.Context, id string) (*entities.Evento, error) {
	evento, err := s.eventos.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("falha ao buscar evento", "id", id, "error", err)
		return nil, apperrors.ErrRegistroNaoEncontrado
	}
	if evento == nil {
		return nil, apperrors.ErrRegistroNaoEncontrado
	}
	return evento, nil
}

// BuscarTrilhaPorID busca uma trilha por ID
func (s *AventuraService) BuscarTrilhaPorID(ctx context.Context, id string) (*entities.Trilha, error) {
	trilha, err := s.trilhas.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("falha ao buscar trilha", "id", id, "error", err)
		return nil, apperrors.ErrRegistroNaoEncontrado
	}
	if trilha == nil {
		return nil, apperrors.ErrRegistroNaoEncontrado
	}
	return trilha, nil
}

// BuscarCaronaPorID busca uma carona por ID
func (s *AventuraService) BuscarCaronaPorID(ctx context.Context, id string) (*entities.Carona, error) {
	carona, err := s.caronas.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("falha ao buscar carona", "id", id, "error", err)
		return nil, apperrors.ErrRegistroNaoEncontrado
	}
	if carona == nil {
		return nil, apperrors.ErrRegistroNaoEncontrado
	}
	return carona, nil
}

// BuscarViagemPorID busca uma busca por parceiros por ID
func (s *AventuraService) BuscarViagemPorID(ctx context.Context, id string) (*entities.Viagem, error) {
	viagem, err := s.viagens.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("falha ao buscar viagem", "id", id, "error", err)
		return nil, apperrors.ErrRegistroNaoEncontrado
	}
	if viagem == nil {
		return nil, apperrors.ErrRegistroNaoEncontrado
	}
	return viagem, nil
}
