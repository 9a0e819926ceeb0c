package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/voujunto/voujunto-backend/internal/domain/entities"
	apperrors "github.com/voujunto/voujunto-backend/internal/domain/errors"
	"github.com/voujunto/voujunto-backend/internal/domain/ports"
	"github.com/voujunto/voujunto-backend/internal/domain/repositories"
)

// PublicacaoService contém a lógica de criação das publicações. Toda
// criação segue o mesmo fluxo: validar, inserir com o snapshot de
// contato, sincronizar o perfil se o contato mudou, projetar na tabela
// consolidada e notificar interessados. Só a inserção principal é
// obrigatória; os efeitos secundários são melhor esforço.
type PublicacaoService struct {
	eventos     repositories.EventoRepository
	trilhas     repositories.TrilhaRepository
	caronas     repositories.CaronaRepository
	viagens     repositories.ViagemRepository
	perfis      repositories.PerfilRepository
	aventuras   repositories.AventuraRepository
	notificador ports.Notificador
	logger      ports.Logger
}

// NewPublicacaoService cria um novo PublicacaoService. O notificador é
// opcional (pode ser nil).
func NewPublicacaoService(
	eventos repositories.EventoRepository,
	trilhas repositories.TrilhaRepository,
	caronas repositories.CaronaRepository,
	viagens repositories.ViagemRepository,
	perfis repositories.PerfilRepository,
	aventuras repositories.AventuraRepository,
	notificador ports.Notificador,
	logger ports.Logger,
) *PublicacaoService {
	return &PublicacaoService{
		eventos:     eventos,
		trilhas:     trilhas,
		caronas:     caronas,
		viagens:     viagens,
		perfis:      perfis,
		aventuras:   aventuras,
		notificador: notificador,
		logger:      logger,
	}
}

// CriarEventoInput representa os dados para criar um evento
type CriarEventoInput struct {
	NomeEvento    string
	Descricao     string
	DataIda       time.Time
	HoraIda       string
	DataVolta     *time.Time
	HoraVolta     *string
	PontoEncontro string
	LocalEvento   string
	Vagas         entities.Vagas
	ImagemURL     *string
	Contato       entities.Contato
}

// CriarEvento publica um novo evento
func (s *PublicacaoService) CriarEvento(ctx context.Context, userID string, input CriarEventoInput) (*entities.Evento, error) {
	if userID == "" {
		return nil, apperrors.ErrNaoAutenticado
	}

	evento := &entities.Evento{
		ID:            uuid.NewString(),
		UserID:        userID,
		NomeEvento:    input.NomeEvento,
		Descricao:     input.Descricao,
		DataIda:       input.DataIda,
		HoraIda:       input.HoraIda,
		DataVolta:     input.DataVolta,
		HoraVolta:     input.HoraVolta,
		PontoEncontro: input.PontoEncontro,
		LocalEvento:   input.LocalEvento,
		Vagas:         input.Vagas,
		ImagemURL:     input.ImagemURL,
		Contato:       input.Contato,
		CreatedAt:     time.Now().UTC(),
	}

	if err := evento.Validate(); err != nil {
		return nil, &apperrors.DomainError{
			Type:    apperrors.ProblemTypeValidation,
			Message: apperrors.ErrDadosInvalidos.Error(),
			Err:     err,
		}
	}

	if err := s.eventos.Create(ctx, evento); err != nil {
		return nil, err
	}

	s.logger.Info("evento publicado", "id", evento.ID, "user_id", userID)

	s.aposPublicar(ctx, userID, input.Contato, entities.NovaAventuraDeEvento(evento))
	return evento, nil
}

// CriarTrilhaInput representa os dados para criar uma trilha
type CriarTrilhaInput struct {
	TipoVeiculo      entities.TipoVeiculo
	NomeTrilha       string
	Data             time.Time
	Hora             string
	PontoEncontro    string
	Vagas            int
	NivelDificuldade entities.NivelDificuldade
	Observacoes      *string
	Contato          entities.Contato
}

// CriarTrilha publica uma nova trilha
func (s *PublicacaoService) CriarTrilha(ctx context.Context, userID string, input CriarTrilhaInput) (*entities.Trilha, error) {
	if userID == "" {
		return nil, apperrors.ErrNaoAutenticado
	}

	trilha := &entities.Trilha{
		ID:               uuid.NewString(),
		UserID:           userID,
		TipoVeiculo:      input.TipoVeiculo,
		NomeTrilha:       input.NomeTrilha,
		Data:             input.Data,
		Hora:             input.Hora,
		PontoEncontro:    input.PontoEncontro,
		Vagas:            input.Vagas,
		NivelDificuldade: input.NivelDificuldade,
		Observacoes:      input.Observacoes,
		Contato:          input.Contato,
		CreatedAt:        time.Now().UTC(),
	}

	if err := trilha.Validate(); err != nil {
		return nil, &apperrors.DomainError{
			Type:    apperrors.ProblemTypeValidation,
			Message: apperrors.ErrDadosInvalidos.Error(),
			Err:     err,
		}
	}

	if err := s.trilhas.Create(ctx, trilha); err != nil {
		return nil, err
	}

	s.logger.Info("trilha publicada", "id", trilha.ID, "user_id", userID)

	s.aposPublicar(ctx, userID, input.Contato, entities.NovaAventuraDeTrilha(trilha))
	return trilha, nil
}

// CriarCaronaInput representa os dados para oferecer uma carona
type CriarCaronaInput struct {
	ModeloCarro   string
	Vagas         int
	Data          time.Time
	Hora          string
	Destino       string
	PontoEncontro string
	Tipo          entities.TipoCarona
	Observacoes   *string
	Contato       entities.Contato
}

// CriarCarona publica uma nova oferta de carona
func (s *PublicacaoService) CriarCarona(ctx context.Context, userID string, input CriarCaronaInput) (*entities.Carona, error) {
	if userID == "" {
		return nil, apperrors.ErrNaoAutenticado
	}

	carona := &entities.Carona{
		ID:            uuid.NewString(),
		UserID:        userID,
		ModeloCarro:   input.ModeloCarro,
		Vagas:         input.Vagas,
		Data:          input.Data,
		Hora:          input.Hora,
		Destino:       input.Destino,
		PontoEncontro: input.PontoEncontro,
		Tipo:          input.Tipo,
		Observacoes:   input.Observacoes,
		Contato:       input.Contato,
		CreatedAt:     time.Now().UTC(),
	}

	if err := carona.Validate(); err != nil {
		return nil, &apperrors.DomainError{
			Type:    apperrors.ProblemTypeValidation,
			Message: apperrors.ErrDadosInvalidos.Error(),
			Err:     err,
		}
	}

	if err := s.caronas.Create(ctx, carona); err != nil {
		return nil, err
	}

	s.logger.Info("carona publicada", "id", carona.ID, "user_id", userID)

	s.aposPublicar(ctx, userID, input.Contato, entities.NovaAventuraDeCarona(carona))
	return carona, nil
}

// CriarViagemInput representa os dados para buscar parceiros de viagem
type CriarViagemInput struct {
	Cidade      string
	Estado      string
	DataInicio  time.Time
	DataFim     time.Time
	NumPessoas  int
	Observacoes *string
	Contato     entities.Contato
}

// CriarViagem publica uma nova busca por parceiros de viagem
func (s *PublicacaoService) CriarViagem(ctx context.Context, userID string, input CriarViagemInput) (*entities.Viagem, error) {
	if userID == "" {
		return nil, apperrors.ErrNaoAutenticado
	}

	viagem := &entities.Viagem{
		ID:          uuid.NewString(),
		UserID:      userID,
		Cidade:      input.Cidade,
		Estado:      input.Estado,
		DataInicio:  input.DataInicio,
		DataFim:     input.DataFim,
		NumPessoas:  input.NumPessoas,
		Observacoes: input.Observacoes,
		Contato:     input.Contato,
		CreatedAt:   time.Now().UTC(),
	}

	if err := viagem.Validate(); err != nil {
		return nil, &apperrors.DomainError{
			Type:    apperrors.ProblemTypeValidation,
			Message: apperrors.ErrDadosInvalidos.Error(),
			Err:     err,
		}
	}

	if err := s.viagens.Create(ctx, viagem); err != nil {
		return nil, err
	}

	s.logger.Info("viagem publicada", "id", viagem.ID, "user_id", userID)

	s.aposPublicar(ctx, userID, input.Contato, entities.NovaAventuraDeViagem(viagem))
	return viagem, nil
}

// aposPublicar executa os efeitos secundários de uma publicação:
// sincroniza o cache de perfil, projeta na tabela consolidada e
// notifica o feed. Falhas aqui não desfazem a publicação.
func (s *PublicacaoService) aposPublicar(ctx context.Context, userID string, contato entities.Contato, aventura *entities.Aventura) {
	s.sincronizarPerfil(ctx, userID, contato)

	if err := s.aventuras.Publish(ctx, aventura); err != nil {
		s.logger.Warn("falha ao projetar aventura consolidada",
			"id", aventura.ID,
			"error", err,
		)
		return
	}

	if s.notificador != nil {
		s.notificador.AventuraPublicada(aventura)
	}
}

// sincronizarPerfil grava o contato no perfil apenas quando ele mudou
func (s *PublicacaoService) sincronizarPerfil(ctx context.Context, userID string, contato entities.Contato) {
	perfil, err := s.perfis.FindByID(ctx, userID)
	if err != nil {
		s.logger.Warn("falha ao buscar perfil para sincronização", "user_id", userID, "error", err)
		return
	}

	if perfil == nil {
		perfil = &entities.Perfil{
			ID:        userID,
			CreatedAt: time.Now().UTC(),
		}
	} else if !perfil.ContatoDiferente(contato) {
		return
	}

	perfil.AtualizarContato(contato)

	if err := s.perfis.Upsert(ctx, perfil); err != nil {
		s.logger.Warn("falha ao sincronizar perfil", "user_id", userID, "error", err)
	}
}
