package services

import (
	"context"
	"time"

	"github.com/voujunto/voujunto-backend/internal/domain/entities"
	apperrors "github.com/voujunto/voujunto-backend/internal/domain/errors"
	"github.com/voujunto/voujunto-backend/internal/domain/ports"
	"github.com/voujunto/voujunto-backend/internal/domain/repositories"
	"github.com/voujunto/voujunto-backend/internal/domain/valueobjects"
)

// PerfilService contém a lógica do cache de perfis
type PerfilService struct {
	perfis repositories.PerfilRepository
	logger ports.Logger
}

// NewPerfilService cria um novo PerfilService
func NewPerfilService(perfis repositories.PerfilRepository, logger ports.Logger) *PerfilService {
	return &PerfilService{
		perfis: perfis,
		logger: logger,
	}
}

// BuscarPerfil busca o perfil do usuário
func (s *PerfilService) BuscarPerfil(ctx context.Context, userID string) (*entities.Perfil, error) {
	perfil, err := s.perfis.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if perfil == nil {
		return nil, apperrors.ErrPerfilNaoEncontrado
	}
	return perfil, nil
}

// AtualizarPerfilInput representa os dados de atualização de perfil.
// Campos vazios mantêm o valor atual.
type AtualizarPerfilInput struct {
	Nome     string
	Telefone string
	CEP      string
	Email    string
}

// AtualizarPerfil insere ou atualiza o perfil do usuário
func (s *PerfilService) AtualizarPerfil(ctx context.Context, userID string, input AtualizarPerfilInput) (*entities.Perfil, error) {
	if input.CEP != "" {
		cep, err := valueobjects.NewCEP(input.CEP)
		if err != nil {
			return nil, &apperrors.DomainError{
				Type:    apperrors.ProblemTypeValidation,
				Message: apperrors.ErrDadosInvalidos.Error(),
				Err:     err,
			}
		}
		input.CEP = cep.String()
	}

	perfil, err := s.perfis.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	agora := time.Now().UTC()
	if perfil == nil {
		perfil = &entities.Perfil{
			ID:        userID,
			CreatedAt: agora,
		}
	}

	if input.Nome != "" {
		perfil.Nome = input.Nome
	}
	if input.Telefone != "" {
		perfil.Telefone = input.Telefone
	}
	if input.CEP != "" {
		perfil.CEP = input.CEP
	}
	if input.Email != "" {
		perfil.Email = input.Email
	}
	perfil.UpdatedAt = agora

	if err := s.perfis.Upsert(ctx, perfil); err != nil {
		return nil, err
	}

	s.logger.Info("perfil atualizado", "user_id", userID)
	return perfil, nil
}
