package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/voujunto/voujunto-backend/internal/domain/entities"
	"github.com/voujunto/voujunto-backend/internal/domain/repositories"
)

// PerfilRepository implementa repositories.PerfilRepository
type PerfilRepository struct {
	db *gorm.DB
}

// NewPerfilRepository cria um novo PerfilRepository
func NewPerfilRepository(db *gorm.DB) repositories.PerfilRepository {
	return &PerfilRepository{db: db}
}

// FindByID busca um perfil; ausência retorna nil, não erro
func (r *PerfilRepository) FindByID(ctx context.Context, id string) (*entities.Perfil, error) {
	var modelo PerfilModel

	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&modelo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return perfilParaEntidade(&modelo)
}

// Upsert insere ou atualiza o cache de contato do usuário
func (r *PerfilRepository) Upsert(ctx context.Context, perfil *entities.Perfil) error {
	modelo := perfilParaModelo(perfil)

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"nome", "telefone", "cep", "email", "updated_at",
		}),
	}).Create(modelo).Error
}

// FindAll lista os perfis, mais recentes primeiro
func (r *PerfilRepository) FindAll(ctx context.Context) ([]*entities.Perfil, error) {
	var modelos []*PerfilModel

	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&modelos).Error; err != nil {
		return nil, err
	}

	perfis := make([]*entities.Perfil, 0, len(modelos))
	for _, modelo := range modelos {
		perfil, err := perfilParaEntidade(modelo)
		if err != nil {
			return nil, err
		}
		perfis = append(perfis, perfil)
	}

	return perfis, nil
}
