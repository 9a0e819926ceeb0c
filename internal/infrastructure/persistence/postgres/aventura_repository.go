package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/voujunto/voujunto-backend/internal/domain/entities"
	"github.com/voujunto/voujunto-backend/internal/domain/repositories"
)

// AventuraRepository implementa repositories.AventuraRepository sobre
// a tabela consolidada. A listagem usa comparação de prefixo de CEP
// ("123%"), que o operador like genérico (curinga dos dois lados) não
// expressa; por isso o predicado é montado direto no builder, com a
// mesma matemática de janela do Executor.
type AventuraRepository struct {
	db *gorm.DB
}

// NewAventuraRepository cria um novo AventuraRepository
func NewAventuraRepository(db *gorm.DB) repositories.AventuraRepository {
	return &AventuraRepository{db: db}
}

// Publish grava a projeção consolidada de uma publicação
func (r *AventuraRepository) Publish(ctx context.Context, aventura *entities.Aventura) error {
	modelo := aventuraParaModelo(aventura)
	return r.db.WithContext(ctx).Create(modelo).Error
}

// Page retorna uma página da listagem, datas futuras primeiro
func (r *AventuraRepository) Page(ctx context.Context, filters repositories.AventuraFilters) ([]*entities.Aventura, error) {
	page := filters.Page
	if page < 1 {
		page = 1
	}
	size := filters.PageSize
	if size < 1 {
		size = 1
	}

	query := r.predicado(ctx, filters).Order("data ASC").Limit(size)
	if page > 1 {
		query = query.Offset((page - 1) * size)
	}

	var modelos []*AventuraModel
	if err := query.Find(&modelos).Error; err != nil {
		return nil, err
	}

	aventuras := make([]*entities.Aventura, 0, len(modelos))
	for _, modelo := range modelos {
		aventura, err := aventuraParaEntidade(modelo)
		if err != nil {
			return nil, err
		}
		aventuras = append(aventuras, aventura)
	}

	return aventuras, nil
}

// Count conta as aventuras com o MESMO predicado da página (data e
// localização); a contagem e a busca nunca podem divergir
func (r *AventuraRepository) Count(ctx context.Context, filters repositories.AventuraFilters) (int64, error) {
	var total int64
	err := r.predicado(ctx, filters).Count(&total).Error
	return total, err
}

func (r *AventuraRepository) predicado(ctx context.Context, filters repositories.AventuraFilters) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&AventuraModel{}).
		Where("data >= ?", filters.DataMinima)

	if filters.PrefixoCEP != "" {
		query = query.Where("cep LIKE ?", filters.PrefixoCEP+"%")
	}

	return query
}
