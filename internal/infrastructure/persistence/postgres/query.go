package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	apperrors "github.com/voujunto/voujunto-backend/internal/domain/errors"
	"github.com/voujunto/voujunto-backend/internal/domain/repositories"
)

// Executor executa consultas genéricas (filtro/ordenação/paginação)
// contra uma tabela nomeada. Nomes de tabela e coluna vêm sempre do
// código, nunca de entrada do usuário.
type Executor struct {
	db *gorm.DB
}

// NewExecutor cria um novo Executor sobre a conexão dada
func NewExecutor(db *gorm.DB) *Executor {
	return &Executor{db: db}
}

// Buscar executa a consulta e preenche dest (ponteiro para slice de
// models). Resultado vazio é sucesso; erros do armazenamento propagam.
func (e *Executor) Buscar(ctx context.Context, c repositories.Consulta, dest any) error {
	query, err := e.montar(c)
	if err != nil {
		return err
	}

	query = query.WithContext(ctx)

	// Paginação: página 1 (ou ausente) pede só as primeiras linhas;
	// página > 1 pede a janela [(pagina-1)*tamanho, pagina*tamanho - 1]
	if c.TamanhoPagina > 0 {
		query = query.Limit(c.TamanhoPagina)
		if c.Pagina > 1 {
			query = query.Offset((c.Pagina - 1) * c.TamanhoPagina)
		}
	}

	return query.Find(dest).Error
}

// BuscarUma executa a consulta em modo single: exatamente uma linha.
// Zero ou mais de uma linha resultam em ErrRegistroNaoEncontrado.
func (e *Executor) BuscarUma(ctx context.Context, c repositories.Consulta, dest any) error {
	total, err := e.Contar(ctx, c)
	if err != nil {
		return err
	}

	if total != 1 {
		return apperrors.ErrRegistroNaoEncontrado
	}

	query, err := e.montar(c)
	if err != nil {
		return err
	}

	return query.WithContext(ctx).Take(dest).Error
}

// Contar conta as linhas que casam com os filtros da consulta,
// ignorando ordenação e paginação
func (e *Executor) Contar(ctx context.Context, c repositories.Consulta) (int64, error) {
	// ORDER BY não é válido em consultas de contagem
	c.OrdenarPor = nil

	query, err := e.montar(c)
	if err != nil {
		return 0, err
	}

	var total int64
	if err := query.WithContext(ctx).Count(&total).Error; err != nil {
		return 0, err
	}

	return total, nil
}

// montar traduz a Consulta para um query builder do GORM
func (e *Executor) montar(c repositories.Consulta) (*gorm.DB, error) {
	query := e.db.Table(c.Tabela)

	if len(c.Colunas) > 0 {
		query = query.Select(c.Colunas)
	}

	// Filtros combinam com AND implícito
	for _, f := range c.Filtros {
		operador := f.Operador
		if operador == "" {
			operador = repositories.OperadorEq
		}

		switch operador {
		case repositories.OperadorEq:
			query = query.Where(f.Coluna+" = ?", f.Valor)
		case repositories.OperadorNeq:
			query = query.Where(f.Coluna+" <> ?", f.Valor)
		case repositories.OperadorGt:
			query = query.Where(f.Coluna+" > ?", f.Valor)
		case repositories.OperadorLt:
			query = query.Where(f.Coluna+" < ?", f.Valor)
		case repositories.OperadorGte:
			query = query.Where(f.Coluna+" >= ?", f.Valor)
		case repositories.OperadorLte:
			query = query.Where(f.Coluna+" <= ?", f.Valor)
		case repositories.OperadorLike:
			query = query.Where(f.Coluna+" LIKE ?", fmt.Sprintf("%%%v%%", f.Valor))
		default:
			return nil, fmt.Errorf("operador de filtro desconhecido: %s", operador)
		}
	}

	if c.OrdenarPor != nil {
		direcao := "DESC"
		if c.OrdenarPor.Ascendente {
			direcao = "ASC"
		}
		query = query.Order(c.OrdenarPor.Coluna + " " + direcao)
	}

	return query, nil
}
