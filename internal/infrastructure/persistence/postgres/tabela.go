package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/voujunto/voujunto-backend/internal/domain/entities"
	apperrors "github.com/voujunto/voujunto-backend/internal/domain/errors"
	"github.com/voujunto/voujunto-backend/internal/domain/repositories"
)

// tabela é o binding genérico "tabela → registro tipado" que concentra
// o fluxo de leitura/escrita dos quatro tipos de publicação. Cada tipo
// é apenas um mapeamento declarativo (nome da tabela + conversores);
// o fluxo de controle existe uma única vez.
type tabela[M any, E any] struct {
	db           *gorm.DB
	exec         *Executor
	nome         string
	paraModelo   func(*E) *M
	paraEntidade func(*M) (*E, error)
}

func (t *tabela[M, E]) Create(ctx context.Context, registro *E) error {
	modelo := t.paraModelo(registro)
	return t.db.WithContext(ctx).Table(t.nome).Create(modelo).Error
}

// FindAll lista todos os registros, mais recentes primeiro
func (t *tabela[M, E]) FindAll(ctx context.Context) ([]*E, error) {
	consulta := repositories.Consulta{
		Tabela:     t.nome,
		OrdenarPor: repositories.OrdenarDesc("created_at"),
	}
	return t.buscar(ctx, consulta)
}

// FindByID busca um registro; ausência retorna nil, não erro
func (t *tabela[M, E]) FindByID(ctx context.Context, id string) (*E, error) {
	var modelo M

	consulta := repositories.Consulta{
		Tabela:  t.nome,
		Filtros: []repositories.Filtro{{Coluna: "id", Valor: id}},
	}

	if err := t.exec.BuscarUma(ctx, consulta, &modelo); err != nil {
		if errors.Is(err, apperrors.ErrRegistroNaoEncontrado) {
			return nil, nil
		}
		return nil, err
	}

	return t.paraEntidade(&modelo)
}

// FindByUser lista os registros de um usuário, mais recentes primeiro
func (t *tabela[M, E]) FindByUser(ctx context.Context, userID string) ([]*E, error) {
	consulta := repositories.Consulta{
		Tabela:     t.nome,
		Filtros:    []repositories.Filtro{{Coluna: "user_id", Valor: userID}},
		OrdenarPor: repositories.OrdenarDesc("created_at"),
	}
	return t.buscar(ctx, consulta)
}

func (t *tabela[M, E]) buscar(ctx context.Context, consulta repositories.Consulta) ([]*E, error) {
	var modelos []*M
	if err := t.exec.Buscar(ctx, consulta, &modelos); err != nil {
		return nil, err
	}

	registros := make([]*E, 0, len(modelos))
	for _, modelo := range modelos {
		registro, err := t.paraEntidade(modelo)
		if err != nil {
			return nil, err
		}
		registros = append(registros, registro)
	}

	return registros, nil
}

// NewEventoRepository cria o repositório de eventos
func NewEventoRepository(db *gorm.DB) repositories.EventoRepository {
	return &tabela[EventoModel, entities.Evento]{
		db:           db,
		exec:         NewExecutor(db),
		nome:         "eventos",
		paraModelo:   eventoParaModelo,
		paraEntidade: eventoParaEntidade,
	}
}

// NewTrilhaRepository cria o repositório de trilhas
func NewTrilhaRepository(db *gorm.DB) repositories.TrilhaRepository {
	return &tabela[TrilhaModel, entities.Trilha]{
		db:           db,
		exec:         NewExecutor(db),
		nome:         "trilhas",
		paraModelo:   trilhaParaModelo,
		paraEntidade: trilhaParaEntidade,
	}
}

// NewCaronaRepository cria o repositório de caronas
func NewCaronaRepository(db *gorm.DB) repositories.CaronaRepository {
	return &tabela[CaronaModel, entities.Carona]{
		db:           db,
		exec:         NewExecutor(db),
		nome:         "caronas",
		paraModelo:   caronaParaModelo,
		paraEntidade: caronaParaEntidade,
	}
}

// NewViagemRepository cria o repositório de buscas por parceiros de
// viagem
func NewViagemRepository(db *gorm.DB) repositories.ViagemRepository {
	return &tabela[ViagemModel, entities.Viagem]{
		db:           db,
		exec:         NewExecutor(db),
		nome:         "viagens",
		paraModelo:   viagemParaModelo,
		paraEntidade: viagemParaEntidade,
	}
}
