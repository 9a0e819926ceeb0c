package repositories

import (
	"context"
	"time"

	"github.com/voujunto/voujunto-backend/internal/domain/entities"
)

// Operador é o operador de comparação de um filtro de consulta
type Operador string

const (
	OperadorEq   Operador = "eq"
	OperadorNeq  Operador = "neq"
	OperadorGt   Operador = "gt"
	OperadorLt   Operador = "lt"
	OperadorGte  Operador = "gte"
	OperadorLte  Operador = "lte"
	OperadorLike Operador = "like" // busca por substring (curinga dos dois lados)
)

// Filtro é uma condição de consulta; filtros combinam com AND implícito.
// Operador vazio equivale a eq.
type Filtro struct {
	Coluna   string
	Operador Operador
	Valor    any
}

// Ordenacao descreve a ordenação de uma consulta
type Ordenacao struct {
	Coluna     string
	Ascendente bool
}

// OrdenarAsc cria uma ordenação ascendente
func OrdenarAsc(coluna string) *Ordenacao {
	return &Ordenacao{Coluna: coluna, Ascendente: true}
}

// OrdenarDesc cria uma ordenação descendente
func OrdenarDesc(coluna string) *Ordenacao {
	return &Ordenacao{Coluna: coluna}
}

// Consulta descreve uma leitura filtrada/ordenada/paginada contra uma
// tabela nomeada. Sem ordenação, a ordem das linhas é a devolvida pelo
// armazenamento (não garantida). Com TamanhoPagina e Pagina > 1, a
// janela pedida é [(pagina-1)*tamanho, pagina*tamanho - 1]; página 1
// (ou ausente) pede apenas as primeiras TamanhoPagina linhas.
type Consulta struct {
	Tabela        string
	Colunas       []string // projeção opcional; vazio = todas
	Filtros       []Filtro
	OrdenarPor    *Ordenacao
	TamanhoPagina int
	Pagina        int
}

// EventoRepository define a interface para persistência de eventos
type EventoRepository interface {
	Create(ctx context.Context, evento *entities.Evento) error
	FindAll(ctx context.Context) ([]*entities.Evento, error)
	FindByID(ctx context.Context, id string) (*entities.Evento, error)
	FindByUser(ctx context.Context, userID string) ([]*entities.Evento, error)
}

// TrilhaRepository define a interface para persistência de trilhas
type TrilhaRepository interface {
	Create(ctx context.Context, trilha *entities.Trilha) error
	FindAll(ctx context.Context) ([]*entities.Trilha, error)
	FindByID(ctx context.Context, id string) (*entities.Trilha, error)
	FindByUser(ctx context.Context, userID string) ([]*entities.Trilha, error)
}

// CaronaRepository define a interface para persistência de caronas
type CaronaRepository interface {
	Create(ctx context.Context, carona *entities.Carona) error
	FindAll(ctx context.Context) ([]*entities.Carona, error)
	FindByID(ctx context.Context, id string) (*entities.Carona, error)
	FindByUser(ctx context.Context, userID string) ([]*entities.Carona, error)
}

// ViagemRepository define a interface para persistência de buscas por
// parceiros de viagem
type ViagemRepository interface {
	Create(ctx context.Context, viagem *entities.Viagem) error
	FindAll(ctx context.Context) ([]*entities.Viagem, error)
	FindByID(ctx context.Context, id string) (*entities.Viagem, error)
	FindByUser(ctx context.Context, userID string) ([]*entities.Viagem, error)
}

// PerfilRepository define a interface para o cache de perfis
type PerfilRepository interface {
	FindByID(ctx context.Context, id string) (*entities.Perfil, error)
	Upsert(ctx context.Context, perfil *entities.Perfil) error
	FindAll(ctx context.Context) ([]*entities.Perfil, error)
}

// AventuraFilters contém os filtros da listagem consolidada de
// aventuras. O mesmo predicado vale para a página e para a contagem.
type AventuraFilters struct {
	DataMinima time.Time // somente datas futuras ou presentes
	PrefixoCEP string    // prefixo do CEP (cidade = 3 dígitos, estado = 2); vazio = sem filtro
	Page       int       // página (começa em 1)
	PageSize   int       // itens por página
}

// AventuraRepository define a interface para a tabela consolidada de
// aventuras
type AventuraRepository interface {
	Publish(ctx context.Context, aventura *entities.Aventura) error
	Page(ctx context.Context, filters AventuraFilters) ([]*entities.Aventura, error)
	Count(ctx context.Context, filters AventuraFilters) (int64, error)
}
