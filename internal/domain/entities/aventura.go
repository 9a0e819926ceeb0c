package entities

import (
	"fmt"
	"time"

	"github.com/voujunto/voujunto-backend/internal/domain/valueobjects"
)

// Tipos de exibição do feed unificado
const (
	TipoEvento            = "Evento"
	TipoParceirosDeViagem = "Parceiros de Viagem"
)

// FormatoData é o formato de exibição de datas do feed
const FormatoData = "02/01/2006"

// Aventura é o registro unificado de exibição produzido a partir de
// eventos, trilhas, caronas e buscas por parceiros de viagem. As datas
// são normalizadas para time.Time na ingestão; qualquer formatação é
// derivada na leitura.
type Aventura struct {
	ID        string
	UserID    string
	Titulo    string
	Tipo      string
	Data      time.Time
	DataFim   *time.Time // presente apenas em períodos (viagens)
	Local     string
	Imagem    *string
	Descricao string
	Vagas     Vagas
	Telefone  string
	Contato   string
	CEP       valueobjects.CEP
	CriadaEm  time.Time
}

// Periodo retorna a data de exibição; para períodos, o intervalo
// "início - fim"
func (a *Aventura) Periodo() string {
	if a.DataFim != nil {
		return a.Data.Format(FormatoData) + " - " + a.DataFim.Format(FormatoData)
	}
	return a.Data.Format(FormatoData)
}

// NovaAventuraDeEvento projeta um evento no formato unificado
func NovaAventuraDeEvento(e *Evento) *Aventura {
	return &Aventura{
		ID:        e.ID,
		UserID:    e.UserID,
		Titulo:    e.NomeEvento,
		Tipo:      TipoEvento,
		Data:      e.DataIda,
		Local:     e.LocalEvento,
		Imagem:    e.ImagemURL,
		Descricao: e.Descricao,
		Vagas:     e.Vagas,
		Telefone:  e.Contato.Telefone,
		Contato:   e.Contato.Nome,
		CEP:       e.Contato.CEP,
		CriadaEm:  e.CreatedAt,
	}
}

// NovaAventuraDeTrilha projeta uma trilha no formato unificado.
// Sem observações, uma descrição é sintetizada a partir do nível e do
// veículo, para que o feed nunca exiba descrição vazia.
func NovaAventuraDeTrilha(t *Trilha) *Aventura {
	descricao := textoOpcional(t.Observacoes)
	if descricao == "" {
		descricao = fmt.Sprintf("Trilha %s com %s", t.NivelDificuldade, t.TipoVeiculo)
	}

	return &Aventura{
		ID:        t.ID,
		UserID:    t.UserID,
		Titulo:    t.NomeTrilha,
		Tipo:      fmt.Sprintf("Trilha - %s", t.TipoVeiculo),
		Data:      t.Data,
		Local:     t.PontoEncontro,
		Descricao: descricao,
		Vagas:     VagasLimitadas(t.Vagas),
		Telefone:  t.Contato.Telefone,
		Contato:   t.Contato.Nome,
		CEP:       t.Contato.CEP,
		CriadaEm:  t.CreatedAt,
	}
}

// NovaAventuraDeCarona projeta uma oferta de carona no formato unificado
func NovaAventuraDeCarona(c *Carona) *Aventura {
	descricao := textoOpcional(c.Observacoes)
	if descricao == "" {
		descricao = fmt.Sprintf("Carona em %s para %s", c.ModeloCarro, c.Destino)
	}

	return &Aventura{
		ID:        c.ID,
		UserID:    c.UserID,
		Titulo:    fmt.Sprintf("Carona para %s", c.Destino),
		Tipo:      fmt.Sprintf("Carona - %s", c.Tipo),
		Data:      c.Data,
		Local:     c.PontoEncontro,
		Descricao: descricao,
		Vagas:     VagasLimitadas(c.Vagas),
		Telefone:  c.Contato.Telefone,
		Contato:   c.Contato.Nome,
		CEP:       c.Contato.CEP,
		CriadaEm:  c.CreatedAt,
	}
}

// NovaAventuraDeViagem projeta uma busca por parceiros de viagem no
// formato unificado. A data é um período; a ordenação do feed usa
// apenas o início.
func NovaAventuraDeViagem(v *Viagem) *Aventura {
	descricao := textoOpcional(v.Observacoes)
	if descricao == "" {
		descricao = fmt.Sprintf("Busca de %d parceiros para viagem", v.NumPessoas)
	}

	fim := v.DataFim

	return &Aventura{
		ID:        v.ID,
		UserID:    v.UserID,
		Titulo:    fmt.Sprintf("Viagem para %s, %s", v.Cidade, v.Estado),
		Tipo:      TipoParceirosDeViagem,
		Data:      v.DataInicio,
		DataFim:   &fim,
		Local:     fmt.Sprintf("%s, %s", v.Cidade, v.Estado),
		Descricao: descricao,
		Vagas:     VagasLimitadas(v.NumPessoas),
		Telefone:  v.Contato.Telefone,
		Contato:   v.Contato.Nome,
		CEP:       v.Contato.CEP,
		CriadaEm:  v.CreatedAt,
	}
}

func textoOpcional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
