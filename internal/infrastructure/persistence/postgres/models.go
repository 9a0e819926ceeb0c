package postgres

import (
	"time"

	"github.com/voujunto/voujunto-backend/internal/domain/entities"
	"github.com/voujunto/voujunto-backend/internal/domain/valueobjects"
)

// EventoModel é o model GORM para eventos
type EventoModel struct {
	ID              string     `gorm:"type:uuid;primary_key"`
	UserID          string     `gorm:"type:uuid;not null;index"`
	NomeEvento      string     `gorm:"type:varchar(255);not null"`
	Descricao       string     `gorm:"type:text;not null"`
	DataIda         time.Time  `gorm:"not null;index"`
	HoraIda         string     `gorm:"type:varchar(5);not null"`
	DataVolta       *time.Time `gorm:""`
	HoraVolta       *string    `gorm:"type:varchar(5)"`
	PontoEncontro   string     `gorm:"type:varchar(255);not null"`
	LocalEvento     string     `gorm:"type:varchar(255);not null"`
	Vagas           int        `gorm:"not null"` // -1 = ilimitadas (sentinela legado)
	VagasIlimitadas bool       `gorm:"not null"`
	ImagemURL       *string    `gorm:"type:varchar(500)"`
	Nome            string     `gorm:"type:varchar(255);not null"`
	Telefone        string     `gorm:"type:varchar(20);not null"`
	CEP             string     `gorm:"type:varchar(8);not null;index"`
	CreatedAt       int64      `gorm:"autoCreateTime;index"`
}

func (EventoModel) TableName() string {
	return "eventos"
}

// TrilhaModel é o model GORM para trilhas
type TrilhaModel struct {
	ID               string    `gorm:"type:uuid;primary_key"`
	UserID           string    `gorm:"type:uuid;not null;index"`
	TipoVeiculo      string    `gorm:"type:varchar(20);not null"`
	NomeTrilha       string    `gorm:"type:varchar(255);not null"`
	Data             time.Time `gorm:"not null;index"`
	Hora             string    `gorm:"type:varchar(5);not null"`
	PontoEncontro    string    `gorm:"type:varchar(255);not null"`
	Vagas            int       `gorm:"not null"`
	NivelDificuldade string    `gorm:"type:varchar(20);not null"`
	Observacoes      *string   `gorm:"type:text"`
	Nome             string    `gorm:"type:varchar(255);not null"`
	Telefone         string    `gorm:"type:varchar(20);not null"`
	CEP              string    `gorm:"type:varchar(8);not null;index"`
	CreatedAt        int64     `gorm:"autoCreateTime;index"`
}

func (TrilhaModel) TableName() string {
	return "trilhas"
}

// CaronaModel é o model GORM para caronas
type CaronaModel struct {
	ID            string    `gorm:"type:uuid;primary_key"`
	UserID        string    `gorm:"type:uuid;not null;index"`
	ModeloCarro   string    `gorm:"type:varchar(255);not null"`
	Vagas         int       `gorm:"not null"`
	Data          time.Time `gorm:"not null;index"`
	Hora          string    `gorm:"type:varchar(5);not null"`
	Destino       string    `gorm:"type:varchar(255);not null"`
	PontoEncontro string    `gorm:"type:varchar(255);not null"`
	Tipo          string    `gorm:"type:varchar(20);not null"`
	Observacoes   *string   `gorm:"type:text"`
	Nome          string    `gorm:"type:varchar(255);not null"`
	Telefone      string    `gorm:"type:varchar(20);not null"`
	CEP           string    `gorm:"type:varchar(8);not null;index"`
	CreatedAt     int64     `gorm:"autoCreateTime;index"`
}

func (CaronaModel) TableName() string {
	return "caronas"
}

// ViagemModel é o model GORM para buscas por parceiros de viagem
type ViagemModel struct {
	ID          string    `gorm:"type:uuid;primary_key"`
	UserID      string    `gorm:"type:uuid;not null;index"`
	Cidade      string    `gorm:"type:varchar(255);not null"`
	Estado      string    `gorm:"type:varchar(2);not null"`
	DataInicio  time.Time `gorm:"not null;index"`
	DataFim     time.Time `gorm:"not null"`
	NumPessoas  int       `gorm:"not null"`
	Observacoes *string   `gorm:"type:text"`
	Nome        string    `gorm:"type:varchar(255);not null"`
	Telefone    string    `gorm:"type:varchar(20);not null"`
	CEP         string    `gorm:"type:varchar(8);not null;index"`
	CreatedAt   int64     `gorm:"autoCreateTime;index"`
}

func (ViagemModel) TableName() string {
	return "viagens"
}

// PerfilModel é o model GORM para o cache de perfis
type PerfilModel struct {
	ID        string `gorm:"type:uuid;primary_key"`
	Nome      string `gorm:"type:varchar(255)"`
	Telefone  string `gorm:"type:varchar(20)"`
	CEP       string `gorm:"type:varchar(8)"`
	Email     string `gorm:"type:varchar(255)"`
	CreatedAt int64  `gorm:"autoCreateTime"`
	UpdatedAt int64  `gorm:"autoUpdateTime"`
}

func (PerfilModel) TableName() string {
	return "perfis"
}

// AventuraModel é o model GORM da tabela consolidada de aventuras,
// gravada como projeção no momento da publicação de qualquer tipo
type AventuraModel struct {
	ID        string     `gorm:"type:uuid;primary_key"`
	UserID    string     `gorm:"type:uuid;not null;index"`
	Titulo    string     `gorm:"type:varchar(255);not null"`
	Tipo      string     `gorm:"type:varchar(50);not null"`
	Data      time.Time  `gorm:"not null;index"`
	DataFim   *time.Time `gorm:""`
	Local     string     `gorm:"type:varchar(255);not null"`
	Imagem    *string    `gorm:"type:varchar(500)"`
	Descricao string     `gorm:"type:text;not null"`
	Vagas     int        `gorm:"not null"` // sentinela: -1 = ilimitadas
	Telefone  string     `gorm:"type:varchar(20);not null"`
	Contato   string     `gorm:"type:varchar(255);not null"`
	CEP       string     `gorm:"type:varchar(8);not null;index"`
	CreatedAt int64      `gorm:"autoCreateTime;index"`
}

func (AventuraModel) TableName() string {
	return "aventuras"
}

// Conversores entre models e entidades. O sentinela de vagas só existe
// daqui para baixo.

func eventoParaModelo(e *entities.Evento) *EventoModel {
	return &EventoModel{
		ID:              e.ID,
		UserID:          e.UserID,
		NomeEvento:      e.NomeEvento,
		Descricao:       e.Descricao,
		DataIda:         e.DataIda,
		HoraIda:         e.HoraIda,
		DataVolta:       e.DataVolta,
		HoraVolta:       e.HoraVolta,
		PontoEncontro:   e.PontoEncontro,
		LocalEvento:     e.LocalEvento,
		Vagas:           e.Vagas.Sentinela(),
		VagasIlimitadas: e.Vagas.Ilimitadas(),
		ImagemURL:       e.ImagemURL,
		Nome:            e.Contato.Nome,
		Telefone:        e.Contato.Telefone,
		CEP:             e.Contato.CEP.String(),
		CreatedAt:       e.CreatedAt.Unix(),
	}
}

func eventoParaEntidade(m *EventoModel) (*entities.Evento, error) {
	cep, err := valueobjects.NewCEP(m.CEP)
	if err != nil {
		return nil, err
	}

	return &entities.Evento{
		ID:            m.ID,
		UserID:        m.UserID,
		NomeEvento:    m.NomeEvento,
		Descricao:     m.Descricao,
		DataIda:       m.DataIda,
		HoraIda:       m.HoraIda,
		DataVolta:     m.DataVolta,
		HoraVolta:     m.HoraVolta,
		PontoEncontro: m.PontoEncontro,
		LocalEvento:   m.LocalEvento,
		Vagas:         entities.VagasDoSentinela(m.Vagas, m.VagasIlimitadas),
		ImagemURL:     m.ImagemURL,
		Contato: entities.Contato{
			Nome:     m.Nome,
			Telefone: m.Telefone,
			CEP:      cep,
		},
		CreatedAt: time.Unix(m.CreatedAt, 0).UTC(),
	}, nil
}

func trilhaParaModelo(t *entities.Trilha) *TrilhaModel {
	return &TrilhaModel{
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
		Nome:             t.Contato.Nome,
		Telefone:         t.Contato.Telefone,
		CEP:              t.Contato.CEP.String(),
		CreatedAt:        t.CreatedAt.Unix(),
	}
}

func trilhaParaEntidade(m *TrilhaModel) (*entities.Trilha, error) {
	cep, err := valueobjects.NewCEP(m.CEP)
	if err != nil {
		return nil, err
	}

	return &entities.Trilha{
		ID:               m.ID,
		UserID:           m.UserID,
		TipoVeiculo:      entities.TipoVeiculo(m.TipoVeiculo),
		NomeTrilha:       m.NomeTrilha,
		Data:             m.Data,
		Hora:             m.Hora,
		PontoEncontro:    m.PontoEncontro,
		Vagas:            m.Vagas,
		NivelDificuldade: entities.NivelDificuldade(m.NivelDificuldade),
		Observacoes:      m.Observacoes,
		Contato: entities.Contato{
			Nome:     m.Nome,
			Telefone: m.Telefone,
			CEP:      cep,
		},
		CreatedAt: time.Unix(m.CreatedAt, 0).UTC(),
	}, nil
}

func caronaParaModelo(c *entities.Carona) *CaronaModel {
	return &CaronaModel{
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
		Nome:          c.Contato.Nome,
		Telefone:      c.Contato.Telefone,
		CEP:           c.Contato.CEP.String(),
		CreatedAt:     c.CreatedAt.Unix(),
	}
}

func caronaParaEntidade(m *CaronaModel) (*entities.Carona, error) {
	cep, err := valueobjects.NewCEP(m.CEP)
	if err != nil {
		return nil, err
	}

	return &entities.Carona{
		ID:            m.ID,
		UserID:        m.UserID,
		ModeloCarro:   m.ModeloCarro,
		Vagas:         m.Vagas,
		Data:          m.Data,
		Hora:          m.Hora,
		Destino:       m.Destino,
		PontoEncontro: m.PontoEncontro,
		Tipo:          entities.TipoCarona(m.Tipo),
		Observacoes:   m.Observacoes,
		Contato: entities.Contato{
			Nome:     m.Nome,
			Telefone: m.Telefone,
			CEP:      cep,
		},
		CreatedAt: time.Unix(m.CreatedAt, 0).UTC(),
	}, nil
}

func viagemParaModelo(v *entities.Viagem) *ViagemModel {
	return &ViagemModel{
		ID:          v.ID,
		UserID:      v.UserID,
		Cidade:      v.Cidade,
		Estado:      v.Estado,
		DataInicio:  v.DataInicio,
		DataFim:     v.DataFim,
		NumPessoas:  v.NumPessoas,
		Observacoes: v.Observacoes,
		Nome:        v.Contato.Nome,
		Telefone:    v.Contato.Telefone,
		CEP:         v.Contato.CEP.String(),
		CreatedAt:   v.CreatedAt.Unix(),
	}
}

func viagemParaEntidade(m *ViagemModel) (*entities.Viagem, error) {
	cep, err := valueobjects.NewCEP(m.CEP)
	if err != nil {
		return nil, err
	}

	return &entities.Viagem{
		ID:          m.ID,
		UserID:      m.UserID,
		Cidade:      m.Cidade,
		Estado:      m.Estado,
		DataInicio:  m.DataInicio,
		DataFim:     m.DataFim,
		NumPessoas:  m.NumPessoas,
		Observacoes: m.Observacoes,
		Contato: entities.Contato{
			Nome:     m.Nome,
			Telefone: m.Telefone,
			CEP:      cep,
		},
		CreatedAt: time.Unix(m.CreatedAt, 0).UTC(),
	}, nil
}

func perfilParaModelo(p *entities.Perfil) *PerfilModel {
	return &PerfilModel{
		ID:        p.ID,
		Nome:      p.Nome,
		Telefone:  p.Telefone,
		CEP:       p.CEP,
		Email:     p.Email,
		CreatedAt: p.CreatedAt.Unix(),
		UpdatedAt: p.UpdatedAt.Unix(),
	}
}

func perfilParaEntidade(m *PerfilModel) (*entities.Perfil, error) {
	return &entities.Perfil{
		ID:        m.ID,
		Nome:      m.Nome,
		Telefone:  m.Telefone,
		CEP:       m.CEP,
		Email:     m.Email,
		CreatedAt: time.Unix(m.CreatedAt, 0).UTC(),
		UpdatedAt: time.Unix(m.UpdatedAt, 0).UTC(),
	}, nil
}

func aventuraParaModelo(a *entities.Aventura) *AventuraModel {
	return &AventuraModel{
		ID:        a.ID,
		UserID:    a.UserID,
		Titulo:    a.Titulo,
		Tipo:      a.Tipo,
		Data:      a.Data,
		DataFim:   a.DataFim,
		Local:     a.Local,
		Imagem:    a.Imagem,
		Descricao: a.Descricao,
		Vagas:     a.Vagas.Sentinela(),
		Telefone:  a.Telefone,
		Contato:   a.Contato,
		CEP:       a.CEP.String(),
		CreatedAt: a.CriadaEm.Unix(),
	}
}

func aventuraParaEntidade(m *AventuraModel) (*entities.Aventura, error) {
	cep, err := valueobjects.NewCEP(m.CEP)
	if err != nil {
		return nil, err
	}

	return &entities.Aventura{
		ID:        m.ID,
		UserID:    m.UserID,
		Titulo:    m.Titulo,
		Tipo:      m.Tipo,
		Data:      m.Data,
		DataFim:   m.DataFim,
		Local:     m.Local,
		Imagem:    m.Imagem,
		Descricao: m.Descricao,
		Vagas:     entities.VagasDoSentinela(m.Vagas, m.Vagas < 0),
		Telefone:  m.Telefone,
		Contato:   m.Contato,
		CEP:       cep,
		CriadaEm:  time.Unix(m.CreatedAt, 0).UTC(),
	}, nil
}
