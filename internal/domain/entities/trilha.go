package entities

import (
	"errors"
	"time"
)

// TipoVeiculo representa o veículo usado em uma trilha
type TipoVeiculo string

const (
	VeiculoJipe      TipoVeiculo = "jipe"
	VeiculoMoto      TipoVeiculo = "moto"
	VeiculoBicicleta TipoVeiculo = "bicicleta"
)

// NivelDificuldade representa a dificuldade de uma trilha
type NivelDificuldade string

const (
	NivelFacil   NivelDificuldade = "facil"
	NivelMedio   NivelDificuldade = "medio"
	NivelDificil NivelDificuldade = "dificil"
	NivelExtremo NivelDificuldade = "extremo"
)

// Trilha representa uma trilha off-road ou de bike publicada na plataforma
type Trilha struct {
	ID               string
	UserID           string
	TipoVeiculo      TipoVeiculo
	NomeTrilha       string
	Data             time.Time
	Hora             string
	PontoEncontro    string
	Vagas            int
	NivelDificuldade NivelDificuldade
	Observacoes      *string
	Contato          Contato
	CreatedAt        time.Time
}

// Validate valida regras de negócio da entidade Trilha
func (t *Trilha) Validate() error {
	if t.UserID == "" {
		return errors.New("trilha exige um usuário autenticado")
	}

	switch t.TipoVeiculo {
	case VeiculoJipe, VeiculoMoto, VeiculoBicicleta:
	default:
		return errors.New("tipo de veículo inválido")
	}

	if len(t.NomeTrilha) < 2 {
		return errors.New("nome da trilha deve ter pelo menos 2 caracteres")
	}

	if t.Data.IsZero() {
		return errors.New("data é obrigatória")
	}

	if t.Hora == "" {
		return errors.New("hora é obrigatória")
	}

	if len(t.PontoEncontro) < 2 {
		return errors.New("ponto de encontro deve ter pelo menos 2 caracteres")
	}

	if t.Vagas < 1 {
		return ErrVagasInvalidas
	}

	switch t.NivelDificuldade {
	case NivelFacil, NivelMedio, NivelDificil, NivelExtremo:
	default:
		return errors.New("nível de dificuldade inválido")
	}

	return t.Contato.Validate()
}
