package entities

import (
	"errors"
	"time"
)

// TipoCarona representa o destino geral de uma carona
type TipoCarona string

const (
	CaronaTrilha TipoCarona = "trilha"
	CaronaViagem TipoCarona = "viagem"
)

// Carona representa uma oferta de carona publicada na plataforma
type Carona struct {
	ID            string
	UserID        string
	ModeloCarro   string
	Vagas         int
	Data          time.Time
	Hora          string
	Destino       string
	PontoEncontro string
	Tipo          TipoCarona
	Observacoes   *string
	Contato       Contato
	CreatedAt     time.Time
}

// Validate valida regras de negócio da entidade Carona
func (c *Carona) Validate() error {
	if c.UserID == "" {
		return errors.New("carona exige um usuário autenticado")
	}

	if len(c.ModeloCarro) < 2 {
		return errors.New("modelo do carro deve ter pelo menos 2 caracteres")
	}

	if c.Vagas < 1 {
		return ErrVagasInvalidas
	}

	if c.Data.IsZero() {
		return errors.New("data é obrigatória")
	}

	if c.Hora == "" {
		return errors.New("hora é obrigatória")
	}

	if len(c.Destino) < 2 {
		return errors.New("destino deve ter pelo menos 2 caracteres")
	}

	if len(c.PontoEncontro) < 2 {
		return errors.New("ponto de encontro deve ter pelo menos 2 caracteres")
	}

	if c.Tipo != CaronaTrilha && c.Tipo != CaronaViagem {
		return errors.New("tipo de carona inválido")
	}

	return c.Contato.Validate()
}
