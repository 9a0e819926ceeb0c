package entities

import (
	"errors"

	"github.com/voujunto/voujunto-backend/internal/domain/valueobjects"
)

// Contato é a cópia desnormalizada dos dados de contato do criador,
// gravada em toda publicação no momento da criação. Leitores não devem
// assumir que ela reflete o perfil atual do usuário.
type Contato struct {
	Nome     string
	Telefone string
	CEP      valueobjects.CEP
}

// Validate valida regras de negócio do contato
func (c Contato) Validate() error {
	if len(c.Nome) < 2 {
		return errors.New("nome deve ter pelo menos 2 caracteres")
	}

	if len(c.Telefone) < 8 {
		return errors.New("telefone deve ter pelo menos 8 caracteres")
	}

	if c.CEP.Vazio() {
		return errors.New("cep é obrigatório")
	}

	return nil
}
