package entities

import (
	"errors"
	"time"
)

// Viagem representa uma busca por parceiros de viagem publicada na
// plataforma
type Viagem struct {
	ID          string
	UserID      string
	Cidade      string
	Estado      string
	DataInicio  time.Time
	DataFim     time.Time
	NumPessoas  int
	Observacoes *string
	Contato     Contato
	CreatedAt   time.Time
}

// Validate valida regras de negócio da entidade Viagem
func (v *Viagem) Validate() error {
	if v.UserID == "" {
		return errors.New("viagem exige um usuário autenticado")
	}

	if len(v.Cidade) < 2 {
		return errors.New("cidade deve ter pelo menos 2 caracteres")
	}

	if len(v.Estado) < 2 {
		return errors.New("estado deve ter pelo menos 2 caracteres")
	}

	if v.DataInicio.IsZero() || v.DataFim.IsZero() {
		return errors.New("período da viagem é obrigatório")
	}

	if v.DataFim.Before(v.DataInicio) {
		return errors.New("data de retorno não pode ser anterior à data de início")
	}

	if v.NumPessoas < 1 {
		return errors.New("número de pessoas deve ser pelo menos 1")
	}

	return v.Contato.Validate()
}
