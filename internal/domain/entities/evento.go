package entities

import (
	"errors"
	"time"
)

// Evento representa um evento publicado na plataforma
type Evento struct {
	ID            string
	UserID        string
	NomeEvento    string
	Descricao     string
	DataIda       time.Time
	HoraIda       string
	DataVolta     *time.Time
	HoraVolta     *string
	PontoEncontro string
	LocalEvento   string
	Vagas         Vagas
	ImagemURL     *string
	Contato       Contato
	CreatedAt     time.Time
}

// Validate valida regras de negócio da entidade Evento
func (e *Evento) Validate() error {
	if e.UserID == "" {
		return errors.New("evento exige um usuário autenticado")
	}

	if len(e.NomeEvento) < 2 {
		return errors.New("nome do evento deve ter pelo menos 2 caracteres")
	}

	if len(e.Descricao) < 10 {
		return errors.New("descrição deve ter pelo menos 10 caracteres")
	}

	if e.DataIda.IsZero() {
		return errors.New("data de ida é obrigatória")
	}

	if e.HoraIda == "" {
		return errors.New("horário de ida é obrigatório")
	}

	if len(e.PontoEncontro) < 2 {
		return errors.New("ponto de encontro deve ter pelo menos 2 caracteres")
	}

	if len(e.LocalEvento) < 2 {
		return errors.New("local do evento deve ter pelo menos 2 caracteres")
	}

	if e.DataVolta != nil && e.DataVolta.Before(e.DataIda) {
		return errors.New("data de volta não pode ser anterior à data de ida")
	}

	if err := e.Vagas.Validate(); err != nil {
		return err
	}

	return e.Contato.Validate()
}
