package entities

import (
	"time"
)

// Perfil é o cache desnormalizado dos últimos dados de contato
// informados pelo usuário. É atualizado oportunisticamente quando uma
// publicação carrega contato diferente do que está gravado.
type Perfil struct {
	ID        string // identidade de autenticação
	Nome      string
	Telefone  string
	CEP       string // dígitos; vazio quando não informado
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContatoDiferente indica se os dados de contato de uma publicação
// divergem do que está gravado no perfil
func (p *Perfil) ContatoDiferente(c Contato) bool {
	return p.Nome != c.Nome ||
		p.Telefone != c.Telefone ||
		p.CEP != c.CEP.String()
}

// AtualizarContato grava o snapshot de contato mais recente
func (p *Perfil) AtualizarContato(c Contato) {
	p.Nome = c.Nome
	p.Telefone = c.Telefone
	p.CEP = c.CEP.String()
	p.UpdatedAt = time.Now().UTC()
}
