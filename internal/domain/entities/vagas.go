package entities

import (
	"errors"
	"strconv"
)

var (
	ErrVagasInvalidas = errors.New("error.vagas_invalidas")
)

// VagasSentinela é o valor legado gravado no armazenamento para
// representar vagas ilimitadas. Ele só existe na borda de persistência
// e no contrato de exibição consolidado; o domínio trabalha com o tipo
// Vagas.
const VagasSentinela = -1

// Vagas representa a quantidade de vagas de uma publicação como uma
// variante: Limitadas(n >= 1) ou Ilimitadas.
type Vagas struct {
	ilimitadas bool
	quantidade int
}

// VagasLimitadas cria vagas com quantidade fixa
func VagasLimitadas(n int) Vagas {
	return Vagas{quantidade: n}
}

// VagasIlimitadas cria vagas sem limite de participantes
func VagasIlimitadas() Vagas {
	return Vagas{ilimitadas: true}
}

// VagasDoSentinela converte o par (valor, flag) gravado no banco.
// Valores negativos e a flag redundante significam a mesma coisa; os
// dois precisam se manter consistentes na gravação.
func VagasDoSentinela(n int, ilimitadas bool) Vagas {
	if ilimitadas || n < 0 {
		return VagasIlimitadas()
	}
	return VagasLimitadas(n)
}

// Ilimitadas indica se não há limite de vagas
func (v Vagas) Ilimitadas() bool {
	return v.ilimitadas
}

// Quantidade retorna o número de vagas; 0 quando ilimitadas
func (v Vagas) Quantidade() int {
	if v.ilimitadas {
		return 0
	}
	return v.quantidade
}

// Sentinela retorna a representação de armazenamento (-1 = ilimitadas)
func (v Vagas) Sentinela() int {
	if v.ilimitadas {
		return VagasSentinela
	}
	return v.quantidade
}

// Validate valida a variante: vagas limitadas exigem quantidade >= 1
func (v Vagas) Validate() error {
	if !v.ilimitadas && v.quantidade < 1 {
		return ErrVagasInvalidas
	}
	return nil
}

// String retorna o texto de exibição; nunca um número negativo
func (v Vagas) String() string {
	if v.ilimitadas {
		return "Ilimitadas"
	}
	return strconv.Itoa(v.quantidade)
}
