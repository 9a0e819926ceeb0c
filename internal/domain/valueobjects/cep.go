package valueobjects

import (
	"errors"
	"strings"
)

var (
	ErrInvalidCEP = errors.New("invalid cep format")
)

// CEP é um value object para o código postal brasileiro.
// O valor é sempre armazenado como 8 dígitos, sem máscara; qualquer
// formatação de exibição é derivada, nunca persistida.
type CEP struct {
	value string
}

// NewCEP cria um novo CEP validado. Aceita entrada com máscara
// ("01310-100") ou apenas dígitos ("01310100").
func NewCEP(cep string) (CEP, error) {
	digits := somenteDigitos(cep)

	if len(digits) != 8 {
		return CEP{}, ErrInvalidCEP
	}

	return CEP{value: digits}, nil
}

// String retorna os 8 dígitos do CEP
func (c CEP) String() string {
	return c.value
}

// Vazio indica um CEP não informado (zero value)
func (c CEP) Vazio() bool {
	return c.value == ""
}

// Formatado retorna o CEP com máscara de exibição ("01310-100")
func (c CEP) Formatado() string {
	if c.Vazio() {
		return ""
	}
	return c.value[:5] + "-" + c.value[5:]
}

// PrefixoCidade retorna os 3 primeiros dígitos, usados como filtro
// grosseiro de cidade
func (c CEP) PrefixoCidade() string {
	if c.Vazio() {
		return ""
	}
	return c.value[:3]
}

// PrefixoEstado retorna os 2 primeiros dígitos, usados como filtro
// grosseiro de estado
func (c CEP) PrefixoEstado() string {
	if c.Vazio() {
		return ""
	}
	return c.value[:2]
}

// somenteDigitos remove tudo que não for dígito
func somenteDigitos(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
