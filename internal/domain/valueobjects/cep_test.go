package valueobjects

import "testing"

func TestNewCEP(t *testing.T) {
	t.Run("aceita oito dígitos sem máscara", func(t *testing.T) {
		cep, err := NewCEP("01310100")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if cep.String() != "01310100" {
			t.Errorf("esperava '01310100', obteve '%s'", cep.String())
		}
	})

	t.Run("aceita entrada com máscara", func(t *testing.T) {
		cep, err := NewCEP("01310-100")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if cep.String() != "01310100" {
			t.Errorf("esperava dígitos sem máscara, obteve '%s'", cep.String())
		}
	})

	t.Run("rejeita menos de oito dígitos", func(t *testing.T) {
		if _, err := NewCEP("0131010"); err != ErrInvalidCEP {
			t.Errorf("esperava ErrInvalidCEP, obteve %v", err)
		}
	})

	t.Run("rejeita mais de oito dígitos", func(t *testing.T) {
		if _, err := NewCEP("013101000"); err != ErrInvalidCEP {
			t.Errorf("esperava ErrInvalidCEP, obteve %v", err)
		}
	})

	t.Run("rejeita vazio", func(t *testing.T) {
		if _, err := NewCEP(""); err != ErrInvalidCEP {
			t.Errorf("esperava ErrInvalidCEP, obteve %v", err)
		}
	})

	t.Run("ignora letras e pontuação", func(t *testing.T) {
		cep, err := NewCEP("CEP: 01.310-100")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}
		if cep.String() != "01310100" {
			t.Errorf("esperava '01310100', obteve '%s'", cep.String())
		}
	})
}

func TestCEPFormatado(t *testing.T) {
	cep, err := NewCEP("01310100")
	if err != nil {
		t.Fatal(err)
	}

	if cep.Formatado() != "01310-100" {
		t.Errorf("esperava '01310-100', obteve '%s'", cep.Formatado())
	}
}

func TestCEPPrefixos(t *testing.T) {
	cep, err := NewCEP("88015600")
	if err != nil {
		t.Fatal(err)
	}

	t.Run("prefixo de cidade tem três dígitos", func(t *testing.T) {
		if cep.PrefixoCidade() != "880" {
			t.Errorf("esperava '880', obteve '%s'", cep.PrefixoCidade())
		}
	})

	t.Run("prefixo de estado tem dois dígitos", func(t *testing.T) {
		if cep.PrefixoEstado() != "88" {
			t.Errorf("esperava '88', obteve '%s'", cep.PrefixoEstado())
		}
	})
}

func TestCEPVazio(t *testing.T) {
	var cep CEP

	if !cep.Vazio() {
		t.Error("zero value deveria ser vazio")
	}
	if cep.Formatado() != "" {
		t.Errorf("esperava formatado vazio, obteve '%s'", cep.Formatado())
	}
	if cep.PrefixoCidade() != "" || cep.PrefixoEstado() != "" {
		t.Error("prefixos de CEP vazio deveriam ser vazios")
	}
}
