package i18n

import (
	"testing"
	"testing/fstest"
)

// localesDeTeste monta um fs.FS em memória com arquivos de locale
func localesDeTeste() fstest.MapFS {
	return fstest.MapFS{
		"pt-BR.json": &fstest.MapFile{Data: []byte(`{
  "msg.bem_vindo": "Bem-vindo, {{.Nome}}!",
  "warning.perfil_sem_cep": "Cadastre seu CEP no perfil para filtrar por localização",
  "error.registro_nao_encontrado": "Registro não encontrado"
}`)},
		"en.json": &fstest.MapFile{Data: []byte(`{
  "msg.bem_vindo": "Welcome, {{.Nome}}!",
  "error.registro_nao_encontrado": "Record not found"
}`)},
	}
}

func TestNewService(t *testing.T) {
	t.Run("carrega traduções com sucesso", func(t *testing.T) {
		service, err := NewService(localesDeTeste(), "pt-BR")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if service.GetDefaultLanguage() != "pt-BR" {
			t.Errorf("esperava idioma padrão 'pt-BR', obteve '%s'", service.GetDefaultLanguage())
		}

		langs := service.GetSupportedLanguages()
		if len(langs) != 2 {
			t.Errorf("esperava 2 idiomas, obteve %d", len(langs))
		}
	})

	t.Run("falha quando o idioma padrão não existe", func(t *testing.T) {
		if _, err := NewService(localesDeTeste(), "es"); err == nil {
			t.Error("esperava erro para idioma padrão ausente")
		}
	})

	t.Run("falha sem arquivos de locale", func(t *testing.T) {
		if _, err := NewService(fstest.MapFS{}, "pt-BR"); err == nil {
			t.Error("esperava erro para fs vazio")
		}
	})

	t.Run("falha com JSON inválido", func(t *testing.T) {
		fsys := fstest.MapFS{
			"pt-BR.json": &fstest.MapFile{Data: []byte(`{invalid`)},
		}
		if _, err := NewService(fsys, "pt-BR"); err == nil {
			t.Error("esperava erro para JSON inválido")
		}
	})
}

func TestT(t *testing.T) {
	service, err := NewService(localesDeTeste(), "pt-BR")
	if err != nil {
		t.Fatal(err)
	}

	t.Run("traduz chave simples", func(t *testing.T) {
		got := service.T("en", "error.registro_nao_encontrado")
		if got != "Record not found" {
			t.Errorf("esperava 'Record not found', obteve '%s'", got)
		}
	})

	t.Run("interpola parâmetros", func(t *testing.T) {
		got := service.T("pt-BR", "msg.bem_vindo", map[string]interface{}{"Nome": "Ana"})
		if got != "Bem-vindo, Ana!" {
			t.Errorf("esperava 'Bem-vindo, Ana!', obteve '%s'", got)
		}
	})

	t.Run("cai para o idioma padrão", func(t *testing.T) {
		got := service.T("en", "warning.perfil_sem_cep")
		if got != "Cadastre seu CEP no perfil para filtrar por localização" {
			t.Errorf("esperava fallback para pt-BR, obteve '%s'", got)
		}
	})

	t.Run("chave desconhecida retorna a própria chave", func(t *testing.T) {
		if got := service.T("pt-BR", "chave.inexistente"); got != "chave.inexistente" {
			t.Errorf("esperava a chave, obteve '%s'", got)
		}
	})
}

func TestIsLanguageSupported(t *testing.T) {
	service, err := NewService(localesDeTeste(), "pt-BR")
	if err != nil {
		t.Fatal(err)
	}

	if !service.IsLanguageSupported("en") {
		t.Error("en deveria ser suportado")
	}
	if service.IsLanguageSupported("es") {
		t.Error("es não deveria ser suportado")
	}
}

func TestNewEmbeddedService(t *testing.T) {
	service, err := NewEmbeddedService("pt-BR")
	if err != nil {
		t.Fatalf("esperava sucesso com os locales embutidos, obteve: %v", err)
	}

	if !service.IsLanguageSupported("pt-BR") || !service.IsLanguageSupported("en") {
		t.Error("locales embutidos deveriam incluir pt-BR e en")
	}
}
