package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	apperrors "github.com/voujunto/voujunto-backend/internal/domain/errors"
	"github.com/voujunto/voujunto-backend/internal/domain/repositories"
)

// abrirBanco abre um banco sqlite em memória com o schema migrado
func abrirBanco(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("falha ao abrir banco de teste: %v", err)
	}

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("falha ao migrar schema: %v", err)
	}

	return db
}

// semearCaronas insere n caronas com destinos numerados e created_at
// crescente
func semearCaronas(t *testing.T, db *gorm.DB, n int) {
	t.Helper()

	for i := 1; i <= n; i++ {
		modelo := &CaronaModel{
			ID:            fmt.Sprintf("carona-%02d", i),
			UserID:        "user-1",
			ModeloCarro:   "Troller T4",
			Vagas:         i,
			Data:          time.Date(2026, 10, i, 0, 0, 0, 0, time.UTC),
			Hora:          "08:00",
			Destino:       fmt.Sprintf("Destino %02d", i),
			PontoEncontro: "Posto BR",
			Tipo:          "trilha",
			Nome:          "Maria",
			Telefone:      "48999990000",
			CEP:           "88015600",
			CreatedAt:     int64(1700000000 + i),
		}
		if err := db.Create(modelo).Error; err != nil {
			t.Fatalf("falha ao semear carona: %v", err)
		}
	}
}

func TestExecutorBuscar(t *testing.T) {
	db := abrirBanco(t)
	exec := NewExecutor(db)
	ctx := context.Background()

	semearCaronas(t, db, 10)

	t.Run("sem paginação retorna tudo", func(t *testing.T) {
		var modelos []*CaronaModel
		err := exec.Buscar(ctx, repositories.Consulta{Tabela: "caronas"}, &modelos)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve: %v", err)
		}
		if len(modelos) != 10 {
			t.Errorf("esperava 10 linhas, obteve %d", len(modelos))
		}
	})

	t.Run("página 1 pede só as primeiras linhas", func(t *testing.T) {
		var modelos []*CaronaModel
		consulta := repositories.Consulta{
			Tabela:        "caronas",
			OrdenarPor:    repositories.OrdenarAsc("created_at"),
			TamanhoPagina: 4,
			Pagina:        1,
		}
		if err := exec.Buscar(ctx, consulta, &modelos); err != nil {
			t.Fatal(err)
		}
		if len(modelos) != 4 {
			t.Fatalf("esperava 4 linhas, obteve %d", len(modelos))
		}
		if modelos[0].ID != "carona-01" {
			t.Errorf("esperava carona-01 primeiro, obteve %s", modelos[0].ID)
		}
	})

	t.Run("página ausente equivale à página 1", func(t *testing.T) {
		var comPagina, semPagina []*CaronaModel

		base := repositories.Consulta{
			Tabela:        "caronas",
			OrdenarPor:    repositories.OrdenarAsc("created_at"),
			TamanhoPagina: 4,
		}

		consulta := base
		consulta.Pagina = 1
		if err := exec.Buscar(ctx, consulta, &comPagina); err != nil {
			t.Fatal(err)
		}
		if err := exec.Buscar(ctx, base, &semPagina); err != nil {
			t.Fatal(err)
		}

		if len(comPagina) != len(semPagina) {
			t.Fatalf("janelas divergem: %d vs %d", len(comPagina), len(semPagina))
		}
		for i := range comPagina {
			if comPagina[i].ID != semPagina[i].ID {
				t.Errorf("linha %d diverge: %s vs %s", i, comPagina[i].ID, semPagina[i].ID)
			}
		}
	})

	t.Run("página 2 desloca a janela", func(t *testing.T) {
		var modelos []*CaronaModel
		consulta := repositories.Consulta{
			Tabela:        "caronas",
			OrdenarPor:    repositories.OrdenarAsc("created_at"),
			TamanhoPagina: 4,
			Pagina:        2,
		}
		if err := exec.Buscar(ctx, consulta, &modelos); err != nil {
			t.Fatal(err)
		}
		if len(modelos) != 4 {
			t.Fatalf("esperava 4 linhas, obteve %d", len(modelos))
		}
		if modelos[0].ID != "carona-05" {
			t.Errorf("esperava carona-05 no início da página 2, obteve %s", modelos[0].ID)
		}
	})

	t.Run("última página pode vir parcial", func(t *testing.T) {
		var modelos []*CaronaModel
		consulta := repositories.Consulta{
			Tabela:        "caronas",
			OrdenarPor:    repositories.OrdenarAsc("created_at"),
			TamanhoPagina: 4,
			Pagina:        3,
		}
		if err := exec.Buscar(ctx, consulta, &modelos); err != nil {
			t.Fatal(err)
		}
		if len(modelos) != 2 {
			t.Errorf("esperava 2 linhas na última página, obteve %d", len(modelos))
		}
	})

	t.Run("página além do fim retorna vazio sem erro", func(t *testing.T) {
		var modelos []*CaronaModel
		consulta := repositories.Consulta{
			Tabela:        "caronas",
			TamanhoPagina: 4,
			Pagina:        9,
		}
		if err := exec.Buscar(ctx, consulta, &modelos); err != nil {
			t.Fatalf("esperava sucesso, obteve: %v", err)
		}
		if len(modelos) != 0 {
			t.Errorf("esperava vazio, obteve %d linhas", len(modelos))
		}
	})

	t.Run("filtros combinam com AND", func(t *testing.T) {
		var modelos []*CaronaModel
		consulta := repositories.Consulta{
			Tabela: "caronas",
			Filtros: []repositories.Filtro{
				{Coluna: "vagas", Operador: repositories.OperadorGte, Valor: 3},
				{Coluna: "vagas", Operador: repositories.OperadorLt, Valor: 6},
			},
		}
		if err := exec.Buscar(ctx, consulta, &modelos); err != nil {
			t.Fatal(err)
		}
		if len(modelos) != 3 {
			t.Errorf("esperava 3 linhas (vagas 3..5), obteve %d", len(modelos))
		}
	})

	t.Run("like busca substring com curinga dos dois lados", func(t *testing.T) {
		var modelos []*CaronaModel
		consulta := repositories.Consulta{
			Tabela: "caronas",
			Filtros: []repositories.Filtro{
				{Coluna: "destino", Operador: repositories.OperadorLike, Valor: "tino 0"},
			},
		}
		if err := exec.Buscar(ctx, consulta, &modelos); err != nil {
			t.Fatal(err)
		}
		if len(modelos) != 9 {
			t.Errorf("esperava 9 linhas (Destino 01..09), obteve %d", len(modelos))
		}
	})

	t.Run("operador desconhecido é erro", func(t *testing.T) {
		var modelos []*CaronaModel
		consulta := repositories.Consulta{
			Tabela: "caronas",
			Filtros: []repositories.Filtro{
				{Coluna: "destino", Operador: "ilike", Valor: "x"},
			},
		}
		if err := exec.Buscar(ctx, consulta, &modelos); err == nil {
			t.Error("esperava erro para operador desconhecido")
		}
	})

	t.Run("filtro sem operador assume igualdade", func(t *testing.T) {
		var modelos []*CaronaModel
		consulta := repositories.Consulta{
			Tabela:  "caronas",
			Filtros: []repositories.Filtro{{Coluna: "id", Valor: "carona-07"}},
		}
		if err := exec.Buscar(ctx, consulta, &modelos); err != nil {
			t.Fatal(err)
		}
		if len(modelos) != 1 || modelos[0].ID != "carona-07" {
			t.Errorf("esperava só carona-07, obteve %d linhas", len(modelos))
		}
	})
}

func TestExecutorBuscarUma(t *testing.T) {
	db := abrirBanco(t)
	exec := NewExecutor(db)
	ctx := context.Background()

	semearCaronas(t, db, 3)

	t.Run("exatamente uma linha é sucesso", func(t *testing.T) {
		var modelo CaronaModel
		consulta := repositories.Consulta{
			Tabela:  "caronas",
			Filtros: []repositories.Filtro{{Coluna: "id", Valor: "carona-02"}},
		}
		if err := exec.BuscarUma(ctx, consulta, &modelo); err != nil {
			t.Fatalf("esperava sucesso, obteve: %v", err)
		}
		if modelo.Destino != "Destino 02" {
			t.Errorf("linha errada: %s", modelo.Destino)
		}
	})

	t.Run("zero linhas é registro não encontrado", func(t *testing.T) {
		var modelo CaronaModel
		consulta := repositories.Consulta{
			Tabela:  "caronas",
			Filtros: []repositories.Filtro{{Coluna: "id", Valor: "inexistente"}},
		}
		err := exec.BuscarUma(ctx, consulta, &modelo)
		if !errors.Is(err, apperrors.ErrRegistroNaoEncontrado) {
			t.Errorf("esperava ErrRegistroNaoEncontrado, obteve %v", err)
		}
	})

	t.Run("mais de uma linha também é registro não encontrado", func(t *testing.T) {
		var modelo CaronaModel
		consulta := repositories.Consulta{
			Tabela:  "caronas",
			Filtros: []repositories.Filtro{{Coluna: "user_id", Valor: "user-1"}},
		}
		err := exec.BuscarUma(ctx, consulta, &modelo)
		if !errors.Is(err, apperrors.ErrRegistroNaoEncontrado) {
			t.Errorf("esperava ErrRegistroNaoEncontrado, obteve %v", err)
		}
	})
}

func TestExecutorContar(t *testing.T) {
	db := abrirBanco(t)
	exec := NewExecutor(db)
	ctx := context.Background()

	semearCaronas(t, db, 5)

	t.Run("conta as linhas que casam com os filtros", func(t *testing.T) {
		consulta := repositories.Consulta{
			Tabela: "caronas",
			Filtros: []repositories.Filtro{
				{Coluna: "vagas", Operador: repositories.OperadorGt, Valor: 2},
			},
		}
		total, err := exec.Contar(ctx, consulta)
		if err != nil {
			t.Fatal(err)
		}
		if total != 3 {
			t.Errorf("esperava 3, obteve %d", total)
		}
	})

	t.Run("ordenação não interfere na contagem", func(t *testing.T) {
		consulta := repositories.Consulta{
			Tabela:     "caronas",
			OrdenarPor: repositories.OrdenarDesc("created_at"),
		}
		total, err := exec.Contar(ctx, consulta)
		if err != nil {
			t.Fatalf("esperava sucesso, obteve: %v", err)
		}
		if total != 5 {
			t.Errorf("esperava 5, obteve %d", total)
		}
	})
}
