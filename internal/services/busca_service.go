package services

import (
	"context"
	"time"

	"github.com/voujunto/voujunto-backend/internal/domain/entities"
	"github.com/voujunto/voujunto-backend/internal/domain/ports"
	"github.com/voujunto/voujunto-backend/internal/domain/repositories"
	"github.com/voujunto/voujunto-backend/internal/domain/valueobjects"
)

// TamanhoPagina é o tamanho fixo da página da listagem de aventuras
const TamanhoPagina = 6

// FiltroLocalizacao é o modo de filtro da listagem
type FiltroLocalizacao string

const (
	FiltroCidade FiltroLocalizacao = "cidade" // 3 primeiros dígitos do CEP
	FiltroEstado FiltroLocalizacao = "estado" // 2 primeiros dígitos do CEP
	FiltroTodas  FiltroLocalizacao = "todas"
)

// AvisoPerfilSemCEP é a chave i18n do aviso emitido quando um filtro
// por localização cai para "todas" por falta de CEP no perfil
const AvisoPerfilSemCEP = "warning.perfil_sem_cep"

// ResultadoBusca é uma página da listagem consolidada
type ResultadoBusca struct {
	Aventuras    []*entities.Aventura
	Pagina       int
	TotalPaginas int
	Filtro       FiltroLocalizacao // filtro efetivamente aplicado
	Aviso        string            // chave i18n; vazia quando não há aviso
}

// BuscaService é a listagem paginada de aventuras com filtro por
// localização sobre a tabela consolidada. Só entram registros com data
// futura ou presente.
type BuscaService struct {
	aventuras repositories.AventuraRepository
	perfis    repositories.PerfilRepository
	logger    ports.Logger
}

// NewBuscaService cria um novo BuscaService
func NewBuscaService(
	aventuras repositories.AventuraRepository,
	perfis repositories.PerfilRepository,
	logger ports.Logger,
) *BuscaService {
	return &BuscaService{
		aventuras: aventuras,
		perfis:    perfis,
		logger:    logger,
	}
}

// BuscarAventuras retorna uma página da listagem. Para cidade/estado o
// CEP vem do perfil do usuário; perfil sem CEP cai para "todas" com
// aviso, nunca para zero resultados silenciosos. O total de páginas é
// calculado com o mesmo predicado da página.
func (s *BuscaService) BuscarAventuras(ctx context.Context, userID string, filtro FiltroLocalizacao, pagina int) (*ResultadoBusca, error) {
	// Valor desconhecido de filtro equivale a "todas"
	switch filtro {
	case FiltroCidade, FiltroEstado, FiltroTodas:
	default:
		filtro = FiltroTodas
	}
	if pagina < 1 {
		pagina = 1
	}

	prefixo := ""
	aviso := ""

	if filtro != FiltroTodas {
		cep := s.cepDoUsuario(ctx, userID)
		if cep == nil {
			filtro = FiltroTodas
			aviso = AvisoPerfilSemCEP
		} else if filtro == FiltroCidade {
			prefixo = cep.PrefixoCidade()
		} else {
			prefixo = cep.PrefixoEstado()
		}
	}

	hoje := time.Now().UTC().Truncate(24 * time.Hour)

	filters := repositories.AventuraFilters{
		DataMinima: hoje,
		PrefixoCEP: prefixo,
		Page:       pagina,
		PageSize:   TamanhoPagina,
	}

	aventuras, err := s.aventuras.Page(ctx, filters)
	if err != nil {
		return nil, err
	}

	total, err := s.aventuras.Count(ctx, filters)
	if err != nil {
		return nil, err
	}

	totalPaginas := int((total + TamanhoPagina - 1) / TamanhoPagina)

	return &ResultadoBusca{
		Aventuras:    aventuras,
		Pagina:       pagina,
		TotalPaginas: totalPaginas,
		Filtro:       filtro,
		Aviso:        aviso,
	}, nil
}

// cepDoUsuario retorna o CEP válido do perfil, ou nil quando não há
// usuário, perfil, CEP cadastrado ou CEP válido
func (s *BuscaService) cepDoUsuario(ctx context.Context, userID string) *valueobjects.CEP {
	if userID == "" {
		return nil
	}

	perfil, err := s.perfis.FindByID(ctx, userID)
	if err != nil {
		s.logger.Error("falha ao buscar perfil para filtro de localização", "user_id", userID, "error", err)
		return nil
	}

	if perfil == nil || perfil.CEP == "" {
		return nil
	}

	cep, err := valueobjects.NewCEP(perfil.CEP)
	if err != nil {
		s.logger.Warn("perfil com CEP inválido", "user_id", userID, "error", err)
		return nil
	}

	return &cep
}
