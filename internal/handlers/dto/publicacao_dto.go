package dto

import (
	"time"

	"github.com/voujunto/voujunto-backend/internal/domain/entities"
	"github.com/voujunto/voujunto-backend/internal/domain/valueobjects"
	"github.com/voujunto/voujunto-backend/internal/services"
)

// FormatoDataEntrada é o formato das datas nas requisições
const FormatoDataEntrada = "2006-01-02"

// ContatoRequest é o bloco de contato gravado como snapshot em toda
// publicação
type ContatoRequest struct {
	Nome     string `json:"nome" binding:"required,min=2,max=255"`
	Telefone string `json:"telefone" binding:"required,min=8,max=20"`
	CEP      string `json:"cep" binding:"required,cep"`
}

func (r ContatoRequest) contato() (entities.Contato, error) {
	cep, err := valueobjects.NewCEP(r.CEP)
	if err != nil {
		return entities.Contato{}, err
	}

	return entities.Contato{
		Nome:     r.Nome,
		Telefone: r.Telefone,
		CEP:      cep,
	}, nil
}

// CriarEventoRequest representa a requisição para publicar um evento
type CriarEventoRequest struct {
	NomeEvento      string `json:"nome_evento" binding:"required,min=2,max=255"`
	Descricao       string `json:"descricao" binding:"required,min=10"`
	DataIda         string `json:"data_ida" binding:"required,datetime=2006-01-02"`
	HoraIda         string `json:"hora_ida" binding:"required,datetime=15:04"`
	DataVolta       string `json:"data_volta" binding:"omitempty,datetime=2006-01-02"`
	HoraVolta       string `json:"hora_volta" binding:"omitempty,datetime=15:04"`
	PontoEncontro   string `json:"ponto_encontro" binding:"required,min=2,max=255"`
	LocalEvento     string `json:"local_evento" binding:"required,min=2,max=255"`
	Vagas           int    `json:"vagas" binding:"omitempty,min=1"`
	VagasIlimitadas bool   `json:"vagas_ilimitadas"`
	ImagemURL       string `json:"imagem_url" binding:"omitempty,url"`
	ContatoRequest
}

// Input converte a requisição no input do serviço
func (r *CriarEventoRequest) Input() (services.CriarEventoInput, error) {
	contato, err := r.contato()
	if err != nil {
		return services.CriarEventoInput{}, err
	}

	dataIda, err := time.Parse(FormatoDataEntrada, r.DataIda)
	if err != nil {
		return services.CriarEventoInput{}, err
	}

	var dataVolta *time.Time
	if r.DataVolta != "" {
		parsed, err := time.Parse(FormatoDataEntrada, r.DataVolta)
		if err != nil {
			return services.CriarEventoInput{}, err
		}
		dataVolta = &parsed
	}

	vagas := entities.VagasLimitadas(r.Vagas)
	if r.VagasIlimitadas {
		vagas = entities.VagasIlimitadas()
	}

	return services.CriarEventoInput{
		NomeEvento:    r.NomeEvento,
		Descricao:     r.Descricao,
		DataIda:       dataIda,
		HoraIda:       r.HoraIda,
		DataVolta:     dataVolta,
		HoraVolta:     textoOpcional(r.HoraVolta),
		PontoEncontro: r.PontoEncontro,
		LocalEvento:   r.LocalEvento,
		Vagas:         vagas,
		ImagemURL:     textoOpcional(r.ImagemURL),
		Contato:       contato,
	}, nil
}

// CriarTrilhaRequest representa a requisição para publicar uma trilha
type CriarTrilhaRequest struct {
	TipoVeiculo      string `json:"tipo_veiculo" binding:"required,oneof=jipe moto bicicleta"`
	NomeTrilha       string `json:"nome_trilha" binding:"required,min=2,max=255"`
	Data             string `json:"data" binding:"required,datetime=2006-01-02"`
	Hora             string `json:"hora" binding:"required,datetime=15:04"`
	PontoEncontro    string `json:"ponto_encontro" binding:"required,min=2,max=255"`
	Vagas            int    `json:"vagas" binding:"required,min=1"`
	NivelDificuldade string `json:"nivel_dificuldade" binding:"required,oneof=facil medio dificil extremo"`
	Observacoes      string `json:"observacoes" binding:"omitempty"`
	ContatoRequest
}

// Input converte a requisição no input do serviço
func (r *CriarTrilhaRequest) Input() (services.CriarTrilhaInput, error) {
	contato, err := r.contato()
	if err != nil {
		return services.CriarTrilhaInput{}, err
	}

	data, err := time.Parse(FormatoDataEntrada, r.Data)
	if err != nil {
		return services.CriarTrilhaInput{}, err
	}

	return services.CriarTrilhaInput{
		TipoVeiculo:      entities.TipoVeiculo(r.TipoVeiculo),
		NomeTrilha:       r.NomeTrilha,
		Data:             data,
		Hora:             r.Hora,
		PontoEncontro:    r.PontoEncontro,
		Vagas:            r.Vagas,
		NivelDificuldade: entities.NivelDificuldade(r.NivelDificuldade),
		Observacoes:      textoOpcional(r.Observacoes),
		Contato:          contato,
	}, nil
}

// CriarCaronaRequest representa a requisição para oferecer uma carona
type CriarCaronaRequest struct {
	ModeloCarro   string `json:"modelo_carro" binding:"required,min=2,max=255"`
	Vagas         int    `json:"vagas" binding:"required,min=1"`
	Data          string `json:"data" binding:"required,datetime=2006-01-02"`
	Hora          string `json:"hora" binding:"required,datetime=15:04"`
	Destino       string `json:"destino" binding:"required,min=2,max=255"`
	PontoEncontro string `json:"ponto_encontro" binding:"required,min=2,max=255"`
	Tipo          string `json:"tipo" binding:"required,oneof=trilha viagem"`
	Observacoes   string `json:"observacoes" binding:"omitempty"`
	ContatoRequest
}

// Input converte a requisição no input do serviço
func (r *CriarCaronaRequest) Input() (services.CriarCaronaInput, error) {
	contato, err := r.contato()
	if err != nil {
		return services.CriarCaronaInput{}, err
	}

	data, err := time.Parse(FormatoDataEntrada, r.Data)
	if err != nil {
		return services.CriarCaronaInput{}, err
	}

	return services.CriarCaronaInput{
		ModeloCarro:   r.ModeloCarro,
		Vagas:         r.Vagas,
		Data:          data,
		Hora:          r.Hora,
		Destino:       r.Destino,
		PontoEncontro: r.PontoEncontro,
		Tipo:          entities.TipoCarona(r.Tipo),
		Observacoes:   textoOpcional(r.Observacoes),
		Contato:       contato,
	}, nil
}

// CriarViagemRequest representa a requisição para buscar parceiros de
// viagem
type CriarViagemRequest struct {
	Cidade      string `json:"cidade" binding:"required,min=2,max=255"`
	Estado      string `json:"estado" binding:"required,len=2,alpha"`
	DataInicio  string `json:"data_inicio" binding:"required,datetime=2006-01-02"`
	DataFim     string `json:"data_fim" binding:"required,datetime=2006-01-02"`
	NumPessoas  int    `json:"num_pessoas" binding:"required,min=1"`
	Observacoes string `json:"observacoes" binding:"omitempty"`
	ContatoRequest
}

// Input converte a requisição no input do serviço
func (r *CriarViagemRequest) Input() (services.CriarViagemInput, error) {
	contato, err := r.contato()
	if err != nil {
		return services.CriarViagemInput{}, err
	}

	dataInicio, err := time.Parse(FormatoDataEntrada, r.DataInicio)
	if err != nil {
		return services.CriarViagemInput{}, err
	}

	dataFim, err := time.Parse(FormatoDataEntrada, r.DataFim)
	if err != nil {
		return services.CriarViagemInput{}, err
	}

	return services.CriarViagemInput{
		Cidade:      r.Cidade,
		Estado:      r.Estado,
		DataInicio:  dataInicio,
		DataFim:     dataFim,
		NumPessoas:  r.NumPessoas,
		Observacoes: textoOpcional(r.Observacoes),
		Contato:     contato,
	}, nil
}

func textoOpcional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
