package services

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/voujunto/voujunto-backend/internal/domain/entities"
	apperrors "github.com/voujunto/voujunto-backend/internal/domain/errors"
	"github.com/voujunto/voujunto-backend/internal/domain/valueobjects"
)

var _ = Describe("AventuraService", func() {
	var (
		eventos *eventosFake
		trilhas *trilhasFake
		caronas *caronasFake
		viagens *viagensFake
		service *AventuraService
		ctx     context.Context
	)

	contato := func() entities.Contato {
		cep, err := valueobjects.NewCEP("88015600")
		Expect(err).NotTo(HaveOccurred())
		return entities.Contato{Nome: "Maria Souza", Telefone: "48999990000", CEP: cep}
	}

	dia := func(d int) time.Time {
		return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC)
	}

	BeforeEach(func() {
		eventos = &eventosFake{}
		trilhas = &trilhasFake{}
		caronas = &caronasFake{}
		viagens = &viagensFake{}
		service = NewAventuraService(eventos, trilhas, caronas, viagens, logSilencioso{})
		ctx = context.Background()
	})

	Describe("ListarAventuras", func() {
		BeforeEach(func() {
			eventos.registros = []*entities.Evento{{
				ID: "ev-1", UserID: "u1", NomeEvento: "Encontro Off-road",
				Descricao: "Encontro anual", DataIda: dia(10),
				LocalEvento: "Serra", Vagas: entities.VagasIlimitadas(), Contato: contato(),
			}}
			trilhas.registros = []*entities.Trilha{{
				ID: "tr-1", UserID: "u1", TipoVeiculo: entities.VeiculoJipe,
				NomeTrilha: "Pedra Branca", Data: dia(5),
				PontoEncontro: "Posto BR", Vagas: 3,
				NivelDificuldade: entities.NivelDificil, Contato: contato(),
			}}
			caronas.registros = []*entities.Carona{{
				ID: "ca-1", UserID: "u2", ModeloCarro: "Troller T4", Vagas: 2,
				Data: dia(20), Destino: "Urubici", PontoEncontro: "Terminal",
				Tipo: entities.CaronaTrilha, Contato: contato(),
			}}
			viagens.registros = []*entities.Viagem{{
				ID: "vi-1", UserID: "u2", Cidade: "Bonito", Estado: "MS",
				DataInicio: dia(1), DataFim: dia(8), NumPessoas: 4, Contato: contato(),
			}}
		})

		It("mescla os quatro tipos em ordem cronológica", func() {
			aventuras := service.ListarAventuras(ctx, "")

			Expect(aventuras).To(HaveLen(4))
			Expect(aventuras[0].ID).To(Equal("vi-1"))
			Expect(aventuras[1].ID).To(Equal("tr-1"))
			Expect(aventuras[2].ID).To(Equal("ev-1"))
			Expect(aventuras[3].ID).To(Equal("ca-1"))
		})

		It("ordena períodos apenas pelo início", func() {
			aventuras := service.ListarAventuras(ctx, "")

			viagem := aventuras[0]
			Expect(viagem.Tipo).To(Equal(entities.TipoParceirosDeViagem))
			Expect(viagem.Data).To(Equal(dia(1)))
			Expect(viagem.DataFim).NotTo(BeNil())
		})

		It("é idempotente: reordenar lista ordenada não muda nada", func() {
			primeira := service.ListarAventuras(ctx, "")
			segunda := service.ListarAventuras(ctx, "")

			Expect(segunda).To(HaveLen(len(primeira)))
			for i := range primeira {
				Expect(segunda[i].ID).To(Equal(primeira[i].ID))
			}
		})

		It("restringe a um único tipo quando filtrado", func() {
			aventuras := service.ListarAventuras(ctx, TipoFiltroCaronas)

			Expect(aventuras).To(HaveLen(1))
			Expect(aventuras[0].ID).To(Equal("ca-1"))
		})

		It("nunca exibe descrição vazia", func() {
			for _, aventura := range service.ListarAventuras(ctx, "") {
				Expect(aventura.Descricao).NotTo(BeEmpty())
			}
		})

		It("sintetiza descrições para registros sem observações", func() {
			aventuras := service.ListarAventuras(ctx, TipoFiltroTrilhas)
			Expect(aventuras[0].Descricao).To(Equal("Trilha dificil com jipe"))

			aventuras = service.ListarAventuras(ctx, TipoFiltroCaronas)
			Expect(aventuras[0].Descricao).To(Equal("Carona em Troller T4 para Urubici"))

			aventuras = service.ListarAventuras(ctx, TipoFiltroViagens)
			Expect(aventuras[0].Descricao).To(Equal("Busca de 4 parceiros para viagem"))
		})

		It("exibe vagas ilimitadas sem número negativo", func() {
			aventuras := service.ListarAventuras(ctx, TipoFiltroEventos)

			Expect(aventuras[0].Vagas.Ilimitadas()).To(BeTrue())
			Expect(aventuras[0].Vagas.String()).To(Equal("Ilimitadas"))
		})

		It("degrada falha de uma fonte para coleção vazia", func() {
			trilhas.falhar = true

			aventuras := service.ListarAventuras(ctx, "")

			Expect(aventuras).To(HaveLen(3))
			for _, aventura := range aventuras {
				Expect(aventura.ID).NotTo(Equal("tr-1"))
			}
		})

		It("todas as fontes vazias é estado vazio, não erro", func() {
			eventos.registros = nil
			trilhas.registros = nil
			caronas.registros = nil
			viagens.registros = nil

			aventuras := service.ListarAventuras(ctx, "")

			Expect(aventuras).NotTo(BeNil())
			Expect(aventuras).To(BeEmpty())
		})
	})

	Describe("BuscarEventoPorID", func() {
		It("ausência vira registro não encontrado", func() {
			_, err := service.BuscarEventoPorID(ctx, "nao-existe")
			Expect(err).To(MatchError(apperrors.ErrRegistroNaoEncontrado))
		})

		It("falha de leitura também vira registro não encontrado", func() {
			eventos.falhar = true

			_, err := service.BuscarEventoPorID(ctx, "ev-1")
			Expect(err).To(MatchError(apperrors.ErrRegistroNaoEncontrado))
		})
	})
})

var _ = Describe("PublicacaoService", func() {
	var (
		eventos     *eventosFake
		trilhas     *trilhasFake
		caronas     *caronasFake
		viagens     *viagensFake
		perfis      *perfisFake
		aventuras   *aventurasFake
		notificador *notificadorFake
		service     *PublicacaoService
		ctx         context.Context
	)

	contato := func() entities.Contato {
		cep, err := valueobjects.NewCEP("88015600")
		Expect(err).NotTo(HaveOccurred())
		return entities.Contato{Nome: "Maria Souza", Telefone: "48999990000", CEP: cep}
	}

	entradaEvento := func() CriarEventoInput {
		return CriarEventoInput{
			NomeEvento:    "Encontro Off-road",
			Descricao:     "Encontro anual de jipeiros",
			DataIda:       time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
			HoraIda:       "08:00",
			PontoEncontro: "Posto BR",
			LocalEvento:   "Serra do Rio do Rastro",
			Vagas:         entities.VagasLimitadas(4),
			Contato:       contato(),
		}
	}

	BeforeEach(func() {
		eventos = &eventosFake{}
		trilhas = &trilhasFake{}
		caronas = &caronasFake{}
		viagens = &viagensFake{}
		perfis = novoPerfisFake()
		aventuras = &aventurasFake{}
		notificador = &notificadorFake{}
		service = NewPublicacaoService(
			eventos, trilhas, caronas, viagens, perfis, aventuras,
			notificador, logSilencioso{},
		)
		ctx = context.Background()
	})

	It("exige usuário autenticado", func() {
		_, err := service.CriarEvento(ctx, "", entradaEvento())
		Expect(err).To(MatchError(apperrors.ErrNaoAutenticado))
		Expect(eventos.registros).To(BeEmpty())
	})

	It("cria o evento com id e grava o snapshot de contato", func() {
		evento, err := service.CriarEvento(ctx, "user-1", entradaEvento())

		Expect(err).NotTo(HaveOccurred())
		Expect(evento.ID).NotTo(BeEmpty())
		Expect(evento.UserID).To(Equal("user-1"))
		Expect(evento.Contato.Nome).To(Equal("Maria Souza"))
		Expect(eventos.registros).To(HaveLen(1))
	})

	It("rejeita dados inválidos com erro de validação", func() {
		entrada := entradaEvento()
		entrada.Vagas = entities.VagasLimitadas(0)

		_, err := service.CriarEvento(ctx, "user-1", entrada)

		var domainErr *apperrors.DomainError
		Expect(err).To(HaveOccurred())
		Expect(errors.As(err, &domainErr)).To(BeTrue())
		Expect(domainErr.Type).To(Equal(apperrors.ProblemTypeValidation))
		Expect(eventos.registros).To(BeEmpty())
	})

	It("projeta a publicação na tabela consolidada", func() {
		_, err := service.CriarEvento(ctx, "user-1", entradaEvento())

		Expect(err).NotTo(HaveOccurred())
		Expect(aventuras.publicadas).To(HaveLen(1))
		Expect(aventuras.publicadas[0].Titulo).To(Equal("Encontro Off-road"))
		Expect(aventuras.publicadas[0].Tipo).To(Equal(entities.TipoEvento))
	})

	It("notifica o feed após a projeção", func() {
		_, err := service.CriarEvento(ctx, "user-1", entradaEvento())

		Expect(err).NotTo(HaveOccurred())
		Expect(notificador.recebidas).To(HaveLen(1))
	})

	It("falha na projeção não desfaz a publicação", func() {
		aventuras.falhar = true

		evento, err := service.CriarEvento(ctx, "user-1", entradaEvento())

		Expect(err).NotTo(HaveOccurred())
		Expect(evento).NotTo(BeNil())
		Expect(eventos.registros).To(HaveLen(1))
		Expect(notificador.recebidas).To(BeEmpty())
	})

	Describe("sincronização de perfil", func() {
		It("cria o perfil na primeira publicação", func() {
			_, err := service.CriarEvento(ctx, "user-1", entradaEvento())

			Expect(err).NotTo(HaveOccurred())
			Expect(perfis.upserts).To(Equal(1))
			Expect(perfis.registros["user-1"].Nome).To(Equal("Maria Souza"))
			Expect(perfis.registros["user-1"].CEP).To(Equal("88015600"))
		})

		It("não regrava quando o contato não mudou", func() {
			_, err := service.CriarEvento(ctx, "user-1", entradaEvento())
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CriarEvento(ctx, "user-1", entradaEvento())
			Expect(err).NotTo(HaveOccurred())

			Expect(perfis.upserts).To(Equal(1))
		})

		It("regrava quando o contato mudou", func() {
			_, err := service.CriarEvento(ctx, "user-1", entradaEvento())
			Expect(err).NotTo(HaveOccurred())

			entrada := entradaEvento()
			entrada.Contato.Telefone = "48911112222"
			_, err = service.CriarEvento(ctx, "user-1", entrada)
			Expect(err).NotTo(HaveOccurred())

			Expect(perfis.upserts).To(Equal(2))
			Expect(perfis.registros["user-1"].Telefone).To(Equal("48911112222"))
		})

		It("falha na sincronização não impede a publicação", func() {
			perfis.falhar = true

			_, err := service.CriarEvento(ctx, "user-1", entradaEvento())

			Expect(err).NotTo(HaveOccurred())
			Expect(eventos.registros).To(HaveLen(1))
		})
	})

	It("cria trilha, carona e viagem pelo mesmo fluxo", func() {
		_, err := service.CriarTrilha(ctx, "user-1", CriarTrilhaInput{
			TipoVeiculo: entities.VeiculoJipe, NomeTrilha: "Pedra Branca",
			Data: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), Hora: "07:00",
			PontoEncontro: "Posto BR", Vagas: 3,
			NivelDificuldade: entities.NivelDificil, Contato: contato(),
		})
		Expect(err).NotTo(HaveOccurred())

		_, err = service.CriarCarona(ctx, "user-1", CriarCaronaInput{
			ModeloCarro: "Troller T4", Vagas: 2,
			Data: time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC), Hora: "06:00",
			Destino: "Urubici", PontoEncontro: "Terminal",
			Tipo: entities.CaronaTrilha, Contato: contato(),
		})
		Expect(err).NotTo(HaveOccurred())

		_, err = service.CriarViagem(ctx, "user-1", CriarViagemInput{
			Cidade: "Bonito", Estado: "MS",
			DataInicio: time.Date(2026, 12, 26, 0, 0, 0, 0, time.UTC),
			DataFim:    time.Date(2027, 1, 2, 0, 0, 0, 0, time.UTC),
			NumPessoas: 4, Contato: contato(),
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(aventuras.publicadas).To(HaveLen(3))
		Expect(notificador.recebidas).To(HaveLen(3))
	})
})
