package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fabriciolima31/webserviceSenapp/internal/domain/entities"
	domainerrors "github.com/fabriciolima31/webserviceSenapp/internal/domain/errors"
	"github.com/fabriciolima31/webserviceSenapp/internal/services"
)

var _ = Describe("ConsultaService", func() {
	var (
		consultaRepo *fakeConsultaRepo
		parecerRepo  *fakeParecerRepo
		service      *services.ConsultaService
		ctx          context.Context
	)

	BeforeEach(func() {
		consultaRepo = &fakeConsultaRepo{
			consultas: []*entities.Consulta{
				{ID: 1, Nome: "Reforma do Marco Civil", Autor: "Senado", Status: entities.ConsultaActive},
				{ID: 2, Nome: "Nova Lei de Dados", Status: entities.ConsultaActive},
				{ID: 3, Nome: "Consulta Encerrada", Status: entities.ConsultaInactive},
			},
		}
		parecerRepo = newFakeParecerRepo()
		service = services.NewConsultaService(consultaRepo, parecerRepo, &noopLogger{})
		ctx = context.Background()
	})

	submit := func(usuarioID uint, estrelas, voto int, comentario string) {
		err := parecerRepo.Create(ctx, &entities.Parecer{
			UsuarioID:  usuarioID,
			ConsultaID: 1,
			Estrelas:   estrelas,
			Voto:       voto,
			Comentario: comentario,
		})
		Expect(err).NotTo(HaveOccurred())
	}

	Describe("ListarNomes", func() {
		It("lista apenas os nomes das consultas ativas", func() {
			nomes, err := service.ListarNomes(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(nomes).To(Equal([]string{"Reforma do Marco Civil", "Nova Lei de Dados"}))
		})
	})

	Describe("BuscarPorNome", func() {
		It("retorna a consulta ativa pelo nome", func() {
			consulta, err := service.BuscarPorNome(ctx, "Reforma do Marco Civil")

			Expect(err).NotTo(HaveOccurred())
			Expect(consulta.ID).To(Equal(uint(1)))
			Expect(consulta.Autor).To(Equal("Senado"))
		})

		It("retorna não encontrada para consulta inativa", func() {
			_, err := service.BuscarPorNome(ctx, "Consulta Encerrada")
			Expect(err).To(MatchError(domainerrors.ErrConsultaNotFound))
		})
	})

	Describe("Estatisticas", func() {
		It("agrega estrelas, votos e comentários em ordem de inserção", func() {
			submit(10, 5, entities.VotoSim, "excelente")
			submit(20, 3, entities.VotoSim, "razoável")
			submit(30, 1, entities.VotoNao, "discordo")

			resultado, err := service.Estatisticas(ctx, 1)

			Expect(err).NotTo(HaveOccurred())
			Expect(resultado.Estatistica.Estrelas).To(Equal([5]int{1, 0, 1, 0, 1}))
			Expect(resultado.Estatistica.Sim).To(Equal(2))
			Expect(resultado.Estatistica.Nao).To(Equal(1))
			Expect(resultado.Estatistica.Comentarios).To(Equal([]string{"excelente", "razoável", "discordo"}))
		})

		It("inclui comentários vazios e repetidos, sem deduplicar", func() {
			submit(10, 4, entities.VotoSim, "")
			submit(20, 4, entities.VotoSim, "ok")
			submit(30, 4, entities.VotoNao, "ok")

			resultado, err := service.Estatisticas(ctx, 1)

			Expect(err).NotTo(HaveOccurred())
			Expect(resultado.Estatistica.Comentarios).To(Equal([]string{"", "ok", "ok"}))
		})

		It("exclui silenciosamente valores fora do domínio herdados de dados antigos", func() {
			submit(10, 7, 9, "fora do domínio")
			submit(20, 2, entities.VotoNao, "dentro")

			resultado, err := service.Estatisticas(ctx, 1)

			Expect(err).NotTo(HaveOccurred())
			Expect(resultado.Estatistica.Estrelas).To(Equal([5]int{0, 1, 0, 0, 0}))
			Expect(resultado.Estatistica.Sim).To(Equal(0))
			Expect(resultado.Estatistica.Nao).To(Equal(1))
			// comentário entra mesmo com estrelas/voto fora do domínio
			Expect(resultado.Estatistica.Comentarios).To(HaveLen(2))
		})

		It("retorna contagens zeradas e comentários vazios para consulta sem pareceres", func() {
			resultado, err := service.Estatisticas(ctx, 2)

			Expect(err).NotTo(HaveOccurred())
			Expect(resultado.Estatistica.Estrelas).To(Equal([5]int{}))
			Expect(resultado.Estatistica.Sim).To(BeZero())
			Expect(resultado.Estatistica.Nao).To(BeZero())
			Expect(resultado.Estatistica.Comentarios).To(BeEmpty())
			Expect(resultado.Estatistica.Comentarios).NotTo(BeNil())
		})

		It("retorna não encontrada para consulta inexistente", func() {
			_, err := service.Estatisticas(ctx, 99)
			Expect(err).To(MatchError(domainerrors.ErrConsultaNotFound))
		})

		It("retorna não encontrada para consulta inativa", func() {
			_, err := service.Estatisticas(ctx, 3)
			Expect(err).To(MatchError(domainerrors.ErrConsultaNotFound))
		})
	})

	Describe("ParecerDoUsuario", func() {
		It("retorna a consulta com o parecer do próprio usuário", func() {
			submit(10, 5, entities.VotoSim, "meu parecer")
			submit(20, 1, entities.VotoNao, "parecer de outro")

			resultado, err := service.ParecerDoUsuario(ctx, 10, "Reforma do Marco Civil")

			Expect(err).NotTo(HaveOccurred())
			Expect(resultado.Consulta.ID).To(Equal(uint(1)))
			Expect(resultado.Parecer).NotTo(BeNil())
			Expect(resultado.Parecer.Estrelas).To(Equal(5))
			Expect(resultado.Parecer.Comentario).To(Equal("meu parecer"))
		})

		It("retorna a consulta sem parecer quando o usuário não avaliou", func() {
			submit(20, 1, entities.VotoNao, "parecer de outro")

			resultado, err := service.ParecerDoUsuario(ctx, 10, "Reforma do Marco Civil")

			Expect(err).NotTo(HaveOccurred())
			Expect(resultado.Parecer).To(BeNil())
		})

		It("retorna não encontrada para nome desconhecido", func() {
			_, err := service.ParecerDoUsuario(ctx, 10, "Nome Inexistente")
			Expect(err).To(MatchError(domainerrors.ErrConsultaNotFound))
		})
	})
})
