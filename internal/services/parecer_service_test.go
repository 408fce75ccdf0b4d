package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fabriciolima31/webserviceSenapp/internal/domain/entities"
	domainerrors "github.com/fabriciolima31/webserviceSenapp/internal/domain/errors"
	"github.com/fabriciolima31/webserviceSenapp/internal/services"
)

var _ = Describe("ParecerService", func() {
	var (
		parecerRepo  *fakeParecerRepo
		consultaRepo *fakeConsultaRepo
		service      *services.ParecerService
		ctx          context.Context
	)

	BeforeEach(func() {
		parecerRepo = newFakeParecerRepo()
		consultaRepo = &fakeConsultaRepo{
			consultas: []*entities.Consulta{
				{ID: 1, Nome: "Reforma do Marco Civil", Status: entities.ConsultaActive},
				{ID: 2, Nome: "Consulta Encerrada", Status: entities.ConsultaInactive},
			},
		}
		service = services.NewParecerService(parecerRepo, consultaRepo, &fakeUOW{}, &noopLogger{})
		ctx = context.Background()
	})

	input := services.SubmitInput{
		UsuarioID:  10,
		ConsultaID: 1,
		Estrelas:   4,
		Voto:       entities.VotoSim,
		Comentario: "Proposta bem fundamentada",
	}

	Describe("Submit", func() {
		It("registra o parecer do usuário para a consulta", func() {
			parecer, err := service.Submit(ctx, input)

			Expect(err).NotTo(HaveOccurred())
			Expect(parecer.ID).NotTo(BeZero())
			Expect(parecerRepo.pareceres).To(HaveLen(1))
		})

		It("rejeita o segundo parecer do mesmo usuário para a mesma consulta", func() {
			_, err := service.Submit(ctx, input)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Submit(ctx, input)
			Expect(err).To(MatchError(domainerrors.ErrParecerJaExiste))
			Expect(parecerRepo.pareceres).To(HaveLen(1))
		})

		It("permite pareceres de usuários diferentes para a mesma consulta", func() {
			_, err := service.Submit(ctx, input)
			Expect(err).NotTo(HaveOccurred())

			outra := input
			outra.ConsultaID = 1
			outra.UsuarioID = 20
			_, err = service.Submit(ctx, outra)
			Expect(err).NotTo(HaveOccurred())
			Expect(parecerRepo.pareceres).To(HaveLen(2))
		})

		It("rejeita parecer para consulta inexistente", func() {
			invalida := input
			invalida.ConsultaID = 99

			_, err := service.Submit(ctx, invalida)
			Expect(err).To(MatchError(domainerrors.ErrConsultaNotFound))
		})

		It("rejeita parecer para consulta inativa", func() {
			inativa := input
			inativa.ConsultaID = 2

			_, err := service.Submit(ctx, inativa)
			Expect(err).To(MatchError(domainerrors.ErrConsultaNotFound))
		})
	})

	Describe("HasRated", func() {
		It("é falso antes do parecer e verdadeiro depois", func() {
			rated, err := service.HasRated(ctx, input.UsuarioID, input.ConsultaID)
			Expect(err).NotTo(HaveOccurred())
			Expect(rated).To(BeFalse())

			_, err = service.Submit(ctx, input)
			Expect(err).NotTo(HaveOccurred())

			rated, err = service.HasRated(ctx, input.UsuarioID, input.ConsultaID)
			Expect(err).NotTo(HaveOccurred())
			Expect(rated).To(BeTrue())
		})
	})
})
