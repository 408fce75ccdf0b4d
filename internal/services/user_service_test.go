package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	domainerrors "github.com/fabriciolima31/webserviceSenapp/internal/domain/errors"
	"github.com/fabriciolima31/webserviceSenapp/internal/services"
)

var _ = Describe("UserService", func() {
	var (
		userRepo *fakeUserRepo
		apiKeys  *services.APIKeyService
		service  *services.UserService
		ctx      context.Context
	)

	BeforeEach(func() {
		userRepo = newFakeUserRepo()
		apiKeys = services.NewAPIKeyService(userRepo)
		service = services.NewUserService(userRepo, apiKeys, &fakeHasher{}, &fakeUOW{}, &noopLogger{})
		ctx = context.Background()
	})

	Describe("Register", func() {
		input := services.RegisterInput{
			Name:     "Maria Silva",
			Email:    "maria@example.com",
			Password: "segredo123",
			UF:       "SP",
		}

		It("cria o usuário com hash de senha e chave de API", func() {
			user, err := service.Register(ctx, input)

			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).NotTo(BeZero())
			Expect(user.Email.String()).To(Equal("maria@example.com"))
			Expect(user.PasswordHash).NotTo(Equal("segredo123"))
			Expect(user.APIKey).To(HaveLen(64))
			Expect(user.IsActive()).To(BeTrue())
		})

		It("rejeita o segundo registro com o mesmo e-mail sem criar outro usuário", func() {
			_, err := service.Register(ctx, input)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Register(ctx, input)
			Expect(err).To(MatchError(domainerrors.ErrEmailAlreadyExists))
			Expect(userRepo.users).To(HaveLen(1))
		})

		It("rejeita e-mail inválido", func() {
			bad := input
			bad.Email = "nao-e-email"

			_, err := service.Register(ctx, bad)
			Expect(err).To(HaveOccurred())
			Expect(userRepo.users).To(BeEmpty())
		})

		It("emite chaves de API distintas para usuários distintos", func() {
			u1, err := service.Register(ctx, input)
			Expect(err).NotTo(HaveOccurred())

			other := input
			other.Email = "joao@example.com"
			u2, err := service.Register(ctx, other)
			Expect(err).NotTo(HaveOccurred())

			Expect(u1.APIKey).NotTo(Equal(u2.APIKey))
		})
	})

	Describe("Login", func() {
		BeforeEach(func() {
			_, err := service.Register(ctx, services.RegisterInput{
				Name:     "Maria Silva",
				Email:    "maria@example.com",
				Password: "segredo123",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("retorna o usuário com a chave de API quando as credenciais conferem", func() {
			user, err := service.Login(ctx, "maria@example.com", "segredo123")

			Expect(err).NotTo(HaveOccurred())
			Expect(user.Name).To(Equal("Maria Silva"))
			Expect(user.APIKey).To(HaveLen(64))
		})

		It("retorna credenciais inválidas para senha errada", func() {
			_, err := service.Login(ctx, "maria@example.com", "outra")
			Expect(err).To(MatchError(domainerrors.ErrInvalidCredentials))
		})

		It("retorna credenciais inválidas para e-mail desconhecido", func() {
			_, err := service.Login(ctx, "ninguem@example.com", "segredo123")
			Expect(err).To(MatchError(domainerrors.ErrInvalidCredentials))
		})

		It("propaga falha de infraestrutura distinta de credenciais inválidas", func() {
			userRepo.failWith = errStoreDown

			_, err := service.Login(ctx, "maria@example.com", "segredo123")
			Expect(err).To(MatchError(errStoreDown))
		})
	})
})
