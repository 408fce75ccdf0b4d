package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fabriciolima31/webserviceSenapp/internal/domain/entities"
	domainerrors "github.com/fabriciolima31/webserviceSenapp/internal/domain/errors"
	"github.com/fabriciolima31/webserviceSenapp/internal/domain/valueobjects"
	"github.com/fabriciolima31/webserviceSenapp/internal/services"
)

var _ = Describe("APIKeyService", func() {
	var (
		userRepo *fakeUserRepo
		service  *services.APIKeyService
		ctx      context.Context
	)

	BeforeEach(func() {
		userRepo = newFakeUserRepo()
		service = services.NewAPIKeyService(userRepo)
		ctx = context.Background()
	})

	addUser := func(apiKey string) uint {
		email, err := valueobjects.NewEmail("dono@example.com")
		Expect(err).NotTo(HaveOccurred())

		user := &entities.User{
			Name:         "Dono da Chave",
			Email:        email,
			PasswordHash: "hashed:x",
			APIKey:       apiKey,
			Status:       entities.UserActive,
		}
		Expect(userRepo.Create(ctx, user)).To(Succeed())
		return user.ID
	}

	Describe("Issue", func() {
		It("gera chaves hex de tamanho fixo", func() {
			key, err := service.Issue()

			Expect(err).NotTo(HaveOccurred())
			Expect(key).To(HaveLen(64))
			Expect(key).To(MatchRegexp(`^[0-9a-f]{64}$`))
		})

		It("não repete chaves em emissões sucessivas", func() {
			seen := map[string]bool{}
			for i := 0; i < 100; i++ {
				key, err := service.Issue()
				Expect(err).NotTo(HaveOccurred())
				Expect(seen[key]).To(BeFalse(), "chave repetida: %s", key)
				seen[key] = true
			}
		})
	})

	Describe("Validate", func() {
		It("aceita uma chave logo após a emissão", func() {
			key, err := service.Issue()
			Expect(err).NotTo(HaveOccurred())
			addUser(key)

			valid, err := service.Validate(ctx, key)
			Expect(err).NotTo(HaveOccurred())
			Expect(valid).To(BeTrue())
		})

		It("rejeita chave que nenhum usuário possui", func() {
			valid, err := service.Validate(ctx, "chave-desconhecida")
			Expect(err).NotTo(HaveOccurred())
			Expect(valid).To(BeFalse())
		})

		It("propaga falha do banco como erro, não como chave inválida", func() {
			userRepo.failWith = errStoreDown

			_, err := service.Validate(ctx, "qualquer")
			Expect(err).To(MatchError(errStoreDown))
		})
	})

	Describe("ResolveUserID", func() {
		It("resolve a chave para o id do usuário dono", func() {
			key, err := service.Issue()
			Expect(err).NotTo(HaveOccurred())
			ownerID := addUser(key)

			userID, err := service.ResolveUserID(ctx, key)
			Expect(err).NotTo(HaveOccurred())
			Expect(userID).To(Equal(ownerID))
		})

		It("retorna ErrInvalidAPIKey para chave desconhecida", func() {
			_, err := service.ResolveUserID(ctx, "chave-desconhecida")
			Expect(err).To(MatchError(domainerrors.ErrInvalidAPIKey))
		})

		It("distingue banco indisponível de chave inválida", func() {
			userRepo.failWith = errStoreDown

			_, err := service.ResolveUserID(ctx, "qualquer")
			Expect(err).To(MatchError(errStoreDown))
			Expect(err).NotTo(MatchError(domainerrors.ErrInvalidAPIKey))
		})
	})
})
