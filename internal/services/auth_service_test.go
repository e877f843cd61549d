package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/thermit-backend/internal/domain/entities"
	domainerrs "github.com/rafabene/thermit-backend/internal/domain/errors"
	"github.com/rafabene/thermit-backend/internal/services"
)

var _ = Describe("AuthService", func() {
	var (
		e   *env
		ctx context.Context
		bob *entities.User
	)

	BeforeEach(func() {
		e = newEnv()
		ctx = context.Background()

		var err error
		bob, err = e.userService.CreateUser(ctx, services.CreateUserInput{Username: "bob", Password: "correct-horse"})
		Expect(err).NotTo(HaveOccurred())
	})

	It("emite um token que identifica o usuário", func() {
		token, err := e.authService.Authenticate(ctx, "bob", "correct-horse")
		Expect(err).NotTo(HaveOccurred())
		Expect(token).NotTo(BeEmpty())

		userID, err := e.authService.VerifyToken(token)
		Expect(err).NotTo(HaveOccurred())
		Expect(userID).To(Equal(bob.ID))
	})

	It("retorna IncorrectPassword para senha errada", func() {
		_, err := e.authService.Authenticate(ctx, "bob", "wrong")
		Expect(err).To(MatchError(domainerrs.ErrIncorrectPassword))
	})

	It("retorna UserNotFound para username desconhecido", func() {
		_, err := e.authService.Authenticate(ctx, "ghost", "x")
		Expect(err).To(MatchError(domainerrs.ErrUserNotFound))
	})

	It("rejeita token inválido", func() {
		_, err := e.authService.VerifyToken("not-a-token")
		Expect(err).To(MatchError(domainerrs.ErrUnauthorized))
	})
})
