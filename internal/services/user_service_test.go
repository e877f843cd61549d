package services_test

import (
	"context"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/thermit-backend/internal/domain/entities"
	domainerrs "github.com/rafabene/thermit-backend/internal/domain/errors"
	"github.com/rafabene/thermit-backend/internal/domain/repositories"
	"github.com/rafabene/thermit-backend/internal/services"
)

var _ = Describe("UserService", func() {
	var (
		e   *env
		ctx context.Context
	)

	BeforeEach(func() {
		e = newEnv()
		ctx = context.Background()
	})

	Describe("CreateUser", func() {
		It("grava o hash bcrypt e nunca a senha em texto", func() {
			user, err := e.userService.CreateUser(ctx, services.CreateUserInput{Username: "alice", Password: "password123"})
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).NotTo(Equal(uuid.Nil))
			Expect(user.PasswordHash).NotTo(Equal("password123"))
			Expect(e.hasher.Compare(user.PasswordHash, "password123")).To(BeTrue())
		})

		It("falha com UsernameTaken para username repetido", func() {
			_, err := e.userService.CreateUser(ctx, services.CreateUserInput{Username: "alice", Password: "password123"})
			Expect(err).NotTo(HaveOccurred())

			_, err = e.userService.CreateUser(ctx, services.CreateUserInput{Username: "alice", Password: "other-password"})
			Expect(err).To(MatchError(domainerrs.ErrUsernameTaken))
		})

		DescribeTable("rejeita entradas inválidas",
			func(username, password string, expected error) {
				_, err := e.userService.CreateUser(ctx, services.CreateUserInput{Username: username, Password: password})
				Expect(err).To(MatchError(expected))
			},
			Entry("username curto", "ab", "password123", domainerrs.ErrInvalidUsername),
			Entry("username com espaço", "a b c", "password123", domainerrs.ErrInvalidUsername),
			Entry("senha curta", "alice", "short", domainerrs.ErrInvalidPassword),
		)
	})

	Describe("UpdateUser", func() {
		var user *entities.User

		BeforeEach(func() {
			var err error
			user, err = e.userService.CreateUser(ctx, services.CreateUserInput{Username: "alice", Password: "password123"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("mantém o hash quando a senha vem vazia", func() {
			updated, err := e.userService.UpdateUser(ctx, user.ID, entities.UserPatch{Username: "alice2"})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Username.String()).To(Equal("alice2"))

			found, err := e.userService.GetUser(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Username.String()).To(Equal("alice2"))
			Expect(found.PasswordHash).To(Equal(user.PasswordHash))
		})

		It("mantém o username quando vem vazio e troca o hash da senha", func() {
			updated, err := e.userService.UpdateUser(ctx, user.ID, entities.UserPatch{Password: "new-password"})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Username.String()).To(Equal("alice"))
			Expect(updated.PasswordHash).NotTo(Equal(user.PasswordHash))
			Expect(e.hasher.Compare(updated.PasswordHash, "new-password")).To(BeTrue())
		})

		It("falha com UsernameTaken ao usar username de outro usuário", func() {
			_, err := e.userService.CreateUser(ctx, services.CreateUserInput{Username: "bob", Password: "password123"})
			Expect(err).NotTo(HaveOccurred())

			_, err = e.userService.UpdateUser(ctx, user.ID, entities.UserPatch{Username: "bob"})
			Expect(err).To(MatchError(domainerrs.ErrUsernameTaken))
		})

		It("aceita manter o próprio username", func() {
			_, err := e.userService.UpdateUser(ctx, user.ID, entities.UserPatch{Username: "alice"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("retorna UserNotFound para id inexistente", func() {
			_, err := e.userService.UpdateUser(ctx, uuid.New(), entities.UserPatch{Username: "ghost"})
			Expect(err).To(MatchError(domainerrs.ErrUserNotFound))
		})
	})

	Describe("DeleteUser", func() {
		It("remove associações e mensagens do usuário", func() {
			user, err := e.userService.CreateUser(ctx, services.CreateUserInput{Username: "alice", Password: "password123"})
			Expect(err).NotTo(HaveOccurred())

			var roomIDs []uuid.UUID
			for _, name := range []string{"A", "B"} {
				room, err := e.roomService.CreateRoom(ctx, &name)
				Expect(err).NotTo(HaveOccurred())
				_, err = e.roomService.AddUsers(ctx, room.ID, []uuid.UUID{user.ID})
				Expect(err).NotTo(HaveOccurred())
				roomIDs = append(roomIDs, room.ID)
			}
			_, err = e.messageService.CreateMessage(ctx, services.CreateMessageInput{RoomID: roomIDs[0], Author: user.ID, Content: "oi"})
			Expect(err).NotTo(HaveOccurred())

			deleted, err := e.userService.DeleteUser(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(Equal(int64(1)))

			for _, roomID := range roomIDs {
				members, err := e.rooms.ListMembers(ctx, roomID)
				Expect(err).NotTo(HaveOccurred())
				Expect(members).To(BeEmpty())
			}

			messages, err := e.messages.ListByRoom(ctx, roomIDs[0])
			Expect(err).NotTo(HaveOccurred())
			Expect(messages).To(BeEmpty())

			_, err = e.userService.GetUser(ctx, user.ID)
			Expect(err).To(MatchError(domainerrs.ErrUserNotFound))
		})

		It("retorna zero sem erro para id inexistente", func() {
			deleted, err := e.userService.DeleteUser(ctx, uuid.New())
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeZero())
		})
	})

	It("lista usuários paginados", func() {
		for _, name := range []string{"alice", "bob", "carol"} {
			_, err := e.userService.CreateUser(ctx, services.CreateUserInput{Username: name, Password: "password123"})
			Expect(err).NotTo(HaveOccurred())
		}

		all, err := e.userService.ListUsers(ctx, repositories.UserFilters{})
		Expect(err).NotTo(HaveOccurred())
		Expect(all).To(HaveLen(3))

		page, err := e.userService.ListUsers(ctx, repositories.UserFilters{Page: 2, PageSize: 2})
		Expect(err).NotTo(HaveOccurred())
		Expect(page).To(HaveLen(1))
	})
})
