package services_test

import (
	"context"
	"strings"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/thermit-backend/internal/domain/entities"
	domainerrs "github.com/rafabene/thermit-backend/internal/domain/errors"
	"github.com/rafabene/thermit-backend/internal/services"
)

var _ = Describe("MessageService", func() {
	var (
		e      *env
		ctx    context.Context
		room   *entities.Room
		author *entities.User
	)

	BeforeEach(func() {
		e = newEnv()
		ctx = context.Background()

		var err error
		name := "geral"
		room, err = e.roomService.CreateRoom(ctx, &name)
		Expect(err).NotTo(HaveOccurred())
		author, err = e.userService.CreateUser(ctx, services.CreateUserInput{Username: "alice", Password: "password123"})
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("CreateMessage", func() {
		It("grava e publica a mensagem", func() {
			message, err := e.messageService.CreateMessage(ctx, services.CreateMessageInput{
				RoomID: room.ID, Author: author.ID, Content: "  olá  ",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(message.ID).NotTo(Equal(uuid.Nil))
			Expect(message.Content).To(Equal("olá"))

			published := e.publisher.Published()
			Expect(published).To(HaveLen(1))
			Expect(published[0].ID).To(Equal(message.ID))
		})

		It("falha com RoomNotFound para sala inexistente", func() {
			_, err := e.messageService.CreateMessage(ctx, services.CreateMessageInput{
				RoomID: uuid.New(), Author: author.ID, Content: "olá",
			})
			Expect(err).To(MatchError(domainerrs.ErrRoomNotFound))
			Expect(e.publisher.Published()).To(BeEmpty())
		})

		It("falha com UserNotFound para autor inexistente", func() {
			_, err := e.messageService.CreateMessage(ctx, services.CreateMessageInput{
				RoomID: room.ID, Author: uuid.New(), Content: "olá",
			})
			Expect(err).To(MatchError(domainerrs.ErrUserNotFound))
		})

		It("rejeita conteúdo vazio ou longo demais", func() {
			_, err := e.messageService.CreateMessage(ctx, services.CreateMessageInput{
				RoomID: room.ID, Author: author.ID, Content: "   ",
			})
			Expect(err).To(MatchError(domainerrs.ErrInvalidContent))

			_, err = e.messageService.CreateMessage(ctx, services.CreateMessageInput{
				RoomID: room.ID, Author: author.ID, Content: strings.Repeat("x", entities.MessageMaxLength+1),
			})
			Expect(err).To(MatchError(domainerrs.ErrInvalidContent))
		})
	})

	Describe("atualização e remoção", func() {
		var message *entities.Message

		BeforeEach(func() {
			var err error
			message, err = e.messageService.CreateMessage(ctx, services.CreateMessageInput{
				RoomID: room.ID, Author: author.ID, Content: "primeira",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("altera o conteúdo", func() {
			updated, err := e.messageService.UpdateMessage(ctx, message.ID, entities.MessagePatch{Content: "editada"})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Content).To(Equal("editada"))

			found, err := e.messageService.GetMessage(ctx, message.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.Content).To(Equal("editada"))
		})

		It("mantém o conteúdo quando o patch vem vazio", func() {
			updated, err := e.messageService.UpdateMessage(ctx, message.ID, entities.MessagePatch{})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Content).To(Equal("primeira"))
		})

		It("retorna MessageNotFound para id inexistente", func() {
			_, err := e.messageService.UpdateMessage(ctx, uuid.New(), entities.MessagePatch{Content: "x"})
			Expect(err).To(MatchError(domainerrs.ErrMessageNotFound))
		})

		It("remove e depois retorna zero", func() {
			deleted, err := e.messageService.DeleteMessage(ctx, message.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(Equal(int64(1)))

			deleted, err = e.messageService.DeleteMessage(ctx, message.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeZero())
		})
	})

	Describe("ListRoomMessages", func() {
		It("lista as mensagens da sala em ordem de criação", func() {
			for _, content := range []string{"um", "dois"} {
				_, err := e.messageService.CreateMessage(ctx, services.CreateMessageInput{
					RoomID: room.ID, Author: author.ID, Content: content,
				})
				Expect(err).NotTo(HaveOccurred())
			}

			messages, err := e.messageService.ListRoomMessages(ctx, room.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(messages).To(HaveLen(2))
			Expect(messages[0].Content).To(Equal("um"))
			Expect(messages[1].Content).To(Equal("dois"))
		})

		It("falha com RoomNotFound para sala inexistente", func() {
			_, err := e.messageService.ListRoomMessages(ctx, uuid.New())
			Expect(err).To(MatchError(domainerrs.ErrRoomNotFound))
		})
	})
})
