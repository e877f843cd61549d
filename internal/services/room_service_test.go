package services_test

import (
	"context"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/thermit-backend/internal/domain/entities"
	domainerrs "github.com/rafabene/thermit-backend/internal/domain/errors"
	"github.com/rafabene/thermit-backend/internal/services"
)

var _ = Describe("RoomService", func() {
	var (
		e   *env
		ctx context.Context
	)

	BeforeEach(func() {
		e = newEnv()
		ctx = context.Background()
	})

	newUser := func(name string) *entities.User {
		user, err := e.userService.CreateUser(ctx, services.CreateUserInput{Username: name, Password: "password123"})
		Expect(err).NotTo(HaveOccurred())
		return user
	}

	newRoom := func(name string) *entities.Room {
		room, err := e.roomService.CreateRoom(ctx, &name)
		Expect(err).NotTo(HaveOccurred())
		return room
	}

	Describe("AddUsers", func() {
		It("adiciona usuários existentes e retorna os ids inseridos", func() {
			room := newRoom("A")
			u1, u2 := newUser("alice"), newUser("bob")

			result, err := e.roomService.AddUsers(ctx, room.ID, []uuid.UUID{u1.ID, u2.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Added).To(ConsistOf(u1.ID, u2.ID))
			Expect(result.SkippedDuplicate).To(BeEmpty())
			Expect(result.SkippedMissingUser).To(BeEmpty())

			ids, err := e.roomService.GetUserIDs(ctx, room.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(ids).To(ConsistOf(u1.ID, u2.ID))
		})

		It("não duplica um membro já existente", func() {
			room := newRoom("A")
			u1 := newUser("alice")

			_, err := e.roomService.AddUsers(ctx, room.ID, []uuid.UUID{u1.ID})
			Expect(err).NotTo(HaveOccurred())

			result, err := e.roomService.AddUsers(ctx, room.ID, []uuid.UUID{u1.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Added).To(BeEmpty())
			Expect(result.SkippedDuplicate).To(Equal([]uuid.UUID{u1.ID}))

			members, err := e.rooms.ListMembers(ctx, room.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(members).To(HaveLen(1))
		})

		It("adiciona uma única vez ids repetidos na mesma chamada", func() {
			room := newRoom("A")
			u1 := newUser("alice")

			result, err := e.roomService.AddUsers(ctx, room.ID, []uuid.UUID{u1.ID, u1.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Added).To(Equal([]uuid.UUID{u1.ID}))
			Expect(result.SkippedDuplicate).To(Equal([]uuid.UUID{u1.ID}))
		})

		It("ignora ids de usuários inexistentes", func() {
			room := newRoom("A")
			u1 := newUser("alice")
			ghost := uuid.New()

			result, err := e.roomService.AddUsers(ctx, room.ID, []uuid.UUID{u1.ID, ghost})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Added).To(Equal([]uuid.UUID{u1.ID}))
			Expect(result.SkippedMissingUser).To(Equal([]uuid.UUID{ghost}))

			members, err := e.roomService.GetRoomUsers(ctx, room.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(entities.UserIDs(members)).To(Equal([]uuid.UUID{u1.ID}))
		})

		It("falha com RoomNotFound quando a sala não existe", func() {
			u1 := newUser("alice")
			missing := uuid.New()

			_, err := e.roomService.AddUsers(ctx, missing, []uuid.UUID{u1.ID})
			Expect(err).To(MatchError(domainerrs.ErrRoomNotFound))

			members, err := e.rooms.ListMembers(ctx, missing)
			Expect(err).NotTo(HaveOccurred())
			Expect(members).To(BeEmpty())
		})

		It("grava o status padrão de membro", func() {
			room := newRoom("A")
			u1 := newUser("alice")

			_, err := e.roomService.AddUsers(ctx, room.ID, []uuid.UUID{u1.ID})
			Expect(err).NotTo(HaveOccurred())

			members, err := e.roomService.GetRoomUsers(ctx, room.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(members).To(HaveLen(1))
			Expect(members[0].Status).NotTo(BeNil())
			Expect(*members[0].Status).To(Equal(entities.MembershipStatusMember))
		})
	})

	Describe("RemoveUsers", func() {
		It("retorna o número exato de associações removidas", func() {
			room := newRoom("A")
			u1, u2, u3 := newUser("alice"), newUser("bob"), newUser("carol")
			_, err := e.roomService.AddUsers(ctx, room.ID, []uuid.UUID{u1.ID, u2.ID})
			Expect(err).NotTo(HaveOccurred())

			removed, err := e.roomService.RemoveUsers(ctx, room.ID, []uuid.UUID{u1.ID, u2.ID, u3.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(removed).To(Equal(int64(2)))
		})

		It("retorna zero para quem não é membro", func() {
			room := newRoom("A")
			u1 := newUser("alice")

			removed, err := e.roomService.RemoveUsers(ctx, room.ID, []uuid.UUID{u1.ID})
			Expect(err).NotTo(HaveOccurred())
			Expect(removed).To(BeZero())
		})

		It("falha com RoomNotFound quando a sala não existe", func() {
			_, err := e.roomService.RemoveUsers(ctx, uuid.New(), []uuid.UUID{uuid.New()})
			Expect(err).To(MatchError(domainerrs.ErrRoomNotFound))
		})
	})

	It("cenário: adiciona dois, remove um e lista o restante", func() {
		room := newRoom("A")
		u1, u2 := newUser("alice"), newUser("bob")

		_, err := e.roomService.AddUsers(ctx, room.ID, []uuid.UUID{u1.ID, u2.ID})
		Expect(err).NotTo(HaveOccurred())

		removed, err := e.roomService.RemoveUsers(ctx, room.ID, []uuid.UUID{u1.ID})
		Expect(err).NotTo(HaveOccurred())
		Expect(removed).To(Equal(int64(1)))

		members, err := e.roomService.GetRoomUsers(ctx, room.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(members).To(HaveLen(1))
		Expect(members[0].UserID).To(Equal(u2.ID))
		Expect(members[0].RoomID).To(Equal(room.ID))
	})

	Describe("GetUserIDs", func() {
		It("falha com RoomNotFound para sala inexistente", func() {
			_, err := e.roomService.GetUserIDs(ctx, uuid.New())
			Expect(err).To(MatchError(domainerrs.ErrRoomNotFound))
		})

		It("retorna lista vazia para sala sem membros", func() {
			room := newRoom("A")
			ids, err := e.roomService.GetUserIDs(ctx, room.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(ids).To(BeEmpty())
		})
	})

	Describe("Exists", func() {
		It("reflete a existência da sala", func() {
			room := newRoom("A")

			exists, err := e.roomService.Exists(ctx, room.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())

			exists, err = e.roomService.Exists(ctx, uuid.New())
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})
	})

	Describe("CRUD de salas", func() {
		It("atualiza o nome e mantém o atual quando ausente", func() {
			room := newRoom("A")

			renamed := "B"
			updated, err := e.roomService.UpdateRoom(ctx, room.ID, entities.RoomPatch{Name: &renamed})
			Expect(err).NotTo(HaveOccurred())
			Expect(*updated.Name).To(Equal("B"))

			kept, err := e.roomService.UpdateRoom(ctx, room.ID, entities.RoomPatch{})
			Expect(err).NotTo(HaveOccurred())
			Expect(*kept.Name).To(Equal("B"))
		})

		It("retorna RoomNotFound ao atualizar sala inexistente", func() {
			name := "x"
			_, err := e.roomService.UpdateRoom(ctx, uuid.New(), entities.RoomPatch{Name: &name})
			Expect(err).To(MatchError(domainerrs.ErrRoomNotFound))
		})

		It("remove a sala junto com associações e mensagens", func() {
			room := newRoom("A")
			u1 := newUser("alice")
			_, err := e.roomService.AddUsers(ctx, room.ID, []uuid.UUID{u1.ID})
			Expect(err).NotTo(HaveOccurred())
			_, err = e.messageService.CreateMessage(ctx, services.CreateMessageInput{RoomID: room.ID, Author: u1.ID, Content: "oi"})
			Expect(err).NotTo(HaveOccurred())

			deleted, err := e.roomService.DeleteRoom(ctx, room.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(Equal(int64(1)))

			members, err := e.rooms.ListMembers(ctx, room.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(members).To(BeEmpty())

			messages, err := e.messages.ListByRoom(ctx, room.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(messages).To(BeEmpty())
		})

		It("retorna zero ao remover sala inexistente", func() {
			deleted, err := e.roomService.DeleteRoom(ctx, uuid.New())
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeZero())
		})

		It("lista as salas criadas", func() {
			newRoom("A")
			newRoom("B")

			rooms, err := e.roomService.ListRooms(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(rooms).To(HaveLen(2))
		})
	})
})
