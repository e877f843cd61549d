package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/rafabene/thermit-backend/internal/domain/entities"
)

// RoomRepository define a persistência de salas e da associação rooms_users
type RoomRepository interface {
	Create(ctx context.Context, room *entities.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Room, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Update(ctx context.Context, room *entities.Room) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	List(ctx context.Context) ([]*entities.Room, error)

	// AddMember insere a associação; retorna false se ela já existia
	AddMember(ctx context.Context, member *entities.RoomUser) (bool, error)
	RemoveMembers(ctx context.Context, roomID uuid.UUID, userIDs []uuid.UUID) (int64, error)
	ListMembers(ctx context.Context, roomID uuid.UUID) ([]*entities.RoomUser, error)
	// DeleteMembershipsOfUser remove todas as associações de um usuário
	DeleteMembershipsOfUser(ctx context.Context, userID uuid.UUID) (int64, error)
	// DeleteMembershipsOfRoom remove todas as associações de uma sala
	DeleteMembershipsOfRoom(ctx context.Context, roomID uuid.UUID) (int64, error)
}
