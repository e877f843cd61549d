package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/rafabene/thermit-backend/internal/domain/entities"
	"github.com/rafabene/thermit-backend/internal/domain/errors"
	"github.com/rafabene/thermit-backend/internal/domain/ports"
	"github.com/rafabene/thermit-backend/internal/domain/repositories"
)

// RoomService gerencia salas e seus membros
type RoomService struct {
	roomRepo    repositories.RoomRepository
	userRepo    repositories.UserRepository
	messageRepo repositories.MessageRepository
	uow         ports.UnitOfWork
	logger      ports.Logger
}

// NewRoomService cria um novo RoomService
func NewRoomService(
	roomRepo repositories.RoomRepository,
	userRepo repositories.UserRepository,
	messageRepo repositories.MessageRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *RoomService {
	return &RoomService{
		roomRepo:    roomRepo,
		userRepo:    userRepo,
		messageRepo: messageRepo,
		uow:         uow,
		logger:      logger.With("service", "rooms"),
	}
}

// ListRooms retorna todas as salas
func (s *RoomService) ListRooms(ctx context.Context) ([]*entities.Room, error) {
	return s.roomRepo.List(ctx)
}

// GetRoom busca uma sala por ID
func (s *RoomService) GetRoom(ctx context.Context, id uuid.UUID) (*entities.Room, error) {
	room, err := s.roomRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, errors.ErrRoomNotFound
	}
	return room, nil
}

// CreateRoom cria uma sala; o nome é opcional
func (s *RoomService) CreateRoom(ctx context.Context, name *string) (*entities.Room, error) {
	room := &entities.Room{Name: name}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, err
	}

	s.logger.Info("room created", "room_id", room.ID)
	return room, nil
}

// UpdateRoom aplica uma atualização parcial; nome ausente mantém o atual
func (s *RoomService) UpdateRoom(ctx context.Context, id uuid.UUID, patch entities.RoomPatch) (*entities.Room, error) {
	room, err := s.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name == nil {
		return room, nil
	}

	room.Name = patch.Name
	if err := s.roomRepo.Update(ctx, room); err != nil {
		return nil, err
	}

	s.logger.Info("room updated", "room_id", room.ID)
	return room, nil
}

// DeleteRoom remove associações e mensagens da sala e depois a sala.
// Retorna o número de salas removidas (0 quando não existe).
func (s *RoomService) DeleteRoom(ctx context.Context, id uuid.UUID) (int64, error) {
	var deleted int64

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if _, err := s.roomRepo.DeleteMembershipsOfRoom(txCtx, id); err != nil {
			return err
		}
		if _, err := s.messageRepo.DeleteByRoom(txCtx, id); err != nil {
			return err
		}

		var err error
		deleted, err = s.roomRepo.Delete(txCtx, id)
		return err
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("room deleted", "room_id", id, "deleted", deleted)
	return deleted, nil
}

// Exists indica se a sala existe
func (s *RoomService) Exists(ctx context.Context, roomID uuid.UUID) (bool, error) {
	return s.roomRepo.Exists(ctx, roomID)
}

// AddUsers inclui usuários na sala.
// Usuários inexistentes e membros já presentes são ignorados; o resultado
// informa o que foi inserido e o motivo de cada id ignorado.
func (s *RoomService) AddUsers(ctx context.Context, roomID uuid.UUID, userIDs []uuid.UUID) (*entities.AddUsersResult, error) {
	result := &entities.AddUsersResult{
		Added:              []uuid.UUID{},
		SkippedDuplicate:   []uuid.UUID{},
		SkippedMissingUser: []uuid.UUID{},
	}

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		exists, err := s.roomRepo.Exists(txCtx, roomID)
		if err != nil {
			return err
		}
		if !exists {
			return errors.ErrRoomNotFound
		}

		status := entities.MembershipStatusMember
		seen := make(map[uuid.UUID]struct{}, len(userIDs))

		for _, userID := range userIDs {
			if _, dup := seen[userID]; dup {
				result.SkippedDuplicate = append(result.SkippedDuplicate, userID)
				continue
			}
			seen[userID] = struct{}{}

			userExists, err := s.userRepo.Exists(txCtx, userID)
			if err != nil {
				return err
			}
			if !userExists {
				result.SkippedMissingUser = append(result.SkippedMissingUser, userID)
				continue
			}

			added, err := s.roomRepo.AddMember(txCtx, &entities.RoomUser{
				UserID: userID,
				RoomID: roomID,
				Status: &status,
			})
			if err != nil {
				return err
			}
			if !added {
				result.SkippedDuplicate = append(result.SkippedDuplicate, userID)
				continue
			}
			result.Added = append(result.Added, userID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("users added to room",
		"room_id", roomID,
		"added", len(result.Added),
		"skipped_duplicate", len(result.SkippedDuplicate),
		"skipped_missing_user", len(result.SkippedMissingUser),
	)
	return result, nil
}

// RemoveUsers remove os usuários da sala e retorna quantas associações foram apagadas
func (s *RoomService) RemoveUsers(ctx context.Context, roomID uuid.UUID, userIDs []uuid.UUID) (int64, error) {
	var removed int64

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		exists, err := s.roomRepo.Exists(txCtx, roomID)
		if err != nil {
			return err
		}
		if !exists {
			return errors.ErrRoomNotFound
		}

		removed, err = s.roomRepo.RemoveMembers(txCtx, roomID, userIDs)
		return err
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("users removed from room", "room_id", roomID, "removed", removed)
	return removed, nil
}

// GetRoomUsers retorna as linhas de associação da sala na ordem de criação
func (s *RoomService) GetRoomUsers(ctx context.Context, roomID uuid.UUID) ([]*entities.RoomUser, error) {
	return s.roomRepo.ListMembers(ctx, roomID)
}

// GetUserIDs retorna os ids dos membros da sala
func (s *RoomService) GetUserIDs(ctx context.Context, roomID uuid.UUID) ([]uuid.UUID, error) {
	exists, err := s.roomRepo.Exists(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.ErrRoomNotFound
	}

	members, err := s.roomRepo.ListMembers(ctx, roomID)
	if err != nil {
		return nil, err
	}
	return entities.UserIDs(members), nil
}
