package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/thermit-backend/internal/domain/entities"
	domainerrs "github.com/rafabene/thermit-backend/internal/domain/errors"
	"github.com/rafabene/thermit-backend/internal/domain/repositories"
)

// RoomRepository implementa repositories.RoomRepository
type RoomRepository struct {
	db *gorm.DB
}

// NewRoomRepository cria um novo RoomRepository
func NewRoomRepository(db *gorm.DB) repositories.RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) Create(ctx context.Context, room *entities.Room) error {
	model := &RoomModel{ID: room.ID, Name: room.Name}

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		return mapError("create room", err)
	}

	room.ID = model.ID
	room.CreatedAt = model.CreatedAt
	room.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Room, error) {
	var model RoomModel

	if err := dbFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, mapError("find room", err)
	}

	return toRoomEntity(&model), nil
}

func (r *RoomRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64

	err := dbFromContext(ctx, r.db).Model(&RoomModel{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, mapError("check room", err)
	}

	return count > 0, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *entities.Room) error {
	now := time.Now().UTC()

	result := dbFromContext(ctx, r.db).Model(&RoomModel{}).
		Where("id = ?", room.ID).
		Updates(map[string]any{
			"name":    room.Name,
			"updated": now,
		})
	if result.Error != nil {
		return mapError("update room", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrs.ErrRoomNotFound
	}

	room.UpdatedAt = now
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := dbFromContext(ctx, r.db).Where("id = ?", id).Delete(&RoomModel{})
	if result.Error != nil {
		return 0, mapError("delete room", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *RoomRepository) List(ctx context.Context) ([]*entities.Room, error) {
	var models []*RoomModel

	if err := dbFromContext(ctx, r.db).Order("created ASC").Find(&models).Error; err != nil {
		return nil, mapError("list rooms", err)
	}

	rooms := make([]*entities.Room, 0, len(models))
	for _, model := range models {
		rooms = append(rooms, toRoomEntity(model))
	}
	return rooms, nil
}

// AddMember usa ON CONFLICT DO NOTHING: a chave (user_id, room_id) decide duplicatas
func (r *RoomRepository) AddMember(ctx context.Context, member *entities.RoomUser) (bool, error) {
	model := &RoomUserModel{
		UserID: member.UserID,
		RoomID: member.RoomID,
	}
	if member.Status != nil {
		status := string(*member.Status)
		model.Status = &status
	}

	result := dbFromContext(ctx, r.db).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(model)
	if result.Error != nil {
		return false, mapError("add room member", result.Error)
	}

	member.CreatedAt = model.CreatedAt
	member.UpdatedAt = model.UpdatedAt
	return result.RowsAffected > 0, nil
}

func (r *RoomRepository) RemoveMembers(ctx context.Context, roomID uuid.UUID, userIDs []uuid.UUID) (int64, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}

	result := dbFromContext(ctx, r.db).
		Where("room_id = ? AND user_id IN ?", roomID, uuidStrings(userIDs)).
		Delete(&RoomUserModel{})
	if result.Error != nil {
		return 0, mapError("remove room members", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *RoomRepository) ListMembers(ctx context.Context, roomID uuid.UUID) ([]*entities.RoomUser, error) {
	var models []*RoomUserModel

	err := dbFromContext(ctx, r.db).
		Where("room_id = ?", roomID).
		Order("created ASC").
		Find(&models).Error
	if err != nil {
		return nil, mapError("list room members", err)
	}

	members := make([]*entities.RoomUser, 0, len(models))
	for _, model := range models {
		members = append(members, toRoomUserEntity(model))
	}
	return members, nil
}

func (r *RoomRepository) DeleteMembershipsOfUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := dbFromContext(ctx, r.db).Where("user_id = ?", userID).Delete(&RoomUserModel{})
	if result.Error != nil {
		return 0, mapError("delete memberships of user", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *RoomRepository) DeleteMembershipsOfRoom(ctx context.Context, roomID uuid.UUID) (int64, error) {
	result := dbFromContext(ctx, r.db).Where("room_id = ?", roomID).Delete(&RoomUserModel{})
	if result.Error != nil {
		return 0, mapError("delete memberships of room", result.Error)
	}
	return result.RowsAffected, nil
}

// Conversores
func toRoomEntity(model *RoomModel) *entities.Room {
	return &entities.Room{
		ID:        model.ID,
		Name:      model.Name,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func toRoomUserEntity(model *RoomUserModel) *entities.RoomUser {
	var status *entities.MembershipStatus
	if model.Status != nil {
		s := entities.MembershipStatus(*model.Status)
		status = &s
	}

	return &entities.RoomUser{
		UserID:    model.UserID,
		RoomID:    model.RoomID,
		Status:    status,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
