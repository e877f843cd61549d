package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafabene/thermit-backend/internal/domain/entities"
	domainerrs "github.com/rafabene/thermit-backend/internal/domain/errors"
	"github.com/rafabene/thermit-backend/internal/domain/repositories"
)

// MessageRepository implementa repositories.MessageRepository
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository cria um novo MessageRepository
func NewMessageRepository(db *gorm.DB) repositories.MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Create(ctx context.Context, message *entities.Message) error {
	model := &MessageModel{
		ID:      message.ID,
		RoomID:  message.RoomID,
		Author:  message.Author,
		Content: message.Content,
	}

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		return mapError("create message", err)
	}

	message.ID = model.ID
	message.CreatedAt = model.CreatedAt
	message.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *MessageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Message, error) {
	var model MessageModel

	if err := dbFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, mapError("find message", err)
	}

	return toMessageEntity(&model), nil
}

func (r *MessageRepository) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*entities.Message, error) {
	var models []*MessageModel

	err := dbFromContext(ctx, r.db).Where("room_id = ?", roomID).Order("created ASC").Find(&models).Error
	if err != nil {
		return nil, mapError("list messages", err)
	}

	messages := make([]*entities.Message, 0, len(models))
	for _, model := range models {
		messages = append(messages, toMessageEntity(model))
	}
	return messages, nil
}

func (r *MessageRepository) Update(ctx context.Context, message *entities.Message) error {
	now := time.Now().UTC()

	result := dbFromContext(ctx, r.db).Model(&MessageModel{}).
		Where("id = ?", message.ID).
		Updates(map[string]any{
			"content": message.Content,
			"updated": now,
		})
	if result.Error != nil {
		return mapError("update message", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrs.ErrMessageNotFound
	}

	message.UpdatedAt = now
	return nil
}

func (r *MessageRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := dbFromContext(ctx, r.db).Where("id = ?", id).Delete(&MessageModel{})
	if result.Error != nil {
		return 0, mapError("delete message", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *MessageRepository) DeleteByRoom(ctx context.Context, roomID uuid.UUID) (int64, error) {
	result := dbFromContext(ctx, r.db).Where("room_id = ?", roomID).Delete(&MessageModel{})
	if result.Error != nil {
		return 0, mapError("delete messages of room", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *MessageRepository) DeleteByAuthor(ctx context.Context, author uuid.UUID) (int64, error) {
	result := dbFromContext(ctx, r.db).Where("author = ?", author).Delete(&MessageModel{})
	if result.Error != nil {
		return 0, mapError("delete messages of author", result.Error)
	}
	return result.RowsAffected, nil
}

func toMessageEntity(model *MessageModel) *entities.Message {
	return &entities.Message{
		ID:        model.ID,
		RoomID:    model.RoomID,
		Author:    model.Author,
		Content:   model.Content,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
