package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/rafabene/thermit-backend/internal/domain/entities"
)

// MessageRepository define a interface para persistência de mensagens
type MessageRepository interface {
	Create(ctx context.Context, message *entities.Message) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Message, error)
	ListByRoom(ctx context.Context, roomID uuid.UUID) ([]*entities.Message, error)
	Update(ctx context.Context, message *entities.Message) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	DeleteByRoom(ctx context.Context, roomID uuid.UUID) (int64, error)
	DeleteByAuthor(ctx context.Context, author uuid.UUID) (int64, error)
}
