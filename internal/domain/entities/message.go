package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"

	domainerrs "github.com/rafabene/thermit-backend/internal/domain/errors"
)

const MessageMaxLength = 4000

// Message é uma mensagem enviada por um autor em uma sala
type Message struct {
	ID        uuid.UUID
	RoomID    uuid.UUID
	Author    uuid.UUID
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MessagePatch contém os campos de uma atualização parcial de mensagem
type MessagePatch struct {
	Content string
}

// Validate valida regras de negócio da entidade Message
func (m *Message) Validate() error {
	content := strings.TrimSpace(m.Content)
	if content == "" || len(content) > MessageMaxLength {
		return domainerrs.ErrInvalidContent
	}
	if m.RoomID == uuid.Nil {
		return domainerrs.ErrRoomNotFound
	}
	if m.Author == uuid.Nil {
		return domainerrs.ErrUserNotFound
	}
	return nil
}
