package entities

import (
	"time"

	"github.com/google/uuid"
)

// Room representa uma sala de chat
type Room struct {
	ID        uuid.UUID
	Name      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RoomPatch contém os campos de uma atualização parcial de sala
type RoomPatch struct {
	Name *string
}
