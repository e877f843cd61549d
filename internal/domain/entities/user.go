package entities

import (
	"time"

	"github.com/google/uuid"

	"github.com/rafabene/thermit-backend/internal/domain/valueobjects"
)

// User representa um usuário do chat
type User struct {
	ID           uuid.UUID
	Username     valueobjects.Username
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserPatch contém os campos de uma atualização parcial.
// Campos vazios preservam o valor armazenado.
type UserPatch struct {
	Username string
	Password string
}

// IsEmpty indica que nenhum campo será alterado
func (p UserPatch) IsEmpty() bool {
	return p.Username == "" && p.Password == ""
}
