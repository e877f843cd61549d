package entities

import (
	"time"

	"github.com/google/uuid"
)

// MembershipStatus representa o estado de um membro na sala
type MembershipStatus string

const MembershipStatusMember MembershipStatus = "member"

// RoomUser é uma linha da tabela de associação rooms_users
type RoomUser struct {
	UserID    uuid.UUID
	RoomID    uuid.UUID
	Status    *MembershipStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AddUsersResult descreve o resultado de uma inclusão de membros.
// Somente Added foi de fato inserido.
type AddUsersResult struct {
	Added              []uuid.UUID
	SkippedDuplicate   []uuid.UUID
	SkippedMissingUser []uuid.UUID
}

// UserIDs projeta os ids de usuário das linhas de associação
func UserIDs(members []*RoomUser) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.UserID)
	}
	return ids
}
