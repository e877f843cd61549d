package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/rafabene/thermit-backend/internal/domain/entities"
)

// RoomRequest é usado para criar e atualizar salas; o nome é opcional
type RoomRequest struct {
	Name *string `json:"name" binding:"omitempty,max=100"`
}

// RoomResponse representa uma sala
type RoomResponse struct {
	ID        string    `json:"id"`
	Name      *string   `json:"name"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
}

// RoomDetailResponse representa uma sala com os ids dos membros
type RoomDetailResponse struct {
	ID    string   `json:"id"`
	Name  *string  `json:"name"`
	Users []string `json:"users"`
}

// RoomsResponse envelopa a listagem de salas
type RoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// AddRoomUserRequest inclui um usuário (id) ou vários (ids) na sala
type AddRoomUserRequest struct {
	ID  string   `json:"id" binding:"required_without=IDs,omitempty,uuid"`
	IDs []string `json:"ids" binding:"omitempty,dive,uuid"`
}

// UserIDs junta id e ids preservando a ordem
func (r AddRoomUserRequest) UserIDs() ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(r.IDs)+1)
	if r.ID != "" {
		id, err := uuid.Parse(r.ID)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	for _, raw := range r.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// RoomUsersResponse lista os ids dos membros
type RoomUsersResponse struct {
	Users []string `json:"users"`
}

// ToRoomResponse converte uma entidade Room para RoomResponse
func ToRoomResponse(room *entities.Room) RoomResponse {
	return RoomResponse{
		ID:        room.ID.String(),
		Name:      room.Name,
		CreatedAt: room.CreatedAt,
		UpdatedAt: room.UpdatedAt,
	}
}

// ToRoomResponses converte uma lista de salas
func ToRoomResponses(rooms []*entities.Room) []RoomResponse {
	responses := make([]RoomResponse, len(rooms))
	for i, room := range rooms {
		responses[i] = ToRoomResponse(room)
	}
	return responses
}

// ToRoomDetailResponse junta a sala aos ids dos membros
func ToRoomDetailResponse(room *entities.Room, userIDs []uuid.UUID) RoomDetailResponse {
	return RoomDetailResponse{
		ID:    room.ID.String(),
		Name:  room.Name,
		Users: UUIDStrings(userIDs),
	}
}

// UUIDStrings converte ids para texto; nunca retorna nil
func UUIDStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
