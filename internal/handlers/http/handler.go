package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rafabene/thermit-backend/internal/domain/entities"
	"github.com/rafabene/thermit-backend/internal/domain/errors"
	"github.com/rafabene/thermit-backend/internal/domain/repositories"
	"github.com/rafabene/thermit-backend/internal/handlers/dto"
	"github.com/rafabene/thermit-backend/internal/handlers/middleware"
	"github.com/rafabene/thermit-backend/internal/services"
)

// RoomService é o que os handlers de sala precisam da camada de serviços
type RoomService interface {
	ListRooms(ctx context.Context) ([]*entities.Room, error)
	GetRoom(ctx context.Context, id uuid.UUID) (*entities.Room, error)
	CreateRoom(ctx context.Context, name *string) (*entities.Room, error)
	UpdateRoom(ctx context.Context, id uuid.UUID, patch entities.RoomPatch) (*entities.Room, error)
	DeleteRoom(ctx context.Context, id uuid.UUID) (int64, error)
	Exists(ctx context.Context, roomID uuid.UUID) (bool, error)
	AddUsers(ctx context.Context, roomID uuid.UUID, userIDs []uuid.UUID) (*entities.AddUsersResult, error)
	RemoveUsers(ctx context.Context, roomID uuid.UUID, userIDs []uuid.UUID) (int64, error)
	GetUserIDs(ctx context.Context, roomID uuid.UUID) ([]uuid.UUID, error)
}

// UserService é o que os handlers de usuário precisam da camada de serviços
type UserService interface {
	ListUsers(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error)
	CreateUser(ctx context.Context, input services.CreateUserInput) (*entities.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, patch entities.UserPatch) (*entities.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) (int64, error)
}

// MessageService é o que os handlers de mensagem precisam da camada de serviços
type MessageService interface {
	CreateMessage(ctx context.Context, input services.CreateMessageInput) (*entities.Message, error)
	GetMessage(ctx context.Context, id uuid.UUID) (*entities.Message, error)
	ListRoomMessages(ctx context.Context, roomID uuid.UUID) ([]*entities.Message, error)
	UpdateMessage(ctx context.Context, id uuid.UUID, patch entities.MessagePatch) (*entities.Message, error)
	DeleteMessage(ctx context.Context, id uuid.UUID) (int64, error)
}

// AuthService autentica credenciais
type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (string, error)
}

// uuidParam lê um parâmetro de rota como UUID; responde 400 quando inválido
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		dto.BadRequest(c, "error.invalid_id", map[string]interface{}{"Param": name})
		return uuid.Nil, false
	}
	return id, true
}

// respondDeleted responde 204 quando algo foi removido e 404 caso contrário
func respondDeleted(c *gin.Context, deleted int64, notFound error) {
	if deleted == 0 {
		dto.WriteError(c, notFound)
		return
	}
	c.Status(http.StatusNoContent)
}

// ensureSelf recusa com 403 quando o token pertence a outro usuário.
// Sem token (rotas abertas) não há dono a verificar.
func ensureSelf(c *gin.Context, id uuid.UUID) bool {
	if caller, ok := middleware.CurrentUserID(c); ok && caller != id {
		dto.WriteError(c, errors.ErrForbidden)
		return false
	}
	return true
}
