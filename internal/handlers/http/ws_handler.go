package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rafabene/thermit-backend/internal/domain/errors"
	"github.com/rafabene/thermit-backend/internal/domain/ports"
	"github.com/rafabene/thermit-backend/internal/handlers/dto"
)

// RoomStream mantém uma conexão websocket inscrita em uma sala até ela fechar
type RoomStream interface {
	Serve(roomID uuid.UUID, conn *websocket.Conn)
}

// StreamHandler entrega em tempo real as mensagens criadas em uma sala
type StreamHandler struct {
	roomService RoomService
	stream      RoomStream
	upgrader    websocket.Upgrader
	logger      ports.Logger
}

// NewStreamHandler cria um StreamHandler; allowedOrigins vazio ou com "*" aceita qualquer origem
func NewStreamHandler(roomService RoomService, stream RoomStream, allowedOrigins []string, logger ports.Logger) *StreamHandler {
	return &StreamHandler{
		roomService: roomService,
		stream:      stream,
		logger:      logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, origin := range allowed {
		if origin == "*" {
			return func(*http.Request) bool { return true }
		}
		set[origin] = struct{}{}
	}
	if len(set) == 0 {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}

// Subscribe faz o upgrade para websocket e inscreve a conexão na sala
//
//	@Summary	Stream de mensagens da sala
//	@Tags		rooms
//	@Param		id	path	string	true	"Room ID"
//	@Success	101
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/rooms/{id}/ws [get]
func (h *StreamHandler) Subscribe(c *gin.Context) {
	roomID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	exists, err := h.roomService.Exists(c.Request.Context(), roomID)
	if err != nil {
		dto.WriteError(c, err)
		return
	}
	if !exists {
		dto.WriteError(c, errors.ErrRoomNotFound)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade já respondeu ao cliente
		h.logger.Warn("websocket upgrade failed", "room_id", roomID, "error", err)
		return
	}

	h.stream.Serve(roomID, conn)
}
