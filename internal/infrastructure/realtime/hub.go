package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rafabene/thermit-backend/internal/domain/entities"
	"github.com/rafabene/thermit-backend/internal/domain/ports"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 32
)

// MessageEvent é o payload enviado aos assinantes
type MessageEvent struct {
	Type    string    `json:"type"`
	ID      uuid.UUID `json:"id"`
	RoomID  uuid.UUID `json:"room_id"`
	Author  uuid.UUID `json:"author"`
	Content string    `json:"content"`
	Created time.Time `json:"created"`
}

type subscriber struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub distribui mensagens novas para as conexões websocket de cada sala
type Hub struct {
	mu    sync.RWMutex
	rooms map[uuid.UUID]map[*subscriber]struct{}
	log   ports.Logger
}

// NewHub cria um novo Hub
func NewHub(log ports.Logger) *Hub {
	return &Hub{
		rooms: make(map[uuid.UUID]map[*subscriber]struct{}),
		log:   log,
	}
}

// Publish implementa ports.MessagePublisher. Assinantes lentos perdem a mensagem.
func (h *Hub) Publish(message *entities.Message) {
	payload, err := json.Marshal(MessageEvent{
		Type:    "message.created",
		ID:      message.ID,
		RoomID:  message.RoomID,
		Author:  message.Author,
		Content: message.Content,
		Created: message.CreatedAt,
	})
	if err != nil {
		h.log.Error("failed to encode message event", "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.rooms[message.RoomID] {
		select {
		case sub.send <- payload:
		default:
			h.log.Warn("dropping message for slow subscriber", "room_id", message.RoomID)
		}
	}
}

// SubscriberCount retorna o número de conexões ativas na sala
func (h *Hub) SubscriberCount(roomID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}

// Serve registra a conexão na sala e bloqueia até ela ser encerrada
func (h *Hub) Serve(roomID uuid.UUID, conn *websocket.Conn) {
	sub := &subscriber{conn: conn, send: make(chan []byte, sendBuffer)}
	h.register(roomID, sub)
	defer h.unregister(roomID, sub)

	done := make(chan struct{})
	go h.writePump(sub, done)
	h.readPump(sub)
	close(done)
}

func (h *Hub) register(roomID uuid.UUID, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs, ok := h.rooms[roomID]
	if !ok {
		subs = make(map[*subscriber]struct{})
		h.rooms[roomID] = subs
	}
	subs[sub] = struct{}{}
	h.log.Debug("websocket subscribed", "room_id", roomID, "subscribers", len(subs))
}

func (h *Hub) unregister(roomID uuid.UUID, sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if subs, ok := h.rooms[roomID]; ok {
		delete(subs, sub)
		if len(subs) == 0 {
			delete(h.rooms, roomID)
		}
	}
	_ = sub.conn.Close()
}

// readPump só consome frames de controle; o cliente não envia mensagens por aqui
func (h *Hub) readPump(sub *subscriber) {
	sub.conn.SetReadLimit(maxMessageSize)
	_ = sub.conn.SetReadDeadline(time.Now().Add(pongWait))
	sub.conn.SetPongHandler(func(string) error {
		return sub.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn("websocket closed unexpectedly", "error", err)
			}
			return
		}
	}
}

func (h *Hub) writePump(sub *subscriber, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case payload := <-sub.send:
			_ = sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := sub.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := sub.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
