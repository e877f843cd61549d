package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/rafabene/thermit-backend/internal/domain/entities"
)

// CreateMessageRequest representa a requisição para criar uma mensagem.
// Sem author, o autor é o usuário do token.
type CreateMessageRequest struct {
	RoomID  string `json:"room_id" binding:"required,uuid"`
	Author  string `json:"author" binding:"omitempty,uuid"`
	Content string `json:"content" binding:"required,max=4000"`
}

// ParseIDs devolve room_id e author; author ausente vem como uuid.Nil
func (r CreateMessageRequest) ParseIDs() (roomID, author uuid.UUID, err error) {
	roomID, err = uuid.Parse(r.RoomID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if r.Author == "" {
		return roomID, uuid.Nil, nil
	}
	author, err = uuid.Parse(r.Author)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return roomID, author, nil
}

// UpdateMessageRequest altera o conteúdo; vazio mantém o atual
type UpdateMessageRequest struct {
	Content string `json:"content" binding:"omitempty,max=4000"`
}

// MessageResponse representa uma mensagem
type MessageResponse struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"room_id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
}

// MessagesResponse envelopa a listagem de mensagens
type MessagesResponse struct {
	Messages []MessageResponse `json:"messages"`
}

// ToMessageResponse converte uma entidade Message para MessageResponse
func ToMessageResponse(message *entities.Message) MessageResponse {
	return MessageResponse{
		ID:        message.ID.String(),
		RoomID:    message.RoomID.String(),
		Author:    message.Author.String(),
		Content:   message.Content,
		CreatedAt: message.CreatedAt,
		UpdatedAt: message.UpdatedAt,
	}
}

// ToMessageResponses converte uma lista de mensagens
func ToMessageResponses(messages []*entities.Message) []MessageResponse {
	responses := make([]MessageResponse, len(messages))
	for i, message := range messages {
		responses[i] = ToMessageResponse(message)
	}
	return responses
}
