package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/rafabene/thermit-backend/internal/domain/entities"
	"github.com/rafabene/thermit-backend/internal/domain/errors"
	"github.com/rafabene/thermit-backend/internal/domain/ports"
	"github.com/rafabene/thermit-backend/internal/domain/repositories"
)

// MessageService contém a lógica de negócio para mensagens
type MessageService struct {
	messageRepo repositories.MessageRepository
	roomRepo    repositories.RoomRepository
	userRepo    repositories.UserRepository
	publisher   ports.MessagePublisher
	logger      ports.Logger
}

// NewMessageService cria um novo MessageService.
// publisher pode ser nil quando não há distribuição em tempo real.
func NewMessageService(
	messageRepo repositories.MessageRepository,
	roomRepo repositories.RoomRepository,
	userRepo repositories.UserRepository,
	publisher ports.MessagePublisher,
	logger ports.Logger,
) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		roomRepo:    roomRepo,
		userRepo:    userRepo,
		publisher:   publisher,
		logger:      logger.With("service", "messages"),
	}
}

// CreateMessageInput representa os dados para criar uma mensagem
type CreateMessageInput struct {
	RoomID  uuid.UUID
	Author  uuid.UUID
	Content string
}

// CreateMessage grava a mensagem e a publica para os assinantes da sala
func (s *MessageService) CreateMessage(ctx context.Context, input CreateMessageInput) (*entities.Message, error) {
	message := &entities.Message{
		RoomID:  input.RoomID,
		Author:  input.Author,
		Content: strings.TrimSpace(input.Content),
	}
	if err := message.Validate(); err != nil {
		return nil, err
	}

	roomExists, err := s.roomRepo.Exists(ctx, message.RoomID)
	if err != nil {
		return nil, err
	}
	if !roomExists {
		return nil, errors.ErrRoomNotFound
	}

	authorExists, err := s.userRepo.Exists(ctx, message.Author)
	if err != nil {
		return nil, err
	}
	if !authorExists {
		return nil, errors.ErrUserNotFound
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	s.logger.Info("message created", "message_id", message.ID, "room_id", message.RoomID)

	if s.publisher != nil {
		s.publisher.Publish(message)
	}
	return message, nil
}

// GetMessage busca uma mensagem por ID
func (s *MessageService) GetMessage(ctx context.Context, id uuid.UUID) (*entities.Message, error) {
	message, err := s.messageRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, errors.ErrMessageNotFound
	}
	return message, nil
}

// ListRoomMessages lista as mensagens de uma sala em ordem de criação
func (s *MessageService) ListRoomMessages(ctx context.Context, roomID uuid.UUID) ([]*entities.Message, error) {
	exists, err := s.roomRepo.Exists(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.ErrRoomNotFound
	}
	return s.messageRepo.ListByRoom(ctx, roomID)
}

// UpdateMessage altera o conteúdo; conteúdo vazio mantém o atual
func (s *MessageService) UpdateMessage(ctx context.Context, id uuid.UUID, patch entities.MessagePatch) (*entities.Message, error) {
	message, err := s.GetMessage(ctx, id)
	if err != nil {
		return nil, err
	}

	content := strings.TrimSpace(patch.Content)
	if content == "" {
		return message, nil
	}

	message.Content = content
	if err := message.Validate(); err != nil {
		return nil, err
	}
	if err := s.messageRepo.Update(ctx, message); err != nil {
		return nil, err
	}

	s.logger.Info("message updated", "message_id", message.ID)
	return message, nil
}

// DeleteMessage remove a mensagem e retorna o número de linhas afetadas
func (s *MessageService) DeleteMessage(ctx context.Context, id uuid.UUID) (int64, error) {
	deleted, err := s.messageRepo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}

	s.logger.Info("message deleted", "message_id", id, "deleted", deleted)
	return deleted, nil
}
