package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rafabene/thermit-backend/internal/domain/entities"
	"github.com/rafabene/thermit-backend/internal/domain/errors"
	"github.com/rafabene/thermit-backend/internal/handlers/dto"
	"github.com/rafabene/thermit-backend/internal/handlers/middleware"
	"github.com/rafabene/thermit-backend/internal/services"
)

// MessageHandler lida com requisições HTTP de mensagens
type MessageHandler struct {
	messageService MessageService
}

// NewMessageHandler cria um novo MessageHandler
func NewMessageHandler(messageService MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// CreateMessage publica uma mensagem em uma sala
//
//	@Summary	Cria mensagem
//	@Tags		messages
//	@Accept		json
//	@Produce	json
//	@Param		message	body		dto.CreateMessageRequest	true	"Message"
//	@Success	201		{object}	dto.MessageResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	403		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/messages [post]
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	var req dto.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BindError(c, err)
		return
	}

	roomID, author, err := req.ParseIDs()
	if err != nil {
		dto.BadRequest(c, "error.invalid_body")
		return
	}

	if caller, ok := middleware.CurrentUserID(c); ok {
		if author == uuid.Nil {
			author = caller
		} else if author != caller {
			dto.WriteError(c, errors.ErrForbidden)
			return
		}
	}
	if author == uuid.Nil {
		dto.BadRequest(c, "error.author_required")
		return
	}

	message, err := h.messageService.CreateMessage(c.Request.Context(), services.CreateMessageInput{
		RoomID:  roomID,
		Author:  author,
		Content: req.Content,
	})
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMessageResponse(message))
}

// GetMessage busca uma mensagem por ID
//
//	@Summary	Busca mensagem
//	@Tags		messages
//	@Produce	json
//	@Param		id	path		string	true	"Message ID"
//	@Success	200	{object}	dto.MessageResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/messages/{id} [get]
func (h *MessageHandler) GetMessage(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	message, err := h.messageService.GetMessage(c.Request.Context(), id)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMessageResponse(message))
}

// ListRoomMessages lista as mensagens de uma sala
//
//	@Summary	Lista mensagens da sala
//	@Tags		rooms
//	@Produce	json
//	@Param		id	path		string	true	"Room ID"
//	@Success	200	{object}	dto.MessagesResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/rooms/{id}/messages [get]
func (h *MessageHandler) ListRoomMessages(c *gin.Context) {
	roomID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	messages, err := h.messageService.ListRoomMessages(c.Request.Context(), roomID)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessagesResponse{Messages: dto.ToMessageResponses(messages)})
}

// UpdateMessage altera o conteúdo de uma mensagem
//
//	@Summary	Atualiza mensagem
//	@Tags		messages
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Message ID"
//	@Param		message	body		dto.UpdateMessageRequest	true	"Conteúdo"
//	@Success	200		{object}	dto.MessageResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/messages/{id} [put]
func (h *MessageHandler) UpdateMessage(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BindError(c, err)
		return
	}

	message, err := h.messageService.UpdateMessage(c.Request.Context(), id, entities.MessagePatch{Content: req.Content})
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMessageResponse(message))
}

// DeleteMessage remove uma mensagem
//
//	@Summary	Remove mensagem
//	@Tags		messages
//	@Param		id	path	string	true	"Message ID"
//	@Success	204
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/messages/{id} [delete]
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	deleted, err := h.messageService.DeleteMessage(c.Request.Context(), id)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	respondDeleted(c, deleted, errors.ErrMessageNotFound)
}
