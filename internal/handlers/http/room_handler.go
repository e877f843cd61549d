package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rafabene/thermit-backend/internal/domain/entities"
	"github.com/rafabene/thermit-backend/internal/domain/errors"
	"github.com/rafabene/thermit-backend/internal/handlers/dto"
)

// RoomHandler lida com requisições HTTP de salas e membros
type RoomHandler struct {
	roomService RoomService
}

// NewRoomHandler cria um novo RoomHandler
func NewRoomHandler(roomService RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// ListRooms lista todas as salas
//
//	@Summary	Lista salas
//	@Tags		rooms
//	@Produce	json
//	@Success	200	{object}	dto.RoomsResponse
//	@Failure	500	{object}	dto.ErrorResponse
//	@Router		/rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.roomService.ListRooms(c.Request.Context())
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RoomsResponse{Rooms: dto.ToRoomResponses(rooms)})
}

// GetRoom busca uma sala com os ids dos membros
//
//	@Summary	Busca sala
//	@Tags		rooms
//	@Produce	json
//	@Param		id	path		string	true	"Room ID"
//	@Success	200	{object}	dto.RoomDetailResponse
//	@Failure	400	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	room, err := h.roomService.GetRoom(ctx, id)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	userIDs, err := h.roomService.GetUserIDs(ctx, id)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomDetailResponse(room, userIDs))
}

// CreateRoom cria uma sala
//
//	@Summary	Cria sala
//	@Tags		rooms
//	@Accept		json
//	@Produce	json
//	@Param		room	body		dto.RoomRequest	true	"Room"
//	@Success	201		{object}	dto.RoomDetailResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BindError(c, err)
		return
	}

	room, err := h.roomService.CreateRoom(c.Request.Context(), req.Name)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	// Sala nova ainda não tem membros
	c.JSON(http.StatusCreated, dto.ToRoomDetailResponse(room, nil))
}

// UpdateRoom atualiza o nome da sala
//
//	@Summary	Atualiza sala
//	@Tags		rooms
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"Room ID"
//	@Param		room	body		dto.RoomRequest	true	"Room"
//	@Success	200		{object}	dto.RoomDetailResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Router		/rooms/{id} [put]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req dto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BindError(c, err)
		return
	}

	ctx := c.Request.Context()
	room, err := h.roomService.UpdateRoom(ctx, id, entities.RoomPatch{Name: req.Name})
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	userIDs, err := h.roomService.GetUserIDs(ctx, id)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoomDetailResponse(room, userIDs))
}

// DeleteRoom remove a sala
//
//	@Summary	Remove sala
//	@Tags		rooms
//	@Param		id	path	string	true	"Room ID"
//	@Success	204
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/rooms/{id} [delete]
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	deleted, err := h.roomService.DeleteRoom(c.Request.Context(), id)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	respondDeleted(c, deleted, errors.ErrRoomNotFound)
}

// AddUser inclui usuários na sala; ids inexistentes ou já membros são ignorados
//
//	@Summary	Adiciona membros
//	@Tags		rooms
//	@Accept		json
//	@Param		id		path	string					true	"Room ID"
//	@Param		user	body	dto.AddRoomUserRequest	true	"User id(s)"
//	@Success	204
//	@Failure	400	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/rooms/{id}/users [post]
func (h *RoomHandler) AddUser(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req dto.AddRoomUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BindError(c, err)
		return
	}

	userIDs, err := req.UserIDs()
	if err != nil {
		dto.BadRequest(c, "error.invalid_body")
		return
	}

	if _, err := h.roomService.AddUsers(c.Request.Context(), id, userIDs); err != nil {
		dto.WriteError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListUsers lista os ids dos membros da sala
//
//	@Summary	Lista membros
//	@Tags		rooms
//	@Produce	json
//	@Param		id	path		string	true	"Room ID"
//	@Success	200	{object}	dto.RoomUsersResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/rooms/{id}/users [get]
func (h *RoomHandler) ListUsers(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	userIDs, err := h.roomService.GetUserIDs(c.Request.Context(), id)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RoomUsersResponse{Users: dto.UUIDStrings(userIDs)})
}

// RemoveUser remove um membro da sala
//
//	@Summary	Remove membro
//	@Tags		rooms
//	@Param		id		path	string	true	"Room ID"
//	@Param		user_id	path	string	true	"User ID"
//	@Success	204
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/rooms/{id}/users/{user_id} [delete]
func (h *RoomHandler) RemoveUser(c *gin.Context) {
	roomID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	userID, ok := uuidParam(c, "user_id")
	if !ok {
		return
	}

	removed, err := h.roomService.RemoveUsers(c.Request.Context(), roomID, []uuid.UUID{userID})
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	respondDeleted(c, removed, errors.ErrNotFound)
}
