package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/thermit-backend/internal/domain/errors"
	"github.com/rafabene/thermit-backend/internal/domain/repositories"
	"github.com/rafabene/thermit-backend/internal/handlers/dto"
	"github.com/rafabene/thermit-backend/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService UserService
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser cria um novo usuário
//
//	@Summary	Cria usuário
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		user	body		dto.CreateUserRequest	true	"User"
//	@Success	201		{object}	dto.UserResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	409		{object}	dto.ErrorResponse
//	@Router		/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BindError(c, err)
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), services.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// GetUser busca um usuário por ID
//
//	@Summary	Busca usuário
//	@Tags		users
//	@Produce	json
//	@Param		id	path		string	true	"User ID"
//	@Success	200	{object}	dto.UserResponse
//	@Failure	400	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ListUsers lista usuários paginados
//
//	@Summary	Lista usuários
//	@Tags		users
//	@Produce	json
//	@Param		page		query		int	false	"Página (começa em 1)"
//	@Param		page_size	query		int	false	"Itens por página (máx. 100)"
//	@Success	200			{object}	dto.UsersResponse
//	@Failure	400			{object}	dto.ErrorResponse
//	@Router		/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	var query dto.ListUsersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.BindError(c, err)
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), repositories.UserFilters{
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.UsersResponse{Users: dto.ToUserResponses(users)})
}

// UpdateUser atualiza username e/ou senha
//
//	@Summary	Atualiza usuário
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"User ID"
//	@Param		user	body		dto.UpdateUserRequest	true	"Campos a alterar"
//	@Success	200		{object}	dto.UserResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	403		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Failure	409		{object}	dto.ErrorResponse
//	@Router		/users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok || !ensureSelf(c, id) {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BindError(c, err)
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteUser remove o usuário e suas associações
//
//	@Summary	Remove usuário
//	@Tags		users
//	@Param		id	path	string	true	"User ID"
//	@Success	204
//	@Failure	403	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok || !ensureSelf(c, id) {
		return
	}

	deleted, err := h.userService.DeleteUser(c.Request.Context(), id)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	respondDeleted(c, deleted, errors.ErrUserNotFound)
}
