package dto

import (
	"time"

	"github.com/rafabene/thermit-backend/internal/domain/entities"
)

// CreateUserRequest representa a requisição para criar um usuário
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,username"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// UpdateUserRequest representa a requisição para atualizar um usuário.
// Campos vazios mantêm o valor armazenado.
type UpdateUserRequest struct {
	Username string `json:"username" binding:"omitempty,username"`
	Password string `json:"password" binding:"omitempty,min=8,max=72"`
}

// ToPatch converte a requisição em patch de domínio
func (r UpdateUserRequest) ToPatch() entities.UserPatch {
	return entities.UserPatch{Username: r.Username, Password: r.Password}
}

// UserResponse representa a resposta de um usuário (nunca inclui a senha)
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"updated"`
}

// UsersResponse envelopa a listagem de usuários
type UsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ListUsersQuery contém os parâmetros de paginação
type ListUsersQuery struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username.String(),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}
