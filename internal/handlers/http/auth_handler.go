package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/thermit-backend/internal/handlers/dto"
)

// AuthHandler troca credenciais por um token de acesso
type AuthHandler struct {
	authService AuthService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Authenticate valida username e senha
//
//	@Summary	Autentica usuário
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		credentials	body		dto.AuthRequest	true	"Credenciais"
//	@Success	200			{object}	dto.TokenResponse
//	@Failure	403			{object}	dto.ErrorResponse	"Senha incorreta"
//	@Failure	404			{object}	dto.ErrorResponse	"Usuário não encontrado"
//	@Failure	429			{object}	dto.ErrorResponse
//	@Router		/auth [post]
func (h *AuthHandler) Authenticate(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BindError(c, err)
		return
	}

	token, err := h.authService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		dto.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
