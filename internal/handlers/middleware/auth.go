package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rafabene/thermit-backend/internal/domain/errors"
)

// UserIDContextKey é a chave do id do usuário autenticado no contexto do Gin
const UserIDContextKey = "user_id"

// TokenVerifier valida um token e devolve o id do usuário
type TokenVerifier interface {
	VerifyToken(token string) (uuid.UUID, error)
}

// Auth extrai o bearer token do header Authorization.
// Com required=false o token é opcional; se presente e inválido, a requisição é rejeitada.
func Auth(verifier TokenVerifier, required bool, respond ErrorResponder) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			if required {
				abortWith(respond, c, http.StatusUnauthorized, errors.ErrUnauthorized)
				return
			}
			c.Next()
			return
		}

		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			abortWith(respond, c, http.StatusUnauthorized, errors.ErrUnauthorized)
			return
		}

		userID, err := verifier.VerifyToken(strings.TrimSpace(token))
		if err != nil {
			abortWith(respond, c, http.StatusUnauthorized, errors.ErrUnauthorized)
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Next()
	}
}

// CurrentUserID devolve o id do usuário autenticado, se houver
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(UserIDContextKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}
