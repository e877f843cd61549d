package dto

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafabene/thermit-backend/internal/domain/errors"
	"github.com/rafabene/thermit-backend/internal/handlers/middleware"
	"github.com/rafabene/thermit-backend/internal/infrastructure/i18n"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err      error
		expected int
	}{
		{errors.ErrNotFound, http.StatusNotFound},
		{errors.ErrUserNotFound, http.StatusNotFound},
		{errors.ErrRoomNotFound, http.StatusNotFound},
		{errors.ErrMessageNotFound, http.StatusNotFound},
		{errors.ErrUsernameTaken, http.StatusConflict},
		{errors.ErrIncorrectPassword, http.StatusForbidden},
		{errors.ErrForbidden, http.StatusForbidden},
		{errors.ErrUnauthorized, http.StatusUnauthorized},
		{errors.ErrInvalidUsername, http.StatusBadRequest},
		{errors.ErrInvalidPassword, http.StatusBadRequest},
		{errors.ErrInvalidContent, http.StatusBadRequest},
		{errors.ErrTooManyRequests, http.StatusTooManyRequests},
		{errors.ErrInternal, http.StatusInternalServerError},
		{errors.ErrGeneric, http.StatusInternalServerError},
		{fmt.Errorf("find room: %w", errors.ErrRoomNotFound), http.StatusNotFound},
		{errors.Wrap(errors.ErrUsernameTaken, "create user"), http.StatusConflict},
		{fmt.Errorf("qualquer outra falha"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusFor(tt.err))
		})
	}
}

func newContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, err := i18n.NewEmbeddedService("en")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	c.Set(middleware.I18nServiceContextKey, svc)
	c.Set(middleware.LanguageContextKey, "pt-BR")
	c.Set("base_url", "https://api.example")
	return c, w
}

func TestWriteError(t *testing.T) {
	t.Run("escreve problem traduzido", func(t *testing.T) {
		c, w := newContext(t, "/api/v1/rooms/1")

		WriteError(c, fmt.Errorf("get room: %w", errors.ErrRoomNotFound))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "https://api.example/problems/not-found", body["type"])
		assert.Equal(t, "Não encontrado", body["title"])
		assert.Equal(t, "Sala não encontrada", body["detail"])
		assert.Equal(t, "/api/v1/rooms/1", body["instance"])
		assert.EqualValues(t, http.StatusNotFound, body["status"])
		assert.Len(t, c.Errors, 1)
	})

	t.Run("erro desconhecido não expõe a mensagem", func(t *testing.T) {
		c, w := newContext(t, "/")

		WriteError(c, fmt.Errorf("dial tcp 10.0.0.1:5432: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "10.0.0.1")
		assert.Contains(t, w.Body.String(), "Ocorreu um erro inesperado")
	})
}

func TestErrorResponseFor(t *testing.T) {
	c, _ := newContext(t, "/api/v1/users")

	response := ErrorResponseFor(c, errors.ErrUsernameTaken)

	require.NotNil(t, response.Problem)
	assert.Equal(t, http.StatusConflict, response.Status)
	assert.Equal(t, "https://api.example/problems/conflict", response.Type)
	assert.Equal(t, "/api/v1/users", response.Instance)
	assert.Empty(t, response.Errors)
}

func TestT_WithoutService(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Equal(t, "error.room_not_found", T(c, "error.room_not_found"))
	assert.Equal(t, "en", GetLanguage(c))
}
