package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/rafabene/thermit-backend/internal/domain/errors"
)

func TestAuthHandler_Authenticate(t *testing.T) {
	tcases := []struct {
		name     string
		body     string
		token    string
		mockErr  error
		callsSvc bool
		expected int
		detail   string
	}{
		{"retorna token", `{"username":"bob","password":"secret"}`, "jwt-token", nil, true, http.StatusOK, ""},
		{"403 para senha incorreta", `{"username":"bob","password":"secret"}`, "", errors.ErrIncorrectPassword, true, http.StatusForbidden, "Incorrect password"},
		{"404 para usuário desconhecido", `{"username":"bob","password":"secret"}`, "", errors.ErrUserNotFound, true, http.StatusNotFound, "User not found"},
		{"400 sem senha", `{"username":"bob"}`, "", nil, false, http.StatusBadRequest, "One or more fields are invalid"},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockAuthService{}
			defer svc.AssertExpectations(t)
			if tc.callsSvc {
				svc.On("Authenticate", mock.Anything, "bob", "secret").Return(tc.token, tc.mockErr).Once()
			}

			engine := newTestEngine(t)
			engine.POST("/auth", NewAuthHandler(svc).Authenticate)

			rr := doRequest(engine, http.MethodPost, "/auth", tc.body)

			assert.Equal(t, tc.expected, rr.Code)
			if tc.expected == http.StatusOK {
				assert.JSONEq(t, `{"token":"jwt-token"}`, rr.Body.String())
				return
			}
			assert.Equal(t, tc.detail, decodeProblem(t, rr).Detail)
		})
	}
}
