package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidators(t *testing.T) {
	require.NoError(t, RegisterValidators())

	tests := []struct {
		name    string
		request CreateUserRequest
		field   string
		tag     string
	}{
		{"válido", CreateUserRequest{Username: "alice.b", Password: "password123"}, "", ""},
		{"username com espaço", CreateUserRequest{Username: "ali ce", Password: "password123"}, "username", "username"},
		{"username curto", CreateUserRequest{Username: "al", Password: "password123"}, "username", "username"},
		{"senha ausente", CreateUserRequest{Username: "alice"}, "password", "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tt.request)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			var validationErrs validator.ValidationErrors
			require.ErrorAs(t, err, &validationErrs)
			require.Len(t, validationErrs, 1)
			assert.Equal(t, tt.field, validationErrs[0].Field())
			assert.Equal(t, tt.tag, validationErrs[0].Tag())
		})
	}
}

func TestAddRoomUserRequest_UserIDs(t *testing.T) {
	require.NoError(t, RegisterValidators())

	req := AddRoomUserRequest{
		ID:  "6f1c1f4e-7b1f-4b8e-9d1a-0c4f6f4c2a11",
		IDs: []string{"0b7c2d5a-3e0f-4a5b-8c1d-2e3f4a5b6c7d"},
	}
	require.NoError(t, binding.Validator.ValidateStruct(req))

	ids, err := req.UserIDs()
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.Equal(t, req.ID, ids[0].String())

	assert.Error(t, binding.Validator.ValidateStruct(AddRoomUserRequest{}))

	t.Run("aceita maiúsculas", func(t *testing.T) {
		upper := AddRoomUserRequest{ID: "6F1C1F4E-7B1F-4B8E-9D1A-0C4F6F4C2A11"}
		require.NoError(t, binding.Validator.ValidateStruct(upper))

		ids, err := upper.UserIDs()
		require.NoError(t, err)
		assert.Equal(t, "6f1c1f4e-7b1f-4b8e-9d1a-0c4f6f4c2a11", ids[0].String())
	})

	t.Run("id inválido vira erro em vez de panic", func(t *testing.T) {
		_, err := AddRoomUserRequest{IDs: []string{"nope"}}.UserIDs()
		assert.Error(t, err)
	})
}

func TestCreateMessageRequest_ParseIDs(t *testing.T) {
	roomID := "0b7c2d5a-3e0f-4a5b-8c1d-2e3f4a5b6c7d"

	room, author, err := CreateMessageRequest{RoomID: roomID}.ParseIDs()
	require.NoError(t, err)
	assert.Equal(t, roomID, room.String())
	assert.Equal(t, uuid.Nil, author)

	_, _, err = CreateMessageRequest{RoomID: roomID, Author: "x"}.ParseIDs()
	assert.Error(t, err)
}
