package valueobjects

import (
	"regexp"
	"strings"

	domainerrs "github.com/rafabene/thermit-backend/internal/domain/errors"
)

const (
	UsernameMinLength = 3
	UsernameMaxLength = 50
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9._\-]+$`)

// Username é um value object que garante que nomes de usuário sejam sempre válidos
type Username struct {
	value string
}

// NewUsername cria um novo Username validado
func NewUsername(username string) (Username, error) {
	username = strings.TrimSpace(username)

	if !IsValidUsername(username) {
		return Username{}, domainerrs.ErrInvalidUsername
	}

	return Username{value: username}, nil
}

// String retorna o valor do username
func (u Username) String() string {
	return u.value
}

// IsValidUsername valida tamanho e caracteres permitidos
func IsValidUsername(username string) bool {
	if len(username) < UsernameMinLength || len(username) > UsernameMaxLength {
		return false
	}
	return usernamePattern.MatchString(username)
}
