package valueobjects

import (
	domainerrs "github.com/rafabene/thermit-backend/internal/domain/errors"
)

const (
	PasswordMinLength = 8
	// bcrypt ignora bytes além de 72
	PasswordMaxLength = 72
)

// ValidatePassword valida a senha em texto claro antes do hash
func ValidatePassword(password string) error {
	if len(password) < PasswordMinLength || len(password) > PasswordMaxLength {
		return domainerrs.ErrInvalidPassword
	}
	return nil
}
