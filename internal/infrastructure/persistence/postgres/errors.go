package postgres

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domainerrs "github.com/rafabene/thermit-backend/internal/domain/errors"
)

// mapError converte erros do GORM/driver nos erros de domínio.
// O erro original continua acessível via errors.Is/As.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, driver.ErrBadConn):
		return fmt.Errorf("%s: %w: %w", op, domainerrs.ErrInternal, err)
	default:
		return fmt.Errorf("%s: %w: %w", op, domainerrs.ErrGeneric, err)
	}
}

func isDuplicatedKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
