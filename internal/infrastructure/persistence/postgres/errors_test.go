package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domainerrs "github.com/rafabene/thermit-backend/internal/domain/errors"
)

func newMockedGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:               logger.Default.LogMode(logger.Silent),
		DisableAutomaticPing: true,
	})
	if err != nil {
		t.Fatalf("gorm.Open error: %v", err)
	}
	return db, mock
}

func TestMapError_StorageFailures(t *testing.T) {
	t.Run("falha genérica vira ErrGeneric", func(t *testing.T) {
		db, mock := newMockedGorm(t)
		repo := NewRoomRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "rooms"`)).
			WillReturnError(errors.New("db down"))

		_, err := repo.FindByID(context.Background(), uuid.New())
		if !errors.Is(err, domainerrs.ErrGeneric) {
			t.Fatalf("esperava ErrGeneric, obteve %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("expectativas não atendidas: %v", err)
		}
	})

	t.Run("context cancelado vira ErrInternal", func(t *testing.T) {
		db, mock := newMockedGorm(t)
		repo := NewUserRepository(db)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
			WillReturnError(context.Canceled)

		_, err := repo.Exists(context.Background(), uuid.New())
		if !errors.Is(err, domainerrs.ErrInternal) {
			t.Fatalf("esperava ErrInternal, obteve %v", err)
		}
	})
}

func TestMapError(t *testing.T) {
	if mapError("op", nil) != nil {
		t.Error("nil deveria permanecer nil")
	}

	err := mapError("op", context.DeadlineExceeded)
	if !errors.Is(err, domainerrs.ErrInternal) || !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("erro deveria preservar ErrInternal e a causa: %v", err)
	}
}
