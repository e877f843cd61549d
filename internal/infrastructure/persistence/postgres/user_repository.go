package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rafabene/thermit-backend/internal/domain/entities"
	domainerrs "github.com/rafabene/thermit-backend/internal/domain/errors"
	"github.com/rafabene/thermit-backend/internal/domain/repositories"
	"github.com/rafabene/thermit-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	model := r.toModel(user)

	if err := dbFromContext(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicatedKey(err) {
			return fmt.Errorf("create user: %w", domainerrs.ErrUsernameTaken)
		}
		return mapError("create user", err)
	}

	user.ID = model.ID
	user.CreatedAt = model.CreatedAt
	user.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var model UserModel

	if err := dbFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, mapError("find user", err)
	}

	return r.toEntity(&model)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	var model UserModel

	if err := dbFromContext(ctx, r.db).Where("username = ?", username).First(&model).Error; err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, mapError("find user by username", err)
	}

	return r.toEntity(&model)
}

func (r *UserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64

	err := dbFromContext(ctx, r.db).Model(&UserModel{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, mapError("check user", err)
	}

	return count > 0, nil
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	now := time.Now().UTC()

	result := dbFromContext(ctx, r.db).Model(&UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"username": user.Username.String(),
			"password": user.PasswordHash,
			"updated":  now,
		})
	if result.Error != nil {
		if isDuplicatedKey(result.Error) {
			return fmt.Errorf("update user: %w", domainerrs.ErrUsernameTaken)
		}
		return mapError("update user", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrs.ErrUserNotFound
	}

	user.UpdatedAt = now
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := dbFromContext(ctx, r.db).Where("id = ?", id).Delete(&UserModel{})
	if result.Error != nil {
		return 0, mapError("delete user", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *UserRepository) List(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	var models []*UserModel

	query := dbFromContext(ctx, r.db).Model(&UserModel{}).Order("created ASC")

	// Paginação
	page := filters.Page
	if page < 1 {
		page = 1
	}
	pageSize := filters.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	offset := (page - 1) * pageSize
	query = query.Limit(pageSize).Offset(offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, mapError("list users", err)
	}

	return r.toEntities(models)
}

// Conversores
func (r *UserRepository) toModel(user *entities.User) *UserModel {
	return &UserModel{
		ID:        user.ID,
		Username:  user.Username.String(),
		Password:  user.PasswordHash,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func (r *UserRepository) toEntity(model *UserModel) (*entities.User, error) {
	username, err := valueobjects.NewUsername(model.Username)
	if err != nil {
		return nil, err
	}

	return &entities.User{
		ID:           model.ID,
		Username:     username,
		PasswordHash: model.Password,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}, nil
}

func (r *UserRepository) toEntities(models []*UserModel) ([]*entities.User, error) {
	users := make([]*entities.User, 0, len(models))

	for _, model := range models {
		user, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}
