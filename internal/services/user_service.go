package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/rafabene/thermit-backend/internal/domain/entities"
	"github.com/rafabene/thermit-backend/internal/domain/errors"
	"github.com/rafabene/thermit-backend/internal/domain/ports"
	"github.com/rafabene/thermit-backend/internal/domain/repositories"
	"github.com/rafabene/thermit-backend/internal/domain/valueobjects"
)

// UserService contém a lógica de negócio para usuários
type UserService struct {
	userRepo    repositories.UserRepository
	roomRepo    repositories.RoomRepository
	messageRepo repositories.MessageRepository
	uow         ports.UnitOfWork
	hasher      ports.PasswordHasher
	logger      ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	roomRepo repositories.RoomRepository,
	messageRepo repositories.MessageRepository,
	uow ports.UnitOfWork,
	hasher ports.PasswordHasher,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		roomRepo:    roomRepo,
		messageRepo: messageRepo,
		uow:         uow,
		hasher:      hasher,
		logger:      logger.With("service", "users"),
	}
}

// CreateUserInput representa os dados para criar um usuário
type CreateUserInput struct {
	Username string
	Password string
}

// CreateUser valida, verifica unicidade do username e grava o hash da senha
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*entities.User, error) {
	username, err := valueobjects.NewUsername(input.Username)
	if err != nil {
		return nil, err
	}
	if err := valueobjects.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	s.logger.Info("creating user", "username", username.String())

	existing, err := s.userRepo.FindByUsername(ctx, username.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrUsernameTaken
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, errors.Wrap(errors.ErrInternal, "hash password")
	}

	user := &entities.User{Username: username, PasswordHash: hash}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user created", "user_id", user.ID)
	return user, nil
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// ListUsers lista usuários com filtros
func (s *UserService) ListUsers(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	return s.userRepo.List(ctx, filters)
}

// UpdateUser aplica uma atualização parcial; campos vazios mantêm o valor atual
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, patch entities.UserPatch) (*entities.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return user, nil
	}

	if patch.Username != "" {
		username, err := valueobjects.NewUsername(patch.Username)
		if err != nil {
			return nil, err
		}
		if username.String() != user.Username.String() {
			existing, err := s.userRepo.FindByUsername(ctx, username.String())
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, errors.ErrUsernameTaken
			}
		}
		user.Username = username
	}

	if patch.Password != "" {
		if err := valueobjects.ValidatePassword(patch.Password); err != nil {
			return nil, err
		}
		hash, err := s.hasher.Hash(patch.Password)
		if err != nil {
			s.logger.Error("failed to hash password", "error", err)
			return nil, errors.Wrap(errors.ErrInternal, "hash password")
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user updated", "user_id", user.ID)
	return user, nil
}

// DeleteUser remove as associações e mensagens do usuário e depois o próprio usuário.
// Retorna o número de usuários removidos (0 quando não existe).
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) (int64, error) {
	var deleted int64

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		memberships, err := s.roomRepo.DeleteMembershipsOfUser(txCtx, id)
		if err != nil {
			return err
		}
		messages, err := s.messageRepo.DeleteByAuthor(txCtx, id)
		if err != nil {
			return err
		}

		deleted, err = s.userRepo.Delete(txCtx, id)
		if err != nil {
			return err
		}

		s.logger.Info("user deleted",
			"user_id", id,
			"deleted", deleted,
			"memberships_removed", memberships,
			"messages_removed", messages,
		)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return deleted, nil
}
