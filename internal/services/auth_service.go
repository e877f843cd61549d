package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/rafabene/thermit-backend/internal/domain/errors"
	"github.com/rafabene/thermit-backend/internal/domain/ports"
	"github.com/rafabene/thermit-backend/internal/domain/repositories"
)

// AuthService autentica usuários e emite tokens
type AuthService struct {
	userRepo repositories.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenIssuer
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger.With("service", "auth"),
	}
}

// Authenticate confere as credenciais e retorna um token de acesso.
// Username desconhecido e senha incorreta são erros distintos.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		s.logger.Warn("authentication failed", "reason", "user_not_found")
		return "", errors.ErrUserNotFound
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		s.logger.Warn("authentication failed", "reason", "incorrect_password", "user_id", user.ID)
		return "", errors.ErrIncorrectPassword
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.logger.Error("failed to issue token", "user_id", user.ID, "error", err)
		return "", errors.Wrap(errors.ErrInternal, "issue token")
	}

	s.logger.Info("user authenticated", "user_id", user.ID)
	return token, nil
}

// VerifyToken valida o token e retorna o id do usuário
func (s *AuthService) VerifyToken(token string) (uuid.UUID, error) {
	return s.tokens.Verify(token)
}
