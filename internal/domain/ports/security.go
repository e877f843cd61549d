package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PasswordHasher gera e verifica hashes lentos com salt
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// TokenIssuer emite e valida tokens de autenticação
type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, error)
	Verify(token string) (uuid.UUID, error)
}

// RateLimiter conta tentativas por chave dentro de uma janela
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}
