package errors

import "errors"

// Erros de negócio
// Nota: estes valores são também message IDs do catálogo i18n
// (internal/infrastructure/i18n/locales/*.json).
var (
	ErrNotFound          = errors.New("error.not_found")
	ErrUserNotFound      = errors.New("error.user_not_found")
	ErrRoomNotFound      = errors.New("error.room_not_found")
	ErrMessageNotFound   = errors.New("error.message_not_found")
	ErrUsernameTaken     = errors.New("error.username_taken")
	ErrIncorrectPassword = errors.New("error.incorrect_password")
	ErrUnauthorized      = errors.New("error.unauthorized")
	ErrForbidden         = errors.New("error.forbidden")
	ErrTooManyRequests   = errors.New("error.too_many_requests")
)

// Erros de armazenamento
var (
	ErrInternal = errors.New("error.internal")
	ErrGeneric  = errors.New("error.generic")
)

// Erros de validação de domínio
var (
	ErrInvalidUsername = errors.New("error.invalid_username")
	ErrInvalidPassword = errors.New("error.invalid_password")
	ErrInvalidContent  = errors.New("error.invalid_content")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: o domínio base vem da configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation      = "/problems/validation-error"
	ProblemTypeNotFound        = "/problems/not-found"
	ProblemTypeConflict        = "/problems/conflict"
	ProblemTypeUnauthorized    = "/problems/unauthorized"
	ProblemTypeForbidden       = "/problems/forbidden"
	ProblemTypeTooManyRequests = "/problems/too-many-requests"
	ProblemTypeInternal        = "/problems/internal-error"
	ProblemTypeBadRequest      = "/problems/bad-request"
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Wrap anexa uma mensagem a um erro sentinela preservando errors.Is
func Wrap(err error, message string) error {
	return &DomainError{Message: message, Err: err}
}
