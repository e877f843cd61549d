package dto

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/moogar0880/problems"

	"github.com/rafabene/thermit-backend/internal/domain/errors"
)

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs)
type ErrorResponse struct {
	*problems.Problem
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// problemSpec descreve como um erro de domínio vira um problem
type problemSpec struct {
	status      int
	problemType string
	titleKey    string
}

var (
	notFoundProblem     = problemSpec{http.StatusNotFound, errors.ProblemTypeNotFound, "problem.not_found"}
	conflictProblem     = problemSpec{http.StatusConflict, errors.ProblemTypeConflict, "problem.conflict"}
	forbiddenProblem    = problemSpec{http.StatusForbidden, errors.ProblemTypeForbidden, "problem.forbidden"}
	unauthorizedProblem = problemSpec{http.StatusUnauthorized, errors.ProblemTypeUnauthorized, "problem.unauthorized"}
	tooManyProblem      = problemSpec{http.StatusTooManyRequests, errors.ProblemTypeTooManyRequests, "problem.too_many_requests"}
	validationProblem   = problemSpec{http.StatusBadRequest, errors.ProblemTypeValidation, "problem.validation"}
	badRequestProblem   = problemSpec{http.StatusBadRequest, errors.ProblemTypeBadRequest, "problem.bad_request"}
	internalProblem     = problemSpec{http.StatusInternalServerError, errors.ProblemTypeInternal, "problem.internal"}
)

// errorTable é percorrida em ordem; os erros mais específicos vêm primeiro
var errorTable = []struct {
	err  error
	spec problemSpec
}{
	{errors.ErrUserNotFound, notFoundProblem},
	{errors.ErrRoomNotFound, notFoundProblem},
	{errors.ErrMessageNotFound, notFoundProblem},
	{errors.ErrNotFound, notFoundProblem},
	{errors.ErrUsernameTaken, conflictProblem},
	{errors.ErrIncorrectPassword, forbiddenProblem},
	{errors.ErrForbidden, forbiddenProblem},
	{errors.ErrUnauthorized, unauthorizedProblem},
	{errors.ErrTooManyRequests, tooManyProblem},
	{errors.ErrInvalidUsername, validationProblem},
	{errors.ErrInvalidPassword, validationProblem},
	{errors.ErrInvalidContent, validationProblem},
	{errors.ErrGeneric, internalProblem},
	{errors.ErrInternal, internalProblem},
}

// NewErrorResponseI18n cria uma resposta de erro usando i18n
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	problem := problems.NewDetailedProblem(status, T(c, detailKey, params...))
	problem.Type = baseURL + problemType
	problem.Title = T(c, titleKey)
	problem.Instance = c.Request.URL.Path

	return ErrorResponse{Problem: problem}
}

// StatusFor devolve o status HTTP correspondente a um erro de domínio
func StatusFor(err error) int {
	return lookup(err).status
}

func lookup(err error) problemSpec {
	for _, entry := range errorTable {
		if errs.Is(err, entry.err) {
			return entry.spec
		}
	}
	return internalProblem
}

// detailKeyFor usa o próprio erro sentinela como chave do catálogo
func detailKeyFor(err error) string {
	for _, entry := range errorTable {
		if errs.Is(err, entry.err) {
			if entry.spec.status == http.StatusInternalServerError {
				return errors.ErrInternal.Error()
			}
			return entry.err.Error()
		}
	}
	return errors.ErrInternal.Error()
}

// ErrorResponseFor converte um erro de domínio em problem traduzido
func ErrorResponseFor(c *gin.Context, err error) ErrorResponse {
	spec := lookup(err)
	return NewErrorResponseI18n(c, spec.problemType, spec.titleKey, detailKeyFor(err), spec.status)
}

// WriteError escreve a resposta RFC 7807 para o erro
func WriteError(c *gin.Context, err error) {
	_ = c.Error(err)

	response := ErrorResponseFor(c, err)
	writeProblem(c, response)
}

// AbortWithError escreve o problem e interrompe a cadeia de handlers
func AbortWithError(c *gin.Context, err error) {
	WriteError(c, err)
	c.Abort()
}

// BadRequest responde 400 com uma chave de detalhe do catálogo
func BadRequest(c *gin.Context, detailKey string, params ...map[string]interface{}) {
	response := NewErrorResponseI18n(c, badRequestProblem.problemType, badRequestProblem.titleKey, detailKey, http.StatusBadRequest, params...)
	writeProblem(c, response)
}

// BindError traduz a falha de ShouldBindJSON em resposta 400
func BindError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if !errs.As(err, &validationErrs) {
		BadRequest(c, "error.invalid_body")
		return
	}

	response := NewErrorResponseI18n(c, validationProblem.problemType, validationProblem.titleKey, "error.validation", http.StatusBadRequest)
	response.Errors = ToValidationErrors(c, validationErrs)
	writeProblem(c, response)
}

// ToValidationErrors traduz os erros do validator campo a campo
func ToValidationErrors(c *gin.Context, validationErrs validator.ValidationErrors) []ValidationError {
	out := make([]ValidationError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		key := "validation." + fe.Tag()
		params := map[string]interface{}{"Field": fe.Field(), "Param": fe.Param()}

		message := T(c, key, params)
		if message == key {
			message = T(c, "validation.default", params)
		}

		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: message,
			Tag:     fe.Tag(),
		})
	}
	return out
}

func writeProblem(c *gin.Context, response ErrorResponse) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.JSON(response.Status, response)
}
