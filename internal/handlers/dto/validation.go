package dto

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/rafabene/thermit-backend/internal/domain/valueobjects"
)

// RegisterValidators registra as validações customizadas no engine do Gin.
// Nomes de campo passam a seguir a tag json.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	if err := v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return valueobjects.IsValidUsername(fl.Field().String())
	}); err != nil {
		return err
	}

	// A tag uuid embutida só aceita minúsculas; o corpo segue a mesma regra dos parâmetros de rota
	return v.RegisterValidation("uuid", func(fl validator.FieldLevel) bool {
		_, err := uuid.Parse(fl.Field().String())
		return err == nil
	})
}
