package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/rafabene/thermit-backend/internal/handlers/middleware"
	"github.com/rafabene/thermit-backend/internal/infrastructure/i18n"
)

const fallbackLanguage = "en"

// T traduz uma chave do catálogo no idioma da requisição.
// Sem serviço i18n no contexto devolve a própria chave.
// Uso: dto.T(c, "validation.min", map[string]interface{}{"Field": "password", "Param": "8"})
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	service := i18nService(c)
	if service == nil {
		return key
	}
	return service.T(GetLanguage(c), key, params...)
}

// GetLanguage retorna o idioma detectado pelo middleware ou o padrão do catálogo
func GetLanguage(c *gin.Context) string {
	if lang, ok := c.Get(middleware.LanguageContextKey); ok {
		if s, ok := lang.(string); ok && s != "" {
			return s
		}
	}
	if service := i18nService(c); service != nil {
		return service.GetDefaultLanguage()
	}
	return fallbackLanguage
}

func i18nService(c *gin.Context) *i18n.Service {
	value, exists := c.Get(middleware.I18nServiceContextKey)
	if !exists {
		return nil
	}
	service, _ := value.(*i18n.Service)
	return service
}
