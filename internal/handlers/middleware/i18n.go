package middleware

import (
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/thermit-backend/internal/infrastructure/i18n"
)

const (
	// LanguageContextKey é a chave usada para armazenar o idioma no contexto do Gin
	LanguageContextKey = "language"
	// I18nServiceContextKey é a chave usada para armazenar o serviço i18n no contexto
	I18nServiceContextKey = "i18n_service"
)

// I18nMiddleware gerencia a detecção de idioma nas requisições
type I18nMiddleware struct {
	i18nService *i18n.Service
	// byBase mapeia o idioma base para a primeira variante regional suportada (pt -> pt-BR)
	byBase map[string]string
}

// NewI18nMiddleware cria um novo middleware de i18n
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	langs := i18nService.GetSupportedLanguages()
	sort.Strings(langs)

	byBase := make(map[string]string, len(langs))
	for _, lang := range langs {
		base, _, _ := strings.Cut(lang, "-")
		base = strings.ToLower(base)
		if _, ok := byBase[base]; !ok {
			byBase[base] = lang
		}
	}

	return &I18nMiddleware{
		i18nService: i18nService,
		byBase:      byBase,
	}
}

// DetectLanguage detecta e configura o idioma da requisição
// Prioridade:
// 1. Query parameter ?lang=pt-BR (override explícito)
// 2. Accept-Language header
// 3. Idioma padrão (fallback)
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		var lang string

		if queryLang := c.Query("lang"); queryLang != "" {
			lang = m.resolve(queryLang)
		}

		if lang == "" {
			lang = m.parseAcceptLanguage(c.GetHeader("Accept-Language"))
		}

		if lang == "" {
			lang = m.i18nService.GetDefaultLanguage()
		}

		c.Set(LanguageContextKey, lang)
		c.Set(I18nServiceContextKey, m.i18nService)
		c.Header("Content-Language", lang)

		c.Next()
	}
}

// parseAcceptLanguage analisa o header Accept-Language e retorna o primeiro idioma suportado
// Exemplo: "pt-BR,pt;q=0.9,en-US;q=0.8,en;q=0.7" -> "pt-BR"
func (m *I18nMiddleware) parseAcceptLanguage(acceptLang string) string {
	if acceptLang == "" {
		return ""
	}

	for _, lang := range strings.Split(acceptLang, ",") {
		lang, _, _ = strings.Cut(strings.TrimSpace(lang), ";")
		if resolved := m.resolve(lang); resolved != "" {
			return resolved
		}
	}

	return ""
}

// resolve tenta o idioma exato e depois a variante do idioma base
func (m *I18nMiddleware) resolve(lang string) string {
	if lang == "" || lang == "*" {
		return ""
	}
	if m.i18nService.IsLanguageSupported(lang) {
		return lang
	}

	base, _, _ := strings.Cut(lang, "-")
	return m.byBase[strings.ToLower(base)]
}
