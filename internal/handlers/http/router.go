package http

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/thermit-backend/docs" // registra a especificação swagger

	"github.com/rafabene/thermit-backend/internal/domain/ports"
	"github.com/rafabene/thermit-backend/internal/handlers/dto"
	"github.com/rafabene/thermit-backend/internal/handlers/middleware"
	"github.com/rafabene/thermit-backend/internal/infrastructure/i18n"
)

// RouterConfig contém os parâmetros de roteamento vindos da configuração
type RouterConfig struct {
	Env            string
	BaseURL        string
	AllowedOrigins string
	AuthRequired   bool
	AuthRateLimit  int
	AuthRateWindow time.Duration
}

// RouterDeps agrupa handlers e colaboradores do roteador
type RouterDeps struct {
	Rooms    *RoomHandler
	Users    *UserHandler
	Messages *MessageHandler
	Auth     *AuthHandler
	Stream   *StreamHandler
	Health   *HealthHandler

	I18n    *i18n.Service
	Tokens  middleware.TokenVerifier
	Limiter ports.RateLimiter
	Logger  ports.Logger
}

// NewRouter monta o engine do Gin com middlewares e rotas em /api/v1
func NewRouter(cfg RouterConfig, deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(deps.Logger))

	// Base URL usada nos URIs RFC 7807
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.BaseURL)
		c.Next()
	})

	router.Use(middleware.NewI18nMiddleware(deps.I18n).DetectLanguage())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	router.GET("/health", deps.Health.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Token é sempre validado quando enviado; exigido em escrita se AuthRequired
	optionalAuth := middleware.Auth(deps.Tokens, false, dto.AbortWithError)
	writeAuth := middleware.Auth(deps.Tokens, cfg.AuthRequired, dto.AbortWithError)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth",
			middleware.RateLimit(deps.Limiter, "auth", cfg.AuthRateLimit, cfg.AuthRateWindow, deps.Logger, dto.AbortWithError),
			deps.Auth.Authenticate,
		)

		rooms := v1.Group("/rooms")
		{
			rooms.GET("", optionalAuth, deps.Rooms.ListRooms)
			rooms.GET("/:id", optionalAuth, deps.Rooms.GetRoom)
			rooms.POST("", writeAuth, deps.Rooms.CreateRoom)
			rooms.PUT("/:id", writeAuth, deps.Rooms.UpdateRoom)
			rooms.DELETE("/:id", writeAuth, deps.Rooms.DeleteRoom)

			rooms.GET("/:id/users", optionalAuth, deps.Rooms.ListUsers)
			rooms.POST("/:id/users", writeAuth, deps.Rooms.AddUser)
			rooms.DELETE("/:id/users/:user_id", writeAuth, deps.Rooms.RemoveUser)

			rooms.GET("/:id/messages", optionalAuth, deps.Messages.ListRoomMessages)
			rooms.GET("/:id/ws", deps.Stream.Subscribe)
		}

		users := v1.Group("/users")
		{
			users.POST("", deps.Users.CreateUser)
			users.GET("", optionalAuth, deps.Users.ListUsers)
			users.GET("/:id", optionalAuth, deps.Users.GetUser)
			users.PUT("/:id", writeAuth, deps.Users.UpdateUser)
			users.DELETE("/:id", writeAuth, deps.Users.DeleteUser)
		}

		messages := v1.Group("/messages")
		{
			messages.POST("", writeAuth, deps.Messages.CreateMessage)
			messages.GET("/:id", optionalAuth, deps.Messages.GetMessage)
			messages.PUT("/:id", writeAuth, deps.Messages.UpdateMessage)
			messages.DELETE("/:id", writeAuth, deps.Messages.DeleteMessage)
		}
	}

	return router
}
