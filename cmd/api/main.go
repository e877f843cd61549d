//	@title			Thermit Chat API
//	@version		1.0
//	@description	Backend de chat: usuários, salas, membros e mensagens.
//	@BasePath		/api/v1
package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/thermit-backend/internal/domain/ports"
	"github.com/rafabene/thermit-backend/internal/handlers/dto"
	httphandlers "github.com/rafabene/thermit-backend/internal/handlers/http"
	"github.com/rafabene/thermit-backend/internal/handlers/middleware"
	"github.com/rafabene/thermit-backend/internal/infrastructure/cache"
	"github.com/rafabene/thermit-backend/internal/infrastructure/config"
	"github.com/rafabene/thermit-backend/internal/infrastructure/i18n"
	"github.com/rafabene/thermit-backend/internal/infrastructure/logging"
	"github.com/rafabene/thermit-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/thermit-backend/internal/infrastructure/realtime"
	"github.com/rafabene/thermit-backend/internal/infrastructure/security"
	"github.com/rafabene/thermit-backend/internal/services"
)

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting thermit backend",
		"env", cfg.Env,
		"version", "dev",
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, cfg.Logging.Level, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("failed to get sql.DB", "error", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if cfg.Database.RunMigrations {
		if err := postgres.RunMigrations(ctx, db); err != nil {
			logger.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		logger.Info("migrations applied")
	}

	// Inicializar i18n
	i18nService, err := i18n.NewEmbeddedService(cfg.I18n.DefaultLanguage)
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		os.Exit(1)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	if err := dto.RegisterValidators(); err != nil {
		logger.Error("failed to register validators", "error", err)
		os.Exit(1)
	}

	limiter := newRateLimiter(ctx, cfg, logger)

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	roomRepo := postgres.NewRoomRepository(db)
	messageRepo := postgres.NewMessageRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Segurança
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokens := security.NewJWTIssuer(jwtSecret(cfg, logger), cfg.JWT.Issuer, cfg.JWT.AccessExpiry)

	hub := realtime.NewHub(logger)

	// Inicializar services
	userService := services.NewUserService(userRepo, roomRepo, messageRepo, uow, hasher, logger)
	roomService := services.NewRoomService(roomRepo, userRepo, messageRepo, uow, logger)
	messageService := services.NewMessageService(messageRepo, roomRepo, userRepo, hub, logger)
	authService := services.NewAuthService(userRepo, hasher, tokens, logger)

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httphandlers.NewRouter(
		httphandlers.RouterConfig{
			Env:            cfg.Env,
			BaseURL:        cfg.Server.BaseURL,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			AuthRequired:   cfg.Auth.Required,
			AuthRateLimit:  cfg.RateLimit.AuthAttempts,
			AuthRateWindow: cfg.RateLimit.Window,
		},
		httphandlers.RouterDeps{
			Rooms:    httphandlers.NewRoomHandler(roomService),
			Users:    httphandlers.NewUserHandler(userService),
			Messages: httphandlers.NewMessageHandler(messageService),
			Auth:     httphandlers.NewAuthHandler(authService),
			Stream:   httphandlers.NewStreamHandler(roomService, hub, middleware.ParseOrigins(cfg.CORS.AllowedOrigins), logger),
			Health:   httphandlers.NewHealthHandler(sqlDB.PingContext, cfg.Env),
			I18n:     i18nService,
			Tokens:   authService,
			Limiter:  limiter,
			Logger:   logger,
		},
	)

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

// newRateLimiter usa Redis quando REDIS_ADDR está definido; sem Redis o limite fica desativado
func newRateLimiter(ctx context.Context, cfg *config.Config, logger ports.Logger) ports.RateLimiter {
	if cfg.Redis.Addr == "" {
		logger.Warn("REDIS_ADDR not set, auth rate limiting disabled")
		return cache.NoopRateLimiter{}
	}

	client, err := cache.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Error("failed to connect to redis, auth rate limiting disabled", "error", err)
		return cache.NoopRateLimiter{}
	}

	logger.Info("redis connected", "addr", cfg.Redis.Addr)
	return cache.NewRedisRateLimiter(client, logger)
}

// jwtSecret gera um segredo efêmero fora de produção quando JWT_SECRET não foi definido
func jwtSecret(cfg *config.Config, logger ports.Logger) string {
	if cfg.JWT.Secret != "" {
		return cfg.JWT.Secret
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		logger.Error("failed to generate jwt secret", "error", err)
		os.Exit(1)
	}
	logger.Warn("JWT_SECRET not set, using an ephemeral secret; tokens will not survive restarts")
	return hex.EncodeToString(buf)
}
