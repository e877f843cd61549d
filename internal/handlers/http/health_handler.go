package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/thermit-backend/internal/handlers/dto"
)

// Pinger verifica a conectividade com o banco
type Pinger func(ctx context.Context) error

// HealthHandler expõe o estado do serviço
type HealthHandler struct {
	ping Pinger
	env  string
}

// NewHealthHandler cria um HealthHandler; ping pode ser nil
func NewHealthHandler(ping Pinger, env string) *HealthHandler {
	return &HealthHandler{ping: ping, env: env}
}

// Health responde 200 quando o banco responde e 503 caso contrário
//
//	@Summary	Health check
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	dto.HealthResponse
//	@Failure	503	{object}	dto.HealthResponse
//	@Router		/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := dto.HealthResponse{Status: "ok", Env: h.env, Database: "up"}

	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := h.ping(ctx); err != nil {
			response.Status = "degraded"
			response.Database = "down"
			c.JSON(http.StatusServiceUnavailable, response)
			return
		}
	}

	c.JSON(http.StatusOK, response)
}
