package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-todo-api/pkg/response"
)

type HealthHandler struct {
	DB     *sql.DB // nil with the memory driver
	Logger *logrus.Logger
}

func NewHealthHandler(db *sql.DB, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{DB: db, Logger: logger}
}

// Root GET /
func (h *HealthHandler) Root(c *gin.Context) {
	response.JSON(c, http.StatusOK, response.Message{Message: "Todo API is running!"})
}

// Health GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	if h.DB != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.DB.PingContext(ctx); err != nil {
			h.Logger.WithError(err).Warn("health check: database unreachable")
			response.JSON(c, http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
	}
	response.JSON(c, http.StatusOK, gin.H{"status": "healthy"})
}
