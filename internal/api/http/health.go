package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/i-keeper/club-chatbot/internal/chat/reference"
	"github.com/i-keeper/club-chatbot/internal/chat/service"
)

type HealthResponse struct {
	Status     string           `json:"status"`
	Timestamp  time.Time        `json:"timestamp"`
	Service    string           `json:"service"`
	Version    string           `json:"version"`
	Model      string           `json:"model"`
	Reference  reference.Info   `json:"reference"`
	Generation service.Snapshot `json:"generation"`
}

type HealthHandler struct {
	serviceName string
	version     string
	model       string
	chat        *service.ChatService
}

func NewHealthHandler(serviceName, version, model string, chat *service.ChatService) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		model:       model,
		chat:        chat,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:     "healthy",
		Timestamp:  time.Now().UTC(),
		Service:    h.serviceName,
		Version:    h.version,
		Model:      h.model,
		Reference:  h.chat.Reference(),
		Generation: h.chat.Metrics(),
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
