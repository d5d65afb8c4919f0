package bootstrap

import (
	"net/http"

	httpapi "github.com/i-keeper/club-chatbot/internal/api/http"
	"github.com/i-keeper/club-chatbot/internal/api/http/middleware"
	chathttp "github.com/i-keeper/club-chatbot/internal/chat/http"
	"github.com/i-keeper/club-chatbot/internal/chat/service"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	Model          string
	AllowedOrigins []string
	Chat           *service.ChatService
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RequestIDMiddleware())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Model, dep.Chat)
	healthHandler.RegisterRoutes(r)

	// CORS applies to the chat route only. The OPTIONS route lets preflights
	// reach the CORS middleware, which answers them itself.
	chat := r.Group("", middleware.CORS(dep.AllowedOrigins))
	chat.OPTIONS("/chat", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	chathttp.New(dep.Chat).Register(chat)

	return r
}
