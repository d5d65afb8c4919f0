package http

import "github.com/gin-gonic/gin"

// Register attaches the chat route to the given router.
func (h *Handler) Register(r gin.IRouter) {
	r.POST("/chat", h.chat)
}
