package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/i-keeper/club-chatbot/internal/chat/domain"
	"github.com/i-keeper/club-chatbot/internal/chat/service"
)

// Handler bundles the dependencies for the chat endpoint.
type Handler struct {
	chatService *service.ChatService
}

func New(chatService *service.ChatService) *Handler {
	return &Handler{chatService: chatService}
}

func (h *Handler) chat(c *gin.Context) {
	ctx := c.Request.Context()

	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		err = fmt.Errorf("decode request: %w", err)
		service.NewLogger(ctx).LogError("chat.decode", err)
		c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.reply(ctx, req)
	if err != nil {
		if errors.Is(err, domain.ErrMessageRequired) {
			c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: err.Error()})
			return
		}
		service.NewLogger(ctx).LogError("chat.reply", err)
		c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// reply converts a panic in the generation path into an error so the caller
// still gets a JSON body.
func (h *Handler) reply(ctx context.Context, req domain.ChatRequest) (resp *domain.ChatResponse, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			resp, err = nil, fmt.Errorf("generation panicked: %v", rec)
		}
	}()
	return h.chatService.Reply(ctx, req)
}
