package service

import (
	"context"
	"fmt"
	"time"

	"github.com/i-keeper/club-chatbot/internal/chat/domain"
	"github.com/i-keeper/club-chatbot/internal/chat/prompt"
	"github.com/i-keeper/club-chatbot/internal/chat/reference"
	"github.com/i-keeper/club-chatbot/internal/llm"
)

// ChatService answers questions about the club from the reference document.
type ChatService struct {
	gen      llm.Generator
	doc      reference.Document
	template prompt.Template
	metrics  Metrics
}

// NewChatService creates a new chat service
func NewChatService(gen llm.Generator, doc reference.Document, template prompt.Template) *ChatService {
	return &ChatService{
		gen:      gen,
		doc:      doc,
		template: template,
	}
}

// Reply validates req, builds the prompt and asks the generator for an answer.
// A blank message yields domain.ErrMessageRequired without calling the generator.
func (s *ChatService) Reply(ctx context.Context, req domain.ChatRequest) (*domain.ChatResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := s.template.Build(s.doc.Text(), req.Message)

	start := time.Now()
	text, err := s.gen.Generate(ctx, p)
	elapsed := time.Since(start)
	s.metrics.record(elapsed, err)
	if err != nil {
		return nil, fmt.Errorf("generate reply: %w", err)
	}

	NewLogger(ctx).LogInfof("chat.reply", "prompt_bytes=%d reply_bytes=%d latency=%s", len(p), len(text), elapsed)
	return &domain.ChatResponse{Reply: text}, nil
}

func (s *ChatService) Reference() reference.Info { return s.doc.Info() }

func (s *ChatService) Metrics() Snapshot { return s.metrics.Snapshot() }
