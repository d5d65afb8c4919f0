package service

import (
	"context"
	"log"

	"github.com/i-keeper/club-chatbot/internal/requestid"
)

// Logger writes request-scoped log lines.
type Logger struct {
	requestID string
}

// NewLogger picks up the request ID set by the middleware, if any.
func NewLogger(ctx context.Context) *Logger {
	rid := requestid.From(ctx)
	if rid == "" {
		rid = "unknown"
	}
	return &Logger{requestID: rid}
}

func (l *Logger) LogError(operation string, err error) {
	log.Printf("[error] request_id=%s operation=%s error=%v", l.requestID, operation, err)
}

func (l *Logger) LogInfof(operation string, format string, args ...interface{}) {
	log.Printf("[info] request_id=%s operation=%s "+format, append([]interface{}{l.requestID, operation}, args...)...)
}
