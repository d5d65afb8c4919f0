package domain

import (
	"errors"
	"strings"
)

var ErrMessageRequired = errors.New("message is required")

type ChatRequest struct {
	Message string `json:"message"`
}

// Validate reports ErrMessageRequired when the message is missing or blank.
func (r ChatRequest) Validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return ErrMessageRequired
	}
	return nil
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
