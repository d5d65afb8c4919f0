package llm

import "context"

// Generator turns a single prompt into generated text. Implementations wrap a
// concrete provider so the chat service does not depend on one.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
