// Package llmtest provides an in-memory llm.Generator for tests.
package llmtest

import (
	"context"
	"sync"
)

// Fake returns Reply or Err and records every prompt it receives.
type Fake struct {
	Reply string
	Err   error
	Panic any

	mu      sync.Mutex
	prompts []string
}

func (f *Fake) Generate(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()

	if f.Panic != nil {
		panic(f.Panic)
	}
	if f.Err != nil {
		return "", f.Err
	}
	return f.Reply, nil
}

// Prompts returns a copy of the prompts received so far.
func (f *Fake) Prompts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prompts...)
}

func (f *Fake) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}
