// Package gemini implements llm.Generator on top of the Google Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultModel = "gemini-2.5-flash"

var (
	ErrNoCandidates = errors.New("gemini: response has no candidates")
	ErrNoText       = errors.New("gemini: candidate has no text")
)

type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
	name   string
}

// New creates a client authenticated with apiKey. Extra options are passed to
// the SDK after the key.
func New(ctx context.Context, apiKey, model string, opts ...option.ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("gemini: api key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	c, err := genai.NewClient(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	return &Client{
		client: c,
		model:  c.GenerativeModel(model),
		name:   model,
	}, nil
}

// Generate sends prompt as a single text part and returns the reply text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return ReplyText(resp)
}

func (c *Client) Model() string { return c.name }

func (c *Client) Close() error {
	return c.client.Close()
}

// ReplyText joins the text parts of the first candidate.
func ReplyText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		if resp != nil && resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != genai.BlockReasonUnspecified {
			return "", fmt.Errorf("%w: prompt blocked (%v)", ErrNoCandidates, resp.PromptFeedback.BlockReason)
		}
		return "", ErrNoCandidates
	}

	cand := resp.Candidates[0]
	var sb strings.Builder
	if cand != nil && cand.Content != nil {
		for _, p := range cand.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				sb.WriteString(string(t))
			}
		}
	}

	if sb.Len() == 0 {
		if cand != nil && cand.FinishReason != genai.FinishReasonUnspecified {
			return "", fmt.Errorf("%w: finish reason %v", ErrNoText, cand.FinishReason)
		}
		return "", ErrNoText
	}
	return sb.String(), nil
}
