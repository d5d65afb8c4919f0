package service

import (
	"context"
	"errors"
	"testing"

	"github.com/i-keeper/club-chatbot/internal/chat/domain"
	"github.com/i-keeper/club-chatbot/internal/chat/prompt"
	"github.com/i-keeper/club-chatbot/internal/chat/reference"
	"github.com/i-keeper/club-chatbot/internal/llm/llmtest"
	"github.com/i-keeper/club-chatbot/internal/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const clubInfo = "i-Keeper is the information security club.\nDues: 20,000 KRW per semester."

func newService(t *testing.T, gen *llmtest.Fake) *ChatService {
	t.Helper()
	doc, err := reference.New("club_info.txt", clubInfo)
	require.NoError(t, err)
	return NewChatService(gen, doc, prompt.Default())
}

func TestReply_Success(t *testing.T) {
	gen := &llmtest.Fake{Reply: "Dues are 20,000 KRW."}
	svc := newService(t, gen)

	resp, err := svc.Reply(context.Background(), domain.ChatRequest{Message: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "Dues are 20,000 KRW.", resp.Reply)

	prompts := gen.Prompts()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "hello")
	assert.Contains(t, prompts[0], clubInfo)
}

func TestReply_BlankMessage(t *testing.T) {
	gen := &llmtest.Fake{Reply: "unused"}
	svc := newService(t, gen)

	for _, msg := range []string{"", "   "} {
		_, err := svc.Reply(context.Background(), domain.ChatRequest{Message: msg})
		assert.ErrorIs(t, err, domain.ErrMessageRequired)
	}
	assert.Equal(t, 0, gen.Calls())
	assert.Equal(t, int64(0), svc.Metrics().Calls)
}

func TestReply_GeneratorError(t *testing.T) {
	boom := errors.New("quota exceeded")
	svc := newService(t, &llmtest.Fake{Err: boom})

	ctx := requestid.With(context.Background(), "rid-1")
	resp, err := svc.Reply(ctx, domain.ChatRequest{Message: "hello"})
	assert.Nil(t, resp)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestReply_SameReferenceAcrossRequests(t *testing.T) {
	gen := &llmtest.Fake{Reply: "ok"}
	svc := newService(t, gen)

	for _, msg := range []string{"first", "second", "third"} {
		_, err := svc.Reply(context.Background(), domain.ChatRequest{Message: msg})
		require.NoError(t, err)
	}

	for _, p := range gen.Prompts() {
		assert.Contains(t, p, clubInfo)
	}
	assert.Equal(t, reference.Info{Source: "club_info.txt", Bytes: len(clubInfo)}, svc.Reference())
}

func TestMetrics(t *testing.T) {
	gen := &llmtest.Fake{Reply: "ok"}
	svc := newService(t, gen)

	_, err := svc.Reply(context.Background(), domain.ChatRequest{Message: "a"})
	require.NoError(t, err)

	gen.Err = errors.New("down")
	_, err = svc.Reply(context.Background(), domain.ChatRequest{Message: "b"})
	require.Error(t, err)

	snap := svc.Metrics()
	assert.Equal(t, int64(2), snap.Calls)
	assert.Equal(t, int64(1), snap.Errors)
	assert.InDelta(t, 50.0, snap.ErrorRate, 0.001)
	assert.GreaterOrEqual(t, snap.AvgLatencyMs, 0.0)
}

func TestMetrics_Empty(t *testing.T) {
	var m Metrics
	assert.Equal(t, Snapshot{}, m.Snapshot())
}
