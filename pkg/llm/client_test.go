package llm_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardigan-project/cardigan/pkg/config"
	"github.com/cardigan-project/cardigan/pkg/llm"
	_ "github.com/cardigan-project/cardigan/pkg/llm/providers"
)

const okResponse = `{
	"id": "chatcmpl-1",
	"model": "gpt-4o-mini",
	"choices": [{"index": 0, "message": {"role": "assistant", "content": "analysis complete"}, "finish_reason": "stop"}],
	"usage": {"prompt_tokens": 1000, "completion_tokens": 500, "total_tokens": 1500}
}`

func newTestClient(t *testing.T, serverURL string, safety *config.SafetyConfig) *llm.Client {
	t.Helper()

	providers := config.NewLLMProviderRegistry(map[string]*config.LLMProviderConfig{
		"test-openai": {
			Type:            config.LLMProviderTypeOpenAI,
			Model:           "gpt-4o-mini",
			BaseURL:         serverURL,
			InputCostPer1K:  0.01,
			OutputCostPer1K: 0.02,
		},
	})

	if safety == nil {
		safety = &config.SafetyConfig{RunCostCap: 100, MaxCostPer1KTokens: 10}
	}
	holder := config.NewHolder(&config.Snapshot{Safety: safety})

	return llm.NewClient(providers, holder)
}

func messages() []llm.Message {
	return []llm.Message{
		{Role: "system", Content: "You are an analyst."},
		{Role: "user", Content: "Analyze this transcript."},
	}
}

func TestComplete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		fmt.Fprint(w, okResponse)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)
	acc := llm.NewCostAccumulator(100)

	result, err := client.Complete(context.Background(), "test-openai", messages(), llm.CallOptions{}, acc)
	require.NoError(t, err)

	assert.Equal(t, "analysis complete", result.Content)
	assert.Equal(t, "gpt-4o-mini", result.ModelUsed)
	assert.Equal(t, 1000, result.InputTokens)
	assert.Equal(t, 500, result.OutputTokens)
	// 1000/1000*0.01 + 500/1000*0.02
	assert.InDelta(t, 0.02, result.Cost, 1e-9)
	assert.InDelta(t, 0.02, acc.Total(), 1e-9)
}

func TestComplete_RateLimitIsTransient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)

	_, err := client.Complete(context.Background(), "test-openai", messages(), llm.CallOptions{}, nil)
	require.Error(t, err)
	assert.True(t, llm.IsTransient(err))
	assert.False(t, llm.IsPermanent(err))
}

func TestComplete_ServerErrorIsTransient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)

	_, err := client.Complete(context.Background(), "test-openai", messages(), llm.CallOptions{}, nil)
	require.Error(t, err)
	assert.True(t, llm.IsTransient(err))
}

func TestComplete_AuthErrorIsPermanent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)

	_, err := client.Complete(context.Background(), "test-openai", messages(), llm.CallOptions{}, nil)
	require.Error(t, err)
	assert.True(t, llm.IsPermanent(err))
	assert.False(t, llm.IsTransient(err))
}

func TestComplete_ContextTooLargeFromProvider(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error": {"code": "context_length_exceeded", "message": "too long"}}`)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)

	_, err := client.Complete(context.Background(), "test-openai", messages(), llm.CallOptions{}, nil)
	require.Error(t, err)
	assert.True(t, llm.IsContextTooLarge(err))
	assert.False(t, llm.IsPermanent(err))
}

func TestComplete_CostCapBlocksCallUpfront(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, okResponse)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)

	acc := llm.NewCostAccumulator(0.05)
	require.NoError(t, acc.Add(0.05)) // already at cap

	_, err := client.Complete(context.Background(), "test-openai", messages(), llm.CallOptions{}, acc)
	require.Error(t, err)
	assert.True(t, llm.IsCostCapExceeded(err))
	assert.Equal(t, int32(0), calls.Load(), "no HTTP call once the cap is reached")
}

func TestComplete_CostCapRejectsCharge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, okResponse)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, nil)

	// Call cost is 0.02; cap leaves room for only 0.01 more.
	acc := llm.NewCostAccumulator(0.02)
	require.NoError(t, acc.Add(0.01))

	_, err := client.Complete(context.Background(), "test-openai", messages(), llm.CallOptions{}, acc)
	require.Error(t, err)
	assert.True(t, llm.IsCostCapExceeded(err))
	// The rejected charge records nothing.
	assert.InDelta(t, 0.01, acc.Total(), 1e-9)
}

func TestComplete_ModelAllowlist(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, okResponse)
	}))
	defer server.Close()

	safety := &config.SafetyConfig{
		RunCostCap:     100,
		ModelAllowlist: []string{"some-other-model"},
	}
	client := newTestClient(t, server.URL, safety)

	_, err := client.Complete(context.Background(), "test-openai", messages(), llm.CallOptions{}, nil)
	require.Error(t, err)
	assert.True(t, llm.IsSafety(err))
	assert.Equal(t, llm.SafetyModelNotAllowed, llm.SafetyKindOf(err))
}

func TestComplete_TokenCostCeiling(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, okResponse)
	}))
	defer server.Close()

	// Call cost 0.02 over 1500 tokens is ~0.0133/1K; ceiling below that.
	safety := &config.SafetyConfig{RunCostCap: 100, MaxCostPer1KTokens: 0.005}
	client := newTestClient(t, server.URL, safety)

	_, err := client.Complete(context.Background(), "test-openai", messages(), llm.CallOptions{}, nil)
	require.Error(t, err)
	assert.Equal(t, llm.SafetyTokenCostTooHigh, llm.SafetyKindOf(err))
}

func TestComplete_UnknownProvider(t *testing.T) {
	client := newTestClient(t, "http://localhost:0", nil)

	_, err := client.Complete(context.Background(), "nope", messages(), llm.CallOptions{}, nil)
	require.Error(t, err)
	assert.True(t, llm.IsPermanent(err))
	assert.True(t, errors.Is(err, config.ErrLLMProviderNotFound))
}

func TestCostAccumulator(t *testing.T) {
	acc := llm.NewCostAccumulator(0.10)

	require.NoError(t, acc.Add(0.06))
	assert.False(t, acc.Exhausted())

	err := acc.Add(0.06)
	require.Error(t, err)
	assert.True(t, llm.IsCostCapExceeded(err))
	assert.InDelta(t, 0.06, acc.Total(), 1e-9)

	require.NoError(t, acc.Add(0.04))
	assert.True(t, acc.Exhausted())
}

func TestCostAccumulator_Unlimited(t *testing.T) {
	acc := llm.NewCostAccumulator(0)
	require.NoError(t, acc.Add(1000))
	assert.False(t, acc.Exhausted())
}
