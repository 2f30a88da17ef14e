// Package llm provides a provider-agnostic chat-completion client with
// cost accounting and spend guards. Tier escalation lives in the phase
// executor; the client performs exactly one call per Complete invocation
// and classifies every failure for the caller.
package llm

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/cardigan-project/cardigan/pkg/config"
)

// maxResponseSize limits the LLM response body to prevent memory exhaustion.
const maxResponseSize = 10 * 1024 * 1024 // 10MB

// defaultCallTimeout applies when neither the call nor the provider config
// sets one.
const defaultCallTimeout = 120 * time.Second

// charsPerToken is the rough estimate used for the pre-call context check.
const charsPerToken = 4

// Message represents a chat message.
type Message struct {
	Role    string `json:"role"`    // "system", "user", or "assistant"
	Content string `json:"content"` // Message content
}

// CallOptions tune a single Complete invocation.
type CallOptions struct {
	// Timeout overrides the provider's per-call timeout.
	Timeout time.Duration

	// MaxTokens limits response length. 0 uses the provider default.
	MaxTokens int

	// JobID tags the cost_update event; 0 means no job association.
	JobID int
}

// Result contains the completion plus the accounting the engine persists.
type Result struct {
	Content      string
	ModelUsed    string
	InputTokens  int
	OutputTokens int
	Cost         float64
	LatencyMs    int64
}

// EventRecorder receives cost_update notifications after successful calls.
type EventRecorder interface {
	RecordCostUpdate(ctx context.Context, jobID int, model string, inputTokens, outputTokens int, cost float64)
}

// Client issues chat-completion calls against configured providers.
type Client struct {
	providers  *config.LLMProviderRegistry
	holder     *config.Holder
	httpClient *http.Client
	logger     *slog.Logger
	events     EventRecorder
	traces     TraceExporter
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(client *Client) {
		client.logger = logger
	}
}

// WithEventRecorder sets the sink for cost_update events.
func WithEventRecorder(events EventRecorder) ClientOption {
	return func(client *Client) {
		client.events = events
	}
}

// WithTraceExporter sets the best-effort trace exporter.
func WithTraceExporter(traces TraceExporter) ClientOption {
	return func(client *Client) {
		client.traces = traces
	}
}

// NewClient creates an LLM client. The holder supplies the current safety
// snapshot (allowlist, per-1K ceiling) on every call.
func NewClient(providers *config.LLMProviderRegistry, holder *config.Holder, opts ...ClientOption) *Client {
	c := &Client{
		providers: providers,
		holder:    holder,
		httpClient: &http.Client{
			// Per-call deadlines come from the request context; this is the
			// hard backstop.
			Timeout: 10 * time.Minute,
		},
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Complete issues one chat-completion call against the named provider.
//
// Guards run in order: cost cap (pre-call), model allowlist, context size
// estimate, then after the wire call the allowlist again on the reported
// model, the per-1K token cost ceiling, and the cost cap charge. A guard
// rejection surfaces as a SafetyError or ContextTooLargeError and charges
// nothing.
func (c *Client) Complete(ctx context.Context, providerName string, messages []Message, opts CallOptions, acc *CostAccumulator) (*Result, error) {
	if len(messages) == 0 {
		return nil, NewPermanentError(fmt.Errorf("at least one message is required"))
	}

	providerCfg, err := c.providers.Get(providerName)
	if err != nil {
		return nil, NewPermanentError(err)
	}

	provider := GetProvider(string(providerCfg.Type))
	if provider == nil {
		return nil, NewPermanentError(fmt.Errorf("unknown provider type: %s", providerCfg.Type))
	}

	safety := c.holder.Load().Safety

	// No call is issued once the accumulated cost has reached the cap.
	if acc != nil && acc.Exhausted() {
		return nil, NewSafetyError(SafetyCostCapExceeded,
			fmt.Errorf("job spend $%.4f already at cap $%.4f", acc.Total(), acc.Cap()))
	}

	if !safety.ModelAllowed(providerCfg.Model) {
		return nil, NewSafetyError(SafetyModelNotAllowed,
			fmt.Errorf("model %q is not in the allowlist", providerCfg.Model))
	}

	if providerCfg.ContextWindowTokens > 0 {
		chars := 0
		for _, m := range messages {
			chars += len(m.Content)
		}
		if chars/charsPerToken > providerCfg.ContextWindowTokens {
			return nil, NewContextTooLargeError(
				fmt.Errorf("estimated %d tokens exceeds %s context window of %d",
					chars/charsPerToken, providerCfg.Model, providerCfg.ContextWindowTokens))
		}
	}

	start := time.Now()
	resp, err := c.doRequest(ctx, provider, providerCfg, messages, opts)
	latency := time.Since(start)
	if err != nil {
		return nil, err
	}

	modelUsed := resp.Model
	if modelUsed == "" {
		modelUsed = providerCfg.Model
	}

	if !safety.ModelAllowed(modelUsed) {
		return nil, NewSafetyError(SafetyModelNotAllowed,
			fmt.Errorf("provider answered with model %q, not in the allowlist", modelUsed))
	}

	cost := callCost(providerCfg, resp.InputTokens, resp.OutputTokens)

	totalTokens := resp.InputTokens + resp.OutputTokens
	if safety.MaxCostPer1KTokens > 0 && totalTokens > 0 {
		per1K := cost / (float64(totalTokens) / 1000.0)
		if per1K > safety.MaxCostPer1KTokens {
			return nil, NewSafetyError(SafetyTokenCostTooHigh,
				fmt.Errorf("$%.4f per 1K tokens exceeds ceiling $%.4f", per1K, safety.MaxCostPer1KTokens))
		}
	}

	if acc != nil {
		if err := acc.Add(cost); err != nil {
			return nil, err
		}
	}

	result := &Result{
		Content:      resp.Content,
		ModelUsed:    modelUsed,
		InputTokens:  resp.InputTokens,
		OutputTokens: resp.OutputTokens,
		Cost:         cost,
		LatencyMs:    latency.Milliseconds(),
	}

	if c.events != nil {
		c.events.RecordCostUpdate(ctx, opts.JobID, modelUsed, resp.InputTokens, resp.OutputTokens, cost)
	}

	c.exportTrace(ctx, providerName, messages, result)

	return result, nil
}

// doRequest executes a single HTTP request to the LLM endpoint.
func (c *Client) doRequest(ctx context.Context, provider Provider, cfg *config.LLMProviderConfig, messages []Message, opts CallOptions) (*Response, error) {
	url := provider.BuildURL(cfg.BaseURL)

	maxTokens := opts.MaxTokens
	if maxTokens == 0 {
		maxTokens = cfg.MaxTokens
	}

	body, err := provider.BuildRequestBody(cfg.Model, messages, maxTokens)
	if err != nil {
		return nil, NewPermanentError(fmt.Errorf("build request body: %w", err))
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = cfg.Timeout
	}
	if timeout == 0 {
		timeout = defaultCallTimeout
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	c.logger.Debug("Sending LLM request",
		"provider", provider.Name(),
		"model", cfg.Model,
		"url", url,
		"messages", len(messages))

	httpReq, err := http.NewRequestWithContext(callCtx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, NewPermanentError(fmt.Errorf("create HTTP request: %w", err))
	}

	httpReq.Header.Set("Content-Type", "application/json")
	provider.SetHeaders(httpReq, apiKeyFor(cfg))

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// Network errors and deadline expiry are transient; the executor
		// distinguishes timeouts via errors.Is(err, context.DeadlineExceeded).
		return nil, NewTransientError(fmt.Errorf("HTTP request failed: %w", err))
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseSize))
	if err != nil {
		return nil, NewTransientError(fmt.Errorf("read response body: %w", err))
	}

	if httpResp.StatusCode != http.StatusOK {
		if provider.IsContextTooLarge(httpResp.StatusCode, respBody) {
			return nil, NewContextTooLargeError(
				fmt.Errorf("input exceeds context window of %s", cfg.Model))
		}
		return nil, classifyHTTPError(httpResp.StatusCode, respBody)
	}

	resp, err := provider.ParseResponse(respBody, cfg.Model)
	if err != nil {
		return nil, NewPermanentError(err)
	}
	return resp, nil
}

// callCost prices a call from the provider's per-1K token rates.
func callCost(cfg *config.LLMProviderConfig, inputTokens, outputTokens int) float64 {
	return float64(inputTokens)/1000.0*cfg.InputCostPer1K +
		float64(outputTokens)/1000.0*cfg.OutputCostPer1K
}

func apiKeyFor(cfg *config.LLMProviderConfig) string {
	if cfg.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(cfg.APIKeyEnv)
}

// classifyHTTPError determines if an HTTP error is transient or permanent.
func classifyHTTPError(statusCode int, body []byte) error {
	bodyStr := string(body)
	if len(bodyStr) > 200 {
		bodyStr = bodyStr[:200] + "..."
	}

	err := fmt.Errorf("LLM API error (status %d): %s", statusCode, bodyStr)

	switch {
	case statusCode == http.StatusTooManyRequests:
		// Rate limiting is transient
		return NewTransientError(err)
	case statusCode >= 500:
		// Server errors are transient
		return NewTransientError(err)
	case statusCode == http.StatusUnauthorized,
		statusCode == http.StatusForbidden:
		// Auth errors are permanent
		return NewPermanentError(err)
	case statusCode == http.StatusBadRequest:
		// Bad requests are permanent
		return NewPermanentError(err)
	default:
		// Unknown errors default to permanent
		return NewPermanentError(err)
	}
}

// exportTrace forwards the call to the observability exporter. Best-effort:
// exporter failures are logged and never affect the primary call.
func (c *Client) exportTrace(ctx context.Context, providerName string, messages []Message, result *Result) {
	if c.traces == nil {
		return
	}

	trace := Trace{
		Provider:     providerName,
		Model:        result.ModelUsed,
		MessageCount: len(messages),
		InputTokens:  result.InputTokens,
		OutputTokens: result.OutputTokens,
		Cost:         result.Cost,
		LatencyMs:    result.LatencyMs,
		Timestamp:    time.Now().UTC(),
	}

	if err := c.traces.Export(ctx, trace); err != nil {
		c.logger.Warn("Trace export failed", "provider", providerName, "error", err)
	}
}
