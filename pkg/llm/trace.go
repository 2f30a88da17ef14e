package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Trace is one completed LLM call, shipped to an external observability
// collector. Message bodies are never included, only counts and totals.
type Trace struct {
	Provider     string    `json:"provider"`
	Model        string    `json:"model"`
	MessageCount int       `json:"message_count"`
	InputTokens  int       `json:"input_tokens"`
	OutputTokens int       `json:"output_tokens"`
	Cost         float64   `json:"cost"`
	LatencyMs    int64     `json:"latency_ms"`
	Timestamp    time.Time `json:"timestamp"`
}

// TraceExporter ships call traces to a collector. Implementations must be
// safe for concurrent use and fast enough to sit on the call path; the
// client treats every failure as non-fatal.
type TraceExporter interface {
	Export(ctx context.Context, trace Trace) error
}

// HTTPTraceExporter posts traces as JSON to a collector endpoint.
type HTTPTraceExporter struct {
	endpoint   string
	authToken  string
	httpClient *http.Client
}

// NewHTTPTraceExporter creates an exporter targeting the given endpoint.
// The auth token is optional and sent as a bearer token when set.
func NewHTTPTraceExporter(endpoint, authToken string) *HTTPTraceExporter {
	return &HTTPTraceExporter{
		endpoint:  endpoint,
		authToken: authToken,
		httpClient: &http.Client{
			// Short timeout: tracing must never stall a job.
			Timeout: 5 * time.Second,
		},
	}
}

// Export posts one trace. Non-2xx responses are errors for the caller to log.
func (e *HTTPTraceExporter) Export(ctx context.Context, trace Trace) error {
	body, err := json.Marshal(trace)
	if err != nil {
		return fmt.Errorf("marshal trace: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create trace request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if e.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+e.authToken)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post trace: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("trace collector returned status %d", resp.StatusCode)
	}
	return nil
}
