package sst

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Record is one show-metadata row from the external source.
type Record struct {
	ID          string            `json:"id"`
	MediaID     string            `json:"media_id"`
	Title       string            `json:"title"`
	Program     string            `json:"program"`
	AirDate     string            `json:"air_date"`
	Description string            `json:"description"`
	Keywords    []string          `json:"keywords"`
	Fields      map[string]string `json:"fields"`
}

// PromptContext renders the record as plain key/value lines for inclusion
// in a phase prompt.
func (r *Record) PromptContext() string {
	if r == nil {
		return ""
	}

	var b strings.Builder
	writeLine := func(key, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%s: %s\n", key, value)
		}
	}
	writeLine("Title", r.Title)
	writeLine("Program", r.Program)
	writeLine("Air date", r.AirDate)
	writeLine("Description", r.Description)
	if len(r.Keywords) > 0 {
		writeLine("Keywords", strings.Join(r.Keywords, ", "))
	}
	for key, value := range r.Fields {
		writeLine(key, value)
	}
	return b.String()
}

// Client fetches metadata records over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates an HTTP client for the metadata source. apiKey may be
// empty when the source allows anonymous reads.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
	}
}

// FetchRecord retrieves the record for a media id. Returns (nil, nil) when
// the source has no row for it.
func (c *Client) FetchRecord(ctx context.Context, mediaID string) (*Record, error) {
	endpoint := c.baseURL + "/records/" + url.PathEscape(mediaID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch metadata for %s: %w", mediaID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("metadata source returned HTTP %d for %s", resp.StatusCode, mediaID)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	var record Record
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("parse metadata record: %w", err)
	}

	return &record, nil
}
