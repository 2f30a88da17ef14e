package sst

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/cardigan-project/cardigan/pkg/config"
)

// Service resolves media metadata with caching. A disabled or failing
// source yields nil records; the pipeline runs without the context.
type Service struct {
	client *Client
	cache  *Cache
	cfg    *config.SSTConfig
	logger *slog.Logger
}

// NewService creates a new Service from configuration. The API key is read
// from the environment variable the config names.
func NewService(cfg *config.SSTConfig, logger *slog.Logger) *Service {
	if cfg == nil {
		cfg = config.DefaultSSTConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	var apiKey string
	if cfg.APIKeyEnv != "" {
		apiKey = os.Getenv(cfg.APIKeyEnv)
	}

	return &Service{
		client: NewClient(cfg.BaseURL, apiKey, cfg.Timeout),
		cache:  NewCache(cfg.CacheTTL),
		cfg:    cfg,
		logger: logger,
	}
}

// Enabled reports whether lookups are configured.
func (s *Service) Enabled() bool {
	return s.cfg.Enabled && s.cfg.BaseURL != ""
}

// Lookup returns the metadata record for a media id, or nil when the
// source is disabled, has no row, or failed. Failures are logged and
// never propagate.
func (s *Service) Lookup(ctx context.Context, mediaID string) *Record {
	if !s.Enabled() || mediaID == "" {
		return nil
	}

	if record, ok := s.cache.Get(mediaID); ok {
		return record
	}

	record, err := s.client.FetchRecord(ctx, mediaID)
	if err != nil {
		s.logger.Warn("Metadata lookup failed; continuing without context",
			"media_id", mediaID, "error", err)
		return nil
	}

	// Misses are cached too.
	s.cache.Set(mediaID, record)
	return record
}

// OverrideHTTPClientForTest replaces the internal HTTP client.
// For testing only.
func (s *Service) OverrideHTTPClientForTest(httpClient *http.Client) {
	s.client.httpClient = httpClient
}
