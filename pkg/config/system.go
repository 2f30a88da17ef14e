package config

import "time"

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Listen address, e.g. ":8080"
	ListenAddr string `yaml:"listen_addr"`

	// Additional WebSocket origin patterns beyond the defaults
	AllowedWSOrigins []string `yaml:"allowed_ws_origins"`
}

// DefaultServerConfig returns built-in server defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		ListenAddr: ":8080",
	}
}

// IngestConfig holds ingest watcher settings: where transcripts land and how
// often the directory is rescanned between filesystem notifications.
type IngestConfig struct {
	Enabled        bool          `yaml:"enabled"`
	InputDir       string        `yaml:"input_dir"`
	RescanInterval time.Duration `yaml:"rescan_interval"`

	// Transcript file extensions accepted, lowercase with leading dot
	Extensions []string `yaml:"extensions"`
}

// DefaultIngestConfig returns built-in ingest defaults.
func DefaultIngestConfig() *IngestConfig {
	return &IngestConfig{
		Enabled:        false,
		InputDir:       "QUEUE",
		RescanInterval: 30 * time.Second,
		Extensions:     []string{".srt", ".txt", ".vtt"},
	}
}

// RetentionConfig holds data retention settings: how long finished jobs and
// detached system events stay in the store before the cleanup loop removes
// them.
type RetentionConfig struct {
	Enabled bool `yaml:"enabled"`

	// JobRetentionDays is how long terminal jobs (and their phases and
	// events, via cascade) are kept. Zero disables job pruning.
	JobRetentionDays int `yaml:"job_retention_days"`

	// EventTTL is how long system events with no job are kept.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		Enabled:          true,
		JobRetentionDays: 30,
		EventTTL:         7 * 24 * time.Hour,
		CleanupInterval:  1 * time.Hour,
	}
}

// SSTConfig holds settings for the read-only external metadata source keyed
// by media id. Lookups are context only; failures degrade to "unavailable".
type SSTConfig struct {
	Enabled   bool          `yaml:"enabled"`
	BaseURL   string        `yaml:"base_url"`
	APIKeyEnv string        `yaml:"api_key_env"`
	Timeout   time.Duration `yaml:"timeout"`
	CacheTTL  time.Duration `yaml:"cache_ttl"`
}

// DefaultSSTConfig returns built-in SST defaults.
func DefaultSSTConfig() *SSTConfig {
	return &SSTConfig{
		Enabled:   false,
		APIKeyEnv: "SST_API_KEY",
		Timeout:   10 * time.Second,
		CacheTTL:  5 * time.Minute,
	}
}
