package config

// Config is the umbrella configuration object that encapsulates all
// registries, defaults, and configuration state. This is the primary object
// returned by Initialize() and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// System-wide job defaults
	Defaults *Defaults

	// Queue and worker pool configuration
	Queue *QueueConfig

	// Tier routing policy
	Routing *RoutingConfig

	// LLM spend guards
	Safety *SafetyConfig

	// HTTP server settings
	Server *ServerConfig

	// Ingest watcher settings
	Ingest *IngestConfig

	// External metadata source settings
	SST *SSTConfig

	// Data retention settings
	Retention *RetentionConfig

	// Component registries
	AgentRegistry       *AgentRegistry
	LLMProviderRegistry *LLMProviderRegistry
}

// Stats contains statistics about loaded configuration
type Stats struct {
	Agents       int
	LLMProviders int
	Tiers        int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.AgentRegistry != nil {
		s.Agents = c.AgentRegistry.Len()
	}
	if c.LLMProviderRegistry != nil {
		s.LLMProviders = c.LLMProviderRegistry.Len()
	}
	if c.Routing != nil {
		s.Tiers = len(c.Routing.Tiers)
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetAgent retrieves an agent configuration by phase name.
// This is a convenience method that wraps AgentRegistry.Get().
func (c *Config) GetAgent(name string) (*AgentConfig, error) {
	return c.AgentRegistry.Get(name)
}

// GetLLMProvider retrieves an LLM provider configuration by name.
// This is a convenience method that wraps LLMProviderRegistry.Get().
func (c *Config) GetLLMProvider(name string) (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(name)
}

// Snapshot captures an immutable copy of the mutable policy sections. Job
// tasks take one at claim time so config writes never change decisions for
// a job already in flight.
func (c *Config) Snapshot() *Snapshot {
	return &Snapshot{
		Routing: c.Routing.Clone(),
		Safety:  c.Safety.Clone(),
		Queue:   c.Queue.Clone(),
	}
}
