package config

import (
	"fmt"
	"sync"
	"time"
)

// LLMProviderType identifies the wire protocol an LLM provider speaks.
type LLMProviderType string

const (
	LLMProviderTypeOpenAI    LLMProviderType = "openai"
	LLMProviderTypeAnthropic LLMProviderType = "anthropic"
)

// Valid reports whether the provider type is one the client implements.
func (t LLMProviderType) Valid() bool {
	switch t {
	case LLMProviderTypeOpenAI, LLMProviderTypeAnthropic:
		return true
	}
	return false
}

// LLMProviderConfig defines LLM provider configuration. Tiers reference
// providers by name.
type LLMProviderConfig struct {
	// Provider type (required)
	Type LLMProviderType `yaml:"type"`

	// Model name (required)
	Model string `yaml:"model"`

	// Environment variable name for the API key
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// Optional custom endpoint/base URL
	BaseURL string `yaml:"base_url,omitempty"`

	// Per-call timeout; zero means the client default
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// Max completion tokens per call; zero means the provider default
	MaxTokens int `yaml:"max_tokens,omitempty"`

	// Dollar cost per 1K tokens, used for cost accounting
	InputCostPer1K  float64 `yaml:"input_cost_per_1k,omitempty"`
	OutputCostPer1K float64 `yaml:"output_cost_per_1k,omitempty"`

	// Approximate context window in tokens; 0 disables the pre-call size check
	ContextWindowTokens int `yaml:"context_window_tokens,omitempty"`
}

// LLMProviderRegistry stores LLM provider configurations in memory with thread-safe access
type LLMProviderRegistry struct {
	providers map[string]*LLMProviderConfig
	mu        sync.RWMutex
}

// NewLLMProviderRegistry creates a new LLM provider registry
func NewLLMProviderRegistry(providers map[string]*LLMProviderConfig) *LLMProviderRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*LLMProviderConfig, len(providers))
	for k, v := range providers {
		copied[k] = v
	}
	return &LLMProviderRegistry{
		providers: copied,
	}
}

// Get retrieves an LLM provider configuration by name (thread-safe)
func (r *LLMProviderRegistry) Get(name string) (*LLMProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrLLMProviderNotFound, name)
	}
	return provider, nil
}

// GetAll returns all LLM provider configurations (thread-safe, returns copy)
func (r *LLMProviderRegistry) GetAll() map[string]*LLMProviderConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*LLMProviderConfig, len(r.providers))
	for k, v := range r.providers {
		result[k] = v
	}
	return result
}

// Has checks if an LLM provider exists in the registry (thread-safe)
func (r *LLMProviderRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.providers[name]
	return exists
}

// Len returns the number of LLM providers in the registry (thread-safe)
func (r *LLMProviderRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}
