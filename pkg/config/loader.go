package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// CardiganYAMLConfig represents the complete cardigan.yaml file structure
type CardiganYAMLConfig struct {
	System   *SystemYAMLConfig      `yaml:"system"`
	Agents   map[string]AgentConfig `yaml:"agents"`
	Routing  *RoutingConfig         `yaml:"routing"`
	Safety   *SafetyConfig          `yaml:"safety"`
	Defaults *Defaults              `yaml:"defaults"`
	Queue    *QueueConfig           `yaml:"queue"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	Server    *ServerConfig    `yaml:"server"`
	Ingest    *IngestConfig    `yaml:"ingest"`
	SST       *SSTConfig       `yaml:"sst"`
	Retention *RetentionConfig `yaml:"retention"`
}

// LLMProvidersYAMLConfig represents the complete llm-providers.yaml file structure
type LLMProvidersYAMLConfig struct {
	LLMProviders map[string]LLMProviderConfig `yaml:"llm_providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge built-in + user-defined configurations
//  5. Resolve agent prompt files
//  6. Build in-memory registries
//  7. Validate all configuration
//  8. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"agents", stats.Agents,
		"llm_providers", stats.LLMProviders,
		"tiers", stats.Tiers)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load cardigan.yaml (agents, routing, safety, defaults, queue, system)
	cardiganConfig, err := loader.loadCardiganYAML()
	if err != nil {
		return nil, NewLoadError("cardigan.yaml", err)
	}

	// 2. Load llm-providers.yaml (optional; built-ins cover the defaults)
	llmProviders, err := loader.loadLLMProvidersYAML()
	if err != nil {
		return nil, NewLoadError("llm-providers.yaml", err)
	}

	// 3. Get built-in configuration
	builtin := GetBuiltinConfig()

	// 4. Merge built-in + user-defined components (user overrides built-in)
	agents := mergeAgents(builtin.Agents, cardiganConfig.Agents)
	llmProvidersMerged := mergeLLMProviders(builtin.LLMProviders, llmProviders)

	// 5. Resolve agent prompt files relative to the config directory
	if err := loader.resolveAgentPrompts(agents); err != nil {
		return nil, err
	}

	// 6. Build registries
	agentRegistry := NewAgentRegistry(agents)
	llmProviderRegistry := NewLLMProviderRegistry(llmProvidersMerged)

	// 7. Resolve policy sections: user YAML merged onto built-in defaults so
	// unset fields keep their defaults.
	routing := builtin.Routing.Clone()
	if cardiganConfig.Routing != nil {
		routing = cardiganConfig.Routing
	}

	safety := builtin.Safety.Clone()
	if cardiganConfig.Safety != nil {
		if err := mergo.Merge(safety, cardiganConfig.Safety, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge safety config: %w", err)
		}
	}

	queueConfig := DefaultQueueConfig()
	if cardiganConfig.Queue != nil {
		if err := mergo.Merge(queueConfig, cardiganConfig.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	defaults := DefaultDefaults()
	if cardiganConfig.Defaults != nil {
		if err := mergo.Merge(defaults, cardiganConfig.Defaults, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge defaults: %w", err)
		}
	}

	// 8. Resolve system config (server, ingest, SST, retention)
	serverCfg := resolveServerConfig(cardiganConfig.System)
	ingestCfg := resolveIngestConfig(cardiganConfig.System)
	sstCfg := resolveSSTConfig(cardiganConfig.System)
	retentionCfg := resolveRetentionConfig(cardiganConfig.System)

	return &Config{
		configDir:           configDir,
		Defaults:            defaults,
		Queue:               queueConfig,
		Routing:             routing,
		Safety:              safety,
		Server:              serverCfg,
		Ingest:              ingestCfg,
		SST:                 sstCfg,
		Retention:           retentionCfg,
		AgentRegistry:       agentRegistry,
		LLMProviderRegistry: llmProviderRegistry,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing the YAML parser to handle the content (or fail with a clearer
	// error message).
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadCardiganYAML() (*CardiganYAMLConfig, error) {
	var config CardiganYAMLConfig

	// Initialize maps to avoid nil maps
	config.Agents = make(map[string]AgentConfig)

	if err := l.loadYAML("cardigan.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (l *configLoader) loadLLMProvidersYAML() (map[string]LLMProviderConfig, error) {
	var config LLMProvidersYAMLConfig

	config.LLMProviders = make(map[string]LLMProviderConfig)

	if err := l.loadYAML("llm-providers.yaml", &config); err != nil {
		// The file is optional; built-in providers cover the default tiers.
		if errors.Is(err, ErrConfigNotFound) {
			return config.LLMProviders, nil
		}
		return nil, err
	}

	return config.LLMProviders, nil
}

// resolveAgentPrompts reads SystemPromptFile for agents that use one.
// Inline SystemPrompt wins when both are set.
func (l *configLoader) resolveAgentPrompts(agents map[string]*AgentConfig) error {
	for name, agent := range agents {
		if agent.SystemPrompt != "" || agent.SystemPromptFile == "" {
			continue
		}
		path := agent.SystemPromptFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(l.configDir, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return NewValidationError("agent", name, "system_prompt_file",
				fmt.Errorf("failed to read prompt file: %w", err))
		}
		agent.SystemPrompt = string(data)
	}
	return nil
}

// resolveServerConfig resolves server configuration from system YAML, applying defaults.
func resolveServerConfig(sys *SystemYAMLConfig) *ServerConfig {
	cfg := DefaultServerConfig()

	if sys == nil || sys.Server == nil {
		return cfg
	}

	s := sys.Server
	if s.ListenAddr != "" {
		cfg.ListenAddr = s.ListenAddr
	}
	if len(s.AllowedWSOrigins) > 0 {
		cfg.AllowedWSOrigins = s.AllowedWSOrigins
	}

	return cfg
}

// resolveIngestConfig resolves ingest configuration from system YAML, applying defaults.
func resolveIngestConfig(sys *SystemYAMLConfig) *IngestConfig {
	cfg := DefaultIngestConfig()

	if sys == nil || sys.Ingest == nil {
		return cfg
	}

	in := sys.Ingest
	cfg.Enabled = in.Enabled
	if in.InputDir != "" {
		cfg.InputDir = in.InputDir
	}
	if in.RescanInterval > 0 {
		cfg.RescanInterval = in.RescanInterval
	}
	if len(in.Extensions) > 0 {
		cfg.Extensions = in.Extensions
	}

	return cfg
}

// resolveSSTConfig resolves SST configuration from system YAML, applying defaults.
func resolveSSTConfig(sys *SystemYAMLConfig) *SSTConfig {
	cfg := DefaultSSTConfig()

	if sys == nil || sys.SST == nil {
		return cfg
	}

	s := sys.SST
	cfg.Enabled = s.Enabled
	if s.BaseURL != "" {
		cfg.BaseURL = s.BaseURL
	}
	if s.APIKeyEnv != "" {
		cfg.APIKeyEnv = s.APIKeyEnv
	}
	if s.Timeout > 0 {
		cfg.Timeout = s.Timeout
	}
	if s.CacheTTL > 0 {
		cfg.CacheTTL = s.CacheTTL
	}

	return cfg
}

// resolveRetentionConfig resolves retention configuration from system YAML, applying defaults.
func resolveRetentionConfig(sys *SystemYAMLConfig) *RetentionConfig {
	cfg := DefaultRetentionConfig()

	if sys == nil || sys.Retention == nil {
		return cfg
	}

	r := sys.Retention
	cfg.Enabled = r.Enabled
	if r.JobRetentionDays > 0 {
		cfg.JobRetentionDays = r.JobRetentionDays
	}
	if r.EventTTL > 0 {
		cfg.EventTTL = r.EventTTL
	}
	if r.CleanupInterval > 0 {
		cfg.CleanupInterval = r.CleanupInterval
	}

	return cfg
}
