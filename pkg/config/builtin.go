package config

import (
	"sync"
)

// BuiltinConfig holds all built-in configuration data: default phase agents,
// LLM providers, routing policy, and safety caps. User YAML overrides any of
// these per key.
type BuiltinConfig struct {
	Agents       map[string]AgentConfig
	LLMProviders map[string]LLMProviderConfig
	Routing      *RoutingConfig
	Safety       *SafetyConfig
}

var (
	builtinConfig     *BuiltinConfig
	builtinConfigOnce sync.Once
)

// GetBuiltinConfig returns the singleton built-in configuration (thread-safe, lazy-initialized)
func GetBuiltinConfig() *BuiltinConfig {
	builtinConfigOnce.Do(initBuiltinConfig)
	return builtinConfig
}

func initBuiltinConfig() {
	builtinConfig = &BuiltinConfig{
		Agents:       initBuiltinAgents(),
		LLMProviders: initBuiltinLLMProviders(),
		Routing:      DefaultRoutingConfig(),
		Safety:       DefaultSafetyConfig(),
	}
}

func initBuiltinAgents() map[string]AgentConfig {
	return map[string]AgentConfig{
		"analyst": {
			Description: "Extracts topics, speakers, and factual claims from the raw transcript",
			SystemPrompt: "You are a broadcast content analyst. Read the caption transcript and produce " +
				"a structured analysis in markdown: program summary, main topics with timecodes, " +
				"named speakers and guests, and notable factual claims. Be precise; do not invent content.",
		},
		"formatter": {
			Description: "Rewrites the raw captions into clean editorial copy",
			SystemPrompt: "You are a copy formatter for broadcast transcripts. Using the analyst notes and " +
				"the raw captions, produce clean, readable editorial copy in markdown: corrected casing " +
				"and punctuation, paragraph breaks at topic changes, speaker attributions preserved.",
		},
		"seo": {
			Description: "Produces search-optimized titles, descriptions, and keywords",
			SystemPrompt: "You are a search-optimization editor. From the formatted copy, produce a keyword " +
				"report in markdown: three candidate titles, a 160-character description, primary and " +
				"secondary keywords, and suggested tags. Stay faithful to the actual content.",
		},
		"manager": {
			Description: "QA manager: reviews phase outputs and decides recovery actions",
			SystemPrompt: "You are the QA manager for an automated editorial pipeline. When reviewing outputs, " +
				"verify completeness and consistency against the transcript. When asked to analyze a " +
				"failure, end your response with exactly one line of the form " +
				"'ACTION: RETRY', 'ACTION: ESCALATE', 'ACTION: FIX', or 'ACTION: FAIL'. " +
				"If you choose FIX, include the full corrected artifact in a fenced block before the action line.",
		},
		"timestamp": {
			Description: "Aligns chapter markers to caption timecodes",
			SystemPrompt: "You are a timestamp editor. From the caption timecodes and the analyst topics, " +
				"produce a chapter list in markdown: one line per chapter, 'HH:MM:SS Title'.",
		},
		"investigation": {
			Description: "Deep-dive analysis used during recovery",
			SystemPrompt: "You are an investigator for a failed pipeline phase. Examine the partial outputs " +
				"and the error history, and report the most likely root cause and a concrete remediation.",
		},
		"copy_editor": {
			Description: "Applies operator-requested revisions to formatted copy",
			SystemPrompt: "You are a copy editor. Apply the requested revisions to the provided copy without " +
				"changing meaning. Return the full revised document.",
		},
	}
}

func initBuiltinLLMProviders() map[string]LLMProviderConfig {
	return map[string]LLMProviderConfig{
		"openai-mini": {
			Type:                LLMProviderTypeOpenAI,
			Model:               "gpt-4o-mini",
			APIKeyEnv:           "OPENAI_API_KEY",
			InputCostPer1K:      0.00015,
			OutputCostPer1K:     0.0006,
			ContextWindowTokens: 128000,
		},
		"openai-default": {
			Type:                LLMProviderTypeOpenAI,
			Model:               "gpt-4o",
			APIKeyEnv:           "OPENAI_API_KEY",
			InputCostPer1K:      0.0025,
			OutputCostPer1K:     0.01,
			ContextWindowTokens: 128000,
		},
		"anthropic-default": {
			Type:                LLMProviderTypeAnthropic,
			Model:               "claude-sonnet-4-5",
			APIKeyEnv:           "ANTHROPIC_API_KEY",
			InputCostPer1K:      0.003,
			OutputCostPer1K:     0.015,
			ContextWindowTokens: 200000,
		},
	}
}
