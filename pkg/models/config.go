package models

import "github.com/cardigan-project/cardigan/pkg/config"

// ConfigUpdate contains the runtime-writable configuration sections. Nil
// sections are left unchanged.
type ConfigUpdate struct {
	Routing *config.RoutingConfig `json:"routing,omitempty"`
	Safety  *config.SafetyConfig  `json:"safety,omitempty"`
	Queue   *config.QueueConfig   `json:"queue,omitempty"`
}

// ConfigResponse is the readable view of the active policy sections.
type ConfigResponse struct {
	Routing *config.RoutingConfig `json:"routing"`
	Safety  *config.SafetyConfig  `json:"safety"`
	Queue   *config.QueueConfig   `json:"queue"`
}
