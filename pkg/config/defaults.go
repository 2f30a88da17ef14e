package config

// Defaults holds system-wide job defaults applied at submission time.
type Defaults struct {
	// MaxRetries for newly created jobs
	MaxRetries int `yaml:"max_retries"`

	// Priority for newly created jobs; higher runs first
	Priority int `yaml:"priority"`

	// Phases is the ordered pipeline for new jobs. The first four are the
	// required sequence; optional phases are appended by the operator.
	Phases []string `yaml:"phases"`

	// OutputDir is the root under which per-job project directories live.
	OutputDir string `yaml:"output_dir"`
}

// RequiredPhases is the minimum ordered pipeline every job runs.
var RequiredPhases = []string{"analyst", "formatter", "seo", "manager"}

// DefaultDefaults returns the built-in job defaults.
func DefaultDefaults() *Defaults {
	phases := make([]string, len(RequiredPhases))
	copy(phases, RequiredPhases)
	return &Defaults{
		MaxRetries: 3,
		Priority:   0,
		Phases:     phases,
		OutputDir:  "OUTPUT",
	}
}
