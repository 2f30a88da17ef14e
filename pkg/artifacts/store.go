// Package artifacts manages the per-job output directory: phase outputs,
// versioned revision files, the completion manifest, and the job event log.
// Every path is validated against the job's project directory so no write
// can escape it.
package artifacts

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrPathEscapes is returned when a requested artifact path resolves outside
// the job's project directory.
var ErrPathEscapes = errors.New("artifact path escapes project directory")

// ErrUnknownArtifact is returned for versioned artifact bases the store does
// not recognize.
var ErrUnknownArtifact = errors.New("unknown versioned artifact kind")

// Versioned artifact bases writable through the revision API.
const (
	BaseCopyRevision  = "copy_revision"
	BaseKeywordReport = "keyword_report"
)

var versionedBases = map[string]bool{
	BaseCopyRevision:  true,
	BaseKeywordReport: true,
}

var versionSuffix = regexp.MustCompile(`_v(\d+)\.md$`)

// Store writes job artifacts under a fixed output root.
type Store struct {
	root string
}

// NewStore creates a store rooted at the given output directory.
func NewStore(root string) (*Store, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve output root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create output root: %w", err)
	}
	return &Store{root: abs}, nil
}

// Root returns the absolute output root.
func (s *Store) Root() string {
	return s.root
}

// ProjectDir returns the absolute project directory for a job, creating it
// on first use. The project name is validated against path escapes.
func (s *Store) ProjectDir(projectName string) (string, error) {
	dir, err := s.resolve(projectName)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create project directory: %w", err)
	}
	return dir, nil
}

// resolve joins a relative path onto the root and rejects any result that
// escapes it.
func (s *Store) resolve(rel string) (string, error) {
	if rel == "" {
		return "", fmt.Errorf("%w: empty path", ErrPathEscapes)
	}
	joined := filepath.Join(s.root, rel)
	abs, err := filepath.Abs(joined)
	if err != nil {
		return "", fmt.Errorf("resolve artifact path: %w", err)
	}
	if abs != s.root && !strings.HasPrefix(abs, s.root+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrPathEscapes, rel)
	}
	return abs, nil
}

// WritePhaseOutput writes (or overwrites) a phase's artifact file and
// returns its absolute path. Re-running a completed phase is idempotent:
// the file is replaced in place.
func (s *Store) WritePhaseOutput(projectName, phase, content string) (string, error) {
	dir, err := s.ProjectDir(projectName)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, phase+"_output.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write phase output: %w", err)
	}
	return path, nil
}

// ReadPhaseOutput reads a prior phase's artifact, or "" when it does not
// exist yet.
func (s *Store) ReadPhaseOutput(projectName, phase string) (string, error) {
	dir, err := s.resolve(projectName)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(dir, phase+"_output.md"))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read phase output: %w", err)
	}
	return string(data), nil
}

// WriteVersioned writes the next version of a revision artifact
// (<base>_v<N>.md) and returns its path and version number. Versions
// auto-increment from the files already on disk and never overwrite a
// prior version.
func (s *Store) WriteVersioned(projectName, base, content string) (string, int, error) {
	if !versionedBases[base] {
		return "", 0, fmt.Errorf("%w: %s", ErrUnknownArtifact, base)
	}

	dir, err := s.ProjectDir(projectName)
	if err != nil {
		return "", 0, err
	}

	next := s.nextVersion(dir, base)
	path := filepath.Join(dir, fmt.Sprintf("%s_v%d.md", base, next))

	// O_EXCL guards against a concurrent writer picking the same version.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", 0, fmt.Errorf("create versioned artifact: %w", err)
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return "", 0, fmt.Errorf("write versioned artifact: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", 0, fmt.Errorf("close versioned artifact: %w", err)
	}
	return path, next, nil
}

func (s *Store) nextVersion(dir, base string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 1
	}
	max := 0
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, base+"_v") {
			continue
		}
		m := versionSuffix.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		if v, err := strconv.Atoi(m[1]); err == nil && v > max {
			max = v
		}
	}
	return max + 1
}

// WriteRecoveryAnalysis saves the manager's recovery analysis.
func (s *Store) WriteRecoveryAnalysis(projectName, content string) (string, error) {
	dir, err := s.ProjectDir(projectName)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, "recovery_analysis.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write recovery analysis: %w", err)
	}
	return path, nil
}

// PhaseRecord is one phase's summary in the manifest.
type PhaseRecord struct {
	Name            string     `json:"name"`
	Status          string     `json:"status"`
	TierLabel       string     `json:"tier_label"`
	Model           string     `json:"model"`
	Attempts        int        `json:"attempts"`
	Cost            float64    `json:"cost"`
	InputTokens     int        `json:"input_tokens"`
	OutputTokens    int        `json:"output_tokens"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	DeliverablePath string     `json:"deliverable_path,omitempty"`
}

// Manifest summarizes a finished job.
type Manifest struct {
	JobID        int           `json:"job_id"`
	Status       string        `json:"status"`
	Transcript   string        `json:"transcript"`
	ProjectName  string        `json:"project_name"`
	TotalCost    float64       `json:"total_cost"`
	InputTokens  int           `json:"input_tokens"`
	OutputTokens int           `json:"output_tokens"`
	QueuedAt     time.Time     `json:"queued_at"`
	StartedAt    *time.Time    `json:"started_at,omitempty"`
	CompletedAt  *time.Time    `json:"completed_at,omitempty"`
	Phases       []PhaseRecord `json:"phases"`
}

// WriteManifest writes manifest.json for a finished job.
func (s *Store) WriteManifest(projectName string, m *Manifest) (string, error) {
	dir, err := s.ProjectDir(projectName)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal manifest: %w", err)
	}

	path := filepath.Join(dir, "manifest.json")
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}
	return path, nil
}

// AppendJobLog appends one structured record to the job's
// processing.log.jsonl.
func (s *Store) AppendJobLog(projectName string, record map[string]interface{}) error {
	dir, err := s.ProjectDir(projectName)
	if err != nil {
		return err
	}

	line, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal log record: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(dir, "processing.log.jsonl"),
		os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open job log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("append job log: %w", err)
	}
	return nil
}
