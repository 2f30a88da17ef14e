package artifacts

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestWritePhaseOutput_Idempotent(t *testing.T) {
	store := newTestStore(t)

	path, err := store.WritePhaseOutput("show1", "analyst", "first run")
	require.NoError(t, err)
	assert.Equal(t, "analyst_output.md", filepath.Base(path))

	// Re-running the phase overwrites in place.
	path2, err := store.WritePhaseOutput("show1", "analyst", "second run")
	require.NoError(t, err)
	assert.Equal(t, path, path2)

	content, err := store.ReadPhaseOutput("show1", "analyst")
	require.NoError(t, err)
	assert.Equal(t, "second run", content)
}

func TestReadPhaseOutput_MissingIsEmpty(t *testing.T) {
	store := newTestStore(t)

	content, err := store.ReadPhaseOutput("show1", "formatter")
	require.NoError(t, err)
	assert.Empty(t, content)
}

func TestWriteVersioned_StrictlyIncreasing(t *testing.T) {
	store := newTestStore(t)

	var paths []string
	for i := 1; i <= 3; i++ {
		path, version, err := store.WriteVersioned("show1", BaseCopyRevision, "rev")
		require.NoError(t, err)
		assert.Equal(t, i, version)
		paths = append(paths, path)
	}

	assert.Equal(t, "copy_revision_v1.md", filepath.Base(paths[0]))
	assert.Equal(t, "copy_revision_v3.md", filepath.Base(paths[2]))

	// Prior versions are never mutated.
	for _, p := range paths {
		_, err := os.Stat(p)
		assert.NoError(t, err)
	}
}

func TestWriteVersioned_UnknownBase(t *testing.T) {
	store := newTestStore(t)

	_, _, err := store.WriteVersioned("show1", "secret_notes", "x")
	assert.ErrorIs(t, err, ErrUnknownArtifact)
}

func TestPathEscapeRejected(t *testing.T) {
	store := newTestStore(t)

	_, err := store.WritePhaseOutput("../outside", "analyst", "x")
	assert.ErrorIs(t, err, ErrPathEscapes)

	_, err = store.ProjectDir("..")
	assert.ErrorIs(t, err, ErrPathEscapes)

	_, _, err = store.WriteVersioned("a/../../b", BaseCopyRevision, "x")
	assert.ErrorIs(t, err, ErrPathEscapes)
}

func TestWriteManifest(t *testing.T) {
	store := newTestStore(t)

	path, err := store.WriteManifest("show1", &Manifest{
		JobID:       7,
		Status:      "completed",
		ProjectName: "show1",
		TotalCost:   0.42,
		Phases: []PhaseRecord{
			{Name: "analyst", Status: "completed", Attempts: 1},
		},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var m Manifest
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, 7, m.JobID)
	assert.Len(t, m.Phases, 1)
}

func TestAppendJobLog(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.AppendJobLog("show1", map[string]interface{}{"event": "phase_started", "phase": "analyst"}))
	require.NoError(t, store.AppendJobLog("show1", map[string]interface{}{"event": "phase_completed", "phase": "analyst"}))

	dir, err := store.ProjectDir("show1")
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, "processing.log.jsonl"))
	require.NoError(t, err)

	lines := 0
	for _, b := range data {
		if b == '\n' {
			lines++
		}
	}
	assert.Equal(t, 2, lines)
}
