package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardigan-project/cardigan/pkg/models"
)

func TestCreateRevision(t *testing.T) {
	env := newServerEnv(t)
	id := env.submitJob(t, "EP120_show.srt")
	markJobCompleted(t, env, id)

	rec := env.do(t, http.MethodPost, fmt.Sprintf("/api/v1/jobs/%d/revisions", id), models.RevisionRequest{
		Kind:    "copy_revision",
		Content: "Revised copy for the EP120 page.",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var first models.RevisionResponse
	decode(t, rec, &first)
	assert.Equal(t, 1, first.Version)
	assert.FileExists(t, first.Path)

	// A second revision never overwrites the first.
	rec = env.do(t, http.MethodPost, fmt.Sprintf("/api/v1/jobs/%d/revisions", id), models.RevisionRequest{
		Kind:    "copy_revision",
		Content: "Second pass on the EP120 page.",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var second models.RevisionResponse
	decode(t, rec, &second)
	assert.Equal(t, 2, second.Version)
	assert.NotEqual(t, first.Path, second.Path)
}

func TestCreateRevision_KeywordReport(t *testing.T) {
	env := newServerEnv(t)
	id := env.submitJob(t, "EP121_show.srt")
	markJobCompleted(t, env, id)

	rec := env.do(t, http.MethodPost, fmt.Sprintf("/api/v1/jobs/%d/revisions", id), models.RevisionRequest{
		Kind:    "keyword_report",
		Content: "morning show, caption, broadcast",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestCreateRevision_UnknownKind(t *testing.T) {
	env := newServerEnv(t)
	id := env.submitJob(t, "EP122_show.srt")
	markJobCompleted(t, env, id)

	rec := env.do(t, http.MethodPost, fmt.Sprintf("/api/v1/jobs/%d/revisions", id), models.RevisionRequest{
		Kind:    "transcript",
		Content: "nope",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateRevision_RequiresCompletedJob(t *testing.T) {
	env := newServerEnv(t)
	id := env.submitJob(t, "EP123_show.srt")

	rec := env.do(t, http.MethodPost, fmt.Sprintf("/api/v1/jobs/%d/revisions", id), models.RevisionRequest{
		Kind:    "copy_revision",
		Content: "too early",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateRevision_EmptyContent(t *testing.T) {
	env := newServerEnv(t)
	id := env.submitJob(t, "EP124_show.srt")
	markJobCompleted(t, env, id)

	rec := env.do(t, http.MethodPost, fmt.Sprintf("/api/v1/jobs/%d/revisions", id), models.RevisionRequest{
		Kind:    "copy_revision",
		Content: "   ",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
