package api_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardigan-project/cardigan/ent"
	"github.com/cardigan-project/cardigan/ent/job"
	"github.com/cardigan-project/cardigan/pkg/models"
)

func TestCreateJob(t *testing.T) {
	env := newServerEnv(t)
	path := writeTranscript(t, "EP101_morning.srt")

	rec := env.do(t, http.MethodPost, "/api/v1/queue", models.CreateJobRequest{
		TranscriptFile: path,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created ent.Job
	decode(t, rec, &created)
	assert.Equal(t, path, created.TranscriptFile)
	assert.Equal(t, job.StatusPending, created.Status)
}

func TestCreateJob_DuplicateTranscript(t *testing.T) {
	env := newServerEnv(t)
	path := writeTranscript(t, "EP102_morning.srt")

	rec := env.do(t, http.MethodPost, "/api/v1/queue", models.CreateJobRequest{TranscriptFile: path})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created ent.Job
	decode(t, rec, &created)

	rec = env.do(t, http.MethodPost, "/api/v1/queue", models.CreateJobRequest{TranscriptFile: path})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// The conflict names the job already holding the transcript.
	var conflict struct {
		ExistingJobID int `json:"existing_job_id"`
	}
	decode(t, rec, &conflict)
	assert.Equal(t, created.ID, conflict.ExistingJobID)

	// Force bypasses the duplicate guard.
	rec = env.do(t, http.MethodPost, "/api/v1/queue", models.CreateJobRequest{TranscriptFile: path, Force: true})
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestCreateJob_ValidationFailure(t *testing.T) {
	env := newServerEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/queue", models.CreateJobRequest{})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/queue", "not an object")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListJobs(t *testing.T) {
	env := newServerEnv(t)
	env.submitJob(t, "EP103_a.srt")
	env.submitJob(t, "EP103_b.srt")

	rec := env.do(t, http.MethodGet, "/api/v1/jobs?status=pending&limit=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var page models.JobListResponse
	decode(t, rec, &page)
	assert.Equal(t, 2, page.TotalCount)
	assert.Len(t, page.Jobs, 1)
}

func TestGetJob(t *testing.T) {
	env := newServerEnv(t)
	id := env.submitJob(t, "EP104_show.srt")

	rec := env.do(t, http.MethodGet, fmt.Sprintf("/api/v1/jobs/%d", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var detail models.JobDetailResponse
	decode(t, rec, &detail)
	assert.Equal(t, id, detail.Job.ID)
	// Submission published job_queued, so the tail is non-empty.
	assert.NotEmpty(t, detail.RecentEvents)
}

func TestGetJob_NotFound(t *testing.T) {
	env := newServerEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/jobs/9999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/jobs/notanumber", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateJobPriority(t *testing.T) {
	env := newServerEnv(t)
	id := env.submitJob(t, "EP105_show.srt")

	priority := 50
	rec := env.do(t, http.MethodPatch, fmt.Sprintf("/api/v1/jobs/%d", id), models.UpdateJobRequest{
		Priority: &priority,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated ent.Job
	decode(t, rec, &updated)
	assert.Equal(t, 50, updated.Priority)
}

func TestUpdateJob_NoFields(t *testing.T) {
	env := newServerEnv(t)
	id := env.submitJob(t, "EP106_show.srt")

	rec := env.do(t, http.MethodPatch, fmt.Sprintf("/api/v1/jobs/%d", id), models.UpdateJobRequest{})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestPauseResumeJob(t *testing.T) {
	env := newServerEnv(t)
	id := env.submitJob(t, "EP107_show.srt")

	rec := env.do(t, http.MethodPost, fmt.Sprintf("/api/v1/jobs/%d/pause", id), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var paused ent.Job
	decode(t, rec, &paused)
	assert.Equal(t, job.StatusPaused, paused.Status)

	rec = env.do(t, http.MethodPost, fmt.Sprintf("/api/v1/jobs/%d/resume", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resumed ent.Job
	decode(t, rec, &resumed)
	assert.Equal(t, job.StatusPending, resumed.Status)
}

func TestPauseJob_InvalidTransition(t *testing.T) {
	env := newServerEnv(t)
	id := env.submitJob(t, "EP108_show.srt")
	markJobCompleted(t, env, id)

	rec := env.do(t, http.MethodPost, fmt.Sprintf("/api/v1/jobs/%d/pause", id), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCancelJob(t *testing.T) {
	env := newServerEnv(t)
	id := env.submitJob(t, "EP109_show.srt")

	// No pool is attached, so a pending job cancels through the service.
	rec := env.do(t, http.MethodPost, fmt.Sprintf("/api/v1/jobs/%d/cancel", id), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var cancelled ent.Job
	decode(t, rec, &cancelled)
	assert.Equal(t, job.StatusCancelled, cancelled.Status)

	// Cancelled is terminal.
	rec = env.do(t, http.MethodPost, fmt.Sprintf("/api/v1/jobs/%d/cancel", id), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRetryJob(t *testing.T) {
	env := newServerEnv(t)
	id := env.submitJob(t, "EP110_show.srt")

	ctx := context.Background()
	claimed, err := env.jobs.ClaimNextPendingJob(ctx, "test-worker")
	require.NoError(t, err)
	require.NotNil(t, claimed)
	_, err = env.jobs.MarkFailed(ctx, id, "escalation exhausted")
	require.NoError(t, err)

	rec := env.do(t, http.MethodPost, fmt.Sprintf("/api/v1/jobs/%d/retry", id), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var retried ent.Job
	decode(t, rec, &retried)
	assert.Equal(t, job.StatusPending, retried.Status)
}

func TestRetryJob_NotFailed(t *testing.T) {
	env := newServerEnv(t)
	id := env.submitJob(t, "EP111_show.srt")

	rec := env.do(t, http.MethodPost, fmt.Sprintf("/api/v1/jobs/%d/retry", id), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestBulkDeleteJobs(t *testing.T) {
	env := newServerEnv(t)
	keep := env.submitJob(t, "EP112_keep.srt")
	gone := env.submitJob(t, "EP112_gone.srt")

	rec := env.do(t, http.MethodPost, fmt.Sprintf("/api/v1/jobs/%d/cancel", gone), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/v1/jobs", models.BulkDeleteRequest{
		Statuses: []string{"cancelled"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.BulkDeleteResponse
	decode(t, rec, &resp)
	assert.Equal(t, 1, resp.Deleted)

	rec = env.do(t, http.MethodGet, fmt.Sprintf("/api/v1/jobs/%d", keep), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = env.do(t, http.MethodGet, fmt.Sprintf("/api/v1/jobs/%d", gone), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBulkDeleteJobs_ActiveStatusRejected(t *testing.T) {
	env := newServerEnv(t)
	env.submitJob(t, "EP113_show.srt")

	rec := env.do(t, http.MethodDelete, "/api/v1/jobs", models.BulkDeleteRequest{
		Statuses: []string{"in_progress"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestListJobEvents(t *testing.T) {
	env := newServerEnv(t)
	id := env.submitJob(t, "EP114_show.srt")

	rec := env.do(t, http.MethodGet, fmt.Sprintf("/api/v1/jobs/%d/events", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var page models.EventListResponse
	decode(t, rec, &page)
	require.NotEmpty(t, page.Events)
	assert.Equal(t, "job_queued", string(page.Events[0].EventType))
}

func TestListJobEvents_UnknownJob(t *testing.T) {
	env := newServerEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/jobs/4242/events", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
