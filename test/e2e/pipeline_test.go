package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_SubmitToCompletion(t *testing.T) {
	mock := newMockLLM(t, func(model string) string {
		return "canned deliverable text"
	})
	s := newStack(t, mock)

	id := s.submitJob(t, "EP201_evening_news.srt")
	s.waitForStatus(t, id, "completed")

	resp, body := s.do(t, http.MethodGet, fmt.Sprintf("/api/v1/jobs/%d", id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var detail struct {
		Job struct {
			ProjectName string  `json:"project_name"`
			ActualCost  float64 `json:"actual_cost"`
		} `json:"job"`
	}
	require.NoError(t, json.Unmarshal(body, &detail))
	assert.Equal(t, "EP201_evening_news", detail.Job.ProjectName)
	assert.Greater(t, detail.Job.ActualCost, 0.0)

	dir, err := s.store.ProjectDir(detail.Job.ProjectName)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "analyst_output.md"))
	assert.FileExists(t, filepath.Join(dir, "manifest.json"))

	// The persisted stream holds the full lifecycle.
	resp, body = s.do(t, http.MethodGet, fmt.Sprintf("/api/v1/jobs/%d/events?limit=100", id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list struct {
		Events []struct {
			EventType string `json:"event_type"`
		} `json:"events"`
	}
	require.NoError(t, json.Unmarshal(body, &list))

	seen := make(map[string]bool)
	for _, ev := range list.Events {
		seen[ev.EventType] = true
	}
	assert.True(t, seen["job_queued"])
	assert.True(t, seen["job_started"])
	assert.True(t, seen["phase_completed"])
	assert.True(t, seen["job_completed"])
}

func TestPipeline_WebSocketStream(t *testing.T) {
	mock := newMockLLM(t, func(model string) string {
		return "streamed deliverable"
	})
	s := newStack(t, mock)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(s.server.URL, "http") + "/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	require.NoError(t, conn.Write(ctx, websocket.MessageText,
		[]byte(`{"action":"subscribe","channel":"jobs"}`)))

	// Wait for the confirmation before submitting so no event outruns the
	// subscription.
	readMessage := func() map[string]interface{} {
		_, data, err := conn.Read(ctx)
		require.NoError(t, err)
		var msg map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &msg))
		return msg
	}
	require.Equal(t, "subscription.confirmed", readMessage()["type"])

	id := s.submitJob(t, "EP202_live_feed.srt")

	seen := make(map[string]bool)
	for !seen["job_completed"] {
		msg := readMessage()
		msgType, _ := msg["type"].(string)
		if jobID, ok := msg["job_id"].(float64); !ok || int(jobID) != id {
			continue
		}
		seen[msgType] = true
	}

	assert.True(t, seen["job_started"])
	assert.True(t, seen["phase_started"])
	assert.True(t, seen["phase_completed"])
}

func TestPipeline_CancelInFlight(t *testing.T) {
	var calls atomic.Int32
	mock := newMockLLM(t, func(model string) string {
		// The first phase stalls long enough for the cancel to land.
		if calls.Add(1) == 1 {
			time.Sleep(3 * time.Second)
		}
		return "slow deliverable"
	})
	s := newStack(t, mock)

	id := s.submitJob(t, "EP203_cancelled_show.srt")
	s.waitForStatus(t, id, "in_progress")

	// The cancel endpoint answers 202 once the worker has registered the
	// running job.
	require.Eventually(t, func() bool {
		resp, _ := s.do(t, http.MethodPost, fmt.Sprintf("/api/v1/jobs/%d/cancel", id), nil)
		return resp.StatusCode == http.StatusAccepted
	}, 5*time.Second, 50*time.Millisecond)

	s.waitForStatus(t, id, "cancelled")
}

func TestPipeline_FailureSurfacesThroughAPI(t *testing.T) {
	mock := newMockLLM(t, func(model string) string {
		return "" // every call answers 500
	})
	s := newStack(t, mock)

	id := s.submitJob(t, "EP204_broken_upstream.srt")
	s.waitForStatus(t, id, "failed")

	resp, body := s.do(t, http.MethodGet, fmt.Sprintf("/api/v1/jobs/%d", id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var detail struct {
		Job struct {
			ErrorMessage *string `json:"error_message"`
		} `json:"job"`
	}
	require.NoError(t, json.Unmarshal(body, &detail))
	require.NotNil(t, detail.Job.ErrorMessage)
	assert.NotEmpty(t, *detail.Job.ErrorMessage)

	// A failed job can be retried through the API and, with the upstream
	// still broken, fails again rather than wedging.
	resp, _ = s.do(t, http.MethodPost, fmt.Sprintf("/api/v1/jobs/%d/retry", id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	s.waitForStatus(t, id, "failed")
}
