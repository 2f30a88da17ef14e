package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardigan-project/cardigan/pkg/config"
	"github.com/cardigan-project/cardigan/pkg/models"
)

func TestGetConfig(t *testing.T) {
	env := newServerEnv(t)

	rec := env.do(t, http.MethodGet, "/api/v1/config", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ConfigResponse
	decode(t, rec, &resp)
	require.NotNil(t, resp.Routing)
	require.NotNil(t, resp.Safety)
	require.NotNil(t, resp.Queue)
	assert.NotEmpty(t, resp.Routing.Tiers)
}

func TestUpdateConfig(t *testing.T) {
	env := newServerEnv(t)

	queueCfg := config.DefaultQueueConfig()
	queueCfg.MaxConcurrentJobs = 7

	rec := env.do(t, http.MethodPut, "/api/v1/config", models.ConfigUpdate{Queue: queueCfg})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.ConfigResponse
	decode(t, rec, &resp)
	assert.Equal(t, 7, resp.Queue.MaxConcurrentJobs)

	// The change survives a plain read.
	rec = env.do(t, http.MethodGet, "/api/v1/config", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &resp)
	assert.Equal(t, 7, resp.Queue.MaxConcurrentJobs)
}

func TestUpdateConfig_EmptyUpdate(t *testing.T) {
	env := newServerEnv(t)

	rec := env.do(t, http.MethodPut, "/api/v1/config", models.ConfigUpdate{})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUpdateConfig_RejectsInvalidSection(t *testing.T) {
	env := newServerEnv(t)

	queueCfg := config.DefaultQueueConfig()
	queueCfg.MaxConcurrentJobs = 0

	rec := env.do(t, http.MethodPut, "/api/v1/config", models.ConfigUpdate{Queue: queueCfg})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
