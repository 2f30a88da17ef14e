package sst

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardigan-project/cardigan/pkg/config"
)

const recordJSON = `{
	"id": "rec123",
	"media_id": "EP101",
	"title": "Morning Show Episode 101",
	"program": "Morning Show",
	"air_date": "2024-06-01",
	"keywords": ["news", "weather"]
}`

func newTestService(serverURL string, ttl time.Duration) *Service {
	return NewService(&config.SSTConfig{
		Enabled:  true,
		BaseURL:  serverURL,
		Timeout:  2 * time.Second,
		CacheTTL: ttl,
	}, nil)
}

func TestService_Lookup(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/records/EP101":
			fmt.Fprint(w, recordJSON)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	service := newTestService(server.URL, time.Minute)
	ctx := context.Background()

	record := service.Lookup(ctx, "EP101")
	require.NotNil(t, record)
	assert.Equal(t, "Morning Show Episode 101", record.Title)
	assert.Equal(t, "EP101", record.MediaID)

	// Second lookup is served from cache.
	record2 := service.Lookup(ctx, "EP101")
	require.NotNil(t, record2)
	assert.Equal(t, int32(1), hits.Load())

	// Unknown id degrades to nil, and the miss is cached.
	assert.Nil(t, service.Lookup(ctx, "NOPE9"))
	assert.Nil(t, service.Lookup(ctx, "NOPE9"))
	assert.Equal(t, int32(2), hits.Load())
}

func TestService_LookupDegradesOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	service := newTestService(server.URL, time.Minute)
	assert.Nil(t, service.Lookup(context.Background(), "EP101"))
}

func TestService_DisabledReturnsNil(t *testing.T) {
	service := NewService(&config.SSTConfig{Enabled: false}, nil)
	assert.False(t, service.Enabled())
	assert.Nil(t, service.Lookup(context.Background(), "EP101"))
}

func TestCache_TTLExpiry(t *testing.T) {
	cache := NewCache(10 * time.Millisecond)
	cache.Set("EP101", &Record{MediaID: "EP101"})

	record, ok := cache.Get("EP101")
	require.True(t, ok)
	assert.Equal(t, "EP101", record.MediaID)

	time.Sleep(20 * time.Millisecond)
	_, ok = cache.Get("EP101")
	assert.False(t, ok)
}

func TestRecord_PromptContext(t *testing.T) {
	record := &Record{
		Title:    "Episode 101",
		Program:  "Morning Show",
		Keywords: []string{"news", "weather"},
	}
	out := record.PromptContext()
	assert.Contains(t, out, "Title: Episode 101")
	assert.Contains(t, out, "Keywords: news, weather")

	var nilRecord *Record
	assert.Empty(t, nilRecord.PromptContext())
}
