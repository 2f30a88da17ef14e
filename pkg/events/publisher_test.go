package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu     sync.Mutex
	nextID int
	rows   []storedEvent
	fail   bool
}

type storedEvent struct {
	jobID     *int
	eventType string
	data      map[string]interface{}
}

func (f *fakeStore) Append(_ context.Context, jobID *int, eventType string, data map[string]interface{}) (int, time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return 0, time.Time{}, errors.New("disk full")
	}
	f.nextID++
	f.rows = append(f.rows, storedEvent{jobID: jobID, eventType: eventType, data: data})
	return f.nextID, time.Now().UTC(), nil
}

func TestPublisher_PersistsThenBroadcasts(t *testing.T) {
	store := &fakeStore{}
	bus := NewBus(nil)
	pub := NewPublisher(store, bus, nil)

	jobSub := bus.Subscribe(JobChannel(7))
	globalSub := bus.Subscribe(GlobalChannel)
	defer bus.Unsubscribe(jobSub)
	defer bus.Unsubscribe(globalSub)

	pub.JobQueued(context.Background(), 7, "show_EP101.srt", "show_EP101", 5)

	require.Len(t, store.rows, 1)
	assert.Equal(t, EventTypeJobQueued, store.rows[0].eventType)
	require.NotNil(t, store.rows[0].jobID)
	assert.Equal(t, 7, *store.rows[0].jobID)

	env := recvEnvelope(t, jobSub)
	assert.Equal(t, 1, env.EventID)
	assert.Equal(t, EventTypeJobQueued, env.Type)
	assert.Equal(t, "show_EP101.srt", env.Data["transcript_file"])

	// The same event also lands on the global channel.
	assert.Equal(t, 1, recvEnvelope(t, globalSub).EventID)
}

func TestPublisher_SystemEventsHaveNoJobID(t *testing.T) {
	store := &fakeStore{}
	bus := NewBus(nil)
	pub := NewPublisher(store, bus, nil)

	globalSub := bus.Subscribe(GlobalChannel)
	defer bus.Unsubscribe(globalSub)

	pub.SystemPause(context.Background(), "cost cap reached")

	require.Len(t, store.rows, 1)
	assert.Nil(t, store.rows[0].jobID)

	env := recvEnvelope(t, globalSub)
	assert.Equal(t, EventTypeSystemPause, env.Type)
	assert.Nil(t, env.JobID)
}

func TestPublisher_PersistFailureSkipsBroadcast(t *testing.T) {
	store := &fakeStore{fail: true}
	bus := NewBus(nil)
	pub := NewPublisher(store, bus, nil)

	sub := bus.Subscribe(GlobalChannel)
	defer bus.Unsubscribe(sub)

	pub.JobCancelled(context.Background(), 3)

	select {
	case env := <-sub.C:
		t.Fatalf("unexpected broadcast after persist failure: %+v", env)
	default:
	}
}

func TestPublisher_RecordCostUpdate(t *testing.T) {
	store := &fakeStore{}
	bus := NewBus(nil)
	pub := NewPublisher(store, bus, nil)

	sub := bus.Subscribe(JobChannel(4))
	defer bus.Unsubscribe(sub)

	pub.RecordCostUpdate(context.Background(), 4, "gpt-4o-mini", 1000, 500, 0.02)

	env := recvEnvelope(t, sub)
	assert.Equal(t, EventTypeCostUpdate, env.Type)
	assert.Equal(t, "gpt-4o-mini", env.Data["model"])
	assert.Equal(t, 0.02, env.Data["cost"])
}

func TestPublisher_ModelFallback(t *testing.T) {
	store := &fakeStore{}
	bus := NewBus(nil)
	pub := NewPublisher(store, bus, nil)

	pub.ModelFallback(context.Background(), 9, "analyst", "cheapskate", "default", "failure")

	require.Len(t, store.rows, 1)
	assert.Equal(t, EventTypeModelFallback, store.rows[0].eventType)
	assert.Equal(t, "cheapskate", store.rows[0].data["from_tier"])
	assert.Equal(t, "default", store.rows[0].data["to_tier"])
}
