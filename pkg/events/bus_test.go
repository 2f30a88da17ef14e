package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recvEnvelope(t *testing.T, sub *Subscription) Envelope {
	t.Helper()
	select {
	case env, ok := <-sub.C:
		require.True(t, ok, "subscription closed")
		return env
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for envelope")
		return Envelope{}
	}
}

func TestBus_PublishToChannelSubscriber(t *testing.T) {
	bus := NewBus(nil)
	sub := bus.Subscribe(JobChannel(1))
	defer bus.Unsubscribe(sub)

	bus.Publish(JobChannel(1), Envelope{EventID: 1, Type: EventTypeJobQueued})

	env := recvEnvelope(t, sub)
	assert.Equal(t, EventTypeJobQueued, env.Type)
}

func TestBus_ChannelFiltering(t *testing.T) {
	bus := NewBus(nil)
	job1 := bus.Subscribe(JobChannel(1))
	job2 := bus.Subscribe(JobChannel(2))
	all := bus.Subscribe()
	defer bus.Unsubscribe(job1)
	defer bus.Unsubscribe(job2)
	defer bus.Unsubscribe(all)

	bus.Publish(JobChannel(1), Envelope{EventID: 1, Type: EventTypePhaseStarted})

	assert.Equal(t, EventTypePhaseStarted, recvEnvelope(t, job1).Type)
	assert.Equal(t, EventTypePhaseStarted, recvEnvelope(t, all).Type)

	select {
	case env := <-job2.C:
		t.Fatalf("unexpected envelope on other job channel: %+v", env)
	default:
	}
}

func TestBus_SlowSubscriberDropsEvents(t *testing.T) {
	bus := NewBus(nil)
	sub := bus.SubscribeBuffered(2, GlobalChannel)
	defer bus.Unsubscribe(sub)

	for i := 1; i <= 5; i++ {
		bus.Publish(GlobalChannel, Envelope{EventID: i, Type: EventTypeCostUpdate})
	}

	// Buffer holds the first two; the rest are dropped, never blocking.
	assert.Equal(t, 1, recvEnvelope(t, sub).EventID)
	assert.Equal(t, 2, recvEnvelope(t, sub).EventID)
	assert.Equal(t, int64(3), sub.Dropped())
}

func TestBus_UnsubscribeClosesChannel(t *testing.T) {
	bus := NewBus(nil)
	sub := bus.Subscribe(GlobalChannel)

	bus.Unsubscribe(sub)
	_, ok := <-sub.C
	assert.False(t, ok)
	assert.Equal(t, 0, bus.SubscriberCount())

	// Idempotent.
	bus.Unsubscribe(sub)

	// Publishing after unsubscribe is a no-op.
	bus.Publish(GlobalChannel, Envelope{EventID: 9})
}
