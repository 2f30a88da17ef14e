package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatchup struct {
	envs []Envelope
}

func (f *fakeCatchup) GetCatchupEvents(_ context.Context, _ string, sinceID, limit int) ([]Envelope, error) {
	var out []Envelope
	for _, e := range f.envs {
		if e.EventID > sinceID {
			out = append(out, e)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func newTestHub(t *testing.T, bus *Bus, catchup CatchupQuerier) (*Hub, *websocket.Conn) {
	t.Helper()

	hub := NewHub(bus, catchup, time.Second, nil)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		hub.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(server.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	conn, _, err := websocket.Dial(ctx, "ws"+server.URL[len("http"):], nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })

	return hub, conn
}

func readMessage(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func writeMessage(t *testing.T, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func waitForSubscribers(t *testing.T, hub *Hub, channel string, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.subscriberCount(channel) == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("channel %s never reached %d subscribers", channel, want)
}

func TestHub_SubscribeAndBroadcast(t *testing.T) {
	bus := NewBus(nil)
	hub, conn := newTestHub(t, bus, nil)

	assert.Equal(t, "connection.established", readMessage(t, conn)["type"])

	writeMessage(t, conn, ClientMessage{Action: "subscribe", Channel: JobChannel(1)})
	confirmed := readMessage(t, conn)
	assert.Equal(t, "subscription.confirmed", confirmed["type"])
	assert.Equal(t, JobChannel(1), confirmed["channel"])
	waitForSubscribers(t, hub, JobChannel(1), 1)

	bus.Publish(JobChannel(1), Envelope{EventID: 10, Type: EventTypePhaseStarted})

	msg := readMessage(t, conn)
	assert.Equal(t, EventTypePhaseStarted, msg["type"])
	assert.Equal(t, float64(10), msg["event_id"])
}

func TestHub_Ping(t *testing.T) {
	bus := NewBus(nil)
	_, conn := newTestHub(t, bus, nil)

	readMessage(t, conn) // connection.established

	writeMessage(t, conn, ClientMessage{Action: "ping"})
	assert.Equal(t, "pong", readMessage(t, conn)["type"])
}

func TestHub_SubscribeRequiresChannel(t *testing.T) {
	bus := NewBus(nil)
	_, conn := newTestHub(t, bus, nil)

	readMessage(t, conn) // connection.established

	writeMessage(t, conn, ClientMessage{Action: "subscribe"})
	assert.Equal(t, "error", readMessage(t, conn)["type"])
}

func TestHub_AutoCatchupOnSubscribe(t *testing.T) {
	bus := NewBus(nil)
	catchup := &fakeCatchup{envs: []Envelope{
		{EventID: 1, Type: EventTypeJobQueued},
		{EventID: 2, Type: EventTypeJobStarted},
	}}
	_, conn := newTestHub(t, bus, catchup)

	readMessage(t, conn) // connection.established

	writeMessage(t, conn, ClientMessage{Action: "subscribe", Channel: GlobalChannel})
	readMessage(t, conn) // subscription.confirmed

	first := readMessage(t, conn)
	assert.Equal(t, EventTypeJobQueued, first["type"])
	second := readMessage(t, conn)
	assert.Equal(t, EventTypeJobStarted, second["type"])
}

func TestHub_CatchupSinceCursor(t *testing.T) {
	bus := NewBus(nil)
	catchup := &fakeCatchup{envs: []Envelope{
		{EventID: 1, Type: EventTypeJobQueued},
		{EventID: 2, Type: EventTypeJobStarted},
		{EventID: 3, Type: EventTypePhaseStarted},
	}}
	_, conn := newTestHub(t, bus, catchup)

	readMessage(t, conn) // connection.established

	since := 2
	writeMessage(t, conn, ClientMessage{Action: "catchup", Channel: GlobalChannel, LastEventID: &since})

	msg := readMessage(t, conn)
	assert.Equal(t, EventTypePhaseStarted, msg["type"])
	assert.Equal(t, float64(3), msg["event_id"])
}

func TestHub_UnsubscribeStopsDelivery(t *testing.T) {
	bus := NewBus(nil)
	hub, conn := newTestHub(t, bus, nil)

	readMessage(t, conn) // connection.established

	writeMessage(t, conn, ClientMessage{Action: "subscribe", Channel: GlobalChannel})
	readMessage(t, conn) // subscription.confirmed
	waitForSubscribers(t, hub, GlobalChannel, 1)

	writeMessage(t, conn, ClientMessage{Action: "unsubscribe", Channel: GlobalChannel})
	waitForSubscribers(t, hub, GlobalChannel, 0)

	bus.Publish(GlobalChannel, Envelope{EventID: 99, Type: EventTypeCostUpdate})

	// The only message left should be the pong, not the broadcast.
	writeMessage(t, conn, ClientMessage{Action: "ping"})
	assert.Equal(t, "pong", readMessage(t, conn)["type"])
}
