package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// catchupLimit is the maximum number of events returned in a catchup
// response. If more events are missed, a catchup.overflow message tells the
// client to do a full REST reload.
const catchupLimit = 200

// CatchupQuerier queries persisted events for catchup. Implemented by the
// event service.
type CatchupQuerier interface {
	GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]Envelope, error)
}

// Hub manages WebSocket connections and their channel subscriptions,
// bridging the in-process bus to clients. One Hub per process.
type Hub struct {
	bus *Bus

	// Active connections: connection_id -> *Connection
	connections map[string]*Connection
	mu          sync.RWMutex

	// Channel subscriptions: channel -> set of connection_ids, plus the
	// bus subscription feeding that channel.
	channels  map[string]*channelState
	channelMu sync.Mutex

	catchupQuerier CatchupQuerier
	writeTimeout   time.Duration
	logger         *slog.Logger
}

type channelState struct {
	connIDs map[string]bool
	sub     *Subscription
}

// Connection represents a single WebSocket client.
//
// subscriptions is accessed WITHOUT a lock. This is safe because all reads
// and writes happen on the single goroutine that owns this connection
// (HandleConnection's read loop and its deferred cleanup).
type Connection struct {
	ID            string
	Conn          *websocket.Conn
	subscriptions map[string]bool
	ctx           context.Context
	cancel        context.CancelFunc
}

// NewHub creates a Hub over the given bus.
func NewHub(bus *Bus, catchupQuerier CatchupQuerier, writeTimeout time.Duration, logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	if writeTimeout <= 0 {
		writeTimeout = 5 * time.Second
	}
	return &Hub{
		bus:            bus,
		connections:    make(map[string]*Connection),
		channels:       make(map[string]*channelState),
		catchupQuerier: catchupQuerier,
		writeTimeout:   writeTimeout,
		logger:         logger,
	}
}

// HandleConnection manages the lifecycle of a single WebSocket connection.
// Called by the WebSocket HTTP handler after upgrade. Blocks until the
// connection closes.
func (h *Hub) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	connID := uuid.New().String()
	ctx, cancel := context.WithCancel(parentCtx)

	c := &Connection{
		ID:            connID,
		Conn:          conn,
		subscriptions: make(map[string]bool),
		ctx:           ctx,
		cancel:        cancel,
	}

	h.registerConnection(c)
	defer h.unregisterConnection(c)

	h.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": connID,
	})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			// Connection closed or errored, exit the read loop
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			h.logger.Warn("Invalid WebSocket message",
				"connection_id", connID, "error", err)
			continue
		}

		h.handleClientMessage(ctx, c, &msg)
	}
}

// ActiveConnections returns the count of active WebSocket connections.
func (h *Hub) ActiveConnections() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.connections)
}

// subscriberCount returns the number of subscribers for a channel.
// Unexported, used by tests to poll instead of sleeping.
func (h *Hub) subscriberCount(channel string) int {
	h.channelMu.Lock()
	defer h.channelMu.Unlock()
	if st, ok := h.channels[channel]; ok {
		return len(st.connIDs)
	}
	return 0
}

func (h *Hub) handleClientMessage(ctx context.Context, c *Connection, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.Channel == "" {
			h.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for subscribe"})
			return
		}
		h.subscribe(c, msg.Channel)
		h.sendJSON(c, map[string]string{
			"type":    "subscription.confirmed",
			"channel": msg.Channel,
		})
		// Auto catch-up so late subscribers do not miss prior events.
		h.handleCatchup(ctx, c, msg.Channel, 0)

	case "unsubscribe":
		if msg.Channel == "" {
			h.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for unsubscribe"})
			return
		}
		h.unsubscribe(c, msg.Channel)

	case "catchup":
		if msg.Channel == "" {
			h.sendJSON(c, map[string]string{"type": "error", "message": "channel is required for catchup"})
			return
		}
		if msg.LastEventID != nil {
			h.handleCatchup(ctx, c, msg.Channel, *msg.LastEventID)
		}

	case "ping":
		h.sendJSON(c, map[string]string{"type": "pong"})
	}
}

// subscribe registers a connection for a channel. The first subscriber
// opens a bus subscription for the channel and starts the forwarding
// goroutine; later subscribers share it.
func (h *Hub) subscribe(c *Connection, channel string) {
	h.channelMu.Lock()
	st, exists := h.channels[channel]
	if !exists {
		st = &channelState{
			connIDs: make(map[string]bool),
			sub:     h.bus.Subscribe(channel),
		}
		h.channels[channel] = st
		go h.forward(channel, st.sub)
	}
	st.connIDs[c.ID] = true
	h.channelMu.Unlock()

	c.subscriptions[channel] = true
}

// unsubscribe removes a connection from a channel. The last subscriber
// closes the bus subscription, which stops the forwarding goroutine.
func (h *Hub) unsubscribe(c *Connection, channel string) {
	h.channelMu.Lock()
	if st, exists := h.channels[channel]; exists {
		delete(st.connIDs, c.ID)
		if len(st.connIDs) == 0 {
			delete(h.channels, channel)
			h.bus.Unsubscribe(st.sub)
		}
	}
	h.channelMu.Unlock()

	delete(c.subscriptions, channel)
}

// forward pumps bus envelopes for one channel to its subscribed
// connections. Exits when the bus subscription is closed.
func (h *Hub) forward(channel string, sub *Subscription) {
	for env := range sub.C {
		data, err := json.Marshal(env)
		if err != nil {
			continue
		}
		h.broadcast(channel, data)
	}
}

// broadcast sends raw bytes to every connection subscribed to a channel.
func (h *Hub) broadcast(channel string, data []byte) {
	h.channelMu.Lock()
	st, exists := h.channels[channel]
	if !exists {
		h.channelMu.Unlock()
		return
	}
	ids := make([]string, 0, len(st.connIDs))
	for id := range st.connIDs {
		ids = append(ids, id)
	}
	h.channelMu.Unlock()

	// Snapshot connection pointers, then release the lock before the
	// potentially slow writes (up to writeTimeout per connection).
	h.mu.RLock()
	conns := make([]*Connection, 0, len(ids))
	for _, id := range ids {
		if conn, ok := h.connections[id]; ok {
			conns = append(conns, conn)
		}
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		if err := h.sendRaw(conn, data); err != nil {
			h.logger.Warn("Failed to send to WebSocket client",
				"connection_id", conn.ID, "error", err)
		}
	}
}

// handleCatchup sends missed events since lastEventID to the client.
func (h *Hub) handleCatchup(ctx context.Context, c *Connection, channel string, lastEventID int) {
	if h.catchupQuerier == nil {
		return
	}

	// Query one past the limit to detect overflow.
	envs, err := h.catchupQuerier.GetCatchupEvents(ctx, channel, lastEventID, catchupLimit+1)
	if err != nil {
		h.logger.Error("Catchup query failed", "channel", channel, "error", err)
		return
	}

	hasMore := len(envs) > catchupLimit
	if hasMore {
		envs = envs[:catchupLimit]
	}

	for _, env := range envs {
		data, err := json.Marshal(env)
		if err != nil {
			continue
		}
		if err := h.sendRaw(c, data); err != nil {
			h.logger.Warn("Failed to send catchup event",
				"connection_id", c.ID, "error", err)
			return
		}
	}

	// More events were missed than the catchup limit; tell the client to
	// do a full REST reload instead of paginating catchup requests.
	if hasMore {
		h.sendJSON(c, map[string]interface{}{
			"type":     "catchup.overflow",
			"channel":  channel,
			"has_more": true,
		})
	}
}

func (h *Hub) registerConnection(c *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[c.ID] = c
}

func (h *Hub) unregisterConnection(c *Connection) {
	for ch := range c.subscriptions {
		h.unsubscribe(c, ch)
	}

	h.mu.Lock()
	delete(h.connections, c.ID)
	h.mu.Unlock()

	c.cancel()
	_ = c.Conn.Close(websocket.StatusNormalClosure, "")
}

func (h *Hub) sendJSON(c *Connection, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		h.logger.Warn("Failed to marshal WebSocket message",
			"connection_id", c.ID, "error", err)
		return
	}
	if err := h.sendRaw(c, data); err != nil {
		h.logger.Warn("Failed to send WebSocket message",
			"connection_id", c.ID, "error", err)
	}
}

func (h *Hub) sendRaw(c *Connection, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, h.writeTimeout)
	defer cancel()
	return c.Conn.Write(writeCtx, websocket.MessageText, data)
}
