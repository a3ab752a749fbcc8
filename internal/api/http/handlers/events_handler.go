package handlers

import (
	"errors"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/scheduling-service/internal/events"
)

var errObserverUnavailable = errors.New("observer queue full or closed")

// EventsHandler serves the live appointment feed over WebSocket.
type EventsHandler struct {
	broadcaster *events.Broadcaster
	buffer      int
	logger      *zap.Logger
}

// NewEventsHandler constructs handler.
func NewEventsHandler(broadcaster *events.Broadcaster, buffer int, logger *zap.Logger) *EventsHandler {
	if buffer <= 0 {
		buffer = 16
	}
	return &EventsHandler{broadcaster: broadcaster, buffer: buffer, logger: logger}
}

// Upgrade rejects plain HTTP requests on the WebSocket route.
func (h *EventsHandler) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Serve returns the WebSocket handler for GET /ws.
func (h *EventsHandler) Serve() fiber.Handler {
	return websocket.New(h.handleConn)
}

func (h *EventsHandler) handleConn(conn *websocket.Conn) {
	obs := newWSObserver(h.buffer)
	h.broadcaster.Register(obs)
	defer func() {
		h.broadcaster.Unregister(obs)
		obs.close()
		_ = conn.Close()
	}()

	go func() {
		for {
			select {
			case ev := <-obs.send:
				if err := conn.WriteJSON(ev); err != nil {
					h.logger.Debug("websocket write failed", zap.Error(err))
					_ = conn.Close()
					return
				}
			case <-obs.done:
				return
			}
		}
	}()

	// Inbound frames carry nothing meaningful; the read loop only detects
	// disconnects.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// wsObserver bridges the broadcaster to one connection through a bounded
// queue. Deliver never blocks: a full queue marks the observer unreachable
// and the broadcaster drops it.
type wsObserver struct {
	send chan events.Event
	done chan struct{}
	once sync.Once
}

func newWSObserver(buffer int) *wsObserver {
	return &wsObserver{
		send: make(chan events.Event, buffer),
		done: make(chan struct{}),
	}
}

func (o *wsObserver) Deliver(ev events.Event) error {
	select {
	case <-o.done:
		return errObserverUnavailable
	default:
	}
	select {
	case o.send <- ev:
		return nil
	default:
		return errObserverUnavailable
	}
}

func (o *wsObserver) close() {
	o.once.Do(func() { close(o.done) })
}
