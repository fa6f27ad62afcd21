package controller

import (
	"clubhub/client"
	"clubhub/metrics"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

const feedWriteWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// organizers authenticate with a token, the origin does not matter
		return true
	},
}

// RegistrationFeed pushes registration messages to organizers watching an event.
// It is registered with the dispatcher like any other listener.
type RegistrationFeed struct {
	mu          sync.Mutex
	connections map[uuid.UUID]map[*websocket.Conn]struct{}
}

func NewRegistrationFeed() *RegistrationFeed {
	return &RegistrationFeed{
		connections: make(map[uuid.UUID]map[*websocket.Conn]struct{}),
	}
}

func (f *RegistrationFeed) routes() []RouteInfo {
	return []RouteInfo{
		{Method: "GET", Path: "/events/:event_id/registrations/ws", HandlerFunc: f.webSocketHandler, Authenticated: true, RequiredRoles: organizers},
	}
}

func (f *RegistrationFeed) Name() string {
	return "websocket"
}

func (f *RegistrationFeed) Publish(ctx context.Context, message *client.RegistrationMessage) error {
	serialized, err := json.Marshal(message)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for conn := range f.connections[message.EventId] {
		if err := ctx.Err(); err != nil {
			return err
		}
		_ = conn.SetWriteDeadline(time.Now().Add(feedWriteWait))
		if err := conn.WriteMessage(websocket.TextMessage, serialized); err != nil {
			log.WithField("event_id", message.EventId).WithError(err).Debug("dropping registration feed connection")
			f.remove(message.EventId, conn)
		}
	}
	return nil
}

// Connections reports how many organizers are watching the event.
func (f *RegistrationFeed) Connections(eventId uuid.UUID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.connections[eventId])
}

// Close disconnects every organizer, used on shutdown.
func (f *RegistrationFeed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for eventId, conns := range f.connections {
		for conn := range conns {
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(feedWriteWait))
			f.remove(eventId, conn)
		}
	}
}

// remove expects f.mu to be held.
func (f *RegistrationFeed) remove(eventId uuid.UUID, conn *websocket.Conn) {
	if _, ok := f.connections[eventId][conn]; !ok {
		return
	}
	_ = conn.Close()
	delete(f.connections[eventId], conn)
	if len(f.connections[eventId]) == 0 {
		delete(f.connections, eventId)
	}
	metrics.FeedConnections.Dec()
}

// @id RegistrationWebSocket
// @Description Websocket with every registration and status change of the event as it happens.
// @Description Browsers pass the token as the token query parameter.
// @Tags registration
// @Param event_id path string true "Event Id"
// @Param token query string false "Auth token"
// @Success 200 {object} client.RegistrationMessage
// @Security BearerAuth
// @Router /events/{event_id}/registrations/ws [get]
func (f *RegistrationFeed) webSocketHandler(c *gin.Context) {
	eventId, ok := uuidParam(c, "event_id")
	if !ok {
		return
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	f.mu.Lock()
	if _, ok := f.connections[eventId]; !ok {
		f.connections[eventId] = make(map[*websocket.Conn]struct{})
	}
	f.connections[eventId][conn] = struct{}{}
	metrics.FeedConnections.Inc()
	f.mu.Unlock()

	// the feed is one way, reading only detects the client going away
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			f.mu.Lock()
			f.remove(eventId, conn)
			f.mu.Unlock()
			return
		}
	}
}
