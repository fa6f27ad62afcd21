package controller

import (
	"clubhub/client"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrationFeedDeliversOnlyTheWatchedEvent(t *testing.T) {
	s := newTestServer()
	server := httptest.NewServer(s.router)
	defer server.Close()

	eventId := uuid.New()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/events/" + eventId.String() + "/registrations/ws?token=" + s.token(t, 1, "admin")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return s.feed.Connections(eventId) == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, s.feed.Publish(context.Background(), &client.RegistrationMessage{Type: client.RegistrationSubmitted, EventId: uuid.New()}))
	require.NoError(t, s.feed.Publish(context.Background(), &client.RegistrationMessage{
		Type:            client.RegistrationSubmitted,
		EventId:         eventId,
		ParticipantName: "A. Rahman",
	}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)
	var message client.RegistrationMessage
	require.NoError(t, json.Unmarshal(payload, &message))
	assert.Equal(t, eventId, message.EventId)
	assert.Equal(t, "A. Rahman", message.ParticipantName)

	conn.Close()
	assert.Eventually(t, func() bool { return s.feed.Connections(eventId) == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestRegistrationFeedNeedsOrganizer(t *testing.T) {
	s := newTestServer()
	server := httptest.NewServer(s.router)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/events/" + uuid.NewString() + "/registrations/ws?token=" + s.token(t, 1, "member")
	_, response, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, response)
	assert.Equal(t, http.StatusForbidden, response.StatusCode)
}

func TestRegistrationFeedClose(t *testing.T) {
	s := newTestServer()
	server := httptest.NewServer(s.router)
	defer server.Close()

	eventId := uuid.New()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/events/" + eventId.String() + "/registrations/ws?token=" + s.token(t, 1, "executive")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return s.feed.Connections(eventId) == 1 }, 2*time.Second, 10*time.Millisecond)

	s.feed.Close()
	assert.Equal(t, 0, s.feed.Connections(eventId))
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "%v", err)
}
