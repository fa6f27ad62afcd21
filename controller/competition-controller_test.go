package controller

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogEndpoints(t *testing.T) {
	requireDB(t)
	s := newTestServer()
	admin := s.token(t, 1, "admin")

	code, response := s.do(t, http.MethodPost, "/api/events", map[string]any{"title": "Science Fest", "is_published": true}, admin)
	require.Equal(t, http.StatusCreated, code, response.Error)
	event := decode[EventResponse](t, response)
	base := "/api/events/" + event.Id.String() + "/competitions"

	code, response = s.do(t, http.MethodGet, base, nil, "")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, decode[[]CompetitionResponse](t, response))

	created := make([]CompetitionResponse, 0)
	for _, title := range []string{"Quiz", "Poster"} {
		code, response = s.do(t, http.MethodPost, base, map[string]any{"title": title, "fee": 10, "is_published": true}, admin)
		require.Equal(t, http.StatusCreated, code, response.Error)
		created = append(created, decode[CompetitionResponse](t, response))
	}

	// the public list was cached while empty, creating competitions has to drop it
	code, response = s.do(t, http.MethodGet, base, nil, "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]CompetitionResponse](t, response), 2)

	code, response = s.do(t, http.MethodPut, base+"/order",
		map[string]any{"competition_ids": []uuid.UUID{created[1].Id, created[0].Id}}, admin)
	require.Equal(t, http.StatusOK, code, response.Error)
	ordered := decode[[]CompetitionResponse](t, response)
	assert.Equal(t, "Poster", ordered[0].Title)
	assert.Equal(t, 1, ordered[0].DisplayOrder)

	code, response = s.do(t, http.MethodPut, base+"/order",
		map[string]any{"competition_ids": []uuid.UUID{created[1].Id}}, admin)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "competition_ids", response.Errors[0].Field)

	code, _ = s.do(t, http.MethodPatch, base+"/"+created[0].Id.String(), map[string]any{"is_published": false}, admin)
	require.Equal(t, http.StatusOK, code)
	code, response = s.do(t, http.MethodGet, base, nil, "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]CompetitionResponse](t, response), 1)

	code, response = s.do(t, http.MethodGet, base+"/all", nil, admin)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]CompetitionResponse](t, response), 2)

	code, _ = s.do(t, http.MethodDelete, base+"/"+created[0].Id.String(), nil, admin)
	require.Equal(t, http.StatusOK, code)
	code, _ = s.do(t, http.MethodDelete, "/api/events/"+event.Id.String(), nil, admin)
	require.Equal(t, http.StatusOK, code)
	code, _ = s.do(t, http.MethodGet, "/api/events/"+event.Id.String(), nil, "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestUsersSelf(t *testing.T) {
	requireDB(t)
	s := newTestServer()
	require.NoError(t, db.Exec(`INSERT INTO club.users (id, display_name, email, permissions) VALUES (5, 'Organizer', 'o@x.com', '{executive}')`).Error)

	code, response := s.do(t, http.MethodGet, "/api/users/self", nil, s.token(t, 5, "executive"))
	require.Equal(t, http.StatusOK, code, response.Error)
	user := decode[UserResponse](t, response)
	assert.Equal(t, "Organizer", user.DisplayName)
	assert.Equal(t, []string{"executive"}, user.Permissions)

	code, _ = s.do(t, http.MethodGet, "/api/users/self", nil, s.token(t, 6))
	assert.Equal(t, http.StatusNotFound, code)
}
