package controller

import (
	"clubhub/repository"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticipantReviewFlow(t *testing.T) {
	requireDB(t)
	s := newTestServer()
	event, free, paid := seedCatalog(t)
	admin := s.token(t, 1, "admin")

	body := registrationBody(free.Id, paid.Id)
	body["transaction_id"] = "TX-9"
	body["payment_provider"] = "BKash"
	code, response := s.do(t, http.MethodPost, "/api/events/"+event.Id.String()+"/registrations", body, "")
	require.Equal(t, http.StatusCreated, code, response.Error)
	submitted := decode[SubmittedRegistrationResponse](t, response)

	code, response = s.do(t, http.MethodGet, "/api/events/"+event.Id.String()+"/participants", nil, admin)
	require.Equal(t, http.StatusOK, code)
	participants := decode[[]EventParticipantResponse](t, response)
	require.Len(t, participants, 1)
	assert.Equal(t, 100.0, participants[0].TotalFee)
	assert.Len(t, participants[0].Registrations, 2)
	assert.Equal(t, "TX-9", *participants[0].Participant.TransactionId)

	registrationId := submitted.Registrations[0].Id.String()
	code, response = s.do(t, http.MethodPut, "/api/registrations/"+registrationId+"/status", map[string]string{"status": "approved"}, admin)
	require.Equal(t, http.StatusOK, code, response.Error)
	assert.Equal(t, repository.Confirmed, decode[RegistrationResponse](t, response).Status)

	code, response = s.do(t, http.MethodPut,
		"/api/events/"+event.Id.String()+"/participants/"+submitted.Participant.Id.String()+"/status",
		map[string]string{"status": "rejected"}, s.token(t, 2, "executive"))
	require.Equal(t, http.StatusOK, code, response.Error)
	updated := decode[[]RegistrationResponse](t, response)
	require.Len(t, updated, 2)
	for _, registration := range updated {
		assert.Equal(t, repository.Rejected, registration.Status)
	}

	code, response = s.do(t, http.MethodGet, "/api/participants/"+submitted.Participant.Id.String(), nil, admin)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[EventParticipantResponse](t, response).Registrations, 2)
	s.dispatcher.Wait()
}

func TestSetStatusUnknownRegistrationEndpoint(t *testing.T) {
	requireDB(t)
	s := newTestServer()
	code, response := s.do(t, http.MethodPut, "/api/registrations/00000000-0000-0000-0000-000000000001/status",
		map[string]string{"status": "confirmed"}, s.token(t, 1, "admin"))
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, response.Success)
}
