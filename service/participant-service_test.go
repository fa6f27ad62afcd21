package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindExistingParticipant(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	event := seedEvent(t, "Science Fest")
	quiz := seedCompetition(t, event.Id, "Quiz", 0, true)
	submitted, err := NewRegistrationService(db, nil).SubmitRegistration(ctx, event.Id, formFor(quiz))
	require.NoError(t, err)
	service := NewParticipantService(db)

	cases := []struct {
		name            string
		email           string
		idAtInstitution string
		institution     string
		found           bool
	}{
		{"email", "a@x.com", "", "", true},
		{"membership", "", "S123", "ACPS", true},
		{"email matches, membership does not", "a@x.com", "X9", "Other", true},
		{"membership matches, email does not", "z@x.com", "S123", "ACPS", true},
		{"same id at another institution", "", "S123", "Other", false},
		{"nothing given", "", "", "", false},
		{"stranger", "z@x.com", "X9", "Other", false},
	}
	for _, tc := range cases {
		participant, err := service.FindExistingParticipant(ctx, tc.email, tc.idAtInstitution, tc.institution)
		require.NoError(t, err, tc.name)
		if tc.found {
			require.NotNil(t, participant, tc.name)
			assert.Equal(t, submitted.Participant.Id, participant.Id, tc.name)
		} else {
			assert.Nil(t, participant, tc.name)
		}
	}
}

func TestGetParticipantWithRegistrations(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	event := seedEvent(t, "Science Fest")
	quiz := seedCompetition(t, event.Id, "Quiz", 0, true)
	poster := seedCompetition(t, event.Id, "Poster", 0, true)
	submitted, err := NewRegistrationService(db, nil).SubmitRegistration(ctx, event.Id, formFor(quiz, poster))
	require.NoError(t, err)

	participant, err := NewParticipantService(db).GetParticipantWithRegistrations(ctx, submitted.Participant.Id)
	require.NoError(t, err)
	assert.Equal(t, "A. Rahman", participant.Participant.Name)
	assert.Len(t, participant.Registrations, 2)
}
