package service

import (
	"clubhub/app_error"
	"clubhub/repository"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventLifecycle(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	service := NewEventService(db)

	event, err := service.CreateEvent(ctx, &repository.Event{Title: "Science Fest", Venue: "Hall 1"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, event.Id)

	published, err := service.GetAllEvents(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, published)

	isPublished := true
	title := "Science Fest 2026"
	updated, err := service.UpdateEvent(ctx, event.Id, &EventUpdate{Title: &title, IsPublished: &isPublished})
	require.NoError(t, err)
	assert.Equal(t, "Science Fest 2026", updated.Title)
	assert.Equal(t, "Hall 1", updated.Venue)

	published, err = service.GetAllEvents(ctx, true)
	require.NoError(t, err)
	assert.Len(t, published, 1)

	require.NoError(t, service.DeleteEvent(ctx, event.Id))
	_, err = service.GetEventById(ctx, event.Id)
	var notFound *app_error.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.ErrorAs(t, service.DeleteEvent(ctx, event.Id), &notFound)
}

func TestEventScheduleMustBeOrdered(t *testing.T) {
	requireDB(t)
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)
	_, err := NewEventService(db).CreateEvent(context.Background(), &repository.Event{Title: "Backwards", StartsAt: &start, EndsAt: &end})
	var validationErr *app_error.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "ends_at", validationErr.Fields[0].Field)
}

func TestDeleteEventCascades(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	event := seedEvent(t, "Science Fest")
	quiz := seedCompetition(t, event.Id, "Quiz", 0, true)
	_, err := NewRegistrationService(db, nil).SubmitRegistration(ctx, event.Id, formFor(quiz))
	require.NoError(t, err)

	require.NoError(t, NewEventService(db).DeleteEvent(ctx, event.Id))
	assert.Equal(t, int64(0), countRows(t, &repository.Competition{}))
	assert.Equal(t, int64(0), countRows(t, &repository.CompetitionRegistration{}))
	assert.Equal(t, int64(1), countRows(t, &repository.Participant{}))
}
