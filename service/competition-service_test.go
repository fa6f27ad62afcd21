package service

import (
	"clubhub/app_error"
	"clubhub/repository"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(competitions []*repository.Competition) []string {
	result := make([]string, 0, len(competitions))
	for _, c := range competitions {
		result = append(result, c.Title)
	}
	return result
}

func TestCreateCompetitionAppends(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	event := seedEvent(t, "Science Fest")
	service := NewCompetitionService(db)

	first, err := service.CreateCompetition(ctx, event.Id, &repository.Competition{Title: "Quiz", IsPublished: true})
	require.NoError(t, err)
	second, err := service.CreateCompetition(ctx, event.Id, &repository.Competition{Title: "Poster", Fee: 50})
	require.NoError(t, err)
	assert.Equal(t, 1, first.DisplayOrder)
	assert.Equal(t, 2, second.DisplayOrder)

	public, err := service.GetCompetitionsForEvent(ctx, event.Id, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Quiz"}, titles(public))
	all, err := service.GetCompetitionsForEvent(ctx, event.Id, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Quiz", "Poster"}, titles(all))

	_, err = service.CreateCompetition(ctx, event.Id, &repository.Competition{Title: "Bad", Fee: -1})
	var validationErr *app_error.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	_, err = service.CreateCompetition(ctx, uuid.New(), &repository.Competition{Title: "Orphan"})
	var notFound *app_error.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestReorderCompetitions(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	event := seedEvent(t, "Science Fest")
	a := seedCompetition(t, event.Id, "A", 0, true)
	b := seedCompetition(t, event.Id, "B", 0, true)
	c := seedCompetition(t, event.Id, "C", 0, false)
	service := NewCompetitionService(db)

	reordered, err := service.ReorderCompetitions(ctx, event.Id, []uuid.UUID{c.Id, a.Id, b.Id})
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B"}, titles(reordered))
	for i, competition := range reordered {
		assert.Equal(t, i+1, competition.DisplayOrder)
	}

	for name, ids := range map[string][]uuid.UUID{
		"missing":   {a.Id, b.Id},
		"duplicate": {a.Id, a.Id, b.Id},
		"foreign":   {a.Id, b.Id, uuid.New()},
	} {
		_, err := service.ReorderCompetitions(ctx, event.Id, ids)
		var validationErr *app_error.ValidationError
		require.ErrorAs(t, err, &validationErr, name)
		assert.Equal(t, "competition_ids", validationErr.Fields[0].Field, name)
	}
}

func TestUpdateCompetition(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	event := seedEvent(t, "Science Fest")
	other := seedEvent(t, "Math Fest")
	quiz := seedCompetition(t, event.Id, "Quiz", 0, false)
	service := NewCompetitionService(db)

	fee := 75.0
	published := true
	updated, err := service.UpdateCompetition(ctx, event.Id, quiz.Id, &CompetitionUpdate{Fee: &fee, IsPublished: &published})
	require.NoError(t, err)
	assert.Equal(t, "Quiz", updated.Title)
	assert.Equal(t, 75.0, updated.Fee)
	assert.True(t, updated.IsPublished)

	_, err = service.UpdateCompetition(ctx, other.Id, quiz.Id, &CompetitionUpdate{Fee: &fee})
	var notFound *app_error.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestDeleteCompetitionRemovesItsRegistrations(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	event := seedEvent(t, "Science Fest")
	quiz := seedCompetition(t, event.Id, "Quiz", 0, true)
	poster := seedCompetition(t, event.Id, "Poster", 0, true)
	_, err := NewRegistrationService(db, nil).SubmitRegistration(ctx, event.Id, formFor(quiz, poster))
	require.NoError(t, err)

	require.NoError(t, NewCompetitionService(db).DeleteCompetition(ctx, event.Id, quiz.Id))
	assert.Equal(t, int64(1), countRows(t, &repository.CompetitionRegistration{}))
	assert.Equal(t, int64(1), countRows(t, &repository.Participant{}))

	err = NewCompetitionService(db).DeleteCompetition(ctx, event.Id, quiz.Id)
	var notFound *app_error.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
