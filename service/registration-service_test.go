package service

import (
	"clubhub/app_error"
	"clubhub/client"
	"clubhub/repository"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countRows(t *testing.T, model any) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func formFor(competitions ...*repository.Competition) *RegistrationForm {
	form := validForm()
	form.Competitions = make([]uuid.UUID, 0, len(competitions))
	for _, c := range competitions {
		form.Competitions = append(form.Competitions, c.Id)
	}
	return form
}

func TestSubmitRegistrationCreatesOnePendingRegistrationPerCompetition(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	event := seedEvent(t, "Science Fest")
	quiz := seedCompetition(t, event.Id, "Quiz", 0, true)
	olympiad := seedCompetition(t, event.Id, "Olympiad", 0, true)
	poster := seedCompetition(t, event.Id, "Poster", 0, true)

	listener := &recordingListener{name: "recorder"}
	dispatcher := NewRegistrationDispatcher(listener)
	service := NewRegistrationService(db, dispatcher)

	form := formFor(quiz, olympiad, poster)
	form.Competitions = append(form.Competitions, quiz.Id)
	submitted, err := service.SubmitRegistration(ctx, event.Id, form)
	require.NoError(t, err)
	dispatcher.Wait()

	assert.False(t, submitted.PaymentRequired)
	assert.Equal(t, 0.0, submitted.TotalFee)
	require.Len(t, submitted.Registrations, 3)

	stored, err := repository.NewRegistrationRepository(db).GetRegistrationsForParticipant(ctx, submitted.Participant.Id)
	require.NoError(t, err)
	require.Len(t, stored, 3)
	for _, registration := range stored {
		assert.Equal(t, repository.Pending, registration.Status)
		assert.Equal(t, submitted.Participant.Id, registration.ParticipantId)
	}

	messages := listener.received()
	require.Len(t, messages, 1)
	assert.Equal(t, client.RegistrationSubmitted, messages[0].Type)
	assert.Equal(t, event.Id, messages[0].EventId)
	assert.Len(t, messages[0].Registrations, 3)
}

func TestSubmitRegistrationRequiresPaymentBeforeWriting(t *testing.T) {
	requireDB(t)
	event := seedEvent(t, "Science Fest")
	paid := seedCompetition(t, event.Id, "Robotics", 100, true)
	service := NewRegistrationService(db, NewRegistrationDispatcher())

	_, err := service.SubmitRegistration(context.Background(), event.Id, formFor(paid))
	var validationErr *app_error.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.ElementsMatch(t, []string{"transaction_id", "payment_provider"}, fieldsOf(validationErr))
	assert.Equal(t, int64(0), countRows(t, &repository.Participant{}))
	assert.Equal(t, int64(0), countRows(t, &repository.CompetitionRegistration{}))
}

func TestSubmitRegistrationStoresPayment(t *testing.T) {
	requireDB(t)
	event := seedEvent(t, "Science Fest")
	free := seedCompetition(t, event.Id, "Quiz", 0, true)
	paid := seedCompetition(t, event.Id, "Robotics", 150.5, true)
	service := NewRegistrationService(db, NewRegistrationDispatcher())

	form := formFor(free, paid)
	form.TransactionId = " TX-42 "
	form.PaymentProvider = repository.BKash
	submitted, err := service.SubmitRegistration(context.Background(), event.Id, form)
	require.NoError(t, err)

	assert.True(t, submitted.PaymentRequired)
	assert.InDelta(t, 150.5, submitted.TotalFee, 1e-9)
	participant, err := repository.NewParticipantRepository(db).GetParticipantById(context.Background(), submitted.Participant.Id)
	require.NoError(t, err)
	require.NotNil(t, participant.TransactionId)
	assert.Equal(t, "TX-42", *participant.TransactionId)
	assert.Equal(t, repository.BKash, *participant.PaymentProvider)
}

func TestSubmitRegistrationDiscardsPaymentWhenFree(t *testing.T) {
	requireDB(t)
	event := seedEvent(t, "Science Fest")
	free := seedCompetition(t, event.Id, "Quiz", 0, true)
	service := NewRegistrationService(db, NewRegistrationDispatcher())

	form := formFor(free)
	form.TransactionId = "TX-1"
	form.PaymentProvider = repository.BKash
	submitted, err := service.SubmitRegistration(context.Background(), event.Id, form)
	require.NoError(t, err)
	assert.Nil(t, submitted.Participant.TransactionId)
	assert.Nil(t, submitted.Participant.PaymentProvider)
}

func TestSubmitRegistrationRejectsCompetitionsOutsideTheOpenCatalog(t *testing.T) {
	requireDB(t)
	event := seedEvent(t, "Science Fest")
	other := seedEvent(t, "Math Fest")
	open := seedCompetition(t, event.Id, "Quiz", 0, true)
	hidden := seedCompetition(t, event.Id, "Draft", 0, false)
	foreign := seedCompetition(t, other.Id, "Olympiad", 0, true)
	service := NewRegistrationService(db, NewRegistrationDispatcher())

	for name, form := range map[string]*RegistrationForm{
		"unpublished": formFor(open, hidden),
		"other event": formFor(open, foreign),
		"unknown":     formFor(open, &repository.Competition{Id: uuid.New()}),
	} {
		_, err := service.SubmitRegistration(context.Background(), event.Id, form)
		var validationErr *app_error.ValidationError
		require.ErrorAs(t, err, &validationErr, name)
		assert.Equal(t, []string{"competitions"}, fieldsOf(validationErr), name)
	}
	assert.Equal(t, int64(0), countRows(t, &repository.Participant{}))
}

func TestSubmitRegistrationUnknownEvent(t *testing.T) {
	requireDB(t)
	service := NewRegistrationService(db, NewRegistrationDispatcher())
	_, err := service.SubmitRegistration(context.Background(), uuid.New(), validForm())
	var notFound *app_error.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

// A person registering twice is allowed, the lookup only reports it.
func TestEndToEndRegistrationScenario(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	event := seedEvent(t, "Science Fest")
	c1 := seedCompetition(t, event.Id, "c1", 0, true)
	c2 := seedCompetition(t, event.Id, "c2", 100, true)
	registrations := NewRegistrationService(db, NewRegistrationDispatcher())
	participants := NewParticipantService(db)

	first := &RegistrationForm{
		Name:            "A. Rahman",
		Institution:     "ACPS",
		Level:           repository.School,
		Class:           9,
		IdAtInstitution: "S123",
		Email:           "a@x.com",
		Competitions:    []uuid.UUID{c1.Id},
	}
	submitted, err := registrations.SubmitRegistration(ctx, event.Id, first)
	require.NoError(t, err)
	require.Len(t, submitted.Registrations, 1)
	assert.Equal(t, repository.Pending, submitted.Registrations[0].Status)
	assert.False(t, submitted.PaymentRequired)
	assert.Nil(t, submitted.Participant.TransactionId)

	existing, err := participants.FindExistingParticipant(ctx, "a@x.com", "", "")
	require.NoError(t, err)
	require.NotNil(t, existing)
	assert.Equal(t, submitted.Participant.Id, existing.Id)

	second := *first
	second.Competitions = []uuid.UUID{c2.Id}
	_, err = registrations.SubmitRegistration(ctx, event.Id, &second)
	var validationErr *app_error.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, fieldsOf(validationErr), "transaction_id")
	assert.Equal(t, int64(1), countRows(t, &repository.Participant{}))
	assert.Equal(t, int64(1), countRows(t, &repository.CompetitionRegistration{}))
}

func TestQuoteFee(t *testing.T) {
	requireDB(t)
	event := seedEvent(t, "Science Fest")
	free := seedCompetition(t, event.Id, "Quiz", 0, true)
	paid := seedCompetition(t, event.Id, "Robotics", 80, true)
	hidden := seedCompetition(t, event.Id, "Draft", 500, false)
	service := NewRegistrationService(db, NewRegistrationDispatcher())

	quote, err := service.QuoteFee(context.Background(), event.Id, []uuid.UUID{free.Id, paid.Id, hidden.Id, uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, 80.0, quote.TotalFee)
	assert.True(t, quote.PaymentRequired)
	assert.Len(t, quote.Competitions, 2)

	quote, err = service.QuoteFee(context.Background(), event.Id, []uuid.UUID{free.Id})
	require.NoError(t, err)
	assert.False(t, quote.PaymentRequired)
}

func TestGetEventParticipantsGroupsByParticipant(t *testing.T) {
	requireDB(t)
	ctx := context.Background()
	event := seedEvent(t, "Science Fest")
	quiz := seedCompetition(t, event.Id, "Quiz", 20, true)
	poster := seedCompetition(t, event.Id, "Poster", 30, true)
	service := NewRegistrationService(db, NewRegistrationDispatcher())

	first := formFor(quiz, poster)
	first.TransactionId = "TX-1"
	first.PaymentProvider = repository.BKash
	alice, err := service.SubmitRegistration(ctx, event.Id, first)
	require.NoError(t, err)

	second := formFor(quiz)
	second.Name = "B. Karim"
	second.Email = "b@x.com"
	second.TransactionId = "TX-2"
	second.PaymentProvider = repository.BKash
	bob, err := service.SubmitRegistration(ctx, event.Id, second)
	require.NoError(t, err)

	participants, err := service.GetEventParticipants(ctx, event.Id)
	require.NoError(t, err)
	require.Len(t, participants, 2)
	assert.Equal(t, alice.Participant.Id, participants[0].Participant.Id)
	assert.Len(t, participants[0].Registrations, 2)
	assert.Equal(t, bob.Participant.Id, participants[1].Participant.Id)
	assert.Len(t, participants[1].Registrations, 1)
	for _, entry := range participants {
		for _, registration := range entry.Registrations {
			require.NotNil(t, registration.Competition)
			assert.Equal(t, entry.Participant.Id, registration.ParticipantId)
		}
	}
}

func TestGetEventParticipantsWithoutCompetitions(t *testing.T) {
	requireDB(t)
	event := seedEvent(t, "Empty Fest")
	participants, err := NewRegistrationService(db, nil).GetEventParticipants(context.Background(), event.Id)
	require.NoError(t, err)
	assert.Empty(t, participants)
}
