package service

import (
	"clubhub/app_error"
	"clubhub/client"
	"clubhub/fee"
	"clubhub/metrics"
	"clubhub/repository"
	"clubhub/utils"
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type SubmittedRegistration struct {
	Participant     *repository.Participant
	Registrations   []*repository.CompetitionRegistration
	TotalFee        float64
	PaymentRequired bool
}

type FeeQuote struct {
	Competitions    []*repository.Competition
	TotalFee        float64
	PaymentRequired bool
}

// EventParticipant is one participant together with every registration they hold under an event.
type EventParticipant struct {
	Participant   *repository.Participant
	Registrations []*repository.CompetitionRegistration
}

type RegistrationService struct {
	eventRepository        *repository.EventRepository
	competitionRepository  *repository.CompetitionRepository
	registrationRepository *repository.RegistrationRepository
	dispatcher             *RegistrationDispatcher
}

func NewRegistrationService(db *gorm.DB, dispatcher *RegistrationDispatcher) *RegistrationService {
	return &RegistrationService{
		eventRepository:        repository.NewEventRepository(db),
		competitionRepository:  repository.NewCompetitionRepository(db),
		registrationRepository: repository.NewRegistrationRepository(db),
		dispatcher:             dispatcher,
	}
}

func catalogOf(competitions []*repository.Competition) []fee.CatalogEntry {
	return utils.Map(competitions, func(c *repository.Competition) fee.CatalogEntry {
		return fee.CatalogEntry{Id: c.Id, Fee: c.Fee}
	})
}

// SubmitRegistration validates the form, prices it against the event's published competitions and
// writes the participant with one pending registration per selected competition in a single transaction.
func (s *RegistrationService) SubmitRegistration(ctx context.Context, eventId uuid.UUID, form *RegistrationForm) (*SubmittedRegistration, error) {
	if _, err := s.eventRepository.GetEventById(ctx, eventId); err != nil {
		return nil, notFoundOrStorage(err, "event", eventId)
	}

	form.normalize()
	validationErr := validateForm(form)
	selected := utils.Uniques(utils.Filter(form.Competitions, func(id uuid.UUID) bool { return id != uuid.Nil }))

	competitions := []*repository.Competition{}
	if len(selected) > 0 {
		found, err := s.competitionRepository.GetCompetitionsByIds(ctx, eventId, selected)
		if err != nil {
			return nil, app_error.Storage(err)
		}
		competitions = utils.Filter(found, func(c *repository.Competition) bool { return c.IsPublished })
		if len(competitions) != len(selected) {
			validationErr.Add("competitions", "contains competitions that are not open for registration in this event")
		}
	}

	totalFee := fee.ComputeTotalFee(selected, catalogOf(competitions))
	paymentRequired := fee.IsPaymentRequired(totalFee)
	validatePayment(form, paymentRequired, validationErr)
	if validationErr.HasErrors() {
		for _, field := range validationErr.Fields {
			metrics.RegistrationValidationFailures.WithLabelValues(field.Field).Inc()
		}
		return nil, validationErr
	}

	participant := form.toParticipant(paymentRequired)
	registrations := utils.Map(competitions, func(c *repository.Competition) *repository.CompetitionRegistration {
		return &repository.CompetitionRegistration{CompetitionId: c.Id, Status: repository.Pending}
	})
	if err := s.registrationRepository.CreateParticipantWithRegistrations(ctx, participant, registrations); err != nil {
		return nil, app_error.Storage(err)
	}
	for i, registration := range registrations {
		registration.Participant = participant
		registration.Competition = competitions[i]
	}

	metrics.RegistrationsSubmitted.WithLabelValues(strconv.FormatBool(paymentRequired)).Inc()
	metrics.CompetitionRegistrationsCreated.Add(float64(len(registrations)))
	metrics.RegistrationFeesTotal.Add(totalFee)
	log.WithFields(log.Fields{
		"event_id":       eventId,
		"participant_id": participant.Id,
		"registrations":  len(registrations),
		"total_fee":      totalFee,
	}).Info("registration submitted")

	s.dispatcher.Dispatch(ctx, submittedMessage(eventId, participant, registrations, totalFee))
	return &SubmittedRegistration{
		Participant:     participant,
		Registrations:   registrations,
		TotalFee:        totalFee,
		PaymentRequired: paymentRequired,
	}, nil
}

// QuoteFee prices a selection against the published competitions of an event.
func (s *RegistrationService) QuoteFee(ctx context.Context, eventId uuid.UUID, competitionIds []uuid.UUID) (*FeeQuote, error) {
	competitions, err := s.competitionRepository.GetCompetitionsForEvent(ctx, eventId, true)
	if err != nil {
		return nil, app_error.Storage(err)
	}
	selected := utils.Filter(competitions, func(c *repository.Competition) bool {
		return utils.Contains(competitionIds, c.Id)
	})
	totalFee := fee.ComputeTotalFee(competitionIds, catalogOf(competitions))
	return &FeeQuote{
		Competitions:    selected,
		TotalFee:        totalFee,
		PaymentRequired: fee.IsPaymentRequired(totalFee),
	}, nil
}

// GetEventParticipants groups every registration under the event by participant, in the order
// participants first registered.
func (s *RegistrationService) GetEventParticipants(ctx context.Context, eventId uuid.UUID) ([]*EventParticipant, error) {
	competitionIds, err := s.competitionRepository.GetCompetitionIdsForEvent(ctx, eventId)
	if err != nil {
		return nil, app_error.Storage(err)
	}
	if len(competitionIds) == 0 {
		return []*EventParticipant{}, nil
	}
	registrations, err := s.registrationRepository.GetRegistrationsForCompetitions(ctx, competitionIds)
	if err != nil {
		return nil, app_error.Storage(err)
	}
	participantIds, byParticipant := utils.GroupBy(registrations, func(r *repository.CompetitionRegistration) uuid.UUID {
		return r.ParticipantId
	})
	return utils.Map(participantIds, func(participantId uuid.UUID) *EventParticipant {
		group := byParticipant[participantId]
		return &EventParticipant{Participant: group[0].Participant, Registrations: group}
	}), nil
}

func submittedMessage(eventId uuid.UUID, participant *repository.Participant, registrations []*repository.CompetitionRegistration, totalFee float64) *client.RegistrationMessage {
	return &client.RegistrationMessage{
		Type:            client.RegistrationSubmitted,
		EventId:         eventId,
		ParticipantId:   participant.Id,
		ParticipantName: participant.Name,
		Institution:     participant.Institution,
		TotalFee:        &totalFee,
		TransactionId:   participant.TransactionId,
		Registrations:   messageItems(registrations),
		Timestamp:       time.Now(),
	}
}

func messageItems(registrations []*repository.CompetitionRegistration) []client.RegistrationMessageItem {
	return utils.Map(registrations, func(r *repository.CompetitionRegistration) client.RegistrationMessageItem {
		item := client.RegistrationMessageItem{
			Id:            r.Id,
			CompetitionId: r.CompetitionId,
			Status:        string(r.Status),
		}
		if r.Competition != nil {
			item.CompetitionTitle = r.Competition.Title
		}
		return item
	})
}
