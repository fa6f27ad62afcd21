package service

import (
	"clubhub/app_error"
	"clubhub/client"
	"clubhub/metrics"
	"clubhub/repository"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// StatusService moves competition registrations between pending, confirmed and rejected.
// Any status may follow any other, setting the current status again only refreshes updated_at.
type StatusService struct {
	competitionRepository  *repository.CompetitionRepository
	registrationRepository *repository.RegistrationRepository
	participantRepository  *repository.ParticipantRepository
	dispatcher             *RegistrationDispatcher
}

func NewStatusService(db *gorm.DB, dispatcher *RegistrationDispatcher) *StatusService {
	return &StatusService{
		competitionRepository:  repository.NewCompetitionRepository(db),
		registrationRepository: repository.NewRegistrationRepository(db),
		participantRepository:  repository.NewParticipantRepository(db),
		dispatcher:             dispatcher,
	}
}

func checkStatus(status repository.RegistrationStatus) error {
	if status.Valid() {
		return nil
	}
	return app_error.NewValidationError(app_error.FieldError{
		Field:   "status",
		Message: fmt.Sprintf("must be one of: %s, %s, %s", repository.Pending, repository.Confirmed, repository.Rejected),
	})
}

func (s *StatusService) SetStatus(ctx context.Context, registrationId uuid.UUID, status repository.RegistrationStatus) (*repository.CompetitionRegistration, error) {
	if err := checkStatus(status); err != nil {
		return nil, err
	}
	if _, err := s.registrationRepository.UpdateStatus(ctx, registrationId, status); err != nil {
		return nil, notFoundOrStorage(err, "registration", registrationId)
	}
	registration, err := s.registrationRepository.GetRegistrationById(ctx, registrationId, "Participant", "Competition")
	if err != nil {
		return nil, notFoundOrStorage(err, "registration", registrationId)
	}

	metrics.StatusTransitions.WithLabelValues(string(status), "registration").Inc()
	log.WithFields(log.Fields{"registration_id": registrationId, "status": status}).Info("registration status changed")

	message := &client.RegistrationMessage{
		Type:          client.RegistrationStatusChanged,
		ParticipantId: registration.ParticipantId,
		Registrations: messageItems([]*repository.CompetitionRegistration{registration}),
		Timestamp:     time.Now(),
	}
	if registration.Competition != nil {
		message.EventId = registration.Competition.EventId
	}
	if registration.Participant != nil {
		message.ParticipantName = registration.Participant.Name
		message.Institution = registration.Participant.Institution
	}
	s.dispatcher.Dispatch(ctx, message)
	return registration, nil
}

// SetAllStatusesForParticipant updates the participant's registrations under one event only.
// Registrations the participant holds under other events keep their status.
func (s *StatusService) SetAllStatusesForParticipant(ctx context.Context, participantId uuid.UUID, eventId uuid.UUID, status repository.RegistrationStatus) ([]*repository.CompetitionRegistration, error) {
	if err := checkStatus(status); err != nil {
		return nil, err
	}
	competitionIds, err := s.competitionRepository.GetCompetitionIdsForEvent(ctx, eventId)
	if err != nil {
		return nil, app_error.Storage(err)
	}
	registrations, err := s.registrationRepository.UpdateStatusForParticipant(ctx, participantId, competitionIds, status)
	if err != nil {
		return nil, app_error.Storage(err)
	}
	if len(registrations) == 0 {
		return nil, app_error.NotFound("registrations of participant", participantId)
	}

	metrics.StatusTransitions.WithLabelValues(string(status), "participant").Add(float64(len(registrations)))
	log.WithFields(log.Fields{
		"participant_id": participantId,
		"event_id":       eventId,
		"status":         status,
		"registrations":  len(registrations),
	}).Info("participant registrations status changed")

	message := &client.RegistrationMessage{
		Type:          client.RegistrationStatusChanged,
		EventId:       eventId,
		ParticipantId: participantId,
		Registrations: messageItems(registrations),
		Timestamp:     time.Now(),
	}
	participant, err := s.participantRepository.GetParticipantById(ctx, participantId)
	if err == nil {
		message.ParticipantName = participant.Name
		message.Institution = participant.Institution
	}
	s.dispatcher.Dispatch(ctx, message)
	return registrations, nil
}
