package service

import (
	"clubhub/app_error"
	"clubhub/repository"
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ParticipantService struct {
	participantRepository  *repository.ParticipantRepository
	registrationRepository *repository.RegistrationRepository
}

func NewParticipantService(db *gorm.DB) *ParticipantService {
	return &ParticipantService{
		participantRepository:  repository.NewParticipantRepository(db),
		registrationRepository: repository.NewRegistrationRepository(db),
	}
}

// FindExistingParticipant reports a participant that shares the email or the id at the institution.
// A miss is (nil, nil). The result is informational, registrations are never refused because of it.
func (s *ParticipantService) FindExistingParticipant(ctx context.Context, email string, idAtInstitution string, institution string) (*repository.Participant, error) {
	participant, err := s.participantRepository.FindByEmailOrMembership(ctx,
		strings.TrimSpace(email),
		strings.TrimSpace(idAtInstitution),
		strings.TrimSpace(institution),
	)
	if err != nil {
		return nil, app_error.Storage(err)
	}
	return participant, nil
}

func (s *ParticipantService) GetParticipantWithRegistrations(ctx context.Context, participantId uuid.UUID) (*EventParticipant, error) {
	participant, err := s.participantRepository.GetParticipantById(ctx, participantId)
	if err != nil {
		return nil, notFoundOrStorage(err, "participant", participantId)
	}
	registrations, err := s.registrationRepository.GetRegistrationsForParticipant(ctx, participantId)
	if err != nil {
		return nil, app_error.Storage(err)
	}
	return &EventParticipant{Participant: participant, Registrations: registrations}, nil
}
