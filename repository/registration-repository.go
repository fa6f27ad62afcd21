package repository

import (
	"clubhub/metrics"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RegistrationStatus string

const (
	Pending   RegistrationStatus = "pending"
	Confirmed RegistrationStatus = "confirmed"
	Rejected  RegistrationStatus = "rejected"
)

// ParseRegistrationStatus accepts "approved" as another name for confirmed.
func ParseRegistrationStatus(value string) (RegistrationStatus, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "pending":
		return Pending, nil
	case "confirmed", "approved":
		return Confirmed, nil
	case "rejected":
		return Rejected, nil
	}
	return "", fmt.Errorf("unknown registration status %q", value)
}

func (s RegistrationStatus) Valid() bool {
	return s == Pending || s == Confirmed || s == Rejected
}

type CompetitionRegistration struct {
	Id            uuid.UUID          `gorm:"type:uuid;primaryKey"`
	ParticipantId uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_registration_participant_competition"`
	CompetitionId uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_registration_participant_competition;index"`
	Status        RegistrationStatus `gorm:"type:club.registration_status;not null;default:'pending'"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Participant *Participant `gorm:"foreignKey:ParticipantId;constraint:OnDelete:CASCADE;"`
	Competition *Competition `gorm:"foreignKey:CompetitionId;constraint:OnDelete:CASCADE;"`
}

func (c *CompetitionRegistration) BeforeCreate(tx *gorm.DB) error {
	if c.Id == uuid.Nil {
		c.Id = uuid.New()
	}
	return nil
}

type RegistrationRepository struct {
	DB *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{DB: db}
}

// CreateParticipantWithRegistrations writes the participant and all of its registrations
// in one transaction, so a failed batch leaves no participant behind.
func (r *RegistrationRepository) CreateParticipantWithRegistrations(ctx context.Context, participant *Participant, registrations []*CompetitionRegistration) error {
	timer := prometheus.NewTimer(metrics.QueryDuration.WithLabelValues("CreateParticipantWithRegistrations"))
	defer timer.ObserveDuration()
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(participant).Error; err != nil {
			return err
		}
		if len(registrations) == 0 {
			return nil
		}
		for _, registration := range registrations {
			registration.ParticipantId = participant.Id
		}
		return tx.CreateInBatches(registrations, len(registrations)).Error
	})
}

func (r *RegistrationRepository) GetRegistrationById(ctx context.Context, registrationId uuid.UUID, preloads ...string) (*CompetitionRegistration, error) {
	var registration CompetitionRegistration
	query := r.DB.WithContext(ctx)
	for _, preload := range preloads {
		query = query.Preload(preload)
	}
	result := query.First(&registration, "id = ?", registrationId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &registration, nil
}

func (r *RegistrationRepository) GetRegistrationsForParticipant(ctx context.Context, participantId uuid.UUID) ([]*CompetitionRegistration, error) {
	registrations := make([]*CompetitionRegistration, 0)
	result := r.DB.WithContext(ctx).
		Preload("Competition").
		Where("participant_id = ?", participantId).
		Order("created_at ASC").
		Find(&registrations)
	if result.Error != nil {
		return nil, result.Error
	}
	return registrations, nil
}

// GetRegistrationsForCompetitions loads registrations with their participant and competition.
func (r *RegistrationRepository) GetRegistrationsForCompetitions(ctx context.Context, competitionIds []uuid.UUID) ([]*CompetitionRegistration, error) {
	timer := prometheus.NewTimer(metrics.QueryDuration.WithLabelValues("GetRegistrationsForCompetitions"))
	defer timer.ObserveDuration()
	registrations := make([]*CompetitionRegistration, 0)
	if len(competitionIds) == 0 {
		return registrations, nil
	}
	result := r.DB.WithContext(ctx).
		Preload("Participant").
		Preload("Competition").
		Where("competition_id IN ?", competitionIds).
		Order("created_at ASC").
		Order("id ASC").
		Find(&registrations)
	if result.Error != nil {
		return nil, result.Error
	}
	return registrations, nil
}

func (r *RegistrationRepository) UpdateStatus(ctx context.Context, registrationId uuid.UUID, status RegistrationStatus) (*CompetitionRegistration, error) {
	registration := &CompetitionRegistration{}
	result := r.DB.WithContext(ctx).
		Model(registration).
		Clauses(clause.Returning{}).
		Where("id = ?", registrationId).
		Updates(map[string]interface{}{"status": string(status), "updated_at": time.Now()})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return registration, nil
}

// UpdateStatusForParticipant is one UPDATE limited to the given competitions.
func (r *RegistrationRepository) UpdateStatusForParticipant(ctx context.Context, participantId uuid.UUID, competitionIds []uuid.UUID, status RegistrationStatus) ([]*CompetitionRegistration, error) {
	timer := prometheus.NewTimer(metrics.QueryDuration.WithLabelValues("UpdateStatusForParticipant"))
	defer timer.ObserveDuration()
	registrations := make([]*CompetitionRegistration, 0)
	if len(competitionIds) == 0 {
		return registrations, nil
	}
	result := r.DB.WithContext(ctx).
		Model(&registrations).
		Clauses(clause.Returning{}).
		Where("participant_id = ? AND competition_id IN ?", participantId, competitionIds).
		Updates(map[string]interface{}{"status": string(status), "updated_at": time.Now()})
	if result.Error != nil {
		return nil, result.Error
	}
	return registrations, nil
}
