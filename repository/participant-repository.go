package repository

import (
	"clubhub/metrics"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// EducationLevel decides which class values a form may carry. It is not persisted.
type EducationLevel string

const (
	School     EducationLevel = "School"
	College    EducationLevel = "College"
	University EducationLevel = "University"
)

// ClassRange gives the inclusive class values a level allows. College years are 11 and 12,
// university years 21 to 24.
func (l EducationLevel) ClassRange() (min int, max int, ok bool) {
	switch l {
	case School:
		return 1, 10, true
	case College:
		return 11, 12, true
	case University:
		return 21, 24, true
	}
	return 0, 0, false
}

func (l EducationLevel) IsValidClass(class int) bool {
	min, max, ok := l.ClassRange()
	return ok && class >= min && class <= max
}

type PaymentProvider string

const (
	BKash PaymentProvider = "BKash"
)

type Participant struct {
	Id              uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name            string           `gorm:"not null"`
	Institution     string           `gorm:"not null;index:idx_participant_member_of"`
	Class           int              `gorm:"not null"`
	IdAtInstitution string           `gorm:"not null;index:idx_participant_member_of"`
	Email           *string          `gorm:"null;index"`
	Phone           *string          `gorm:"null"`
	Note            *string          `gorm:"null"`
	TransactionId   *string          `gorm:"null"`
	PaymentProvider *PaymentProvider `gorm:"type:club.payment_provider;null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (p *Participant) BeforeCreate(tx *gorm.DB) error {
	if p.Id == uuid.Nil {
		p.Id = uuid.New()
	}
	return nil
}

type ParticipantRepository struct {
	DB *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) *ParticipantRepository {
	return &ParticipantRepository{DB: db}
}

// FindByEmailOrMembership matches on email OR on the (id_at_institution, institution) pair.
// Empty identifiers never match. A miss returns (nil, nil).
func (r *ParticipantRepository) FindByEmailOrMembership(ctx context.Context, email string, idAtInstitution string, institution string) (*Participant, error) {
	timer := prometheus.NewTimer(metrics.QueryDuration.WithLabelValues("FindByEmailOrMembership"))
	defer timer.ObserveDuration()

	hasEmail := email != ""
	hasMembership := idAtInstitution != "" && institution != ""
	query := r.DB.WithContext(ctx)
	switch {
	case hasEmail && hasMembership:
		query = query.Where("email = ? OR (id_at_institution = ? AND institution = ?)", email, idAtInstitution, institution)
	case hasEmail:
		query = query.Where("email = ?", email)
	case hasMembership:
		query = query.Where("id_at_institution = ? AND institution = ?", idAtInstitution, institution)
	default:
		return nil, nil
	}

	var participant Participant
	result := query.Order("created_at ASC").First(&participant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &participant, nil
}

func (r *ParticipantRepository) GetParticipantById(ctx context.Context, participantId uuid.UUID) (*Participant, error) {
	var participant Participant
	result := r.DB.WithContext(ctx).First(&participant, "id = ?", participantId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &participant, nil
}
