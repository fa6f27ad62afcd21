package repository

import (
	"clubhub/metrics"
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Event struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Title        string         `gorm:"not null"`
	Description  datatypes.JSON `gorm:"type:jsonb"`
	Venue        string         `gorm:"not null;default:''"`
	StartsAt     *time.Time     `gorm:"null"`
	EndsAt       *time.Time     `gorm:"null"`
	IsPublished  bool           `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Competitions []*Competition `gorm:"foreignKey:EventId;constraint:OnDelete:CASCADE"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.Id == uuid.Nil {
		e.Id = uuid.New()
	}
	return nil
}

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) GetEventById(ctx context.Context, eventId uuid.UUID) (*Event, error) {
	var event Event
	result := r.DB.WithContext(ctx).First(&event, "id = ?", eventId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &event, nil
}

func (r *EventRepository) FindAll(ctx context.Context, publishedOnly bool) ([]*Event, error) {
	timer := prometheus.NewTimer(metrics.QueryDuration.WithLabelValues("FindAllEvents"))
	defer timer.ObserveDuration()
	events := make([]*Event, 0)
	query := r.DB.WithContext(ctx)
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}
	result := query.Order("starts_at DESC NULLS LAST, created_at DESC").Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}
	return events, nil
}

func (r *EventRepository) Save(ctx context.Context, event *Event) (*Event, error) {
	result := r.DB.WithContext(ctx).Save(event)
	if result.Error != nil {
		return nil, result.Error
	}
	return event, nil
}

func (r *EventRepository) Delete(ctx context.Context, eventId uuid.UUID) error {
	result := r.DB.WithContext(ctx).Delete(&Event{}, "id = ?", eventId)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
