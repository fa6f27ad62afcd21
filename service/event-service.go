package service

import (
	"clubhub/app_error"
	"clubhub/repository"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EventUpdate carries only the fields a PATCH supplied.
type EventUpdate struct {
	Title       *string
	Description *datatypes.JSON
	Venue       *string
	StartsAt    *time.Time
	EndsAt      *time.Time
	IsPublished *bool
}

type EventService struct {
	eventRepository *repository.EventRepository
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{
		eventRepository: repository.NewEventRepository(db),
	}
}

func (e *EventService) GetAllEvents(ctx context.Context, publishedOnly bool) ([]*repository.Event, error) {
	events, err := e.eventRepository.FindAll(ctx, publishedOnly)
	if err != nil {
		return nil, app_error.Storage(err)
	}
	return events, nil
}

func (e *EventService) GetEventById(ctx context.Context, eventId uuid.UUID) (*repository.Event, error) {
	event, err := e.eventRepository.GetEventById(ctx, eventId)
	if err != nil {
		return nil, notFoundOrStorage(err, "event", eventId)
	}
	return event, nil
}

func (e *EventService) CreateEvent(ctx context.Context, event *repository.Event) (*repository.Event, error) {
	if err := checkSchedule(event.StartsAt, event.EndsAt); err != nil {
		return nil, err
	}
	event.Id = uuid.Nil
	saved, err := e.eventRepository.Save(ctx, event)
	if err != nil {
		return nil, app_error.Storage(err)
	}
	return saved, nil
}

func (e *EventService) UpdateEvent(ctx context.Context, eventId uuid.UUID, update *EventUpdate) (*repository.Event, error) {
	event, err := e.GetEventById(ctx, eventId)
	if err != nil {
		return nil, err
	}
	if update.Title != nil {
		event.Title = *update.Title
	}
	if update.Description != nil {
		event.Description = *update.Description
	}
	if update.Venue != nil {
		event.Venue = *update.Venue
	}
	if update.StartsAt != nil {
		event.StartsAt = update.StartsAt
	}
	if update.EndsAt != nil {
		event.EndsAt = update.EndsAt
	}
	if update.IsPublished != nil {
		event.IsPublished = *update.IsPublished
	}
	if err := checkSchedule(event.StartsAt, event.EndsAt); err != nil {
		return nil, err
	}
	saved, err := e.eventRepository.Save(ctx, event)
	if err != nil {
		return nil, app_error.Storage(err)
	}
	return saved, nil
}

// DeleteEvent removes the event together with its competitions and their registrations.
func (e *EventService) DeleteEvent(ctx context.Context, eventId uuid.UUID) error {
	return notFoundOrStorage(e.eventRepository.Delete(ctx, eventId), "event", eventId)
}

func checkSchedule(startsAt *time.Time, endsAt *time.Time) error {
	if startsAt != nil && endsAt != nil && endsAt.Before(*startsAt) {
		return app_error.NewValidationError(app_error.FieldError{Field: "ends_at", Message: "must not be before starts_at"})
	}
	return nil
}
