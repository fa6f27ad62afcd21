package service

import (
	"clubhub/app_error"
	"clubhub/repository"
	"clubhub/utils"
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CompetitionUpdate struct {
	Title       *string
	Description *datatypes.JSON
	Fee         *float64
	IsPublished *bool
}

type CompetitionService struct {
	eventRepository       *repository.EventRepository
	competitionRepository *repository.CompetitionRepository
}

func NewCompetitionService(db *gorm.DB) *CompetitionService {
	return &CompetitionService{
		eventRepository:       repository.NewEventRepository(db),
		competitionRepository: repository.NewCompetitionRepository(db),
	}
}

// GetCompetitionsForEvent lists an event's competitions. Public callers only see published ones.
func (s *CompetitionService) GetCompetitionsForEvent(ctx context.Context, eventId uuid.UUID, publishedOnly bool) ([]*repository.Competition, error) {
	competitions, err := s.competitionRepository.GetCompetitionsForEvent(ctx, eventId, publishedOnly)
	if err != nil {
		return nil, app_error.Storage(err)
	}
	return competitions, nil
}

func (s *CompetitionService) getCompetition(ctx context.Context, eventId uuid.UUID, competitionId uuid.UUID) (*repository.Competition, error) {
	competition, err := s.competitionRepository.GetCompetitionById(ctx, competitionId)
	if err != nil {
		return nil, notFoundOrStorage(err, "competition", competitionId)
	}
	if competition.EventId != eventId {
		return nil, app_error.NotFound("competition", competitionId)
	}
	return competition, nil
}

// CreateCompetition appends the competition after the event's current last one.
func (s *CompetitionService) CreateCompetition(ctx context.Context, eventId uuid.UUID, competition *repository.Competition) (*repository.Competition, error) {
	if _, err := s.eventRepository.GetEventById(ctx, eventId); err != nil {
		return nil, notFoundOrStorage(err, "event", eventId)
	}
	if err := checkFee(competition.Fee); err != nil {
		return nil, err
	}
	displayOrder, err := s.competitionRepository.NextDisplayOrder(ctx, eventId)
	if err != nil {
		return nil, app_error.Storage(err)
	}
	competition.Id = uuid.Nil
	competition.EventId = eventId
	competition.DisplayOrder = displayOrder
	saved, err := s.competitionRepository.Save(ctx, competition)
	if err != nil {
		return nil, app_error.Storage(err)
	}
	return saved, nil
}

func (s *CompetitionService) UpdateCompetition(ctx context.Context, eventId uuid.UUID, competitionId uuid.UUID, update *CompetitionUpdate) (*repository.Competition, error) {
	competition, err := s.getCompetition(ctx, eventId, competitionId)
	if err != nil {
		return nil, err
	}
	if update.Title != nil {
		competition.Title = *update.Title
	}
	if update.Description != nil {
		competition.Description = *update.Description
	}
	if update.Fee != nil {
		if err := checkFee(*update.Fee); err != nil {
			return nil, err
		}
		competition.Fee = *update.Fee
	}
	if update.IsPublished != nil {
		competition.IsPublished = *update.IsPublished
	}
	saved, err := s.competitionRepository.Save(ctx, competition)
	if err != nil {
		return nil, app_error.Storage(err)
	}
	return saved, nil
}

// DeleteCompetition is a hard delete, the competition's registrations go with it.
func (s *CompetitionService) DeleteCompetition(ctx context.Context, eventId uuid.UUID, competitionId uuid.UUID) error {
	if _, err := s.getCompetition(ctx, eventId, competitionId); err != nil {
		return err
	}
	return notFoundOrStorage(s.competitionRepository.Delete(ctx, competitionId), "competition", competitionId)
}

// ReorderCompetitions takes a permutation of all of the event's competitions and stores
// display_order 1..N in that order.
func (s *CompetitionService) ReorderCompetitions(ctx context.Context, eventId uuid.UUID, orderedIds []uuid.UUID) ([]*repository.Competition, error) {
	existing, err := s.competitionRepository.GetCompetitionIdsForEvent(ctx, eventId)
	if err != nil {
		return nil, app_error.Storage(err)
	}
	if !isPermutation(orderedIds, existing) {
		return nil, app_error.NewValidationError(app_error.FieldError{
			Field:   "competition_ids",
			Message: "must list every competition of the event exactly once",
		})
	}
	if err := s.competitionRepository.Reorder(ctx, eventId, orderedIds); err != nil {
		return nil, notFoundOrStorage(err, "competition of event", eventId)
	}
	return s.GetCompetitionsForEvent(ctx, eventId, false)
}

func isPermutation(candidate []uuid.UUID, of []uuid.UUID) bool {
	if len(candidate) != len(of) || len(utils.Uniques(candidate)) != len(candidate) {
		return false
	}
	for _, id := range candidate {
		if !utils.Contains(of, id) {
			return false
		}
	}
	return true
}

func checkFee(fee float64) error {
	if fee < 0 {
		return app_error.NewValidationError(app_error.FieldError{Field: "fee", Message: "must be at least 0"})
	}
	return nil
}
