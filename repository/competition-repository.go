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

type Competition struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	EventId      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title        string         `gorm:"not null"`
	Description  datatypes.JSON `gorm:"type:jsonb"`
	Fee          float64        `gorm:"type:numeric(10,2);not null;default:0;check:chk_competition_fee,fee >= 0"`
	IsPublished  bool           `gorm:"not null;default:false"`
	DisplayOrder int            `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (c *Competition) BeforeCreate(tx *gorm.DB) error {
	if c.Id == uuid.Nil {
		c.Id = uuid.New()
	}
	return nil
}

type CompetitionRepository struct {
	DB *gorm.DB
}

func NewCompetitionRepository(db *gorm.DB) *CompetitionRepository {
	return &CompetitionRepository{DB: db}
}

// GetCompetitionsForEvent lists by display order, ties resolved by insertion order.
func (r *CompetitionRepository) GetCompetitionsForEvent(ctx context.Context, eventId uuid.UUID, publishedOnly bool) ([]*Competition, error) {
	timer := prometheus.NewTimer(metrics.QueryDuration.WithLabelValues("GetCompetitionsForEvent"))
	defer timer.ObserveDuration()
	competitions := make([]*Competition, 0)
	query := r.DB.WithContext(ctx).Where("event_id = ?", eventId)
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}
	result := query.Order("display_order ASC, created_at ASC").Find(&competitions)
	if result.Error != nil {
		return nil, result.Error
	}
	return competitions, nil
}

func (r *CompetitionRepository) GetCompetitionIdsForEvent(ctx context.Context, eventId uuid.UUID) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0)
	result := r.DB.WithContext(ctx).Model(&Competition{}).Where("event_id = ?", eventId).Pluck("id", &ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return ids, nil
}

func (r *CompetitionRepository) GetCompetitionsByIds(ctx context.Context, eventId uuid.UUID, competitionIds []uuid.UUID) ([]*Competition, error) {
	competitions := make([]*Competition, 0)
	if len(competitionIds) == 0 {
		return competitions, nil
	}
	result := r.DB.WithContext(ctx).
		Where("event_id = ? AND id IN ?", eventId, competitionIds).
		Order("display_order ASC, created_at ASC").
		Find(&competitions)
	if result.Error != nil {
		return nil, result.Error
	}
	return competitions, nil
}

func (r *CompetitionRepository) GetCompetitionById(ctx context.Context, competitionId uuid.UUID) (*Competition, error) {
	var competition Competition
	result := r.DB.WithContext(ctx).First(&competition, "id = ?", competitionId)
	if result.Error != nil {
		return nil, result.Error
	}
	return &competition, nil
}

func (r *CompetitionRepository) NextDisplayOrder(ctx context.Context, eventId uuid.UUID) (int, error) {
	var maxOrder int
	result := r.DB.WithContext(ctx).Model(&Competition{}).
		Where("event_id = ?", eventId).
		Select("COALESCE(MAX(display_order), 0)").
		Scan(&maxOrder)
	if result.Error != nil {
		return 0, result.Error
	}
	return maxOrder + 1, nil
}

func (r *CompetitionRepository) Save(ctx context.Context, competition *Competition) (*Competition, error) {
	result := r.DB.WithContext(ctx).Save(competition)
	if result.Error != nil {
		return nil, result.Error
	}
	return competition, nil
}

func (r *CompetitionRepository) Delete(ctx context.Context, competitionId uuid.UUID) error {
	result := r.DB.WithContext(ctx).Delete(&Competition{}, "id = ?", competitionId)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Reorder writes display_order 1..N following orderedIds in a single transaction.
func (r *CompetitionRepository) Reorder(ctx context.Context, eventId uuid.UUID, orderedIds []uuid.UUID) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, competitionId := range orderedIds {
			result := tx.Model(&Competition{}).
				Where("id = ? AND event_id = ?", competitionId, eventId).
				Update("display_order", i+1)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}
		return nil
	})
}
