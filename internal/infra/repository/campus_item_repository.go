package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/KasumiMercury/campus-copilot-reminder/internal/domain"
)

type campusItemRepository struct {
	db *gorm.DB
}

func NewCampusItemRepository(db *gorm.DB) domain.CampusItemRepository {
	return &campusItemRepository{db: db}
}

func (r *campusItemRepository) FindDeadline(ctx context.Context, id uuid.UUID) (domain.DeadlineSnapshot, error) {
	var m DeadlineModel

	if err := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DeadlineSnapshot{}, domain.ErrDeadlineNotFound
		}

		slog.Error("failed to find deadline",
			"deadline_id", id.String(),
			"error", err,
		)

		return domain.DeadlineSnapshot{}, err
	}

	return m.ToSnapshot()
}

func (r *campusItemRepository) FindEvent(ctx context.Context, id uuid.UUID) (domain.EventSnapshot, error) {
	var m EventModel

	if err := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.EventSnapshot{}, domain.ErrEventNotFound
		}

		slog.Error("failed to find event",
			"event_id", id.String(),
			"error", err,
		)

		return domain.EventSnapshot{}, err
	}

	return m.ToSnapshot()
}
