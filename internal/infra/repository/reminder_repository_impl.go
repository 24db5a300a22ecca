package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/KasumiMercury/campus-copilot-reminder/internal/domain"
)

// pendingNotificationClause matches rows holding at least one notification
// that is neither sent nor flagged missed.
const pendingNotificationClause = `EXISTS (
	SELECT 1 FROM jsonb_array_elements(notifications) AS n
	WHERE (n->>'sent')::boolean IS NOT TRUE AND n->'missed_at' IS NULL
)`

type reminderRepositoryImpl struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) domain.ReminderRepository {
	return &reminderRepositoryImpl{
		db: db,
	}
}

func (r *reminderRepositoryImpl) Save(ctx context.Context, reminder *domain.Reminder) error {
	slog.Debug("saving reminder to database",
		"reminder_id", reminder.ID().String(),
	)

	m := FromEntity(reminder)

	result := r.db.WithContext(ctx).Create(m)
	if result.Error != nil {
		slog.Error("failed to save reminder to database",
			"reminder_id", reminder.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	return nil
}

func (r *reminderRepositoryImpl) FindByID(ctx context.Context, id domain.ReminderID) (*domain.Reminder, error) {
	slog.Debug("finding reminder by ID",
		"reminder_id", id.String(),
	)

	var m ReminderModel

	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			slog.Debug("reminder not found",
				"reminder_id", id.String(),
			)

			return nil, domain.ErrReminderNotFound
		}

		slog.Error("failed to find reminder by ID",
			"reminder_id", id.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	return m.ToEntity()
}

func (r *reminderRepositoryImpl) ownerScope(ctx context.Context, filter domain.ReminderFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&ReminderModel{}).Where("user_id = ?", filter.Owner.String())

	if filter.Kind != "" {
		q = q.Where("type = ?", string(filter.Kind))
	}

	if filter.Category != "" {
		q = q.Where("category = ?", string(filter.Category))
	}

	switch filter.Status {
	case domain.StatusActive:
		q = q.Where("is_completed = ?", false)
	case domain.StatusCompleted:
		q = q.Where("is_completed = ?", true)
	}

	if filter.OnlyOpen {
		q = q.Where("is_active = ? AND is_completed = ?", true, false)
	}

	if filter.Range != nil {
		if !filter.Range.Start.IsZero() {
			q = q.Where("trigger_date >= ?", filter.Range.Start)
		}

		if !filter.Range.End.IsZero() {
			q = q.Where("trigger_date < ?", filter.Range.End)
		}
	}

	return q
}

func (r *reminderRepositoryImpl) FindByOwner(ctx context.Context, filter domain.ReminderFilter) ([]*domain.Reminder, error) {
	slog.Debug("finding reminders by owner",
		"user_id", filter.Owner.String(),
		"offset", filter.Offset,
		"limit", filter.Limit,
	)

	q := r.ownerScope(ctx, filter).Order("trigger_date ASC").Order("id ASC")

	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var models []ReminderModel
	if err := q.Find(&models).Error; err != nil {
		slog.Error("failed to find reminders by owner",
			"user_id", filter.Owner.String(),
			"error", err,
		)

		return nil, err
	}

	return toEntities(models)
}

func (r *reminderRepositoryImpl) CountByOwner(ctx context.Context, filter domain.ReminderFilter) (int64, error) {
	var count int64
	if err := r.ownerScope(ctx, filter).Count(&count).Error; err != nil {
		slog.Error("failed to count reminders by owner",
			"user_id", filter.Owner.String(),
			"error", err,
		)

		return 0, err
	}

	return count, nil
}

func (r *reminderRepositoryImpl) FindPending(ctx context.Context) ([]*domain.Reminder, error) {
	var models []ReminderModel

	result := r.db.WithContext(ctx).
		Where("is_active = ? AND is_completed = ?", true, false).
		Where(pendingNotificationClause).
		Order("trigger_date ASC").
		Find(&models)
	if result.Error != nil {
		slog.Error("failed to find reminders with pending notifications",
			"error", result.Error,
		)

		return nil, result.Error
	}

	slog.Debug("reminders with pending notifications found",
		"count", len(models),
	)

	return toEntities(models)
}

func (r *reminderRepositoryImpl) FindRecurring(ctx context.Context) ([]*domain.Reminder, error) {
	var models []ReminderModel

	result := r.db.WithContext(ctx).
		Where("is_active = ? AND is_completed = ?", true, false).
		Where(`"repeat" <> ?`, string(domain.RepeatNone)).
		Where("NOT " + pendingNotificationClause).
		Order("trigger_date ASC").
		Find(&models)
	if result.Error != nil {
		slog.Error("failed to find recurring reminders",
			"error", result.Error,
		)

		return nil, result.Error
	}

	slog.Debug("settled recurring reminders found",
		"count", len(models),
	)

	return toEntities(models)
}

func (r *reminderRepositoryImpl) Update(ctx context.Context, reminder *domain.Reminder) error {
	slog.Debug("updating reminder in database",
		"reminder_id", reminder.ID().String(),
	)

	m := FromEntity(reminder)

	// Select("*") writes zero values too, so deactivation and cleared
	// optional fields reach the row.
	result := r.db.WithContext(ctx).
		Model(&ReminderModel{}).
		Where("id = ?", m.ID).
		Select("*").
		Omit("id", "user_id", "created_at").
		Updates(m)
	if result.Error != nil {
		slog.Error("failed to update reminder in database",
			"reminder_id", reminder.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		slog.Debug("reminder not found for update",
			"reminder_id", reminder.ID().String(),
		)

		return domain.ErrReminderNotFound
	}

	return nil
}

func (r *reminderRepositoryImpl) UpdateSchedule(ctx context.Context, reminder *domain.Reminder) error {
	m := FromEntity(reminder)

	result := r.db.WithContext(ctx).
		Model(&ReminderModel{}).
		Where("id = ? AND is_active = ? AND is_completed = ?", m.ID, true, false).
		Select("notifications", "trigger_date", "is_completed", "completed_at", "updated_at").
		Updates(m)
	if result.Error != nil {
		slog.Error("failed to update reminder schedule",
			"reminder_id", m.ID,
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		slog.Debug("reminder no longer schedulable",
			"reminder_id", m.ID,
		)

		return domain.ErrReminderNotSchedulable
	}

	return nil
}

func (r *reminderRepositoryImpl) Delete(ctx context.Context, id domain.ReminderID) error {
	slog.Debug("deleting reminder from database",
		"reminder_id", id.String(),
	)

	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&ReminderModel{})
	if result.Error != nil {
		slog.Error("failed to delete reminder from database",
			"reminder_id", id.String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrReminderNotFound
	}

	return nil
}

func (r *reminderRepositoryImpl) WithTx(ctx context.Context, fn func(repo domain.ReminderRepository) error) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		slog.Error("failed to begin transaction",
			"error", tx.Error,
		)

		return tx.Error
	}

	txRepo := &reminderRepositoryImpl{db: tx}

	if err := fn(txRepo); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			slog.Error("failed to rollback transaction",
				"error", rbErr,
				"original_error", err,
			)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		slog.Error("failed to commit transaction",
			"error", err,
		)

		return err
	}

	return nil
}

// toEntities converts every loadable row. Rows that fail to convert are
// skipped and reported through a *domain.CorruptRecordsError, returned
// together with the converted reminders.
func toEntities(models []ReminderModel) ([]*domain.Reminder, error) {
	reminders := make([]*domain.Reminder, 0, len(models))

	var corrupt *domain.CorruptRecordsError

	for i := range models {
		reminder, err := models[i].ToEntity()
		if err != nil {
			slog.Error("skipping reminder that cannot be loaded",
				"reminder_id", models[i].ID,
				"error", err,
			)

			if corrupt == nil {
				corrupt = &domain.CorruptRecordsError{}
			}

			corrupt.IDs = append(corrupt.IDs, models[i].ID)
			corrupt.Errs = append(corrupt.Errs, fmt.Errorf("reminder %s: %w", models[i].ID, err))

			continue
		}

		reminders = append(reminders, reminder)
	}

	if corrupt != nil {
		return reminders, corrupt
	}

	return reminders, nil
}
