package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/KasumiMercury/campus-copilot-reminder/internal/domain"
	"github.com/KasumiMercury/campus-copilot-reminder/internal/infra/dispatch"
)

const (
	defaultPageSize   = 20
	maxPageSize       = 100
	defaultWindowSize = 10
)

type reminderUseCaseImpl struct {
	repo       domain.ReminderRepository
	items      domain.CampusItemRepository
	dispatcher dispatch.Dispatcher
	clock      Clock
}

func NewReminderUseCase(
	repo domain.ReminderRepository,
	items domain.CampusItemRepository,
	dispatcher dispatch.Dispatcher,
	clock Clock,
) ReminderUseCase {
	if clock == nil {
		clock = time.Now
	}

	return &reminderUseCaseImpl{
		repo:       repo,
		items:      items,
		dispatcher: dispatcher,
		clock:      clock,
	}
}

func (uc *reminderUseCaseImpl) CreateReminder(ctx context.Context, input CreateReminderInput) (ReminderOutput, error) {
	slog.DebugContext(ctx, "creating reminder",
		"user_id", input.UserID,
		"type", input.Kind,
	)

	owner, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return ReminderOutput{}, NewValidationError("user_id", err.Error())
	}

	params, err := toParams(input.ReminderFields)
	if err != nil {
		return ReminderOutput{}, err
	}

	now := uc.clock()

	reminder, err := domain.NewReminder(owner, params, now)
	if err != nil {
		return ReminderOutput{}, paramsError(err)
	}

	return uc.save(ctx, reminder, now)
}

func (uc *reminderUseCaseImpl) save(ctx context.Context, reminder *domain.Reminder, now time.Time) (ReminderOutput, error) {
	if err := uc.repo.Save(ctx, reminder); err != nil {
		slog.ErrorContext(ctx, "failed to save reminder",
			"error", err,
			"reminder_id", reminder.ID().String(),
		)

		return ReminderOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.InfoContext(ctx, "reminder created",
		"reminder_id", reminder.ID().String(),
		"user_id", reminder.Owner().String(),
		"notifications", reminder.Notifications().Count(),
	)

	return FromEntity(reminder, now), nil
}

// load fetches a reminder and enforces that user owns it.
func (uc *reminderUseCaseImpl) load(ctx context.Context, input ReminderRefInput) (*domain.Reminder, error) {
	user, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return nil, NewValidationError("user_id", err.Error())
	}

	id, err := domain.ReminderIDFromString(input.ID)
	if err != nil {
		return nil, NewValidationError("id", err.Error())
	}

	reminder, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrReminderNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.ErrorContext(ctx, "failed to load reminder",
			"error", err,
			"reminder_id", input.ID,
		)

		return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	if !reminder.OwnedBy(user) {
		slog.WarnContext(ctx, "reminder access denied",
			"reminder_id", input.ID,
			"user_id", input.UserID,
		)

		return nil, fmt.Errorf("%w: reminder %s", ErrForbidden, input.ID)
	}

	return reminder, nil
}

func (uc *reminderUseCaseImpl) update(ctx context.Context, reminder *domain.Reminder) error {
	if err := uc.repo.Update(ctx, reminder); err != nil {
		slog.ErrorContext(ctx, "failed to update reminder",
			"error", err,
			"reminder_id", reminder.ID().String(),
		)

		if errors.Is(err, domain.ErrReminderNotFound) {
			return fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return nil
}

func (uc *reminderUseCaseImpl) GetReminder(ctx context.Context, input ReminderRefInput) (ReminderOutput, error) {
	reminder, err := uc.load(ctx, input)
	if err != nil {
		return ReminderOutput{}, err
	}

	return FromEntity(reminder, uc.clock()), nil
}

func (uc *reminderUseCaseImpl) ListReminders(ctx context.Context, input ListRemindersInput) (ReminderPageOutput, error) {
	owner, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return ReminderPageOutput{}, NewValidationError("user_id", err.Error())
	}

	filter := domain.ReminderFilter{Owner: owner}

	if input.Kind != "" {
		if filter.Kind, err = domain.NewKind(input.Kind); err != nil {
			return ReminderPageOutput{}, NewValidationError("type", err.Error())
		}
	}

	if input.Category != "" {
		if filter.Category, err = domain.NewCategory(input.Category); err != nil {
			return ReminderPageOutput{}, NewValidationError("category", err.Error())
		}
	}

	switch domain.Status(input.Status) {
	case domain.StatusAny, domain.StatusActive, domain.StatusCompleted:
		filter.Status = domain.Status(input.Status)
	default:
		return ReminderPageOutput{}, NewValidationError("status", "must be active or completed")
	}

	page := max(input.Page, 1)

	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	limit = min(limit, maxPageSize)

	total, err := uc.repo.CountByOwner(ctx, filter)
	if err != nil {
		slog.ErrorContext(ctx, "failed to count reminders", "error", err, "user_id", input.UserID)

		return ReminderPageOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	filter.Offset = (page - 1) * limit
	filter.Limit = limit

	reminders, err := uc.repo.FindByOwner(ctx, filter)
	if errors.Is(err, domain.ErrCorruptReminder) {
		slog.ErrorContext(ctx, "listing without reminders that cannot be loaded", "error", err, "user_id", input.UserID)
		err = nil
	}

	if err != nil {
		slog.ErrorContext(ctx, "failed to list reminders", "error", err, "user_id", input.UserID)

		return ReminderPageOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	out := FromEntities(reminders, uc.clock())
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return ReminderPageOutput{
		Reminders:  out.Reminders,
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
		HasNext:    int64(filter.Offset+len(reminders)) < total,
		HasPrev:    page > 1,
	}, nil
}

func (uc *reminderUseCaseImpl) UpdateReminder(ctx context.Context, input UpdateReminderInput) (ReminderOutput, error) {
	slog.DebugContext(ctx, "updating reminder",
		"reminder_id", input.ID,
		"user_id", input.UserID,
	)

	reminder, err := uc.load(ctx, ReminderRefInput{ID: input.ID, UserID: input.UserID})
	if err != nil {
		return ReminderOutput{}, err
	}

	params, err := toParams(input.ReminderFields)
	if err != nil {
		return ReminderOutput{}, err
	}

	now := uc.clock()

	if err := reminder.Update(params, now); err != nil {
		return ReminderOutput{}, paramsError(err)
	}

	if input.Active != nil {
		reminder.SetActive(*input.Active, now)
	}

	if err := uc.update(ctx, reminder); err != nil {
		return ReminderOutput{}, err
	}

	return FromEntity(reminder, now), nil
}

func (uc *reminderUseCaseImpl) CompleteReminder(ctx context.Context, input ReminderRefInput) (ReminderOutput, error) {
	reminder, err := uc.load(ctx, input)
	if err != nil {
		return ReminderOutput{}, err
	}

	now := uc.clock()

	if err := reminder.MarkCompleted(now); err != nil {
		if !errors.Is(err, domain.ErrAlreadyCompleted) {
			return ReminderOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
		}

		slog.InfoContext(ctx, "reminder already completed (idempotency)",
			"reminder_id", input.ID,
		)

		return FromEntity(reminder, now), nil
	}

	if err := uc.update(ctx, reminder); err != nil {
		return ReminderOutput{}, err
	}

	slog.InfoContext(ctx, "reminder completed", "reminder_id", input.ID)

	return FromEntity(reminder, now), nil
}

func (uc *reminderUseCaseImpl) DeleteReminder(ctx context.Context, input ReminderRefInput) error {
	if _, err := uc.load(ctx, input); err != nil {
		return err
	}

	id, _ := domain.ReminderIDFromString(input.ID)

	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrReminderNotFound) {
			slog.InfoContext(ctx, "reminder not found for deletion (idempotency)",
				"reminder_id", input.ID,
			)

			return nil
		}

		slog.ErrorContext(ctx, "failed to delete reminder",
			"error", err,
			"reminder_id", input.ID,
		)

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.InfoContext(ctx, "reminder deleted", "reminder_id", input.ID)

	return nil
}

func (uc *reminderUseCaseImpl) UpcomingReminders(ctx context.Context, input ReminderWindowInput) (RemindersOutput, error) {
	now := uc.clock()

	return uc.window(ctx, input, domain.TimeRange{Start: now}, now)
}

func (uc *reminderUseCaseImpl) OverdueReminders(ctx context.Context, input ReminderWindowInput) (RemindersOutput, error) {
	now := uc.clock()

	return uc.window(ctx, input, domain.TimeRange{End: now}, now)
}

func (uc *reminderUseCaseImpl) window(
	ctx context.Context,
	input ReminderWindowInput,
	tr domain.TimeRange,
	now time.Time,
) (RemindersOutput, error) {
	owner, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return RemindersOutput{}, NewValidationError("user_id", err.Error())
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultWindowSize
	}

	reminders, err := uc.repo.FindByOwner(ctx, domain.ReminderFilter{
		Owner:    owner,
		Range:    &tr,
		OnlyOpen: true,
		Limit:    min(limit, maxPageSize),
	})
	if errors.Is(err, domain.ErrCorruptReminder) {
		slog.ErrorContext(ctx, "listing without reminders that cannot be loaded", "error", err, "user_id", input.UserID)
		err = nil
	}

	if err != nil {
		slog.ErrorContext(ctx, "failed to list reminders", "error", err, "user_id", input.UserID)

		return RemindersOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return FromEntities(reminders, now), nil
}

func (uc *reminderUseCaseImpl) ReminderStats(ctx context.Context, input ReminderStatsInput) (ReminderStatsOutput, error) {
	owner, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return ReminderStatsOutput{}, NewValidationError("user_id", err.Error())
	}

	now := uc.clock()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	queries := []struct {
		dst    *int64
		filter domain.ReminderFilter
	}{
		{filter: domain.ReminderFilter{Owner: owner}},
		{filter: domain.ReminderFilter{Owner: owner, OnlyOpen: true}},
		{filter: domain.ReminderFilter{Owner: owner, Status: domain.StatusCompleted}},
		{filter: domain.ReminderFilter{Owner: owner, OnlyOpen: true, Range: &domain.TimeRange{End: now}}},
		{filter: domain.ReminderFilter{
			Owner:    owner,
			OnlyOpen: true,
			Range:    &domain.TimeRange{Start: startOfDay, End: startOfDay.AddDate(0, 0, 1)},
		}},
	}

	var stats ReminderStatsOutput

	queries[0].dst = &stats.Total
	queries[1].dst = &stats.Active
	queries[2].dst = &stats.Completed
	queries[3].dst = &stats.Overdue
	queries[4].dst = &stats.Today

	for _, q := range queries {
		count, err := uc.repo.CountByOwner(ctx, q.filter)
		if err != nil {
			slog.ErrorContext(ctx, "failed to count reminders", "error", err, "user_id", input.UserID)

			return ReminderStatsOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
		}

		*q.dst = count
	}

	return stats, nil
}

func (uc *reminderUseCaseImpl) NextOccurrence(ctx context.Context, input ReminderRefInput) (NextOccurrenceOutput, error) {
	reminder, err := uc.load(ctx, input)
	if err != nil {
		return NextOccurrenceOutput{}, err
	}

	out := NextOccurrenceOutput{
		ReminderID: reminder.ID().String(),
		Repeat:     string(reminder.Repeat()),
	}

	if next, ok := reminder.NextOccurrence(uc.clock()); ok {
		out.Next = &next
	}

	return out, nil
}

func (uc *reminderUseCaseImpl) CreateFromDeadline(ctx context.Context, input CreateFromDeadlineInput) (ReminderOutput, error) {
	owner, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return ReminderOutput{}, NewValidationError("user_id", err.Error())
	}

	id, err := parseItemID("deadline_id", input.DeadlineID)
	if err != nil {
		return ReminderOutput{}, err
	}

	deadline, err := uc.items.FindDeadline(ctx, id)
	if err != nil {
		return ReminderOutput{}, itemLookupError(ctx, err, domain.ErrDeadlineNotFound, input.DeadlineID)
	}

	now := uc.clock()

	reminder, err := domain.NewDeadlineReminder(owner, deadline, now)
	if err != nil {
		return ReminderOutput{}, paramsError(err)
	}

	return uc.save(ctx, reminder, now)
}

func (uc *reminderUseCaseImpl) CreateFromEvent(ctx context.Context, input CreateFromEventInput) (ReminderOutput, error) {
	owner, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return ReminderOutput{}, NewValidationError("user_id", err.Error())
	}

	id, err := parseItemID("event_id", input.EventID)
	if err != nil {
		return ReminderOutput{}, err
	}

	event, err := uc.items.FindEvent(ctx, id)
	if err != nil {
		return ReminderOutput{}, itemLookupError(ctx, err, domain.ErrEventNotFound, input.EventID)
	}

	now := uc.clock()

	reminder, err := domain.NewEventReminder(owner, event, now)
	if err != nil {
		return ReminderOutput{}, paramsError(err)
	}

	return uc.save(ctx, reminder, now)
}

func itemLookupError(ctx context.Context, err, notFound error, id string) error {
	if errors.Is(err, notFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	slog.ErrorContext(ctx, "failed to load campus item", "error", err, "item_id", id)

	return fmt.Errorf("%w: %v", ErrInternalError, err)
}

// SendUrgentNotification emails the owner right away, outside the
// scheduled notifications. Completed reminders are not delivered.
func (uc *reminderUseCaseImpl) SendUrgentNotification(ctx context.Context, input ReminderRefInput) (UrgentNotificationOutput, error) {
	reminder, err := uc.load(ctx, input)
	if err != nil {
		return UrgentNotificationOutput{}, err
	}

	out := UrgentNotificationOutput{ReminderID: reminder.ID().String()}

	if reminder.IsCompleted() {
		return out, nil
	}

	err = uc.dispatcher.Dispatch(ctx, dispatch.Request{
		Channel:   domain.ChannelEmail,
		Recipient: reminder.Owner(),
		Payload:   dispatch.PayloadFromReminder(reminder, domain.Notification{}),
	})

	switch {
	case err == nil:
		out.Delivered = true
	case dispatch.IsPermanent(err):
		slog.InfoContext(ctx, "urgent notification not deliverable",
			"reminder_id", input.ID,
			"error", err,
		)
	default:
		slog.ErrorContext(ctx, "urgent notification failed",
			"reminder_id", input.ID,
			"error", err,
		)

		return out, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return out, nil
}
