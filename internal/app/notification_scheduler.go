package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/KasumiMercury/campus-copilot-reminder/internal/domain"
	"github.com/KasumiMercury/campus-copilot-reminder/internal/infra/dispatch"
)

const defaultScanConcurrency = 4

// NotificationScanner runs one notification scan at the given instant.
type NotificationScanner interface {
	RunScan(ctx context.Context, now time.Time) ScanReport
}

// ScanObserver receives the report of every completed scan.
type ScanObserver interface {
	ObserveScan(ctx context.Context, report ScanReport, elapsed time.Duration)
}

//go:generate mockgen -source=notification_scheduler.go -destination=notification_scheduler_mock.go -package=app

type SchedulerConfig struct {
	LookAhead domain.LookAhead
	// Concurrency bounds how many reminders are processed in parallel.
	Concurrency int
	// DispatchRate is the number of dispatches allowed per second. Zero or
	// less disables throttling.
	DispatchRate  float64
	DispatchBurst int
	Observer      ScanObserver
}

// NotificationScheduler finds notifications whose lead time has arrived and
// dispatches each of them at most once.
type NotificationScheduler struct {
	repo        domain.ReminderRepository
	dispatcher  dispatch.Dispatcher
	lookAhead   domain.LookAhead
	concurrency int
	limiter     *rate.Limiter
	observer    ScanObserver

	// scanning is held for the duration of a scan.
	scanning sync.Mutex
}

var _ NotificationScanner = (*NotificationScheduler)(nil)

func NewNotificationScheduler(
	repo domain.ReminderRepository,
	dispatcher dispatch.Dispatcher,
	cfg SchedulerConfig,
) *NotificationScheduler {
	lookAhead := cfg.LookAhead
	if lookAhead.Window() <= 0 {
		lookAhead = domain.DefaultLookAhead()
	}

	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = defaultScanConcurrency
	}

	limit := rate.Inf
	if cfg.DispatchRate > 0 {
		limit = rate.Limit(cfg.DispatchRate)
	}

	burst := cfg.DispatchBurst
	if burst < 1 {
		burst = 1
	}

	return &NotificationScheduler{
		repo:        repo,
		dispatcher:  dispatcher,
		lookAhead:   lookAhead,
		concurrency: concurrency,
		limiter:     rate.NewLimiter(limit, burst),
		observer:    cfg.Observer,
	}
}

// RunScan never reads the wall clock for scheduling decisions; every
// comparison is made against now. Scans never overlap: a call made while
// another scan is running returns a report with Skipped set.
func (s *NotificationScheduler) RunScan(ctx context.Context, now time.Time) ScanReport {
	if !s.scanning.TryLock() {
		slog.WarnContext(ctx, "notification scan already running",
			slog.String("event", "scan.skipped"),
			slog.Time("now", now),
		)

		return ScanReport{Skipped: true}
	}
	defer s.scanning.Unlock()

	started := time.Now()

	slog.DebugContext(ctx, "notification scan started",
		slog.String("event", "scan.start"),
		slog.Time("now", now),
	)

	var report ScanReport

	// Rolling first lets the new occurrence's notifications fire in the
	// same scan.
	report.merge(s.rollRecurring(ctx, now))
	report.merge(s.dispatchPending(ctx, now))

	level := slog.LevelInfo
	if len(report.Errors) > 0 {
		level = slog.LevelWarn
	}

	slog.Log(ctx, level, "notification scan finished",
		slog.String("event", "scan.finish"),
		slog.Time("now", now),
		slog.Any("report", report),
	)

	if s.observer != nil {
		s.observer.ObserveScan(ctx, report, time.Since(started))
	}

	return report
}

func (s *NotificationScheduler) dispatchPending(ctx context.Context, now time.Time) ScanReport {
	var report ScanReport

	reminders, err := s.repo.FindPending(ctx)
	if corrupt := skippedRecords(err); corrupt != nil {
		recordCorrupt(ctx, corrupt, &report)
		err = nil
	}

	if err != nil {
		slog.ErrorContext(ctx, "failed to load pending reminders",
			slog.String("event", "scan.load.fail"),
			slog.String("error", err.Error()),
		)

		report.StoreFailures++
		report.Errors = append(report.Errors, fmt.Errorf("%w: find pending: %v", ErrStoreFailure, err))

		return report
	}

	report.Scanned += len(reminders)

	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, r := range reminders {
		g.Go(func() error {
			result := s.processReminder(gctx, r, now)

			mu.Lock()
			report.merge(result)
			mu.Unlock()

			return nil
		})
	}

	_ = g.Wait()

	return report
}

// processReminder handles the notifications of one reminder in order and
// persists after every transition. A store failure restores the reminder
// and stops processing it until the next scan.
func (s *NotificationScheduler) processReminder(ctx context.Context, r *domain.Reminder, now time.Time) ScanReport {
	var report ScanReport

	if !r.IsActive() || r.IsCompleted() {
		return report
	}

	for i := range r.Notifications().Count() {
		n := r.Notifications()[i]

		switch s.lookAhead.Classify(n, r.TriggerDate(), now) {
		case domain.DispositionFuture, domain.DispositionSettled:
			continue
		case domain.DispositionMissed:
			snapshot := r.Clone()

			if err := r.MarkNotificationMissed(i, now); err != nil {
				report.Errors = append(report.Errors, err)
				continue
			}

			if !s.persist(ctx, r, snapshot, &report) {
				return report
			}

			report.Missed++

			slog.WarnContext(ctx, "notification trigger instant passed unsent",
				slog.String("event", "scan.notification.missed"),
				slog.String("reminder_id", r.ID().String()),
				slog.String("channel", string(n.Channel())),
				slog.String("lead_time", string(n.LeadTime())),
				slog.Time("trigger_instant", n.TriggerInstant(r.TriggerDate())),
			)
		case domain.DispositionDue, domain.DispositionRetry:
			if err := s.limiter.Wait(ctx); err != nil {
				report.Errors = append(report.Errors, fmt.Errorf("dispatch throttle: %w", err))
				return report
			}

			snapshot := r.Clone()
			outcome := s.dispatchOne(ctx, r, i, now, &report)

			if !s.persist(ctx, r, snapshot, &report) {
				return report
			}

			switch outcome {
			case outcomeDispatched:
				report.Dispatched++
			case outcomeSuppressed:
				report.Suppressed++
			case outcomeFailed:
				report.Failed++
			}
		}
	}

	return report
}

type dispatchOutcome int

const (
	outcomeNone dispatchOutcome = iota
	outcomeDispatched
	outcomeSuppressed
	outcomeFailed
)

func (s *NotificationScheduler) dispatchOne(
	ctx context.Context,
	r *domain.Reminder,
	i int,
	now time.Time,
	report *ScanReport,
) dispatchOutcome {
	n := r.Notifications()[i]

	err := s.dispatcher.Dispatch(ctx, dispatch.Request{
		Channel:   n.Channel(),
		Recipient: r.Owner(),
		Payload:   dispatch.PayloadFromReminder(r, n),
	})

	switch {
	case err == nil:
		if markErr := r.MarkNotificationSent(i, now); markErr != nil {
			report.Errors = append(report.Errors, markErr)
			return outcomeNone
		}

		return outcomeDispatched
	case dispatch.IsPermanent(err):
		slog.WarnContext(ctx, "notification suppressed",
			slog.String("event", "scan.notification.suppressed"),
			slog.String("reminder_id", r.ID().String()),
			slog.String("channel", string(n.Channel())),
			slog.String("error", err.Error()),
		)

		if markErr := r.MarkNotificationSent(i, now); markErr != nil {
			report.Errors = append(report.Errors, markErr)
			return outcomeNone
		}

		return outcomeSuppressed
	default:
		slog.WarnContext(ctx, "notification dispatch failed",
			slog.String("event", "scan.notification.fail"),
			slog.String("reminder_id", r.ID().String()),
			slog.String("channel", string(n.Channel())),
			slog.Int("attempt", n.Attempts()+1),
			slog.String("error", err.Error()),
		)

		report.Errors = append(report.Errors, fmt.Errorf("dispatch reminder %s: %w", r.ID(), err))

		if markErr := r.RecordNotificationAttempt(i, now, err.Error()); markErr != nil {
			report.Errors = append(report.Errors, markErr)
			return outcomeNone
		}

		return outcomeFailed
	}
}

// persist writes the scheduling state of r. On failure r is restored from
// snapshot and false is returned. A reminder the owner completed,
// deactivated or deleted since it was loaded is left alone and counted as
// withdrawn.
func (s *NotificationScheduler) persist(ctx context.Context, r, snapshot *domain.Reminder, report *ScanReport) bool {
	err := s.repo.UpdateSchedule(ctx, r)
	if err == nil {
		return true
	}

	*r = *snapshot

	if errors.Is(err, domain.ErrReminderNotSchedulable) {
		slog.InfoContext(ctx, "reminder changed by its owner during scan",
			slog.String("event", "scan.reminder.withdrawn"),
			slog.String("reminder_id", r.ID().String()),
		)

		report.Withdrawn++

		return false
	}

	slog.ErrorContext(ctx, "failed to persist reminder during scan",
		slog.String("event", "scan.persist.fail"),
		slog.String("reminder_id", r.ID().String()),
		slog.String("error", err.Error()),
	)

	report.StoreFailures++
	report.Errors = append(report.Errors, fmt.Errorf("%w: reminder %s: %v", ErrStoreFailure, r.ID(), err))

	return false
}

func skippedRecords(err error) *domain.CorruptRecordsError {
	var corrupt *domain.CorruptRecordsError
	if errors.As(err, &corrupt) {
		return corrupt
	}

	return nil
}

// recordCorrupt counts records a load skipped; the rest of the load is
// still processed.
func recordCorrupt(ctx context.Context, corrupt *domain.CorruptRecordsError, report *ScanReport) {
	slog.ErrorContext(ctx, "skipped reminders that cannot be loaded",
		slog.String("event", "scan.load.corrupt"),
		slog.Any("reminder_ids", corrupt.IDs),
		slog.String("error", corrupt.Error()),
	)

	report.StoreFailures += len(corrupt.IDs)
	report.Errors = append(report.Errors, fmt.Errorf("%w: %w", ErrStoreFailure, corrupt))
}

// rollRecurring moves repeating reminders to their next occurrence once
// every notification of the current one is settled and the current one has
// passed or the next one's notifications enter the window. A recurrence
// with no occurrence left is completed.
func (s *NotificationScheduler) rollRecurring(ctx context.Context, now time.Time) ScanReport {
	var report ScanReport

	reminders, err := s.repo.FindRecurring(ctx)
	if corrupt := skippedRecords(err); corrupt != nil {
		recordCorrupt(ctx, corrupt, &report)
		err = nil
	}

	if err != nil {
		slog.ErrorContext(ctx, "failed to load recurring reminders",
			slog.String("event", "scan.recurring.load.fail"),
			slog.String("error", err.Error()),
		)

		report.StoreFailures++
		report.Errors = append(report.Errors, fmt.Errorf("%w: find recurring: %v", ErrStoreFailure, err))

		return report
	}

	windowEnd := now.Add(s.lookAhead.Window())

	for _, r := range reminders {
		if !r.IsActive() {
			continue
		}

		snapshot := r.Clone()

		rollover, next := r.RollForward(now, windowEnd)
		if rollover == domain.RolloverNone {
			continue
		}

		if !s.persist(ctx, r, snapshot, &report) {
			continue
		}

		switch rollover {
		case domain.RolloverExpired:
			report.Expired++

			slog.InfoContext(ctx, "recurrence ended",
				slog.String("event", "scan.recurring.expired"),
				slog.String("reminder_id", r.ID().String()),
			)
		case domain.RolloverAdvanced:
			report.Rescheduled++

			slog.InfoContext(ctx, "reminder rolled forward",
				slog.String("event", "scan.recurring.rescheduled"),
				slog.String("reminder_id", r.ID().String()),
				slog.Time("next", next),
			)
		}
	}

	return report
}
