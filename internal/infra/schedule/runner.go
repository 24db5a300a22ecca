package schedule

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/KasumiMercury/campus-copilot-reminder/internal/app"
)

var (
	ErrInvalidInterval = errors.New("scan interval must be at least one second")
	ErrAlreadyStarted  = errors.New("runner already started")
)

type Config struct {
	Interval   time.Duration
	RunOnStart bool
	Location   *time.Location
}

// Runner triggers notification scans on a fixed interval. At most one scan
// runs at a time; ticks that arrive while a scan is in flight are skipped.
type Runner struct {
	scanner app.NotificationScanner
	clock   app.Clock
	cfg     Config
	logger  cron.Logger

	mu      sync.Mutex
	c       *cron.Cron
	job     cron.Job
	initial sync.WaitGroup
}

func NewRunner(scanner app.NotificationScanner, clock app.Clock, cfg Config) (*Runner, error) {
	if cfg.Interval < time.Second {
		return nil, ErrInvalidInterval
	}

	if cfg.Location == nil {
		cfg.Location = time.UTC
	}

	if clock == nil {
		clock = time.Now
	}

	return &Runner{
		scanner: scanner,
		clock:   clock,
		cfg:     cfg,
		logger:  NewSlogLogger(slog.Default().With(slog.String("module", "schedule"))),
	}, nil
}

// Start schedules the scan job. ctx is handed to every scan and is not
// used to stop the runner.
func (r *Runner) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.c != nil {
		return ErrAlreadyStarted
	}

	r.c = cron.New(
		cron.WithLocation(r.cfg.Location),
		cron.WithLogger(r.logger),
	)

	r.job = cron.NewChain(
		cron.Recover(r.logger),
		cron.SkipIfStillRunning(r.logger),
	).Then(cron.FuncJob(func() { r.scan(ctx) }))

	r.c.Schedule(cron.Every(r.cfg.Interval), r.job)
	r.c.Start()

	slog.Info("notification scan runner started",
		slog.String("event", "runner.start"),
		slog.Duration("interval", r.cfg.Interval),
		slog.Bool("run_on_start", r.cfg.RunOnStart),
	)

	if r.cfg.RunOnStart {
		r.initial.Add(1)

		go func() {
			defer r.initial.Done()
			r.job.Run()
		}()
	}

	return nil
}

// Stop prevents further scans and waits for the in-flight one, if any, or
// until ctx is done.
func (r *Runner) Stop(ctx context.Context) error {
	r.mu.Lock()
	c := r.c
	r.c = nil
	r.mu.Unlock()

	if c == nil {
		return nil
	}

	done := make(chan struct{})

	go func() {
		<-c.Stop().Done()
		r.initial.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("notification scan runner stopped",
			slog.String("event", "runner.stop"),
		)

		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Runner) scan(ctx context.Context) {
	report := r.scanner.RunScan(ctx, r.clock())

	if err := report.Err(); err != nil {
		slog.WarnContext(ctx, "scheduled notification scan reported errors",
			slog.String("event", "runner.scan.errors"),
			slog.Int("error_count", len(report.Errors)),
		)
	}
}
