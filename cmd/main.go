package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sendgrid/sendgrid-go"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/KasumiMercury/campus-copilot-reminder/internal/app"
	"github.com/KasumiMercury/campus-copilot-reminder/internal/config"
	"github.com/KasumiMercury/campus-copilot-reminder/internal/domain"
	"github.com/KasumiMercury/campus-copilot-reminder/internal/infra/dispatch"
	"github.com/KasumiMercury/campus-copilot-reminder/internal/infra/handler"
	"github.com/KasumiMercury/campus-copilot-reminder/internal/infra/pubsub"
	"github.com/KasumiMercury/campus-copilot-reminder/internal/infra/repository"
	"github.com/KasumiMercury/campus-copilot-reminder/internal/infra/schedule"
	"github.com/KasumiMercury/campus-copilot-reminder/internal/observability"
	"github.com/KasumiMercury/campus-copilot-reminder/internal/observability/logging"
	"github.com/KasumiMercury/campus-copilot-reminder/internal/observability/middleware"
)

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		return 1
	}

	if err := cfg.PubSub.Validate(); err != nil {
		slog.Error("pubsub configuration error", "error", err)
		return 1
	}

	ctx := context.Background()

	obs, err := initObservability(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize observability", "error", err)
		return 1
	}
	defer func() {
		if err := obs.Shutdown(context.Background()); err != nil {
			slog.Warn("failed to shutdown observability", "error", err)
		}
	}()

	db, err := initDatabase(cfg.Database, logging.ParseLevel(cfg.Log.Level))
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		return 1
	}

	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("failed to get underlying sql.DB", "error", err)
		return 1
	}

	if err := repository.Migrate(db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		return 1
	}

	publisher, err := initPublisher(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize publisher", "error", err)
		return 1
	}
	if publisher != nil {
		defer func() {
			if err := publisher.Close(); err != nil {
				slog.Warn("failed to close publisher", "error", err)
			}
		}()
	}

	dispatcher, err := initDispatcher(cfg, db, publisher)
	if err != nil {
		slog.Error("failed to initialize dispatcher", "error", err)
		return 1
	}

	lookAhead, err := domain.NewLookAhead(
		cfg.Scheduler.LookAheadWindow,
		cfg.Scheduler.RetryHorizon,
		cfg.Scheduler.MaxAttempts,
	)
	if err != nil {
		slog.Error("invalid scheduler configuration", "error", err)
		return 1
	}

	clock := app.Clock(time.Now)
	reminderRepo := repository.NewReminderRepository(db)

	scheduler := app.NewNotificationScheduler(reminderRepo, dispatcher, app.SchedulerConfig{
		LookAhead:     lookAhead,
		Concurrency:   cfg.Scheduler.Concurrency,
		DispatchRate:  cfg.Scheduler.DispatchRate,
		DispatchBurst: cfg.Scheduler.DispatchBurst,
		Observer:      obs.ScanMetrics(),
	})

	reminderUseCase := app.NewReminderUseCase(
		reminderRepo,
		repository.NewCampusItemRepository(db),
		dispatcher,
		clock,
	)

	// Exactly one scan trigger is exposed: the in-process runner or the job
	// endpoint for an external scheduler.
	var jobHandler *handler.JobHandler
	if !cfg.Scheduler.Enabled {
		jobHandler = handler.NewJobHandler(scheduler, clock)
	}

	router := setupRouter(
		obs,
		handler.NewReminderHandler(reminderUseCase),
		jobHandler,
	)

	var runner *schedule.Runner
	if cfg.Scheduler.Enabled {
		runner, err = schedule.NewRunner(scheduler, clock, schedule.Config{
			Interval:   cfg.Scheduler.Interval,
			RunOnStart: cfg.Scheduler.RunOnStart,
			Location:   cfg.App.TimeZone,
		})
		if err != nil {
			slog.Error("failed to create scan runner", "error", err)
			return 1
		}

		scanCtx := logging.WithModule(context.Background(), logging.ModuleScheduler)
		if err := runner.Start(scanCtx); err != nil {
			slog.Error("failed to start scan runner", "error", err)
			return 1
		}
	} else {
		slog.Info("in-process scan runner disabled; scans run through the job endpoint only")
	}

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server", "address", cfg.Server.Address())
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	exitCode := 0

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig.String())
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server exited with error", "error", err)
			exitCode = 1
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shutdown server", "error", err)
		exitCode = 1
	}

	if runner != nil {
		if err := runner.Stop(shutdownCtx); err != nil {
			slog.Error("scan runner did not stop in time", "error", err)
			exitCode = 1
		}
	}

	if err := sqlDB.Close(); err != nil {
		slog.Error("failed to close database connection", "error", err)
	}

	slog.Info("server exited", "code", exitCode)

	return exitCode
}

func initDatabase(cfg config.DatabaseConfig, level slog.Level) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: logging.NewGormLogger(200*time.Millisecond, level),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

// initDispatcher registers one sender per channel. Channels without a
// configured backend fall back to a log-only sender.
func initDispatcher(cfg *config.Config, db *gorm.DB, publisher pubsub.Publisher) (dispatch.Dispatcher, error) {
	senders := map[domain.Channel]dispatch.ChannelSender{}

	if cfg.Mail.Enabled() {
		renderer, err := dispatch.NewEmailRenderer(cfg.App.Name, cfg.App.TimeZone)
		if err != nil {
			return nil, err
		}

		senders[domain.ChannelEmail] = dispatch.NewEmailSender(
			sendgrid.NewSendClient(cfg.Mail.SendGridAPIKey),
			renderer,
			dispatch.EmailSenderConfig{
				FromName:    cfg.Mail.FromName,
				FromAddress: cfg.Mail.FromAddress,
			},
		)
	} else {
		slog.Warn("SENDGRID_API_KEY not set, emails are only logged")
		senders[domain.ChannelEmail] = dispatch.NewLogSender(domain.ChannelEmail)
	}

	for _, channel := range []domain.Channel{domain.ChannelPush, domain.ChannelSMS, domain.ChannelInApp} {
		if publisher != nil {
			senders[channel] = dispatch.NewEventSender(channel, publisher)
		} else {
			senders[channel] = dispatch.NewLogSender(channel)
		}
	}

	return dispatch.NewChannelRouter(repository.NewRecipientDirectory(db), senders), nil
}

func setupRouter(obs *observability.Resources, reminderHandler *handler.ReminderHandler, jobHandler *handler.JobHandler) *gin.Engine {
	router := gin.New()
	router.Use(middleware.PanicRecoveryGin())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	v1 := router.Group("/api/v1")

	api := v1.Group("", middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/ping"},
		Module:      logging.ModuleReminder,
		TracerName:  "reminder-api",
		HTTPMetrics: obs.HTTPMetrics(),
	}))
	reminderHandler.RegisterRoutes(api)

	if jobHandler == nil {
		return router
	}

	jobs := v1.Group("", middleware.Gin(middleware.GinConfig{
		Module:     logging.ModuleJob,
		Worker:     true,
		TracerName: "reminder-jobs",
		JobNameResolver: func(c *gin.Context) string {
			return "notification-scan"
		},
		HTTPMetrics: obs.HTTPMetrics(),
	}))
	jobHandler.RegisterRoutes(jobs)

	return router
}
