package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/KasumiMercury/campus-copilot-reminder/internal/app"
)

// ScanMetrics records notification scan outcomes.
type ScanMetrics struct {
	scans         metric.Int64Counter
	notifications metric.Int64Counter
	reminders     metric.Int64Counter
	duration      metric.Float64Histogram
}

var _ app.ScanObserver = (*ScanMetrics)(nil)

func NewScanMetrics(meter metric.Meter) (*ScanMetrics, error) {
	scans, err := meter.Int64Counter("reminder.scan.count",
		metric.WithDescription("Notification scans run"),
	)
	if err != nil {
		return nil, err
	}

	notifications, err := meter.Int64Counter("reminder.notification.count",
		metric.WithDescription("Notifications handled by scans, by outcome"),
	)
	if err != nil {
		return nil, err
	}

	reminders, err := meter.Int64Counter("reminder.recurrence.count",
		metric.WithDescription("Recurring reminders handled by scans, by outcome"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram("reminder.scan.duration",
		metric.WithDescription("Notification scan latency"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &ScanMetrics{
		scans:         scans,
		notifications: notifications,
		reminders:     reminders,
		duration:      duration,
	}, nil
}

func (m *ScanMetrics) ObserveScan(ctx context.Context, report app.ScanReport, elapsed time.Duration) {
	status := "ok"
	if len(report.Errors) > 0 {
		status = "error"
	}

	m.scans.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
	m.duration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(attribute.String("status", status)))

	for outcome, n := range map[string]int{
		"dispatched":    report.Dispatched,
		"suppressed":    report.Suppressed,
		"failed":        report.Failed,
		"missed":        report.Missed,
		"store_failure": report.StoreFailures,
		"withdrawn":     report.Withdrawn,
	} {
		if n > 0 {
			m.notifications.Add(ctx, int64(n), metric.WithAttributes(attribute.String("outcome", outcome)))
		}
	}

	for outcome, n := range map[string]int{
		"rescheduled": report.Rescheduled,
		"expired":     report.Expired,
	} {
		if n > 0 {
			m.reminders.Add(ctx, int64(n), metric.WithAttributes(attribute.String("outcome", outcome)))
		}
	}
}
