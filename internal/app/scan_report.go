package app

import (
	"errors"
	"log/slog"
)

// ScanReport summarises one notification scan.
type ScanReport struct {
	// Skipped is set when the scan did not run because another one was in
	// progress.
	Skipped       bool
	Scanned       int
	Dispatched    int
	Suppressed    int
	Failed        int
	Missed        int
	StoreFailures int
	Rescheduled   int
	Expired       int
	// Withdrawn counts reminders the owner completed, deactivated or
	// deleted while the scan held them.
	Withdrawn int
	Errors    []error
}

func (r *ScanReport) merge(o ScanReport) {
	r.Scanned += o.Scanned
	r.Dispatched += o.Dispatched
	r.Suppressed += o.Suppressed
	r.Failed += o.Failed
	r.Missed += o.Missed
	r.StoreFailures += o.StoreFailures
	r.Rescheduled += o.Rescheduled
	r.Expired += o.Expired
	r.Withdrawn += o.Withdrawn
	r.Errors = append(r.Errors, o.Errors...)
}

// Err joins every error collected during the scan, or returns nil.
func (r ScanReport) Err() error {
	return errors.Join(r.Errors...)
}

func (r ScanReport) LogValue() slog.Value {
	if r.Skipped {
		return slog.GroupValue(slog.Bool("skipped", true))
	}

	attrs := []slog.Attr{
		slog.Int("scanned", r.Scanned),
		slog.Int("dispatched", r.Dispatched),
		slog.Int("suppressed", r.Suppressed),
		slog.Int("failed", r.Failed),
		slog.Int("missed", r.Missed),
		slog.Int("store_failures", r.StoreFailures),
		slog.Int("rescheduled", r.Rescheduled),
		slog.Int("expired", r.Expired),
		slog.Int("withdrawn", r.Withdrawn),
		slog.Int("error_count", len(r.Errors)),
	}

	if err := r.Err(); err != nil {
		attrs = append(attrs, slog.String("errors", err.Error()))
	}

	return slog.GroupValue(attrs...)
}
