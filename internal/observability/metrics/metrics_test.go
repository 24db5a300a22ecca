package metrics_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/KasumiMercury/campus-copilot-reminder/internal/app"
	"github.com/KasumiMercury/campus-copilot-reminder/internal/observability/metrics"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := map[string]metricdata.Metrics{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}

	return out
}

func sumByAttr(t *testing.T, m metricdata.Metrics, key string) map[string]int64 {
	t.Helper()

	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok)

	out := map[string]int64{}
	for _, dp := range sum.DataPoints {
		v, _ := dp.Attributes.Value(attribute.Key(key))
		out[v.AsString()] += dp.Value
	}

	return out
}

func TestScanMetricsObserveScan(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	sm, err := metrics.NewScanMetrics(mp.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	sm.ObserveScan(ctx, app.ScanReport{Scanned: 4, Dispatched: 3, Missed: 1, Rescheduled: 2}, time.Second)
	sm.ObserveScan(ctx, app.ScanReport{Scanned: 2, Failed: 1, Withdrawn: 1, Errors: []error{errors.New("timeout")}}, time.Second)

	got := collect(t, reader)

	assert.Equal(t, map[string]int64{"ok": 1, "error": 1}, sumByAttr(t, got["reminder.scan.count"], "status"))
	assert.Equal(t,
		map[string]int64{"dispatched": 3, "missed": 1, "failed": 1, "withdrawn": 1},
		sumByAttr(t, got["reminder.notification.count"], "outcome"),
	)
	assert.Equal(t, map[string]int64{"rescheduled": 2}, sumByAttr(t, got["reminder.recurrence.count"], "outcome"))
	assert.Contains(t, got, "reminder.scan.duration")
}

func TestHTTPMetricsRecord(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	hm, err := metrics.NewHTTPMetrics(mp.Meter("test"))
	require.NoError(t, err)

	hm.Record(context.Background(), http.MethodGet, "/api/v1/reminders/:id", http.StatusOK, 20*time.Millisecond)
	hm.Record(context.Background(), http.MethodGet, "/api/v1/reminders/:id", http.StatusNotFound, 5*time.Millisecond)

	got := collect(t, reader)

	assert.Equal(t,
		map[string]int64{"200": 1, "404": 1},
		sumByAttr(t, got["http.server.request.count"], "http.response.status_code"),
	)
	assert.Equal(t,
		map[string]int64{"/api/v1/reminders/:id": 2},
		sumByAttr(t, got["http.server.request.count"], "http.route"),
	)
}
