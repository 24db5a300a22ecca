package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/campus-copilot-reminder/internal/app"
)

// JobHandler exposes the notification scan for external schedulers.
type JobHandler struct {
	scanner app.NotificationScanner
	clock   app.Clock
}

func NewJobHandler(scanner app.NotificationScanner, clock app.Clock) *JobHandler {
	return &JobHandler{
		scanner: scanner,
		clock:   clock,
	}
}

// NotificationScan answers 200 once the scan ran; per-reminder failures
// are reported in the body and retried by the next scan. It answers 409 when
// a scan is already running.
func (h *JobHandler) NotificationScan(c *gin.Context) {
	report := h.scanner.RunScan(c.Request.Context(), h.clock())

	if report.Skipped {
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:   "scan_in_progress",
			Message: "a notification scan is already running",
		})

		return
	}

	if err := report.Err(); err != nil {
		slog.WarnContext(c.Request.Context(), "notification scan reported errors",
			slog.String("event", "job.scan.errors"),
			slog.Int("error_count", len(report.Errors)),
			slog.String("error", err.Error()),
		)
	}

	c.JSON(http.StatusOK, FromScanReport(report))
}

func (h *JobHandler) RegisterRoutes(router *gin.RouterGroup) {
	jobs := router.Group("/jobs")
	{
		jobs.POST("/notification-scan", h.NotificationScan)
	}
}
