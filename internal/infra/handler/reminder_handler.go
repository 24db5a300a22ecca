package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/campus-copilot-reminder/internal/app"
)

type ReminderHandler struct {
	useCase app.ReminderUseCase
}

func NewReminderHandler(useCase app.ReminderUseCase) *ReminderHandler {
	return &ReminderHandler{
		useCase: useCase,
	}
}

func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	slog.InfoContext(c.Request.Context(), "handling create reminder request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	var req ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)

		return
	}

	output, err := h.useCase.CreateReminder(c.Request.Context(), app.CreateReminderInput{
		UserID:         callerID(c),
		ReminderFields: req.toFields(),
	})
	if err != nil {
		h.handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "reminder created successfully",
		"reminder_id", output.ID,
	)
	c.JSON(http.StatusCreated, FromDTO(output))
}

func (h *ReminderHandler) ListReminders(c *gin.Context) {
	var req ListRemindersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.bindError(c, err)

		return
	}

	output, err := h.useCase.ListReminders(c.Request.Context(), app.ListRemindersInput{
		UserID:   callerID(c),
		Kind:     req.Type,
		Category: req.Category,
		Status:   req.Status,
		Page:     req.Page,
		Limit:    req.Limit,
	})
	if err != nil {
		h.handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromPageDTO(output))
}

func (h *ReminderHandler) GetReminder(c *gin.Context) {
	output, err := h.useCase.GetReminder(c.Request.Context(), h.ref(c))
	if err != nil {
		h.handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromDTO(output))
}

func (h *ReminderHandler) UpdateReminder(c *gin.Context) {
	id := c.Param("id")

	slog.InfoContext(c.Request.Context(), "handling update reminder request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"reminder_id", id,
	)

	var req UpdateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)

		return
	}

	output, err := h.useCase.UpdateReminder(c.Request.Context(), app.UpdateReminderInput{
		ID:             id,
		UserID:         callerID(c),
		Active:         req.IsActive,
		ReminderFields: req.toFields(),
	})
	if err != nil {
		h.handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromDTO(output))
}

func (h *ReminderHandler) CompleteReminder(c *gin.Context) {
	output, err := h.useCase.CompleteReminder(c.Request.Context(), h.ref(c))
	if err != nil {
		h.handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "reminder completed",
		"reminder_id", output.ID,
	)
	c.JSON(http.StatusOK, FromDTO(output))
}

func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	id := c.Param("id")

	slog.InfoContext(c.Request.Context(), "handling delete reminder request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"reminder_id", id,
	)

	if err := h.useCase.DeleteReminder(c.Request.Context(), h.ref(c)); err != nil {
		h.handleError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ReminderHandler) UpcomingReminders(c *gin.Context) {
	var req ReminderWindowRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.bindError(c, err)

		return
	}

	output, err := h.useCase.UpcomingReminders(c.Request.Context(), app.ReminderWindowInput{
		UserID: callerID(c),
		Limit:  req.Limit,
	})
	if err != nil {
		h.handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromDTOs(output))
}

func (h *ReminderHandler) OverdueReminders(c *gin.Context) {
	var req ReminderWindowRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.bindError(c, err)

		return
	}

	output, err := h.useCase.OverdueReminders(c.Request.Context(), app.ReminderWindowInput{
		UserID: callerID(c),
		Limit:  req.Limit,
	})
	if err != nil {
		h.handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromDTOs(output))
}

func (h *ReminderHandler) ReminderStats(c *gin.Context) {
	output, err := h.useCase.ReminderStats(c.Request.Context(), app.ReminderStatsInput{
		UserID: callerID(c),
	})
	if err != nil {
		h.handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, ReminderStatsResponse{
		Total:     output.Total,
		Active:    output.Active,
		Completed: output.Completed,
		Overdue:   output.Overdue,
		Today:     output.Today,
	})
}

func (h *ReminderHandler) NextOccurrence(c *gin.Context) {
	output, err := h.useCase.NextOccurrence(c.Request.Context(), h.ref(c))
	if err != nil {
		h.handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, NextOccurrenceResponse{
		ReminderID:     output.ReminderID,
		Repeat:         output.Repeat,
		NextOccurrence: output.Next,
	})
}

func (h *ReminderHandler) CreateFromDeadline(c *gin.Context) {
	output, err := h.useCase.CreateFromDeadline(c.Request.Context(), app.CreateFromDeadlineInput{
		UserID:     callerID(c),
		DeadlineID: c.Param("deadline_id"),
	})
	if err != nil {
		h.handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "reminder created from deadline",
		"reminder_id", output.ID,
		"deadline_id", c.Param("deadline_id"),
	)
	c.JSON(http.StatusCreated, FromDTO(output))
}

func (h *ReminderHandler) CreateFromEvent(c *gin.Context) {
	output, err := h.useCase.CreateFromEvent(c.Request.Context(), app.CreateFromEventInput{
		UserID:  callerID(c),
		EventID: c.Param("event_id"),
	})
	if err != nil {
		h.handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "reminder created from event",
		"reminder_id", output.ID,
		"event_id", c.Param("event_id"),
	)
	c.JSON(http.StatusCreated, FromDTO(output))
}

func (h *ReminderHandler) SendUrgentNotification(c *gin.Context) {
	output, err := h.useCase.SendUrgentNotification(c.Request.Context(), h.ref(c))
	if err != nil {
		h.handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, UrgentNotificationResponse{
		ReminderID: output.ReminderID,
		Delivered:  output.Delivered,
	})
}

func (h *ReminderHandler) ref(c *gin.Context) app.ReminderRefInput {
	return app.ReminderRefInput{
		ID:     c.Param("id"),
		UserID: callerID(c),
	}
}

func (h *ReminderHandler) bindError(c *gin.Context, err error) {
	slog.WarnContext(c.Request.Context(), "request validation failed",
		"error", err,
		"path", c.Request.URL.Path,
	)
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "validation_error",
		Message: err.Error(),
		Field:   "",
	})
}

func (h *ReminderHandler) handleError(c *gin.Context, err error) {
	var validationErr *app.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: validationErr.Message,
			Field:   validationErr.Field,
		})

		return
	}

	if errors.Is(err, app.ErrForbidden) {
		c.JSON(http.StatusForbidden, ErrorResponse{
			Error:   "forbidden",
			Message: "access to this resource is denied",
			Field:   "",
		})

		return
	}

	if errors.Is(err, app.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: "resource not found",
			Field:   "",
		})

		return
	}

	slog.ErrorContext(c.Request.Context(), "request failed",
		"path", c.Request.URL.Path,
		"error", err,
	)
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "an internal error occurred",
		Field:   "",
	})
}

func (h *ReminderHandler) RegisterRoutes(router *gin.RouterGroup) {
	reminders := router.Group("/reminders", RequireUser())
	{
		reminders.GET("", h.ListReminders)
		reminders.POST("", h.CreateReminder)
		reminders.GET("/upcoming", h.UpcomingReminders)
		reminders.GET("/overdue", h.OverdueReminders)
		reminders.GET("/stats", h.ReminderStats)
		reminders.POST("/from-deadline/:deadline_id", h.CreateFromDeadline)
		reminders.POST("/from-event/:event_id", h.CreateFromEvent)
		reminders.GET("/:id", h.GetReminder)
		reminders.PUT("/:id", h.UpdateReminder)
		reminders.DELETE("/:id", h.DeleteReminder)
		reminders.GET("/:id/next-occurrence", h.NextOccurrence)
		reminders.POST("/:id/complete", h.CompleteReminder)
		reminders.POST("/:id/notify", h.SendUrgentNotification)
	}
}
