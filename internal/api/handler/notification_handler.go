package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/loopcrm/crm-backend/internal/core/ports"
)

// NotificationHandler handles the owner-scoped notification endpoints.
// There is no create route: notifications exist only as side effects of
// task mutations.
type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

type taskRefResponse struct {
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	DueDate *time.Time `json:"due_date,omitempty"`
	Status  string     `json:"status"`
}

type notificationResponse struct {
	ID        string           `json:"id"`
	Message   string           `json:"message"`
	Task      *taskRefResponse `json:"task,omitempty"`
	Seen      bool             `json:"seen"`
	CreatedAt time.Time        `json:"created_at"`
}

type unseenCountResponse struct {
	Count int64 `json:"count"`
}

func toNotificationResponse(d *ports.NotificationDetail) notificationResponse {
	resp := notificationResponse{
		ID:        d.ID,
		Message:   d.Message,
		Seen:      d.Seen,
		CreatedAt: d.CreatedAt,
	}
	if d.Task != nil {
		resp.Task = &taskRefResponse{
			ID:      d.Task.ID,
			Title:   d.Task.Title,
			DueDate: d.Task.DueDate,
			Status:  string(d.Task.Status),
		}
	}
	return resp
}

// List returns the caller's notifications, newest first.
//
// @Summary      List own notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   notificationResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	notifications, err := h.service.List(c.Request().Context(), identity)
	if err != nil {
		return err
	}

	out := make([]notificationResponse, len(notifications))
	for i, d := range notifications {
		out[i] = toNotificationResponse(d)
	}
	return c.JSON(http.StatusOK, out)
}

// UnseenCount returns the caller's badge number.
//
// @Summary      Count own unseen notifications
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  unseenCountResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/notifications/unseen-count [get]
func (h *NotificationHandler) UnseenCount(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	count, err := h.service.UnseenCount(c.Request().Context(), identity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, unseenCountResponse{Count: count})
}

// MarkSeen flips one notification to seen. Another user's notification is a
// 404, not a 403.
//
// @Summary      Mark a notification as seen
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Notification id"
// @Success      200  {object}  domain.Notification
// @Failure      404  {object}  map[string]string
// @Router       /api/notifications/{id}/seen [patch]
func (h *NotificationHandler) MarkSeen(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	notification, err := h.service.MarkSeen(c.Request().Context(), identity, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notification)
}

// MarkAllSeen flips every unseen notification of the caller.
//
// @Summary      Mark all notifications as seen
// @Tags         notifications
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  map[string]string
// @Router       /api/notifications/seen/all [patch]
func (h *NotificationHandler) MarkAllSeen(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.MarkAllSeen(c.Request().Context(), identity); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
