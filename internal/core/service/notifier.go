package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/loopcrm/crm-backend/internal/api/metrics"
	"github.com/loopcrm/crm-backend/internal/core/domain"
	"github.com/loopcrm/crm-backend/internal/core/ports"
)

// BadgeInvalidator drops a user's cached unseen-notification count so the
// next read recomputes it. Backed by Redis; a nil invalidator is valid.
type BadgeInvalidator interface {
	Invalidate(ctx context.Context, userID string) error
}

// Notifier emits notifications after task mutations commit. Emission is
// best-effort by contract: a failure here is logged and counted, and the
// already-committed task write stays successful.
type Notifier struct {
	notifications ports.NotificationRepository
	badges        BadgeInvalidator
	logger        zerolog.Logger
}

func NewNotifier(notifications ports.NotificationRepository, badges BadgeInvalidator, logger zerolog.Logger) *Notifier {
	return &Notifier{notifications: notifications, badges: badges, logger: logger}
}

func (n *Notifier) TaskCreated(ctx context.Context, task *domain.Task) {
	n.emit(ctx, task, "created", fmt.Sprintf("A new task %q has been assigned to you.", task.Title))
}

func (n *Notifier) TaskUpdated(ctx context.Context, task *domain.Task) {
	// Fires on every update while the task has an assignee, not only on
	// reassignment.
	n.emit(ctx, task, "updated", fmt.Sprintf("Task %q has been updated.", task.Title))
}

func (n *Notifier) TaskDeleted(ctx context.Context, task *domain.Task) {
	// The referenced task id no longer resolves; readers tolerate that.
	n.emit(ctx, task, "deleted", fmt.Sprintf("Task %q has been deleted.", task.Title))
}

func (n *Notifier) emit(ctx context.Context, task *domain.Task, event, message string) {
	if task.AssignedTo == "" {
		return
	}

	notification := &domain.Notification{
		UserID:    task.AssignedTo,
		Message:   message,
		TaskID:    task.ID,
		Seen:      false,
		CreatedAt: time.Now().UTC(),
	}

	if _, err := n.notifications.Insert(ctx, notification); err != nil {
		metrics.NotificationEmitFailuresTotal.Inc()
		n.logger.Warn().Err(err).
			Str("task_id", task.ID).
			Str("user_id", task.AssignedTo).
			Str("event", event).
			Msg("failed to emit notification")
		return
	}

	metrics.NotificationsEmittedTotal.WithLabelValues(event).Inc()

	if n.badges != nil {
		if err := n.badges.Invalidate(ctx, task.AssignedTo); err != nil {
			n.logger.Warn().Err(err).Str("user_id", task.AssignedTo).Msg("failed to invalidate badge cache")
		}
	}
}
