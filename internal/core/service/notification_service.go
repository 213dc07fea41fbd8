package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/loopcrm/crm-backend/internal/core/domain"
	"github.com/loopcrm/crm-backend/internal/core/ports"
)

// BadgeCache caches a user's unseen-notification count (the bell badge).
// Cache-aside: reads fall back to the store on miss, writes invalidate.
// All methods are best-effort; the store remains the source of truth.
type BadgeCache interface {
	BadgeInvalidator
	Get(ctx context.Context, userID string) (int64, bool, error)
	Set(ctx context.Context, userID string, count int64) error
}

// NotificationService serves the owner-scoped notification endpoints. Every
// query carries the caller's user id, so another user's notification is
// indistinguishable from a missing one (404, not 403).
type NotificationService struct {
	notifications ports.NotificationRepository
	tasks         ports.TaskRepository
	badges        BadgeCache
	logger        zerolog.Logger
}

func NewNotificationService(notifications ports.NotificationRepository, tasks ports.TaskRepository, badges BadgeCache, logger zerolog.Logger) *NotificationService {
	return &NotificationService{notifications: notifications, tasks: tasks, badges: badges, logger: logger}
}

// List returns the caller's notifications, newest first, with the referenced
// task populated. A task deleted after the notification was written yields a
// nil task, not an error.
func (s *NotificationService) List(ctx context.Context, identity domain.Identity) ([]*ports.NotificationDetail, error) {
	notifications, err := s.notifications.FindByUser(ctx, identity.UserID)
	if err != nil {
		return nil, err
	}

	out := make([]*ports.NotificationDetail, 0, len(notifications))
	for _, n := range notifications {
		detail := &ports.NotificationDetail{
			ID:        n.ID,
			Message:   n.Message,
			Seen:      n.Seen,
			CreatedAt: n.CreatedAt,
		}
		if n.TaskID != "" {
			if task, err := s.tasks.FindByID(ctx, n.TaskID); err == nil {
				detail.Task = ports.NewTaskRef(task)
			}
		}
		out = append(out, detail)
	}
	return out, nil
}

// UnseenCount returns the badge number, served from the cache when warm.
func (s *NotificationService) UnseenCount(ctx context.Context, identity domain.Identity) (int64, error) {
	if s.badges != nil {
		if count, ok, err := s.badges.Get(ctx, identity.UserID); err == nil && ok {
			return count, nil
		}
	}

	count, err := s.notifications.CountUnseen(ctx, identity.UserID)
	if err != nil {
		return 0, err
	}

	if s.badges != nil {
		if err := s.badges.Set(ctx, identity.UserID, count); err != nil {
			s.logger.Warn().Err(err).Str("user_id", identity.UserID).Msg("failed to warm badge cache")
		}
	}
	return count, nil
}

// MarkSeen flips a single notification to seen. Idempotent: re-marking an
// already-seen notification succeeds with the same state.
func (s *NotificationService) MarkSeen(ctx context.Context, identity domain.Identity, id string) (*domain.Notification, error) {
	notification, err := s.notifications.MarkSeen(ctx, id, identity.UserID)
	if err != nil {
		return nil, err
	}
	s.invalidateBadge(ctx, identity.UserID)
	return notification, nil
}

// MarkAllSeen flips every unseen notification of the caller.
func (s *NotificationService) MarkAllSeen(ctx context.Context, identity domain.Identity) error {
	if err := s.notifications.MarkAllSeen(ctx, identity.UserID); err != nil {
		return err
	}
	s.invalidateBadge(ctx, identity.UserID)
	return nil
}

func (s *NotificationService) invalidateBadge(ctx context.Context, userID string) {
	if s.badges == nil {
		return
	}
	if err := s.badges.Invalidate(ctx, userID); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("failed to invalidate badge cache")
	}
}
