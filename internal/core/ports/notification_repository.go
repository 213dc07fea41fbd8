package ports

import (
	"context"

	"github.com/loopcrm/crm-backend/internal/core/domain"
)

// NotificationRepository defines persistence for notifications. Inserts come
// only from the emitter; every read and mutation is scoped to the owning
// user so one user can never touch another's notifications.
type NotificationRepository interface {
	Insert(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	// FindByUser returns the user's notifications sorted by created_at
	// descending.
	FindByUser(ctx context.Context, userID string) ([]*domain.Notification, error)
	// MarkSeen sets seen=true on the notification if it belongs to userID;
	// returns ErrNotificationNotFound otherwise. Marking an already-seen
	// notification succeeds unchanged.
	MarkSeen(ctx context.Context, id, userID string) (*domain.Notification, error)
	// MarkAllSeen sets seen=true on all of the user's unseen notifications.
	MarkAllSeen(ctx context.Context, userID string) error
	// CountUnseen returns the number of unseen notifications for the user.
	CountUnseen(ctx context.Context, userID string) (int64, error)
}
