package ports

import (
	"context"
	"time"

	"github.com/loopcrm/crm-backend/internal/core/domain"
)

// NotificationDetail is a notification with its task populated. Task is nil
// when the referenced task has been deleted.
type NotificationDetail struct {
	ID        string
	Message   string
	Task      *TaskRef
	Seen      bool
	CreatedAt time.Time
}

// NotificationService serves the owner-scoped notification endpoints.
type NotificationService interface {
	List(ctx context.Context, identity domain.Identity) ([]*NotificationDetail, error)
	UnseenCount(ctx context.Context, identity domain.Identity) (int64, error)
	MarkSeen(ctx context.Context, identity domain.Identity, id string) (*domain.Notification, error)
	MarkAllSeen(ctx context.Context, identity domain.Identity) error
}

// NotificationEmitter produces a notification addressed to a task's assignee
// after the task write has committed. Implementations must swallow their own
// failures: a failed emission is reported, never propagated.
type NotificationEmitter interface {
	TaskCreated(ctx context.Context, task *domain.Task)
	TaskUpdated(ctx context.Context, task *domain.Task)
	TaskDeleted(ctx context.Context, task *domain.Task)
}
