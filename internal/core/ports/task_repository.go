package ports

import (
	"context"
	"time"

	"github.com/loopcrm/crm-backend/internal/core/domain"
)

// UpdateTaskFields carries the optional fields of a task update; nil means
// "leave unchanged". SeenByUser is deliberately absent — the seen flag is
// flipped only through MarkSeen by the assignee.
type UpdateTaskFields struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority
	AssignedTo  *string
	CustomerID  *string
}

// TaskRepository defines persistence for tasks.
type TaskRepository interface {
	Insert(ctx context.Context, t *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	// FindAll returns all tasks sorted by created_at descending.
	FindAll(ctx context.Context) ([]*domain.Task, error)
	// FindUnseenByAssignee returns tasks where assigned_to matches and
	// seen_by_user is false.
	FindUnseenByAssignee(ctx context.Context, userID string) ([]*domain.Task, error)
	UpdateByID(ctx context.Context, id string, fields UpdateTaskFields) (*domain.Task, error)
	// MarkSeen sets seen_by_user=true on the task if it is assigned to
	// userID; returns ErrTaskNotFound when no such task exists.
	MarkSeen(ctx context.Context, id, userID string) (*domain.Task, error)
	DeleteByID(ctx context.Context, id string) (*domain.Task, error)
}
