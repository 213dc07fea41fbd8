package ports

import (
	"context"
	"time"

	"github.com/loopcrm/crm-backend/internal/core/domain"
)

// CreateTaskInput carries the fields accepted on task creation. Status and
// Priority fall back to Pending/Medium when empty.
type CreateTaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	Status      domain.TaskStatus
	Priority    domain.TaskPriority
	AssignedTo  string
	CustomerID  string
}

// TaskDetail is a task with its assignee and customer populated.
type TaskDetail struct {
	ID          string
	Title       string
	Description string
	DueDate     *time.Time
	Status      domain.TaskStatus
	Priority    domain.TaskPriority
	AssignedTo  *UserRef
	Customer    *CustomerRef
	SeenByUser  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskService defines use-case operations for tasks. Create, Update and
// Delete emit a notification to the assignee after the write commits; the
// emission is best-effort and never fails the primary operation.
type TaskService interface {
	List(ctx context.Context) ([]*TaskDetail, error)
	Get(ctx context.Context, id string) (*domain.Task, error)
	Create(ctx context.Context, input CreateTaskInput) (*domain.Task, error)
	Update(ctx context.Context, id string, fields UpdateTaskFields) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
	// Unseen returns the caller's unacknowledged tasks.
	Unseen(ctx context.Context, identity domain.Identity) ([]*domain.Task, error)
	// MarkSeen acknowledges a task; only the assignee can do this.
	MarkSeen(ctx context.Context, identity domain.Identity, id string) (*domain.Task, error)
}
