package domain

import (
	"errors"
	"time"
)

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskPending    TaskStatus = "Pending"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
)

// TaskPriority ranks how urgent a task is.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

var ErrTaskNotFound = errors.New("task not found")

// Task is a unit of work, optionally assigned to a user and attached to a
// customer. SeenByUser starts false and is flipped true only by the assignee.
type Task struct {
	ID          string       `json:"id" bson:"_id,omitempty"`
	Title       string       `json:"title" bson:"title"`
	Description string       `json:"description,omitempty" bson:"description,omitempty"`
	DueDate     *time.Time   `json:"due_date,omitempty" bson:"due_date,omitempty"`
	Status      TaskStatus   `json:"status" bson:"status"`
	Priority    TaskPriority `json:"priority" bson:"priority"`
	AssignedTo  string       `json:"assigned_to,omitempty" bson:"assigned_to,omitempty"`
	CustomerID  string       `json:"customer_id,omitempty" bson:"customer_id,omitempty"`
	SeenByUser  bool         `json:"seen_by_user" bson:"seen_by_user"`
	CreatedAt   time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" bson:"updated_at"`
}
