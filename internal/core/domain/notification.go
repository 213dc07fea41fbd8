package domain

import (
	"errors"
	"time"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Notification is created only as a side effect of task mutations, never
// through a public endpoint. TaskID may dangle after the task is deleted;
// readers must treat the reference as best-effort.
type Notification struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Message   string    `json:"message" bson:"message"`
	TaskID    string    `json:"task_id,omitempty" bson:"task_id,omitempty"`
	Seen      bool      `json:"seen" bson:"seen"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
