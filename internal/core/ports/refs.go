package ports

import (
	"time"

	"github.com/loopcrm/crm-backend/internal/core/domain"
)

// Reference views returned by populated reads. Each carries only the fields
// the original list screens render, not the whole referenced document.

// UserRef is the populated view of an assigned user.
type UserRef struct {
	ID    string
	Name  string
	Email string
	Role  domain.Role
}

// CustomerRef is the populated view of a referenced customer.
type CustomerRef struct {
	ID      string
	Name    string
	Email   string
	Company string
}

// TaskRef is the populated view of a referenced task. Nil when the task was
// deleted after the reference was written (dangling pointers are tolerated).
type TaskRef struct {
	ID      string
	Title   string
	DueDate *time.Time
	Status  domain.TaskStatus
}

// NewUserRef builds a UserRef from a user, or nil.
func NewUserRef(u *domain.User) *UserRef {
	if u == nil {
		return nil
	}
	return &UserRef{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

// NewCustomerRef builds a CustomerRef from a customer, or nil.
func NewCustomerRef(c *domain.Customer) *CustomerRef {
	if c == nil {
		return nil
	}
	return &CustomerRef{ID: c.ID, Name: c.Name, Email: c.Email, Company: c.Company}
}

// NewTaskRef builds a TaskRef from a task, or nil.
func NewTaskRef(t *domain.Task) *TaskRef {
	if t == nil {
		return nil
	}
	return &TaskRef{ID: t.ID, Title: t.Title, DueDate: t.DueDate, Status: t.Status}
}
