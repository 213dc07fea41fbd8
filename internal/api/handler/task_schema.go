package handler

import (
	"time"

	"github.com/loopcrm/crm-backend/internal/core/domain"
	"github.com/loopcrm/crm-backend/internal/core/ports"
)

type createTaskRequest struct {
	Title       string     `json:"title"       validate:"required"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Status      string     `json:"status"      validate:"omitempty,oneof=Pending 'In Progress' Completed"`
	Priority    string     `json:"priority"    validate:"omitempty,oneof=Low Medium High"`
	AssignedTo  string     `json:"assigned_to"`
	CustomerID  string     `json:"customer_id"`
}

type updateTaskRequest struct {
	Title       *string    `json:"title"       validate:"omitempty,min=1"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	Status      *string    `json:"status"      validate:"omitempty,oneof=Pending 'In Progress' Completed"`
	Priority    *string    `json:"priority"    validate:"omitempty,oneof=Low Medium High"`
	AssignedTo  *string    `json:"assigned_to"`
	CustomerID  *string    `json:"customer_id"`
}

type taskResponse struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	DueDate     *time.Time           `json:"due_date,omitempty"`
	Status      domain.TaskStatus    `json:"status"`
	Priority    domain.TaskPriority  `json:"priority"`
	AssignedTo  *repRefResponse      `json:"assigned_to,omitempty"`
	Customer    *customerRefResponse `json:"customer,omitempty"`
	SeenByUser  bool                 `json:"seen_by_user"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

func toTaskResponse(d *ports.TaskDetail) taskResponse {
	return taskResponse{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		DueDate:     d.DueDate,
		Status:      d.Status,
		Priority:    d.Priority,
		AssignedTo:  toRepRefResponse(d.AssignedTo),
		Customer:    toCustomerRefResponse(d.Customer),
		SeenByUser:  d.SeenByUser,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r createTaskRequest) toInput() ports.CreateTaskInput {
	return ports.CreateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		Status:      domain.TaskStatus(r.Status),
		Priority:    domain.TaskPriority(r.Priority),
		AssignedTo:  r.AssignedTo,
		CustomerID:  r.CustomerID,
	}
}

func (r updateTaskRequest) toFields() ports.UpdateTaskFields {
	fields := ports.UpdateTaskFields{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		AssignedTo:  r.AssignedTo,
		CustomerID:  r.CustomerID,
	}
	if r.Status != nil {
		status := domain.TaskStatus(*r.Status)
		fields.Status = &status
	}
	if r.Priority != nil {
		priority := domain.TaskPriority(*r.Priority)
		fields.Priority = &priority
	}
	return fields
}
