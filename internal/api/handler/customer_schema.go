package handler

import (
	"time"

	"github.com/loopcrm/crm-backend/internal/core/ports"
)

type createCustomerRequest struct {
	Name        string `json:"name"         validate:"required"`
	Email       string `json:"email"        validate:"required,email"`
	Phone       string `json:"phone"        validate:"omitempty"`
	Company     string `json:"company"      validate:"omitempty"`
	Address     string `json:"address"      validate:"omitempty"`
	AssignedRep string `json:"assigned_rep" validate:"omitempty"`
	Notes       string `json:"notes"        validate:"omitempty"`
}

// updateCustomerRequest uses pointers so absent fields are distinguishable
// from empty ones; only submitted fields reach the update document.
type updateCustomerRequest struct {
	Name        *string `json:"name"         validate:"omitempty,min=1"`
	Email       *string `json:"email"        validate:"omitempty,email"`
	Phone       *string `json:"phone"`
	Company     *string `json:"company"`
	Address     *string `json:"address"`
	AssignedRep *string `json:"assigned_rep"`
	Notes       *string `json:"notes"`
}

// repRefResponse is the populated view of an assigned user on list screens.
type repRefResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type customerRefResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
}

type customerResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone,omitempty"`
	Company     string          `json:"company,omitempty"`
	Address     string          `json:"address,omitempty"`
	AssignedRep *repRefResponse `json:"assigned_rep,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func toRepRefResponse(r *ports.UserRef) *repRefResponse {
	if r == nil {
		return nil
	}
	return &repRefResponse{ID: r.ID, Name: r.Name, Email: r.Email, Role: string(r.Role)}
}

func toCustomerRefResponse(r *ports.CustomerRef) *customerRefResponse {
	if r == nil {
		return nil
	}
	return &customerRefResponse{ID: r.ID, Name: r.Name, Email: r.Email, Company: r.Company}
}

func toCustomerResponse(d *ports.CustomerDetail) customerResponse {
	return customerResponse{
		ID:          d.ID,
		Name:        d.Name,
		Email:       d.Email,
		Phone:       d.Phone,
		Company:     d.Company,
		Address:     d.Address,
		AssignedRep: toRepRefResponse(d.AssignedRep),
		Notes:       d.Notes,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r createCustomerRequest) toInput() ports.CreateCustomerInput {
	return ports.CreateCustomerInput{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Company:     r.Company,
		Address:     r.Address,
		AssignedRep: r.AssignedRep,
		Notes:       r.Notes,
	}
}

func (r updateCustomerRequest) toFields() ports.UpdateCustomerFields {
	return ports.UpdateCustomerFields{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Company:     r.Company,
		Address:     r.Address,
		AssignedRep: r.AssignedRep,
		Notes:       r.Notes,
	}
}
