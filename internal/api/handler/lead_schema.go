package handler

import (
	"time"

	"github.com/loopcrm/crm-backend/internal/core/domain"
	"github.com/loopcrm/crm-backend/internal/core/ports"
)

type contactInfoRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
}

type createLeadRequest struct {
	Name        string             `json:"name"         validate:"required"`
	ContactInfo contactInfoRequest `json:"contact_info"`
	Source      string             `json:"source"       validate:"omitempty,oneof=Referral Ads Web Other"`
	Status      string             `json:"status"       validate:"omitempty,oneof=New Contacted Qualified Lost"`
	AssignedRep string             `json:"assigned_rep"`
	CustomerID  string             `json:"customer_id"`
	Notes       string             `json:"notes"`
}

type updateLeadRequest struct {
	Name         *string `json:"name"          validate:"omitempty,min=1"`
	ContactEmail *string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone *string `json:"contact_phone"`
	Source       *string `json:"source"        validate:"omitempty,oneof=Referral Ads Web Other"`
	Status       *string `json:"status"        validate:"omitempty,oneof=New Contacted Qualified Lost"`
	AssignedRep  *string `json:"assigned_rep"`
	CustomerID   *string `json:"customer_id"`
	Notes        *string `json:"notes"`
}

type leadResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	ContactInfo domain.ContactInfo   `json:"contact_info"`
	Source      domain.LeadSource    `json:"source"`
	Status      domain.LeadStatus    `json:"status"`
	AssignedRep *repRefResponse      `json:"assigned_rep,omitempty"`
	Customer    *customerRefResponse `json:"customer,omitempty"`
	Notes       string               `json:"notes,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

func toLeadResponse(d *ports.LeadDetail) leadResponse {
	return leadResponse{
		ID:          d.ID,
		Name:        d.Name,
		ContactInfo: d.ContactInfo,
		Source:      d.Source,
		Status:      d.Status,
		AssignedRep: toRepRefResponse(d.AssignedRep),
		Customer:    toCustomerRefResponse(d.Customer),
		Notes:       d.Notes,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r createLeadRequest) toInput() ports.CreateLeadInput {
	return ports.CreateLeadInput{
		Name:         r.Name,
		ContactEmail: r.ContactInfo.Email,
		ContactPhone: r.ContactInfo.Phone,
		Source:       domain.LeadSource(r.Source),
		Status:       domain.LeadStatus(r.Status),
		AssignedRep:  r.AssignedRep,
		CustomerID:   r.CustomerID,
		Notes:        r.Notes,
	}
}

func (r updateLeadRequest) toFields() ports.UpdateLeadFields {
	fields := ports.UpdateLeadFields{
		Name:         r.Name,
		ContactEmail: r.ContactEmail,
		ContactPhone: r.ContactPhone,
		AssignedRep:  r.AssignedRep,
		CustomerID:   r.CustomerID,
		Notes:        r.Notes,
	}
	if r.Source != nil {
		source := domain.LeadSource(*r.Source)
		fields.Source = &source
	}
	if r.Status != nil {
		status := domain.LeadStatus(*r.Status)
		fields.Status = &status
	}
	return fields
}
