package handler

import (
	"time"

	"github.com/loopcrm/crm-backend/internal/core/domain"
	"github.com/loopcrm/crm-backend/internal/core/ports"
)

type createSaleRequest struct {
	CustomerID  string    `json:"customer_id"  validate:"required"`
	Amount      float64   `json:"amount"       validate:"required,gt=0"`
	Status      string    `json:"status"       validate:"omitempty,oneof=Prospecting Negotiation Closed-Won Closed-Lost"`
	Date        time.Time `json:"date"         validate:"required"`
	AssignedRep string    `json:"assigned_rep"`
}

// updateSaleRequest accepts the full field set from any caller; the policy
// projection in the service decides what survives for the caller's role.
type updateSaleRequest struct {
	CustomerID  *string    `json:"customer_id"`
	Amount      *float64   `json:"amount"       validate:"omitempty,gt=0"`
	Status      *string    `json:"status"       validate:"omitempty,oneof=Prospecting Negotiation Closed-Won Closed-Lost"`
	Date        *time.Time `json:"date"`
	AssignedRep *string    `json:"assigned_rep"`
}

type saleResponse struct {
	ID          string               `json:"id"`
	Customer    *customerRefResponse `json:"customer,omitempty"`
	Amount      float64              `json:"amount"`
	Status      domain.SaleStatus    `json:"status"`
	Date        time.Time            `json:"date"`
	AssignedRep *repRefResponse      `json:"assigned_rep,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

func toSaleResponse(d *ports.SaleDetail) saleResponse {
	return saleResponse{
		ID:          d.ID,
		Customer:    toCustomerRefResponse(d.Customer),
		Amount:      d.Amount,
		Status:      d.Status,
		Date:        d.Date,
		AssignedRep: toRepRefResponse(d.AssignedRep),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r createSaleRequest) toInput() ports.CreateSaleInput {
	return ports.CreateSaleInput{
		CustomerID:  r.CustomerID,
		Amount:      r.Amount,
		Status:      domain.SaleStatus(r.Status),
		Date:        r.Date,
		AssignedRep: r.AssignedRep,
	}
}

func (r updateSaleRequest) toFields() ports.UpdateSaleFields {
	fields := ports.UpdateSaleFields{
		CustomerID:  r.CustomerID,
		Amount:      r.Amount,
		Date:        r.Date,
		AssignedRep: r.AssignedRep,
	}
	if r.Status != nil {
		status := domain.SaleStatus(*r.Status)
		fields.Status = &status
	}
	return fields
}
