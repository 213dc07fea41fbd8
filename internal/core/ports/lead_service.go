package ports

import (
	"context"
	"time"

	"github.com/loopcrm/crm-backend/internal/core/domain"
)

// CreateLeadInput carries the fields accepted on lead creation. Source and
// Status fall back to Other/New when empty, matching the schema defaults.
type CreateLeadInput struct {
	Name         string
	ContactEmail string
	ContactPhone string
	Source       domain.LeadSource
	Status       domain.LeadStatus
	AssignedRep  string
	CustomerID   string
	Notes        string
}

// LeadDetail is a lead with its assigned rep and customer populated.
type LeadDetail struct {
	ID          string
	Name        string
	ContactInfo domain.ContactInfo
	Source      domain.LeadSource
	Status      domain.LeadStatus
	AssignedRep *UserRef
	Customer    *CustomerRef
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LeadService defines use-case operations for leads.
type LeadService interface {
	List(ctx context.Context) ([]*LeadDetail, error)
	Get(ctx context.Context, id string) (*domain.Lead, error)
	Create(ctx context.Context, input CreateLeadInput) (*domain.Lead, error)
	Update(ctx context.Context, id string, fields UpdateLeadFields) (*domain.Lead, error)
	Delete(ctx context.Context, id string) error
}
