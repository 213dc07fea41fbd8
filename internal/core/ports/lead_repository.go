package ports

import (
	"context"

	"github.com/loopcrm/crm-backend/internal/core/domain"
)

// UpdateLeadFields carries the optional fields of a lead update; nil means
// "leave unchanged".
type UpdateLeadFields struct {
	Name         *string
	ContactEmail *string
	ContactPhone *string
	Source       *domain.LeadSource
	Status       *domain.LeadStatus
	AssignedRep  *string
	CustomerID   *string
	Notes        *string
}

// LeadRepository defines persistence for leads.
type LeadRepository interface {
	Insert(ctx context.Context, l *domain.Lead) (*domain.Lead, error)
	FindByID(ctx context.Context, id string) (*domain.Lead, error)
	// FindAll returns all leads sorted by created_at descending.
	FindAll(ctx context.Context) ([]*domain.Lead, error)
	UpdateByID(ctx context.Context, id string, fields UpdateLeadFields) (*domain.Lead, error)
	DeleteByID(ctx context.Context, id string) error
}
