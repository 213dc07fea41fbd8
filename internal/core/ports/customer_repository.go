package ports

import (
	"context"

	"github.com/loopcrm/crm-backend/internal/core/domain"
)

// UpdateCustomerFields carries the optional fields of a customer update.
// Nil pointers mean "leave unchanged"; the repository builds a partial
// update document from the non-nil fields only.
type UpdateCustomerFields struct {
	Name        *string
	Email       *string
	Phone       *string
	Company     *string
	Address     *string
	AssignedRep *string
	Notes       *string
}

// CustomerRepository defines persistence for customers.
type CustomerRepository interface {
	Insert(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	// FindByIDs returns customers keyed by id; missing ids are absent.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Customer, error)
	// FindAll returns all customers sorted by created_at descending.
	FindAll(ctx context.Context) ([]*domain.Customer, error)
	UpdateByID(ctx context.Context, id string, fields UpdateCustomerFields) (*domain.Customer, error)
	DeleteByID(ctx context.Context, id string) error
}
