package ports

import (
	"context"
	"time"

	"github.com/loopcrm/crm-backend/internal/core/domain"
)

// CreateCustomerInput carries the fields accepted on customer creation.
type CreateCustomerInput struct {
	Name        string
	Email       string
	Phone       string
	Company     string
	Address     string
	AssignedRep string
	Notes       string
}

// CustomerDetail is a customer with its assigned rep populated.
type CustomerDetail struct {
	ID          string
	Name        string
	Email       string
	Phone       string
	Company     string
	Address     string
	AssignedRep *UserRef
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CustomerService defines use-case operations for customers. Create and
// Update run the assigned-rep reference check before any write.
type CustomerService interface {
	List(ctx context.Context) ([]*CustomerDetail, error)
	Get(ctx context.Context, id string) (*CustomerDetail, error)
	Create(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error)
	Update(ctx context.Context, id string, fields UpdateCustomerFields) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error
}
