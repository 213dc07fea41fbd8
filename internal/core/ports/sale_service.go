package ports

import (
	"context"
	"time"

	"github.com/loopcrm/crm-backend/internal/core/domain"
)

// CreateSaleInput carries the fields accepted on sale creation. Status falls
// back to Prospecting when empty.
type CreateSaleInput struct {
	CustomerID  string
	Amount      float64
	Status      domain.SaleStatus
	Date        time.Time
	AssignedRep string
}

// SaleDetail is a sale with its customer and assigned rep populated.
type SaleDetail struct {
	ID          string
	Customer    *CustomerRef
	Amount      float64
	Status      domain.SaleStatus
	Date        time.Time
	AssignedRep *UserRef
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SaleService defines use-case operations for sales. Update applies the
// role-scoped projection: a sales identity can only change Status, whatever
// else the payload carried. No delete is exposed.
type SaleService interface {
	List(ctx context.Context) ([]*SaleDetail, error)
	Get(ctx context.Context, id string) (*SaleDetail, error)
	Create(ctx context.Context, input CreateSaleInput) (*domain.Sale, error)
	Update(ctx context.Context, identity domain.Identity, id string, fields UpdateSaleFields) (*SaleDetail, error)
}
