package ports

import (
	"context"
	"time"

	"github.com/loopcrm/crm-backend/internal/core/domain"
)

// UpdateSaleFields carries the optional fields of a sale update; nil means
// "leave unchanged". The sales-role projection reduces this to Status only
// before it ever reaches the repository.
type UpdateSaleFields struct {
	CustomerID  *string
	Amount      *float64
	Status      *domain.SaleStatus
	Date        *time.Time
	AssignedRep *string
}

// SaleRepository defines persistence for sales. There is no delete — the
// API does not expose one.
type SaleRepository interface {
	Insert(ctx context.Context, s *domain.Sale) (*domain.Sale, error)
	FindByID(ctx context.Context, id string) (*domain.Sale, error)
	// FindAll returns all sales sorted by created_at descending.
	FindAll(ctx context.Context) ([]*domain.Sale, error)
	UpdateByID(ctx context.Context, id string, fields UpdateSaleFields) (*domain.Sale, error)
}
