package ports

import (
	"context"

	"github.com/loopcrm/crm-backend/internal/core/domain"
)

// UserRepository defines persistence for users. Users are created at
// registration and never deleted through the API.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByIDs returns the users for the given ids, keyed by id. Missing ids
	// are simply absent from the map (used for reference population).
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.User, error)
	// FindSalesReps returns all users with the sales role.
	FindSalesReps(ctx context.Context) ([]*domain.User, error)
}
