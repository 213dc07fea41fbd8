package ports

import (
	"context"

	"github.com/loopcrm/crm-backend/internal/core/domain"
)

// AuthService issues identity: it is the only component that creates users
// and signs tokens.
type AuthService interface {
	// Register creates a user and returns a signed token plus the created
	// user. An empty role defaults to sales.
	Register(ctx context.Context, name, email, password string, role domain.Role) (string, *domain.User, error)
	// Login verifies credentials and returns a signed token plus the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// UserService serves the profile endpoints.
type UserService interface {
	Me(ctx context.Context, identity domain.Identity) (*domain.User, error)
	SalesReps(ctx context.Context) ([]*UserRef, error)
}
