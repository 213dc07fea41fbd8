package service

import (
	"context"

	"github.com/loopcrm/crm-backend/internal/core/domain"
	"github.com/loopcrm/crm-backend/internal/core/ports"
)

// UserService serves the profile endpoints.
type UserService struct {
	users ports.UserRepository
}

func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

// Me returns the caller's own user record.
func (s *UserService) Me(ctx context.Context, identity domain.Identity) (*domain.User, error) {
	return s.users.FindByID(ctx, identity.UserID)
}

// SalesReps lists all users with the sales role, trimmed to id/name/email.
func (s *UserService) SalesReps(ctx context.Context) ([]*ports.UserRef, error) {
	reps, err := s.users.FindSalesReps(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*ports.UserRef, 0, len(reps))
	for _, u := range reps {
		out = append(out, ports.NewUserRef(u))
	}
	return out, nil
}
