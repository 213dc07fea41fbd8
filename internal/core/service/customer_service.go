package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/loopcrm/crm-backend/internal/core/domain"
	"github.com/loopcrm/crm-backend/internal/core/ports"
)

// CustomerService implements customer CRUD with the assigned-rep reference
// integrity check in front of every write that touches the reference.
type CustomerService struct {
	customers ports.CustomerRepository
	users     ports.UserRepository
	logger    zerolog.Logger
}

func NewCustomerService(customers ports.CustomerRepository, users ports.UserRepository, logger zerolog.Logger) *CustomerService {
	return &CustomerService{customers: customers, users: users, logger: logger}
}

// checkAssignedRep validates that the reference resolves to an existing user
// with the sales role. It must pass before any persistence mutation.
func (s *CustomerService) checkAssignedRep(ctx context.Context, repID string) error {
	rep, err := s.users.FindByID(ctx, repID)
	if err != nil || rep.Role != domain.RoleSales {
		return domain.ErrInvalidAssignedRep
	}
	return nil
}

func (s *CustomerService) Create(ctx context.Context, input ports.CreateCustomerInput) (*domain.Customer, error) {
	if input.AssignedRep != "" {
		if err := s.checkAssignedRep(ctx, input.AssignedRep); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	customer := &domain.Customer{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Company:     input.Company,
		Address:     input.Address,
		AssignedRep: input.AssignedRep,
		Notes:       input.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.customers.Insert(ctx, customer)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("customer_id", created.ID).Str("assigned_rep", created.AssignedRep).Msg("customer created")
	return created, nil
}

func (s *CustomerService) Update(ctx context.Context, id string, fields ports.UpdateCustomerFields) (*domain.Customer, error) {
	if fields.AssignedRep != nil && *fields.AssignedRep != "" {
		if err := s.checkAssignedRep(ctx, *fields.AssignedRep); err != nil {
			return nil, err
		}
	}
	return s.customers.UpdateByID(ctx, id, fields)
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	if err := s.customers.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("customer_id", id).Msg("customer deleted")
	return nil
}

func (s *CustomerService) Get(ctx context.Context, id string) (*ports.CustomerDetail, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := toCustomerDetail(customer, nil)
	if customer.AssignedRep != "" {
		if rep, err := s.users.FindByID(ctx, customer.AssignedRep); err == nil {
			detail.AssignedRep = ports.NewUserRef(rep)
		}
	}
	return detail, nil
}

// List returns all customers newest-first with assigned reps populated in a
// single batched lookup.
func (s *CustomerService) List(ctx context.Context) ([]*ports.CustomerDetail, error) {
	customers, err := s.customers.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	repIDs := make([]string, 0, len(customers))
	for _, c := range customers {
		if c.AssignedRep != "" {
			repIDs = append(repIDs, c.AssignedRep)
		}
	}
	reps, err := s.users.FindByIDs(ctx, repIDs)
	if err != nil {
		return nil, err
	}

	out := make([]*ports.CustomerDetail, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerDetail(c, ports.NewUserRef(reps[c.AssignedRep])))
	}
	return out, nil
}

func toCustomerDetail(c *domain.Customer, rep *ports.UserRef) *ports.CustomerDetail {
	return &ports.CustomerDetail{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Company:     c.Company,
		Address:     c.Address,
		AssignedRep: rep,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
