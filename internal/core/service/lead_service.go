package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/loopcrm/crm-backend/internal/core/domain"
	"github.com/loopcrm/crm-backend/internal/core/ports"
)

// LeadService implements lead CRUD. Leads accept an assigned_rep without the
// role check applied to customers; the asymmetry matches observed behavior
// and is deliberately preserved.
type LeadService struct {
	leads     ports.LeadRepository
	users     ports.UserRepository
	customers ports.CustomerRepository
	logger    zerolog.Logger
}

func NewLeadService(leads ports.LeadRepository, users ports.UserRepository, customers ports.CustomerRepository, logger zerolog.Logger) *LeadService {
	return &LeadService{leads: leads, users: users, customers: customers, logger: logger}
}

func (s *LeadService) Create(ctx context.Context, input ports.CreateLeadInput) (*domain.Lead, error) {
	source := input.Source
	if source == "" {
		source = domain.SourceOther
	}
	status := input.Status
	if status == "" {
		status = domain.LeadNew
	}

	now := time.Now().UTC()
	lead := &domain.Lead{
		Name: input.Name,
		ContactInfo: domain.ContactInfo{
			Email: input.ContactEmail,
			Phone: input.ContactPhone,
		},
		Source:      source,
		Status:      status,
		AssignedRep: input.AssignedRep,
		CustomerID:  input.CustomerID,
		Notes:       input.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.leads.Insert(ctx, lead)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("lead_id", created.ID).Str("source", string(created.Source)).Msg("lead created")
	return created, nil
}

func (s *LeadService) Update(ctx context.Context, id string, fields ports.UpdateLeadFields) (*domain.Lead, error) {
	return s.leads.UpdateByID(ctx, id, fields)
}

func (s *LeadService) Delete(ctx context.Context, id string) error {
	if err := s.leads.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("lead_id", id).Msg("lead deleted")
	return nil
}

func (s *LeadService) Get(ctx context.Context, id string) (*domain.Lead, error) {
	return s.leads.FindByID(ctx, id)
}

// List returns all leads with assigned rep and customer populated.
func (s *LeadService) List(ctx context.Context) ([]*ports.LeadDetail, error) {
	leads, err := s.leads.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	repIDs := make([]string, 0, len(leads))
	customerIDs := make([]string, 0, len(leads))
	for _, l := range leads {
		if l.AssignedRep != "" {
			repIDs = append(repIDs, l.AssignedRep)
		}
		if l.CustomerID != "" {
			customerIDs = append(customerIDs, l.CustomerID)
		}
	}

	reps, err := s.users.FindByIDs(ctx, repIDs)
	if err != nil {
		return nil, err
	}
	customers, err := s.customers.FindByIDs(ctx, customerIDs)
	if err != nil {
		return nil, err
	}

	out := make([]*ports.LeadDetail, 0, len(leads))
	for _, l := range leads {
		out = append(out, &ports.LeadDetail{
			ID:          l.ID,
			Name:        l.Name,
			ContactInfo: l.ContactInfo,
			Source:      l.Source,
			Status:      l.Status,
			AssignedRep: ports.NewUserRef(reps[l.AssignedRep]),
			Customer:    ports.NewCustomerRef(customers[l.CustomerID]),
			Notes:       l.Notes,
			CreatedAt:   l.CreatedAt,
			UpdatedAt:   l.UpdatedAt,
		})
	}
	return out, nil
}
