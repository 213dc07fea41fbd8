package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/loopcrm/crm-backend/internal/core/domain"
	"github.com/loopcrm/crm-backend/internal/core/policy"
	"github.com/loopcrm/crm-backend/internal/core/ports"
)

// SaleService implements sale operations. Updates pass through the policy
// projection first, so a sales-role caller can only ever move Status no
// matter what the request body carried.
type SaleService struct {
	sales     ports.SaleRepository
	customers ports.CustomerRepository
	users     ports.UserRepository
	logger    zerolog.Logger
}

func NewSaleService(sales ports.SaleRepository, customers ports.CustomerRepository, users ports.UserRepository, logger zerolog.Logger) *SaleService {
	return &SaleService{sales: sales, customers: customers, users: users, logger: logger}
}

func (s *SaleService) Create(ctx context.Context, input ports.CreateSaleInput) (*domain.Sale, error) {
	status := input.Status
	if status == "" {
		status = domain.SaleProspecting
	}

	now := time.Now().UTC()
	sale := &domain.Sale{
		CustomerID:  input.CustomerID,
		Amount:      input.Amount,
		Status:      status,
		Date:        input.Date,
		AssignedRep: input.AssignedRep,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.sales.Insert(ctx, sale)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("sale_id", created.ID).Str("customer_id", created.CustomerID).Msg("sale created")
	return created, nil
}

func (s *SaleService) Update(ctx context.Context, identity domain.Identity, id string, fields ports.UpdateSaleFields) (*ports.SaleDetail, error) {
	projected := policy.ProjectSaleUpdate(identity.Role, fields)

	updated, err := s.sales.UpdateByID(ctx, id, projected)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("sale_id", id).
		Str("role", string(identity.Role)).
		Str("status", string(updated.Status)).
		Msg("sale updated")
	return s.populate(ctx, updated)
}

func (s *SaleService) Get(ctx context.Context, id string) (*ports.SaleDetail, error) {
	sale, err := s.sales.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.populate(ctx, sale)
}

// List returns all sales with customer and assigned rep populated.
func (s *SaleService) List(ctx context.Context) ([]*ports.SaleDetail, error) {
	sales, err := s.sales.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	customerIDs := make([]string, 0, len(sales))
	repIDs := make([]string, 0, len(sales))
	for _, sl := range sales {
		if sl.CustomerID != "" {
			customerIDs = append(customerIDs, sl.CustomerID)
		}
		if sl.AssignedRep != "" {
			repIDs = append(repIDs, sl.AssignedRep)
		}
	}

	customers, err := s.customers.FindByIDs(ctx, customerIDs)
	if err != nil {
		return nil, err
	}
	reps, err := s.users.FindByIDs(ctx, repIDs)
	if err != nil {
		return nil, err
	}

	out := make([]*ports.SaleDetail, 0, len(sales))
	for _, sl := range sales {
		out = append(out, toSaleDetail(sl, ports.NewCustomerRef(customers[sl.CustomerID]), ports.NewUserRef(reps[sl.AssignedRep])))
	}
	return out, nil
}

func (s *SaleService) populate(ctx context.Context, sale *domain.Sale) (*ports.SaleDetail, error) {
	var customer *ports.CustomerRef
	if sale.CustomerID != "" {
		if c, err := s.customers.FindByID(ctx, sale.CustomerID); err == nil {
			customer = ports.NewCustomerRef(c)
		}
	}
	var rep *ports.UserRef
	if sale.AssignedRep != "" {
		if u, err := s.users.FindByID(ctx, sale.AssignedRep); err == nil {
			rep = ports.NewUserRef(u)
		}
	}
	return toSaleDetail(sale, customer, rep), nil
}

func toSaleDetail(s *domain.Sale, customer *ports.CustomerRef, rep *ports.UserRef) *ports.SaleDetail {
	return &ports.SaleDetail{
		ID:          s.ID,
		Customer:    customer,
		Amount:      s.Amount,
		Status:      s.Status,
		Date:        s.Date,
		AssignedRep: rep,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
