package policy

import (
	"testing"
	"time"

	"github.com/loopcrm/crm-backend/internal/core/domain"
	"github.com/loopcrm/crm-backend/internal/core/ports"
)

func TestAllows_Table(t *testing.T) {
	cases := []struct {
		role   domain.Role
		entity Entity
		action Action
		want   bool
	}{
		{domain.RoleAdmin, EntityCustomer, ActionCreate, true},
		{domain.RoleSales, EntityCustomer, ActionCreate, false},
		{domain.RoleSales, EntityCustomer, ActionUpdate, true},
		{domain.RoleSales, EntityCustomer, ActionDelete, false},
		{domain.RoleAdmin, EntityLead, ActionDelete, true},
		{domain.RoleSales, EntityLead, ActionUpdate, true},
		{domain.RoleSales, EntityTask, ActionCreate, false},
		{domain.RoleAdmin, EntityTask, ActionUpdate, true},
		{domain.RoleAdmin, EntitySale, ActionCreate, true},
		{domain.RoleSales, EntitySale, ActionUpdate, true},
		// Sale deletion is not a wired action at all, even for admin.
		{domain.RoleAdmin, EntitySale, ActionDelete, false},
		// Notifications have no role-gated mutations.
		{domain.RoleAdmin, EntityNotification, ActionCreate, false},
		{domain.Role("guest"), EntityCustomer, ActionUpdate, false},
	}

	for _, tc := range cases {
		if got := Allows(tc.role, tc.entity, tc.action); got != tc.want {
			t.Errorf("Allows(%s, %s, %s) = %v, want %v", tc.role, tc.entity, tc.action, got, tc.want)
		}
	}
}

func TestMutationRoles_MatchesAllows(t *testing.T) {
	roles := MutationRoles(EntityCustomer, ActionUpdate)
	if len(roles) != 2 {
		t.Fatalf("expected 2 roles, got %v", roles)
	}
	for _, r := range roles {
		if !Allows(r, EntityCustomer, ActionUpdate) {
			t.Errorf("role %s listed but not allowed", r)
		}
	}
}

func TestProjectSaleUpdate_SalesKeepsOnlyStatus(t *testing.T) {
	amount := 999999.0
	status := domain.SaleClosedWon
	date := time.Now()
	rep := "rep-1"
	customer := "cust-1"

	in := ports.UpdateSaleFields{
		CustomerID:  &customer,
		Amount:      &amount,
		Status:      &status,
		Date:        &date,
		AssignedRep: &rep,
	}

	out := ProjectSaleUpdate(domain.RoleSales, in)
	if out.Status == nil || *out.Status != domain.SaleClosedWon {
		t.Fatalf("status not preserved: %+v", out)
	}
	if out.Amount != nil || out.Date != nil || out.AssignedRep != nil || out.CustomerID != nil {
		t.Fatalf("expected all non-status fields discarded, got %+v", out)
	}
}

func TestProjectSaleUpdate_SalesWithoutStatus(t *testing.T) {
	amount := 5.0
	out := ProjectSaleUpdate(domain.RoleSales, ports.UpdateSaleFields{Amount: &amount})
	if out.Status != nil || out.Amount != nil {
		t.Fatalf("expected empty projection, got %+v", out)
	}
}

func TestProjectSaleUpdate_AdminPassthrough(t *testing.T) {
	amount := 100.0
	status := domain.SaleNegotiation
	in := ports.UpdateSaleFields{Amount: &amount, Status: &status}

	out := ProjectSaleUpdate(domain.RoleAdmin, in)
	if out.Amount == nil || *out.Amount != 100.0 {
		t.Fatalf("admin amount dropped: %+v", out)
	}
	if out.Status == nil || *out.Status != domain.SaleNegotiation {
		t.Fatalf("admin status dropped: %+v", out)
	}
}
