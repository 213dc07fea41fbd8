package policy

import (
	"github.com/loopcrm/crm-backend/internal/core/domain"
	"github.com/loopcrm/crm-backend/internal/core/ports"
)

// ProjectSaleUpdate narrows a sale update to the fields the role is allowed
// to write. Admin passes through untouched; sales keeps only Status — every
// other submitted field is discarded before the update document is built.
// Client-side form disabling is advisory; this is the enforcement point.
func ProjectSaleUpdate(role domain.Role, fields ports.UpdateSaleFields) ports.UpdateSaleFields {
	if role == domain.RoleAdmin {
		return fields
	}
	return ports.UpdateSaleFields{Status: fields.Status}
}
