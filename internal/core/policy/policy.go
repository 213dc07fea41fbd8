// Package policy is the single source of truth for which roles may mutate
// which entities, and for role-scoped narrowing of update payloads. Route
// middleware consumes Allows; services consume the projections. Everything
// here is a pure function of (identity, entity, action) so the rules can be
// tested without a server or a store.
package policy

import "github.com/loopcrm/crm-backend/internal/core/domain"

// Entity names a protected resource type.
type Entity string

const (
	EntityCustomer     Entity = "customer"
	EntityLead         Entity = "lead"
	EntityTask         Entity = "task"
	EntitySale         Entity = "sale"
	EntityNotification Entity = "notification"
)

// Action is a mutation class checked against the role table.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// mutationRoles mirrors the route wiring: creation and deletion are admin
// only, updates are open to admin and sales. Reads are gated solely by
// authentication and are not listed here. Sale has no delete action;
// notifications are mutated only by their owner through dedicated endpoints.
var mutationRoles = map[Entity]map[Action][]domain.Role{
	EntityCustomer: {
		ActionCreate: {domain.RoleAdmin},
		ActionUpdate: {domain.RoleAdmin, domain.RoleSales},
		ActionDelete: {domain.RoleAdmin},
	},
	EntityLead: {
		ActionCreate: {domain.RoleAdmin},
		ActionUpdate: {domain.RoleAdmin, domain.RoleSales},
		ActionDelete: {domain.RoleAdmin},
	},
	EntityTask: {
		ActionCreate: {domain.RoleAdmin},
		ActionUpdate: {domain.RoleAdmin, domain.RoleSales},
		ActionDelete: {domain.RoleAdmin},
	},
	EntitySale: {
		ActionCreate: {domain.RoleAdmin},
		ActionUpdate: {domain.RoleAdmin, domain.RoleSales},
	},
}

// Allows reports whether role may perform action on entity. Unknown
// entity/action pairs deny.
func Allows(role domain.Role, entity Entity, action Action) bool {
	actions, ok := mutationRoles[entity]
	if !ok {
		return false
	}
	for _, r := range actions[action] {
		if r == role {
			return true
		}
	}
	return false
}

// MutationRoles returns the allow-list for an entity/action pair, in the
// order routes declare them. Used by the router to parameterize role gates.
func MutationRoles(entity Entity, action Action) []domain.Role {
	return mutationRoles[entity][action]
}
