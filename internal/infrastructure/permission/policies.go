package permission

import (
	"fmt"

	"github.com/lumen-edu/lumen/internal/shared/authorization"
)

// defaultPolicies grants learners their own cart, library and purchase history and
// gives admins write access to the catalog, offers and access grants.
var defaultPolicies = [][]string{
	{string(authorization.RoleLearner), authorization.ResourceCatalog, authorization.ActionRead},
	{string(authorization.RoleLearner), authorization.ResourceCart, "*"},
	{string(authorization.RoleLearner), authorization.ResourceLibrary, authorization.ActionRead},
	{string(authorization.RoleLearner), authorization.ResourcePurchase, "*"},

	{string(authorization.RoleAdmin), authorization.ResourceCatalog, "*"},
	{string(authorization.RoleAdmin), authorization.ResourceOffer, "*"},
	{string(authorization.RoleAdmin), authorization.ResourceAccess, "*"},
}

// InitDefaultPolicies inserts the default policies that are missing. Admins inherit
// every learner permission.
func (e *Enforcer) InitDefaultPolicies() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	added := 0
	for _, policy := range defaultPolicies {
		ok, err := e.enforcer.AddPolicy(policy[0], policy[1], policy[2])
		if err != nil {
			e.logger.Errorw("failed to add permission policy",
				"error", err,
				"role", policy[0],
				"resource", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
		if ok {
			added++
		}
	}

	if _, err := e.enforcer.AddGroupingPolicy(string(authorization.RoleAdmin), string(authorization.RoleLearner)); err != nil {
		return fmt.Errorf("failed to add admin role inheritance: %w", err)
	}

	e.logger.Infow("default permissions initialized", "added", added)
	return nil
}
