package permission

import (
	"fmt"

	"issuetracker/internal/domain/user"
	vo "issuetracker/internal/domain/user/valueobjects"
	"issuetracker/internal/shared/errors"
)

// Engine evaluates authorization. It never mutates state and is safe for
// concurrent use as long as its table is.
type Engine struct {
	table CapabilityTable
}

func NewEngine(table CapabilityTable) *Engine {
	return &Engine{table: table}
}

// Authorize returns nil when actor may perform action on resource. target
// is the concrete aggregate for update/delete, nil otherwise.
//
// Precedence: anonymous or inactive actors are rejected with Unauthorized;
// superusers are allowed; then the capability table decides (Forbidden on
// denial); finally ownership-restricted writes compare target.OwnerID with
// the actor (NotFound or Unauthorized on mismatch).
func (e *Engine) Authorize(actor *user.User, resource Resource, action Action, target Owned) error {
	if err := e.Precheck(actor, resource, action); err != nil {
		return err
	}
	if actor.IsSuperuser() {
		return nil
	}

	failure, restricted := OwnershipRuleFor(resource, action)
	if !restricted {
		return nil
	}
	if target == nil {
		return errors.NewInternalError(fmt.Sprintf("%s %s requires a target", resource, action))
	}
	if target.OwnerID() == actor.ID() {
		return nil
	}

	switch failure {
	case OwnershipDisguised:
		return errors.NewNotFoundError(fmt.Sprintf("%s not found", resource))
	default:
		return errors.NewUnauthorizedError(
			fmt.Sprintf("only the %s's creator can %s it", resource, action),
		)
	}
}

// Precheck applies every rule except ownership. Use cases call it before
// loading the target, so a missing capability is reported ahead of a
// missing row.
func (e *Engine) Precheck(actor *user.User, resource Resource, action Action) error {
	if actor == nil || actor.ID() == 0 {
		return errors.NewUnauthorizedError("authentication required")
	}
	if !actor.IsActive() {
		return errors.NewUnauthorizedError("account is not active")
	}
	if actor.IsSuperuser() {
		return nil
	}

	allowed, err := e.capabilityAllows(actor, resource, action)
	if err != nil {
		return err
	}
	if !allowed {
		return errors.NewForbiddenError(
			fmt.Sprintf("you do not have permission to %s %s", action, resource),
		)
	}
	return nil
}

// Can is a boolean convenience over Authorize for listing-scope decisions.
func (e *Engine) Can(actor *user.User, resource Resource, action Action, target Owned) bool {
	return e.Authorize(actor, resource, action, target) == nil
}

func (e *Engine) capabilityAllows(actor *user.User, resource Resource, action Action) (bool, error) {
	subjects := append([]string{SubjectAuthenticated}, actor.Capabilities().Strings()...)
	for _, subject := range subjects {
		allowed, err := e.table.Allows(subject, resource, action)
		if err != nil {
			return false, fmt.Errorf("capability lookup for %s: %w", subject, err)
		}
		if allowed {
			return true, nil
		}
	}
	return false, nil
}

// HasCapability reports whether actor holds c or is a superuser.
func HasCapability(actor *user.User, c vo.Capability) bool {
	if actor == nil {
		return false
	}
	return actor.IsSuperuser() || actor.HasCapability(c)
}
