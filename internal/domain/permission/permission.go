// Package permission holds the authorization engine: a pure decision
// function over (actor, resource, action, target). The capability half of
// each decision comes from a static rule table; ownership is checked here.
package permission

type Resource string

const (
	ResourceProject    Resource = "project"
	ResourceTicket     Resource = "ticket"
	ResourceComment    Resource = "comment"
	ResourceHistory    Resource = "history"
	ResourceAttachment Resource = "attachment"
)

type Action string

const (
	ActionList     Action = "list"
	ActionRetrieve Action = "retrieve"
	ActionCreate   Action = "create"
	ActionUpdate   Action = "update"
	ActionDelete   Action = "delete"
	ActionAssign   Action = "assign"
)

// SubjectAuthenticated is the rule-table subject every active actor holds
// in addition to its capabilities.
const SubjectAuthenticated = "authenticated"

func (r Resource) String() string {
	return string(r)
}

func (a Action) String() string {
	return string(a)
}

func (a Action) IsRead() bool {
	return a == ActionList || a == ActionRetrieve
}

// Owned is implemented by aggregates whose writes are restricted to the
// user that created them.
type Owned interface {
	OwnerID() uint
}

// OwnershipFailure selects how a non-owner rejection is reported for a
// (resource, action) pair.
type OwnershipFailure int

const (
	// OwnershipDisguised reports the resource as absent.
	OwnershipDisguised OwnershipFailure = iota + 1
	// OwnershipUnauthorized reports the actor as not the rights-holder.
	OwnershipUnauthorized
)

type rule struct {
	resource Resource
	action   Action
}

// ownershipRules lists every write that is restricted to the owner.
var ownershipRules = map[rule]OwnershipFailure{
	{ResourceProject, ActionUpdate}:    OwnershipDisguised,
	{ResourceProject, ActionDelete}:    OwnershipDisguised,
	{ResourceTicket, ActionUpdate}:     OwnershipUnauthorized,
	{ResourceTicket, ActionDelete}:     OwnershipUnauthorized,
	{ResourceComment, ActionDelete}:    OwnershipUnauthorized,
	{ResourceAttachment, ActionDelete}: OwnershipUnauthorized,
}

// OwnershipRuleFor returns the ownership rule of a pair, false when the pair
// is not ownership-restricted.
func OwnershipRuleFor(resource Resource, action Action) (OwnershipFailure, bool) {
	f, ok := ownershipRules[rule{resource, action}]
	return f, ok
}
