package permission

// CapabilityTable answers whether a subject (a capability name or
// SubjectAuthenticated) may perform action on resource, ignoring ownership.
type CapabilityTable interface {
	Allows(subject string, resource Resource, action Action) (bool, error)
}
