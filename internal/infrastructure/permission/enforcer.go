package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"issuetracker/internal/domain/permission"
	"issuetracker/internal/shared/logger"
)

const (
	SourceEmbedded = "embedded"
	SourceDatabase = "database"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`

var _ permission.CapabilityTable = (*Enforcer)(nil)

// Enforcer is the casbin-backed capability table.
type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

// NewEnforcer builds the table from the embedded policy file, or from the
// casbin_rule table when source is SourceDatabase. An empty casbin_rule
// table is seeded with the embedded policy.
func NewEnforcer(source string, db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("failed to load casbin model: %w", err)
	}

	defaults, err := DefaultPolicy()
	if err != nil {
		return nil, err
	}

	var enforcer *casbin.Enforcer
	switch source {
	case SourceEmbedded, "":
		enforcer, err = casbin.NewEnforcer(m)
		if err != nil {
			return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
		}
		if _, err := enforcer.AddPolicies(defaults); err != nil {
			return nil, fmt.Errorf("failed to load policy: %w", err)
		}
	case SourceDatabase:
		if db == nil {
			return nil, fmt.Errorf("database policy source requires a database")
		}
		adapter, err := gormadapter.NewAdapterByDB(db)
		if err != nil {
			return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
		}
		enforcer, err = casbin.NewEnforcer(m, adapter)
		if err != nil {
			return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
		}
		if err := enforcer.LoadPolicy(); err != nil {
			return nil, fmt.Errorf("failed to load policy: %w", err)
		}
		if policyCount(enforcer) == 0 {
			log.Infow("seeding empty policy table", "rules", len(defaults))
			if _, err := enforcer.AddPolicies(defaults); err != nil {
				return nil, fmt.Errorf("failed to seed policy: %w", err)
			}
		}
	default:
		return nil, fmt.Errorf("unknown policy source %q", source)
	}

	log.Infow("capability table loaded", "source", source, "rules", policyCount(enforcer))
	return &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

func policyCount(e *casbin.Enforcer) int {
	assertion, ok := e.GetModel()["p"]["p"]
	if !ok {
		return 0
	}
	return len(assertion.Policy)
}

func (e *Enforcer) Allows(subject string, resource permission.Resource, action permission.Action) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(subject, string(resource), string(action))
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err,
			"subject", subject, "resource", resource, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}
	return allowed, nil
}

// Reload re-reads the policy from the adapter. It is a no-op for the
// embedded source.
func (e *Enforcer) Reload() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.enforcer.GetAdapter() == nil {
		return nil
	}
	if err := e.enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("failed to reload policy: %w", err)
	}
	return nil
}
