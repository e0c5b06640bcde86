package permission

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed policy.yaml
var defaultPolicy []byte

type policyFile struct {
	Rules []policyRule `yaml:"rules"`
}

type policyRule struct {
	Subject  string   `yaml:"subject"`
	Resource string   `yaml:"resource"`
	Actions  []string `yaml:"actions"`
}

// ParsePolicy turns a YAML rule table into casbin "p" lines of
// (subject, resource, action).
func ParsePolicy(data []byte) ([][]string, error) {
	var file policyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse policy: %w", err)
	}

	var lines [][]string
	for i, r := range file.Rules {
		if r.Subject == "" || r.Resource == "" || len(r.Actions) == 0 {
			return nil, fmt.Errorf("policy rule %d is incomplete", i)
		}
		for _, action := range r.Actions {
			lines = append(lines, []string{r.Subject, r.Resource, action})
		}
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("policy has no rules")
	}
	return lines, nil
}

// DefaultPolicy returns the embedded rule table.
func DefaultPolicy() ([][]string, error) {
	return ParsePolicy(defaultPolicy)
}
