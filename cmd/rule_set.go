package cmd

import (
	"errors"
	"fmt"
	"os"

	"funbooks/internal/core/domain/rules"
	"funbooks/internal/core/ports"
	"funbooks/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

const (
	ActivateMembershipRule = "activate_membership"
	ShippingSlipRule       = "shipping_slip"
)

// DefaultRuleNames is the rule order used when no rule-set file is configured.
var DefaultRuleNames = []string{ActivateMembershipRule, ShippingSlipRule}

// RuleSetFile is the root of the YAML rule-set file.
//
//	rules:
//	  - activate_membership
//	  - shipping_slip
type RuleSetFile struct {
	Rules []string `yaml:"rules"`
}

// Collaborators are the outbound services the rules are built on.
type Collaborators struct {
	CustomerService ports.CustomerService
	ShippingService ports.ShippingService
}

type ruleFactory func(Collaborators) (rules.BusinessRule, error)

func ruleRegistry() map[string]ruleFactory {
	return map[string]ruleFactory{
		ActivateMembershipRule: func(c Collaborators) (rules.BusinessRule, error) {
			return rules.NewActivateMembership(c.CustomerService)
		},
		ShippingSlipRule: func(c Collaborators) (rules.BusinessRule, error) {
			return rules.NewShippingSlip(c.ShippingService)
		},
	}
}

// LoadRuleNames reads the rule names from the YAML file at path, in file order.
// An empty path yields DefaultRuleNames.
func LoadRuleNames(path string) ([]string, error) {
	if path == "" {
		return append([]string(nil), DefaultRuleNames...), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule set %s: %w", path, err)
	}

	var f RuleSetFile
	if err = yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse rule set %s: %w", path, err)
	}
	return f.Rules, nil
}

// BuildRules resolves names through the rule registry and returns the rules in
// the same order. The list must be non-empty and free of duplicates.
func BuildRules(names []string, collaborators Collaborators) ([]rules.BusinessRule, error) {
	if len(names) == 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("rules", errors.New("rule set is empty"))
	}

	registry := ruleRegistry()
	seen := make(map[string]struct{}, len(names))
	result := make([]rules.BusinessRule, 0, len(names))

	for _, name := range names {
		if _, ok := seen[name]; ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("rules", fmt.Errorf("%q is listed more than once", name))
		}
		seen[name] = struct{}{}

		factory, ok := registry[name]
		if !ok {
			return nil, errs.NewObjectNotFoundError("rule", name)
		}

		rule, err := factory(collaborators)
		if err != nil {
			return nil, fmt.Errorf("build rule %s: %w", name, err)
		}
		result = append(result, rule)
	}

	return result, nil
}
