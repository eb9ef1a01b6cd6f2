package entities

import "fmt"

// RuleCategory tags a rule for report grouping. Grouping is done on this
// tag, never by matching diagnostic text.
type RuleCategory string

const (
	CategoryRuleCategory    RuleCategory = "category"
	SCMURLRuleCategory      RuleCategory = "scm-url"
	RepoNameRuleCategory    RuleCategory = "repository-name"
	RepoContentRuleCategory RuleCategory = "repository-content"
	LicenseRuleCategory     RuleCategory = "license"
	OtherRuleCategory       RuleCategory = "other"
)

// RuleOutcome is the result of applying one rule to one manifest.
type RuleOutcome struct {
	Rule     string
	Category RuleCategory
	Passed   bool
	Message  string
}

// RuleContext carries read-only collaborator-supplied resources into rule
// bodies. Content is nil unless a repository working tree was fetched for
// the manifest under check; ContentErr then explains why.
type RuleContext struct {
	Policy     *Policy
	Content    *RepoContent
	ContentErr error
}

// Rule is a named, pure check over a manifest. RequiredKeys are verified
// before the body runs: a missing or null key fails the rule without
// invoking the body, so bodies can assume their keys exist.
type Rule struct {
	Name         string
	Category     RuleCategory
	RequiredKeys []string
	Body         func(manifest *Manifest, ctx *RuleContext) error
}

// Apply evaluates the preconditions and then the body, turning any
// rejection into a failed outcome. Rules never raise past this point.
func (r Rule) Apply(manifest *Manifest, ctx *RuleContext) RuleOutcome {
	for _, key := range r.RequiredKeys {
		if !manifest.Has(key) {
			return r.fail(fmt.Sprintf("%s key is missing", key))
		}
		if !manifest.IsSet(key) {
			return r.fail(fmt.Sprintf("%s value is not set", key))
		}
	}

	if err := r.Body(manifest, ctx); err != nil {
		return r.fail(err.Error())
	}

	return RuleOutcome{Rule: r.Name, Category: r.Category, Passed: true}
}

func (r Rule) fail(message string) RuleOutcome {
	return RuleOutcome{
		Rule:     r.Name,
		Category: r.Category,
		Passed:   false,
		Message:  message,
	}
}
