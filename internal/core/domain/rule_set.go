package domain

import "strings"

// RuleSet holds the rules visible to one owner, grouped by tier. It is built
// once per import so each row does not reload the rules.
type RuleSet struct {
	tiers map[RulePriority][]MappingRule
}

// NewRuleSet groups rules by tier, keeping their order within each tier.
func NewRuleSet(rules []MappingRule) *RuleSet {
	rs := &RuleSet{tiers: make(map[RulePriority][]MappingRule, len(TierOrder))}
	for _, r := range rules {
		rs.Add(r)
	}
	return rs
}

// Add appends a rule to the end of its tier.
func (rs *RuleSet) Add(rule MappingRule) {
	rs.tiers[rule.Priority] = append(rs.tiers[rule.Priority], rule)
}

// Len returns the number of rules in the set.
func (rs *RuleSet) Len() int {
	n := 0
	for _, rules := range rs.tiers {
		n += len(rules)
	}
	return n
}

// Match evaluates tiers in TierOrder and returns the first rule whose lookup
// text is contained in the description, or nil when nothing matches.
func (rs *RuleSet) Match(description string) *CategorisationResult {
	upper := strings.ToUpper(description)
	for _, tier := range TierOrder {
		for _, rule := range rs.tiers[tier] {
			if !rule.Matches(upper) {
				continue
			}
			return &CategorisationResult{
				CategoryID:   rule.CategoryID,
				CategoryName: rule.CategoryName,
				DisplayName:  rule.DisplayName,
				Method:       tier.Method(),
				RuleID:       rule.RuleID,
			}
		}
	}
	return nil
}
