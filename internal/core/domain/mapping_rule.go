package domain

import (
	"fmt"
	"strings"
	"time"
)

// RulePriority is a tie-break tier, not a numeric weight.
type RulePriority int

const (
	PriorityExactMerchant RulePriority = 1
	PriorityKeyword       RulePriority = 2
	PriorityEdgeCase      RulePriority = 3
)

// TierOrder is the order in which rule tiers are evaluated.
var TierOrder = []RulePriority{PriorityEdgeCase, PriorityExactMerchant, PriorityKeyword}

// IsValid reports whether p is one of the three tiers.
func (p RulePriority) IsValid() bool {
	return p >= PriorityExactMerchant && p <= PriorityEdgeCase
}

// Method returns the categorisation method a match in this tier yields.
func (p RulePriority) Method() CategorisationMethod {
	switch p {
	case PriorityEdgeCase:
		return MethodEdgeCase
	case PriorityExactMerchant:
		return MethodExactMerchant
	default:
		return MethodKeyword
	}
}

// RuleSource determines the visibility scope of a rule.
type RuleSource string

const (
	SourceSystem    RuleSource = "SYSTEM"     // global
	SourceUser      RuleSource = "USER"       // one owner
	SourceAdviser   RuleSource = "ADVISER"    // one organisation
	SourceAILearned RuleSource = "AI_LEARNED" // global, created by the classifier fallback
)

// CategorisationMethod records how a transaction got its category.
type CategorisationMethod string

const (
	MethodEdgeCase      CategorisationMethod = "EDGE_CASE"
	MethodExactMerchant CategorisationMethod = "EXACT_MERCHANT"
	MethodKeyword       CategorisationMethod = "KEYWORD"
	MethodAI            CategorisationMethod = "AI"
)

// MappingRule maps a lookup text to a category. Rules are never updated in
// place; superseding rules are added instead.
type MappingRule struct {
	RuleID         string       `json:"ruleID"`
	LookupText     string       `json:"lookupText"`
	DisplayName    string       `json:"displayName"`
	CategoryID     string       `json:"categoryID"`
	CategoryName   string       `json:"categoryName"` // Resolved on lookup
	Priority       RulePriority `json:"priority"`
	Source         RuleSource   `json:"source"`
	OwnerID        *string      `json:"ownerID,omitempty"`        // Set for USER rules
	OrganisationID *string      `json:"organisationID,omitempty"` // Set for ADVISER rules
	CreatedAt      time.Time    `json:"createdAt"`
	CreatedBy      string       `json:"createdBy"`
}

// Matches reports whether the rule's lookup text is contained in the
// description, ignoring case.
func (r MappingRule) Matches(upperDescription string) bool {
	lookup := strings.ToUpper(strings.TrimSpace(r.LookupText))
	return lookup != "" && strings.Contains(upperDescription, lookup)
}

// Validate checks the fields every rule must carry regardless of source.
func (r MappingRule) Validate() error {
	if strings.TrimSpace(r.LookupText) == "" {
		return fmt.Errorf("lookup text is required")
	}
	if r.CategoryID == "" {
		return fmt.Errorf("category ID is required")
	}
	if !r.Priority.IsValid() {
		return fmt.Errorf("priority must be 1, 2 or 3, got %d", r.Priority)
	}
	switch r.Source {
	case SourceUser:
		if r.OwnerID == nil || *r.OwnerID == "" {
			return fmt.Errorf("user rules require an owner")
		}
	case SourceAdviser:
		if r.OrganisationID == nil || *r.OrganisationID == "" {
			return fmt.Errorf("adviser rules require an organisation")
		}
	case SourceSystem, SourceAILearned:
	default:
		return fmt.Errorf("unknown rule source %q", r.Source)
	}
	return nil
}

// CategorisationResult is a resolved category for one description.
type CategorisationResult struct {
	CategoryID   string               `json:"categoryID"`
	CategoryName string               `json:"categoryName"`
	DisplayName  string               `json:"displayName"`
	Method       CategorisationMethod `json:"method"`
	RuleID       string               `json:"ruleID,omitempty"` // Empty for AI results
}
