package dto

import (
	"time"

	"github.com/SscSPs/cashmap/internal/core/domain"
)

// CreateRuleRequest defines the data needed to add a categorisation rule.
type CreateRuleRequest struct {
	LookupText   string `json:"lookupText" binding:"required,max=200"`
	DisplayName  string `json:"displayName" binding:"required,max=200"`
	CategoryName string `json:"categoryName" binding:"required"`
	Priority     int    `json:"priority" binding:"required,min=1,max=3"`
	Source       string `json:"source" binding:"required,oneof=USER ADVISER"`
}

// RuleResponse defines the data returned for a categorisation rule.
type RuleResponse struct {
	RuleID       string    `json:"ruleID"`
	LookupText   string    `json:"lookupText"`
	DisplayName  string    `json:"displayName"`
	CategoryID   string    `json:"categoryID"`
	CategoryName string    `json:"categoryName"`
	Priority     int       `json:"priority"`
	Source       string    `json:"source"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToRuleResponse converts a domain.MappingRule to RuleResponse DTO.
func ToRuleResponse(r *domain.MappingRule) RuleResponse {
	return RuleResponse{
		RuleID:       r.RuleID,
		LookupText:   r.LookupText,
		DisplayName:  r.DisplayName,
		CategoryID:   r.CategoryID,
		CategoryName: r.CategoryName,
		Priority:     int(r.Priority),
		Source:       string(r.Source),
		CreatedAt:    r.CreatedAt,
	}
}

// ToListRuleResponse converts a slice of rules.
func ToListRuleResponse(rules []domain.MappingRule) []RuleResponse {
	res := make([]RuleResponse, len(rules))
	for i := range rules {
		res[i] = ToRuleResponse(&rules[i])
	}
	return res
}

// CategoriseRequest asks for ad-hoc categorisation of descriptions.
type CategoriseRequest struct {
	Descriptions []string `json:"descriptions" binding:"required,min=1,max=100,dive,required"`
}

// CategoriseResult pairs a description with its category, if one was found.
type CategoriseResult struct {
	Description string                       `json:"description"`
	Result      *domain.CategorisationResult `json:"result"`
}

// CategoriseResponse is returned by the categorise endpoint.
type CategoriseResponse struct {
	Results []CategoriseResult `json:"results"`
}
