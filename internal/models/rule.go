package models

import "time"

// MappingRule is a row of the mapping_rules table joined with its category.
type MappingRule struct {
	RuleID         string    `json:"ruleID"`
	LookupText     string    `json:"lookupText"`
	DisplayName    string    `json:"displayName"`
	CategoryID     string    `json:"categoryID"`
	CategoryName   string    `json:"categoryName"`
	Priority       int       `json:"priority"`
	Source         string    `json:"source"`
	OwnerID        *string   `json:"ownerID"`
	OrganisationID *string   `json:"organisationID"`
	CreatedAt      time.Time `json:"createdAt"`
	CreatedBy      string    `json:"createdBy"`
}

// Category is a row of the categories table.
type Category struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
	GroupName  string `json:"groupName"`
	IsSystem   bool   `json:"isSystem"`
}
