package domain

import "strings"

// CategoryGroup is the coarse bucket a category rolls up into.
type CategoryGroup string

const (
	GroupIncome        CategoryGroup = "INCOME"
	GroupBills         CategoryGroup = "BILLS"
	GroupLivingCosts   CategoryGroup = "LIVING_COSTS"
	GroupDiscretionary CategoryGroup = "DISCRETIONARY"
	GroupOther         CategoryGroup = "OTHER"
)

// Category is one entry of the spending vocabulary.
type Category struct {
	CategoryID string        `json:"categoryID"`
	Name       string        `json:"name"`
	Group      CategoryGroup `json:"group"`
	IsSystem   bool          `json:"isSystem"`
}

// FindCategory returns the category whose name equals name, ignoring case.
func FindCategory(categories []Category, name string) (Category, bool) {
	name = strings.TrimSpace(name)
	for _, c := range categories {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Category{}, false
}
