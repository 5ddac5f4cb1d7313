package domain_test

import (
	"testing"

	"github.com/SscSPs/cashmap/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMappingRule_Matches(t *testing.T) {
	rule := domain.MappingRule{LookupText: "countdown"}

	assert.True(t, rule.Matches("COUNTDOWN KILBIRNIE"))
	assert.False(t, rule.Matches("NEW WORLD"))
	assert.False(t, domain.MappingRule{LookupText: "  "}.Matches("ANYTHING"))
}

func TestMappingRule_Validate(t *testing.T) {
	owner := "user_1"

	tests := []struct {
		name    string
		rule    domain.MappingRule
		wantErr string
	}{
		{
			name: "valid user rule",
			rule: domain.MappingRule{LookupText: "GYM", CategoryID: "cat_1", Priority: domain.PriorityKeyword, Source: domain.SourceUser, OwnerID: &owner},
		},
		{
			name:    "user rule without owner",
			rule:    domain.MappingRule{LookupText: "GYM", CategoryID: "cat_1", Priority: domain.PriorityKeyword, Source: domain.SourceUser},
			wantErr: "owner",
		},
		{
			name:    "adviser rule without organisation",
			rule:    domain.MappingRule{LookupText: "GYM", CategoryID: "cat_1", Priority: domain.PriorityKeyword, Source: domain.SourceAdviser},
			wantErr: "organisation",
		},
		{
			name:    "priority out of range",
			rule:    domain.MappingRule{LookupText: "GYM", CategoryID: "cat_1", Priority: 4, Source: domain.SourceSystem},
			wantErr: "priority",
		},
		{
			name:    "empty lookup text",
			rule:    domain.MappingRule{CategoryID: "cat_1", Priority: domain.PriorityKeyword, Source: domain.SourceSystem},
			wantErr: "lookup text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestRulePriority_Method(t *testing.T) {
	assert.Equal(t, domain.MethodEdgeCase, domain.PriorityEdgeCase.Method())
	assert.Equal(t, domain.MethodExactMerchant, domain.PriorityExactMerchant.Method())
	assert.Equal(t, domain.MethodKeyword, domain.PriorityKeyword.Method())
}

func TestNewTransaction(t *testing.T) {
	parsed := domain.ParsedTransaction{RawDescription: "UBER EATS", Amount: decimal.RequireFromString("23.40"), Type: domain.Debit, DedupHash: "abc"}

	uncategorised := domain.NewTransaction(parsed, "owner", "upload", nil)
	assert.False(t, uncategorised.IsCategorised())
	assert.Nil(t, uncategorised.CleanedDescription)

	categorised := domain.NewTransaction(parsed, "owner", "upload", &domain.CategorisationResult{
		CategoryID: "cat_takeaway", CategoryName: "Takeaways", DisplayName: "Uber Eats", Method: domain.MethodAI,
	})
	assert.True(t, categorised.IsCategorised())
	assert.Equal(t, "Uber Eats", *categorised.CleanedDescription)
	assert.Equal(t, domain.MethodAI, *categorised.CategorisationMethod)
	assert.Equal(t, "upload", categorised.CsvUploadID)
}
