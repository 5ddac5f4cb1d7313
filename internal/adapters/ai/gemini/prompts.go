package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SscSPs/cashmap/internal/core/domain"
	"github.com/SscSPs/cashmap/internal/core/ports/classifiers"
	"google.golang.org/genai"
)

var (
	_ classifiers.StructureClassifier = (*Classifier)(nil)
	_ classifiers.CategoryClassifier  = (*Classifier)(nil)
)

const structureSystemPrompt = "You are a bank statement CSV parser. You analyse CSV headers and sample data rows " +
	"to determine the structure of bank statement files. Accuracy matters: people's financial data depends on it."

const structureSchema = `{
  "dateColumn": "exact column header name for the date",
  "dateFormat": "the date format used, e.g. dd/mm/yyyy, yyyy-mm-dd or mm/dd/yyyy",
  "descriptionColumns": ["column1", "column2"],
  "amountColumn": "column header for the amount" or null,
  "amountIsSignedNumber": true or false,
  "debitColumn": "column header if debits are in a separate column" or null,
  "creditColumn": "column header if credits are in a separate column" or null,
  "typeColumn": "column that contains a debit/credit indicator" or null,
  "debitIndicator": "the text value that means debit" or null,
  "creditIndicator": "the text value that means credit" or null,
  "balanceColumn": "column for running balance" or null,
  "skipColumns": ["columns to ignore"],
  "bankName": "best guess at the bank name, or Unknown",
  "currency": "the likely ISO currency code, e.g. NZD, AUD, USD, GBP",
  "notes": "any important parsing notes"
}`

const structureRules = `Rules:
- If amounts are negative for debits and positive for credits, set amountIsSignedNumber to true.
- If there are separate debit and credit columns, set those and set amountIsSignedNumber to false.
- If there is a type or direction column with values like D/C, set typeColumn and both indicators.
- descriptionColumns lists every column that identifies the merchant or transaction (Payee, Other Party, Details, Particulars, Memo, Narrative and similar), most useful first.
- Ignore internal reference numbers and running balances unless they identify the transaction.
- Use the data values to pick the date format: a first component above 12 means day first.
- Describe exactly one amount representation: signed, separate debit/credit, or type indicator. Leave the others null.
- Use only the keys shown. Respond with the JSON object alone.`

const categorySystemPrompt = `You categorise bank transactions. Respond with ONLY a JSON object: {"category": "exact category name", "displayName": "cleaned merchant name"}`

const (
	structureMaxTokens int32 = 1024
	categoryMaxTokens  int32 = 256
)

func stringField(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: description}
}

func nullableString(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: description, Nullable: genai.Ptr(true)}
}

func stringList(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Description: description, Items: &genai.Schema{Type: genai.TypeString}}
}

// structureResponseSchema mirrors the column mapping wire shape.
var structureResponseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"dateColumn":           stringField("exact header of the date column"),
		"dateFormat":           stringField("date format token such as dd/MM/yyyy"),
		"descriptionColumns":   stringList("headers identifying the merchant, most useful first"),
		"amountColumn":         nullableString("header of the amount column"),
		"amountIsSignedNumber": {Type: genai.TypeBoolean},
		"debitColumn":          nullableString("header of a separate debit column"),
		"creditColumn":         nullableString("header of a separate credit column"),
		"typeColumn":           nullableString("header of a debit/credit indicator column"),
		"debitIndicator":       nullableString("indicator value meaning debit"),
		"creditIndicator":      nullableString("indicator value meaning credit"),
		"balanceColumn":        nullableString("header of the running balance column"),
		"skipColumns":          stringList("headers to ignore"),
		"bankName":             nullableString("best guess at the bank"),
		"currency":             nullableString("ISO 4217 currency code"),
		"notes":                nullableString("parsing notes"),
	},
	Required: []string{"dateColumn", "dateFormat", "descriptionColumns", "amountIsSignedNumber"},
	PropertyOrdering: []string{
		"dateColumn", "dateFormat", "descriptionColumns", "amountColumn", "amountIsSignedNumber",
		"debitColumn", "creditColumn", "typeColumn", "debitIndicator", "creditIndicator",
		"balanceColumn", "skipColumns", "bankName", "currency", "notes",
	},
}

// categoryResponseSchema restricts the category to the offered names.
func categoryResponseSchema(categories []domain.Category) *genai.Schema {
	category := stringField("exact category name")
	for _, c := range categories {
		category.Enum = append(category.Enum, c.Name)
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"category":    category,
			"displayName": stringField("cleaned merchant name"),
		},
		Required:         []string{"category"},
		PropertyOrdering: []string{"category", "displayName"},
	}
}

func buildStructurePrompt(headers []string, sampleRows [][]string) (string, error) {
	h, err := json.Marshal(headers)
	if err != nil {
		return "", err
	}
	rows, err := json.Marshal(sampleRows)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here are the headers and first %d rows of a bank statement CSV. ", len(sampleRows))
	b.WriteString("Analyse the structure and tell me which columns contain what data.\n\n")
	fmt.Fprintf(&b, "Headers: %s\nSample rows: %s\n\n", h, rows)
	b.WriteString("Respond with a JSON object of this shape:\n")
	b.WriteString(structureSchema)
	b.WriteString("\n\n")
	b.WriteString(structureRules)
	return b.String(), nil
}

func buildCategoryPrompt(description string, categories []domain.Category) string {
	entries := make([]string, len(categories))
	for i, c := range categories {
		entries[i] = fmt.Sprintf("%s (%s)", c.Name, c.Group)
	}
	return fmt.Sprintf("Categorise this NZ bank transaction: %q\n\nAvailable categories: %s",
		description, strings.Join(entries, ", "))
}

// InferStructure returns the model's column mapping for an unseen statement layout.
func (c *Classifier) InferStructure(ctx context.Context, headers []string, sampleRows [][]string) ([]byte, error) {
	prompt, err := buildStructurePrompt(headers, sampleRows)
	if err != nil {
		return nil, fmt.Errorf("gemini: build structure prompt: %w", err)
	}
	return c.generate(ctx, structureSystemPrompt, prompt, structureResponseSchema, structureMaxTokens)
}

// ClassifyCategory returns the model's pick from categories for description.
func (c *Classifier) ClassifyCategory(ctx context.Context, description string, categories []domain.Category) ([]byte, error) {
	return c.generate(ctx, categorySystemPrompt, buildCategoryPrompt(description, categories),
		categoryResponseSchema(categories), categoryMaxTokens)
}
