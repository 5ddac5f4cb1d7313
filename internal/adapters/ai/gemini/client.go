// Package gemini implements the statement structure and category classifiers
// on top of the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultModelName is used when no model is configured.
const DefaultModelName = "gemini-2.0-flash"

var errEmptyResponse = errors.New("empty response from model")

// contentGenerator is the part of genai.Models the classifiers use.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Classifier answers both classification questions with one Gemini model.
// It satisfies classifiers.StructureClassifier and classifiers.CategoryClassifier.
type Classifier struct {
	models contentGenerator
	model  string
}

// NewClassifier creates a Gemini API client for apiKey.
func NewClassifier(ctx context.Context, apiKey, model string) (*Classifier, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create genai client: %w", err)
	}
	return newClassifier(client.Models, model), nil
}

func newClassifier(models contentGenerator, model string) *Classifier {
	if model == "" {
		model = DefaultModelName
	}
	return &Classifier{models: models, model: model}
}

// generate sends one system/user exchange constrained to schema and returns
// the cleaned JSON text.
func (c *Classifier) generate(ctx context.Context, system, user string, schema *genai.Schema, maxTokens int32) ([]byte, error) {
	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: user}},
		},
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
		ResponseMIMEType:  "application/json",
		ResponseSchema:    schema,
		MaxOutputTokens:   maxTokens,
		Temperature:       genai.Ptr[float32](0),
	}

	resp, err := c.models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini: generate content: %w", err)
	}

	raw := resp.Text()
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("gemini: %w", errEmptyResponse)
	}
	return []byte(cleanModelJSON(raw)), nil
}

// cleanModelJSON strips Markdown fences and any text around the outermost
// JSON object.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		// Drop the first line (``` or ```json).
		idx := strings.Index(s, "\n")
		if idx == -1 {
			return s
		}
		s = strings.TrimSpace(s[idx+1:])
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end > start {
			s = s[start : end+1]
		}
	}
	return s
}
