package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/cashmap/internal/apperrors"
	"github.com/SscSPs/cashmap/internal/core/domain"
	"github.com/SscSPs/cashmap/internal/core/ports/classifiers"
	portsrepo "github.com/SscSPs/cashmap/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashmap/internal/core/ports/services"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// learnedRuleAuthor is recorded as the creator of AI_LEARNED rules.
const learnedRuleAuthor = "categoriser"

var answerValidator = validator.New()

// categorisationService implements the CategorisationSvc interface
type categorisationService struct {
	BaseService
	ruleRepo          portsrepo.MappingRuleRepositoryFacade
	categoryRepo      portsrepo.CategoryReader
	classifier        classifiers.CategoryClassifier
	classifierTimeout time.Duration
	learnRules        bool
}

// CategorisationOption is a functional option for configuring the categorisation service
type CategorisationOption func(*categorisationService)

// WithCategoryClassifier enables the classifier fallback.
func WithCategoryClassifier(classifier classifiers.CategoryClassifier) CategorisationOption {
	return func(s *categorisationService) {
		s.classifier = classifier
	}
}

// WithCategoryClassifierTimeout overrides DefaultClassifierTimeout.
func WithCategoryClassifierTimeout(d time.Duration) CategorisationOption {
	return func(s *categorisationService) {
		if d > 0 {
			s.classifierTimeout = d
		}
	}
}

// WithRuleLearning controls whether classifier results become AI_LEARNED rules.
func WithRuleLearning(enabled bool) CategorisationOption {
	return func(s *categorisationService) {
		s.learnRules = enabled
	}
}

// NewCategorisationService creates a new categorisation service. Rule
// learning is on by default; the classifier fallback is off until
// WithCategoryClassifier is given.
func NewCategorisationService(ruleRepo portsrepo.MappingRuleRepositoryFacade, categoryRepo portsrepo.CategoryReader, options ...CategorisationOption) portssvc.CategorisationSvc {
	svc := &categorisationService{
		ruleRepo:          ruleRepo,
		categoryRepo:      categoryRepo,
		classifierTimeout: DefaultClassifierTimeout,
		learnRules:        true,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

func (s *categorisationService) LoadRuleSet(ctx context.Context, ownerID string, organisationID *string) (*domain.RuleSet, error) {
	rules, err := s.ruleRepo.ListVisibleRules(ctx, ownerID, organisationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load mapping rules", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to load mapping rules: %w", err)
	}
	set := domain.NewRuleSet(rules)
	s.LogDebug(ctx, "Mapping rules loaded", slog.String("owner_id", ownerID), slog.Int("rules", set.Len()))
	return set, nil
}

func (s *categorisationService) Categorise(ctx context.Context, description, ownerID string, organisationID *string) (*domain.CategorisationResult, error) {
	rules, err := s.LoadRuleSet(ctx, ownerID, organisationID)
	if err != nil {
		return nil, err
	}
	return s.CategoriseWithRules(ctx, rules, description), nil
}

func (s *categorisationService) CategoriseBatch(ctx context.Context, descriptions []string, ownerID string, organisationID *string) ([]*domain.CategorisationResult, error) {
	rules, err := s.LoadRuleSet(ctx, ownerID, organisationID)
	if err != nil {
		return nil, err
	}
	results := make([]*domain.CategorisationResult, len(descriptions))
	for i, description := range descriptions {
		results[i] = s.CategoriseWithRules(ctx, rules, description)
	}
	return results, nil
}

// CategoriseWithRules never fails: anything that goes wrong after the rule
// scan leaves the description uncategorised.
func (s *categorisationService) CategoriseWithRules(ctx context.Context, rules *domain.RuleSet, description string) *domain.CategorisationResult {
	if result := rules.Match(description); result != nil {
		return result
	}

	result := s.classify(ctx, description)
	if result == nil || !s.learnRules {
		return result
	}

	if learned := s.learn(ctx, description, result); learned != nil {
		rules.Add(*learned)
	}
	return result
}

func (s *categorisationService) classify(ctx context.Context, description string) *domain.CategorisationResult {
	if s.classifier == nil {
		return nil
	}

	categories, err := s.categoryRepo.ListSystemCategories(ctx)
	if err != nil {
		s.LogWarn(ctx, err, "Failed to load category vocabulary for classifier")
		return nil
	}
	if len(categories) == 0 {
		return nil
	}

	callCtx, cancel := context.WithTimeout(ctx, s.classifierTimeout)
	defer cancel()

	raw, err := s.classifier.ClassifyCategory(callCtx, description, categories)
	if err != nil {
		s.LogWarn(ctx, fmt.Errorf("%w: %w", apperrors.ErrClassifierUnavailable, err), "Category classifier failed", slog.String("description", description))
		return nil
	}

	answer, err := parseCategoryAnswer(raw)
	if err != nil {
		s.LogWarn(ctx, err, "Category classifier answer rejected", slog.String("description", description))
		return nil
	}

	category, ok := domain.FindCategory(categories, answer.Category)
	if !ok {
		s.LogWarn(ctx, fmt.Errorf("%w: unknown category %q", apperrors.ErrClassifierOutput, answer.Category),
			"Category classifier named an unknown category", slog.String("description", description))
		return nil
	}

	displayName := strings.TrimSpace(answer.DisplayName)
	if displayName == "" {
		displayName = description
	}
	return &domain.CategorisationResult{
		CategoryID:   category.CategoryID,
		CategoryName: category.Name,
		DisplayName:  displayName,
		Method:       domain.MethodAI,
	}
}

// learn promotes a classifier result into an AI_LEARNED exact-merchant rule.
// It returns the rule future rows should see, or nil when learning failed.
func (s *categorisationService) learn(ctx context.Context, description string, result *domain.CategorisationResult) *domain.MappingRule {
	lookup := strings.ToUpper(strings.TrimSpace(description))
	if lookup == "" {
		return nil
	}

	existing, err := s.ruleRepo.FindLearnedRule(ctx, lookup)
	if err == nil {
		return existing
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogWarn(ctx, err, "Failed to check for learned rule", slog.String("lookup_text", lookup))
		return nil
	}

	rule := domain.MappingRule{
		RuleID:       uuid.NewString(),
		LookupText:   lookup,
		DisplayName:  result.DisplayName,
		CategoryID:   result.CategoryID,
		CategoryName: result.CategoryName,
		Priority:     domain.PriorityExactMerchant,
		Source:       domain.SourceAILearned,
		CreatedAt:    time.Now(),
		CreatedBy:    learnedRuleAuthor,
	}
	if err := s.ruleRepo.SaveRule(ctx, rule); err != nil {
		// A concurrent import learned the same rule first.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return &rule
		}
		s.LogWarn(ctx, err, "Failed to save learned rule", slog.String("lookup_text", lookup))
		return nil
	}

	s.LogInfo(ctx, "Learned categorisation rule", slog.String("rule_id", rule.RuleID), slog.String("category", rule.CategoryName))
	return &rule
}

func parseCategoryAnswer(raw []byte) (classifiers.CategoryAnswer, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var answer classifiers.CategoryAnswer
	if err := dec.Decode(&answer); err != nil {
		return answer, fmt.Errorf("%w: %w", apperrors.ErrClassifierOutput, err)
	}
	if err := answerValidator.Struct(answer); err != nil {
		return answer, fmt.Errorf("%w: %w", apperrors.ErrClassifierOutput, err)
	}
	return answer, nil
}
