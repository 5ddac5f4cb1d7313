package services

import (
	"github.com/SscSPs/cashmap/internal/core/ports/classifiers"
	"github.com/SscSPs/cashmap/internal/core/ports/integrations"
	portsrepo "github.com/SscSPs/cashmap/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashmap/internal/core/ports/services"
	"github.com/SscSPs/cashmap/internal/platform/config"
)

// Integrations carries the optional external collaborators. Nil fields
// disable the feature that depends on them.
type Integrations struct {
	StructureClassifier classifiers.StructureClassifier
	CategoryClassifier  classifiers.CategoryClassifier
	Archive             integrations.StatementArchive
	Events              integrations.EventTracker
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, ext Integrations) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.FormatDetector = NewFormatDetectionService(
		repos.BankFormatRepo,
		ext.StructureClassifier,
		WithStructureClassifierTimeout(cfg.ClassifierTimeout),
	)

	catOpts := []CategorisationOption{
		WithCategoryClassifierTimeout(cfg.ClassifierTimeout),
		WithRuleLearning(cfg.LearnRules),
	}
	if ext.CategoryClassifier != nil {
		catOpts = append(catOpts, WithCategoryClassifier(ext.CategoryClassifier))
	}
	container.Categoriser = NewCategorisationService(repos.MappingRuleRepo, repos.CategoryRepo, catOpts...)

	importOpts := []ImportOption{WithUploadLimits(cfg.ImportMaxBytes, cfg.ImportMaxRows)}
	if ext.Archive != nil {
		importOpts = append(importOpts, WithStatementArchive(ext.Archive))
	}
	if ext.Events != nil {
		importOpts = append(importOpts, WithEventTracker(ext.Events))
	}
	container.Import = NewImportService(
		repos.TransactionRepo,
		repos.UploadRepo,
		container.FormatDetector,
		container.Categoriser,
		importOpts...,
	)

	container.MappingRule = NewMappingRuleService(repos.MappingRuleRepo, repos.CategoryRepo)
	container.Budget = NewBudgetService(repos.BudgetRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ImportSvcFacade      = (*importService)(nil)
	_ portssvc.FormatDetectionSvc   = (*formatDetectionService)(nil)
	_ portssvc.CategorisationSvc    = (*categorisationService)(nil)
	_ portssvc.MappingRuleSvcFacade = (*mappingRuleService)(nil)
	_ portssvc.BudgetSvcFacade      = (*budgetService)(nil)
)
