package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/cashmap/internal/apperrors"
	"github.com/SscSPs/cashmap/internal/core/domain"
	"github.com/SscSPs/cashmap/internal/core/ports/classifiers"
	portsrepo "github.com/SscSPs/cashmap/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashmap/internal/core/ports/services"
	"github.com/SscSPs/cashmap/internal/utils/statement"
)

// DefaultClassifierTimeout bounds every external classifier call.
const DefaultClassifierTimeout = 15 * time.Second

const unknownBank = "Unknown"

// formatDetectionService implements the FormatDetectionSvc interface
type formatDetectionService struct {
	BaseService
	formatRepo        portsrepo.BankFormatRepositoryFacade
	classifier        classifiers.StructureClassifier
	classifierTimeout time.Duration
}

// FormatDetectionOption is a functional option for configuring the format detection service
type FormatDetectionOption func(*formatDetectionService)

// WithStructureClassifierTimeout overrides DefaultClassifierTimeout.
func WithStructureClassifierTimeout(d time.Duration) FormatDetectionOption {
	return func(s *formatDetectionService) {
		if d > 0 {
			s.classifierTimeout = d
		}
	}
}

// NewFormatDetectionService creates a new format detection service
func NewFormatDetectionService(repo portsrepo.BankFormatRepositoryFacade, classifier classifiers.StructureClassifier, options ...FormatDetectionOption) portssvc.FormatDetectionSvc {
	svc := &formatDetectionService{
		formatRepo:        repo,
		classifier:        classifier,
		classifierTimeout: DefaultClassifierTimeout,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Detect serves a known header set from the cache and only asks the
// classifier about header sets it has never seen.
func (s *formatDetectionService) Detect(ctx context.Context, headers []string, sampleRows [][]string) (*domain.DetectionResult, error) {
	if len(headers) == 0 {
		return nil, apperrors.NewValidationError("statement has no header row")
	}
	if len(sampleRows) > statement.SampleSize {
		sampleRows = sampleRows[:statement.SampleSize]
	}

	fingerprint := statement.HeaderFingerprint(headers)
	logger := s.GetLogger(ctx).With(slog.String("header_fingerprint", fingerprint))

	var (
		mapping   domain.ColumnMapping
		fromCache bool
	)

	cached, err := s.formatRepo.FindByFingerprint(ctx, fingerprint)
	switch {
	case err == nil:
		mapping, fromCache = cached.Mapping, true
		if touchErr := s.formatRepo.TouchUsage(ctx, fingerprint); touchErr != nil {
			s.LogWarn(ctx, touchErr, "Failed to record bank format usage", slog.String("header_fingerprint", fingerprint))
		}
		logger.Debug("Bank format served from cache", slog.Int("usage_count", cached.UsageCount+1))
	case errors.Is(err, apperrors.ErrNotFound):
		mapping, err = s.infer(ctx, headers, sampleRows)
		if err != nil {
			logger.Warn("Statement structure inference failed", slog.String("error", err.Error()))
			return nil, err
		}
		if err := s.formatRepo.UpsertBankFormat(ctx, fingerprint, mapping); err != nil {
			s.LogError(ctx, err, "Failed to cache bank format", slog.String("header_fingerprint", fingerprint))
			return nil, fmt.Errorf("failed to cache bank format: %w", err)
		}
		logger.Info("New bank format detected", slog.String("bank_name", mapping.BankName))
	default:
		s.LogError(ctx, err, "Failed to look up bank format", slog.String("header_fingerprint", fingerprint))
		return nil, fmt.Errorf("failed to look up bank format: %w", err)
	}

	preview, err := statement.Normalise(sampleRows, headers, mapping)
	if err != nil {
		return nil, fmt.Errorf("failed to preview statement: %w", err)
	}

	bankName := mapping.BankName
	if bankName == "" {
		bankName = unknownBank
	}

	return &domain.DetectionResult{
		Mapping:   mapping,
		Preview:   statement.Preview(preview.Transactions, mapping.Currency),
		BankName:  bankName,
		RowCount:  len(sampleRows),
		FromCache: fromCache,
	}, nil
}

// infer asks the structure classifier for a mapping. An answer that does not
// decode strictly, or that names columns the statement does not have, is
// rejected rather than guessed at.
func (s *formatDetectionService) infer(ctx context.Context, headers []string, sampleRows [][]string) (domain.ColumnMapping, error) {
	if s.classifier == nil {
		return domain.ColumnMapping{}, fmt.Errorf("%w: no structure classifier configured", apperrors.ErrClassifierUnavailable)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.classifierTimeout)
	defer cancel()

	raw, err := s.classifier.InferStructure(callCtx, headers, sampleRows)
	if err != nil {
		return domain.ColumnMapping{}, fmt.Errorf("%w: %w", apperrors.ErrClassifierUnavailable, err)
	}

	mapping, err := domain.ParseColumnMapping(raw)
	if err != nil {
		return domain.ColumnMapping{}, fmt.Errorf("%w: %w", apperrors.ErrClassifierOutput, err)
	}

	if err := statement.CheckColumns(headers, mapping); err != nil {
		return domain.ColumnMapping{}, fmt.Errorf("%w: %w", apperrors.ErrClassifierOutput, err)
	}
	return mapping, nil
}
