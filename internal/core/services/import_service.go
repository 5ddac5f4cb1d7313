package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/cashmap/internal/apperrors"
	"github.com/SscSPs/cashmap/internal/core/domain"
	"github.com/SscSPs/cashmap/internal/core/ports/integrations"
	portsrepo "github.com/SscSPs/cashmap/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashmap/internal/core/ports/services"
	"github.com/SscSPs/cashmap/internal/dto"
	"github.com/SscSPs/cashmap/internal/utils/statement"
	"github.com/google/uuid"
)

// Upload limits applied when none are configured.
const (
	DefaultMaxUploadBytes int64 = 5 * 1024 * 1024
	DefaultMaxUploadRows        = 10000
)

const (
	eventStatementImported = "statement_imported"
	defaultBankFormat      = "generic"
	defaultListLimit       = 50
)

// importService implements the ImportSvcFacade interface
type importService struct {
	BaseService
	txnRepo     portsrepo.TransactionRepositoryFacade
	uploadRepo  portsrepo.UploadRepositoryFacade
	detector    portssvc.FormatDetectionSvc
	categoriser portssvc.CategorisationSvc
	archive     integrations.StatementArchive
	events      integrations.EventTracker
	maxBytes    int64
	maxRows     int
}

// ImportOption is a functional option for configuring the import service
type ImportOption func(*importService)

// WithStatementArchive keeps a copy of every imported file.
func WithStatementArchive(archive integrations.StatementArchive) ImportOption {
	return func(s *importService) {
		s.archive = archive
	}
}

// WithEventTracker reports completed imports to product analytics.
func WithEventTracker(events integrations.EventTracker) ImportOption {
	return func(s *importService) {
		s.events = events
	}
}

// WithUploadLimits overrides the default byte and row limits. Non-positive
// values keep the defaults.
func WithUploadLimits(maxBytes int64, maxRows int) ImportOption {
	return func(s *importService) {
		if maxBytes > 0 {
			s.maxBytes = maxBytes
		}
		if maxRows > 0 {
			s.maxRows = maxRows
		}
	}
}

// NewImportService creates a new import service
func NewImportService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	uploadRepo portsrepo.UploadRepositoryFacade,
	detector portssvc.FormatDetectionSvc,
	categoriser portssvc.CategorisationSvc,
	options ...ImportOption,
) portssvc.ImportSvcFacade {
	svc := &importService{
		txnRepo:     txnRepo,
		uploadRepo:  uploadRepo,
		detector:    detector,
		categoriser: categoriser,
		maxBytes:    DefaultMaxUploadBytes,
		maxRows:     DefaultMaxUploadRows,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

func (s *importService) DetectFormat(ctx context.Context, ownerID string, content []byte) (*domain.DetectionResult, error) {
	parsed, err := statement.ReadCSVLimited(content, s.maxBytes, s.maxRows)
	if err != nil {
		return nil, err
	}

	result, err := s.detector.Detect(ctx, parsed.Headers, parsed.Sample(statement.SampleSize))
	if err != nil {
		return nil, err
	}
	result.RowCount = len(parsed.Rows)

	s.LogInfo(ctx, "Statement format detected",
		slog.String("owner_id", ownerID),
		slog.String("bank_name", result.BankName),
		slog.Bool("from_cache", result.FromCache),
		slog.Int("row_count", result.RowCount))
	return result, nil
}

// ImportStatement runs the whole pipeline for one file. Bad rows are skipped,
// duplicates are counted and uncategorisable rows are stored uncategorised;
// only file-level problems and storage failures return an error.
func (s *importService) ImportStatement(ctx context.Context, req dto.ImportRequest) (*domain.ImportSummary, error) {
	if req.OwnerID == "" {
		return nil, apperrors.NewValidationError("owner is required")
	}
	if req.Mapping.Amount == nil {
		return nil, apperrors.NewValidationError("mapping has no amount representation")
	}

	parsed, err := statement.ReadCSVLimited(req.Content, s.maxBytes, s.maxRows)
	if err != nil {
		return nil, err
	}

	normalised, err := statement.Normalise(parsed.Rows, parsed.Headers, req.Mapping)
	if err != nil {
		return nil, err
	}

	rules, err := s.categoriser.LoadRuleSet(ctx, req.OwnerID, req.OrganisationID)
	if err != nil {
		return nil, err
	}

	uploadID := uuid.NewString()
	logger := s.GetLogger(ctx).With(slog.String("upload_id", uploadID), slog.String("owner_id", req.OwnerID))

	upload := domain.CsvUpload{
		UploadID:         uploadID,
		OwnerID:          req.OwnerID,
		Filename:         req.Filename,
		BankFormat:       bankFormatName(req.Mapping),
		TransactionCount: len(normalised.Transactions),
		ArchiveURI:       s.archiveFile(ctx, req, uploadID),
		CreatedAt:        time.Now(),
	}
	if err := s.uploadRepo.SaveUpload(ctx, upload); err != nil {
		s.LogError(ctx, err, "Failed to save upload", slog.String("upload_id", uploadID))
		return nil, fmt.Errorf("failed to save upload: %w", err)
	}

	summary := &domain.ImportSummary{
		UploadID: uploadID,
		Parsed:   len(normalised.Transactions),
		Skipped:  normalised.SkippedTotal(),
	}

	for _, parsedTxn := range normalised.Transactions {
		if err := s.importOne(ctx, rules, req.OwnerID, uploadID, parsedTxn, summary); err != nil {
			s.LogError(ctx, err, "Import aborted by storage failure", slog.String("upload_id", uploadID), slog.Int("imported", summary.Imported))
			s.recordCount(ctx, uploadID, summary.Imported)
			return summary, fmt.Errorf("failed to import statement: %w", err)
		}
	}

	if err := s.uploadRepo.UpdateTransactionCount(ctx, uploadID, summary.Imported); err != nil {
		s.LogError(ctx, err, "Failed to update upload transaction count", slog.String("upload_id", uploadID))
		return summary, fmt.Errorf("failed to update upload: %w", err)
	}

	logger.Info("Statement imported",
		slog.Int("parsed", summary.Parsed),
		slog.Int("imported", summary.Imported),
		slog.Int("duplicates", summary.Duplicates),
		slog.Int("categorised", summary.Categorised),
		slog.Int("skipped_short_row", normalised.Skipped[statement.SkipShortRow]),
		slog.Int("skipped_empty_description", normalised.Skipped[statement.SkipEmptyDescription]),
		slog.Int("skipped_bad_date", normalised.Skipped[statement.SkipBadDate]),
		slog.Int("skipped_bad_amount", normalised.Skipped[statement.SkipBadAmount]))

	if s.events != nil {
		s.events.Enqueue(req.OwnerID, eventStatementImported, map[string]any{
			"upload_id":   uploadID,
			"bank_format": upload.BankFormat,
			"parsed":      summary.Parsed,
			"imported":    summary.Imported,
			"duplicates":  summary.Duplicates,
			"categorised": summary.Categorised,
			"skipped":     summary.Skipped,
		})
	}
	return summary, nil
}

// importOne stores a single parsed row. A row that already exists, whether
// found up front or rejected by the uniqueness constraint, counts as a
// duplicate.
func (s *importService) importOne(ctx context.Context, rules *domain.RuleSet, ownerID, uploadID string, parsed domain.ParsedTransaction, summary *domain.ImportSummary) error {
	exists, err := s.txnRepo.ExistsByHash(ctx, ownerID, parsed.DedupHash)
	if err != nil {
		return err
	}
	if exists {
		summary.Duplicates++
		return nil
	}

	result := s.categoriser.CategoriseWithRules(ctx, rules, parsed.RawDescription)
	txn := domain.NewTransaction(parsed, ownerID, uploadID, result)

	inserted, err := s.txnRepo.InsertTransaction(ctx, &txn)
	if err != nil {
		return err
	}
	if !inserted {
		summary.Duplicates++
		return nil
	}

	summary.Imported++
	if result != nil {
		summary.Categorised++
	}
	return nil
}

func (s *importService) archiveFile(ctx context.Context, req dto.ImportRequest, uploadID string) *string {
	if s.archive == nil {
		return nil
	}
	uri, err := s.archive.Archive(ctx, req.OwnerID, uploadID, req.Filename, req.Content)
	if err != nil {
		s.LogWarn(ctx, err, "Failed to archive statement file", slog.String("upload_id", uploadID))
		return nil
	}
	return &uri
}

func (s *importService) recordCount(ctx context.Context, uploadID string, imported int) {
	if err := s.uploadRepo.UpdateTransactionCount(ctx, uploadID, imported); err != nil {
		s.LogWarn(ctx, err, "Failed to update upload transaction count", slog.String("upload_id", uploadID))
	}
}

func (s *importService) DeleteUpload(ctx context.Context, ownerID, uploadID string) (int, error) {
	upload, err := s.uploadRepo.FindUploadByID(ctx, uploadID)
	if err != nil {
		return 0, err
	}
	// Another owner's upload is reported as missing.
	if upload.OwnerID != ownerID {
		return 0, apperrors.NewNotFoundError("upload not found")
	}

	deleted, err := s.uploadRepo.DeleteUpload(ctx, ownerID, uploadID)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete upload", slog.String("upload_id", uploadID))
		return 0, err
	}

	s.LogInfo(ctx, "Upload deleted", slog.String("upload_id", uploadID), slog.Int("deleted_transactions", deleted))
	return deleted, nil
}

func (s *importService) ListTransactions(ctx context.Context, ownerID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	txns, next, err := s.txnRepo.ListTransactions(ctx, ownerID, limit, nextToken)
	if err != nil {
		return nil, nil, err
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, next, nil
}

func bankFormatName(m domain.ColumnMapping) string {
	if name := strings.TrimSpace(m.BankName); name != "" {
		return name
	}
	return defaultBankFormat
}
