package services_test

import (
	"context"

	"github.com/SscSPs/cashmap/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock BankFormatRepository ---
type MockBankFormatRepository struct {
	mock.Mock
}

func (m *MockBankFormatRepository) FindByFingerprint(ctx context.Context, fingerprint string) (*domain.BankFormat, error) {
	args := m.Called(ctx, fingerprint)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankFormat), args.Error(1)
}

func (m *MockBankFormatRepository) TouchUsage(ctx context.Context, fingerprint string) error {
	return m.Called(ctx, fingerprint).Error(0)
}

func (m *MockBankFormatRepository) UpsertBankFormat(ctx context.Context, fingerprint string, mapping domain.ColumnMapping) error {
	return m.Called(ctx, fingerprint, mapping).Error(0)
}

// --- Mock MappingRuleRepository ---
type MockMappingRuleRepository struct {
	mock.Mock
}

func (m *MockMappingRuleRepository) ListVisibleRules(ctx context.Context, ownerID string, organisationID *string) ([]domain.MappingRule, error) {
	args := m.Called(ctx, ownerID, organisationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MappingRule), args.Error(1)
}

func (m *MockMappingRuleRepository) FindLearnedRule(ctx context.Context, lookupText string) (*domain.MappingRule, error) {
	args := m.Called(ctx, lookupText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MappingRule), args.Error(1)
}

func (m *MockMappingRuleRepository) SaveRule(ctx context.Context, rule domain.MappingRule) error {
	return m.Called(ctx, rule).Error(0)
}

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) ListSystemCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) EnsureCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	args := m.Called(ctx, category)
	if fn, ok := args.Get(0).(func(context.Context, domain.Category) *domain.Category); ok {
		return fn(ctx, category), args.Error(1)
	}
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) ExistsByHash(ctx context.Context, ownerID, dedupHash string) (bool, error) {
	args := m.Called(ctx, ownerID, dedupHash)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, ownerID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, ownerID, limit, nextToken)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return txns, next, args.Error(2)
}

func (m *MockTransactionRepository) InsertTransaction(ctx context.Context, txn *domain.Transaction) (bool, error) {
	args := m.Called(ctx, txn)
	return args.Bool(0), args.Error(1)
}

// --- Mock UploadRepository ---
type MockUploadRepository struct {
	mock.Mock
}

func (m *MockUploadRepository) FindUploadByID(ctx context.Context, uploadID string) (*domain.CsvUpload, error) {
	args := m.Called(ctx, uploadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CsvUpload), args.Error(1)
}

func (m *MockUploadRepository) SaveUpload(ctx context.Context, upload domain.CsvUpload) error {
	return m.Called(ctx, upload).Error(0)
}

func (m *MockUploadRepository) UpdateTransactionCount(ctx context.Context, uploadID string, count int) error {
	return m.Called(ctx, uploadID, count).Error(0)
}

func (m *MockUploadRepository) DeleteUpload(ctx context.Context, ownerID, uploadID string) (int, error) {
	args := m.Called(ctx, ownerID, uploadID)
	return args.Int(0), args.Error(1)
}

// --- Mock BudgetRepository ---
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) ListBudgetItems(ctx context.Context, ownerID string) ([]domain.BudgetItem, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetItem), args.Error(1)
}

func (m *MockBudgetRepository) SaveBudgetItem(ctx context.Context, item domain.BudgetItem) error {
	return m.Called(ctx, item).Error(0)
}

// --- Mock classifiers ---
type MockStructureClassifier struct {
	mock.Mock
}

func (m *MockStructureClassifier) InferStructure(ctx context.Context, headers []string, sampleRows [][]string) ([]byte, error) {
	args := m.Called(ctx, headers, sampleRows)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockCategoryClassifier struct {
	mock.Mock
}

func (m *MockCategoryClassifier) ClassifyCategory(ctx context.Context, description string, categories []domain.Category) ([]byte, error) {
	args := m.Called(ctx, description, categories)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// --- Mock integrations ---
type MockEventTracker struct {
	mock.Mock
}

func (m *MockEventTracker) Enqueue(distinctID string, event string, properties map[string]any) {
	m.Called(distinctID, event, properties)
}
