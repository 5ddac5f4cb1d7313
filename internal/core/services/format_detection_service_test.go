package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/cashmap/internal/apperrors"
	"github.com/SscSPs/cashmap/internal/core/domain"
	portssvc "github.com/SscSPs/cashmap/internal/core/ports/services"
	"github.com/SscSPs/cashmap/internal/core/services"
	"github.com/SscSPs/cashmap/internal/utils/statement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const asbMappingJSON = `{
	"dateColumn": "Date",
	"dateFormat": "dd/mm/yyyy",
	"descriptionColumns": ["Payee", "Memo"],
	"amountColumn": "Amount",
	"amountIsSignedNumber": true,
	"bankName": "ASB",
	"currency": "nzd"
}`

var (
	asbHeaders = []string{"Date", "Payee", "Memo", "Amount"}
	asbRows    = [][]string{
		{"03/04/2024", "COUNTDOWN KILBIRNIE", "EFTPOS", "-54.20"},
		{"04/04/2024", "SALARY ACME LTD", "", "2500.00"},
	}
)

type FormatDetectionServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockBankFormatRepository
	mockClassifier *MockStructureClassifier
	service        portssvc.FormatDetectionSvc
}

func (suite *FormatDetectionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBankFormatRepository)
	suite.mockClassifier = new(MockStructureClassifier)
	suite.service = services.NewFormatDetectionService(suite.mockRepo, suite.mockClassifier)
}

func (suite *FormatDetectionServiceTestSuite) TestDetect_CacheMissInfersAndCaches() {
	ctx := context.Background()
	fp := statement.HeaderFingerprint(asbHeaders)

	suite.mockRepo.On("FindByFingerprint", ctx, fp).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockClassifier.On("InferStructure", mock.Anything, asbHeaders, asbRows).Return([]byte(asbMappingJSON), nil).Once()
	suite.mockRepo.On("UpsertBankFormat", ctx, fp, mock.MatchedBy(func(m domain.ColumnMapping) bool {
		return m.BankName == "ASB" && m.Currency == "NZD"
	})).Return(nil).Once()

	result, err := suite.service.Detect(ctx, asbHeaders, asbRows)

	suite.Require().NoError(err)
	suite.False(result.FromCache)
	suite.Equal("ASB", result.BankName)
	suite.Require().Len(result.Preview, 2)
	suite.Equal("COUNTDOWN KILBIRNIE - EFTPOS", result.Preview[0].Description)
	suite.Equal("03/04/2024", result.Preview[0].Date)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockClassifier.AssertExpectations(suite.T())
}

func (suite *FormatDetectionServiceTestSuite) TestDetect_CacheHitSkipsClassifier() {
	ctx := context.Background()
	mapping, err := domain.ParseColumnMapping([]byte(asbMappingJSON))
	suite.Require().NoError(err)

	// Reordered, differently cased headers share the fingerprint.
	headers := []string{"amount", "MEMO", "Date", "Payee"}
	rows := [][]string{{"-54.20", "EFTPOS", "03/04/2024", "COUNTDOWN"}}
	fp := statement.HeaderFingerprint(headers)
	suite.Equal(statement.HeaderFingerprint(asbHeaders), fp)

	suite.mockRepo.On("FindByFingerprint", ctx, fp).Return(&domain.BankFormat{HeaderFingerprint: fp, Mapping: mapping, UsageCount: 3}, nil).Once()
	suite.mockRepo.On("TouchUsage", ctx, fp).Return(nil).Once()

	result, err := suite.service.Detect(ctx, headers, rows)

	suite.Require().NoError(err)
	suite.True(result.FromCache)
	suite.Require().Len(result.Preview, 1)
	suite.Equal("COUNTDOWN - EFTPOS", result.Preview[0].Description)
	suite.mockClassifier.AssertNotCalled(suite.T(), "InferStructure", mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FormatDetectionServiceTestSuite) TestDetect_TouchFailureIsNotFatal() {
	ctx := context.Background()
	mapping, _ := domain.ParseColumnMapping([]byte(asbMappingJSON))
	fp := statement.HeaderFingerprint(asbHeaders)

	suite.mockRepo.On("FindByFingerprint", ctx, fp).Return(&domain.BankFormat{Mapping: mapping}, nil).Once()
	suite.mockRepo.On("TouchUsage", ctx, fp).Return(assert.AnError).Once()

	result, err := suite.service.Detect(ctx, asbHeaders, asbRows)

	suite.Require().NoError(err)
	suite.True(result.FromCache)
}

func (suite *FormatDetectionServiceTestSuite) TestDetect_MalformedClassifierOutput() {
	ctx := context.Background()
	fp := statement.HeaderFingerprint(asbHeaders)

	suite.mockRepo.On("FindByFingerprint", ctx, fp).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockClassifier.On("InferStructure", mock.Anything, asbHeaders, asbRows).Return([]byte(`{"dateColumn": "Date", "confidence": 0.9}`), nil).Once()

	result, err := suite.service.Detect(ctx, asbHeaders, asbRows)

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrClassifierOutput)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpsertBankFormat", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FormatDetectionServiceTestSuite) TestDetect_ClassifierNamesUnknownColumn() {
	ctx := context.Background()
	fp := statement.HeaderFingerprint(asbHeaders)
	answer := `{"dateColumn": "Transaction Date", "dateFormat": "dd/mm/yyyy", "descriptionColumns": ["Payee"], "amountColumn": "Amount", "amountIsSignedNumber": true}`

	suite.mockRepo.On("FindByFingerprint", ctx, fp).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockClassifier.On("InferStructure", mock.Anything, asbHeaders, asbRows).Return([]byte(answer), nil).Once()

	_, err := suite.service.Detect(ctx, asbHeaders, asbRows)

	suite.ErrorIs(err, apperrors.ErrClassifierOutput)
	suite.ErrorIs(err, apperrors.ErrMissingColumn)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpsertBankFormat", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FormatDetectionServiceTestSuite) TestDetect_ClassifierUnavailable() {
	ctx := context.Background()
	fp := statement.HeaderFingerprint(asbHeaders)

	suite.mockRepo.On("FindByFingerprint", ctx, fp).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockClassifier.On("InferStructure", mock.Anything, asbHeaders, asbRows).Return(nil, context.DeadlineExceeded).Once()

	_, err := suite.service.Detect(ctx, asbHeaders, asbRows)

	suite.ErrorIs(err, apperrors.ErrClassifierUnavailable)
	suite.ErrorIs(err, context.DeadlineExceeded)
}

func (suite *FormatDetectionServiceTestSuite) TestDetect_RepoError() {
	ctx := context.Background()
	fp := statement.HeaderFingerprint(asbHeaders)

	suite.mockRepo.On("FindByFingerprint", ctx, fp).Return(nil, assert.AnError).Once()

	_, err := suite.service.Detect(ctx, asbHeaders, asbRows)

	suite.ErrorIs(err, assert.AnError)
	suite.mockClassifier.AssertNotCalled(suite.T(), "InferStructure", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FormatDetectionServiceTestSuite) TestDetect_SampleCappedAtFiveRows() {
	ctx := context.Background()
	fp := statement.HeaderFingerprint(asbHeaders)
	rows := make([][]string, 8)
	for i := range rows {
		rows[i] = []string{"03/04/2024", "SHOP", "", "-1.00"}
	}

	suite.mockRepo.On("FindByFingerprint", ctx, fp).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockClassifier.On("InferStructure", mock.Anything, asbHeaders, rows[:statement.SampleSize]).Return([]byte(asbMappingJSON), nil).Once()
	suite.mockRepo.On("UpsertBankFormat", ctx, fp, mock.Anything).Return(nil).Once()

	result, err := suite.service.Detect(ctx, asbHeaders, rows)

	suite.Require().NoError(err)
	suite.Len(result.Preview, statement.SampleSize)
	suite.mockClassifier.AssertExpectations(suite.T())
}

func TestFormatDetectionService_NoClassifier(t *testing.T) {
	repo := new(MockBankFormatRepository)
	svc := services.NewFormatDetectionService(repo, nil)
	fp := statement.HeaderFingerprint(asbHeaders)
	repo.On("FindByFingerprint", mock.Anything, fp).Return(nil, apperrors.ErrNotFound).Once()

	_, err := svc.Detect(context.Background(), asbHeaders, asbRows)

	assert.ErrorIs(t, err, apperrors.ErrClassifierUnavailable)
}

func TestFormatDetectionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FormatDetectionServiceTestSuite))
}
