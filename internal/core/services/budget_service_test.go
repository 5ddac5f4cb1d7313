package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/cashmap/internal/apperrors"
	"github.com/SscSPs/cashmap/internal/core/domain"
	portssvc "github.com/SscSPs/cashmap/internal/core/ports/services"
	"github.com/SscSPs/cashmap/internal/core/services"
	"github.com/SscSPs/cashmap/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BudgetServiceTestSuite struct {
	suite.Suite
	mockRepo *MockBudgetRepository
	service  portssvc.BudgetSvcFacade
	ownerID  string
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBudgetRepository)
	suite.service = services.NewBudgetService(suite.mockRepo)
	suite.ownerID = "user_1"
}

func (suite *BudgetServiceTestSuite) TestCreateBudgetItem_Success() {
	ctx := context.Background()
	req := dto.CreateBudgetItemRequest{Section: "income", Label: " Salary ", Amount: decimal.NewFromInt(3000), Frequency: "monthly"}

	suite.mockRepo.On("SaveBudgetItem", ctx, mock.MatchedBy(func(i domain.BudgetItem) bool {
		return i.Section == domain.SectionIncome && i.Frequency == domain.FrequencyMonthly &&
			i.Label == "Salary" && i.OwnerID == suite.ownerID && i.CreatedBy == suite.ownerID
	})).Return(nil).Once()

	item, err := suite.service.CreateBudgetItem(ctx, req, suite.ownerID)

	suite.Require().NoError(err)
	suite.NotEmpty(item.BudgetItemID)
	suite.True(item.Amount.Equal(decimal.NewFromInt(3000)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateBudgetItem_Validation() {
	tests := []struct {
		name string
		req  dto.CreateBudgetItemRequest
	}{
		{"unknown section", dto.CreateBudgetItemRequest{Section: "SAVINGS", Label: "x", Amount: decimal.NewFromInt(1), Frequency: "WEEKLY"}},
		{"unknown frequency", dto.CreateBudgetItemRequest{Section: "INCOME", Label: "x", Amount: decimal.NewFromInt(1), Frequency: "DAILY"}},
		{"blank label", dto.CreateBudgetItemRequest{Section: "INCOME", Label: "  ", Amount: decimal.NewFromInt(1), Frequency: "WEEKLY"}},
		{"negative amount", dto.CreateBudgetItemRequest{Section: "INCOME", Label: "x", Amount: decimal.NewFromInt(-1), Frequency: "WEEKLY"}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			item, err := suite.service.CreateBudgetItem(context.Background(), tt.req, suite.ownerID)
			suite.Nil(item)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveBudgetItem", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestGetWaterfall_ClampsDiscretionary() {
	ctx := context.Background()
	items := []domain.BudgetItem{
		{Section: domain.SectionIncome, Label: "Salary", Amount: decimal.NewFromInt(3000), Frequency: domain.FrequencyFortnightly},
		{Section: domain.SectionFixedCommitments, Label: "Rent", Amount: decimal.NewFromInt(1200), Frequency: domain.FrequencyFortnightly},
		{Section: domain.SectionLivingCosts, Label: "Food", Amount: decimal.NewFromInt(1000), Frequency: domain.FrequencyFortnightly},
		{Section: domain.SectionOneOffCosts, Label: "Car", Amount: decimal.NewFromInt(900), Frequency: domain.FrequencyFortnightly},
	}
	suite.mockRepo.On("ListBudgetItems", ctx, suite.ownerID).Return(items, nil).Once()

	waterfall, err := suite.service.GetWaterfall(ctx, suite.ownerID, domain.PeriodFortnightly)

	suite.Require().NoError(err)
	suite.Equal(domain.PeriodFortnightly, waterfall.Period)
	suite.Len(waterfall.Sections, 5)
	suite.True(waterfall.Discretionary.IsZero())
	suite.True(waterfall.OneOffCosts.Equal(decimal.NewFromInt(900)))
}

func (suite *BudgetServiceTestSuite) TestGetWaterfall_WeeklyFromMonthly() {
	ctx := context.Background()
	items := []domain.BudgetItem{
		{Section: domain.SectionIncome, Label: "Salary", Amount: decimal.NewFromInt(5200), Frequency: domain.FrequencyMonthly},
	}
	suite.mockRepo.On("ListBudgetItems", ctx, suite.ownerID).Return(items, nil).Once()

	waterfall, err := suite.service.GetWaterfall(ctx, suite.ownerID, domain.PeriodWeekly)

	suite.Require().NoError(err)
	// 5200 monthly = 62400 a year = 1200 a week
	suite.InDelta(1200.0, waterfall.Income.InexactFloat64(), 1e-6)
	suite.InDelta(1200.0, waterfall.Discretionary.InexactFloat64(), 1e-6)
}

func (suite *BudgetServiceTestSuite) TestGetWaterfall_UnknownPeriod() {
	_, err := suite.service.GetWaterfall(context.Background(), suite.ownerID, domain.BudgetPeriod("DAILY"))

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BudgetServiceTestSuite) TestListBudgetItems_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("ListBudgetItems", ctx, suite.ownerID).Return(nil, assert.AnError).Once()

	items, err := suite.service.ListBudgetItems(ctx, suite.ownerID)

	suite.Nil(items)
	suite.ErrorIs(err, assert.AnError)
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
