package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/assogestion/assogestion/internal/apperrors"
	"github.com/assogestion/assogestion/internal/core/domain"
	"github.com/assogestion/assogestion/internal/core/services"
	portssvc "github.com/assogestion/assogestion/internal/core/ports/services"
	"github.com/assogestion/assogestion/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TreasuryServiceTestSuite struct {
	suite.Suite
	mockTreasuryRepo *MockTreasuryRepository
	mockUserRepo     *MockUserRepository
	service          portssvc.TreasurySvcFacade
}

func (suite *TreasuryServiceTestSuite) SetupTest() {
	suite.mockTreasuryRepo = new(MockTreasuryRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewTreasuryService(suite.mockTreasuryRepo, suite.mockUserRepo)
}

func (suite *TreasuryServiceTestSuite) tresorier() *domain.User {
	return &domain.User{
		UserID: uuid.NewString(),
		Role:   domain.RoleTresorier,
	}
}

func (suite *TreasuryServiceTestSuite) membre() *domain.User {
	return &domain.User{
		UserID: uuid.NewString(),
		Role:   domain.RoleMembre,
	}
}

func newTxn(txnType domain.TransactionType, amount string) domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          txnType,
		Amount:        decimal.RequireFromString(amount),
		Description:   "test entry",
	}
}

// --- GetBalance ---

func (suite *TreasuryServiceTestSuite) TestGetBalance_IncomeAddsExpenseSubtracts() {
	ctx := context.Background()
	sbDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	suite.mockTreasuryRepo.On("GetStartingBalance", ctx).Return(&domain.StartingBalance{
		Amount: decimal.RequireFromString("1000.00"),
		Date:   &sbDate,
	}, nil).Once()
	suite.mockTreasuryRepo.On("FindAllTransactions", ctx).Return([]domain.Transaction{
		newTxn(domain.Income, "250.00"),
		newTxn(domain.Expense, "75.50"),
	}, nil).Once()

	summary, err := suite.service.GetBalance(ctx)

	suite.Require().NoError(err)
	suite.True(summary.TransactionsTotal.Equal(decimal.RequireFromString("174.50")),
		"expected 174.50, got %s", summary.TransactionsTotal)
	suite.True(summary.CurrentBalance.Equal(decimal.RequireFromString("1174.50")),
		"expected 1174.50, got %s", summary.CurrentBalance)
	suite.Equal(2, summary.TransactionsCount)
	suite.Require().NotNil(summary.StartingBalanceDate)
	suite.Equal(sbDate, *summary.StartingBalanceDate)
	suite.mockTreasuryRepo.AssertExpectations(suite.T())
}

func (suite *TreasuryServiceTestSuite) TestGetBalance_MissingStartingBalanceReadsAsZero() {
	ctx := context.Background()
	suite.mockTreasuryRepo.On("GetStartingBalance", ctx).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockTreasuryRepo.On("FindAllTransactions", ctx).Return([]domain.Transaction{
		newTxn(domain.Income, "10.00"),
	}, nil).Once()

	summary, err := suite.service.GetBalance(ctx)

	suite.Require().NoError(err)
	suite.True(summary.StartingBalance.IsZero())
	suite.Nil(summary.StartingBalanceDate)
	suite.True(summary.CurrentBalance.Equal(decimal.RequireFromString("10.00")))
}

func (suite *TreasuryServiceTestSuite) TestGetBalance_EmptyLedger() {
	ctx := context.Background()
	suite.mockTreasuryRepo.On("GetStartingBalance", ctx).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockTreasuryRepo.On("FindAllTransactions", ctx).Return([]domain.Transaction{}, nil).Once()

	summary, err := suite.service.GetBalance(ctx)

	suite.Require().NoError(err)
	suite.True(summary.CurrentBalance.IsZero())
	suite.Equal(0, summary.TransactionsCount)
}

func (suite *TreasuryServiceTestSuite) TestGetBalance_LedgerFetchFailureFailsWhole() {
	ctx := context.Background()
	suite.mockTreasuryRepo.On("GetStartingBalance", ctx).Return(&domain.StartingBalance{
		Amount: decimal.RequireFromString("500.00"),
	}, nil).Once()
	suite.mockTreasuryRepo.On("FindAllTransactions", ctx).Return(nil, errors.New("connection reset")).Once()

	summary, err := suite.service.GetBalance(ctx)

	// No partial balance when the ledger cannot be read.
	suite.Require().Error(err)
	suite.Nil(summary)
}

func (suite *TreasuryServiceTestSuite) TestGetBalance_StartingBalanceFetchFailureFailsWhole() {
	ctx := context.Background()
	suite.mockTreasuryRepo.On("GetStartingBalance", ctx).Return(nil, errors.New("connection reset")).Once()

	summary, err := suite.service.GetBalance(ctx)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.mockTreasuryRepo.AssertNotCalled(suite.T(), "FindAllTransactions", ctx)
}

func (suite *TreasuryServiceTestSuite) TestGetBalance_OrderIndependent() {
	ctx := context.Background()
	txns := []domain.Transaction{
		newTxn(domain.Income, "100.10"),
		newTxn(domain.Expense, "40.05"),
		newTxn(domain.Income, "0.95"),
	}
	reversed := []domain.Transaction{txns[2], txns[1], txns[0]}

	suite.mockTreasuryRepo.On("GetStartingBalance", ctx).Return(nil, apperrors.ErrNotFound).Twice()
	suite.mockTreasuryRepo.On("FindAllTransactions", ctx).Return(txns, nil).Once()

	first, err := suite.service.GetBalance(ctx)
	suite.Require().NoError(err)

	suite.mockTreasuryRepo.On("FindAllTransactions", ctx).Return(reversed, nil).Once()
	second, err := suite.service.GetBalance(ctx)
	suite.Require().NoError(err)

	suite.True(first.CurrentBalance.Equal(second.CurrentBalance))
}

// --- CreateTransaction ---

func (suite *TreasuryServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	caller := suite.tresorier()
	suite.mockUserRepo.On("FindUserByID", ctx, caller.UserID).Return(caller, nil).Once()
	suite.mockTreasuryRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	req := dto.CreateTransactionRequest{
		Type:            "income",
		Amount:          decimal.RequireFromString("250.00"),
		Description:     "Buvette fête de quartier",
		TransactionDate: "2025-06-14",
	}

	txn, err := suite.service.CreateTransaction(ctx, req, caller.UserID)

	suite.Require().NoError(err)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(domain.Income, txn.Type)
	suite.Equal(caller.UserID, txn.RecordedBy)
	suite.Equal(2025, txn.TransactionDate.Year())
	suite.mockTreasuryRepo.AssertExpectations(suite.T())
}

func (suite *TreasuryServiceTestSuite) TestCreateTransaction_MembreForbidden() {
	ctx := context.Background()
	caller := suite.membre()
	suite.mockUserRepo.On("FindUserByID", ctx, caller.UserID).Return(caller, nil).Once()

	req := dto.CreateTransactionRequest{
		Type:            "income",
		Amount:          decimal.RequireFromString("10.00"),
		Description:     "nope",
		TransactionDate: "2025-06-14",
	}

	_, err := suite.service.CreateTransaction(ctx, req, caller.UserID)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTreasuryRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TreasuryServiceTestSuite) TestCreateTransaction_UnknownCallerUnauthorized() {
	ctx := context.Background()
	callerID := uuid.NewString()
	suite.mockUserRepo.On("FindUserByID", ctx, callerID).Return(nil, apperrors.ErrNotFound).Once()

	req := dto.CreateTransactionRequest{
		Type:            "expense",
		Amount:          decimal.RequireFromString("10.00"),
		Description:     "nope",
		TransactionDate: "2025-06-14",
	}

	_, err := suite.service.CreateTransaction(ctx, req, callerID)

	suite.Require().ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *TreasuryServiceTestSuite) TestCreateTransaction_RejectsNonPositiveAmount() {
	ctx := context.Background()
	caller := suite.tresorier()
	suite.mockUserRepo.On("FindUserByID", ctx, caller.UserID).Return(caller, nil)

	for _, amount := range []string{"0", "-5.00"} {
		req := dto.CreateTransactionRequest{
			Type:            "expense",
			Amount:          decimal.RequireFromString(amount),
			Description:     "bad amount",
			TransactionDate: "2025-06-14",
		}
		_, err := suite.service.CreateTransaction(ctx, req, caller.UserID)
		suite.Require().ErrorIs(err, apperrors.ErrValidation, "amount %s should be rejected", amount)
	}
}

func (suite *TreasuryServiceTestSuite) TestCreateTransaction_RejectsBadDate() {
	ctx := context.Background()
	caller := suite.tresorier()
	suite.mockUserRepo.On("FindUserByID", ctx, caller.UserID).Return(caller, nil).Once()

	req := dto.CreateTransactionRequest{
		Type:            "income",
		Amount:          decimal.RequireFromString("10.00"),
		Description:     "bad date",
		TransactionDate: "14/06/2025",
	}

	_, err := suite.service.CreateTransaction(ctx, req, caller.UserID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

// --- SetStartingBalance ---

func (suite *TreasuryServiceTestSuite) TestSetStartingBalance_UpsertsSingleton() {
	ctx := context.Background()
	caller := suite.tresorier()
	suite.mockUserRepo.On("FindUserByID", ctx, caller.UserID).Return(caller, nil).Once()
	suite.mockTreasuryRepo.On("UpsertStartingBalance", ctx, mock.MatchedBy(func(sb domain.StartingBalance) bool {
		return sb.Amount.Equal(decimal.RequireFromString("1000.00")) && sb.UpdatedBy == caller.UserID
	})).Return(nil).Once()

	sb, err := suite.service.SetStartingBalance(ctx, dto.SetStartingBalanceRequest{
		StartingBalance: decimal.RequireFromString("1000.00"),
	}, caller.UserID)

	suite.Require().NoError(err)
	suite.True(sb.Amount.Equal(decimal.RequireFromString("1000.00")))
	suite.mockTreasuryRepo.AssertExpectations(suite.T())
}

func (suite *TreasuryServiceTestSuite) TestSetStartingBalance_MembreForbidden() {
	ctx := context.Background()
	caller := suite.membre()
	suite.mockUserRepo.On("FindUserByID", ctx, caller.UserID).Return(caller, nil).Once()

	_, err := suite.service.SetStartingBalance(ctx, dto.SetStartingBalanceRequest{
		StartingBalance: decimal.RequireFromString("1000.00"),
	}, caller.UserID)

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTreasuryRepo.AssertNotCalled(suite.T(), "UpsertStartingBalance", mock.Anything, mock.Anything)
}

func (suite *TreasuryServiceTestSuite) TestSetStartingBalance_AdminOverride() {
	ctx := context.Background()
	admin := &domain.User{UserID: uuid.NewString(), Role: domain.RoleMembre, IsAdmin: true}
	suite.mockUserRepo.On("FindUserByID", ctx, admin.UserID).Return(admin, nil).Once()
	suite.mockTreasuryRepo.On("UpsertStartingBalance", ctx, mock.AnythingOfType("domain.StartingBalance")).Return(nil).Once()

	_, err := suite.service.SetStartingBalance(ctx, dto.SetStartingBalanceRequest{
		StartingBalance: decimal.RequireFromString("42.00"),
	}, admin.UserID)

	suite.Require().NoError(err)
}

func TestTreasuryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TreasuryServiceTestSuite))
}
