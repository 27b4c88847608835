package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/assogestion/assogestion/internal/apperrors"
	"github.com/assogestion/assogestion/internal/core/domain"
	portssvc "github.com/assogestion/assogestion/internal/core/ports/services"
	"github.com/assogestion/assogestion/internal/dto"
	"github.com/assogestion/assogestion/internal/handlers"
	"github.com/assogestion/assogestion/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret-key-for-handler-tests"

// MockTreasuryService mocks the treasury facade behind the HTTP layer.
type MockTreasuryService struct {
	mock.Mock
}

var _ portssvc.TreasurySvcFacade = (*MockTreasuryService)(nil)

func (m *MockTreasuryService) GetBalance(ctx context.Context) (*domain.BalanceSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceSummary), args.Error(1)
}

func (m *MockTreasuryService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTreasuryService) ListTransactions(ctx context.Context, limit, offset int) ([]domain.Transaction, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTreasuryService) ListAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTreasuryService) GetStartingBalance(ctx context.Context) (*domain.StartingBalance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StartingBalance), args.Error(1)
}

func (m *MockTreasuryService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, callerUserID string) (*domain.Transaction, error) {
	args := m.Called(ctx, req, callerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTreasuryService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, callerUserID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req, callerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTreasuryService) DeleteTransaction(ctx context.Context, transactionID string, callerUserID string) error {
	args := m.Called(ctx, transactionID, callerUserID)
	return args.Error(0)
}

func (m *MockTreasuryService) SetStartingBalance(ctx context.Context, req dto.SetStartingBalanceRequest, callerUserID string) (*domain.StartingBalance, error) {
	args := m.Called(ctx, req, callerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StartingBalance), args.Error(1)
}

type TreasuryHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTreasuryService
	callerID    string
}

func (suite *TreasuryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockService = new(MockTreasuryService)
	suite.callerID = uuid.NewString()

	cfg := &config.Config{
		JWTSecret:     testJWTSecret,
		IsProduction:  true,
		AuthRateLimit: "10-M",
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Treasury: suite.mockService,
	})
}

// generateTestToken signs a short-lived HS256 token the auth middleware accepts.
func generateTestToken(t *testing.T, userID string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

func (suite *TreasuryHandlerTestSuite) doRequest(method, path, body string, authenticated bool) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+generateTestToken(suite.T(), suite.callerID))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TreasuryHandlerTestSuite) TestGetBalance_Success() {
	date := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	summary := &domain.BalanceSummary{
		StartingBalance:     decimal.RequireFromString("1000.00"),
		StartingBalanceDate: &date,
		TransactionsTotal:   decimal.RequireFromString("174.50"),
		CurrentBalance:      decimal.RequireFromString("1174.50"),
		TransactionsCount:   2,
		CalculatedAt:        time.Now(),
	}
	suite.mockService.On("GetBalance", mock.Anything).Return(summary, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/treasury/balance", "", true)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"currentBalance":"1174.5"`)
	suite.Contains(w.Body.String(), `"transactionsTotal":"174.5"`)
	suite.Contains(w.Body.String(), `"transactionsCount":2`)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TreasuryHandlerTestSuite) TestGetBalance_NoTokenUnauthorized() {
	w := suite.doRequest(http.MethodGet, "/api/v1/treasury/balance", "", false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "GetBalance", mock.Anything)
}

func (suite *TreasuryHandlerTestSuite) TestGetBalance_GarbageTokenUnauthorized() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/treasury/balance", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *TreasuryHandlerTestSuite) TestCreateTransaction_ForbiddenRole() {
	suite.mockService.On("CreateTransaction", mock.Anything, mock.AnythingOfType("dto.CreateTransactionRequest"), suite.callerID).
		Return(nil, apperrors.ErrForbidden).Once()

	body := `{"type":"expense","amount":"42.00","description":"Location salle","transactionDate":"2026-02-01"}`
	w := suite.doRequest(http.MethodPost, "/api/v1/treasury/transactions", body, true)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Contains(w.Body.String(), "Forbidden")
}

func (suite *TreasuryHandlerTestSuite) TestCreateTransaction_InvalidBodyRejected() {
	// "type" outside the income/expense enum fails binding before the service.
	body := `{"type":"transfer","amount":"42.00","description":"x","transactionDate":"2026-02-01"}`
	w := suite.doRequest(http.MethodPost, "/api/v1/treasury/transactions", body, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TreasuryHandlerTestSuite) TestCreateTransaction_Success() {
	now := time.Now()
	txn := &domain.Transaction{
		TransactionID:   uuid.NewString(),
		Type:            domain.Expense,
		Amount:          decimal.RequireFromString("42.00"),
		Description:     "Location salle",
		TransactionDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		RecordedBy:      suite.callerID,
		AuditFields:     domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
	}
	suite.mockService.On("CreateTransaction", mock.Anything, mock.AnythingOfType("dto.CreateTransactionRequest"), suite.callerID).
		Return(txn, nil).Once()

	body := `{"type":"expense","amount":"42.00","description":"Location salle","transactionDate":"2026-02-01"}`
	w := suite.doRequest(http.MethodPost, "/api/v1/treasury/transactions", body, true)

	suite.Equal(http.StatusCreated, w.Code)
	suite.Contains(w.Body.String(), txn.TransactionID)
}

func (suite *TreasuryHandlerTestSuite) TestDeleteTransaction_NotFound() {
	suite.mockService.On("DeleteTransaction", mock.Anything, "missing-id", suite.callerID).
		Return(apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/treasury/transactions/missing-id", "", true)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestTreasuryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TreasuryHandlerTestSuite))
}
