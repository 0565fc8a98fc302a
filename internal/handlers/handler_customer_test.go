package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/ledgerbooks/books_backend/internal/apperrors"
	"github.com/ledgerbooks/books_backend/internal/core/domain"
	portssvc "github.com/ledgerbooks/books_backend/internal/core/ports/services"
	"github.com/ledgerbooks/books_backend/internal/dto"
	"github.com/ledgerbooks/books_backend/internal/handlers"
	"github.com/ledgerbooks/books_backend/internal/middleware"
	"github.com/ledgerbooks/books_backend/internal/utils"
)

// --- Mock CustomerService ---
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) CreateCustomer(ctx context.Context, organizationID string, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error) {
	args := m.Called(ctx, organizationID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerService) UpdateCustomer(ctx context.Context, organizationID, customerID string, req dto.UpdateCustomerRequest, userID string) (*domain.Customer, error) {
	args := m.Called(ctx, organizationID, customerID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerService) UpdateCustomerStatus(ctx context.Context, organizationID, customerID string, status domain.Status, userID string) error {
	args := m.Called(ctx, organizationID, customerID, status, userID)
	return args.Error(0)
}

func (m *MockCustomerService) GetCustomerByID(ctx context.Context, organizationID, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, organizationID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerService) ListCustomers(ctx context.Context, organizationID string, limit, offset int) ([]domain.Customer, error) {
	args := m.Called(ctx, organizationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerService) GetCustomerTransactions(ctx context.Context, organizationID, customerID string) ([]domain.TrialBalance, error) {
	args := m.Called(ctx, organizationID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalance), args.Error(1)
}

func (m *MockCustomerService) GetCustomerHistory(ctx context.Context, organizationID, customerID string) ([]domain.History, error) {
	args := m.Called(ctx, organizationID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.History), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.CustomerSvcFacade = (*MockCustomerService)(nil)

// --- Test Suite ---
type CustomerHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCustomerService *MockCustomerService
	jwtSecret           string
	organizationID      string
	userID              string
}

// generateTestToken creates a signed access token carrying the test identity.
func (suite *CustomerHandlerTestSuite) generateTestToken() string {
	token, err := utils.GenerateJWT(suite.userID, suite.organizationID, suite.jwtSecret, time.Hour, "books-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *CustomerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.organizationID = uuid.NewString()
	suite.userID = uuid.NewString()

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockCustomerService = new(MockCustomerService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterCustomerRoutes(v1, suite.mockCustomerService)
}

func (suite *CustomerHandlerTestSuite) serve(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	suite.Require().NoError(err)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken())
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *CustomerHandlerTestSuite) TestAddCustomer_Success() {
	reqBody := dto.CreateCustomerRequest{
		CustomerDisplayName: "Acme Traders",
		CustomerType:        "Business",
	}
	expected := &domain.Customer{
		CustomerID:   uuid.NewString(),
		CustomerType: "Business",
	}
	expected.DisplayName = "Acme Traders"
	expected.OrganizationID = suite.organizationID
	expected.Status = domain.StatusActive

	suite.mockCustomerService.On("CreateCustomer",
		mock.Anything,
		suite.organizationID,
		mock.MatchedBy(func(r dto.CreateCustomerRequest) bool {
			return r.CustomerDisplayName == "Acme Traders"
		}),
		suite.userID,
	).Return(expected, nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/add-customer", reqBody)

	suite.Equal(http.StatusCreated, w.Code)

	var got domain.Customer
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(expected.CustomerID, got.CustomerID)
	suite.Equal("Acme Traders", got.DisplayName)

	suite.mockCustomerService.AssertExpectations(suite.T())
}

func (suite *CustomerHandlerTestSuite) TestAddCustomer_Duplicate() {
	reqBody := dto.CreateCustomerRequest{CustomerDisplayName: "Acme Traders"}

	conflict := &apperrors.ConflictError{Messages: []string{"Customer display name already exists"}}
	suite.mockCustomerService.On("CreateCustomer", mock.Anything, suite.organizationID, mock.Anything, suite.userID).
		Return(nil, conflict).Once()

	w := suite.serve(http.MethodPost, "/api/v1/add-customer", reqBody)

	suite.Equal(http.StatusConflict, w.Code)

	var body struct {
		Message []string `json:"message"`
	}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal([]string{"Customer display name already exists"}, body.Message)
}

func (suite *CustomerHandlerTestSuite) TestAddCustomer_MissingDisplayName() {
	w := suite.serve(http.MethodPost, "/api/v1/add-customer", map[string]string{"customerType": "Business"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCustomerService.AssertNotCalled(suite.T(), "CreateCustomer")
}

func (suite *CustomerHandlerTestSuite) TestGetOneCustomer_NotFound() {
	customerID := uuid.NewString()
	suite.mockCustomerService.On("GetCustomerByID", mock.Anything, suite.organizationID, customerID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serve(http.MethodGet, "/api/v1/get-one-customer/"+customerID, nil)

	suite.Equal(http.StatusNotFound, w.Code)

	var body struct {
		Message string `json:"message"`
	}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("Customer not found", body.Message)
}

func (suite *CustomerHandlerTestSuite) TestGetAllCustomers_Success() {
	first := domain.Customer{CustomerID: uuid.NewString()}
	first.DisplayName = "Acme Traders"
	second := domain.Customer{CustomerID: uuid.NewString()}
	second.DisplayName = "Globex"

	suite.mockCustomerService.On("ListCustomers", mock.Anything, suite.organizationID, 20, 0).
		Return([]domain.Customer{first, second}, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/get-all-customer", nil)

	suite.Equal(http.StatusOK, w.Code)

	var got []domain.Customer
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Len(got, 2)
	suite.Equal(first.CustomerID, got[0].CustomerID)
}

func (suite *CustomerHandlerTestSuite) TestUpdateCustomerStatus_Success() {
	customerID := uuid.NewString()
	suite.mockCustomerService.On("UpdateCustomerStatus", mock.Anything, suite.organizationID, customerID, domain.StatusInactive, suite.userID).
		Return(nil).Once()

	w := suite.serve(http.MethodPut, "/api/v1/update-customer-status/"+customerID, dto.UpdateStatusRequest{Status: domain.StatusInactive})

	suite.Equal(http.StatusOK, w.Code)

	var body struct {
		Message string `json:"message"`
	}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("Customer status updated successfully", body.Message)
}

func (suite *CustomerHandlerTestSuite) TestMissingToken_Unauthorized() {
	req, err := http.NewRequest(http.MethodGet, "/api/v1/get-all-customer", nil)
	suite.Require().NoError(err)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockCustomerService.AssertNotCalled(suite.T(), "ListCustomers")
}

// --- Run Test Suite ---
func TestCustomerHandler(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}
