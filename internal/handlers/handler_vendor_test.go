package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/acctoffice/backoffice_app/internal/apperrors"
	"github.com/acctoffice/backoffice_app/internal/core/domain"
	portssvc "github.com/acctoffice/backoffice_app/internal/core/ports/services"
	"github.com/acctoffice/backoffice_app/internal/dto"
	"github.com/acctoffice/backoffice_app/internal/handlers"
	"github.com/acctoffice/backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock VendorService ---
type MockVendorService struct {
	mock.Mock
}

func (m *MockVendorService) CreateVendor(ctx context.Context, req dto.CreateVendorRequest, creatorUserID string) (*domain.Vendor, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}
func (m *MockVendorService) GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}
func (m *MockVendorService) ListVendors(ctx context.Context, limit int, offset int) ([]domain.Vendor, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vendor), args.Error(1)
}
func (m *MockVendorService) UpdateVendor(ctx context.Context, vendorID string, req dto.UpdateVendorRequest, updaterUserID string) (*domain.Vendor, error) {
	args := m.Called(ctx, vendorID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vendor), args.Error(1)
}
func (m *MockVendorService) DeleteVendor(ctx context.Context, vendorID string, deleterUserID string) error {
	args := m.Called(ctx, vendorID, deleterUserID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.VendorSvcFacade = (*MockVendorService)(nil)

// --- Test Suite ---
type VendorHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockVendorService *MockVendorService
	jwtSecret         string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *VendorHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "backoffice-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tsignedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return tsignedString
}

func (suite *VendorHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockVendorService = new(MockVendorService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterVendorRoutes(v1, suite.mockVendorService)
}

func (suite *VendorHandlerTestSuite) authedRequest(method, url string, body []byte, userID string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *VendorHandlerTestSuite) TestCreateVendor_Success() {
	userID := uuid.NewString()
	reqBody := dto.CreateVendorRequest{Name: "Acme Supplies", TaxID: "12345678"}
	created := &domain.Vendor{VendorID: uuid.NewString(), Name: reqBody.Name, TaxID: reqBody.TaxID}

	suite.mockVendorService.On("CreateVendor",
		mock.AnythingOfType("*context.valueCtx"),
		mock.MatchedBy(func(r dto.CreateVendorRequest) bool { return r.Name == reqBody.Name }),
		userID,
	).Return(created, nil).Once()

	body, _ := json.Marshal(reqBody)
	w := suite.authedRequest(http.MethodPost, "/api/v1/vendors", body, userID)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.VendorResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.VendorID, resp.VendorID)
	suite.mockVendorService.AssertExpectations(suite.T())
}

func (suite *VendorHandlerTestSuite) TestCreateVendor_MissingName() {
	userID := uuid.NewString()
	body := []byte(`{"taxID":"12345678"}`)

	w := suite.authedRequest(http.MethodPost, "/api/v1/vendors", body, userID)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockVendorService.AssertNotCalled(suite.T(), "CreateVendor")
}

func (suite *VendorHandlerTestSuite) TestGetVendorByID_NotFound() {
	userID := uuid.NewString()
	vendorID := uuid.NewString()

	suite.mockVendorService.On("GetVendorByID",
		mock.AnythingOfType("*context.valueCtx"), vendorID,
	).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.authedRequest(http.MethodGet, fmt.Sprintf("/api/v1/vendors/%s", vendorID), nil, userID)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockVendorService.AssertExpectations(suite.T())
}

func (suite *VendorHandlerTestSuite) TestDeleteVendor_ConflictWhenReferenced() {
	userID := uuid.NewString()
	vendorID := uuid.NewString()

	suite.mockVendorService.On("DeleteVendor",
		mock.AnythingOfType("*context.valueCtx"), vendorID, userID,
	).Return(fmt.Errorf("blocked: %w", apperrors.ErrHasDependents)).Once()

	w := suite.authedRequest(http.MethodDelete, fmt.Sprintf("/api/v1/vendors/%s", vendorID), nil, userID)

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockVendorService.AssertExpectations(suite.T())
}

func (suite *VendorHandlerTestSuite) TestDeleteVendor_Success() {
	userID := uuid.NewString()
	vendorID := uuid.NewString()

	suite.mockVendorService.On("DeleteVendor",
		mock.AnythingOfType("*context.valueCtx"), vendorID, userID,
	).Return(nil).Once()

	w := suite.authedRequest(http.MethodDelete, fmt.Sprintf("/api/v1/vendors/%s", vendorID), nil, userID)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockVendorService.AssertExpectations(suite.T())
}

func (suite *VendorHandlerTestSuite) TestListVendors_RequiresAuth() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/vendors", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockVendorService.AssertNotCalled(suite.T(), "ListVendors")
}

// --- Run Test Suite ---
func TestVendorHandler(t *testing.T) {
	suite.Run(t, new(VendorHandlerTestSuite))
}
