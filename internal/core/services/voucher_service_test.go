package services_test

import (
	"context"
	"testing"

	"github.com/acctoffice/backoffice_app/internal/apperrors"
	"github.com/acctoffice/backoffice_app/internal/core/domain"
	portssvc "github.com/acctoffice/backoffice_app/internal/core/ports/services"
	"github.com/acctoffice/backoffice_app/internal/core/services"
	"github.com/acctoffice/backoffice_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type VoucherServiceTestSuite struct {
	suite.Suite
	mockVoucherRepo *MockVoucherRepository
	mockVendorRepo  *MockVendorRepository
	service         portssvc.VoucherSvcFacade
}

func (suite *VoucherServiceTestSuite) SetupTest() {
	suite.mockVoucherRepo = new(MockVoucherRepository)
	suite.mockVendorRepo = new(MockVendorRepository)
	suite.service = services.NewVoucherService(suite.mockVoucherRepo, suite.mockVendorRepo)
}

func (suite *VoucherServiceTestSuite) pendingVoucher(vendorID string) *domain.Voucher {
	return &domain.Voucher{
		VoucherID:   uuid.NewString(),
		VendorID:    vendorID,
		Amount:      decimal.NewFromInt(500),
		Date:        "2026-08-15",
		Description: "辦公用品採購",
		Status:      domain.VoucherPending,
	}
}

// --- Test Cases ---

func (suite *VoucherServiceTestSuite) TestCreateVoucher_DefaultsToPending() {
	ctx := context.Background()
	vendorID := uuid.NewString()
	creatorUserID := uuid.NewString()
	req := dto.CreateVoucherRequest{
		VendorID: vendorID,
		Amount:   "1200.50",
		Date:     "2026-08-10",
	}

	suite.mockVendorRepo.On("FindVendorByID", ctx, vendorID).Return(&domain.Vendor{VendorID: vendorID}, nil).Once()
	suite.mockVoucherRepo.On("SaveVoucher", ctx, mock.MatchedBy(func(v domain.Voucher) bool {
		return v.Status == domain.VoucherPending && v.Amount.Equal(decimal.RequireFromString("1200.50"))
	})).Return(nil).Once()

	voucher, err := suite.service.CreateVoucher(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Equal(domain.VoucherPending, voucher.Status)
	suite.NotEmpty(voucher.VoucherID)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_UnknownVendor() {
	ctx := context.Background()
	req := dto.CreateVoucherRequest{VendorID: uuid.NewString(), Amount: "100", Date: "2026-08-10"}

	suite.mockVendorRepo.On("FindVendorByID", ctx, req.VendorID).Return(nil, apperrors.ErrNotFound).Once()

	voucher, err := suite.service.CreateVoucher(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(voucher)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "SaveVoucher", mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestCreateVoucher_BadAmount() {
	ctx := context.Background()
	req := dto.CreateVoucherRequest{VendorID: uuid.NewString(), Amount: "not-a-number", Date: "2026-08-10"}

	voucher, err := suite.service.CreateVoucher(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(voucher)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *VoucherServiceTestSuite) TestUpdateVoucher_TransitionToCompleted() {
	ctx := context.Background()
	existing := suite.pendingVoucher(uuid.NewString())
	status := string(domain.VoucherCompleted)
	req := dto.UpdateVoucherRequest{Status: &status}

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, existing.VoucherID).Return(existing, nil).Once()
	suite.mockVoucherRepo.On("UpdateVoucher", ctx, mock.MatchedBy(func(v domain.Voucher) bool {
		return v.Status == domain.VoucherCompleted
	})).Return(nil).Once()

	voucher, err := suite.service.UpdateVoucher(ctx, existing.VoucherID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.VoucherCompleted, voucher.Status)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VoucherServiceTestSuite) TestUpdateVoucher_CompletedIsFrozen() {
	ctx := context.Background()
	existing := suite.pendingVoucher(uuid.NewString())
	existing.Status = domain.VoucherCompleted
	newAmount := "999.99"
	req := dto.UpdateVoucherRequest{Amount: &newAmount}

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, existing.VoucherID).Return(existing, nil).Once()

	voucher, err := suite.service.UpdateVoucher(ctx, existing.VoucherID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(voucher)
	suite.ErrorIs(err, apperrors.ErrImmutable)
	suite.mockVoucherRepo.AssertNotCalled(suite.T(), "UpdateVoucher", mock.Anything, mock.Anything)
}

func (suite *VoucherServiceTestSuite) TestUpdateVoucher_VoidIsFrozen() {
	ctx := context.Background()
	existing := suite.pendingVoucher(uuid.NewString())
	existing.Status = domain.VoucherVoid
	status := string(domain.VoucherPending)
	req := dto.UpdateVoucherRequest{Status: &status}

	suite.mockVoucherRepo.On("FindVoucherByID", ctx, existing.VoucherID).Return(existing, nil).Once()

	voucher, err := suite.service.UpdateVoucher(ctx, existing.VoucherID, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(voucher)
	suite.ErrorIs(err, apperrors.ErrImmutable)
}

func (suite *VoucherServiceTestSuite) TestGetVouchersByVendorID_EmptyNotNil() {
	ctx := context.Background()
	vendorID := uuid.NewString()

	suite.mockVoucherRepo.On("FindVouchersByVendorID", ctx, vendorID).Return(nil, nil).Once()

	vouchers, err := suite.service.GetVouchersByVendorID(ctx, vendorID)

	suite.Require().NoError(err)
	suite.NotNil(vouchers)
	suite.Empty(vouchers)
}

func TestVoucherServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VoucherServiceTestSuite))
}
