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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type VendorServiceTestSuite struct {
	suite.Suite
	mockVendorRepo  *MockVendorRepository
	mockVoucherRepo *MockVoucherRepository
	service         portssvc.VendorSvcFacade
}

func (suite *VendorServiceTestSuite) SetupTest() {
	suite.mockVendorRepo = new(MockVendorRepository)
	suite.mockVoucherRepo = new(MockVoucherRepository)
	suite.service = services.NewVendorService(suite.mockVendorRepo, suite.mockVoucherRepo)
}

// --- Test Cases ---

func (suite *VendorServiceTestSuite) TestCreateVendor_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateVendorRequest{
		Name:          "Acme Supplies",
		TaxID:         "12345678",
		Phone:         "02-1234-5678",
		ContactPerson: "Wang",
	}

	suite.mockVendorRepo.On("SaveVendor", ctx, mock.MatchedBy(func(v domain.Vendor) bool {
		return v.Name == req.Name && v.TaxID == req.TaxID && v.VendorID != "" && v.CreatedBy == creatorUserID && v.LastUpdatedBy == creatorUserID
	})).Return(nil).Once()

	vendor, err := suite.service.CreateVendor(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(vendor)
	suite.Equal(req.Name, vendor.Name)
	suite.Equal(req.TaxID, vendor.TaxID)
	suite.NotEmpty(vendor.VendorID)
	suite.Equal(creatorUserID, vendor.CreatedBy)

	suite.mockVendorRepo.AssertExpectations(suite.T())
}

func (suite *VendorServiceTestSuite) TestCreateVendor_SaveError() {
	ctx := context.Background()
	req := dto.CreateVendorRequest{Name: "Broken", TaxID: "00000000"}
	expectedErr := assert.AnError

	suite.mockVendorRepo.On("SaveVendor", ctx, mock.AnythingOfType("domain.Vendor")).Return(expectedErr).Once()

	vendor, err := suite.service.CreateVendor(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(vendor)
	suite.ErrorIs(err, expectedErr)
	suite.mockVendorRepo.AssertExpectations(suite.T())
}

func (suite *VendorServiceTestSuite) TestGetVendorByID_NotFound() {
	ctx := context.Background()
	vendorID := uuid.NewString()

	suite.mockVendorRepo.On("FindVendorByID", ctx, vendorID).Return(nil, apperrors.ErrNotFound).Once()

	vendor, err := suite.service.GetVendorByID(ctx, vendorID)

	suite.Require().Error(err)
	suite.Nil(vendor)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockVendorRepo.AssertExpectations(suite.T())
}

func (suite *VendorServiceTestSuite) TestUpdateVendor_MergesOnlySuppliedFields() {
	ctx := context.Background()
	vendorID := uuid.NewString()
	updaterUserID := uuid.NewString()
	existing := &domain.Vendor{
		VendorID:    vendorID,
		Name:        "Old Name",
		TaxID:       "12345678",
		Phone:       "02-1111-2222",
		BankAccount: "111-222-333",
	}
	newName := "New Name"
	req := dto.UpdateVendorRequest{Name: &newName}

	suite.mockVendorRepo.On("FindVendorByID", ctx, vendorID).Return(existing, nil).Once()
	suite.mockVendorRepo.On("UpdateVendor", ctx, mock.MatchedBy(func(v domain.Vendor) bool {
		return v.Name == newName && v.TaxID == "12345678" && v.Phone == "02-1111-2222" && v.LastUpdatedBy == updaterUserID
	})).Return(nil).Once()

	vendor, err := suite.service.UpdateVendor(ctx, vendorID, req, updaterUserID)

	suite.Require().NoError(err)
	suite.Equal(newName, vendor.Name)
	suite.Equal("12345678", vendor.TaxID)
	suite.mockVendorRepo.AssertExpectations(suite.T())
}

func (suite *VendorServiceTestSuite) TestDeleteVendor_BlockedByVouchers() {
	ctx := context.Background()
	vendorID := uuid.NewString()
	vouchers := []domain.Voucher{{VoucherID: uuid.NewString(), VendorID: vendorID}}

	suite.mockVoucherRepo.On("FindVouchersByVendorID", ctx, vendorID).Return(vouchers, nil).Once()

	err := suite.service.DeleteVendor(ctx, vendorID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrHasDependents)
	// The vendor row must survive the failed delete.
	suite.mockVendorRepo.AssertNotCalled(suite.T(), "DeleteVendor", mock.Anything, mock.Anything)
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VendorServiceTestSuite) TestDeleteVendor_SucceedsWithoutVouchers() {
	ctx := context.Background()
	vendorID := uuid.NewString()

	suite.mockVoucherRepo.On("FindVouchersByVendorID", ctx, vendorID).Return([]domain.Voucher{}, nil).Once()
	suite.mockVendorRepo.On("DeleteVendor", ctx, vendorID).Return(nil).Once()

	err := suite.service.DeleteVendor(ctx, vendorID, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockVendorRepo.AssertExpectations(suite.T())
	suite.mockVoucherRepo.AssertExpectations(suite.T())
}

func (suite *VendorServiceTestSuite) TestDeleteVendor_NotFound() {
	ctx := context.Background()
	vendorID := uuid.NewString()

	suite.mockVoucherRepo.On("FindVouchersByVendorID", ctx, vendorID).Return([]domain.Voucher{}, nil).Once()
	suite.mockVendorRepo.On("DeleteVendor", ctx, vendorID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteVendor(ctx, vendorID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockVendorRepo.AssertExpectations(suite.T())
}

func TestVendorServiceTestSuite(t *testing.T) {
	suite.Run(t, new(VendorServiceTestSuite))
}
