package services

import (
	"context"
	"fmt"
	"time"

	"github.com/acctoffice/backoffice_app/internal/apperrors"
	"github.com/acctoffice/backoffice_app/internal/core/domain"
	portsrepo "github.com/acctoffice/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/acctoffice/backoffice_app/internal/core/ports/services"
	"github.com/acctoffice/backoffice_app/internal/dto"
	"github.com/google/uuid"
	"log/slog"
)

// VendorService provides business logic for vendor management.
type VendorService struct {
	BaseService
	vendorRepo  portsrepo.VendorRepositoryFacade
	voucherRepo portsrepo.VoucherReader
}

// NewVendorService creates a new VendorService.
// The voucher reader backs the delete guard.
func NewVendorService(vendorRepo portsrepo.VendorRepositoryFacade, voucherRepo portsrepo.VoucherReader) *VendorService {
	return &VendorService{vendorRepo: vendorRepo, voucherRepo: voucherRepo}
}

var _ portssvc.VendorSvcFacade = (*VendorService)(nil)

func (s *VendorService) CreateVendor(ctx context.Context, req dto.CreateVendorRequest, creatorUserID string) (*domain.Vendor, error) {
	now := time.Now()
	vendor := domain.Vendor{
		VendorID:      uuid.NewString(),
		Name:          req.Name,
		TaxID:         req.TaxID,
		Phone:         req.Phone,
		BankAccount:   req.BankAccount,
		ContactPerson: req.ContactPerson,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.vendorRepo.SaveVendor(ctx, vendor); err != nil {
		s.LogError(ctx, err, "failed to create vendor")
		return nil, fmt.Errorf("failed to create vendor in service: %w", err)
	}

	s.LogInfo(ctx, "vendor created", slog.String("vendor_id", vendor.VendorID))
	return &vendor, nil
}

func (s *VendorService) GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor by ID in service: %w", err)
	}
	return vendor, nil
}

func (s *VendorService) ListVendors(ctx context.Context, limit int, offset int) ([]domain.Vendor, error) {
	vendors, err := s.vendorRepo.ListVendors(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors in service: %w", err)
	}
	if vendors == nil {
		return []domain.Vendor{}, nil
	}
	return vendors, nil
}

func (s *VendorService) UpdateVendor(ctx context.Context, vendorID string, req dto.UpdateVendorRequest, updaterUserID string) (*domain.Vendor, error) {
	vendor, err := s.vendorRepo.FindVendorByID(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to find vendor for update: %w", err)
	}

	if req.Name != nil {
		vendor.Name = *req.Name
	}
	if req.TaxID != nil {
		vendor.TaxID = *req.TaxID
	}
	if req.Phone != nil {
		vendor.Phone = *req.Phone
	}
	if req.BankAccount != nil {
		vendor.BankAccount = *req.BankAccount
	}
	if req.ContactPerson != nil {
		vendor.ContactPerson = *req.ContactPerson
	}
	vendor.LastUpdatedAt = time.Now()
	vendor.LastUpdatedBy = updaterUserID

	if err := s.vendorRepo.UpdateVendor(ctx, *vendor); err != nil {
		s.LogError(ctx, err, "failed to update vendor", slog.String("vendor_id", vendorID))
		return nil, fmt.Errorf("failed to update vendor in service: %w", err)
	}
	return vendor, nil
}

// DeleteVendor removes a vendor unless vouchers still reference it. The
// lookup keeps the common case friendly; the FK constraint on vouchers
// closes the race with a concurrent voucher insert.
func (s *VendorService) DeleteVendor(ctx context.Context, vendorID string, deleterUserID string) error {
	vouchers, err := s.voucherRepo.FindVouchersByVendorID(ctx, vendorID)
	if err != nil {
		return fmt.Errorf("failed to check vendor vouchers before delete: %w", err)
	}
	if len(vouchers) > 0 {
		return fmt.Errorf("%w: vendor %s is referenced by %d voucher(s)", apperrors.ErrHasDependents, vendorID, len(vouchers))
	}

	if err := s.vendorRepo.DeleteVendor(ctx, vendorID); err != nil {
		return fmt.Errorf("failed to delete vendor in service: %w", err)
	}

	s.LogInfo(ctx, "vendor deleted", slog.String("vendor_id", vendorID), slog.String("deleted_by", deleterUserID))
	return nil
}
