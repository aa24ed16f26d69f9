package services

import (
	"context"
	"errors"
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

// VoucherService provides business logic for the expense voucher workflow.
type VoucherService struct {
	BaseService
	voucherRepo portsrepo.VoucherRepositoryFacade
	vendorRepo  portsrepo.VendorReader
}

// NewVoucherService creates a new VoucherService.
func NewVoucherService(voucherRepo portsrepo.VoucherRepositoryFacade, vendorRepo portsrepo.VendorReader) *VoucherService {
	return &VoucherService{voucherRepo: voucherRepo, vendorRepo: vendorRepo}
}

var _ portssvc.VoucherSvcFacade = (*VoucherService)(nil)

func (s *VoucherService) CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest, creatorUserID string) (*domain.Voucher, error) {
	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		return nil, err
	}

	// Verify the vendor reference up front for a clear validation error.
	if _, err := s.vendorRepo.FindVendorByID(ctx, req.VendorID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: vendor '%s' not found", apperrors.ErrValidation, req.VendorID)
		}
		return nil, fmt.Errorf("failed to validate voucher vendor: %w", err)
	}

	status := domain.VoucherPending
	if req.Status != "" {
		status = domain.VoucherStatus(req.Status)
	}

	now := time.Now()
	voucher := domain.Voucher{
		VoucherID:   uuid.NewString(),
		VendorID:    req.VendorID,
		Amount:      amount,
		Date:        req.Date,
		Description: req.Description,
		Status:      status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.voucherRepo.SaveVoucher(ctx, voucher); err != nil {
		s.LogError(ctx, err, "failed to create voucher")
		return nil, fmt.Errorf("failed to create voucher in service: %w", err)
	}

	s.LogInfo(ctx, "voucher created", slog.String("voucher_id", voucher.VoucherID), slog.String("status", string(voucher.Status)))
	return &voucher, nil
}

func (s *VoucherService) GetVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return nil, fmt.Errorf("failed to get voucher by ID in service: %w", err)
	}
	return voucher, nil
}

func (s *VoucherService) ListVouchers(ctx context.Context, limit int, offset int) ([]domain.Voucher, error) {
	vouchers, err := s.voucherRepo.ListVouchers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list vouchers in service: %w", err)
	}
	if vouchers == nil {
		return []domain.Voucher{}, nil
	}
	return vouchers, nil
}

func (s *VoucherService) GetVouchersByVendorID(ctx context.Context, vendorID string) ([]domain.Voucher, error) {
	vouchers, err := s.voucherRepo.FindVouchersByVendorID(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vouchers by vendor in service: %w", err)
	}
	if vouchers == nil {
		return []domain.Voucher{}, nil
	}
	return vouchers, nil
}

// UpdateVoucher merges the patch into the stored voucher. Once the status
// has left pending the record is frozen: no field edits, no further
// transitions.
func (s *VoucherService) UpdateVoucher(ctx context.Context, voucherID string, req dto.UpdateVoucherRequest, updaterUserID string) (*domain.Voucher, error) {
	voucher, err := s.voucherRepo.FindVoucherByID(ctx, voucherID)
	if err != nil {
		return nil, fmt.Errorf("failed to find voucher for update: %w", err)
	}

	if voucher.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: voucher %s is %s and can no longer change", apperrors.ErrImmutable, voucherID, voucher.Status)
	}

	if req.VendorID != nil {
		if _, err := s.vendorRepo.FindVendorByID(ctx, *req.VendorID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: vendor '%s' not found", apperrors.ErrValidation, *req.VendorID)
			}
			return nil, fmt.Errorf("failed to validate voucher vendor: %w", err)
		}
		voucher.VendorID = *req.VendorID
	}
	if req.Amount != nil {
		amount, err := parseAmount("amount", *req.Amount)
		if err != nil {
			return nil, err
		}
		voucher.Amount = amount
	}
	if req.Date != nil {
		voucher.Date = *req.Date
	}
	if req.Description != nil {
		voucher.Description = *req.Description
	}
	if req.Status != nil {
		next := domain.VoucherStatus(*req.Status)
		if !next.IsValid() {
			return nil, fmt.Errorf("%w: unknown voucher status '%s'", apperrors.ErrValidation, *req.Status)
		}
		voucher.Status = next
	}
	voucher.LastUpdatedAt = time.Now()
	voucher.LastUpdatedBy = updaterUserID

	if err := s.voucherRepo.UpdateVoucher(ctx, *voucher); err != nil {
		s.LogError(ctx, err, "failed to update voucher", slog.String("voucher_id", voucherID))
		return nil, fmt.Errorf("failed to update voucher in service: %w", err)
	}

	return voucher, nil
}

func (s *VoucherService) DeleteVoucher(ctx context.Context, voucherID string, deleterUserID string) error {
	if err := s.voucherRepo.DeleteVoucher(ctx, voucherID); err != nil {
		return fmt.Errorf("failed to delete voucher in service: %w", err)
	}
	s.LogInfo(ctx, "voucher deleted", slog.String("voucher_id", voucherID), slog.String("deleted_by", deleterUserID))
	return nil
}
