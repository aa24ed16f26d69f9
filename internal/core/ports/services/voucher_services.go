package services

import (
	"context"

	"github.com/acctoffice/backoffice_app/internal/core/domain"
	"github.com/acctoffice/backoffice_app/internal/dto"
)

// VoucherReaderSvc defines read operations for voucher data
type VoucherReaderSvc interface {
	// GetVoucherByID retrieves a specific voucher by its ID.
	GetVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error)

	// ListVouchers retrieves vouchers, newest-created first.
	ListVouchers(ctx context.Context, limit int, offset int) ([]domain.Voucher, error)

	// GetVouchersByVendorID retrieves all vouchers referencing a vendor.
	GetVouchersByVendorID(ctx context.Context, vendorID string) ([]domain.Voucher, error)
}

// VoucherWriterSvc defines write operations for voucher data
type VoucherWriterSvc interface {
	// CreateVoucher persists a new voucher, defaulting to pending status.
	CreateVoucher(ctx context.Context, req dto.CreateVoucherRequest, creatorUserID string) (*domain.Voucher, error)

	// UpdateVoucher merges the supplied fields into an existing voucher.
	// Amount, vendor and date edits and status transitions are accepted
	// only while the voucher is pending.
	UpdateVoucher(ctx context.Context, voucherID string, req dto.UpdateVoucherRequest, updaterUserID string) (*domain.Voucher, error)

	// DeleteVoucher removes a voucher.
	DeleteVoucher(ctx context.Context, voucherID string, deleterUserID string) error
}

// VoucherSvcFacade combines all voucher-related service interfaces
type VoucherSvcFacade interface {
	VoucherReaderSvc
	VoucherWriterSvc
}
