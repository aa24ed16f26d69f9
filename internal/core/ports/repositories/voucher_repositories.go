package repositories

import (
	"context"

	"github.com/acctoffice/backoffice_app/internal/core/domain"
)

// VoucherReader defines read operations for voucher data
type VoucherReader interface {
	// FindVoucherByID retrieves a specific voucher by its ID.
	FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error)

	// ListVouchers retrieves vouchers, newest-created first.
	ListVouchers(ctx context.Context, limit int, offset int) ([]domain.Voucher, error)

	// FindVouchersByVendorID retrieves all vouchers referencing a vendor,
	// newest-created first.
	FindVouchersByVendorID(ctx context.Context, vendorID string) ([]domain.Voucher, error)

	// ListCompletedVouchers retrieves every voucher in completed status.
	// Used by reporting aggregation.
	ListCompletedVouchers(ctx context.Context) ([]domain.Voucher, error)
}

// VoucherWriter defines write operations for voucher data
type VoucherWriter interface {
	// SaveVoucher persists a new voucher.
	SaveVoucher(ctx context.Context, voucher domain.Voucher) error

	// UpdateVoucher updates an existing voucher row.
	UpdateVoucher(ctx context.Context, voucher domain.Voucher) error

	// DeleteVoucher removes a voucher row.
	DeleteVoucher(ctx context.Context, voucherID string) error
}

// VoucherRepositoryFacade combines all voucher-related repository interfaces
type VoucherRepositoryFacade interface {
	VoucherReader
	VoucherWriter
}
