package repositories

import (
	"context"

	"github.com/acctoffice/backoffice_app/internal/core/domain"
)

// VendorReader defines read operations for vendor data
type VendorReader interface {
	// FindVendorByID retrieves a specific vendor by its ID.
	FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)

	// ListVendors retrieves vendors, newest-created first.
	ListVendors(ctx context.Context, limit int, offset int) ([]domain.Vendor, error)
}

// VendorWriter defines write operations for vendor data
type VendorWriter interface {
	// SaveVendor persists a new vendor.
	SaveVendor(ctx context.Context, vendor domain.Vendor) error

	// UpdateVendor updates an existing vendor row.
	UpdateVendor(ctx context.Context, vendor domain.Vendor) error

	// DeleteVendor removes a vendor row. Returns apperrors.ErrNotFound when no
	// row matched and apperrors.ErrHasDependents when vouchers still reference it.
	DeleteVendor(ctx context.Context, vendorID string) error
}

// VendorRepositoryFacade combines all vendor-related repository interfaces
type VendorRepositoryFacade interface {
	VendorReader
	VendorWriter
}
