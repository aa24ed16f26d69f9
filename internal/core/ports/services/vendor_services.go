package services

import (
	"context"

	"github.com/acctoffice/backoffice_app/internal/core/domain"
	"github.com/acctoffice/backoffice_app/internal/dto"
)

// VendorReaderSvc defines read operations for vendor data
type VendorReaderSvc interface {
	// GetVendorByID retrieves a specific vendor by its ID.
	GetVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error)

	// ListVendors retrieves vendors, newest-created first.
	ListVendors(ctx context.Context, limit int, offset int) ([]domain.Vendor, error)
}

// VendorWriterSvc defines write operations for vendor data
type VendorWriterSvc interface {
	// CreateVendor persists a new vendor.
	CreateVendor(ctx context.Context, req dto.CreateVendorRequest, creatorUserID string) (*domain.Vendor, error)

	// UpdateVendor merges the supplied fields into an existing vendor.
	UpdateVendor(ctx context.Context, vendorID string, req dto.UpdateVendorRequest, updaterUserID string) (*domain.Vendor, error)

	// DeleteVendor removes a vendor. Fails with apperrors.ErrHasDependents
	// while any voucher still references the vendor.
	DeleteVendor(ctx context.Context, vendorID string, deleterUserID string) error
}

// VendorSvcFacade combines all vendor-related service interfaces
type VendorSvcFacade interface {
	VendorReaderSvc
	VendorWriterSvc
}
