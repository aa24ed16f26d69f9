package dto

import (
	"time"

	"github.com/acctoffice/backoffice_app/internal/core/domain"
)

// CreateVendorRequest defines the data needed to create a new vendor.
type CreateVendorRequest struct {
	Name          string `json:"name" binding:"required"`
	TaxID         string `json:"taxID" binding:"required"`
	Phone         string `json:"phone"`
	BankAccount   string `json:"bankAccount"`
	ContactPerson string `json:"contactPerson"`
}

// UpdateVendorRequest defines the patch for an existing vendor.
// Only supplied fields are merged into the stored record.
type UpdateVendorRequest struct {
	Name          *string `json:"name,omitempty"`
	TaxID         *string `json:"taxID,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	BankAccount   *string `json:"bankAccount,omitempty"`
	ContactPerson *string `json:"contactPerson,omitempty"`
}

// VendorResponse defines the data returned for a vendor.
type VendorResponse struct {
	VendorID      string    `json:"vendorID"`
	Name          string    `json:"name"`
	TaxID         string    `json:"taxID"`
	Phone         string    `json:"phone,omitempty"`
	BankAccount   string    `json:"bankAccount,omitempty"`
	ContactPerson string    `json:"contactPerson,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToVendorResponse converts a domain.Vendor to VendorResponse DTO
func ToVendorResponse(v *domain.Vendor) VendorResponse {
	return VendorResponse{
		VendorID:      v.VendorID,
		Name:          v.Name,
		TaxID:         v.TaxID,
		Phone:         v.Phone,
		BankAccount:   v.BankAccount,
		ContactPerson: v.ContactPerson,
		CreatedAt:     v.CreatedAt,
		LastUpdatedAt: v.LastUpdatedAt,
	}
}

// ToListVendorResponse converts a slice of domain.Vendor to response DTOs
func ToListVendorResponse(vendors []domain.Vendor) []VendorResponse {
	res := make([]VendorResponse, len(vendors))
	for i := range vendors {
		res[i] = ToVendorResponse(&vendors[i])
	}
	return res
}

// ListVendorsResponse wraps the vendor list payload.
type ListVendorsResponse struct {
	Vendors []VendorResponse `json:"vendors"`
}
