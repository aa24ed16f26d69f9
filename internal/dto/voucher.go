package dto

import (
	"time"

	"github.com/acctoffice/backoffice_app/internal/core/domain"
)

// CreateVoucherRequest defines the data needed to create a new voucher.
// Amount crosses the boundary as a decimal string to avoid float drift.
type CreateVoucherRequest struct {
	VendorID    string `json:"vendorID" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	Description string `json:"description"`
	Status      string `json:"status" binding:"omitempty,oneof=pending completed void"`
}

// UpdateVoucherRequest defines the patch for an existing voucher.
type UpdateVoucherRequest struct {
	VendorID    *string `json:"vendorID,omitempty"`
	Amount      *string `json:"amount,omitempty"`
	Date        *string `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty" binding:"omitempty,oneof=pending completed void"`
}

// VoucherResponse defines the data returned for a voucher.
type VoucherResponse struct {
	VoucherID     string    `json:"voucherID"`
	VendorID      string    `json:"vendorID"`
	Amount        string    `json:"amount"`
	Date          string    `json:"date"`
	Description   string    `json:"description,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToVoucherResponse converts a domain.Voucher to VoucherResponse DTO
func ToVoucherResponse(v *domain.Voucher) VoucherResponse {
	return VoucherResponse{
		VoucherID:     v.VoucherID,
		VendorID:      v.VendorID,
		Amount:        v.Amount.StringFixed(2),
		Date:          v.Date,
		Description:   v.Description,
		Status:        string(v.Status),
		CreatedAt:     v.CreatedAt,
		LastUpdatedAt: v.LastUpdatedAt,
	}
}

// ToListVoucherResponse converts a slice of domain.Voucher to response DTOs
func ToListVoucherResponse(vouchers []domain.Voucher) []VoucherResponse {
	res := make([]VoucherResponse, len(vouchers))
	for i := range vouchers {
		res[i] = ToVoucherResponse(&vouchers[i])
	}
	return res
}

// ListVouchersResponse wraps the voucher list payload.
type ListVouchersResponse struct {
	Vouchers []VoucherResponse `json:"vouchers"`
}
