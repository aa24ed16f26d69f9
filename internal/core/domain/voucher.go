package domain

import "github.com/shopspring/decimal"

// VoucherStatus indicates the approval state of an expense voucher.
type VoucherStatus string

const (
	VoucherPending   VoucherStatus = "pending"
	VoucherCompleted VoucherStatus = "completed"
	VoucherVoid      VoucherStatus = "void"
)

// IsTerminal reports whether the status permits no further transition.
func (s VoucherStatus) IsTerminal() bool {
	return s == VoucherCompleted || s == VoucherVoid
}

// IsValid reports whether the status is one of the known voucher states.
func (s VoucherStatus) IsValid() bool {
	return s == VoucherPending || s == VoucherCompleted || s == VoucherVoid
}

// Voucher represents a single expense record moving through approval.
// Amount, vendor and date are frozen once the status leaves pending.
type Voucher struct {
	VoucherID   string          `json:"voucherID"` // Primary Key (e.g., UUID)
	VendorID    string          `json:"vendorID"`  // Reference to Vendor
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"` // YYYY-MM-DD
	Description string          `json:"description,omitempty"`
	Status      VoucherStatus   `json:"status"` // Default: pending
	AuditFields
}
