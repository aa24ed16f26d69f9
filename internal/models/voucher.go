package models

import "github.com/shopspring/decimal"

// VoucherStatus mirrors the voucher state enum stored in the database.
type VoucherStatus string

const (
	VoucherPending   VoucherStatus = "pending"
	VoucherCompleted VoucherStatus = "completed"
	VoucherVoid      VoucherStatus = "void"
)

// Voucher represents a row of the vouchers table.
type Voucher struct {
	VoucherID   string          `db:"voucher_id"`
	VendorID    string          `db:"vendor_id"`
	Amount      decimal.Decimal `db:"amount"`
	Date        string          `db:"date"` // YYYY-MM-DD
	Description string          `db:"description"`
	Status      VoucherStatus   `db:"status"`
	AuditFields
}
