package domain

import "github.com/shopspring/decimal"

// PayrollStatus indicates whether a payroll record is still editable.
type PayrollStatus string

const (
	PayrollDraft     PayrollStatus = "draft"
	PayrollFinalized PayrollStatus = "finalized"
)

// IsValid reports whether the status is one of the known payroll states.
func (s PayrollStatus) IsValid() bool {
	return s == PayrollDraft || s == PayrollFinalized
}

// PayrollRecord is one employee's pay line for one period (YYYY-MM).
// EmployeeName, Department and Position are snapshots taken at save time
// and are intentionally never re-derived from the live Employee row.
// At most one record exists per (EmployeeID, Period) pair.
type PayrollRecord struct {
	PayrollID    string          `json:"payrollID"` // Primary Key (e.g., UUID); empty on unsaved drafts
	EmployeeID   string          `json:"employeeID"`
	EmployeeName string          `json:"employeeName"`
	Department   string          `json:"department"`
	Position     string          `json:"position"`
	Period       string          `json:"period"` // YYYY-MM
	BaseSalary   decimal.Decimal `json:"baseSalary"`
	Allowance    decimal.Decimal `json:"allowance"`
	Bonus        decimal.Decimal `json:"bonus"`
	Deduction    decimal.Decimal `json:"deduction"`
	Note         string          `json:"note,omitempty"`
	Status       PayrollStatus   `json:"status"` // Default: draft
	AuditFields
}

// NetPay derives the pay line total. It is computed on read and never stored.
func (p PayrollRecord) NetPay() decimal.Decimal {
	return p.BaseSalary.Add(p.Allowance).Add(p.Bonus).Sub(p.Deduction)
}
