package models

import "github.com/shopspring/decimal"

// PayrollStatus mirrors the payroll state enum stored in the database.
type PayrollStatus string

const (
	PayrollDraft     PayrollStatus = "draft"
	PayrollFinalized PayrollStatus = "finalized"
)

// PayrollRecord represents a row of the payroll_records table.
// Employee name, department and position are denormalized snapshots for
// historical accuracy and are never refreshed from the employees table.
type PayrollRecord struct {
	PayrollID    string          `db:"payroll_id"`
	EmployeeID   string          `db:"employee_id"`
	EmployeeName string          `db:"employee_name"`
	Department   string          `db:"department"`
	Position     string          `db:"position"`
	Period       string          `db:"period"` // YYYY-MM
	BaseSalary   decimal.Decimal `db:"base_salary"`
	Allowance    decimal.Decimal `db:"allowance"`
	Bonus        decimal.Decimal `db:"bonus"`
	Deduction    decimal.Decimal `db:"deduction"`
	Note         string          `db:"note"`
	Status       PayrollStatus   `db:"status"`
	AuditFields
}
