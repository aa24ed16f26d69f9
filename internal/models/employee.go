package models

import "github.com/shopspring/decimal"

// EmployeeStatus mirrors the employment state enum stored in the database.
type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "active"
	EmployeeOnLeave  EmployeeStatus = "leave"
	EmployeeResigned EmployeeStatus = "resigned"
)

// Employee represents a row of the employees table.
type Employee struct {
	EmployeeID                   string          `db:"employee_id"`
	Name                         string          `db:"name"`
	Department                   string          `db:"department"`
	Position                     string          `db:"position"`
	Email                        string          `db:"email"`
	Phone                        string          `db:"phone"`
	JoinDate                     string          `db:"join_date"` // YYYY-MM-DD
	Status                       EmployeeStatus  `db:"status"`
	BaseSalary                   decimal.Decimal `db:"base_salary"`
	Allowance                    decimal.Decimal `db:"allowance"`
	BankAccount                  string          `db:"bank_account"`
	BankName                     string          `db:"bank_name"`
	EmergencyContactName         string          `db:"emergency_contact_name"`
	EmergencyContactPhone        string          `db:"emergency_contact_phone"`
	EmergencyContactRelationship string          `db:"emergency_contact_relationship"`
	AuditFields
}
