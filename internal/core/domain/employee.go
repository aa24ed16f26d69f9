package domain

import "github.com/shopspring/decimal"

// EmployeeStatus indicates the employment state of an employee.
type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "active"
	EmployeeOnLeave  EmployeeStatus = "leave"
	EmployeeResigned EmployeeStatus = "resigned"
)

// IsValid reports whether the status is one of the known employment states.
func (s EmployeeStatus) IsValid() bool {
	return s == EmployeeActive || s == EmployeeOnLeave || s == EmployeeResigned
}

// Employee represents an employee record including salary structure.
type Employee struct {
	EmployeeID                   string          `json:"employeeID"` // Primary Key (e.g., UUID)
	Name                         string          `json:"name"`
	Department                   string          `json:"department"`
	Position                     string          `json:"position"`
	Email                        string          `json:"email,omitempty"`
	Phone                        string          `json:"phone"`
	JoinDate                     string          `json:"joinDate"` // YYYY-MM-DD
	Status                       EmployeeStatus  `json:"status"`   // Default: active
	BaseSalary                   decimal.Decimal `json:"baseSalary"`
	Allowance                    decimal.Decimal `json:"allowance"`
	BankAccount                  string          `json:"bankAccount,omitempty"`
	BankName                     string          `json:"bankName,omitempty"`
	EmergencyContactName         string          `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone        string          `json:"emergencyContactPhone,omitempty"`
	EmergencyContactRelationship string          `json:"emergencyContactRelationship,omitempty"`
	AuditFields
}
