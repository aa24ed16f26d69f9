package dto

import (
	"time"

	"github.com/acctoffice/backoffice_app/internal/core/domain"
)

// CreateEmployeeRequest defines the data needed to create a new employee.
type CreateEmployeeRequest struct {
	Name                         string `json:"name" binding:"required"`
	Department                   string `json:"department" binding:"required"`
	Position                     string `json:"position" binding:"required"`
	Email                        string `json:"email" binding:"omitempty,email"`
	Phone                        string `json:"phone" binding:"required"`
	JoinDate                     string `json:"joinDate" binding:"required,datetime=2006-01-02"`
	Status                       string `json:"status" binding:"omitempty,oneof=active leave resigned"`
	BaseSalary                   string `json:"baseSalary"`
	Allowance                    string `json:"allowance"`
	BankAccount                  string `json:"bankAccount"`
	BankName                     string `json:"bankName"`
	EmergencyContactName         string `json:"emergencyContactName"`
	EmergencyContactPhone        string `json:"emergencyContactPhone"`
	EmergencyContactRelationship string `json:"emergencyContactRelationship"`
}

// UpdateEmployeeRequest defines the patch for an existing employee.
type UpdateEmployeeRequest struct {
	Name                         *string `json:"name,omitempty"`
	Department                   *string `json:"department,omitempty"`
	Position                     *string `json:"position,omitempty"`
	Email                        *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone                        *string `json:"phone,omitempty"`
	JoinDate                     *string `json:"joinDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Status                       *string `json:"status,omitempty" binding:"omitempty,oneof=active leave resigned"`
	BaseSalary                   *string `json:"baseSalary,omitempty"`
	Allowance                    *string `json:"allowance,omitempty"`
	BankAccount                  *string `json:"bankAccount,omitempty"`
	BankName                     *string `json:"bankName,omitempty"`
	EmergencyContactName         *string `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone        *string `json:"emergencyContactPhone,omitempty"`
	EmergencyContactRelationship *string `json:"emergencyContactRelationship,omitempty"`
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	EmployeeID                   string    `json:"employeeID"`
	Name                         string    `json:"name"`
	Department                   string    `json:"department"`
	Position                     string    `json:"position"`
	Email                        string    `json:"email,omitempty"`
	Phone                        string    `json:"phone"`
	JoinDate                     string    `json:"joinDate"`
	Status                       string    `json:"status"`
	BaseSalary                   string    `json:"baseSalary"`
	Allowance                    string    `json:"allowance"`
	BankAccount                  string    `json:"bankAccount,omitempty"`
	BankName                     string    `json:"bankName,omitempty"`
	EmergencyContactName         string    `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone        string    `json:"emergencyContactPhone,omitempty"`
	EmergencyContactRelationship string    `json:"emergencyContactRelationship,omitempty"`
	CreatedAt                    time.Time `json:"createdAt"`
	LastUpdatedAt                time.Time `json:"lastUpdatedAt"`
}

// ToEmployeeResponse converts a domain.Employee to EmployeeResponse DTO
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:                   e.EmployeeID,
		Name:                         e.Name,
		Department:                   e.Department,
		Position:                     e.Position,
		Email:                        e.Email,
		Phone:                        e.Phone,
		JoinDate:                     e.JoinDate,
		Status:                       string(e.Status),
		BaseSalary:                   e.BaseSalary.StringFixed(2),
		Allowance:                    e.Allowance.StringFixed(2),
		BankAccount:                  e.BankAccount,
		BankName:                     e.BankName,
		EmergencyContactName:         e.EmergencyContactName,
		EmergencyContactPhone:        e.EmergencyContactPhone,
		EmergencyContactRelationship: e.EmergencyContactRelationship,
		CreatedAt:                    e.CreatedAt,
		LastUpdatedAt:                e.LastUpdatedAt,
	}
}

// ToListEmployeeResponse converts a slice of domain.Employee to response DTOs
func ToListEmployeeResponse(employees []domain.Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i := range employees {
		res[i] = ToEmployeeResponse(&employees[i])
	}
	return res
}

// ListEmployeesResponse wraps the employee list payload.
type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}
