package dto

import (
	"time"

	"github.com/acctoffice/backoffice_app/internal/core/domain"
)

// PayrollRecordInput carries one pay line for create and batch-save calls.
// Snapshot fields (employeeName, department, position) are supplied by the
// caller and stored as-is for historical accuracy.
type PayrollRecordInput struct {
	EmployeeID   string `json:"employeeID" binding:"required"`
	EmployeeName string `json:"employeeName" binding:"required"`
	Department   string `json:"department" binding:"required"`
	Position     string `json:"position" binding:"required"`
	Period       string `json:"period" binding:"required"`
	BaseSalary   string `json:"baseSalary" binding:"required"`
	Allowance    string `json:"allowance" binding:"required"`
	Bonus        string `json:"bonus"`
	Deduction    string `json:"deduction"`
	Note         string `json:"note"`
	Status       string `json:"status" binding:"omitempty,oneof=draft finalized"`
}

// SavePayrollBatchRequest wraps the batch upsert payload.
type SavePayrollBatchRequest struct {
	Records []PayrollRecordInput `json:"records" binding:"required,dive"`
}

// UpdatePayrollRecordRequest defines the patch for an existing payroll record.
type UpdatePayrollRecordRequest struct {
	Bonus     *string `json:"bonus,omitempty"`
	Deduction *string `json:"deduction,omitempty"`
	Note      *string `json:"note,omitempty"`
	Status    *string `json:"status,omitempty" binding:"omitempty,oneof=draft finalized"`
}

// PayrollRecordResponse defines the data returned for one pay line.
// NetPay is derived on read and never stored.
type PayrollRecordResponse struct {
	PayrollID     string    `json:"payrollID,omitempty"`
	EmployeeID    string    `json:"employeeID"`
	EmployeeName  string    `json:"employeeName"`
	Department    string    `json:"department"`
	Position      string    `json:"position"`
	Period        string    `json:"period"`
	BaseSalary    string    `json:"baseSalary"`
	Allowance     string    `json:"allowance"`
	Bonus         string    `json:"bonus"`
	Deduction     string    `json:"deduction"`
	NetPay        string    `json:"netPay"`
	Note          string    `json:"note,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt,omitempty"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt,omitempty"`
}

// ToPayrollRecordResponse converts a domain.PayrollRecord to its DTO
func ToPayrollRecordResponse(p *domain.PayrollRecord) PayrollRecordResponse {
	return PayrollRecordResponse{
		PayrollID:     p.PayrollID,
		EmployeeID:    p.EmployeeID,
		EmployeeName:  p.EmployeeName,
		Department:    p.Department,
		Position:      p.Position,
		Period:        p.Period,
		BaseSalary:    p.BaseSalary.StringFixed(2),
		Allowance:     p.Allowance.StringFixed(2),
		Bonus:         p.Bonus.StringFixed(2),
		Deduction:     p.Deduction.StringFixed(2),
		NetPay:        p.NetPay().StringFixed(2),
		Note:          p.Note,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ToListPayrollRecordResponse converts a slice of records to response DTOs
func ToListPayrollRecordResponse(records []domain.PayrollRecord) []PayrollRecordResponse {
	res := make([]PayrollRecordResponse, len(records))
	for i := range records {
		res[i] = ToPayrollRecordResponse(&records[i])
	}
	return res
}

// PayrollPeriodResponse is the get-or-init view of one payroll period.
// Records may be unsaved drafts (empty payrollID) when the period has no
// stored rows yet.
type PayrollPeriodResponse struct {
	Period  string                  `json:"period"`
	Status  string                  `json:"status"`
	Records []PayrollRecordResponse `json:"records"`
}

// FinalizePeriodResponse reports the outcome of a period finalization.
type FinalizePeriodResponse struct {
	Success      bool  `json:"success"`
	UpdatedCount int64 `json:"updatedCount"`
}

// ListPayrollRecordsResponse wraps the payroll list payload.
type ListPayrollRecordsResponse struct {
	Records []PayrollRecordResponse `json:"records"`
}
