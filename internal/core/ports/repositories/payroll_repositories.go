package repositories

import (
	"context"

	"github.com/acctoffice/backoffice_app/internal/core/domain"
)

// PayrollReader defines read operations for payroll data
type PayrollReader interface {
	// FindPayrollRecordByID retrieves a specific payroll record by its ID.
	FindPayrollRecordByID(ctx context.Context, payrollID string) (*domain.PayrollRecord, error)

	// ListPayrollRecords retrieves payroll records, newest period first.
	ListPayrollRecords(ctx context.Context, limit int, offset int) ([]domain.PayrollRecord, error)

	// FindPayrollByPeriod retrieves every record of a period, ordered by
	// employee name.
	FindPayrollByPeriod(ctx context.Context, period string) ([]domain.PayrollRecord, error)

	// FindPayrollByEmployeeAndPeriod retrieves the single record for an
	// (employee, period) pair, if one exists.
	FindPayrollByEmployeeAndPeriod(ctx context.Context, employeeID string, period string) (*domain.PayrollRecord, error)
}

// PayrollWriter defines write operations for payroll data
type PayrollWriter interface {
	// SavePayrollRecord persists a new payroll record.
	SavePayrollRecord(ctx context.Context, record domain.PayrollRecord) error

	// UpdatePayrollRecord updates an existing payroll record row.
	UpdatePayrollRecord(ctx context.Context, record domain.PayrollRecord) error

	// DeletePayrollRecord removes a payroll record row.
	DeletePayrollRecord(ctx context.Context, payrollID string) error

	// UpdatePayrollStatusByPeriod sets the status on every record of the
	// period and returns the number of rows affected.
	UpdatePayrollStatusByPeriod(ctx context.Context, period string, status domain.PayrollStatus, updatedBy string) (int64, error)
}

// PayrollRepositoryFacade combines all payroll-related repository interfaces
type PayrollRepositoryFacade interface {
	PayrollReader
	PayrollWriter
}
