package services

import (
	"context"

	"github.com/acctoffice/backoffice_app/internal/core/domain"
	"github.com/acctoffice/backoffice_app/internal/dto"
)

// PayrollReaderSvc defines read operations for payroll data
type PayrollReaderSvc interface {
	// GetPayrollRecordByID retrieves a specific payroll record by its ID.
	GetPayrollRecordByID(ctx context.Context, payrollID string) (*domain.PayrollRecord, error)

	// ListPayrollRecords retrieves payroll records, newest period first.
	ListPayrollRecords(ctx context.Context, limit int, offset int) ([]domain.PayrollRecord, error)

	// GetOrInitPeriod returns the stored records of a period, or synthesizes
	// one unpersisted draft per active employee when none exist yet.
	GetOrInitPeriod(ctx context.Context, period string) (*dto.PayrollPeriodResponse, error)
}

// PayrollWriterSvc defines write operations for payroll data
type PayrollWriterSvc interface {
	// CreatePayrollRecord persists a new payroll record.
	CreatePayrollRecord(ctx context.Context, req dto.PayrollRecordInput, creatorUserID string) (*domain.PayrollRecord, error)

	// UpdatePayrollRecord merges the supplied fields into an existing record.
	// Finalized records reject edits.
	UpdatePayrollRecord(ctx context.Context, payrollID string, req dto.UpdatePayrollRecordRequest, updaterUserID string) (*domain.PayrollRecord, error)

	// DeletePayrollRecord removes a payroll record.
	DeletePayrollRecord(ctx context.Context, payrollID string, deleterUserID string) error

	// SaveBatch upserts each record by its (employee, period) pair.
	// Replaying the same batch produces no duplicate rows.
	SaveBatch(ctx context.Context, records []dto.PayrollRecordInput, userID string) ([]domain.PayrollRecord, error)

	// FinalizePeriod flips every record of the period to finalized and
	// returns the number of rows affected.
	FinalizePeriod(ctx context.Context, period string, userID string) (int64, error)
}

// PayrollSvcFacade combines all payroll-related service interfaces
type PayrollSvcFacade interface {
	PayrollReaderSvc
	PayrollWriterSvc
}
