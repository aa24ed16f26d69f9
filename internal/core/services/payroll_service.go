package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/acctoffice/backoffice_app/internal/apperrors"
	"github.com/acctoffice/backoffice_app/internal/core/domain"
	portsrepo "github.com/acctoffice/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/acctoffice/backoffice_app/internal/core/ports/services"
	"github.com/acctoffice/backoffice_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"log/slog"
)

// PayrollService provides business logic for monthly payroll reconciliation.
type PayrollService struct {
	BaseService
	payrollRepo  portsrepo.PayrollRepositoryFacade
	employeeRepo portsrepo.EmployeeReader
}

// NewPayrollService creates a new PayrollService.
// The employee reader backs draft synthesis for unreconciled periods.
func NewPayrollService(payrollRepo portsrepo.PayrollRepositoryFacade, employeeRepo portsrepo.EmployeeReader) *PayrollService {
	return &PayrollService{payrollRepo: payrollRepo, employeeRepo: employeeRepo}
}

var _ portssvc.PayrollSvcFacade = (*PayrollService)(nil)

func validatePeriod(period string) error {
	if _, err := time.Parse("2006-01", period); err != nil {
		return fmt.Errorf("%w: period must be formatted YYYY-MM", apperrors.ErrValidation)
	}
	return nil
}

// GetOrInitPeriod returns the stored pay lines of a period as-is. When the
// period has no stored rows it synthesizes one unpersisted draft per active
// employee, copying the current salary structure and zeroing bonus and
// deduction. With no rows and no active employees the record set is empty.
func (s *PayrollService) GetOrInitPeriod(ctx context.Context, period string) (*dto.PayrollPeriodResponse, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	records, err := s.payrollRepo.FindPayrollByPeriod(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("failed to load payroll period in service: %w", err)
	}

	if len(records) > 0 {
		// Finalization flips the whole period at once, so every stored
		// row shares one status.
		return &dto.PayrollPeriodResponse{
			Period:  period,
			Status:  string(records[0].Status),
			Records: dto.ToListPayrollRecordResponse(records),
		}, nil
	}

	employees, err := s.employeeRepo.ListActiveEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees for payroll init: %w", err)
	}

	drafts := make([]domain.PayrollRecord, len(employees))
	for i, e := range employees {
		drafts[i] = domain.PayrollRecord{
			EmployeeID:   e.EmployeeID,
			EmployeeName: e.Name,
			Department:   e.Department,
			Position:     e.Position,
			Period:       period,
			BaseSalary:   e.BaseSalary,
			Allowance:    e.Allowance,
			Bonus:        decimal.Zero,
			Deduction:    decimal.Zero,
			Status:       domain.PayrollDraft,
		}
	}

	return &dto.PayrollPeriodResponse{
		Period:  period,
		Status:  string(domain.PayrollDraft),
		Records: dto.ToListPayrollRecordResponse(drafts),
	}, nil
}

func (s *PayrollService) recordFromInput(req dto.PayrollRecordInput) (domain.PayrollRecord, error) {
	if err := validatePeriod(req.Period); err != nil {
		return domain.PayrollRecord{}, err
	}
	baseSalary, err := parseAmount("baseSalary", req.BaseSalary)
	if err != nil {
		return domain.PayrollRecord{}, err
	}
	allowance, err := parseAmount("allowance", req.Allowance)
	if err != nil {
		return domain.PayrollRecord{}, err
	}
	bonus, err := parseAmount("bonus", req.Bonus)
	if err != nil {
		return domain.PayrollRecord{}, err
	}
	deduction, err := parseAmount("deduction", req.Deduction)
	if err != nil {
		return domain.PayrollRecord{}, err
	}

	status := domain.PayrollDraft
	if req.Status != "" {
		status = domain.PayrollStatus(req.Status)
	}

	return domain.PayrollRecord{
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Department:   req.Department,
		Position:     req.Position,
		Period:       req.Period,
		BaseSalary:   baseSalary,
		Allowance:    allowance,
		Bonus:        bonus,
		Deduction:    deduction,
		Note:         req.Note,
		Status:       status,
	}, nil
}

func (s *PayrollService) CreatePayrollRecord(ctx context.Context, req dto.PayrollRecordInput, creatorUserID string) (*domain.PayrollRecord, error) {
	record, err := s.recordFromInput(req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	record.PayrollID = uuid.NewString()
	record.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	if err := s.payrollRepo.SavePayrollRecord(ctx, record); err != nil {
		s.LogError(ctx, err, "failed to create payroll record")
		return nil, fmt.Errorf("failed to create payroll record in service: %w", err)
	}

	s.LogInfo(ctx, "payroll record created", slog.String("payroll_id", record.PayrollID), slog.String("period", record.Period))
	return &record, nil
}

func (s *PayrollService) GetPayrollRecordByID(ctx context.Context, payrollID string) (*domain.PayrollRecord, error) {
	record, err := s.payrollRepo.FindPayrollRecordByID(ctx, payrollID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payroll record by ID in service: %w", err)
	}
	return record, nil
}

func (s *PayrollService) ListPayrollRecords(ctx context.Context, limit int, offset int) ([]domain.PayrollRecord, error) {
	records, err := s.payrollRepo.ListPayrollRecords(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records in service: %w", err)
	}
	if records == nil {
		return []domain.PayrollRecord{}, nil
	}
	return records, nil
}

func (s *PayrollService) UpdatePayrollRecord(ctx context.Context, payrollID string, req dto.UpdatePayrollRecordRequest, updaterUserID string) (*domain.PayrollRecord, error) {
	record, err := s.payrollRepo.FindPayrollRecordByID(ctx, payrollID)
	if err != nil {
		return nil, fmt.Errorf("failed to find payroll record for update: %w", err)
	}

	if record.Status == domain.PayrollFinalized {
		return nil, fmt.Errorf("%w: payroll record %s is finalized", apperrors.ErrImmutable, payrollID)
	}

	if req.Bonus != nil {
		bonus, err := parseAmount("bonus", *req.Bonus)
		if err != nil {
			return nil, err
		}
		record.Bonus = bonus
	}
	if req.Deduction != nil {
		deduction, err := parseAmount("deduction", *req.Deduction)
		if err != nil {
			return nil, err
		}
		record.Deduction = deduction
	}
	if req.Note != nil {
		record.Note = *req.Note
	}
	if req.Status != nil {
		record.Status = domain.PayrollStatus(*req.Status)
	}
	record.LastUpdatedAt = time.Now()
	record.LastUpdatedBy = updaterUserID

	if err := s.payrollRepo.UpdatePayrollRecord(ctx, *record); err != nil {
		s.LogError(ctx, err, "failed to update payroll record", slog.String("payroll_id", payrollID))
		return nil, fmt.Errorf("failed to update payroll record in service: %w", err)
	}
	return record, nil
}

func (s *PayrollService) DeletePayrollRecord(ctx context.Context, payrollID string, deleterUserID string) error {
	if err := s.payrollRepo.DeletePayrollRecord(ctx, payrollID); err != nil {
		return fmt.Errorf("failed to delete payroll record in service: %w", err)
	}
	s.LogInfo(ctx, "payroll record deleted", slog.String("payroll_id", payrollID), slog.String("deleted_by", deleterUserID))
	return nil
}

// SaveBatch upserts each pay line by its (employee, period) pair, so a
// replayed batch updates rows instead of duplicating them. Records are
// processed independently: a failing record stops the batch but leaves
// earlier writes in place.
func (s *PayrollService) SaveBatch(ctx context.Context, records []dto.PayrollRecordInput, userID string) ([]domain.PayrollRecord, error) {
	saved := make([]domain.PayrollRecord, 0, len(records))
	now := time.Now()

	for i, input := range records {
		record, err := s.recordFromInput(input)
		if err != nil {
			return saved, fmt.Errorf("record %d: %w", i, err)
		}

		existing, err := s.payrollRepo.FindPayrollByEmployeeAndPeriod(ctx, record.EmployeeID, record.Period)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return saved, fmt.Errorf("record %d: failed to check existing payroll: %w", i, err)
		}

		if existing != nil {
			record.PayrollID = existing.PayrollID
			record.AuditFields = existing.AuditFields
			record.LastUpdatedAt = now
			record.LastUpdatedBy = userID
			if err := s.payrollRepo.UpdatePayrollRecord(ctx, record); err != nil {
				return saved, fmt.Errorf("record %d: failed to update payroll record: %w", i, err)
			}
		} else {
			record.PayrollID = uuid.NewString()
			record.AuditFields = domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			}
			if err := s.payrollRepo.SavePayrollRecord(ctx, record); err != nil {
				return saved, fmt.Errorf("record %d: failed to save payroll record: %w", i, err)
			}
		}
		saved = append(saved, record)
	}

	s.LogInfo(ctx, "payroll batch saved", slog.Int("records", len(saved)))
	return saved, nil
}

// FinalizePeriod flips every record of the period to finalized and reports
// how many rows were touched. Finalizing an empty period reports zero.
func (s *PayrollService) FinalizePeriod(ctx context.Context, period string, userID string) (int64, error) {
	if err := validatePeriod(period); err != nil {
		return 0, err
	}

	count, err := s.payrollRepo.UpdatePayrollStatusByPeriod(ctx, period, domain.PayrollFinalized, userID)
	if err != nil {
		s.LogError(ctx, err, "failed to finalize payroll period", slog.String("period", period))
		return 0, fmt.Errorf("failed to finalize payroll period in service: %w", err)
	}

	s.LogInfo(ctx, "payroll period finalized", slog.String("period", period), slog.Int64("updated", count))
	return count, nil
}
