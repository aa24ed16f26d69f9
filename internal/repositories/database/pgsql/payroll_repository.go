package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/acctoffice/backoffice_app/internal/apperrors"
	"github.com/acctoffice/backoffice_app/internal/core/domain"
	portsrepo "github.com/acctoffice/backoffice_app/internal/core/ports/repositories"
	"github.com/acctoffice/backoffice_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPayrollRepository struct {
	BaseRepository
}

func newPgxPayrollRepository(db *pgxpool.Pool) portsrepo.PayrollRepositoryFacade {
	return &PgxPayrollRepository{BaseRepository{Pool: db}}
}

// Ensure PgxPayrollRepository implements portsrepo.PayrollRepositoryFacade
var _ portsrepo.PayrollRepositoryFacade = (*PgxPayrollRepository)(nil)

func toModelPayrollRecord(d domain.PayrollRecord) models.PayrollRecord {
	return models.PayrollRecord{
		PayrollID:    d.PayrollID,
		EmployeeID:   d.EmployeeID,
		EmployeeName: d.EmployeeName,
		Department:   d.Department,
		Position:     d.Position,
		Period:       d.Period,
		BaseSalary:   d.BaseSalary,
		Allowance:    d.Allowance,
		Bonus:        d.Bonus,
		Deduction:    d.Deduction,
		Note:         d.Note,
		Status:       models.PayrollStatus(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainPayrollRecord(m models.PayrollRecord) domain.PayrollRecord {
	return domain.PayrollRecord{
		PayrollID:    m.PayrollID,
		EmployeeID:   m.EmployeeID,
		EmployeeName: m.EmployeeName,
		Department:   m.Department,
		Position:     m.Position,
		Period:       m.Period,
		BaseSalary:   m.BaseSalary,
		Allowance:    m.Allowance,
		Bonus:        m.Bonus,
		Deduction:    m.Deduction,
		Note:         m.Note,
		Status:       domain.PayrollStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const payrollColumns = `payroll_id, employee_id, employee_name, department, position, period, base_salary, allowance, bonus, deduction, note, status, created_at, created_by, last_updated_at, last_updated_by`

func scanPayrollRow(row pgx.Row) (*models.PayrollRecord, error) {
	var m models.PayrollRecord
	err := row.Scan(
		&m.PayrollID,
		&m.EmployeeID,
		&m.EmployeeName,
		&m.Department,
		&m.Position,
		&m.Period,
		&m.BaseSalary,
		&m.Allowance,
		&m.Bonus,
		&m.Deduction,
		&m.Note,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxPayrollRepository) SavePayrollRecord(ctx context.Context, record domain.PayrollRecord) error {
	if err := r.RequireStore(); err != nil {
		return err
	}
	m := toModelPayrollRecord(record)
	query := `
        INSERT INTO payroll_records (payroll_id, employee_id, employee_name, department, position, period, base_salary, allowance, bonus, deduction, note, status, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.PayrollID,
		m.EmployeeID,
		m.EmployeeName,
		m.Department,
		m.Position,
		m.Period,
		m.BaseSalary,
		m.Allowance,
		m.Bonus,
		m.Deduction,
		m.Note,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		// The unique index on (employee_id, period) closes the upsert race:
		// a concurrent insert for the same pair surfaces as ErrDuplicate.
		return fmt.Errorf("failed to save payroll record: %w", mapConstraintError(err))
	}
	return nil
}

func (r *PgxPayrollRepository) FindPayrollRecordByID(ctx context.Context, payrollID string) (*domain.PayrollRecord, error) {
	if !r.Available() {
		return nil, apperrors.ErrNotFound
	}
	query := `SELECT ` + payrollColumns + ` FROM payroll_records WHERE payroll_id = $1;`
	m, err := scanPayrollRow(r.Pool.QueryRow(ctx, query, payrollID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payroll record by ID %s: %w", payrollID, err)
	}
	d := toDomainPayrollRecord(*m)
	return &d, nil
}

func (r *PgxPayrollRepository) FindPayrollByEmployeeAndPeriod(ctx context.Context, employeeID string, period string) (*domain.PayrollRecord, error) {
	if !r.Available() {
		return nil, apperrors.ErrNotFound
	}
	query := `SELECT ` + payrollColumns + ` FROM payroll_records WHERE employee_id = $1 AND period = $2;`
	m, err := scanPayrollRow(r.Pool.QueryRow(ctx, query, employeeID, period))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payroll record for employee %s period %s: %w", employeeID, period, err)
	}
	d := toDomainPayrollRecord(*m)
	return &d, nil
}

func (r *PgxPayrollRepository) queryPayrollRecords(ctx context.Context, query string, args ...any) ([]domain.PayrollRecord, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll records: %w", err)
	}
	defer rows.Close()

	records := []domain.PayrollRecord{}
	for rows.Next() {
		m, err := scanPayrollRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll row: %w", err)
		}
		records = append(records, toDomainPayrollRecord(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating payroll rows: %w", rows.Err())
	}
	return records, nil
}

func (r *PgxPayrollRepository) ListPayrollRecords(ctx context.Context, limit int, offset int) ([]domain.PayrollRecord, error) {
	if !r.Available() {
		return []domain.PayrollRecord{}, nil
	}
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + payrollColumns + ` FROM payroll_records ORDER BY period DESC, created_at DESC LIMIT $1 OFFSET $2;`
	return r.queryPayrollRecords(ctx, query, limit, offset)
}

func (r *PgxPayrollRepository) FindPayrollByPeriod(ctx context.Context, period string) ([]domain.PayrollRecord, error) {
	if !r.Available() {
		return []domain.PayrollRecord{}, nil
	}
	query := `SELECT ` + payrollColumns + ` FROM payroll_records WHERE period = $1 ORDER BY employee_name;`
	return r.queryPayrollRecords(ctx, query, period)
}

func (r *PgxPayrollRepository) UpdatePayrollRecord(ctx context.Context, record domain.PayrollRecord) error {
	if err := r.RequireStore(); err != nil {
		return err
	}
	m := toModelPayrollRecord(record)
	query := `
        UPDATE payroll_records
        SET employee_name = $1, department = $2, position = $3, base_salary = $4, allowance = $5, bonus = $6, deduction = $7, note = $8, status = $9, last_updated_at = $10, last_updated_by = $11
        WHERE payroll_id = $12;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.EmployeeName,
		m.Department,
		m.Position,
		m.BaseSalary,
		m.Allowance,
		m.Bonus,
		m.Deduction,
		m.Note,
		m.Status,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.PayrollID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update payroll query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("payroll record not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxPayrollRepository) DeletePayrollRecord(ctx context.Context, payrollID string) error {
	if err := r.RequireStore(); err != nil {
		return err
	}
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM payroll_records WHERE payroll_id = $1;`, payrollID)
	if err != nil {
		return fmt.Errorf("failed to delete payroll record %s: %w", payrollID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("payroll record not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxPayrollRepository) UpdatePayrollStatusByPeriod(ctx context.Context, period string, status domain.PayrollStatus, updatedBy string) (int64, error) {
	if err := r.RequireStore(); err != nil {
		return 0, err
	}
	query := `
        UPDATE payroll_records
        SET status = $1, last_updated_at = now(), last_updated_by = $2
        WHERE period = $3;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, models.PayrollStatus(status), updatedBy, period)
	if err != nil {
		return 0, fmt.Errorf("failed to update payroll status for period %s: %w", period, err)
	}
	return cmdTag.RowsAffected(), nil
}
