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

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(db *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository{Pool: db}}
}

// Ensure PgxEmployeeRepository implements portsrepo.EmployeeRepositoryFacade
var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

func toModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:                   d.EmployeeID,
		Name:                         d.Name,
		Department:                   d.Department,
		Position:                     d.Position,
		Email:                        d.Email,
		Phone:                        d.Phone,
		JoinDate:                     d.JoinDate,
		Status:                       models.EmployeeStatus(d.Status),
		BaseSalary:                   d.BaseSalary,
		Allowance:                    d.Allowance,
		BankAccount:                  d.BankAccount,
		BankName:                     d.BankName,
		EmergencyContactName:         d.EmergencyContactName,
		EmergencyContactPhone:        d.EmergencyContactPhone,
		EmergencyContactRelationship: d.EmergencyContactRelationship,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:                   m.EmployeeID,
		Name:                         m.Name,
		Department:                   m.Department,
		Position:                     m.Position,
		Email:                        m.Email,
		Phone:                        m.Phone,
		JoinDate:                     m.JoinDate,
		Status:                       domain.EmployeeStatus(m.Status),
		BaseSalary:                   m.BaseSalary,
		Allowance:                    m.Allowance,
		BankAccount:                  m.BankAccount,
		BankName:                     m.BankName,
		EmergencyContactName:         m.EmergencyContactName,
		EmergencyContactPhone:        m.EmergencyContactPhone,
		EmergencyContactRelationship: m.EmergencyContactRelationship,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const employeeColumns = `employee_id, name, department, position, email, phone, join_date, status, base_salary, allowance, bank_account, bank_name, emergency_contact_name, emergency_contact_phone, emergency_contact_relationship, created_at, created_by, last_updated_at, last_updated_by`

func scanEmployeeRow(row pgx.Row) (*models.Employee, error) {
	var m models.Employee
	err := row.Scan(
		&m.EmployeeID,
		&m.Name,
		&m.Department,
		&m.Position,
		&m.Email,
		&m.Phone,
		&m.JoinDate,
		&m.Status,
		&m.BaseSalary,
		&m.Allowance,
		&m.BankAccount,
		&m.BankName,
		&m.EmergencyContactName,
		&m.EmergencyContactPhone,
		&m.EmergencyContactRelationship,
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

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	if err := r.RequireStore(); err != nil {
		return err
	}
	m := toModelEmployee(employee)
	query := `
        INSERT INTO employees (employee_id, name, department, position, email, phone, join_date, status, base_salary, allowance, bank_account, bank_name, emergency_contact_name, emergency_contact_phone, emergency_contact_relationship, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.EmployeeID,
		m.Name,
		m.Department,
		m.Position,
		m.Email,
		m.Phone,
		m.JoinDate,
		m.Status,
		m.BaseSalary,
		m.Allowance,
		m.BankAccount,
		m.BankName,
		m.EmergencyContactName,
		m.EmergencyContactPhone,
		m.EmergencyContactRelationship,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save employee: %w", err)
	}
	return nil
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	if !r.Available() {
		return nil, apperrors.ErrNotFound
	}
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1;`
	m, err := scanEmployeeRow(r.Pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by ID %s: %w", employeeID, err)
	}
	d := toDomainEmployee(*m)
	return &d, nil
}

func (r *PgxEmployeeRepository) queryEmployees(ctx context.Context, query string, args ...any) ([]domain.Employee, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		m, err := scanEmployeeRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, toDomainEmployee(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", rows.Err())
	}
	return employees, nil
}

func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, limit int, offset int) ([]domain.Employee, error) {
	if !r.Available() {
		return []domain.Employee{}, nil
	}
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at DESC LIMIT $1 OFFSET $2;`
	return r.queryEmployees(ctx, query, limit, offset)
}

func (r *PgxEmployeeRepository) ListActiveEmployees(ctx context.Context) ([]domain.Employee, error) {
	if !r.Available() {
		return []domain.Employee{}, nil
	}
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE status = $1 ORDER BY name;`
	return r.queryEmployees(ctx, query, models.EmployeeActive)
}

func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	if err := r.RequireStore(); err != nil {
		return err
	}
	m := toModelEmployee(employee)
	query := `
        UPDATE employees
        SET name = $1, department = $2, position = $3, email = $4, phone = $5, join_date = $6, status = $7, base_salary = $8, allowance = $9, bank_account = $10, bank_name = $11, emergency_contact_name = $12, emergency_contact_phone = $13, emergency_contact_relationship = $14, last_updated_at = $15, last_updated_by = $16
        WHERE employee_id = $17;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.Department,
		m.Position,
		m.Email,
		m.Phone,
		m.JoinDate,
		m.Status,
		m.BaseSalary,
		m.Allowance,
		m.BankAccount,
		m.BankName,
		m.EmergencyContactName,
		m.EmergencyContactPhone,
		m.EmergencyContactRelationship,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.EmployeeID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update employee query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("employee not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	if err := r.RequireStore(); err != nil {
		return err
	}
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1;`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", employeeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("employee not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
