package services

import (
	"context"
	"fmt"
	"time"

	"github.com/acctoffice/backoffice_app/internal/apperrors"
	"github.com/acctoffice/backoffice_app/internal/core/domain"
	portsrepo "github.com/acctoffice/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/acctoffice/backoffice_app/internal/core/ports/services"
	"github.com/acctoffice/backoffice_app/internal/dto"
	"github.com/google/uuid"
	"log/slog"
)

// EmployeeService provides business logic for employee records.
type EmployeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

var _ portssvc.EmployeeSvcFacade = (*EmployeeService)(nil)

func (s *EmployeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, creatorUserID string) (*domain.Employee, error) {
	baseSalary, err := parseAmount("baseSalary", req.BaseSalary)
	if err != nil {
		return nil, err
	}
	allowance, err := parseAmount("allowance", req.Allowance)
	if err != nil {
		return nil, err
	}

	status := domain.EmployeeActive
	if req.Status != "" {
		status = domain.EmployeeStatus(req.Status)
	}

	now := time.Now()
	employee := domain.Employee{
		EmployeeID:                   uuid.NewString(),
		Name:                         req.Name,
		Department:                   req.Department,
		Position:                     req.Position,
		Email:                        req.Email,
		Phone:                        req.Phone,
		JoinDate:                     req.JoinDate,
		Status:                       status,
		BaseSalary:                   baseSalary,
		Allowance:                    allowance,
		BankAccount:                  req.BankAccount,
		BankName:                     req.BankName,
		EmergencyContactName:         req.EmergencyContactName,
		EmergencyContactPhone:        req.EmergencyContactPhone,
		EmergencyContactRelationship: req.EmergencyContactRelationship,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		s.LogError(ctx, err, "failed to create employee")
		return nil, fmt.Errorf("failed to create employee in service: %w", err)
	}

	s.LogInfo(ctx, "employee created", slog.String("employee_id", employee.EmployeeID))
	return &employee, nil
}

func (s *EmployeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee by ID in service: %w", err)
	}
	return employee, nil
}

func (s *EmployeeService) ListEmployees(ctx context.Context, limit int, offset int) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees in service: %w", err)
	}
	if employees == nil {
		return []domain.Employee{}, nil
	}
	return employees, nil
}

func (s *EmployeeService) ListActiveEmployees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.ListActiveEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees in service: %w", err)
	}
	if employees == nil {
		return []domain.Employee{}, nil
	}
	return employees, nil
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, updaterUserID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find employee for update: %w", err)
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Department != nil {
		employee.Department = *req.Department
	}
	if req.Position != nil {
		employee.Position = *req.Position
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if req.JoinDate != nil {
		employee.JoinDate = *req.JoinDate
	}
	if req.Status != nil {
		next := domain.EmployeeStatus(*req.Status)
		if !next.IsValid() {
			return nil, fmt.Errorf("%w: unknown employee status '%s'", apperrors.ErrValidation, *req.Status)
		}
		employee.Status = next
	}
	if req.BaseSalary != nil {
		baseSalary, err := parseAmount("baseSalary", *req.BaseSalary)
		if err != nil {
			return nil, err
		}
		employee.BaseSalary = baseSalary
	}
	if req.Allowance != nil {
		allowance, err := parseAmount("allowance", *req.Allowance)
		if err != nil {
			return nil, err
		}
		employee.Allowance = allowance
	}
	if req.BankAccount != nil {
		employee.BankAccount = *req.BankAccount
	}
	if req.BankName != nil {
		employee.BankName = *req.BankName
	}
	if req.EmergencyContactName != nil {
		employee.EmergencyContactName = *req.EmergencyContactName
	}
	if req.EmergencyContactPhone != nil {
		employee.EmergencyContactPhone = *req.EmergencyContactPhone
	}
	if req.EmergencyContactRelationship != nil {
		employee.EmergencyContactRelationship = *req.EmergencyContactRelationship
	}
	employee.LastUpdatedAt = time.Now()
	employee.LastUpdatedBy = updaterUserID

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		s.LogError(ctx, err, "failed to update employee", slog.String("employee_id", employeeID))
		return nil, fmt.Errorf("failed to update employee in service: %w", err)
	}
	return employee, nil
}

// DeleteEmployee removes the employee row. Payroll records carry their own
// name/department/position snapshots, so history survives the delete.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, employeeID string, deleterUserID string) error {
	if err := s.employeeRepo.DeleteEmployee(ctx, employeeID); err != nil {
		return fmt.Errorf("failed to delete employee in service: %w", err)
	}
	s.LogInfo(ctx, "employee deleted", slog.String("employee_id", employeeID), slog.String("deleted_by", deleterUserID))
	return nil
}
