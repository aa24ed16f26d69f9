package services

import (
	"context"

	"github.com/acctoffice/backoffice_app/internal/core/domain"
	"github.com/acctoffice/backoffice_app/internal/dto"
)

// EmployeeReaderSvc defines read operations for employee data
type EmployeeReaderSvc interface {
	// GetEmployeeByID retrieves a specific employee by its ID.
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// ListEmployees retrieves employees, newest-created first.
	ListEmployees(ctx context.Context, limit int, offset int) ([]domain.Employee, error)

	// ListActiveEmployees retrieves active employees ordered by name.
	ListActiveEmployees(ctx context.Context) ([]domain.Employee, error)
}

// EmployeeWriterSvc defines write operations for employee data
type EmployeeWriterSvc interface {
	// CreateEmployee persists a new employee.
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, creatorUserID string) (*domain.Employee, error)

	// UpdateEmployee merges the supplied fields into an existing employee.
	UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, updaterUserID string) (*domain.Employee, error)

	// DeleteEmployee removes an employee.
	DeleteEmployee(ctx context.Context, employeeID string, deleterUserID string) error
}

// EmployeeSvcFacade combines all employee-related service interfaces
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
}
