package services_test

import (
	"context"
	"testing"

	"github.com/acctoffice/backoffice_app/internal/apperrors"
	"github.com/acctoffice/backoffice_app/internal/core/domain"
	portssvc "github.com/acctoffice/backoffice_app/internal/core/ports/services"
	"github.com/acctoffice/backoffice_app/internal/core/services"
	"github.com/acctoffice/backoffice_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type EmployeeServiceTestSuite struct {
	suite.Suite
	mockEmployeeRepo *MockEmployeeRepository
	service          portssvc.EmployeeSvcFacade
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.service = services.NewEmployeeService(suite.mockEmployeeRepo)
}

// --- Test Cases ---

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_DefaultsToActive() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateEmployeeRequest{
		Name:       "Chen",
		Department: "財務部",
		Position:   "會計",
		Phone:      "0912-345-678",
		JoinDate:   "2024-03-01",
		BaseSalary: "50000",
		Allowance:  "2000",
	}

	suite.mockEmployeeRepo.On("SaveEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.Status == domain.EmployeeActive && e.BaseSalary.Equal(decimal.NewFromInt(50000)) && e.CreatedBy == creatorUserID
	})).Return(nil).Once()

	employee, err := suite.service.CreateEmployee(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Equal(domain.EmployeeActive, employee.Status)
	suite.NotEmpty(employee.EmployeeID)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_BadSalary() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{
		Name:       "Chen",
		Department: "財務部",
		Position:   "會計",
		Phone:      "0912-345-678",
		JoinDate:   "2024-03-01",
		BaseSalary: "fifty thousand",
	}

	employee, err := suite.service.CreateEmployee(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(employee)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEmployeeRepo.AssertNotCalled(suite.T(), "SaveEmployee", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_StatusChange() {
	ctx := context.Background()
	employeeID := uuid.NewString()
	existing := &domain.Employee{
		EmployeeID: employeeID,
		Name:       "Lin",
		Status:     domain.EmployeeActive,
		BaseSalary: decimal.NewFromInt(60000),
	}
	status := string(domain.EmployeeResigned)
	req := dto.UpdateEmployeeRequest{Status: &status}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, employeeID).Return(existing, nil).Once()
	suite.mockEmployeeRepo.On("UpdateEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.Status == domain.EmployeeResigned && e.BaseSalary.Equal(decimal.NewFromInt(60000))
	})).Return(nil).Once()

	employee, err := suite.service.UpdateEmployee(ctx, employeeID, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.EmployeeResigned, employee.Status)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestListActiveEmployees_EmptyNotNil() {
	ctx := context.Background()

	suite.mockEmployeeRepo.On("ListActiveEmployees", ctx).Return(nil, nil).Once()

	employees, err := suite.service.ListActiveEmployees(ctx)

	suite.Require().NoError(err)
	suite.NotNil(employees)
	suite.Empty(employees)
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
