package services

import (
	portsrepo "github.com/acctoffice/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/acctoffice/backoffice_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Vendor = NewVendorService(repos.VendorRepo, repos.VoucherRepo)
	container.Voucher = NewVoucherService(repos.VoucherRepo, repos.VendorRepo)
	container.Employee = NewEmployeeService(repos.EmployeeRepo)
	container.Payroll = NewPayrollService(repos.PayrollRepo, repos.EmployeeRepo)
	container.Reporting = NewReportingService(repos.VoucherRepo)
	container.User = NewUserService(repos.UserRepo)

	return container
}
