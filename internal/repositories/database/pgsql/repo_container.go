package pgsql

import (
	portsrepo "github.com/acctoffice/backoffice_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every repository over the shared pool.
// A nil pool is legal: the application then runs in store-unavailable mode.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		VendorRepo:   newPgxVendorRepository(dbPool),
		VoucherRepo:  newPgxVoucherRepository(dbPool),
		EmployeeRepo: newPgxEmployeeRepository(dbPool),
		PayrollRepo:  newPgxPayrollRepository(dbPool),
		UserRepo:     newPgxUserRepository(dbPool),
	}
}
