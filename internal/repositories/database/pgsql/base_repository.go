package pgsql

import (
	"errors"

	"github.com/acctoffice/backoffice_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/pgconn"
)

// BaseRepository provides common functionality for all repositories.
// The pool is nil when no store is configured; reads then degrade to
// empty results and writes fail with apperrors.ErrStoreUnavailable.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Available reports whether a persistent store is configured.
func (r *BaseRepository) Available() bool {
	return r.Pool != nil
}

// RequireStore returns ErrStoreUnavailable when no store is configured.
// Write paths call this before touching the pool.
func (r *BaseRepository) RequireStore() error {
	if r.Pool == nil {
		return apperrors.ErrStoreUnavailable
	}
	return nil
}

// Postgres error codes mapped to application errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// mapConstraintError translates constraint violations raised by the store
// into the application error taxonomy.
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperrors.ErrDuplicate
		case pgForeignKeyViolation:
			return apperrors.ErrHasDependents
		}
	}
	return err
}
