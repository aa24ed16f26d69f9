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

type PgxVoucherRepository struct {
	BaseRepository
}

func newPgxVoucherRepository(db *pgxpool.Pool) portsrepo.VoucherRepositoryFacade {
	return &PgxVoucherRepository{BaseRepository{Pool: db}}
}

// Ensure PgxVoucherRepository implements portsrepo.VoucherRepositoryFacade
var _ portsrepo.VoucherRepositoryFacade = (*PgxVoucherRepository)(nil)

func toModelVoucher(d domain.Voucher) models.Voucher {
	return models.Voucher{
		VoucherID:   d.VoucherID,
		VendorID:    d.VendorID,
		Amount:      d.Amount,
		Date:        d.Date,
		Description: d.Description,
		Status:      models.VoucherStatus(d.Status),
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainVoucher(m models.Voucher) domain.Voucher {
	return domain.Voucher{
		VoucherID:   m.VoucherID,
		VendorID:    m.VendorID,
		Amount:      m.Amount,
		Date:        m.Date,
		Description: m.Description,
		Status:      domain.VoucherStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const voucherColumns = `voucher_id, vendor_id, amount, date, description, status, created_at, created_by, last_updated_at, last_updated_by`

func scanVoucherRow(row pgx.Row) (*models.Voucher, error) {
	var m models.Voucher
	err := row.Scan(
		&m.VoucherID,
		&m.VendorID,
		&m.Amount,
		&m.Date,
		&m.Description,
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

func (r *PgxVoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher) error {
	if err := r.RequireStore(); err != nil {
		return err
	}
	m := toModelVoucher(voucher)
	query := `
        INSERT INTO vouchers (voucher_id, vendor_id, amount, date, description, status, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.VoucherID,
		m.VendorID,
		m.Amount,
		m.Date,
		m.Description,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save voucher: %w", mapConstraintError(err))
	}
	return nil
}

func (r *PgxVoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	if !r.Available() {
		return nil, apperrors.ErrNotFound
	}
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE voucher_id = $1;`
	m, err := scanVoucherRow(r.Pool.QueryRow(ctx, query, voucherID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find voucher by ID %s: %w", voucherID, err)
	}
	d := toDomainVoucher(*m)
	return &d, nil
}

func (r *PgxVoucherRepository) queryVouchers(ctx context.Context, query string, args ...any) ([]domain.Voucher, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query vouchers: %w", err)
	}
	defer rows.Close()

	vouchers := []domain.Voucher{}
	for rows.Next() {
		m, err := scanVoucherRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan voucher row: %w", err)
		}
		vouchers = append(vouchers, toDomainVoucher(*m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating voucher rows: %w", rows.Err())
	}
	return vouchers, nil
}

func (r *PgxVoucherRepository) ListVouchers(ctx context.Context, limit int, offset int) ([]domain.Voucher, error) {
	if !r.Available() {
		return []domain.Voucher{}, nil
	}
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT ` + voucherColumns + ` FROM vouchers ORDER BY created_at DESC LIMIT $1 OFFSET $2;`
	return r.queryVouchers(ctx, query, limit, offset)
}

func (r *PgxVoucherRepository) FindVouchersByVendorID(ctx context.Context, vendorID string) ([]domain.Voucher, error) {
	if !r.Available() {
		return []domain.Voucher{}, nil
	}
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE vendor_id = $1 ORDER BY created_at DESC;`
	return r.queryVouchers(ctx, query, vendorID)
}

func (r *PgxVoucherRepository) ListCompletedVouchers(ctx context.Context) ([]domain.Voucher, error) {
	if !r.Available() {
		return []domain.Voucher{}, nil
	}
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE status = $1 ORDER BY date;`
	return r.queryVouchers(ctx, query, models.VoucherCompleted)
}

func (r *PgxVoucherRepository) UpdateVoucher(ctx context.Context, voucher domain.Voucher) error {
	if err := r.RequireStore(); err != nil {
		return err
	}
	m := toModelVoucher(voucher)
	query := `
        UPDATE vouchers
        SET vendor_id = $1, amount = $2, date = $3, description = $4, status = $5, last_updated_at = $6, last_updated_by = $7
        WHERE voucher_id = $8;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.VendorID,
		m.Amount,
		m.Date,
		m.Description,
		m.Status,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.VoucherID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update voucher query: %w", mapConstraintError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("voucher not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxVoucherRepository) DeleteVoucher(ctx context.Context, voucherID string) error {
	if err := r.RequireStore(); err != nil {
		return err
	}
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM vouchers WHERE voucher_id = $1;`, voucherID)
	if err != nil {
		return fmt.Errorf("failed to delete voucher %s: %w", voucherID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("voucher not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
