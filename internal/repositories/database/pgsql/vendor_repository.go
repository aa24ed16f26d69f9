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

type PgxVendorRepository struct {
	BaseRepository
}

func newPgxVendorRepository(db *pgxpool.Pool) portsrepo.VendorRepositoryFacade {
	return &PgxVendorRepository{BaseRepository{Pool: db}}
}

// Ensure PgxVendorRepository implements portsrepo.VendorRepositoryFacade
var _ portsrepo.VendorRepositoryFacade = (*PgxVendorRepository)(nil)

func toModelVendor(d domain.Vendor) models.Vendor {
	return models.Vendor{
		VendorID:      d.VendorID,
		Name:          d.Name,
		TaxID:         d.TaxID,
		Phone:         d.Phone,
		BankAccount:   d.BankAccount,
		ContactPerson: d.ContactPerson,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainVendor(m models.Vendor) domain.Vendor {
	return domain.Vendor{
		VendorID:      m.VendorID,
		Name:          m.Name,
		TaxID:         m.TaxID,
		Phone:         m.Phone,
		BankAccount:   m.BankAccount,
		ContactPerson: m.ContactPerson,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func (r *PgxVendorRepository) SaveVendor(ctx context.Context, vendor domain.Vendor) error {
	if err := r.RequireStore(); err != nil {
		return err
	}
	m := toModelVendor(vendor)
	query := `
        INSERT INTO vendors (vendor_id, name, tax_id, phone, bank_account, contact_person, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.VendorID,
		m.Name,
		m.TaxID,
		m.Phone,
		m.BankAccount,
		m.ContactPerson,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save vendor: %w", mapConstraintError(err))
	}
	return nil
}

func (r *PgxVendorRepository) FindVendorByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	if !r.Available() {
		return nil, apperrors.ErrNotFound
	}
	query := `
		SELECT vendor_id, name, tax_id, phone, bank_account, contact_person, created_at, created_by, last_updated_at, last_updated_by
		FROM vendors
		WHERE vendor_id = $1;
	`
	var m models.Vendor
	err := r.Pool.QueryRow(ctx, query, vendorID).Scan(
		&m.VendorID,
		&m.Name,
		&m.TaxID,
		&m.Phone,
		&m.BankAccount,
		&m.ContactPerson,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vendor by ID %s: %w", vendorID, err)
	}
	d := toDomainVendor(m)
	return &d, nil
}

func (r *PgxVendorRepository) ListVendors(ctx context.Context, limit int, offset int) ([]domain.Vendor, error) {
	if !r.Available() {
		return []domain.Vendor{}, nil
	}
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `
        SELECT vendor_id, name, tax_id, phone, bank_account, contact_person, created_at, created_by, last_updated_at, last_updated_by
        FROM vendors
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendors: %w", err)
	}
	defer rows.Close()

	vendors := []domain.Vendor{}
	for rows.Next() {
		var m models.Vendor
		err := rows.Scan(
			&m.VendorID,
			&m.Name,
			&m.TaxID,
			&m.Phone,
			&m.BankAccount,
			&m.ContactPerson,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vendor row: %w", err)
		}
		vendors = append(vendors, toDomainVendor(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating vendor rows: %w", rows.Err())
	}
	return vendors, nil
}

func (r *PgxVendorRepository) UpdateVendor(ctx context.Context, vendor domain.Vendor) error {
	if err := r.RequireStore(); err != nil {
		return err
	}
	m := toModelVendor(vendor)
	query := `
        UPDATE vendors
        SET name = $1, tax_id = $2, phone = $3, bank_account = $4, contact_person = $5, last_updated_at = $6, last_updated_by = $7
        WHERE vendor_id = $8;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Name,
		m.TaxID,
		m.Phone,
		m.BankAccount,
		m.ContactPerson,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.VendorID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update vendor query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("vendor not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxVendorRepository) DeleteVendor(ctx context.Context, vendorID string) error {
	if err := r.RequireStore(); err != nil {
		return err
	}
	// The FK on vouchers.vendor_id is ON DELETE RESTRICT, so a concurrent
	// voucher creation cannot slip past the service-level dependent check.
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM vendors WHERE vendor_id = $1;`, vendorID)
	if err != nil {
		return fmt.Errorf("failed to delete vendor %s: %w", vendorID, mapConstraintError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("vendor not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
