package services

import (
	"context"

	"github.com/acctoffice/backoffice_app/internal/core/domain"
)

// ReportingSvc derives summary views from completed vouchers.
type ReportingSvc interface {
	// MonthlyTotals buckets completed vouchers into a trailing window of
	// monthsBack calendar months ending at the current month. Months with
	// no matching vouchers report a zero total.
	MonthlyTotals(ctx context.Context, monthsBack int) ([]domain.MonthlyExpense, error)

	// CategoryBreakdown buckets completed vouchers by a category proxy
	// derived from the description, descending by total, top 5.
	CategoryBreakdown(ctx context.Context) ([]domain.CategoryExpense, error)
}
