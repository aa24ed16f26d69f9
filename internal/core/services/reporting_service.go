package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/acctoffice/backoffice_app/internal/apperrors"
	"github.com/acctoffice/backoffice_app/internal/core/domain"
	portsrepo "github.com/acctoffice/backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/acctoffice/backoffice_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// categoryFallback buckets vouchers whose description is empty.
const categoryFallback = "其他"

// categoryRunes is how many leading runes of a description name its bucket.
const categoryRunes = 4

// topCategories caps the category breakdown.
const topCategories = 5

// ReportingService derives summary views from completed vouchers.
// Only completed vouchers count toward expenses; pending and void ones
// are excluded from every report.
type ReportingService struct {
	BaseService
	voucherRepo portsrepo.VoucherReader
}

// NewReportingService creates a new ReportingService.
func NewReportingService(voucherRepo portsrepo.VoucherReader) *ReportingService {
	return &ReportingService{voucherRepo: voucherRepo}
}

var _ portssvc.ReportingSvc = (*ReportingService)(nil)

// MonthlyTotals buckets completed vouchers into a trailing window of
// monthsBack calendar months ending at the current month. The window is
// generated first and the data folded in, so months without vouchers
// appear with a zero total and the result is always chronological.
func (s *ReportingService) MonthlyTotals(ctx context.Context, monthsBack int) ([]domain.MonthlyExpense, error) {
	if monthsBack < 1 {
		return nil, fmt.Errorf("%w: months must be at least 1", apperrors.ErrValidation)
	}

	vouchers, err := s.voucherRepo.ListCompletedVouchers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load vouchers for monthly report: %w", err)
	}

	totals := make(map[string]decimal.Decimal)
	for _, v := range vouchers {
		if len(v.Date) < 7 {
			continue
		}
		month := v.Date[:7]
		totals[month] = totals[month].Add(v.Amount)
	}

	now := time.Now()
	// Normalize to the first of the month so AddDate cannot skip a short
	// month.
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	buckets := make([]domain.MonthlyExpense, 0, monthsBack)
	for i := monthsBack - 1; i >= 0; i-- {
		month := current.AddDate(0, -i, 0).Format("2006-01")
		buckets = append(buckets, domain.MonthlyExpense{
			Month: month,
			Total: totals[month],
		})
	}
	return buckets, nil
}

// CategoryBreakdown buckets completed vouchers by the leading runes of
// their description, sums each bucket, and returns the largest buckets in
// descending order.
func (s *ReportingService) CategoryBreakdown(ctx context.Context) ([]domain.CategoryExpense, error) {
	vouchers, err := s.voucherRepo.ListCompletedVouchers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load vouchers for category report: %w", err)
	}

	totals := make(map[string]decimal.Decimal)
	for _, v := range vouchers {
		category := categoryOf(v.Description)
		totals[category] = totals[category].Add(v.Amount)
	}

	buckets := make([]domain.CategoryExpense, 0, len(totals))
	for category, total := range totals {
		buckets = append(buckets, domain.CategoryExpense{Category: category, Total: total})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if !buckets[i].Total.Equal(buckets[j].Total) {
			return buckets[i].Total.GreaterThan(buckets[j].Total)
		}
		return buckets[i].Category < buckets[j].Category
	})

	if len(buckets) > topCategories {
		buckets = buckets[:topCategories]
	}
	return buckets, nil
}

func categoryOf(description string) string {
	if description == "" {
		return categoryFallback
	}
	runes := []rune(description)
	if len(runes) > categoryRunes {
		runes = runes[:categoryRunes]
	}
	return string(runes)
}
