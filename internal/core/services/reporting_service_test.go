package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/acctoffice/backoffice_app/internal/core/domain"
	portssvc "github.com/acctoffice/backoffice_app/internal/core/ports/services"
	"github.com/acctoffice/backoffice_app/internal/core/services"
	"github.com/acctoffice/backoffice_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockVoucherRepo *MockVoucherRepository
	service         portssvc.ReportingSvc
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockVoucherRepo = new(MockVoucherRepository)
	suite.service = services.NewReportingService(suite.mockVoucherRepo)
}

// monthKey formats the month that is monthsAgo months before the current one.
func monthKey(monthsAgo int) string {
	now := time.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, -monthsAgo, 0).Format("2006-01")
}

func completedVoucher(date string, amount int64, description string) domain.Voucher {
	return domain.Voucher{
		Amount:      decimal.NewFromInt(amount),
		Date:        date,
		Description: description,
		Status:      domain.VoucherCompleted,
	}
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestMonthlyTotals_ZeroFillsQuietMonths() {
	ctx := context.Background()
	// One voucher in the middle month only; the window must still report
	// all three months.
	vouchers := []domain.Voucher{
		completedVoucher(monthKey(1)+"-15", 1000, "辦公用品"),
	}

	suite.mockVoucherRepo.On("ListCompletedVouchers", ctx).Return(vouchers, nil).Once()

	buckets, err := suite.service.MonthlyTotals(ctx, 3)

	suite.Require().NoError(err)
	suite.Require().Len(buckets, 3)
	suite.Equal(monthKey(2), buckets[0].Month)
	suite.Equal(monthKey(1), buckets[1].Month)
	suite.Equal(monthKey(0), buckets[2].Month)
	suite.True(buckets[0].Total.IsZero())
	suite.True(buckets[1].Total.Equal(decimal.NewFromInt(1000)))
	suite.True(buckets[2].Total.IsZero())
}

func (suite *ReportingServiceTestSuite) TestMonthlyTotals_SumsWithinMonth() {
	ctx := context.Background()
	vouchers := []domain.Voucher{
		completedVoucher(monthKey(0)+"-01", 300, "水電費用"),
		completedVoucher(monthKey(0)+"-20", 700, "水電費用"),
	}

	suite.mockVoucherRepo.On("ListCompletedVouchers", ctx).Return(vouchers, nil).Once()

	buckets, err := suite.service.MonthlyTotals(ctx, 1)

	suite.Require().NoError(err)
	suite.Require().Len(buckets, 1)
	suite.True(buckets[0].Total.Equal(decimal.NewFromInt(1000)))
}

func (suite *ReportingServiceTestSuite) TestMonthlyTotals_IgnoresVouchersOutsideWindow() {
	ctx := context.Background()
	vouchers := []domain.Voucher{
		completedVoucher("2001-01-15", 5000, "歷史資料"),
		completedVoucher(monthKey(0)+"-10", 250, "辦公用品"),
	}

	suite.mockVoucherRepo.On("ListCompletedVouchers", ctx).Return(vouchers, nil).Once()

	buckets, err := suite.service.MonthlyTotals(ctx, 2)

	suite.Require().NoError(err)
	suite.Require().Len(buckets, 2)
	suite.True(buckets[0].Total.IsZero())
	suite.True(buckets[1].Total.Equal(decimal.NewFromInt(250)))
}

func (suite *ReportingServiceTestSuite) TestCategoryBreakdown_BucketsByLeadingRunes() {
	ctx := context.Background()
	vouchers := []domain.Voucher{
		completedVoucher("2026-08-01", 100, "辦公用品採購一批"),
		completedVoucher("2026-08-02", 200, "辦公用品補貨"),
		completedVoucher("2026-08-03", 50, "差旅費用"),
	}

	suite.mockVoucherRepo.On("ListCompletedVouchers", ctx).Return(vouchers, nil).Once()

	buckets, err := suite.service.CategoryBreakdown(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(buckets, 2)
	suite.Equal("辦公用品", buckets[0].Category)
	suite.True(buckets[0].Total.Equal(decimal.NewFromInt(300)))
	suite.Equal("差旅費用", buckets[1].Category)
}

func (suite *ReportingServiceTestSuite) TestCategoryBreakdown_EmptyDescriptionFallback() {
	ctx := context.Background()
	vouchers := []domain.Voucher{
		completedVoucher("2026-08-01", 80, ""),
	}

	suite.mockVoucherRepo.On("ListCompletedVouchers", ctx).Return(vouchers, nil).Once()

	buckets, err := suite.service.CategoryBreakdown(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(buckets, 1)
	suite.Equal("其他", buckets[0].Category)
}

func (suite *ReportingServiceTestSuite) TestCategoryBreakdown_TopFiveOnly() {
	ctx := context.Background()
	descriptions := []string{"房租支出", "水電費用", "辦公用品", "差旅費用", "網路服務", "雜項開支", "保險費用"}
	vouchers := make([]domain.Voucher, len(descriptions))
	for i, d := range descriptions {
		vouchers[i] = completedVoucher("2026-08-01", int64(100*(i+1)), d)
	}

	suite.mockVoucherRepo.On("ListCompletedVouchers", ctx).Return(vouchers, nil).Once()

	buckets, err := suite.service.CategoryBreakdown(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(buckets, 5)
	// Largest bucket first.
	suite.Equal("保險費用", buckets[0].Category)
	suite.True(buckets[0].Total.Equal(decimal.NewFromInt(700)))
	for i := 1; i < len(buckets); i++ {
		suite.True(buckets[i-1].Total.GreaterThanOrEqual(buckets[i].Total))
	}
}

// Guards against the DTO layer dropping months during conversion.
func (suite *ReportingServiceTestSuite) TestMonthlyTotals_DTOKeepsZeroMonths() {
	ctx := context.Background()
	vouchers := []domain.Voucher{
		completedVoucher(monthKey(1)+"-15", 1000, "辦公用品"),
	}

	suite.mockVoucherRepo.On("ListCompletedVouchers", ctx).Return(vouchers, nil).Once()

	buckets, err := suite.service.MonthlyTotals(ctx, 3)
	suite.Require().NoError(err)

	resp := dto.ToMonthlyExpenseResponses(buckets)
	suite.Require().Len(resp, 3)
	suite.Equal("0.00", resp[0].Total)
	suite.Equal("1000.00", resp[1].Total)
	suite.Equal("0.00", resp[2].Total)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
