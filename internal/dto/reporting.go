package dto

import "github.com/acctoffice/backoffice_app/internal/core/domain"

// MonthlyExpenseResponse is one month bucket of the expense trend report.
type MonthlyExpenseResponse struct {
	Month string `json:"month"` // YYYY-MM
	Total string `json:"total"`
}

// CategoryExpenseResponse is one bucket of the category breakdown report.
type CategoryExpenseResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

// ToMonthlyExpenseResponses converts monthly buckets to response DTOs
func ToMonthlyExpenseResponses(buckets []domain.MonthlyExpense) []MonthlyExpenseResponse {
	res := make([]MonthlyExpenseResponse, len(buckets))
	for i, b := range buckets {
		res[i] = MonthlyExpenseResponse{Month: b.Month, Total: b.Total.StringFixed(2)}
	}
	return res
}

// ToCategoryExpenseResponses converts category buckets to response DTOs
func ToCategoryExpenseResponses(buckets []domain.CategoryExpense) []CategoryExpenseResponse {
	res := make([]CategoryExpenseResponse, len(buckets))
	for i, b := range buckets {
		res[i] = CategoryExpenseResponse{Category: b.Category, Total: b.Total.StringFixed(2)}
	}
	return res
}

// MonthlyExpenseReportResponse wraps the monthly trend payload.
type MonthlyExpenseReportResponse struct {
	Months []MonthlyExpenseResponse `json:"months"`
}

// CategoryBreakdownResponse wraps the category breakdown payload.
type CategoryBreakdownResponse struct {
	Categories []CategoryExpenseResponse `json:"categories"`
}
