package domain

import "github.com/shopspring/decimal"

// MonthlyExpense is one bucket of the trailing monthly expense report.
// Months with no completed vouchers still appear with a zero total.
type MonthlyExpense struct {
	Month string          `json:"month"` // YYYY-MM
	Total decimal.Decimal `json:"total"`
}

// CategoryExpense is one bucket of the expense category breakdown.
// The category is a proxy derived from the voucher description; the data
// model has no dedicated category field.
type CategoryExpense struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}
