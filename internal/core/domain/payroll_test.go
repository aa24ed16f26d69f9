package domain_test

import (
	"testing"

	"github.com/acctoffice/backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPayrollRecord_NetPay(t *testing.T) {
	tests := []struct {
		name   string
		record domain.PayrollRecord
		want   string
	}{
		{
			name: "salary plus allowance only",
			record: domain.PayrollRecord{
				BaseSalary: decimal.NewFromInt(50000),
				Allowance:  decimal.NewFromInt(2000),
			},
			want: "52000",
		},
		{
			name: "bonus added and deduction subtracted",
			record: domain.PayrollRecord{
				BaseSalary: decimal.NewFromInt(50000),
				Allowance:  decimal.NewFromInt(2000),
				Bonus:      decimal.NewFromInt(3000),
				Deduction:  decimal.NewFromInt(1500),
			},
			want: "53500",
		},
		{
			name: "deduction larger than earnings goes negative",
			record: domain.PayrollRecord{
				BaseSalary: decimal.NewFromInt(1000),
				Deduction:  decimal.NewFromInt(2500),
			},
			want: "-1500",
		},
		{
			name:   "zero record",
			record: domain.PayrollRecord{},
			want:   "0",
		},
		{
			name: "cent precision survives",
			record: domain.PayrollRecord{
				BaseSalary: decimal.RequireFromString("50000.25"),
				Allowance:  decimal.RequireFromString("0.50"),
				Deduction:  decimal.RequireFromString("0.75"),
			},
			want: "50000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.record.NetPay()
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestVoucherStatus_IsTerminal(t *testing.T) {
	assert.False(t, domain.VoucherPending.IsTerminal())
	assert.True(t, domain.VoucherCompleted.IsTerminal())
	assert.True(t, domain.VoucherVoid.IsTerminal())
}
