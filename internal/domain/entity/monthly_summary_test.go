package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestFirstOfMonth(t *testing.T) {
	got := FirstOfMonth(time.Date(2026, 8, 30, 17, 45, 12, 0, time.UTC))
	want := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestPreviousMonth(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "mid-month",
			in:   time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC),
			want: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "january wraps to december of prior year",
			in:   time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "march maps to february regardless of day",
			in:   time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC),
			want: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PreviousMonth(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNewMonthlySummary_NormalizesMonthAndDerivesBalance(t *testing.T) {
	summary := NewMonthlySummary(
		uuid.New(),
		time.Date(2026, 7, 19, 8, 30, 0, 0, time.UTC),
		decimal.RequireFromString("1000.00"),
		decimal.RequireFromString("250.75"),
	)

	want := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	if !summary.Month.Equal(want) {
		t.Errorf("expected month normalized to %v, got %v", want, summary.Month)
	}
	if summary.Balance.String() != "749.25" {
		t.Errorf("expected balance 749.25, got %s", summary.Balance)
	}
}
