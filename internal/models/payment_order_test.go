package models

import (
	"testing"
	"time"
)

func TestIsReturnDue(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.Local)
	yesterday := now.AddDate(0, 0, -1)
	today := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)
	tomorrow := now.AddDate(0, 0, 1)

	tests := []struct {
		name  string
		order PaymentOrder
		want  bool
	}{
		{
			name:  "no return date",
			order: PaymentOrder{ReturnStatus: ReturnStatusPending},
			want:  false,
		},
		{
			name:  "overdue since yesterday",
			order: PaymentOrder{ReturnStatus: ReturnStatusPending, ReturnDate: &yesterday},
			want:  true,
		},
		{
			name:  "due today",
			order: PaymentOrder{ReturnStatus: ReturnStatusPending, ReturnDate: &today},
			want:  true,
		},
		{
			name:  "due tomorrow",
			order: PaymentOrder{ReturnStatus: ReturnStatusPending, ReturnDate: &tomorrow},
			want:  false,
		},
		{
			name:  "already returned",
			order: PaymentOrder{ReturnStatus: ReturnStatusReturned, ReturnDate: &yesterday},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.order.IsReturnDue(now); got != tt.want {
				t.Errorf("IsReturnDue = %v; want %v", got, tt.want)
			}
		})
	}
}
