package services

import (
	"testing"

	"tailorapp_echo/internal/models"
)

func amt(v int64) *int64 {
	return &v
}

func installments(amounts ...*int64) []models.PaymentInstallment {
	result := make([]models.PaymentInstallment, 0, len(amounts))
	for _, a := range amounts {
		result = append(result, models.PaymentInstallment{PaidAmount: a})
	}
	return result
}

func TestReconcileTotals(t *testing.T) {
	tests := []struct {
		name          string
		total         int64
		installments  []models.PaymentInstallment
		wantPaid      int64
		wantRemaining int64
		wantStatus    models.PaymentStatus
	}{
		{
			name:          "new order without payments",
			total:         1000,
			installments:  nil,
			wantPaid:      0,
			wantRemaining: 1000,
			wantStatus:    models.PaymentStatusUnpaid,
		},
		{
			name:          "partial payment",
			total:         1000,
			installments:  installments(amt(400)),
			wantPaid:      400,
			wantRemaining: 600,
			wantStatus:    models.PaymentStatusPartial,
		},
		{
			name:          "settled across two installments",
			total:         1000,
			installments:  installments(amt(400), amt(600)),
			wantPaid:      1000,
			wantRemaining: 0,
			wantStatus:    models.PaymentStatusPaid,
		},
		{
			name:          "overpayment clamps remaining at zero",
			total:         1000,
			installments:  installments(amt(400), amt(600), amt(200)),
			wantPaid:      1200,
			wantRemaining: 0,
			wantStatus:    models.PaymentStatusPaid,
		},
		{
			name:          "removed installment reopens the order",
			total:         1000,
			installments:  installments(amt(600)),
			wantPaid:      600,
			wantRemaining: 400,
			wantStatus:    models.PaymentStatusPartial,
		},
		{
			name:          "null amounts count as zero",
			total:         1000,
			installments:  installments(nil, amt(300)),
			wantPaid:      300,
			wantRemaining: 700,
			wantStatus:    models.PaymentStatusPartial,
		},
		{
			name:          "only null amounts stay unpaid",
			total:         1000,
			installments:  installments(nil, nil),
			wantPaid:      0,
			wantRemaining: 1000,
			wantStatus:    models.PaymentStatusUnpaid,
		},
		{
			name:          "zero total without payments is unpaid, not settled",
			total:         0,
			installments:  nil,
			wantPaid:      0,
			wantRemaining: 0,
			wantStatus:    models.PaymentStatusUnpaid,
		},
		{
			name:          "zero total with a payment is partial",
			total:         0,
			installments:  installments(amt(100)),
			wantPaid:      100,
			wantRemaining: 0,
			wantStatus:    models.PaymentStatusPartial,
		},
		{
			name:          "exact single payment",
			total:         500,
			installments:  installments(amt(500)),
			wantPaid:      500,
			wantRemaining: 0,
			wantStatus:    models.PaymentStatusPaid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paid, remaining, status := ReconcileTotals(tt.total, tt.installments)
			if paid != tt.wantPaid {
				t.Errorf("paid = %d; want %d", paid, tt.wantPaid)
			}
			if remaining != tt.wantRemaining {
				t.Errorf("remaining = %d; want %d", remaining, tt.wantRemaining)
			}
			if status != tt.wantStatus {
				t.Errorf("status = %q; want %q", status, tt.wantStatus)
			}
		})
	}
}

func TestReconcileTotalsIsIdempotent(t *testing.T) {
	insts := installments(amt(400), amt(250))

	paid1, remaining1, status1 := ReconcileTotals(1000, insts)
	paid2, remaining2, status2 := ReconcileTotals(1000, insts)

	if paid1 != paid2 || remaining1 != remaining2 || status1 != status2 {
		t.Errorf("repeated reconciliation diverged: (%d,%d,%q) vs (%d,%d,%q)",
			paid1, remaining1, status1, paid2, remaining2, status2)
	}
}

func TestRecomputeWritesDerivedFields(t *testing.T) {
	s := &LedgerService{}
	order := models.PaymentOrder{
		TotalAmount:  1000,
		Installments: installments(amt(400)),
		// Stale values a direct DB edit could have left behind
		PaidAmount:      999,
		RemainingAmount: 1,
		PaymentStatus:   models.PaymentStatusPaid,
	}

	s.Recompute(&order)

	if order.PaidAmount != 400 {
		t.Errorf("PaidAmount = %d; want 400", order.PaidAmount)
	}
	if order.RemainingAmount != 600 {
		t.Errorf("RemainingAmount = %d; want 600", order.RemainingAmount)
	}
	if order.PaymentStatus != models.PaymentStatusPartial {
		t.Errorf("PaymentStatus = %q; want %q", order.PaymentStatus, models.PaymentStatusPartial)
	}
}
