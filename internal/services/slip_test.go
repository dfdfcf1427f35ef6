package services

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"tailorapp_echo/internal/models"
)

func TestAmountInWords(t *testing.T) {
	got := AmountInWords(450)
	if !strings.HasPrefix(got, "Rupees ") {
		t.Errorf("AmountInWords(450) = %q; want 'Rupees ' prefix", got)
	}
	if !strings.HasSuffix(got, " only") {
		t.Errorf("AmountInWords(450) = %q; want ' only' suffix", got)
	}
	if got == "Rupees  only" {
		t.Errorf("AmountInWords(450) = %q; amount words missing", got)
	}
}

func TestAmountInWordsNegativeClampsToZero(t *testing.T) {
	if got, want := AmountInWords(-5), AmountInWords(0); got != want {
		t.Errorf("AmountInWords(-5) = %q; want %q", got, want)
	}
}

func TestRenderPaymentSlipProducesPDF(t *testing.T) {
	r := &SlipRenderer{ShopName: "Test Tailors", Footer: "Thank you"}

	paid := int64(400)
	now := time.Now()
	order := models.PaymentOrder{
		Date:        now,
		TotalAmount: 1000,
		Installments: []models.PaymentInstallment{
			{PaidAmount: &paid, PaymentDate: &now, Note: "advance"},
		},
	}
	order.PaidAmount, order.RemainingAmount, order.PaymentStatus = ReconcileTotals(order.TotalAmount, order.Installments)

	var buf bytes.Buffer
	if err := r.RenderPaymentSlip(&buf, models.Client{Name: "Ali"}, order); err != nil {
		t.Fatalf("RenderPaymentSlip returned error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output does not start with PDF header")
	}
}

func TestRenderPaymentReportProducesPDF(t *testing.T) {
	r := &SlipRenderer{ShopName: "Test Tailors"}

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.Local)
	rows := []ReportRow{
		{
			Date:            start,
			ClientName:      "Ali",
			DressCount:      2,
			DressAmount:     1000,
			TotalAmount:     1000,
			PaidAmount:      400,
			RemainingAmount: 600,
		},
	}
	totals := ReportTotals{TotalAmount: 1000, PaidAmount: 400, RemainingAmount: 600}

	var buf bytes.Buffer
	if err := r.RenderPaymentReport(&buf, start, end, rows, totals); err != nil {
		t.Fatalf("RenderPaymentReport returned error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("output does not start with PDF header")
	}
}
