package services

import (
	"bytes"
	"testing"
	"time"
)

func TestReportTotalsAccumulate(t *testing.T) {
	var totals ReportTotals
	totals.add(ReportRow{DressCount: 2, DressAmount: 800, TotalAmount: 800, PaidAmount: 300, RemainingAmount: 500})
	totals.add(ReportRow{WaistcoatCount: 1, WaistcoatAmount: 500, TotalAmount: 500, PaidAmount: 500})

	if totals.DressCount != 2 || totals.WaistcoatCount != 1 {
		t.Errorf("counts = (%d, %d); want (2, 1)", totals.DressCount, totals.WaistcoatCount)
	}
	if totals.TotalAmount != 1300 {
		t.Errorf("TotalAmount = %d; want 1300", totals.TotalAmount)
	}
	if totals.PaidAmount != 800 {
		t.Errorf("PaidAmount = %d; want 800", totals.PaidAmount)
	}
	if totals.RemainingAmount != 500 {
		t.Errorf("RemainingAmount = %d; want 500", totals.RemainingAmount)
	}
}

func TestWritePaymentReportXLSX(t *testing.T) {
	rows := []ReportRow{
		{
			Date:            time.Date(2025, 1, 5, 0, 0, 0, 0, time.Local),
			ClientName:      "Ali",
			DressCount:      2,
			DressAmount:     800,
			TotalAmount:     800,
			PaidAmount:      300,
			RemainingAmount: 500,
		},
	}
	totals := ReportTotals{DressCount: 2, DressAmount: 800, TotalAmount: 800, PaidAmount: 300, RemainingAmount: 500}

	var buf bytes.Buffer
	if err := WritePaymentReportXLSX(&buf, rows, totals); err != nil {
		t.Fatalf("WritePaymentReportXLSX returned error: %v", err)
	}
	// xlsx files are zip archives
	if !bytes.HasPrefix(buf.Bytes(), []byte("PK")) {
		t.Errorf("output does not look like an xlsx archive")
	}
}
