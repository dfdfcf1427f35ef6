package services

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"tailorapp_echo/internal/models"
)

// ReportRow is one payment order line in the ranged payment report.
type ReportRow struct {
	Date            time.Time
	ClientID        uint
	ClientName      string
	DressCount      int64
	WaistcoatCount  int64
	DressAmount     int64
	WaistcoatAmount int64
	TotalAmount     int64
	PaidAmount      int64
	RemainingAmount int64
}

// ReportTotals accumulates the grand total line.
type ReportTotals struct {
	DressCount      int64
	WaistcoatCount  int64
	DressAmount     int64
	WaistcoatAmount int64
	TotalAmount     int64
	PaidAmount      int64
	RemainingAmount int64
}

func (t *ReportTotals) add(r ReportRow) {
	t.DressCount += r.DressCount
	t.WaistcoatCount += r.WaistcoatCount
	t.DressAmount += r.DressAmount
	t.WaistcoatAmount += r.WaistcoatAmount
	t.TotalAmount += r.TotalAmount
	t.PaidAmount += r.PaidAmount
	t.RemainingAmount += r.RemainingAmount
}

// BuildPaymentReport assembles the report rows for orders dated within
// [start, end], ascending by date. Paid figures are reconciled from the
// installment sets rather than read from the stored derived columns.
func BuildPaymentReport(db *gorm.DB, start, end time.Time) ([]ReportRow, ReportTotals, error) {
	var orders []models.PaymentOrder
	err := db.Preload("Installments").Preload("Client").
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC, id ASC").
		Find(&orders).Error
	if err != nil {
		return nil, ReportTotals{}, err
	}

	var rows []ReportRow
	var totals ReportTotals
	for _, o := range orders {
		paid, remaining, _ := ReconcileTotals(o.TotalAmount, o.Installments)

		row := ReportRow{
			Date:            o.Date,
			ClientID:        o.ClientID,
			ClientName:      o.Client.Name,
			DressCount:      o.DressCount,
			WaistcoatCount:  o.WaistcoatCount,
			DressAmount:     o.DressRate * o.DressCount,
			WaistcoatAmount: o.WaistcoatRate * o.WaistcoatCount,
			TotalAmount:     o.TotalAmount,
			PaidAmount:      paid,
			RemainingAmount: remaining,
		}
		rows = append(rows, row)
		totals.add(row)
	}

	return rows, totals, nil
}

var reportHeaders = []string{
	"Date", "Client (ID - Name)", "Dress Count", "Waistcoat Count",
	"Dress Amt", "Waistcoat Amt", "Total Amt", "Paid", "Remaining",
}

// WritePaymentReportXLSX renders the report as an Excel workbook.
func WritePaymentReportXLSX(w io.Writer, rows []ReportRow, totals ReportTotals) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for i, header := range reportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}

	for rowIdx, r := range rows {
		values := []interface{}{
			r.Date.Format("02-Jan-2006"),
			fmt.Sprintf("%d - %s", r.ClientID, r.ClientName),
			r.DressCount,
			r.WaistcoatCount,
			r.DressAmount,
			r.WaistcoatAmount,
			r.TotalAmount,
			r.PaidAmount,
			r.RemainingAmount,
		}
		for colIdx, v := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	totalRow := len(rows) + 2
	totalValues := []interface{}{
		"", "Grand Total",
		totals.DressCount, totals.WaistcoatCount,
		totals.DressAmount, totals.WaistcoatAmount,
		totals.TotalAmount, totals.PaidAmount, totals.RemainingAmount,
	}
	for colIdx, v := range totalValues {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, totalRow)
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}

	return f.Write(w)
}
