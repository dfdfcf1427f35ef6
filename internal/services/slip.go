package services

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/divan/num2words"
	"github.com/jung-kurt/gofpdf"

	"tailorapp_echo/internal/models"
)

// SlipRenderer prints measurement slips, payment slips and the ranged payment
// report as PDF documents. All derived payment figures must already be
// reconciled before rendering; this layer only formats numbers.
type SlipRenderer struct {
	ShopName string
	Footer   string
}

// AmountInWords spells out a rupee amount for payment slips.
func AmountInWords(amount int64) string {
	if amount < 0 {
		amount = 0
	}
	words := num2words.Convert(int(amount))
	return fmt.Sprintf("Rupees %s only", strings.TrimSpace(words))
}

func (r *SlipRenderer) newDoc() *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	printed := time.Now().Format("02-Jan-2006 15:04")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 7)
		pdf.CellFormat(95, 5, "Printed: "+printed, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 7)
		pdf.CellFormat(95, 5, "Return Date: __________", "", 1, "R", false, 0, "")
		if r.Footer != "" {
			pdf.SetFont("Helvetica", "I", 7)
			pdf.CellFormat(190, 4, r.Footer, "", 0, "C", false, 0, "")
		}
	})

	return pdf
}

func (r *SlipRenderer) header(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(190, 8, r.ShopName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(190, 6, title, "", 1, "C", false, 0, "")
	pdf.Ln(4)
}

func measurementCell(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(35, 6, label, "1", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(28, 6, value, "1", 0, "C", false, 0, "")
}

// measurementGrid lays out label/value pairs three to a row.
func measurementGrid(pdf *gofpdf.Fpdf, pairs [][2]string) {
	for i, pair := range pairs {
		measurementCell(pdf, pair[0], pair[1])
		if i%3 == 2 {
			pdf.Ln(-1)
		}
	}
	if len(pairs)%3 != 0 {
		pdf.Ln(-1)
	}
}

func fnum(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// RenderDressSlip prints a shalwar kameez measurement slip.
func (r *SlipRenderer) RenderDressSlip(w io.Writer, client models.Client, m models.DressMeasurement) error {
	pdf := r.newDoc()
	pdf.AddPage()
	r.header(pdf, "Dress Measurement Slip")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(190, 7, fmt.Sprintf("%d - %s   (%s)", client.ID, client.Name, client.Mobile), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(190, 5, "Date: "+m.Date.Format("02-Jan-2006"), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(190, 7, "Kameez", "", 1, "L", false, 0, "")
	measurementGrid(pdf, [][2]string{
		{"Length", fnum(m.KameezLength)},
		{"Arm", fnum(m.Arm)},
		{"Upper Arm", fnum(m.UpperArm)},
		{"Center Arm", fnum(m.CenterArm)},
		{"Lower Arm", fnum(m.LowerArm)},
		{"Terra", fnum(m.Terra)},
		{"Terra Down", fnum(m.TerraDown)},
		{"Shoulder Arm", fnum(m.ShoulderArm)},
		{"Chest", fnum(m.Chest)},
		{"Chest Fitting", fnum(m.ChestFitting)},
		{"Waist", fnum(m.Waist)},
		{"Hip", fnum(m.Hip)},
		{"Round", fnum(m.Round)},
		{"Collar Size", fnum(m.CollarSize)},
		{"Collar Type", m.CollarType},
		{"Bain Size", fnum(m.BainSize)},
		{"Bain Type", m.BainType},
		{"Daman Type", m.DamanType},
		{"Daman Stitch", m.DamanStitching},
		{"Side Pocket", m.SidePocket},
		{"Front Pocket", yesNo(m.FrontPocket)},
		{"Front Pkt Type", m.FrontPocketType},
		{"Cuff Design", m.CuffDesign},
		{"Cuff Length", fnum(m.CuffLength)},
		{"Cuff Width", fnum(m.CuffWidth)},
		{"Cuff Type", m.CuffType},
		{"Wrist Type", m.WristType},
	})

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(190, 7, "Shalwar", "", 1, "L", false, 0, "")
	measurementGrid(pdf, [][2]string{
		{"Length", fnum(m.ShalwarLength)},
		{"Fitting", fnum(m.ShalwarFitting)},
		{"Asan", fnum(m.Asan)},
		{"Payncha", fnum(m.Payncha)},
		{"Jali", m.Jali},
		{"Kanta", yesNo(m.Kanta)},
		{"Pocket", yesNo(m.ShalwarPocket)},
	})

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(190, 7, "Stitching", "", 1, "L", false, 0, "")
	measurementGrid(pdf, [][2]string{
		{"Stitch Type", m.StitchType},
		{"Design Stitch", yesNo(m.DesignStitch)},
		{"Button Type", m.ButtonType},
		{"Front Patti Kaj", fmt.Sprintf("%d", m.FrontPattiKaj)},
		{"Front Patti Type", m.FrontPattiType},
	})

	if m.Notes != "" {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(190, 5, "Notes: "+m.Notes, "", "L", false)
	}

	return pdf.Output(w)
}

// RenderWaistcoatSlip prints a waistcoat measurement slip.
func (r *SlipRenderer) RenderWaistcoatSlip(w io.Writer, client models.Client, m models.WaistcoatMeasurement) error {
	pdf := r.newDoc()
	pdf.AddPage()
	r.header(pdf, "Waistcoat Measurement Slip")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(190, 7, fmt.Sprintf("%d - %s   (%s)", client.ID, client.Name, client.Mobile), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(190, 5, "Date: "+m.Date.Format("02-Jan-2006"), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	measurementGrid(pdf, [][2]string{
		{"Type", m.Type},
		{"Length", fnum(m.Length)},
		{"Shoulder", fnum(m.Shoulder)},
		{"Neck", fnum(m.Neck)},
		{"Chest", fnum(m.Chest)},
		{"Chest Fitting", fnum(m.ChestFitting)},
		{"Hip", fnum(m.Hip)},
		{"Bain Size", fnum(m.BainSize)},
		{"Bain Type", m.BainType},
		{"Daman Type", m.DamanType},
	})

	if m.Notes != "" {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(190, 5, "Notes: "+m.Notes, "", "L", false)
	}

	return pdf.Output(w)
}

// RenderPaymentSlip prints a payment slip for one order, listing installments
// and the reconciled totals with the paid amount spelled out in words.
func (r *SlipRenderer) RenderPaymentSlip(w io.Writer, client models.Client, order models.PaymentOrder) error {
	pdf := r.newDoc()
	pdf.AddPage()
	r.header(pdf, "Payment Slip")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(190, 7, fmt.Sprintf("%d - %s   (%s)", client.ID, client.Name, client.Mobile), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(95, 5, "Order Date: "+order.Date.Format("02-Jan-2006"), "", 0, "L", false, 0, "")
	retDate := "-"
	if order.ReturnDate != nil {
		retDate = order.ReturnDate.Format("02-Jan-2006")
	}
	pdf.CellFormat(95, 5, "Return Date: "+retDate, "", 1, "R", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(47, 6, "Dress Count x Rate", "1", 0, "C", false, 0, "")
	pdf.CellFormat(47, 6, "Waistcoat Count x Rate", "1", 0, "C", false, 0, "")
	pdf.CellFormat(48, 6, "Total", "1", 0, "C", false, 0, "")
	pdf.CellFormat(48, 6, "Status", "1", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(47, 6, fmt.Sprintf("%d x %d", order.DressCount, order.DressRate), "1", 0, "C", false, 0, "")
	pdf.CellFormat(47, 6, fmt.Sprintf("%d x %d", order.WaistcoatCount, order.WaistcoatRate), "1", 0, "C", false, 0, "")
	pdf.CellFormat(48, 6, fmt.Sprintf("%d", order.TotalAmount), "1", 0, "R", false, 0, "")
	pdf.CellFormat(48, 6, string(order.PaymentStatus), "1", 1, "C", false, 0, "")
	pdf.Ln(4)

	if len(order.Installments) > 0 {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(190, 6, "Installments", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(40, 6, "Date", "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, "Amount", "1", 0, "C", false, 0, "")
		pdf.CellFormat(110, 6, "Note", "1", 1, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		for _, inst := range order.Installments {
			date := "-"
			if inst.PaymentDate != nil {
				date = inst.PaymentDate.Format("02-Jan-2006")
			}
			pdf.CellFormat(40, 6, date, "1", 0, "C", false, 0, "")
			pdf.CellFormat(40, 6, fmt.Sprintf("%d", inst.Amount()), "1", 0, "R", false, 0, "")
			pdf.CellFormat(110, 6, inst.Note, "1", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(63, 7, fmt.Sprintf("Paid: %d", order.PaidAmount), "1", 0, "C", false, 0, "")
	pdf.CellFormat(63, 7, fmt.Sprintf("Remaining: %d", order.RemainingAmount), "1", 0, "C", false, 0, "")
	pdf.CellFormat(64, 7, string(order.PaymentStatus), "1", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(190, 6, "Paid: "+AmountInWords(order.PaidAmount), "", 1, "L", false, 0, "")

	return pdf.Output(w)
}

// RenderPaymentReport prints the ranged payment report table with a grand
// total line, matching the Excel export column for column.
func (r *SlipRenderer) RenderPaymentReport(w io.Writer, start, end time.Time, rows []ReportRow, totals ReportTotals) error {
	pdf := r.newDoc()
	pdf.AddPage()
	r.header(pdf, fmt.Sprintf("Payment Report  %s - %s", start.Format("02-Jan-2006"), end.Format("02-Jan-2006")))

	widths := []float64{27, 49, 13, 13, 19, 19, 19, 15, 16}
	aligns := []string{"C", "L", "C", "C", "R", "R", "R", "R", "R"}

	pdf.SetFont("Helvetica", "B", 8)
	for i, h := range reportHeaders {
		pdf.CellFormat(widths[i], 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, row := range rows {
		cells := []string{
			row.Date.Format("02-Jan-2006"),
			fmt.Sprintf("%d - %s", row.ClientID, row.ClientName),
			fmt.Sprintf("%d", row.DressCount),
			fmt.Sprintf("%d", row.WaistcoatCount),
			fmt.Sprintf("%d", row.DressAmount),
			fmt.Sprintf("%d", row.WaistcoatAmount),
			fmt.Sprintf("%d", row.TotalAmount),
			fmt.Sprintf("%d", row.PaidAmount),
			fmt.Sprintf("%d", row.RemainingAmount),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, aligns[i], false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 8)
	totalCells := []string{
		"", "Grand Total",
		fmt.Sprintf("%d", totals.DressCount),
		fmt.Sprintf("%d", totals.WaistcoatCount),
		fmt.Sprintf("%d", totals.DressAmount),
		fmt.Sprintf("%d", totals.WaistcoatAmount),
		fmt.Sprintf("%d", totals.TotalAmount),
		fmt.Sprintf("%d", totals.PaidAmount),
		fmt.Sprintf("%d", totals.RemainingAmount),
	}
	for i, cell := range totalCells {
		pdf.CellFormat(widths[i], 6, cell, "1", 0, aligns[i], false, 0, "")
	}
	pdf.Ln(-1)

	return pdf.Output(w)
}
