package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"tailorapp_echo/internal/models"
	"tailorapp_echo/internal/services"
)

type ReportHandler struct {
	db     *gorm.DB
	ledger *services.LedgerService
}

func NewReportHandler(db *gorm.DB, ledger *services.LedgerService) *ReportHandler {
	return &ReportHandler{db: db, ledger: ledger}
}

func (h *ReportHandler) renderer() *services.SlipRenderer {
	return &services.SlipRenderer{
		ShopName: services.GetSetting(h.db, models.SettingShopName, "Tailor Shop"),
		Footer:   services.GetSetting(h.db, models.SettingSlipFooter, ""),
	}
}

func pdfResponse(c echo.Context, filename string) {
	c.Response().Header().Set(echo.HeaderContentType, "application/pdf")
	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename=`+filename)
	c.Response().WriteHeader(http.StatusOK)
}

// PrintDressSlip streams a dress measurement slip as PDF.
func (h *ReportHandler) PrintDressSlip(c echo.Context) error {
	var m models.DressMeasurement
	if err := h.db.Preload("Client").First(&m, c.Param("id")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Measurement not found")
	}

	pdfResponse(c, "dress_measurement.pdf")
	return h.renderer().RenderDressSlip(c.Response(), m.Client, m)
}

// PrintWaistcoatSlip streams a waistcoat measurement slip as PDF.
func (h *ReportHandler) PrintWaistcoatSlip(c echo.Context) error {
	var m models.WaistcoatMeasurement
	if err := h.db.Preload("Client").First(&m, c.Param("id")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Measurement not found")
	}

	pdfResponse(c, "waistcoat_measurement.pdf")
	return h.renderer().RenderWaistcoatSlip(c.Response(), m.Client, m)
}

// PrintPaymentSlip streams a reconciled payment slip as PDF.
func (h *ReportHandler) PrintPaymentSlip(c echo.Context) error {
	order, err := h.ledger.FindOrder(uintFromString(c.Param("id")))
	if err != nil {
		return ledgerHTTPError(err)
	}
	h.ledger.Recompute(order)

	pdfResponse(c, "payment_slip.pdf")
	return h.renderer().RenderPaymentSlip(c.Response(), order.Client, *order)
}

// PrintPaymentReport streams the date-ranged payment report as PDF.
func (h *ReportHandler) PrintPaymentReport(c echo.Context) error {
	start, err := timeFromForm(c.QueryParam("startDate"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "startDate must be YYYY-MM-DD")
	}
	end, err := timeFromForm(c.QueryParam("endDate"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "endDate must be YYYY-MM-DD")
	}

	rows, totals, err := services.BuildPaymentReport(h.db, start, end)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build report")
	}

	pdfResponse(c, "payment_report.pdf")
	return h.renderer().RenderPaymentReport(c.Response(), start, end, rows, totals)
}

// ExportPaymentReport streams the same report as an Excel workbook.
func (h *ReportHandler) ExportPaymentReport(c echo.Context) error {
	start, err := timeFromForm(c.QueryParam("startDate"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "startDate must be YYYY-MM-DD")
	}
	end, err := timeFromForm(c.QueryParam("endDate"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "endDate must be YYYY-MM-DD")
	}

	rows, totals, err := services.BuildPaymentReport(h.db, start, end)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build report")
	}

	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename=payment_report.xlsx`)
	c.Response().WriteHeader(http.StatusOK)
	return services.WritePaymentReportXLSX(c.Response(), rows, totals)
}
