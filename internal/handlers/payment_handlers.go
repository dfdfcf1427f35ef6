package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"tailorapp_echo/internal/models"
	"tailorapp_echo/internal/services"
)

type PaymentHandler struct {
	db     *gorm.DB
	ledger *services.LedgerService
}

func NewPaymentHandler(db *gorm.DB, ledger *services.LedgerService) *PaymentHandler {
	return &PaymentHandler{db: db, ledger: ledger}
}

func ledgerHTTPError(err error) error {
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Payment order not found")
	case errors.Is(err, services.ErrInstallmentNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Installment not found")
	case errors.Is(err, services.ErrNegativeAmount):
		return echo.NewHTTPError(http.StatusBadRequest, "Amount must not be negative")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "Payment operation failed")
	}
}

func paymentsRedirect(c echo.Context, clientID uint) error {
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/payments/client/%d", clientID))
}

// ListPayments renders all orders of one client with their installments.
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	clientID, err := strconv.ParseUint(c.Param("clientId"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid client id")
	}

	var client models.Client
	if err := h.db.First(&client, clientID).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Client not found")
	}

	orders, err := h.ledger.FindOrdersByClient(client.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch payments")
	}

	breadcrumbs := []Breadcrumb{
		{Title: "Home", URL: "/"},
		{Title: "Clients", URL: "/clients"},
		{Title: client.Name, URL: fmt.Sprintf("/clients/view/%d", client.ID)},
		{Title: "Payments", URL: ""},
	}

	return c.Render(http.StatusOK, "payments_list.html", pageData(c, "Payments", "clients", breadcrumbs, map[string]interface{}{
		"Client": client,
		"Orders": orders,
		"Today":  time.Now().Format("2006-01-02"),
	}))
}

// SavePayment creates or updates an order from the form. The form never
// carries installments; the ledger reloads the stored set before it
// reconciles, so editing the total can't wipe payment history.
func (h *PaymentHandler) SavePayment(c echo.Context) error {
	clientID, err := strconv.ParseUint(c.FormValue("client_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid client id")
	}

	var order models.PaymentOrder
	idStr := c.FormValue("id")
	if idStr != "" && idStr != "0" {
		existing, err := h.ledger.FindOrder(uintFromString(idStr))
		if err != nil {
			return ledgerHTTPError(err)
		}
		order = *existing
	} else {
		order.ClientID = uint(clientID)
	}

	if date := timePtrFromForm(c.FormValue("date")); date != nil {
		order.Date = *date
	} else if order.Date.IsZero() {
		order.Date = time.Now()
	}

	order.DressCount, _ = strconv.ParseInt(c.FormValue("dress_count"), 10, 64)
	order.DressRate, _ = strconv.ParseInt(c.FormValue("dress_rate"), 10, 64)
	order.WaistcoatCount, _ = strconv.ParseInt(c.FormValue("waistcoat_count"), 10, 64)
	order.WaistcoatRate, _ = strconv.ParseInt(c.FormValue("waistcoat_rate"), 10, 64)
	order.Notes = c.FormValue("notes")
	order.ReturnDate = timePtrFromForm(c.FormValue("return_date"))
	if rs := c.FormValue("return_status"); rs != "" {
		order.ReturnStatus = models.ReturnStatus(rs)
	}

	total, err := strconv.ParseInt(c.FormValue("total_amount"), 10, 64)
	if err != nil || total < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "Total amount must be a non-negative number")
	}
	order.TotalAmount = total

	if err := h.ledger.SaveOrderAndSync(&order); err != nil {
		return ledgerHTTPError(err)
	}

	return paymentsRedirect(c, order.ClientID)
}

// DeletePayment removes an order and, through the cascade, its installments.
func (h *PaymentHandler) DeletePayment(c echo.Context) error {
	order, err := h.ledger.FindOrder(uintFromString(c.Param("id")))
	if err != nil {
		return ledgerHTTPError(err)
	}

	if err := h.ledger.DeleteOrder(order.ID); err != nil {
		return ledgerHTTPError(err)
	}

	return paymentsRedirect(c, order.ClientID)
}

// AddInstallment records a partial payment against an order.
func (h *PaymentHandler) AddInstallment(c echo.Context) error {
	orderID := uintFromString(c.FormValue("payment_id"))

	amount, err := strconv.ParseInt(c.FormValue("paid_amount"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Paid amount must be a number")
	}

	order, err := h.ledger.AddInstallment(orderID, amount, c.FormValue("note"), timePtrFromForm(c.FormValue("payment_date")))
	if err != nil {
		return ledgerHTTPError(err)
	}

	return paymentsRedirect(c, order.ClientID)
}

// EditInstallment updates a recorded partial payment. An empty date leaves
// the stored payment date unchanged.
func (h *PaymentHandler) EditInstallment(c echo.Context) error {
	installmentID := uintFromString(c.FormValue("installment_id"))

	amount, err := strconv.ParseInt(c.FormValue("paid_amount"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Paid amount must be a number")
	}

	order, err := h.ledger.UpdateInstallment(installmentID, amount, c.FormValue("note"), timePtrFromForm(c.FormValue("payment_date")))
	if err != nil {
		return ledgerHTTPError(err)
	}

	return paymentsRedirect(c, order.ClientID)
}

// DeleteInstallment removes a recorded partial payment.
func (h *PaymentHandler) DeleteInstallment(c echo.Context) error {
	order, err := h.ledger.DeleteInstallment(uintFromString(c.Param("installmentId")))
	if err != nil {
		return ledgerHTTPError(err)
	}

	return paymentsRedirect(c, order.ClientID)
}

func uintFromString(s string) uint {
	v, _ := strconv.ParseUint(s, 10, 32)
	return uint(v)
}
