package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"tailorapp_echo/internal/models"
	"tailorapp_echo/internal/services"
)

// DashboardHandler renders the landing page with shop-wide figures.
type DashboardHandler struct {
	db    *gorm.DB
	cache *services.RedisCache
}

func NewDashboardHandler(db *gorm.DB, cache *services.RedisCache) *DashboardHandler {
	return &DashboardHandler{db: db, cache: cache}
}

// DashboardStats is cached for a short time; the figures drive the landing
// page only and may lag a mutation by up to a minute.
type DashboardStats struct {
	ClientCount      int64 `json:"client_count"`
	OrderCount       int64 `json:"order_count"`
	UnpaidOrders     int64 `json:"unpaid_orders"`
	PartialOrders    int64 `json:"partial_orders"`
	OutstandingTotal int64 `json:"outstanding_total"`
	ReturnsDueToday  int64 `json:"returns_due_today"`
}

func (h *DashboardHandler) loadStats() (DashboardStats, error) {
	var stats DashboardStats

	if err := h.db.Model(&models.Client{}).Count(&stats.ClientCount).Error; err != nil {
		return stats, err
	}
	if err := h.db.Model(&models.PaymentOrder{}).Count(&stats.OrderCount).Error; err != nil {
		return stats, err
	}
	if err := h.db.Model(&models.PaymentOrder{}).
		Where("payment_status = ?", models.PaymentStatusUnpaid).
		Count(&stats.UnpaidOrders).Error; err != nil {
		return stats, err
	}
	if err := h.db.Model(&models.PaymentOrder{}).
		Where("payment_status = ?", models.PaymentStatusPartial).
		Count(&stats.PartialOrders).Error; err != nil {
		return stats, err
	}

	var outstanding *int64
	if err := h.db.Model(&models.PaymentOrder{}).
		Select("SUM(remaining_amount)").Scan(&outstanding).Error; err != nil {
		return stats, err
	}
	if outstanding != nil {
		stats.OutstandingTotal = *outstanding
	}

	endOfDay := time.Now().Truncate(24 * time.Hour).Add(24*time.Hour - time.Second)
	if err := h.db.Model(&models.PaymentOrder{}).
		Where("return_status = ? AND return_date IS NOT NULL AND return_date <= ?", models.ReturnStatusPending, endOfDay).
		Count(&stats.ReturnsDueToday).Error; err != nil {
		return stats, err
	}

	return stats, nil
}

// Dashboard renders the dashboard page
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	stats, err := services.GetOrSet(h.cache, c.Request().Context(), "dashboard:stats", time.Minute, h.loadStats)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load dashboard")
	}

	breadcrumbs := []Breadcrumb{
		{Title: "Home", URL: "/"},
		{Title: "Dashboard", URL: ""},
	}

	return c.Render(http.StatusOK, "dashboard.html", pageData(c, "Dashboard", "dashboard", breadcrumbs, map[string]interface{}{
		"Stats": stats,
	}))
}
