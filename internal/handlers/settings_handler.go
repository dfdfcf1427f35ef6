package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"tailorapp_echo/internal/models"
)

// SettingsHandler edits the shop settings used on printed slips.
type SettingsHandler struct {
	db *gorm.DB
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{db: db}
}

// SettingsPage renders the settings form.
func (h *SettingsHandler) SettingsPage(c echo.Context) error {
	var settings []models.ShopSetting
	if err := h.db.Order("key").Find(&settings).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch settings")
	}

	breadcrumbs := []Breadcrumb{
		{Title: "Home", URL: "/"},
		{Title: "Settings", URL: ""},
	}

	return c.Render(http.StatusOK, "settings.html", pageData(c, "Settings", "settings", breadcrumbs, map[string]interface{}{
		"Settings": settings,
	}))
}

// SaveSettings updates the known setting keys from the form.
func (h *SettingsHandler) SaveSettings(c echo.Context) error {
	keys := []string{models.SettingShopName, models.SettingSlipFooter, models.SettingOwnerEmail}

	for _, key := range keys {
		value := c.FormValue(key)
		err := h.db.Model(&models.ShopSetting{}).Where("key = ?", key).Update("value", value).Error
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save settings")
		}
	}

	return c.Redirect(http.StatusSeeOther, "/settings")
}
