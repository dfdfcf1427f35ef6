package handlers

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"tailorapp_echo/internal/models"
	"tailorapp_echo/internal/services"
)

type ClientHandler struct {
	db      *gorm.DB
	cache   *services.RedisCache
	storage *services.StorageService
}

func NewClientHandler(db *gorm.DB, cache *services.RedisCache, storage *services.StorageService) *ClientHandler {
	return &ClientHandler{db: db, cache: cache, storage: storage}
}

// ListClients renders the client list, optionally filtered by a search term
// matching name or mobile number.
func (h *ClientHandler) ListClients(c echo.Context) error {
	q := c.QueryParam("q")

	query := h.db.Model(&models.Client{})
	if q != "" {
		like := "%" + q + "%"
		query = query.Where("name ILIKE ? OR mobile ILIKE ? OR whats_app_no ILIKE ?", like, like, like)
	}

	var clients []models.Client
	if err := query.Order("id DESC").Find(&clients).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch clients")
	}

	breadcrumbs := []Breadcrumb{
		{Title: "Home", URL: "/"},
		{Title: "Clients", URL: ""},
	}

	return c.Render(http.StatusOK, "clients_list.html", pageData(c, "Clients", "clients", breadcrumbs, map[string]interface{}{
		"Clients": clients,
		"Query":   q,
	}))
}

// SaveClient creates or updates a client. A new profile picture may come in
// as a file upload or a base64 camera capture; when neither is present an
// update keeps the existing picture.
func (h *ClientHandler) SaveClient(c echo.Context) error {
	var client models.Client
	idStr := c.FormValue("id")
	if idStr != "" && idStr != "0" {
		if err := h.db.First(&client, idStr).Error; err != nil {
			return echo.NewHTTPError(http.StatusNotFound, "Client not found")
		}
	}

	client.Name = c.FormValue("name")
	client.Mobile = c.FormValue("mobile")
	client.WhatsAppNo = c.FormValue("whatsapp_no")
	client.Address = c.FormValue("address")

	if file, err := c.FormFile("picture_file"); err == nil && file.Size > 0 {
		filename, err := h.storage.SaveUpload(file)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to store picture")
		}
		client.PictureFilename = filename
	} else if imageData := c.FormValue("image_data"); imageData != "" {
		filename, err := h.storage.SaveCameraCapture(imageData)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Failed to store camera capture")
		}
		client.PictureFilename = filename
	}

	if err := h.db.Save(&client).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save client")
	}

	return c.Redirect(http.StatusSeeOther, "/clients")
}

// ViewClient renders a client's page with both measurement histories, newest
// first, and the forms for adding or editing measurements.
func (h *ClientHandler) ViewClient(c echo.Context) error {
	var client models.Client
	if err := h.db.First(&client, c.Param("id")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Client not found")
	}

	var dressMeasurements []models.DressMeasurement
	if err := h.db.Where("client_id = ?", client.ID).Find(&dressMeasurements).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch measurements")
	}
	sort.Slice(dressMeasurements, func(i, j int) bool {
		return dressMeasurements[i].Date.After(dressMeasurements[j].Date)
	})

	var waistcoatMeasurements []models.WaistcoatMeasurement
	if err := h.db.Where("client_id = ?", client.ID).Find(&waistcoatMeasurements).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch measurements")
	}
	sort.Slice(waistcoatMeasurements, func(i, j int) bool {
		return waistcoatMeasurements[i].Date.After(waistcoatMeasurements[j].Date)
	})

	extra := map[string]interface{}{
		"Client":                client,
		"DressMeasurements":     dressMeasurements,
		"WaistcoatMeasurements": waistcoatMeasurements,
	}

	// An edit query parameter preloads the matching form
	if editID := c.QueryParam("edit"); editID != "" {
		var m models.DressMeasurement
		if err := h.db.First(&m, editID).Error; err == nil {
			extra["EditDress"] = m
		}
	}
	if editID := c.QueryParam("editWaistcoat"); editID != "" {
		var m models.WaistcoatMeasurement
		if err := h.db.First(&m, editID).Error; err == nil {
			extra["EditWaistcoat"] = m
		}
	}

	breadcrumbs := []Breadcrumb{
		{Title: "Home", URL: "/"},
		{Title: "Clients", URL: "/clients"},
		{Title: client.Name, URL: ""},
	}

	return c.Render(http.StatusOK, "clients_view.html", pageData(c, client.Name, "clients", breadcrumbs, extra))
}

// DeleteClient removes a client together with measurements and payment
// history.
func (h *ClientHandler) DeleteClient(c echo.Context) error {
	var client models.Client
	if err := h.db.First(&client, c.Param("id")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Client not found")
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("client_id = ?", client.ID).Delete(&models.DressMeasurement{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("client_id = ?", client.ID).Delete(&models.WaistcoatMeasurement{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("client_id = ?", client.ID).Delete(&models.PaymentOrder{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&client).Error
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete client")
	}

	return c.Redirect(http.StatusSeeOther, "/clients")
}
