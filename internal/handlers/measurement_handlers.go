package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"tailorapp_echo/internal/models"
)

type MeasurementHandler struct {
	db *gorm.DB
}

func NewMeasurementHandler(db *gorm.DB) *MeasurementHandler {
	return &MeasurementHandler{db: db}
}

func floatFromForm(c echo.Context, name string) float64 {
	v, _ := strconv.ParseFloat(c.FormValue(name), 64)
	return v
}

func intFromForm(c echo.Context, name string) int {
	v, _ := strconv.Atoi(c.FormValue(name))
	return v
}

func boolFromForm(c echo.Context, name string) bool {
	v := c.FormValue(name)
	return v == "on" || v == "true" || v == "yes"
}

func clientRedirect(c echo.Context, clientID uint) error {
	return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/clients/view/%d", clientID))
}

// fillDressMeasurement copies the posted form fields onto the measurement.
func fillDressMeasurement(c echo.Context, m *models.DressMeasurement) {
	if date := timePtrFromForm(c.FormValue("date")); date != nil {
		m.Date = *date
	} else if m.Date.IsZero() {
		m.Date = time.Now()
	}

	m.KameezLength = floatFromForm(c, "kameez_length")
	m.Arm = floatFromForm(c, "arm")
	m.UpperArm = floatFromForm(c, "upper_arm")
	m.CenterArm = floatFromForm(c, "center_arm")
	m.LowerArm = floatFromForm(c, "lower_arm")
	m.Terra = floatFromForm(c, "terra")
	m.TerraDown = floatFromForm(c, "terra_down")
	m.ShoulderArm = floatFromForm(c, "shoulder_arm")
	m.Chest = floatFromForm(c, "chest")
	m.ChestFitting = floatFromForm(c, "chest_fitting")
	m.Waist = floatFromForm(c, "waist")
	m.Hip = floatFromForm(c, "hip")
	m.Round = floatFromForm(c, "round")
	m.CollarSize = floatFromForm(c, "collar_size")
	m.CollarType = c.FormValue("collar_type")
	m.BainSize = floatFromForm(c, "bain_size")
	m.BainType = c.FormValue("bain_type")
	m.DamanType = c.FormValue("daman_type")
	m.DamanStitching = c.FormValue("daman_stitching")
	m.SidePocket = c.FormValue("side_pocket")
	m.FrontPocket = boolFromForm(c, "front_pocket")
	m.FrontPocketType = c.FormValue("front_pocket_type")
	m.CuffDesign = c.FormValue("cuff_design")
	m.CuffLength = floatFromForm(c, "cuff_length")
	m.CuffWidth = floatFromForm(c, "cuff_width")
	m.CuffType = c.FormValue("cuff_type")
	m.WristType = c.FormValue("wrist_type")

	m.ShalwarLength = floatFromForm(c, "shalwar_length")
	m.ShalwarFitting = floatFromForm(c, "shalwar_fitting")
	m.Asan = floatFromForm(c, "asan")
	m.Payncha = floatFromForm(c, "payncha")
	m.Jali = c.FormValue("jali")
	m.Kanta = boolFromForm(c, "kanta")
	m.ShalwarPocket = boolFromForm(c, "shalwar_pocket")

	m.StitchType = c.FormValue("stitch_type")
	m.DesignStitch = boolFromForm(c, "design_stitch")
	m.ButtonType = c.FormValue("button_type")
	m.FrontPattiKaj = intFromForm(c, "front_patti_kaj")
	m.FrontPattiType = c.FormValue("front_patti_type")
	m.Notes = c.FormValue("notes")
}

// AddDressMeasurement stores a new dress measurement for a client.
func (h *MeasurementHandler) AddDressMeasurement(c echo.Context) error {
	var client models.Client
	if err := h.db.First(&client, c.Param("id")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Client not found")
	}

	m := models.DressMeasurement{ClientID: client.ID}
	fillDressMeasurement(c, &m)

	if err := h.db.Create(&m).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save measurement")
	}
	return clientRedirect(c, client.ID)
}

// UpdateDressMeasurement edits an existing dress measurement.
func (h *MeasurementHandler) UpdateDressMeasurement(c echo.Context) error {
	var m models.DressMeasurement
	if err := h.db.First(&m, c.Param("measurementId")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Measurement not found")
	}

	fillDressMeasurement(c, &m)

	if err := h.db.Save(&m).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save measurement")
	}
	return clientRedirect(c, m.ClientID)
}

// DeleteDressMeasurement removes a dress measurement.
func (h *MeasurementHandler) DeleteDressMeasurement(c echo.Context) error {
	var m models.DressMeasurement
	if err := h.db.First(&m, c.Param("measurementId")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Measurement not found")
	}

	if err := h.db.Unscoped().Delete(&m).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete measurement")
	}
	return clientRedirect(c, m.ClientID)
}

// CopyDressMeasurement duplicates a measurement as a new record dated today,
// the quick path when a returning client's sizes haven't changed.
func (h *MeasurementHandler) CopyDressMeasurement(c echo.Context) error {
	var m models.DressMeasurement
	if err := h.db.First(&m, c.Param("id")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Measurement not found")
	}

	m.ID = 0
	m.CreatedAt = time.Time{}
	m.UpdatedAt = time.Time{}
	m.Date = time.Now()

	if err := h.db.Create(&m).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to copy measurement")
	}
	return clientRedirect(c, m.ClientID)
}

func fillWaistcoatMeasurement(c echo.Context, m *models.WaistcoatMeasurement) {
	if date := timePtrFromForm(c.FormValue("date")); date != nil {
		m.Date = *date
	} else if m.Date.IsZero() {
		m.Date = time.Now()
	}

	m.Type = c.FormValue("type")
	m.Length = floatFromForm(c, "length")
	m.Shoulder = floatFromForm(c, "shoulder")
	m.Neck = floatFromForm(c, "neck")
	m.Chest = floatFromForm(c, "chest")
	m.ChestFitting = floatFromForm(c, "chest_fitting")
	m.Hip = floatFromForm(c, "hip")
	m.BainSize = floatFromForm(c, "bain_size")
	m.BainType = c.FormValue("bain_type")
	m.DamanType = c.FormValue("daman_type")
	m.Notes = c.FormValue("notes")
}

// AddWaistcoatMeasurement stores a new waistcoat measurement for a client.
func (h *MeasurementHandler) AddWaistcoatMeasurement(c echo.Context) error {
	var client models.Client
	if err := h.db.First(&client, c.Param("id")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Client not found")
	}

	m := models.WaistcoatMeasurement{ClientID: client.ID}
	fillWaistcoatMeasurement(c, &m)

	if err := h.db.Create(&m).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save measurement")
	}
	return clientRedirect(c, client.ID)
}

// UpdateWaistcoatMeasurement edits an existing waistcoat measurement.
func (h *MeasurementHandler) UpdateWaistcoatMeasurement(c echo.Context) error {
	var m models.WaistcoatMeasurement
	if err := h.db.First(&m, c.Param("id")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Measurement not found")
	}

	fillWaistcoatMeasurement(c, &m)

	if err := h.db.Save(&m).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save measurement")
	}
	return clientRedirect(c, m.ClientID)
}

// DeleteWaistcoatMeasurement removes a waistcoat measurement.
func (h *MeasurementHandler) DeleteWaistcoatMeasurement(c echo.Context) error {
	var m models.WaistcoatMeasurement
	if err := h.db.First(&m, c.Param("id")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Measurement not found")
	}

	if err := h.db.Unscoped().Delete(&m).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete measurement")
	}
	return clientRedirect(c, m.ClientID)
}

// CopyWaistcoatMeasurement duplicates a waistcoat measurement dated today.
func (h *MeasurementHandler) CopyWaistcoatMeasurement(c echo.Context) error {
	var m models.WaistcoatMeasurement
	if err := h.db.First(&m, c.Param("id")).Error; err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Measurement not found")
	}

	m.ID = 0
	m.CreatedAt = time.Time{}
	m.UpdatedAt = time.Time{}
	m.Date = time.Now()

	if err := h.db.Create(&m).Error; err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to copy measurement")
	}
	return clientRedirect(c, m.ClientID)
}
