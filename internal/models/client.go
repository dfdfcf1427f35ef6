package models

import (
	"time"

	"gorm.io/gorm"
)

// Client represents a customer of the shop
type Client struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Name            string `gorm:"type:varchar(255);not null" json:"name"`
	Mobile          string `gorm:"type:varchar(50);not null" json:"mobile"`
	WhatsAppNo      string `gorm:"type:varchar(50)" json:"whatsapp_no"`
	Address         string `gorm:"type:text" json:"address"`
	PictureFilename string `gorm:"type:varchar(255)" json:"picture_filename"`

	// Relationships
	PaymentOrders         []PaymentOrder         `gorm:"foreignKey:ClientID" json:"payment_orders,omitempty"`
	DressMeasurements     []DressMeasurement     `gorm:"foreignKey:ClientID" json:"dress_measurements,omitempty"`
	WaistcoatMeasurements []WaistcoatMeasurement `gorm:"foreignKey:ClientID" json:"waistcoat_measurements,omitempty"`
}
