package models

import (
	"time"

	"gorm.io/gorm"
)

// WaistcoatMeasurement is the short measurement form for waistcoats.
type WaistcoatMeasurement struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Date         time.Time `json:"date"`
	Type         string    `gorm:"type:varchar(50)" json:"type"` // shalwar kameez, waistcoat
	Length       float64   `json:"length"`
	Shoulder     float64   `json:"shoulder"`
	Neck         float64   `json:"neck"`
	Chest        float64   `json:"chest"`
	ChestFitting float64   `json:"chest_fitting"`
	Hip          float64   `json:"hip"`
	BainSize     float64   `json:"bain_size"`
	BainType     string    `gorm:"type:varchar(20)" json:"bain_type"`  // round, square, cut
	DamanType    string    `gorm:"type:varchar(20)" json:"daman_type"` // round, square
	Notes        string    `gorm:"type:text" json:"notes"`

	ClientID uint   `gorm:"index" json:"client_id"`
	Client   Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}
