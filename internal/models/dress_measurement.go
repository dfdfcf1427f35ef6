package models

import (
	"time"

	"gorm.io/gorm"
)

// DressMeasurement holds the full shalwar kameez measurement form for a client.
// Field groups mirror the paper form the shop used before: kameez, shalwar,
// then stitching options.
type DressMeasurement struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Date time.Time `json:"date"`

	// Kameez
	KameezLength    float64 `json:"kameez_length"`
	Arm             float64 `json:"arm"`
	UpperArm        float64 `json:"upper_arm"`
	CenterArm       float64 `json:"center_arm"`
	LowerArm        float64 `json:"lower_arm"`
	Terra           float64 `json:"terra"`
	TerraDown       float64 `json:"terra_down"`
	ShoulderArm     float64 `json:"shoulder_arm"`
	Chest           float64 `json:"chest"`
	ChestFitting    float64 `json:"chest_fitting"`
	Waist           float64 `json:"waist"`
	Hip             float64 `json:"hip"`
	Round           float64 `json:"round"`
	CollarSize      float64 `json:"collar_size"`
	CollarType      string  `gorm:"type:varchar(20)" json:"collar_type"` // 1, 2, 3, 4
	BainSize        float64 `json:"bain_size"`
	BainType        string  `gorm:"type:varchar(20)" json:"bain_type"`  // round, square, cut
	DamanType       string  `gorm:"type:varchar(20)" json:"daman_type"` // round, square
	DamanStitching  string  `gorm:"type:varchar(20)" json:"daman_stitching"`
	SidePocket      string  `gorm:"type:varchar(20)" json:"side_pocket"` // no, 1, 2
	FrontPocket     bool    `json:"front_pocket"`
	FrontPocketType string  `gorm:"type:varchar(20)" json:"front_pocket_type"`
	CuffDesign      string  `gorm:"type:varchar(20)" json:"cuff_design"`
	CuffLength      float64 `json:"cuff_length"`
	CuffWidth       float64 `json:"cuff_width"`
	CuffType        string  `gorm:"type:varchar(20)" json:"cuff_type"`  // single, double
	WristType       string  `gorm:"type:varchar(20)" json:"wrist_type"` // cuff, open

	// Shalwar
	ShalwarLength  float64 `json:"shalwar_length"`
	ShalwarFitting float64 `json:"shalwar_fitting"`
	Asan           float64 `json:"asan"`
	Payncha        float64 `json:"payncha"`
	Jali           string  `gorm:"type:varchar(20)" json:"jali"` // no, 1, 2
	Kanta          bool    `json:"kanta"`
	ShalwarPocket  bool    `json:"shalwar_pocket"`

	// Stitching
	StitchType     string `gorm:"type:varchar(20)" json:"stitch_type"` // single, double, simple
	DesignStitch   bool   `json:"design_stitch"`
	ButtonType     string `gorm:"type:varchar(20)" json:"button_type"` // plain, metal, touch
	FrontPattiKaj  int    `json:"front_patti_kaj"`                     // 4 or 5
	FrontPattiType string `gorm:"type:varchar(20)" json:"front_patti_type"`
	Notes          string `gorm:"type:text" json:"notes"`

	ClientID uint   `gorm:"index" json:"client_id"`
	Client   Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}
