package models

import (
	"time"

	"gorm.io/gorm"
)

// Well-known setting keys.
const (
	SettingShopName   = "shop_name"
	SettingSlipFooter = "slip_footer"
	SettingOwnerEmail = "owner_email"
)

// ShopSetting is a key/value row for printable texts and owner contact info.
// Defaults are seeded at server startup.
type ShopSetting struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Key   string `gorm:"type:varchar(100);uniqueIndex" json:"key"`
	Value string `gorm:"type:text" json:"value"`
}
