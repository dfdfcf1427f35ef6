package models

import (
	"time"

	"gorm.io/gorm"
)

// PaymentInstallment records one partial payment against a payment order.
// PaidAmount is nullable; rows imported from the old ledger book may carry
// NULL, which the reconciliation treats as zero.
type PaymentInstallment struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	PaymentOrderID uint       `gorm:"index;not null" json:"payment_order_id"`
	PaidAmount     *int64     `json:"paid_amount"`
	PaymentDate    *time.Time `json:"payment_date"`
	Note           string     `gorm:"type:text" json:"note"`

	PaymentOrder PaymentOrder `gorm:"foreignKey:PaymentOrderID" json:"payment_order,omitempty"`
}

// Amount returns the paid amount with NULL normalized to zero.
func (i PaymentInstallment) Amount() int64 {
	if i.PaidAmount == nil {
		return 0
	}
	return *i.PaidAmount
}
