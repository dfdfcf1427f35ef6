package models

import (
	"time"

	"gorm.io/gorm"
)

// PaymentStatus is the derived settlement state of a payment order
type PaymentStatus string

const (
	PaymentStatusUnpaid  PaymentStatus = "Unpaid"
	PaymentStatusPartial PaymentStatus = "Partial"
	PaymentStatusPaid    PaymentStatus = "Paid"
)

// ReturnStatus tracks whether the stitched garments were handed back to the client
type ReturnStatus string

const (
	ReturnStatusPending  ReturnStatus = "Pending"
	ReturnStatusReturned ReturnStatus = "Returned"
)

// PaymentOrder is a billable order for a client. TotalAmount is entered by the
// operator; PaidAmount, RemainingAmount and PaymentStatus are derived from the
// installment set and must never be written directly outside the ledger service.
type PaymentOrder struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Date           time.Time `json:"date"`
	DressCount     int64     `json:"dress_count"`
	DressRate      int64     `json:"dress_rate"`
	WaistcoatCount int64     `json:"waistcoat_count"`
	WaistcoatRate  int64     `json:"waistcoat_rate"`

	TotalAmount     int64         `gorm:"not null;default:0" json:"total_amount"`
	PaidAmount      int64         `gorm:"not null;default:0" json:"paid_amount"`
	RemainingAmount int64         `gorm:"not null;default:0" json:"remaining_amount"`
	PaymentStatus   PaymentStatus `gorm:"type:varchar(20);default:'Unpaid'" json:"payment_status"`

	ReturnDate   *time.Time   `json:"return_date"`
	ReturnStatus ReturnStatus `gorm:"type:varchar(20);default:'Pending'" json:"return_status"`
	Notes        string       `gorm:"type:text" json:"notes"`

	ClientID uint   `gorm:"index" json:"client_id"`
	Client   Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	// Installments are owned exclusively by this order; the database cascades
	// their deletion when the order is deleted.
	Installments []PaymentInstallment `gorm:"foreignKey:PaymentOrderID;constraint:OnDelete:CASCADE" json:"installments,omitempty"`
}

// IsReturnDue reports whether the order is waiting to be handed back and its
// return date is on or before the given day.
func (o PaymentOrder) IsReturnDue(now time.Time) bool {
	if o.ReturnStatus == ReturnStatusReturned || o.ReturnDate == nil {
		return false
	}
	y, m, d := now.Date()
	endOfDay := time.Date(y, m, d, 23, 59, 59, 0, now.Location())
	return !o.ReturnDate.After(endOfDay)
}
