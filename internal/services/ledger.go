package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"tailorapp_echo/internal/models"
)

// Ledger errors surfaced to handlers. NotFound conditions are never retried;
// they mean the caller referenced an order or installment that does not exist.
var (
	ErrOrderNotFound       = errors.New("payment order not found")
	ErrInstallmentNotFound = errors.New("installment not found")
	ErrNegativeAmount      = errors.New("installment amount must not be negative")
)

// LedgerService keeps a payment order's derived fields (paid, remaining,
// status) consistent with its installment set after every mutation.
type LedgerService struct {
	db *gorm.DB
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{db: db}
}

// ReconcileTotals derives (paid, remaining, status) from a total amount and an
// installment set. NULL installment amounts count as zero, remaining is clamped
// at zero, and a zero-total order with no payments stays Unpaid so that an
// uninitialized total is never mistaken for a settled order.
func ReconcileTotals(totalAmount int64, installments []models.PaymentInstallment) (paid, remaining int64, status models.PaymentStatus) {
	for _, inst := range installments {
		paid += inst.Amount()
	}

	remaining = totalAmount - paid
	if remaining < 0 {
		remaining = 0
	}

	switch {
	case remaining <= 0 && totalAmount > 0:
		status = models.PaymentStatusPaid
	case paid > 0:
		status = models.PaymentStatusPartial
	default:
		status = models.PaymentStatusUnpaid
	}
	return paid, remaining, status
}

// Recompute applies ReconcileTotals to the order in place. The order's
// installment slice must be fully loaded; a partially loaded collection would
// undercount the paid total.
func (s *LedgerService) Recompute(order *models.PaymentOrder) {
	order.PaidAmount, order.RemainingAmount, order.PaymentStatus = ReconcileTotals(order.TotalAmount, order.Installments)
}

// FindOrder loads an order with its installments.
func (s *LedgerService) FindOrder(orderID uint) (*models.PaymentOrder, error) {
	var order models.PaymentOrder
	if err := s.db.Preload("Installments").Preload("Client").First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// FindOrdersByClient returns a client's orders, newest first, each reconciled
// for display.
func (s *LedgerService) FindOrdersByClient(clientID uint) ([]models.PaymentOrder, error) {
	var orders []models.PaymentOrder
	err := s.db.Preload("Installments").
		Where("client_id = ?", clientID).
		Order("date DESC, id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	for i := range orders {
		s.Recompute(&orders[i])
	}
	return orders, nil
}

// SaveOrderAndSync reconciles and persists an order. For an existing order the
// installment set is reloaded from the database first: the form payload never
// carries installments, and trusting an empty caller-supplied slice would wipe
// the client's payment history.
func (s *LedgerService) SaveOrderAndSync(order *models.PaymentOrder) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if order.ID != 0 {
			var installments []models.PaymentInstallment
			if err := tx.Where("payment_order_id = ?", order.ID).Order("id").Find(&installments).Error; err != nil {
				return err
			}
			order.Installments = installments
		}

		s.Recompute(order)
		return tx.Save(order).Error
	})
}

// AddInstallment appends a new installment to an order and reconciles it.
// A nil payment date defaults to today. Negative amounts are rejected outright.
func (s *LedgerService) AddInstallment(orderID uint, paidAmount int64, note string, paymentDate *time.Time) (*models.PaymentOrder, error) {
	if paidAmount < 0 {
		return nil, ErrNegativeAmount
	}
	if paymentDate == nil {
		now := time.Now()
		paymentDate = &now
	}

	var order *models.PaymentOrder
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var o models.PaymentOrder
		if err := tx.Preload("Installments").First(&o, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		inst := models.PaymentInstallment{
			PaymentOrderID: o.ID,
			PaidAmount:     &paidAmount,
			PaymentDate:    paymentDate,
			Note:           note,
		}
		if err := tx.Create(&inst).Error; err != nil {
			return err
		}

		o.Installments = append(o.Installments, inst)
		s.Recompute(&o)
		if err := tx.Save(&o).Error; err != nil {
			return err
		}
		order = &o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateInstallment edits an existing installment and reconciles its parent
// order. A nil payment date leaves the stored date unchanged.
func (s *LedgerService) UpdateInstallment(installmentID uint, paidAmount int64, note string, paymentDate *time.Time) (*models.PaymentOrder, error) {
	if paidAmount < 0 {
		return nil, ErrNegativeAmount
	}

	var order *models.PaymentOrder
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var inst models.PaymentInstallment
		if err := tx.First(&inst, installmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInstallmentNotFound
			}
			return err
		}

		inst.PaidAmount = &paidAmount
		inst.Note = note
		if paymentDate != nil {
			inst.PaymentDate = paymentDate
		}
		if err := tx.Save(&inst).Error; err != nil {
			return err
		}

		return s.syncParent(tx, inst.PaymentOrderID, &order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// DeleteInstallment removes an installment and reconciles its parent order.
func (s *LedgerService) DeleteInstallment(installmentID uint) (*models.PaymentOrder, error) {
	var order *models.PaymentOrder
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var inst models.PaymentInstallment
		if err := tx.First(&inst, installmentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInstallmentNotFound
			}
			return err
		}

		if err := tx.Unscoped().Delete(&inst).Error; err != nil {
			return err
		}

		return s.syncParent(tx, inst.PaymentOrderID, &order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// DeleteOrder removes an order. Its installments go with it via the cascading
// foreign key; there is nothing left to reconcile.
func (s *LedgerService) DeleteOrder(orderID uint) error {
	res := s.db.Unscoped().Delete(&models.PaymentOrder{}, orderID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// syncParent reloads the parent order's current installment set, reconciles
// and persists it within the given transaction.
func (s *LedgerService) syncParent(tx *gorm.DB, orderID uint, out **models.PaymentOrder) error {
	var o models.PaymentOrder
	if err := tx.Preload("Installments").First(&o, orderID).Error; err != nil {
		return err
	}
	s.Recompute(&o)
	if err := tx.Save(&o).Error; err != nil {
		return err
	}
	*out = &o
	return nil
}
