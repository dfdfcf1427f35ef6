package tasks

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"tailorapp_echo/internal/models"
	"tailorapp_echo/internal/services"
)

// ReturnReminderTaskDef sweeps orders whose return date has arrived and pings
// each client over WhatsApp; the shop owner gets the summary by mail.
type ReturnReminderTaskDef struct{}

var ReturnReminderTask = &ReturnReminderTaskDef{}

func (t *ReturnReminderTaskDef) TaskID() string {
	return "order_return_reminder"
}

// dailyRule fires every morning shop-opening time.
const dailyRule = "FREQ=DAILY;INTERVAL=1"

// EnsureScheduled seeds the recurring reminder task if it doesn't exist yet.
// Called at server startup.
func (t *ReturnReminderTaskDef) EnsureScheduled(db *gorm.DB) error {
	var existing models.ScheduledTask
	err := db.Where("task_name = ? AND status = ?", t.TaskID(), models.ScheduledTaskStatusActive).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	rule := dailyRule
	now := time.Now()
	due := time.Date(now.Year(), now.Month(), now.Day(), 9, 0, 0, 0, now.Location())
	if due.Before(now) {
		due = due.Add(24 * time.Hour)
	}

	task, err := BuildScheduledTask(t.TaskID(), map[string]interface{}{}, due, &rule, models.ScheduledTaskTypeRecurring, 3)
	if err != nil {
		return err
	}
	return db.Create(task).Error
}

// ReminderMessage is the WhatsApp text sent to one client.
func ReminderMessage(shopName, clientName string, returnDate time.Time) string {
	return fmt.Sprintf("Dear %s, your order at %s is ready for collection (return date %s). Please visit the shop to collect it.",
		clientName, shopName, returnDate.Format("02-Jan-2006"))
}

// DueOrders returns non-returned orders whose return date is on or before the
// given day, with clients preloaded.
func DueOrders(db *gorm.DB, now time.Time) ([]models.PaymentOrder, error) {
	y, m, d := now.Date()
	endOfDay := time.Date(y, m, d, 23, 59, 59, 0, now.Location())

	var orders []models.PaymentOrder
	err := db.Preload("Client").
		Where("return_status = ? AND return_date IS NOT NULL AND return_date <= ?", models.ReturnStatusPending, endOfDay).
		Order("return_date ASC").
		Find(&orders).Error
	return orders, err
}

func (t *ReturnReminderTaskDef) HandleExecution(ctx context.Context, db *gorm.DB, task models.ScheduledTask) (map[string]interface{}, error) {
	orders, err := DueOrders(db, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch due orders: %w", err)
	}

	if len(orders) == 0 {
		return map[string]interface{}{"status": "success", "due": 0}, nil
	}

	shopName := services.GetSetting(db, models.SettingShopName, "Tailor Shop")
	wa := services.NewWhatsAppService()

	sent := 0
	skipped := 0
	failed := 0
	var summary []string

	for _, order := range orders {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		line := fmt.Sprintf("#%d %s (return %s, remaining %d)",
			order.ID, order.Client.Name, order.ReturnDate.Format("02-Jan-2006"), order.RemainingAmount)
		summary = append(summary, line)

		if order.Client.WhatsAppNo == "" {
			log.Printf("Skipping reminder for order %d: client %s has no WhatsApp number", order.ID, order.Client.Name)
			skipped++
			continue
		}

		msg := ReminderMessage(shopName, order.Client.Name, *order.ReturnDate)
		if err := wa.SendMessage(order.Client.WhatsAppNo, msg); err != nil {
			log.Printf("Failed to send reminder for order %d: %v", order.ID, err)
			failed++
			continue
		}
		sent++
	}

	// Owner summary is best effort; reminder delivery already happened.
	if owner := services.GetSetting(db, models.SettingOwnerEmail, ""); owner != "" {
		mail := services.NewEmailService()
		body := fmt.Sprintf("Orders due for return today:\n\n%s\n\nReminders sent: %d, skipped: %d, failed: %d\n",
			strings.Join(summary, "\n"), sent, skipped, failed)
		if err := mail.SendEmail([]string{owner}, "Daily return reminders", body); err != nil {
			log.Printf("Failed to mail owner summary: %v", err)
		}
	}

	return map[string]interface{}{
		"status":  "success",
		"due":     len(orders),
		"sent":    sent,
		"skipped": skipped,
		"failure": failed,
	}, nil
}
