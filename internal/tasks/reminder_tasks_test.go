package tasks

import (
	"strings"
	"testing"
	"time"
)

func TestReminderMessage(t *testing.T) {
	date := time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local)
	msg := ReminderMessage("Khan Tailors", "Ali Ahmed", date)

	for _, want := range []string{"Ali Ahmed", "Khan Tailors", "15-Mar-2025"} {
		if !strings.Contains(msg, want) {
			t.Errorf("ReminderMessage missing %q: %q", want, msg)
		}
	}
}
