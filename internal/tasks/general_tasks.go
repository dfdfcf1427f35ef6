package tasks

import (
	"context"
	"log"

	"gorm.io/gorm"

	"tailorapp_echo/internal/models"
)

// LogInfoTaskDef writes its message argument to the log; used for smoke
// testing the worker pipeline.
type LogInfoTaskDef struct{}

var LogInfoTask = &LogInfoTaskDef{}

func (t *LogInfoTaskDef) TaskID() string {
	return "log_info"
}

func (t *LogInfoTaskDef) HandleExecution(ctx context.Context, db *gorm.DB, task models.ScheduledTask) (map[string]interface{}, error) {
	message, _ := task.Arguments["message"].(string)
	log.Printf("log_info task: %s", message)
	return map[string]interface{}{"status": "success", "message": message}, nil
}
