package tasks

// DefineTasks registers all available tasks
func DefineTasks() {
	RegisterHandler(LogInfoTask.TaskID(), LogInfoTask.HandleExecution)
	RegisterHandler(ReturnReminderTask.TaskID(), ReturnReminderTask.HandleExecution)
}
