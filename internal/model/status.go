package model

// TaskStatus represents the status of a download task
type TaskStatus string

const (
	// TaskStatusPending means the task is created but not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusSkipped means the URL was already in history
	TaskStatusSkipped TaskStatus = "Skipped"

	// TaskStatusDryRun means the task only reported what it would do
	TaskStatusDryRun TaskStatus = "DryRun"

	// TaskStatusDownloading means the extractor is running
	TaskStatusDownloading TaskStatus = "Downloading"

	// TaskStatusCompleted means the task finished successfully
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the task failed with an error
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active state
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusDownloading
}

// IsFinished returns true if the task is in a finished state
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusSkipped || ts == TaskStatusDryRun || ts == TaskStatusError
}

// IsSuccess returns true for every finished state except Error
func (ts TaskStatus) IsSuccess() bool {
	return ts.IsFinished() && ts != TaskStatusError
}
