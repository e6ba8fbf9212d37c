package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// DownloadTask represents the outcome of a single download request
type DownloadTask struct {
	URL         string         // cleaned URL used for dedup and extraction
	Company     MediaCompany   // site the URL belongs to
	MediaType   MediaType      // audio or video
	Status      TaskStatus     // where the task ended up
	Attempts    int            // extractor invocations made
	Title       string         // media title reported by the extractor
	OutputPaths []string       // final locations of the placed files
	Prior       *HistoryRecord // matching history record when skipped
	LastError   string         // last error message if any
	StartedAt   time.Time      // when the task started
	FinishedAt  time.Time      // when the task finished
}

// NewDownloadTask creates a pending task for url
func NewDownloadTask(url string, company MediaCompany, mediaType MediaType) *DownloadTask {
	return &DownloadTask{
		URL:       url,
		Company:   company,
		MediaType: mediaType,
		Status:    TaskStatusPending,
		StartedAt: time.Now(),
	}
}

// Finish sets the final status and timestamp
func (dt *DownloadTask) Finish(status TaskStatus, err error) {
	dt.Status = status
	if err != nil {
		dt.LastError = err.Error()
	}
	dt.FinishedAt = time.Now()
}

// OutputPath returns the first placed file, or "" when nothing was placed
func (dt *DownloadTask) OutputPath() string {
	if len(dt.OutputPaths) == 0 {
		return ""
	}
	return dt.OutputPaths[0]
}

// GetElapsedString returns the task duration formatted as hh:mm:ss or mm:ss,
// or "—" if the task has not finished
func (dt *DownloadTask) GetElapsedString() string {
	if dt.FinishedAt.IsZero() || dt.StartedAt.IsZero() {
		return "—"
	}

	total := int(dt.FinishedAt.Sub(dt.StartedAt).Seconds())
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// GetDisplayTitle returns title, filename, or URL in order of preference
func (dt *DownloadTask) GetDisplayTitle() string {
	if dt.Title != "" && !strings.HasPrefix(dt.Title, "http") {
		return dt.Title
	}

	if path := dt.OutputPath(); path != "" {
		filename := filepath.Base(path)
		if idx := strings.LastIndex(filename, "."); idx > 0 {
			filename = filename[:idx]
		}
		return filename
	}

	return dt.URL
}
