package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ytget/cm-util/internal/model"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// JSON layout
const (
	jsonIndent = "  "
)

// Store is a JSON-file backed download history
type Store struct {
	path string
	now  func() time.Time
}

// NewStore creates a history store backed by path
func NewStore(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// Path returns the history file location
func (s *Store) Path() string {
	return s.path
}

// load reads every record. A missing or corrupt file yields no records.
func (s *Store) load(ctx context.Context) []model.HistoryRecord {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.FromContext(ctx).Warn("Error loading history file", "path", s.path, "error", err)
		}
		return nil
	}

	var records []model.HistoryRecord
	if err := json.Unmarshal(data, &records); err != nil {
		log.FromContext(ctx).Warn("History file is corrupt, starting empty", "path", s.path, "error", err)
		return nil
	}
	return records
}

func (s *Store) save(records []model.HistoryRecord) error {
	if records == nil {
		records = []model.HistoryRecord{}
	}

	data, err := json.MarshalIndent(records, "", jsonIndent)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), DefaultDirPermissions); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to save history file: %w", err)
	}
	return nil
}

// IsDownloaded reports whether url has a record
func (s *Store) IsDownloaded(ctx context.Context, url string) bool {
	_, ok := s.Lookup(ctx, url)
	return ok
}

// Lookup returns the first record whose URL matches exactly
func (s *Store) Lookup(ctx context.Context, url string) (model.HistoryRecord, bool) {
	for _, record := range s.load(ctx) {
		if record.URL == url {
			return record, true
		}
	}
	return model.HistoryRecord{}, false
}

// Record appends a record stamped with the current time and persists the
// whole collection
func (s *Store) Record(ctx context.Context, url, title string, mediaType model.MediaType, filePath string) error {
	records := s.load(ctx)
	records = append(records, model.HistoryRecord{
		URL:       url,
		Title:     title,
		MediaType: mediaType,
		FilePath:  filePath,
		Timestamp: s.now().Format(time.RFC3339),
	})

	if err := s.save(records); err != nil {
		return err
	}
	log.FromContext(ctx).Debug("Added to history", "url", url, "title", title)
	return nil
}

// Clear removes every record
func (s *Store) Clear(ctx context.Context) error {
	if err := s.save(nil); err != nil {
		return err
	}
	log.FromContext(ctx).Info("Download history cleared", "path", s.path)
	return nil
}

// List returns records most recent first. A limit of 0 or less returns all.
func (s *Store) List(ctx context.Context, limit int) []model.HistoryRecord {
	records := s.load(ctx)

	out := make([]model.HistoryRecord, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		out = append(out, records[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
