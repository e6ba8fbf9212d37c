package model

import (
	"time"
)

// PlaylistStatus represents the current status of a playlist
type PlaylistStatus string

const (
	PlaylistStatusParsing     PlaylistStatus = "parsing"
	PlaylistStatusReady       PlaylistStatus = "ready"
	PlaylistStatusDownloading PlaylistStatus = "downloading"
	PlaylistStatusCompleted   PlaylistStatus = "completed"
	PlaylistStatusError       PlaylistStatus = "error"
)

// EntryStatus represents the status of a single entry in a playlist
type EntryStatus string

const (
	EntryStatusPending   EntryStatus = "pending"
	EntryStatusCompleted EntryStatus = "completed"
	EntryStatusError     EntryStatus = "error"
	// Skipped covers both dedup hits and dry runs
	EntryStatusSkipped EntryStatus = "skipped"
)

// PlaylistEntry represents a single video in a playlist
type PlaylistEntry struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	URL        string      `json:"url"`
	Status     EntryStatus `json:"status"`
	Error      string      `json:"error,omitempty"`
	OutputPath string      `json:"output_path,omitempty"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// Playlist represents a YouTube playlist with its entries
type Playlist struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	URL       string           `json:"url"`
	Entries   []*PlaylistEntry `json:"entries"`
	Status    PlaylistStatus   `json:"status"`
	Error     string           `json:"error,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// NewPlaylist creates a new playlist instance
func NewPlaylist(url string) *Playlist {
	now := time.Now()
	return &Playlist{
		URL:       url,
		Status:    PlaylistStatusParsing,
		Entries:   make([]*PlaylistEntry, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddEntry adds an entry to the playlist
func (p *Playlist) AddEntry(entry *PlaylistEntry) {
	p.Entries = append(p.Entries, entry)
	p.UpdatedAt = time.Now()
}

// Len returns the number of entries
func (p *Playlist) Len() int {
	return len(p.Entries)
}

// UpdateStatus updates the playlist status
func (p *Playlist) UpdateStatus(status PlaylistStatus) {
	p.Status = status
	p.UpdatedAt = time.Now()
}

// UpdateEntry records the outcome of downloading the entry with the given ID
func (p *Playlist) UpdateEntry(entryID string, status EntryStatus, outputPath string, err error) {
	for _, entry := range p.Entries {
		if entry.ID == entryID {
			entry.Status = status
			entry.OutputPath = outputPath
			if err != nil {
				entry.Error = err.Error()
			}
			entry.UpdatedAt = time.Now()
			break
		}
	}
	p.UpdatedAt = time.Now()
}

func (p *Playlist) entriesWithStatus(status EntryStatus) []*PlaylistEntry {
	var out []*PlaylistEntry
	for _, entry := range p.Entries {
		if entry.Status == status {
			out = append(out, entry)
		}
	}
	return out
}

// GetPendingEntries returns all entries with pending status
func (p *Playlist) GetPendingEntries() []*PlaylistEntry {
	return p.entriesWithStatus(EntryStatusPending)
}

// GetCompletedEntries returns all completed entries
func (p *Playlist) GetCompletedEntries() []*PlaylistEntry {
	return p.entriesWithStatus(EntryStatusCompleted)
}

// GetSkippedEntries returns entries skipped by dedup or dry run
func (p *Playlist) GetSkippedEntries() []*PlaylistEntry {
	return p.entriesWithStatus(EntryStatusSkipped)
}

// GetFailedEntries returns all entries that ended in error
func (p *Playlist) GetFailedEntries() []*PlaylistEntry {
	return p.entriesWithStatus(EntryStatusError)
}

// GetDownloadProgress returns the share of finished entries as a percentage
func (p *Playlist) GetDownloadProgress() float64 {
	if len(p.Entries) == 0 {
		return 0
	}

	done := len(p.Entries) - len(p.GetPendingEntries())
	return float64(done) / float64(len(p.Entries)) * 100
}

// IsReadyForDownload checks if playlist is ready to start downloading
func (p *Playlist) IsReadyForDownload() bool {
	return p.Status == PlaylistStatusReady && len(p.Entries) > 0
}

// HasErrors checks if any entry has errors
func (p *Playlist) HasErrors() bool {
	return len(p.GetFailedEntries()) > 0
}
