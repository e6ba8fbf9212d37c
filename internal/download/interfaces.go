package download

import (
	"context"

	"github.com/ytget/cm-util/internal/model"
)

// Metadata is what the extractor reports about a finished download
type Metadata struct {
	Title    string
	Artist   string
	Album    string
	Year     int
	Filename string
}

// ExtractOptions configures a single extractor run
type ExtractOptions struct {
	Format       FormatOptions
	Dir          string // staging directory the extractor writes into
	ShowProgress bool
}

// Extractor downloads the media behind a URL into a directory
type Extractor interface {
	Extract(ctx context.Context, url string, opts ExtractOptions) (*Metadata, error)
}

// Placer moves finished media files to their destination folder
type Placer interface {
	Place(ctx context.Context, srcDir, destDir string, exts []string) ([]string, error)
}

// Tagger writes metadata into a media file
type Tagger interface {
	Tag(path string, meta *Metadata) error
}

// HistoryStore is the subset of the history used for dedup and recording
type HistoryStore interface {
	Lookup(ctx context.Context, url string) (model.HistoryRecord, bool)
	Record(ctx context.Context, url, title string, mediaType model.MediaType, filePath string) error
}
