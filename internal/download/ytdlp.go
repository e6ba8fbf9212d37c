package download

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lrstanley/go-ytdlp"
)

// Progress reporting interval
const (
	DefaultProgressInterval = 500 * time.Millisecond
)

// YTDLPExtractor runs yt-dlp through go-ytdlp
type YTDLPExtractor struct {
	progressInterval time.Duration

	installOnce sync.Once
	installErr  error
}

// NewYTDLPExtractor creates an extractor that resolves the yt-dlp binary on
// first use
func NewYTDLPExtractor() *YTDLPExtractor {
	return &YTDLPExtractor{progressInterval: DefaultProgressInterval}
}

// ensureInstalled resolves yt-dlp once per process, downloading it into the
// go-ytdlp cache when it is not available. A missing ffmpeg only warns since
// yt-dlp can still fetch single-stream formats without it.
func (e *YTDLPExtractor) ensureInstalled(ctx context.Context) error {
	e.installOnce.Do(func() {
		logger := log.FromContext(ctx)
		if _, err := ytdlp.Install(ctx, &ytdlp.InstallOptions{AllowVersionMismatch: true}); err != nil {
			e.installErr = fmt.Errorf("failed to install yt-dlp: %w", err)
			return
		}
		if _, err := ytdlp.InstallFFmpeg(ctx, nil); err != nil {
			logger.Warn("ffmpeg is not available, audio conversion and merging may fail", "error", err)
		}
	})
	return e.installErr
}

func (e *YTDLPExtractor) buildCommand(ctx context.Context, opts ExtractOptions) *ytdlp.Command {
	format := opts.Format
	cmd := ytdlp.New().
		PrintJSON().
		Newline().
		Output(filepath.Join(opts.Dir, format.OutputTemplate))

	if format.Format != "" {
		cmd.Format(format.Format)
	}
	if format.FormatSort != "" {
		cmd.FormatSort(format.FormatSort)
	}
	if format.MergeOutputFormat != "" {
		cmd.MergeOutputFormat(format.MergeOutputFormat)
	}
	if format.ExtractAudio {
		cmd.ExtractAudio().
			AudioFormat(format.AudioFormat).
			AudioQuality(format.AudioQuality)
	}
	if format.IgnoreErrors {
		cmd.IgnoreErrors()
	}
	if format.CookiesBrowser != "" {
		cmd.CookiesFromBrowser(format.CookiesBrowser)
	}

	if opts.ShowProgress {
		logger := log.FromContext(ctx)
		cmd.ProgressFunc(e.progressInterval, func(update ytdlp.ProgressUpdate) {
			logger.Info("Progress",
				"file", filepath.Base(update.Filename),
				"percent", fmt.Sprintf("%.1f%%", update.Percent()),
				"eta", update.ETA().Round(time.Second),
			)
		})
	}
	return cmd
}

// Extract downloads url into opts.Dir and returns what yt-dlp reported
func (e *YTDLPExtractor) Extract(ctx context.Context, url string, opts ExtractOptions) (*Metadata, error) {
	if err := e.ensureInstalled(ctx); err != nil {
		return nil, err
	}

	result, err := e.buildCommand(ctx, opts).Run(ctx, url)
	if err != nil {
		if result != nil && result.ExitCode != 0 {
			return nil, fmt.Errorf("yt-dlp exited with error code: %d: %w", result.ExitCode, err)
		}
		return nil, fmt.Errorf("yt-dlp failed: %w", err)
	}

	info, err := result.GetExtractedInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to read yt-dlp output: %w", err)
	}
	return metadataFromExtracted(info)
}

// metadataFromExtracted uses the first reported entry. No entries means the
// run produced nothing.
func metadataFromExtracted(info []*ytdlp.ExtractedInfo) (*Metadata, error) {
	if len(info) == 0 || info[0] == nil {
		return nil, ErrNoMetadata
	}
	return metadataFromInfo(info[0]), nil
}

// trackInfo holds the music fields yt-dlp reports for tracks
type trackInfo struct {
	Artist      string `json:"artist"`
	Uploader    string `json:"uploader"`
	Album       string `json:"album"`
	ReleaseYear int    `json:"release_year"`
	UploadDate  string `json:"upload_date"`
}

func metadataFromInfo(info *ytdlp.ExtractedInfo) *Metadata {
	meta := &Metadata{}
	if info.Title != nil {
		meta.Title = *info.Title
	}
	if info.Filename != nil {
		meta.Filename = *info.Filename
	}

	raw, err := json.Marshal(info)
	if err != nil {
		return meta
	}
	var track trackInfo
	if err := json.Unmarshal(raw, &track); err != nil {
		return meta
	}

	meta.Artist = track.Artist
	if meta.Artist == "" {
		meta.Artist = track.Uploader
	}
	meta.Album = track.Album
	meta.Year = track.ReleaseYear
	if meta.Year == 0 && len(track.UploadDate) >= 4 {
		if year, err := strconv.Atoi(track.UploadDate[:4]); err == nil {
			meta.Year = year
		}
	}
	return meta
}
