package download

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/charmbracelet/log"
	"github.com/duke-git/lancet/v2/slice"
	"github.com/google/uuid"

	"github.com/ytget/cm-util/internal/model"
)

// Retry defaults
const (
	DefaultMaxRetries = 3
	DefaultRetryDelay = 2 * time.Second
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// ErrNoMetadata is returned by an attempt whose extractor reported nothing
var ErrNoMetadata = errors.New("extraction failed: no media info returned")

// Options configure a Service
type Options struct {
	StagingRoot    string                     // parent of the per-download staging directories
	Destinations   map[model.MediaType]string // default destination folder per media type
	CookiesBrowser string                     // browser to read cookies from for audio
	ShowProgress   bool                       // log extractor progress
}

// Request describes one download
type Request struct {
	URL        string
	Company    model.MediaCompany
	MediaType  model.MediaType
	MaxRetries int
	RetryDelay time.Duration
	DryRun     bool
	OutputDir  string // overrides the destination for this request
	Force      bool   // download even when the URL is in history
}

// NewRequest creates a request with the default retry policy
func NewRequest(url string, company model.MediaCompany, mediaType model.MediaType) Request {
	return Request{
		URL:        url,
		Company:    company,
		MediaType:  mediaType,
		MaxRetries: DefaultMaxRetries,
		RetryDelay: DefaultRetryDelay,
	}
}

// Service handles download operations
type Service struct {
	extractor Extractor
	history   HistoryStore
	placer    Placer
	tagger    Tagger
	opts      Options
	onRetry   func(attempt int, wait time.Duration, err error)
}

// NewService creates a new download service. tagger may be nil.
func NewService(extractor Extractor, history HistoryStore, placer Placer, tagger Tagger, opts Options) *Service {
	return &Service{
		extractor: extractor,
		history:   history,
		placer:    placer,
		tagger:    tagger,
		opts:      opts,
	}
}

// SetRetryCallback sets the function called before every retry wait
func (s *Service) SetRetryCallback(callback func(attempt int, wait time.Duration, err error)) {
	s.onRetry = callback
}

// Download runs one request through dedup, extraction, tagging, placement
// and history recording
func (s *Service) Download(ctx context.Context, req Request) (*model.DownloadTask, error) {
	logger := log.FromContext(ctx).WithPrefix("download")

	url, err := s.validate(req)
	if err != nil {
		return nil, err
	}
	formatOpts, err := BuildFormatOptions(req.MediaType, s.opts.CookiesBrowser)
	if err != nil {
		return nil, err
	}
	dest, err := s.destination(req)
	if err != nil {
		return nil, err
	}

	task := model.NewDownloadTask(url, req.Company, req.MediaType)

	if !req.Force {
		if prior, ok := s.history.Lookup(ctx, url); ok {
			logger.Info("Already downloaded, skipping",
				"title", model.DisplayValue(prior.Title),
				"downloaded", model.DisplayValue(prior.Timestamp),
				"url", url,
			)
			task.Prior = &prior
			task.Title = prior.Title
			task.Finish(model.TaskStatusSkipped, nil)
			return task, nil
		}
	}

	if req.DryRun {
		logger.Info("[DRY RUN] Would download", "type", req.MediaType, "url", url, "destination", dest)
		task.Finish(model.TaskStatusDryRun, nil)
		return task, nil
	}

	staging := filepath.Join(s.opts.StagingRoot, uuid.NewString())
	if err := os.MkdirAll(staging, DefaultDirPermissions); err != nil {
		err = model.NewError(model.KindFilesystem, "create staging directory", err)
		task.Finish(model.TaskStatusError, err)
		return task, err
	}
	defer func() {
		if err := os.RemoveAll(staging); err != nil {
			logger.Warn("Failed to remove staging directory", "path", staging, "error", err)
		}
	}()

	task.Status = model.TaskStatusDownloading
	meta, err := s.extractWithRetry(ctx, logger, task, req, ExtractOptions{
		Format:       formatOpts,
		Dir:          staging,
		ShowProgress: s.opts.ShowProgress,
	})
	if err != nil {
		task.Finish(model.TaskStatusError, err)
		return task, err
	}
	task.Title = meta.Title

	if req.MediaType == model.MediaTypeAudio && s.tagger != nil {
		s.tagStaged(logger, staging, meta)
	}

	placed, err := s.placer.Place(ctx, staging, dest, req.MediaType.Extensions())
	if err != nil {
		var kindErr *model.Error
		if !errors.As(err, &kindErr) {
			err = model.NewError(model.KindFilesystem, "place files", err)
		}
		task.Finish(model.TaskStatusError, err)
		return task, err
	}
	if len(placed) == 0 {
		err = model.NewError(model.KindExternalTool, "download",
			fmt.Errorf("no %s files were produced for %s", req.MediaType, url))
		task.Finish(model.TaskStatusError, err)
		return task, err
	}
	task.OutputPaths = placed

	title := task.GetDisplayTitle()
	if err := s.history.Record(ctx, url, title, req.MediaType, task.OutputPath()); err != nil {
		logger.Error("Downloaded but failed to save history", "url", url, "error", err)
	}

	task.Finish(model.TaskStatusCompleted, nil)
	logger.Info("Download completed",
		"title", title,
		"files", len(placed),
		"destination", dest,
		"elapsed", task.GetElapsedString(),
	)
	return task, nil
}

func (s *Service) validate(req Request) (string, error) {
	if !req.Company.IsValid() {
		return "", model.Validationf("download", "unsupported media company: %q", req.Company)
	}
	if !req.MediaType.IsValid() {
		return "", model.Validationf("download", "invalid media type: %q", req.MediaType)
	}
	if req.MediaType == model.MediaTypeVideo && req.Company != model.CompanyYouTube {
		return "", model.Validationf("download", "video downloads support YouTube only, got %s", req.Company)
	}

	url := CleanURL(req.URL, req.Company)
	if err := ValidateURL(url, req.Company); err != nil {
		return "", err
	}
	return url, nil
}

func (s *Service) destination(req Request) (string, error) {
	if req.OutputDir != "" {
		return req.OutputDir, nil
	}
	if dest := s.opts.Destinations[req.MediaType]; dest != "" {
		return dest, nil
	}
	return "", model.Validationf("download", "no destination folder configured for %s", req.MediaType)
}

// extractWithRetry invokes the extractor up to req.MaxRetries times with a
// constant wait between attempts
func (s *Service) extractWithRetry(ctx context.Context, logger *log.Logger, task *model.DownloadTask, req Request, opts ExtractOptions) (*Metadata, error) {
	maxTries := max(req.MaxRetries, 1)

	operation := func() (*Metadata, error) {
		task.Attempts++
		logger.Info("Downloading", "attempt", fmt.Sprintf("%d/%d", task.Attempts, maxTries), "url", task.URL)

		meta, err := s.extractor.Extract(ctx, task.URL, opts)
		if err != nil {
			if ctx.Err() != nil {
				return nil, backoff.Permanent(ctx.Err())
			}
			logger.Warn("Download attempt failed", "attempt", task.Attempts, "error", err)
			return nil, err
		}
		if meta == nil {
			logger.Warn("Download attempt failed", "attempt", task.Attempts, "error", ErrNoMetadata)
			return nil, ErrNoMetadata
		}
		return meta, nil
	}

	meta, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewConstantBackOff(req.RetryDelay)),
		backoff.WithMaxTries(uint(maxTries)),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, wait time.Duration) {
			logger.Info("Retrying", "in", wait, "error", err)
			if s.onRetry != nil {
				s.onRetry(task.Attempts, wait, err)
			}
		}),
	)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, model.NewError(model.KindExternalTool, "download",
			fmt.Errorf("failed after %d attempts: %w", task.Attempts, err))
	}
	return meta, nil
}

// tagStaged tags every audio file in dir. Failures are logged and skipped.
func (s *Service) tagStaged(logger *log.Logger, dir string, meta *Metadata) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warn("Failed to list staged files for tagging", "error", err)
		return
	}
	for _, entry := range entries {
		if entry.IsDir() || !slice.Contain(model.AudioExtensions, strings.ToLower(filepath.Ext(entry.Name()))) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := s.tagger.Tag(path, meta); err != nil {
			logger.Warn("Failed to tag audio file", "file", entry.Name(), "error", err)
		}
	}
}
