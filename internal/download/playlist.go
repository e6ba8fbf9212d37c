package download

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/ytget/cm-util/internal/model"
)

// DownloadPlaylist downloads every entry of playlist with the settings of
// template. Each entry is deduped on its own; a failed entry is recorded and
// the remaining entries still run. The joined entry errors are returned.
func (s *Service) DownloadPlaylist(ctx context.Context, playlist *model.Playlist, template Request) error {
	logger := log.FromContext(ctx).WithPrefix("playlist")
	playlist.UpdateStatus(model.PlaylistStatusDownloading)

	var errs []error
	for i, entry := range playlist.Entries {
		if err := ctx.Err(); err != nil {
			playlist.UpdateStatus(model.PlaylistStatusError)
			return err
		}

		logger.Info("Playlist entry", "index", fmt.Sprintf("%d/%d", i+1, playlist.Len()), "title", model.DisplayValue(entry.Title))

		req := template
		req.URL = entry.URL
		task, err := s.Download(ctx, req)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				playlist.UpdateEntry(entry.ID, model.EntryStatusError, "", ctxErr)
				playlist.UpdateStatus(model.PlaylistStatusError)
				return ctxErr
			}
			logger.Error("Playlist entry failed", "url", entry.URL, "error", err)
			playlist.UpdateEntry(entry.ID, model.EntryStatusError, "", err)
			errs = append(errs, fmt.Errorf("%s: %w", model.DisplayValue(entry.Title), err))
			continue
		}

		switch task.Status {
		case model.TaskStatusCompleted:
			playlist.UpdateEntry(entry.ID, model.EntryStatusCompleted, task.OutputPath(), nil)
		default:
			playlist.UpdateEntry(entry.ID, model.EntryStatusSkipped, "", nil)
		}
	}

	if len(errs) > 0 {
		playlist.Error = fmt.Sprintf("%d of %d entries failed", len(errs), playlist.Len())
		playlist.UpdateStatus(model.PlaylistStatusError)
	} else {
		playlist.UpdateStatus(model.PlaylistStatusCompleted)
	}
	logger.Info("Playlist finished",
		"completed", len(playlist.GetCompletedEntries()),
		"failed", len(playlist.GetFailedEntries()),
		"total", playlist.Len(),
	)
	return errors.Join(errs...)
}
