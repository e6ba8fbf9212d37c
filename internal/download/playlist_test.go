package download

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ytget/cm-util/internal/model"
)

func newTestPlaylist(ids ...string) *model.Playlist {
	playlist := model.NewPlaylist("https://www.youtube.com/playlist?list=PL1")
	for _, id := range ids {
		playlist.AddEntry(&model.PlaylistEntry{
			ID:     id,
			Title:  "Video " + id,
			URL:    "https://www.youtube.com/watch?v=" + id,
			Status: model.EntryStatusPending,
		})
	}
	playlist.UpdateStatus(model.PlaylistStatusReady)
	return playlist
}

func TestDownloadPlaylist_ContinuesAfterFailure(t *testing.T) {
	env := newTestEnv(t, func(url string, opts ExtractOptions) (*Metadata, error) {
		if url == "https://www.youtube.com/watch?v=bad" {
			return nil, errExtract
		}
		return writeFile(url[len(url)-3:]+".mp4", &Metadata{Title: url})(url, opts)
	})
	env.history.records = []model.HistoryRecord{{URL: "https://www.youtube.com/watch?v=old"}}

	playlist := newTestPlaylist("one", "bad", "old", "two")
	template := NewRequest("", model.CompanyYouTube, model.MediaTypeVideo)
	template.MaxRetries = 2
	template.RetryDelay = time.Millisecond

	err := env.service.DownloadPlaylist(context.Background(), playlist, template)

	if err == nil || !errors.Is(err, errExtract) {
		t.Fatalf("expected joined extractor error, got %v", err)
	}
	if !model.IsKind(err, model.KindExternalTool) {
		t.Errorf("expected external tool kind in chain, got %v", err)
	}

	expected := map[string]model.EntryStatus{
		"one": model.EntryStatusCompleted,
		"bad": model.EntryStatusError,
		"old": model.EntryStatusSkipped,
		"two": model.EntryStatusCompleted,
	}
	for _, entry := range playlist.Entries {
		if entry.Status != expected[entry.ID] {
			t.Errorf("entry %s status = %s, want %s", entry.ID, entry.Status, expected[entry.ID])
		}
	}
	if playlist.Entries[0].OutputPath == "" {
		t.Error("completed entry should carry its output path")
	}
	if playlist.Entries[1].Error == "" {
		t.Error("failed entry should carry its error")
	}
	if env.extractor.calls["https://www.youtube.com/watch?v=bad"] != 2 {
		t.Errorf("failed entry should be retried, got %d calls", env.extractor.calls["https://www.youtube.com/watch?v=bad"])
	}
	if env.extractor.calls["https://www.youtube.com/watch?v=old"] != 0 {
		t.Error("entry in history should be skipped")
	}
	if playlist.Status != model.PlaylistStatusError || !playlist.HasErrors() {
		t.Errorf("expected playlist error status, got %s", playlist.Status)
	}
}

func TestDownloadPlaylist_AllSucceed(t *testing.T) {
	env := newTestEnv(t, func(url string, opts ExtractOptions) (*Metadata, error) {
		return writeFile(url[len(url)-3:]+".mp4", &Metadata{Title: url})(url, opts)
	})

	playlist := newTestPlaylist("aaa", "bbb")
	err := env.service.DownloadPlaylist(context.Background(), playlist, NewRequest("", model.CompanyYouTube, model.MediaTypeVideo))
	if err != nil {
		t.Fatalf("DownloadPlaylist() error: %v", err)
	}
	if playlist.Status != model.PlaylistStatusCompleted || playlist.GetDownloadProgress() != 100 {
		t.Errorf("unexpected playlist state: status=%s progress=%v", playlist.Status, playlist.GetDownloadProgress())
	}
	if len(env.history.records) != 2 {
		t.Errorf("expected each entry recorded, got %d", len(env.history.records))
	}
}

func TestDownloadPlaylist_DryRun(t *testing.T) {
	env := newTestEnv(t, writeFile("x.mp4", nil))

	playlist := newTestPlaylist("aaa", "bbb")
	template := NewRequest("", model.CompanyYouTube, model.MediaTypeVideo)
	template.DryRun = true

	if err := env.service.DownloadPlaylist(context.Background(), playlist, template); err != nil {
		t.Fatalf("DownloadPlaylist() error: %v", err)
	}
	if env.extractor.total() != 0 {
		t.Errorf("dry run must not extract, got %d calls", env.extractor.total())
	}
	for _, entry := range playlist.Entries {
		if entry.Status != model.EntryStatusSkipped {
			t.Errorf("entry %s: expected skipped, got %s", entry.ID, entry.Status)
		}
	}
}
