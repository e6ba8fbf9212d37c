package download

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/ytget/cm-util/internal/model"
)

// stubExtractor answers Extract with fn and counts calls per URL
type stubExtractor struct {
	mu    sync.Mutex
	calls map[string]int
	opts  []ExtractOptions
	fn    func(url string, opts ExtractOptions) (*Metadata, error)
}

func newStubExtractor(fn func(url string, opts ExtractOptions) (*Metadata, error)) *stubExtractor {
	return &stubExtractor{calls: make(map[string]int), fn: fn}
}

func (s *stubExtractor) Extract(_ context.Context, url string, opts ExtractOptions) (*Metadata, error) {
	s.mu.Lock()
	s.calls[url]++
	s.opts = append(s.opts, opts)
	s.mu.Unlock()
	return s.fn(url, opts)
}

func (s *stubExtractor) total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.calls {
		n += c
	}
	return n
}

// writeFile returns an extractor func that drops name into the staging dir
func writeFile(name string, meta *Metadata) func(string, ExtractOptions) (*Metadata, error) {
	return func(_ string, opts ExtractOptions) (*Metadata, error) {
		if err := os.WriteFile(filepath.Join(opts.Dir, name), []byte("media data"), 0644); err != nil {
			return nil, err
		}
		return meta, nil
	}
}

// memHistory keeps records in memory
type memHistory struct {
	records []model.HistoryRecord
	writes  int
}

func (h *memHistory) Lookup(_ context.Context, url string) (model.HistoryRecord, bool) {
	for _, r := range h.records {
		if r.URL == url {
			return r, true
		}
	}
	return model.HistoryRecord{}, false
}

func (h *memHistory) Record(_ context.Context, url, title string, mediaType model.MediaType, filePath string) error {
	h.writes++
	h.records = append(h.records, model.HistoryRecord{URL: url, Title: title, MediaType: mediaType, FilePath: filePath})
	return nil
}

// recordingTagger remembers the files it was asked to tag
type recordingTagger struct {
	paths []string
}

func (r *recordingTagger) Tag(path string, _ *Metadata) error {
	r.paths = append(r.paths, path)
	return nil
}

// dirPlacer moves files with os.Rename and fails when destDir is missing
type dirPlacer struct {
	calls int
}

func (p *dirPlacer) Place(_ context.Context, srcDir, destDir string, exts []string) ([]string, error) {
	p.calls++
	if _, err := os.Stat(destDir); err != nil {
		return nil, model.NewError(model.KindFilesystem, "place", err)
	}
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return nil, err
	}
	var moved []string
	for _, e := range entries {
		for _, ext := range exts {
			if filepath.Ext(e.Name()) == ext {
				target := filepath.Join(destDir, e.Name())
				if err := os.Rename(filepath.Join(srcDir, e.Name()), target); err != nil {
					return moved, err
				}
				moved = append(moved, target)
			}
		}
	}
	return moved, nil
}
