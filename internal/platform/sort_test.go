package platform

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/ytget/cm-util/internal/model"
)

// createFilesInOrder creates files with a gap between them so their
// creation times differ
func createFilesInOrder(t *testing.T, dir string, names ...string) {
	t.Helper()
	for i, name := range names {
		if i > 0 {
			time.Sleep(50 * time.Millisecond)
		}
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0644); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}
}

func TestSortFilesBy(t *testing.T) {
	dir := t.TempDir()
	createFilesInOrder(t, dir, "c.mp3", "a.mp3", "b.txt")
	if err := os.Mkdir(filepath.Join(dir, "sub.mp3"), 0755); err != nil {
		t.Fatalf("create subdir: %v", err)
	}

	tests := []struct {
		name     string
		fileType string
		orderBy  string
		expected []string
	}{
		{"all by name", "all", "name", []string{"a.mp3", "b.txt", "c.mp3"}},
		{"all by date", "all", "date", []string{"c.mp3", "a.mp3", "b.txt"}},
		{"mp3 by name", "mp3", "name", []string{"a.mp3", "c.mp3"}},
		{"dotted extension by date", ".MP3", "date", []string{"c.mp3", "a.mp3"}},
		{"empty type means all", "", "NAME", []string{"a.mp3", "b.txt", "c.mp3"}},
		{"no matches", "wav", "name", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SortFilesBy(dir, tt.fileType, tt.orderBy)
			if err != nil {
				t.Fatalf("SortFilesBy() error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSortFilesBy_Invalid(t *testing.T) {
	dir := t.TempDir()

	if _, err := SortFilesBy(filepath.Join(dir, "missing"), "all", "name"); !model.IsKind(err, model.KindValidation) {
		t.Errorf("expected validation error for missing folder, got %v", err)
	}
	if _, err := SortFilesBy(dir, "all", "size"); !model.IsKind(err, model.KindValidation) {
		t.Errorf("expected validation error for bad order key, got %v", err)
	}
}

func TestNormalizeExt(t *testing.T) {
	tests := map[string]string{
		"mp3":  ".mp3",
		".mp3": ".mp3",
		"MP4":  ".mp4",
		"":     "",
	}
	for in, want := range tests {
		if got := normalizeExt(in); got != want {
			t.Errorf("normalizeExt(%q) = %q, want %q", in, got, want)
		}
	}
}
