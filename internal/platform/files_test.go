package platform

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestGetHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if filepath.Base(downloadsDir) != "Downloads" {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}

func TestGetMusicAutoAddDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := GetMusicAutoAddDir()
	if err != nil {
		t.Fatalf("Failed to get music folder: %v", err)
	}

	want := filepath.Join(home, "Music", "Music", "Media.localized", "Automatically Add to Music.localized")
	if dir != want {
		t.Errorf("expected %s, got %s", want, dir)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		path     string
		expected string
	}{
		{"~", home},
		{"~/Videos", filepath.Join(home, "Videos")},
		{"/abs/path", "/abs/path"},
		{"relative/~", "relative/~"},
		{"~other/x", "~other/x"},
	}

	for _, tt := range tests {
		got, err := ExpandHome(tt.path)
		if err != nil {
			t.Errorf("ExpandHome(%q) error: %v", tt.path, err)
			continue
		}
		if !strings.EqualFold(got, tt.expected) {
			t.Errorf("ExpandHome(%q) = %q, want %q", tt.path, got, tt.expected)
		}
	}
}
