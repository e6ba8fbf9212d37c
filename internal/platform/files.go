package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Operating system constants
const (
	OSDarwin = "darwin"
	OSLinux  = "linux"
)

// Well-known folders relative to the home directory
var (
	DownloadsDirName = "Downloads"
	MusicAutoAddDir  = filepath.Join("Music", "Music", "Media.localized", "Automatically Add to Music.localized")
)

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, DownloadsDirName), nil
}

// GetMusicAutoAddDir returns the folder Apple Music imports new files from
func GetMusicAutoAddDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, MusicAutoAddDir), nil
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
}
