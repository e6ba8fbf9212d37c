package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeEnv overrides the application directory when set
const HomeEnv = "CM_UTIL_HOME"

// File layout under the application directory
const (
	AppDirName      = ".cm-util"
	ConfigFileName  = "config.yaml"
	HistoryFileName = "history.json"
	StagingDirName  = "tmp"

	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// AppDir returns ~/.cm-util, or $CM_UTIL_HOME when set
func AppDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, AppDirName), nil
}

// Paths holds every on-disk location the tool uses
type Paths struct {
	AppDir  string
	Config  string
	History string
	Staging string
}

// ResolvePaths builds Paths from AppDir
func ResolvePaths() (Paths, error) {
	dir, err := AppDir()
	if err != nil {
		return Paths{}, err
	}
	return Paths{
		AppDir:  dir,
		Config:  filepath.Join(dir, ConfigFileName),
		History: filepath.Join(dir, HistoryFileName),
		Staging: filepath.Join(dir, StagingDirName),
	}, nil
}
