package platform

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/duke-git/lancet/v2/fileutil"
	"github.com/duke-git/lancet/v2/slice"

	"github.com/ytget/cm-util/internal/model"
)

// MediaMover places downloaded media into destination folders
type MediaMover struct{}

// NewMediaMover creates a media mover
func NewMediaMover() *MediaMover {
	return &MediaMover{}
}

// Place moves the media files of srcDir into destDir
func (m *MediaMover) Place(ctx context.Context, srcDir, destDir string, exts []string) ([]string, error) {
	return MoveMediaFiles(ctx, srcDir, destDir, exts)
}

// MoveMediaFiles moves files of srcDir whose extension is in exts into
// destDir, oldest first, and returns their new paths. destDir must exist.
func MoveMediaFiles(ctx context.Context, srcDir, destDir string, exts []string) ([]string, error) {
	logger := log.FromContext(ctx).WithPrefix("files")

	if info, err := os.Stat(destDir); err != nil || !info.IsDir() {
		return nil, model.NewError(model.KindFilesystem, "move media files", fmt.Errorf("path %s does not exist", destDir))
	}

	files, err := listFiles(srcDir)
	if err != nil {
		return nil, model.NewError(model.KindFilesystem, "move media files", fmt.Errorf("failed to read %s: %w", srcDir, err))
	}

	wanted := make([]string, 0, len(exts))
	for _, ext := range exts {
		wanted = append(wanted, normalizeExt(ext))
	}

	media := files[:0]
	for _, f := range files {
		if slice.Contain(wanted, strings.ToLower(filepath.Ext(f.name))) {
			media = append(media, f)
		}
	}
	if len(media) == 0 {
		logger.Warn("No media files found", "dir", srcDir, "extensions", wanted)
		return []string{}, nil
	}
	sortByCreation(media)

	moved := make([]string, 0, len(media))
	for _, f := range media {
		target := filepath.Join(destDir, f.name)
		if err := moveFile(f.path, target); err != nil {
			return moved, model.NewError(model.KindFilesystem, "move media files", err)
		}
		logger.Info("Moved file", "file", f.name, "to", destDir)
		moved = append(moved, target)
	}
	return moved, nil
}

// moveFile renames src to dst, copying across filesystems when rename fails
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := fileutil.CopyFile(src, dst); err != nil {
		return fmt.Errorf("failed to move %s to %s: %w", filepath.Base(src), filepath.Dir(dst), err)
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("failed to remove %s after copy: %w", src, err)
	}
	return nil
}
