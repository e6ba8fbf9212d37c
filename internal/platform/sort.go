package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ytget/cm-util/internal/model"
)

// Sort keys and filters for SortFilesBy
const (
	OrderByName = "name"
	OrderByDate = "date"

	FileTypeAll = "all"
)

type fileEntry struct {
	name    string
	path    string
	created time.Time
}

// listFiles returns the regular files directly inside dir
func listFiles(dir string) ([]fileEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	files := make([]fileEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, fileEntry{
			name:    entry.Name(),
			path:    filepath.Join(dir, entry.Name()),
			created: creationTime(info),
		})
	}
	return files, nil
}

func sortByCreation(files []fileEntry) {
	sort.SliceStable(files, func(i, j int) bool {
		if files[i].created.Equal(files[j].created) {
			return files[i].name < files[j].name
		}
		return files[i].created.Before(files[j].created)
	})
}

// normalizeExt turns "mp3", ".MP3" and "MP3" into ".mp3"
func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" || strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}

// SortFilesBy lists the files in folder ordered by name or creation date.
// fileType is "all" or an extension to filter on.
func SortFilesBy(folder, fileType, orderBy string) ([]string, error) {
	info, err := os.Stat(folder)
	if err != nil || !info.IsDir() {
		return nil, model.Validationf("order files", "folder does not exist: %s", folder)
	}

	orderBy = strings.ToLower(strings.TrimSpace(orderBy))
	if orderBy != OrderByName && orderBy != OrderByDate {
		return nil, model.Validationf("order files", "invalid order key %q (use %s or %s)", orderBy, OrderByName, OrderByDate)
	}

	files, err := listFiles(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder %s: %w", folder, err)
	}

	if fileType = strings.TrimSpace(fileType); fileType != "" && !strings.EqualFold(fileType, FileTypeAll) {
		ext := normalizeExt(fileType)
		filtered := files[:0]
		for _, f := range files {
			if strings.ToLower(filepath.Ext(f.name)) == ext {
				filtered = append(filtered, f)
			}
		}
		files = filtered
	}

	if orderBy == OrderByDate {
		sortByCreation(files)
	} else {
		sort.Slice(files, func(i, j int) bool { return files[i].name < files[j].name })
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.name)
	}
	return names, nil
}
