package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/duke-git/lancet/v2/fileutil"

	"github.com/ytget/cm-util/internal/model"
)

// App group names in my-apps.json
const (
	GroupInstalled = "installed"
	GroupSystem    = "system"
	GroupMusic     = "music"

	// GroupDefault opens the installed group and then the system group
	GroupDefault = "default"
)

// LocalAppsFile is checked relative to the working directory before the
// bundled list is used
var LocalAppsFile = filepath.Join("config", "my-apps.json")

//go:embed my-apps.json
var bundledApps []byte

// AppGroup is a folder and the application bundles to open from it
type AppGroup struct {
	Path string   `json:"path"`
	Apps []string `json:"apps"`
}

// AppList maps group names to their applications
type AppList map[string]AppGroup

// Group returns the named group
func (l AppList) Group(name string) (AppGroup, error) {
	group, ok := l[name]
	if !ok {
		return AppGroup{}, model.Validationf("open apps", "unknown app group %q (available: %v)", name, l.Names())
	}
	return group, nil
}

// Resolve returns the groups to open for an open-apps type
func (l AppList) Resolve(name string) ([]AppGroup, error) {
	if name == "" || name == GroupDefault {
		var groups []AppGroup
		for _, groupName := range []string{GroupInstalled, GroupSystem} {
			group, err := l.Group(groupName)
			if err != nil {
				return nil, err
			}
			groups = append(groups, group)
		}
		return groups, nil
	}

	group, err := l.Group(name)
	if err != nil {
		return nil, err
	}
	return []AppGroup{group}, nil
}

// Names returns the group names in sorted order
func (l AppList) Names() []string {
	names := make([]string, 0, len(l))
	for name := range l {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseAppList decodes an application list
func ParseAppList(data []byte) (AppList, error) {
	var list AppList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse app list: %w", err)
	}
	return list, nil
}

// LoadAppList reads the application list from path. An empty path falls
// back to LocalAppsFile and then to the bundled copy.
func LoadAppList(path string) (AppList, string, error) {
	if path == "" {
		if !fileutil.IsExist(LocalAppsFile) {
			list, err := ParseAppList(bundledApps)
			return list, "bundled", err
		}
		path = LocalAppsFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, path, model.NewError(model.KindNotFound, "load app list", err)
		}
		return nil, path, fmt.Errorf("failed to read app list: %w", err)
	}

	list, err := ParseAppList(data)
	return list, path, err
}
