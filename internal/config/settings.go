package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/duke-git/lancet/v2/fileutil"
	"github.com/duke-git/lancet/v2/slice"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Settings keys in config.yaml
const (
	KeyRetryCount     = "retry_count"
	KeyRetryDelay     = "retry_delay"
	KeyShowProgress   = "show_progress"
	KeyLogLevel       = "log_level"
	KeyOutputDir      = "output_dir"
	KeyCookiesBrowser = "cookies_browser"
	KeyAppsConfig     = "apps_config"
)

// Default values
const (
	DefaultRetryCount     = 3
	DefaultRetryDelay     = 2
	DefaultShowProgress   = true
	DefaultLogLevel       = "INFO"
	DefaultCookiesBrowser = "chrome"
)

// RecognizedKeys lists the keys the tool reads, in display order
var RecognizedKeys = []string{
	KeyRetryCount,
	KeyRetryDelay,
	KeyShowProgress,
	KeyLogLevel,
	KeyOutputDir,
	KeyCookiesBrowser,
	KeyAppsConfig,
}

// Defaults returns the values merged under any user config.
// output_dir and apps_config have no default and stay absent.
func Defaults() map[string]any {
	return map[string]any{
		KeyRetryCount:     DefaultRetryCount,
		KeyRetryDelay:     DefaultRetryDelay,
		KeyShowProgress:   DefaultShowProgress,
		KeyLogLevel:       DefaultLogLevel,
		KeyCookiesBrowser: DefaultCookiesBrowser,
	}
}

// Settings is the typed view of the merged configuration
type Settings struct {
	RetryCount     int    `mapstructure:"retry_count"`
	RetryDelay     int    `mapstructure:"retry_delay"`
	ShowProgress   bool   `mapstructure:"show_progress"`
	LogLevel       string `mapstructure:"log_level"`
	OutputDir      string `mapstructure:"output_dir"`
	CookiesBrowser string `mapstructure:"cookies_browser"`
	AppsConfig     string `mapstructure:"apps_config"`
}

// DefaultSettings returns the typed defaults
func DefaultSettings() Settings {
	return Settings{
		RetryCount:     DefaultRetryCount,
		RetryDelay:     DefaultRetryDelay,
		ShowProgress:   DefaultShowProgress,
		LogLevel:       DefaultLogLevel,
		CookiesBrowser: DefaultCookiesBrowser,
	}
}

// RetryDelayDuration returns retry_delay as a duration
func (s Settings) RetryDelayDuration() time.Duration {
	if s.RetryDelay < 0 {
		return 0
	}
	return time.Duration(s.RetryDelay) * time.Second
}

// Store reads and writes the YAML config file. Every call reads the file
// fresh; nothing is cached between calls.
type Store struct {
	path string
}

// NewStore creates a config store backed by path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the config file location
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the config file is present on disk
func (s *Store) Exists() bool {
	return fileutil.IsExist(s.path)
}

func (s *Store) newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("yaml")
	for key, value := range Defaults() {
		v.SetDefault(key, value)
	}
	return v
}

// load returns a viper instance holding defaults merged with the file.
// A missing or unreadable file yields defaults only.
func (s *Store) load(ctx context.Context) *viper.Viper {
	logger := log.FromContext(ctx)
	v := s.newViper()

	if !s.Exists() {
		logger.Debug("No config file found, using defaults", "path", s.path)
		return v
	}

	if err := v.ReadInConfig(); err != nil {
		logger.Warn("Error loading config file, using defaults", "path", s.path, "error", err)
		return s.newViper()
	}

	logger.Debug("Loaded config", "path", s.path)
	return v
}

// readRaw decodes the file as written, keys untouched. A missing file is
// an empty mapping.
func (s *Store) readRaw() (map[string]any, error) {
	raw := make(map[string]any)
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return raw, nil
		}
		return raw, err
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return make(map[string]any), err
	}
	if raw == nil {
		raw = make(map[string]any)
	}
	return raw, nil
}

// merged overlays the file on the defaults. A corrupt file yields defaults.
func (s *Store) merged(ctx context.Context) map[string]any {
	values := Defaults()
	raw, err := s.readRaw()
	if err != nil {
		log.FromContext(ctx).Warn("Error loading config file, using defaults", "path", s.path, "error", err)
		return values
	}
	for key, value := range raw {
		values[key] = value
	}
	return values
}

// Values returns the merged configuration with keys as written in the file
func (s *Store) Values(ctx context.Context) map[string]any {
	return s.merged(ctx)
}

// Get returns a single merged value
func (s *Store) Get(ctx context.Context, key string) (any, bool) {
	value, ok := s.merged(ctx)[key]
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

// Settings decodes the merged configuration into Settings. A value that
// does not decode keeps its default; the others are still applied and the
// failures are returned together.
func (s *Store) Settings(ctx context.Context) (Settings, error) {
	v := s.load(ctx)
	defaults := DefaultSettings()
	out := defaults

	fields := []struct {
		key    string
		target any
		reset  func()
	}{
		{KeyRetryCount, &out.RetryCount, func() { out.RetryCount = defaults.RetryCount }},
		{KeyRetryDelay, &out.RetryDelay, func() { out.RetryDelay = defaults.RetryDelay }},
		{KeyShowProgress, &out.ShowProgress, func() { out.ShowProgress = defaults.ShowProgress }},
		{KeyLogLevel, &out.LogLevel, func() { out.LogLevel = defaults.LogLevel }},
		{KeyOutputDir, &out.OutputDir, func() { out.OutputDir = defaults.OutputDir }},
		{KeyCookiesBrowser, &out.CookiesBrowser, func() { out.CookiesBrowser = defaults.CookiesBrowser }},
		{KeyAppsConfig, &out.AppsConfig, func() { out.AppsConfig = defaults.AppsConfig }},
	}

	var errs []error
	for _, field := range fields {
		if !v.IsSet(field.key) || v.Get(field.key) == nil {
			continue
		}
		if err := v.UnmarshalKey(field.key, field.target); err != nil {
			field.reset()
			errs = append(errs, fmt.Errorf("%s: %w", field.key, err))
		}
	}
	if len(errs) > 0 {
		return out, fmt.Errorf("failed to decode config: %w", errors.Join(errs...))
	}
	return out, nil
}

// canonicalKey lowercases recognized keys; any other key is kept as typed
func canonicalKey(key string) string {
	key = strings.TrimSpace(key)
	if lower := strings.ToLower(key); slice.Contain(RecognizedKeys, lower) {
		return lower
	}
	return key
}

// Set stores a single value and persists the full merged mapping. Keys
// already in the file are written back exactly as they were. A nil value
// removes the key.
func (s *Store) Set(ctx context.Context, key string, value any) error {
	key = canonicalKey(key)
	if key == "" {
		return fmt.Errorf("config key is empty")
	}

	values := s.merged(ctx)
	if value == nil {
		delete(values, key)
	} else {
		values[key] = value
	}

	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), DefaultDirPermissions); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to save config file: %w", err)
	}

	log.FromContext(ctx).Info("Configuration saved", "path", s.path)
	return nil
}

// SortedKeys returns recognized keys first, then any others alphabetically
func SortedKeys(values map[string]any) []string {
	keys := make([]string, 0, len(values)+len(RecognizedKeys))
	seen := make(map[string]struct{}, len(values))
	for _, key := range RecognizedKeys {
		keys = append(keys, key)
		seen[key] = struct{}{}
	}

	var extra []string
	for key := range values {
		if _, ok := seen[key]; !ok {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	return append(keys, extra...)
}

// ParseValue interprets a command-line value as a YAML scalar, so "5"
// becomes an int, "false" a bool and "null" removes the key
func ParseValue(raw string) any {
	var value any
	if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
		return raw
	}
	switch value.(type) {
	case map[string]any, []any:
		return raw
	}
	return value
}
