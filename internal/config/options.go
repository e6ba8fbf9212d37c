package config

import (
	"strings"

	"github.com/charmbracelet/log"
)

// RunOptions carries the global command-line flags of one invocation
type RunOptions struct {
	Verbose   bool
	Quiet     bool
	DryRun    bool
	Force     bool
	OutputDir string
}

// LogLevel resolves the effective level: --verbose wins, then --quiet,
// then the configured log_level
func (o RunOptions) LogLevel(configured string) log.Level {
	if o.Verbose {
		return log.DebugLevel
	}
	if o.Quiet {
		return log.ErrorLevel
	}
	return ParseLogLevel(configured)
}

// ParseLogLevel accepts charm level names plus the WARNING/CRITICAL
// spellings older config files use; anything else means info
func ParseLogLevel(s string) log.Level {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "warning":
		name = "warn"
	case "critical":
		name = "fatal"
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
