package platform

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

type recordedCommand struct {
	name string
	args []string
}

func newTestLauncher(goos string, dryRun bool, fail map[string]bool) (*AppLauncher, *[]recordedCommand) {
	var commands []recordedCommand
	launcher := &AppLauncher{
		goos:   goos,
		dryRun: dryRun,
		run: func(_ context.Context, name string, args ...string) error {
			commands = append(commands, recordedCommand{name: name, args: args})
			if len(args) > 0 && fail[args[0]] {
				return errors.New("exit status 1")
			}
			return nil
		},
	}
	return launcher, &commands
}

func TestOpenApps(t *testing.T) {
	launcher, commands := newTestLauncher(OSDarwin, false, nil)

	opened, err := launcher.OpenApps(context.Background(), "/Applications", []string{"Slack", "Visual Studio Code"})
	if err != nil {
		t.Fatalf("OpenApps() error: %v", err)
	}

	expected := []recordedCommand{
		{name: "open", args: []string{"/Applications/Slack.app"}},
		{name: "open", args: []string{"/Applications/Visual Studio Code.app"}},
	}
	if !reflect.DeepEqual(*commands, expected) {
		t.Errorf("expected commands %v, got %v", expected, *commands)
	}
	if len(opened) != 2 {
		t.Errorf("expected 2 opened apps, got %v", opened)
	}
}

func TestOpenApps_ContinuesAfterFailure(t *testing.T) {
	launcher, commands := newTestLauncher(OSDarwin, false, map[string]bool{"/Applications/Broken.app": true})

	opened, err := launcher.OpenApps(context.Background(), "/Applications", []string{"Broken", "Notes"})
	if err == nil || !strings.Contains(err.Error(), "Broken.app") {
		t.Errorf("expected error naming the failed app, got %v", err)
	}
	if len(*commands) != 2 {
		t.Errorf("expected both apps to be attempted, got %d commands", len(*commands))
	}
	if !reflect.DeepEqual(opened, []string{"/Applications/Notes.app"}) {
		t.Errorf("unexpected opened list %v", opened)
	}
}

func TestOpenApps_DryRun(t *testing.T) {
	launcher, commands := newTestLauncher(OSLinux, true, nil)

	opened, err := launcher.OpenApps(context.Background(), "/System/Applications", []string{"Music"})
	if err != nil {
		t.Fatalf("OpenApps() error: %v", err)
	}
	if len(*commands) != 0 {
		t.Errorf("dry run must not run commands, got %v", *commands)
	}
	if !reflect.DeepEqual(opened, []string{"/System/Applications/Music.app"}) {
		t.Errorf("unexpected opened list %v", opened)
	}
}

func TestOpenApps_UnsupportedOS(t *testing.T) {
	launcher, commands := newTestLauncher(OSLinux, false, nil)

	if _, err := launcher.OpenApps(context.Background(), "/Applications", []string{"Slack"}); err == nil {
		t.Error("expected error on non-macOS system")
	}
	if len(*commands) != 0 {
		t.Errorf("expected no commands, got %v", *commands)
	}
}
